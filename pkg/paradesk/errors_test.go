package paradesk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOverloaded(t *testing.T) {
	assert.True(t, IsOverloaded(&CallResult{HTTPResponseCode: 503}))
	assert.True(t, IsOverloaded(&CallResult{HTTPResponseCode: 0}))
	assert.False(t, IsOverloaded(&CallResult{HTTPResponseCode: 500}))
	assert.False(t, IsOverloaded(&CallResult{HTTPResponseCode: 200}))
}

func TestIsTransientAuth(t *testing.T) {
	assert.True(t, IsTransientAuth(&CallResult{HTTPResponseCode: 401}))
	assert.False(t, IsTransientAuth(&CallResult{HTTPResponseCode: 403}))
}

func TestIsServerFault(t *testing.T) {
	assert.True(t, IsServerFault(&CallResult{HTTPResponseCode: 500, ExceptionDetails: "boom"}))
	assert.True(t, IsServerFault(&CallResult{HTTPResponseCode: 401}))
	assert.True(t, IsServerFault(&CallResult{
		HTTPResponseCode: 400,
		ExceptionDetails: "Exception response:An unexpected error occurred",
	}))
	assert.False(t, IsServerFault(&CallResult{HTTPResponseCode: 503}))
	assert.False(t, IsServerFault(&CallResult{HTTPResponseCode: 200}))
}

func TestIsServerFault_ExemptsBusinessRejection(t *testing.T) {
	assert.False(t, IsServerFault(&CallResult{
		HTTPResponseCode: 500,
		ExceptionDetails: "Invalid action given the current status of the ticket",
	}))
}

func TestIsBusinessRejection_CaseInsensitive(t *testing.T) {
	assert.True(t, IsBusinessRejection(&CallResult{
		ExceptionDetails: "INVALID ACTION GIVEN THE CURRENT STATUS OF THE TICKET",
	}))
	assert.True(t, IsBusinessRejection(&CallResult{
		ExceptionDetails: "Error 500: invalid action given the current status of the ticket (id 9)",
	}))
	assert.False(t, IsBusinessRejection(&CallResult{ExceptionDetails: "some other failure"}))
}
