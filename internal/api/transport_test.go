package api

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

func TestTransport_SuccessParsesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<Customer id="42"><Email>a@b.c</Email></Customer>`))
	}))
	defer server.Close()

	tr := NewTransport(NewThrottleRegistry(), 1, 0, nil)

	result := tr.Execute(context.Background(), callDescriptor{url: server.URL, method: http.MethodGet})

	assert.False(t, result.HasException)
	assert.Empty(t, result.ExceptionDetails)
	assert.Equal(t, 200, result.HTTPResponseCode)
	require.NotNil(t, result.XMLReceived)
	assert.Equal(t, "Customer", result.XMLReceived.RootName())
	assert.Equal(t, server.URL, result.CalledURL)
	assert.Equal(t, http.MethodGet, result.HTTPMethod)
	assert.Equal(t, 1, result.AutomatedRetries)
}

func TestTransport_SuccessWithUnparseableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not xml at all"))
	}))
	defer server.Close()

	tr := NewTransport(NewThrottleRegistry(), 1, 0, nil)

	result := tr.Execute(context.Background(), callDescriptor{url: server.URL, method: http.MethodGet})

	assert.False(t, result.HasException)
	assert.Nil(t, result.XMLReceived)
}

func TestTransport_CreatedExtractsObjectID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`<Ticket id="1234"/>`))
	}))
	defer server.Close()

	tr := NewTransport(NewThrottleRegistry(), 1, 0, nil)

	result := tr.Execute(context.Background(), callDescriptor{url: server.URL, method: http.MethodPost})

	assert.False(t, result.HasException)
	assert.Equal(t, int64(1234), result.ObjectID)
}

func TestTransport_CreatedWithoutIDYieldsZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`<Ticket/>`))
	}))
	defer server.Close()

	tr := NewTransport(NewThrottleRegistry(), 1, 0, nil)

	result := tr.Execute(context.Background(), callDescriptor{url: server.URL, method: http.MethodPost})

	assert.False(t, result.HasException)
	assert.Zero(t, result.ObjectID)
}

func TestTransport_ErrorAppendsResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<Ticket>rejected</Ticket>`))
	}))
	defer server.Close()

	tr := NewTransport(NewThrottleRegistry(), 1, 0, nil)

	result := tr.Execute(context.Background(), callDescriptor{url: server.URL, method: http.MethodPost})

	assert.True(t, result.HasException)
	assert.Equal(t, 400, result.HTTPResponseCode)
	assert.Contains(t, result.ExceptionDetails, "(400)")
	assert.Contains(t, result.ExceptionDetails, "Exception response:<Ticket>rejected</Ticket>")
	require.NotNil(t, result.XMLReceived)
}

func TestTransport_ErrorDocumentOverridesCodeAndDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<Error code="412" message="precondition not met"/>`))
	}))
	defer server.Close()

	tr := NewTransport(NewThrottleRegistry(), 1, 0, nil)

	result := tr.Execute(context.Background(), callDescriptor{url: server.URL, method: http.MethodGet})

	assert.True(t, result.HasException)
	assert.Equal(t, 412, result.HTTPResponseCode)
	assert.Equal(t, "precondition not met", result.ExceptionDetails)
}

func TestTransport_ErrorDocumentWithBadCodeKeepsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<error code="nope" message="still bad"/>`))
	}))
	defer server.Close()

	tr := NewTransport(NewThrottleRegistry(), 1, 0, nil)

	result := tr.Execute(context.Background(), callDescriptor{url: server.URL, method: http.MethodGet})

	assert.Equal(t, 400, result.HTTPResponseCode)
	assert.Equal(t, "still bad", result.ExceptionDetails)
}

func TestTransport_UnreachableServerPromotesTo503(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	tr := NewTransport(NewThrottleRegistry(), 1, 0, nil)

	result := tr.Execute(context.Background(), callDescriptor{url: server.URL, method: http.MethodGet})

	assert.True(t, result.HasException)
	assert.Equal(t, 503, result.HTTPResponseCode)
	assert.NotEmpty(t, result.ExceptionDetails)
}

func TestTransport_DocumentCallSendsVendorContentType(t *testing.T) {
	var gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer server.Close()

	doc, err := paradesk.ParseDocument([]byte(`<Customer><Email>a@b.c</Email></Customer>`))
	require.NoError(t, err)

	tr := NewTransport(NewThrottleRegistry(), 1, 0, nil)

	result := tr.Execute(context.Background(), callDescriptor{
		url:      server.URL,
		method:   http.MethodPost,
		kind:     bodyDocument,
		document: doc,
	})

	assert.False(t, result.HasException)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, `<Customer><Email>a@b.c</Email></Customer>`, string(gotBody))
	require.NotNil(t, result.XMLSent)
	assert.Equal(t, "Customer", result.XMLSent.RootName())
}

func TestTransport_AttachmentFraming(t *testing.T) {
	var gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer server.Close()

	tr := NewTransport(NewThrottleRegistry(), 1, 0, nil)

	result := tr.Execute(context.Background(), callDescriptor{
		url:    server.URL,
		method: http.MethodPost,
		kind:   bodyAttachment,
		attachment: &attachmentBody{
			name:        "report.pdf",
			contentType: "application/pdf",
			data:        []byte("PDFDATA"),
		},
	})

	assert.False(t, result.HasException)
	assert.Equal(t, "application/pdf; boundary:--ParaBoundary", gotContentType)

	want := "--ParaBoundary\r\n" +
		"Content-Disposition: application/pdf; name=\"report.pdf\"; filename=\"report.pdf\"\r\n" +
		"Content-Type: application/pdf\r\n" +
		"\r\n" +
		"PDFDATA\r\n" +
		"--ParaBoundary--"
	assert.Equal(t, want, string(gotBody))
}

func TestTransport_EmptyBodyYieldsNoDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	tr := NewTransport(NewThrottleRegistry(), 1, 0, nil)

	result := tr.Execute(context.Background(), callDescriptor{url: server.URL, method: http.MethodDelete})

	assert.False(t, result.HasException)
	assert.Nil(t, result.XMLReceived)
	assert.Nil(t, result.XMLSent)
}

func TestTransport_EmptyDocumentBodyNormalizedAway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<response/>`))
	}))
	defer server.Close()

	tr := NewTransport(NewThrottleRegistry(), 1, 0, nil)

	result := tr.Execute(context.Background(), callDescriptor{
		url:      server.URL,
		method:   http.MethodPost,
		kind:     bodyDocument,
		document: &paradesk.Document{},
	})

	assert.False(t, result.HasException)
	assert.Nil(t, result.XMLSent)
	require.NotNil(t, result.XMLReceived)
}

func TestWriteDeadlineConn_StampsEveryWrite(t *testing.T) {
	inner := &deadlineRecordingConn{}
	conn := &writeDeadlineConn{Conn: inner, tolerance: time.Minute}

	_, err := conn.Write([]byte("chunk-one"))
	require.NoError(t, err)

	_, err = conn.Write([]byte("chunk-two"))
	require.NoError(t, err)

	require.Len(t, inner.deadlines, 2)
	assert.True(t, inner.deadlines[0].After(time.Now().Add(30*time.Second)))
	assert.True(t, inner.deadlines[1].After(inner.deadlines[0]) || inner.deadlines[1].Equal(inner.deadlines[0]))
	assert.Equal(t, "chunk-onechunk-two", string(inner.written))
}

type deadlineRecordingConn struct {
	net.Conn

	deadlines []time.Time
	written   []byte
}

func (c *deadlineRecordingConn) SetWriteDeadline(deadline time.Time) error {
	c.deadlines = append(c.deadlines, deadline)

	return nil
}

func (c *deadlineRecordingConn) Write(p []byte) (int, error) {
	c.written = append(c.written, p...)

	return len(p), nil
}

func TestTransport_RecordsCompletionAfterCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	throttle := NewThrottleRegistry()
	tr := NewTransport(throttle, 9, 0, nil)

	tr.Execute(context.Background(), callDescriptor{url: server.URL, method: http.MethodGet})

	_, ok := throttle.LastCall(9)
	assert.True(t, ok)
}
