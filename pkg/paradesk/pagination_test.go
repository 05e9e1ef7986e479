package paradesk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage_ListWithMetadata(t *testing.T) {
	doc, err := ParseDocument([]byte(`<customers total="210" page="2" page-size="2" results="2">
		<customer id="5"><Email>a@example.com</Email></customer>
		<customer id="6"><Email>b@example.com</Email></customer>
	</customers>`))
	require.NoError(t, err)

	page, err := ParsePage[Customer](doc)
	require.NoError(t, err)

	assert.Equal(t, 210, page.Total)
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 2, page.ResultsReturned)
	require.Len(t, page.Data, 2)
	assert.Equal(t, int64(5), page.Data[0].ID)
	assert.Equal(t, "b@example.com", page.Data[1].Email)
}

func TestParsePage_CountOnlyResponse(t *testing.T) {
	doc, err := ParseDocument([]byte(`<customers total="987"/>`))
	require.NoError(t, err)

	page, err := ParsePage[Customer](doc)
	require.NoError(t, err)

	assert.Equal(t, 987, page.Total)
	assert.Zero(t, page.PageSize)
	assert.Empty(t, page.Data)
}

func TestParsePage_NilDocument(t *testing.T) {
	_, err := ParsePage[Customer](nil)

	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestParsePage_TicketListWithNestedRefs(t *testing.T) {
	doc, err := ParseDocument([]byte(`<tickets total="1" page="1" page-size="25" results="1">
		<ticket id="900">
			<Ticket_Number>900-123</Ticket_Number>
			<Ticket_Status id="3"><Name>Open</Name></Ticket_Status>
			<Ticket_Customer id="42"><Full_Name>Ada Lovelace</Full_Name></Ticket_Customer>
		</ticket>
	</tickets>`))
	require.NoError(t, err)

	page, err := ParsePage[Ticket](doc)
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	ticket := page.Data[0]
	assert.Equal(t, "900-123", ticket.TicketNumber)
	require.NotNil(t, ticket.Status)
	assert.Equal(t, "Open", ticket.Status.Name)
	require.NotNil(t, ticket.Customer)
	assert.Equal(t, "Ada Lovelace", ticket.Customer.Name)
}
