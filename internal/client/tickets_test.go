package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

func TestTickets_GetDetailsWithHistory(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/12345/0/Ticket/900", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("_history_"))

		_, _ = w.Write([]byte(`<ticket id="900">
			<Ticket_Number>900-123</Ticket_Number>
			<Actions>
				<Action id="1"><Name>Created</Name><Comment>opened by portal</Comment></Action>
				<Action id="2"><Name>Assigned</Name></Action>
			</Actions>
		</ticket>`))
	}, nil)

	ticket, result := c.Tickets().GetDetailsWithHistory(context.Background(), 900)

	assert.False(t, result.HasException)
	require.NotNil(t, ticket)
	require.Len(t, ticket.ActionHistory, 2)
	assert.Equal(t, "Created", ticket.ActionHistory[0].Name)
	assert.Equal(t, "opened by portal", ticket.ActionHistory[0].Comment)
}

func TestTickets_GetDetailsOmitsHistoryArgument(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("_history_"))
		_, _ = w.Write([]byte(`<ticket id="900"/>`))
	}, nil)

	ticket, result := c.Tickets().GetDetails(context.Background(), 900)

	assert.False(t, result.HasException)
	require.NotNil(t, ticket)
	assert.Empty(t, ticket.ActionHistory)
}

func TestTickets_InsertAssignsID(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`<ticket id="901"/>`))
	}, nil)

	ticket := &paradesk.Ticket{Summary: "printer on fire"}

	result := c.Tickets().Insert(context.Background(), ticket)

	assert.False(t, result.HasException)
	assert.Equal(t, int64(901), ticket.ID)
}

func TestTickets_StatusRejectionSurfacesWithoutRetry(t *testing.T) {
	calls := 0

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Invalid action given the current status of the ticket"))
	}, nil)

	result := c.Tickets().Update(context.Background(), &paradesk.Ticket{ID: 900})

	assert.Equal(t, 1, calls)
	assert.True(t, result.HasException)
	assert.Equal(t, 1, result.AutomatedRetries)
	assert.True(t, paradesk.IsBusinessRejection(&result))
}

func TestTickets_GetStatusList(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/12345/0/Ticket/Status", r.URL.Path)
		_, _ = w.Write([]byte(`<statuses total="2" page="1" page-size="25" results="2">
			<status id="1"><Name>New</Name></status>
			<status id="7"><Name>Closed</Name></status>
		</statuses>`))
	}, nil)

	page, result := c.Tickets().GetStatusList(context.Background(), nil)

	assert.False(t, result.HasException)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "New", page.Data[0].Name)
	assert.Equal(t, int64(7), page.Data[1].ID)
}

func TestArticles_DeleteFolderAlwaysPurges(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/12345/0/ArticleFolder/4", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("_purge_"))
		_, _ = w.Write([]byte(`<response/>`))
	}, nil)

	result := c.Articles().DeleteFolder(context.Background(), 4)

	assert.False(t, result.HasException)
}

func TestArticles_FolderList(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/12345/0/ArticleFolder", r.URL.Path)
		_, _ = w.Write([]byte(`<articleFolders total="1" page="1" page-size="25" results="1">
			<articleFolder id="4"><Name>FAQ</Name></articleFolder>
		</articleFolders>`))
	}, nil)

	page, result := c.Articles().GetFolderList(context.Background(), nil)

	assert.False(t, result.HasException)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "FAQ", page.Data[0].Name)
}

func TestSlas_GetList(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/12345/0/Sla", r.URL.Path)
		_, _ = w.Write([]byte(`<slas total="1" page="1" page-size="25" results="1">
			<sla id="2"><Name>Gold</Name></sla>
		</slas>`))
	}, nil)

	page, result := c.Slas().GetList(context.Background(), nil)

	assert.False(t, result.HasException)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Gold", page.Data[0].Name)
}
