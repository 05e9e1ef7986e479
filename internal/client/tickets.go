package client

import (
	"context"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

type tickets struct {
	c *client
}

func (m *tickets) GetDetails(ctx context.Context, ticketID int64) (*paradesk.Ticket, paradesk.CallResult) {
	return getDetail[paradesk.Ticket](ctx, m.c, paradesk.ModuleTicket.Resource(), ticketID, nil)
}

// GetDetailsWithHistory fetches a ticket with its action history included.
// History responses are never cached; the history grows on every action.
func (m *tickets) GetDetailsWithHistory(ctx context.Context, ticketID int64) (*paradesk.Ticket, paradesk.CallResult) {
	result := m.c.disp.GetDetail(ctx, paradesk.ModuleTicket.Resource(), ticketID, []string{"_history_=true"})

	return decodeEntity[paradesk.Ticket](result.XMLReceived, result)
}

func (m *tickets) GetList(ctx context.Context, query *paradesk.Query) (paradesk.PagedList[paradesk.Ticket], paradesk.CallResult) {
	if query != nil && query.IncludeAllCustomFields {
		schema, result := m.Schema(ctx)
		if !result.HasException && schema != nil {
			m.c.expandCustomFields(query, schema.CustomFields)
		}
	}

	return getList[paradesk.Ticket](ctx, m.c, paradesk.ModuleTicket.Resource(), query)
}

// GetStatusList lists the instance's ticket statuses. Statuses live as a
// second-level entity under the ticket module.
func (m *tickets) GetStatusList(ctx context.Context, query *paradesk.Query) (paradesk.PagedList[paradesk.Status], paradesk.CallResult) {
	if query == nil {
		query = paradesk.NewQuery()
	}

	result := m.c.disp.SecondLevelList(ctx, paradesk.ModuleTicket, paradesk.EntityStatus, query.BuildArguments())

	return decodePage[paradesk.Status](result.XMLReceived, result)
}

func (m *tickets) Insert(ctx context.Context, ticket *paradesk.Ticket) paradesk.CallResult {
	result := m.c.createUpdate(ctx, paradesk.ModuleTicket, 0, ticket, nil)

	if result.ObjectID != 0 {
		ticket.ID = result.ObjectID
	}

	return result
}

func (m *tickets) Update(ctx context.Context, ticket *paradesk.Ticket) paradesk.CallResult {
	return m.c.createUpdate(ctx, paradesk.ModuleTicket, ticket.ID, ticket, nil)
}

func (m *tickets) Delete(ctx context.Context, ticketID int64, purge bool) paradesk.CallResult {
	return m.c.deleteObject(ctx, paradesk.ModuleTicket, ticketID, purge)
}

func (m *tickets) Schema(ctx context.Context) (*paradesk.Ticket, paradesk.CallResult) {
	return getSchema[paradesk.Ticket](ctx, m.c, paradesk.ModuleTicket.Resource())
}

func (m *tickets) SchemaWithCustomFieldTypes(ctx context.Context) (*paradesk.Ticket, paradesk.CallResult) {
	schema, result := m.Schema(ctx)
	if result.HasException || schema == nil {
		return schema, result
	}

	schema.CustomFields = m.c.probeCustomFieldTypes(ctx, paradesk.ModuleTicket, schema.CustomFields)

	return schema, result
}
