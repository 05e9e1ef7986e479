package client

import (
	"context"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

type accounts struct {
	c *client
}

func (m *accounts) GetDetails(ctx context.Context, accountID int64) (*paradesk.Account, paradesk.CallResult) {
	return getDetail[paradesk.Account](ctx, m.c, paradesk.ModuleAccount.Resource(), accountID, nil)
}

func (m *accounts) GetList(ctx context.Context, query *paradesk.Query) (paradesk.PagedList[paradesk.Account], paradesk.CallResult) {
	if query != nil && query.IncludeAllCustomFields {
		schema, result := m.Schema(ctx)
		if !result.HasException && schema != nil {
			m.c.expandCustomFields(query, schema.CustomFields)
		}
	}

	return getList[paradesk.Account](ctx, m.c, paradesk.ModuleAccount.Resource(), query)
}

func (m *accounts) Insert(ctx context.Context, account *paradesk.Account) paradesk.CallResult {
	result := m.c.createUpdate(ctx, paradesk.ModuleAccount, 0, account, nil)

	if result.ObjectID != 0 {
		account.ID = result.ObjectID
	}

	return result
}

func (m *accounts) Update(ctx context.Context, account *paradesk.Account) paradesk.CallResult {
	return m.c.createUpdate(ctx, paradesk.ModuleAccount, account.ID, account, nil)
}

func (m *accounts) Delete(ctx context.Context, accountID int64, purge bool) paradesk.CallResult {
	return m.c.deleteObject(ctx, paradesk.ModuleAccount, accountID, purge)
}

func (m *accounts) Schema(ctx context.Context) (*paradesk.Account, paradesk.CallResult) {
	return getSchema[paradesk.Account](ctx, m.c, paradesk.ModuleAccount.Resource())
}

func (m *accounts) SchemaWithCustomFieldTypes(ctx context.Context) (*paradesk.Account, paradesk.CallResult) {
	schema, result := m.Schema(ctx)
	if result.HasException || schema == nil {
		return schema, result
	}

	schema.CustomFields = m.c.probeCustomFieldTypes(ctx, paradesk.ModuleAccount, schema.CustomFields)

	return schema, result
}
