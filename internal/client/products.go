package client

import (
	"context"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

type products struct {
	c *client
}

func (m *products) GetDetails(ctx context.Context, productID int64) (*paradesk.Product, paradesk.CallResult) {
	return getDetail[paradesk.Product](ctx, m.c, paradesk.ModuleProduct.Resource(), productID, nil)
}

func (m *products) GetList(ctx context.Context, query *paradesk.Query) (paradesk.PagedList[paradesk.Product], paradesk.CallResult) {
	if query != nil && query.IncludeAllCustomFields {
		schema, result := m.Schema(ctx)
		if !result.HasException && schema != nil {
			m.c.expandCustomFields(query, schema.CustomFields)
		}
	}

	return getList[paradesk.Product](ctx, m.c, paradesk.ModuleProduct.Resource(), query)
}

func (m *products) Insert(ctx context.Context, product *paradesk.Product) paradesk.CallResult {
	result := m.c.createUpdate(ctx, paradesk.ModuleProduct, 0, product, nil)

	if result.ObjectID != 0 {
		product.ID = result.ObjectID
	}

	return result
}

func (m *products) Update(ctx context.Context, product *paradesk.Product) paradesk.CallResult {
	return m.c.createUpdate(ctx, paradesk.ModuleProduct, product.ID, product, nil)
}

func (m *products) Delete(ctx context.Context, productID int64, purge bool) paradesk.CallResult {
	return m.c.deleteObject(ctx, paradesk.ModuleProduct, productID, purge)
}

func (m *products) Schema(ctx context.Context) (*paradesk.Product, paradesk.CallResult) {
	return getSchema[paradesk.Product](ctx, m.c, paradesk.ModuleProduct.Resource())
}
