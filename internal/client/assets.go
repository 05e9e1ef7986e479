package client

import (
	"context"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

type assets struct {
	c *client
}

func (m *assets) GetDetails(ctx context.Context, assetID int64) (*paradesk.Asset, paradesk.CallResult) {
	return getDetail[paradesk.Asset](ctx, m.c, paradesk.ModuleAsset.Resource(), assetID, nil)
}

func (m *assets) GetList(ctx context.Context, query *paradesk.Query) (paradesk.PagedList[paradesk.Asset], paradesk.CallResult) {
	if query != nil && query.IncludeAllCustomFields {
		schema, result := m.Schema(ctx)
		if !result.HasException && schema != nil {
			m.c.expandCustomFields(query, schema.CustomFields)
		}
	}

	return getList[paradesk.Asset](ctx, m.c, paradesk.ModuleAsset.Resource(), query)
}

func (m *assets) Insert(ctx context.Context, asset *paradesk.Asset) paradesk.CallResult {
	result := m.c.createUpdate(ctx, paradesk.ModuleAsset, 0, asset, nil)

	if result.ObjectID != 0 {
		asset.ID = result.ObjectID
	}

	return result
}

func (m *assets) Update(ctx context.Context, asset *paradesk.Asset) paradesk.CallResult {
	return m.c.createUpdate(ctx, paradesk.ModuleAsset, asset.ID, asset, nil)
}

func (m *assets) Delete(ctx context.Context, assetID int64, purge bool) paradesk.CallResult {
	return m.c.deleteObject(ctx, paradesk.ModuleAsset, assetID, purge)
}

func (m *assets) Schema(ctx context.Context) (*paradesk.Asset, paradesk.CallResult) {
	return getSchema[paradesk.Asset](ctx, m.c, paradesk.ModuleAsset.Resource())
}
