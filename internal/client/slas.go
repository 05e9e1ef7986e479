package client

import (
	"context"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

// slas is read-only: the vendor exposes no write operations for SLAs.
type slas struct {
	c *client
}

func (m *slas) GetDetails(ctx context.Context, slaID int64) (*paradesk.Sla, paradesk.CallResult) {
	return getDetail[paradesk.Sla](ctx, m.c, paradesk.EntitySla.Resource(), slaID, nil)
}

func (m *slas) GetList(ctx context.Context, query *paradesk.Query) (paradesk.PagedList[paradesk.Sla], paradesk.CallResult) {
	return getList[paradesk.Sla](ctx, m.c, paradesk.EntitySla.Resource(), query)
}
