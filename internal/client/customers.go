package client

import (
	"context"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

type customers struct {
	c *client
}

func (m *customers) GetDetails(ctx context.Context, customerID int64) (*paradesk.Customer, paradesk.CallResult) {
	return getDetail[paradesk.Customer](ctx, m.c, paradesk.ModuleCustomer.Resource(), customerID, nil)
}

func (m *customers) GetList(ctx context.Context, query *paradesk.Query) (paradesk.PagedList[paradesk.Customer], paradesk.CallResult) {
	if query != nil && query.IncludeAllCustomFields {
		schema, result := m.Schema(ctx)
		if !result.HasException && schema != nil {
			m.c.expandCustomFields(query, schema.CustomFields)
		}
	}

	return getList[paradesk.Customer](ctx, m.c, paradesk.ModuleCustomer.Resource(), query)
}

func (m *customers) Insert(ctx context.Context, customer *paradesk.Customer, opts *paradesk.WriteOptions) paradesk.CallResult {
	result := m.c.createUpdate(ctx, paradesk.ModuleCustomer, 0, customer, writeArgs(opts))

	if result.ObjectID != 0 {
		customer.ID = result.ObjectID
	}

	return result
}

func (m *customers) Update(ctx context.Context, customer *paradesk.Customer, opts *paradesk.WriteOptions) paradesk.CallResult {
	return m.c.createUpdate(ctx, paradesk.ModuleCustomer, customer.ID, customer, writeArgs(opts))
}

func (m *customers) Delete(ctx context.Context, customerID int64, purge bool) paradesk.CallResult {
	return m.c.deleteObject(ctx, paradesk.ModuleCustomer, customerID, purge)
}

func (m *customers) Schema(ctx context.Context) (*paradesk.Customer, paradesk.CallResult) {
	return getSchema[paradesk.Customer](ctx, m.c, paradesk.ModuleCustomer.Resource())
}

func (m *customers) SchemaWithCustomFieldTypes(ctx context.Context) (*paradesk.Customer, paradesk.CallResult) {
	schema, result := m.Schema(ctx)
	if result.HasException || schema == nil {
		return schema, result
	}

	schema.CustomFields = m.c.probeCustomFieldTypes(ctx, paradesk.ModuleCustomer, schema.CustomFields)

	return schema, result
}

// writeArgs renders customer notification options into call arguments.
func writeArgs(opts *paradesk.WriteOptions) []string {
	if opts == nil || !opts.Notify {
		return nil
	}

	args := []string{"_notify_=true"}
	if opts.IncludePassword {
		args = append(args, "_includePassword_=true")
	}

	return args
}
