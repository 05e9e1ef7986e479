// Package client implements the public Client interface: one facade per
// module, composed over the dispatch core in internal/api. Facades decode
// response documents into typed entities and drive the read-through
// response cache; all throttling and retry behavior lives below them.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/paradesk-io/paradesk-go/internal/api"
	"github.com/paradesk-io/paradesk-go/internal/constants"
	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

type client struct {
	cfg      *paradesk.Config
	disp     *api.Dispatcher
	cache    paradesk.Cache
	cacheTTL time.Duration

	customers   *customers
	tickets     *tickets
	accounts    *accounts
	products    *products
	assets      *assets
	slas        *slas
	articles    *articles
	attachments *attachments
}

// New validates the configuration and builds a client. Each client owns
// its throttle registry; calls made through one client to the same
// instance share the spacing window.
func New(cfg *paradesk.Config) (paradesk.Client, error) {
	if cfg == nil {
		return nil, paradesk.ErrConfigRequired
	}

	if cfg.Host == "" {
		return nil, paradesk.ErrHostRequired
	}

	if cfg.Instance == 0 {
		return nil, paradesk.ErrInstanceRequired
	}

	if cfg.Token == "" {
		return nil, paradesk.ErrTokenRequired
	}

	cache, err := paradesk.NewCacheFromConfig(cfg.Cache)
	if err != nil {
		return nil, err
	}

	cacheTTL := constants.DefaultCacheTTL
	if cfg.Cache != nil && cfg.Cache.TTL > 0 {
		cacheTTL = cfg.Cache.TTL
	}

	c := &client{
		cfg:      cfg,
		disp:     api.NewDispatcher(cfg, api.NewThrottleRegistry()),
		cache:    cache,
		cacheTTL: cacheTTL,
	}

	c.customers = &customers{c: c}
	c.tickets = &tickets{c: c}
	c.accounts = &accounts{c: c}
	c.products = &products{c: c}
	c.assets = &assets{c: c}
	c.slas = &slas{c: c}
	c.articles = &articles{c: c}
	c.attachments = &attachments{c: c}

	return c, nil
}

func (c *client) Customers() paradesk.CustomersClient     { return c.customers }
func (c *client) Tickets() paradesk.TicketsClient         { return c.tickets }
func (c *client) Accounts() paradesk.AccountsClient       { return c.accounts }
func (c *client) Products() paradesk.ProductsClient       { return c.products }
func (c *client) Assets() paradesk.AssetsClient           { return c.assets }
func (c *client) Slas() paradesk.SlasClient               { return c.slas }
func (c *client) Articles() paradesk.ArticlesClient       { return c.articles }
func (c *client) Attachments() paradesk.AttachmentsClient { return c.attachments }

// cacheLookup returns the cached document for a call URL, or nil.
func (c *client) cacheLookup(ctx context.Context, key string) *paradesk.Document {
	entry, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	doc, err := paradesk.ParseDocument(entry.Data)
	if err != nil {
		return nil
	}

	return doc
}

// cacheStore writes a clean GET response through to the cache.
func (c *client) cacheStore(ctx context.Context, key string, result *paradesk.CallResult) {
	if result.HasException || result.XMLReceived == nil {
		return
	}

	_ = c.cache.Set(ctx, key, &paradesk.CacheEntry{
		Data:     result.XMLReceived.Bytes(),
		StoredAt: time.Now(),
		TTL:      c.cacheTTL,
	})
}

// invalidate drops the cached detail entry for an object after a write.
// List entries are left to expire by TTL.
func (c *client) invalidate(ctx context.Context, resource string, objectID int64) {
	if objectID == 0 {
		return
	}

	_ = c.cache.Delete(ctx, c.disp.URLs().Object(resource, objectID, nil))
}

// cachedResult synthesizes the CallResult for a cache hit. No request was
// made, so there is nothing to report beyond the reconstructed response.
func cachedResult(key string, doc *paradesk.Document) paradesk.CallResult {
	return paradesk.CallResult{
		CalledURL:        key,
		HTTPMethod:       http.MethodGet,
		HTTPResponseCode: http.StatusOK,
		XMLReceived:      doc,
		AutomatedRetries: 1,
	}
}

// localFailure reports a client-side failure, such as a body that cannot
// be serialized, in CallResult form. Code 0 marks that no request was made.
func localFailure(err error) paradesk.CallResult {
	return paradesk.CallResult{
		HasException:     true,
		ExceptionDetails: err.Error(),
		AutomatedRetries: 1,
	}
}

// createUpdate serializes an entity and dispatches the write, invalidating
// the cached detail entry on success.
func (c *client) createUpdate(ctx context.Context, module paradesk.Module, objectID int64, entity interface{}, args []string) paradesk.CallResult {
	doc, err := paradesk.NewDocument(entity)
	if err != nil {
		return localFailure(err)
	}

	result := c.disp.CreateUpdate(ctx, module, objectID, doc, args)

	if !result.HasException {
		c.invalidate(ctx, module.Resource(), objectID)
	}

	return result
}

// deleteObject dispatches a module delete and invalidates the cached entry.
func (c *client) deleteObject(ctx context.Context, module paradesk.Module, objectID int64, purge bool) paradesk.CallResult {
	result := c.disp.Delete(ctx, module, objectID, purge)

	if !result.HasException {
		c.invalidate(ctx, module.Resource(), objectID)
	}

	return result
}

// getDetail fetches one object through the cache and decodes it.
func getDetail[T any](ctx context.Context, c *client, resource string, objectID int64, args []string) (*T, paradesk.CallResult) {
	key := c.disp.URLs().Object(resource, objectID, args)

	if doc := c.cacheLookup(ctx, key); doc != nil {
		return decodeEntity[T](doc, cachedResult(key, doc))
	}

	result := c.disp.GetDetail(ctx, resource, objectID, args)
	c.cacheStore(ctx, key, &result)

	return decodeEntity[T](result.XMLReceived, result)
}

// getSchema fetches the blank schema object for a resource. Schema calls
// bypass the cache; they are rare and the probing path mutates state.
func getSchema[T any](ctx context.Context, c *client, resource string) (*T, paradesk.CallResult) {
	result := c.disp.GetSchema(ctx, resource)

	return decodeEntity[T](result.XMLReceived, result)
}

// decodeEntity turns a response document into a typed entity. A failed
// call or an undecodable body yields a nil entity with the result
// untouched; the CallResult stays the source of truth for what happened.
func decodeEntity[T any](doc *paradesk.Document, result paradesk.CallResult) (*T, paradesk.CallResult) {
	if result.HasException || doc == nil {
		return nil, result
	}

	var entity T

	err := doc.Decode(&entity)
	if err != nil {
		return nil, result
	}

	return &entity, result
}

// getList fetches a page of a resource, or every page when the query asks
// to retrieve all. Retrieve-all pages sequentially at the bulk page size
// and stops on the first failed call, returning what was accumulated.
func getList[T any](ctx context.Context, c *client, resource string, query *paradesk.Query) (paradesk.PagedList[T], paradesk.CallResult) {
	if query == nil {
		query = paradesk.NewQuery()
	}

	if !query.RetrieveAll {
		return fetchPage[T](ctx, c, resource, query.BuildArguments())
	}

	paging := *query
	paging.PageNumber = 1

	if paging.PageSize == 0 {
		paging.PageSize = constants.RetrieveAllPageSize
	}

	var all paradesk.PagedList[T]

	for {
		page, result := fetchPage[T](ctx, c, resource, paging.BuildArguments())
		all.CallResult = result

		if result.HasException {
			return all, result
		}

		all.Total = page.Total
		all.PageNumber = page.PageNumber
		all.PageSize = page.PageSize
		all.Data = append(all.Data, page.Data...)
		all.ResultsReturned = len(all.Data)

		if len(page.Data) == 0 || len(all.Data) >= page.Total {
			return all, all.CallResult
		}

		paging.PageNumber++
	}
}

// fetchPage fetches a single list page through the cache.
func fetchPage[T any](ctx context.Context, c *client, resource string, args []string) (paradesk.PagedList[T], paradesk.CallResult) {
	key := c.disp.URLs().Object(resource, 0, args)

	if doc := c.cacheLookup(ctx, key); doc != nil {
		return decodePage[T](doc, cachedResult(key, doc))
	}

	result := c.disp.GetList(ctx, resource, args)
	c.cacheStore(ctx, key, &result)

	return decodePage[T](result.XMLReceived, result)
}

func decodePage[T any](doc *paradesk.Document, result paradesk.CallResult) (paradesk.PagedList[T], paradesk.CallResult) {
	page := paradesk.PagedList[T]{CallResult: result}

	if result.HasException || doc == nil {
		return page, result
	}

	parsed, err := paradesk.ParsePage[T](doc)
	if err != nil {
		return page, result
	}

	parsed.CallResult = result

	return parsed, result
}

// expandCustomFields adds every custom field from the module schema to the
// query's include list. Used when a query asks for all custom fields.
func (c *client) expandCustomFields(query *paradesk.Query, fields []paradesk.CustomField) {
	for _, field := range fields {
		query.IncludeCustomField(field.ID)
	}
}
