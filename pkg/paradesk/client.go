package paradesk

import "context"

// WriteOptions carries the optional switches for customer create/update
// calls. A nil options value means no notification.
type WriteOptions struct {
	// Notify sends the vendor's notification email to the customer.
	Notify bool

	// IncludePassword includes the password in the notification. Only
	// honored when Notify is set.
	IncludePassword bool
}

// CustomersClient operates on the Customer module.
type CustomersClient interface {
	GetDetails(ctx context.Context, customerID int64) (*Customer, CallResult)
	GetList(ctx context.Context, query *Query) (PagedList[Customer], CallResult)
	Insert(ctx context.Context, customer *Customer, opts *WriteOptions) CallResult
	Update(ctx context.Context, customer *Customer, opts *WriteOptions) CallResult
	Delete(ctx context.Context, customerID int64, purge bool) CallResult
	Schema(ctx context.Context) (*Customer, CallResult)
	SchemaWithCustomFieldTypes(ctx context.Context) (*Customer, CallResult)
}

// TicketsClient operates on the Ticket module.
type TicketsClient interface {
	GetDetails(ctx context.Context, ticketID int64) (*Ticket, CallResult)
	GetDetailsWithHistory(ctx context.Context, ticketID int64) (*Ticket, CallResult)
	GetList(ctx context.Context, query *Query) (PagedList[Ticket], CallResult)
	GetStatusList(ctx context.Context, query *Query) (PagedList[Status], CallResult)
	Insert(ctx context.Context, ticket *Ticket) CallResult
	Update(ctx context.Context, ticket *Ticket) CallResult
	Delete(ctx context.Context, ticketID int64, purge bool) CallResult
	Schema(ctx context.Context) (*Ticket, CallResult)
	SchemaWithCustomFieldTypes(ctx context.Context) (*Ticket, CallResult)
}

// AccountsClient operates on the Account module.
type AccountsClient interface {
	GetDetails(ctx context.Context, accountID int64) (*Account, CallResult)
	GetList(ctx context.Context, query *Query) (PagedList[Account], CallResult)
	Insert(ctx context.Context, account *Account) CallResult
	Update(ctx context.Context, account *Account) CallResult
	Delete(ctx context.Context, accountID int64, purge bool) CallResult
	Schema(ctx context.Context) (*Account, CallResult)
	SchemaWithCustomFieldTypes(ctx context.Context) (*Account, CallResult)
}

// ProductsClient operates on the Product module.
type ProductsClient interface {
	GetDetails(ctx context.Context, productID int64) (*Product, CallResult)
	GetList(ctx context.Context, query *Query) (PagedList[Product], CallResult)
	Insert(ctx context.Context, product *Product) CallResult
	Update(ctx context.Context, product *Product) CallResult
	Delete(ctx context.Context, productID int64, purge bool) CallResult
	Schema(ctx context.Context) (*Product, CallResult)
}

// AssetsClient operates on the Asset module.
type AssetsClient interface {
	GetDetails(ctx context.Context, assetID int64) (*Asset, CallResult)
	GetList(ctx context.Context, query *Query) (PagedList[Asset], CallResult)
	Insert(ctx context.Context, asset *Asset) CallResult
	Update(ctx context.Context, asset *Asset) CallResult
	Delete(ctx context.Context, assetID int64, purge bool) CallResult
	Schema(ctx context.Context) (*Asset, CallResult)
}

// SlasClient reads the SLA entity. SLAs cannot be written through the API.
type SlasClient interface {
	GetDetails(ctx context.Context, slaID int64) (*Sla, CallResult)
	GetList(ctx context.Context, query *Query) (PagedList[Sla], CallResult)
}

// ArticlesClient operates on the knowledge-base Article module and its
// folder entity.
type ArticlesClient interface {
	GetDetails(ctx context.Context, articleID int64) (*Article, CallResult)
	GetList(ctx context.Context, query *Query) (PagedList[Article], CallResult)
	Insert(ctx context.Context, article *Article) CallResult
	Update(ctx context.Context, article *Article) CallResult
	Delete(ctx context.Context, articleID int64, purge bool) CallResult
	Schema(ctx context.Context) (*Article, CallResult)

	GetFolder(ctx context.Context, folderID int64) (*ArticleFolder, CallResult)
	GetFolderList(ctx context.Context, query *Query) (PagedList[ArticleFolder], CallResult)
	DeleteFolder(ctx context.Context, folderID int64) CallResult
}

// AttachmentsClient uploads files for later linking to module objects.
type AttachmentsClient interface {
	// UploadURL fetches the one-time target URL for a file upload.
	UploadURL(ctx context.Context, module Module) (string, CallResult)

	// Upload fetches the upload URL and posts the file to it in one step.
	Upload(ctx context.Context, module Module, name, contentType string, data []byte) (*Attachment, CallResult)
}

// Client is the top-level SDK surface: one sub-client per module.
type Client interface {
	Customers() CustomersClient
	Tickets() TicketsClient
	Accounts() AccountsClient
	Products() ProductsClient
	Assets() AssetsClient
	Slas() SlasClient
	Articles() ArticlesClient
	Attachments() AttachmentsClient
}
