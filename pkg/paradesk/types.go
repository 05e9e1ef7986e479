package paradesk

import "time"

// Module identifies a first-level Paradesk module.
type Module string

// Paradesk modules.
const (
	ModuleCustomer Module = "Customer"
	ModuleTicket   Module = "Ticket"
	ModuleAccount  Module = "Account"
	ModuleProduct  Module = "Product"
	ModuleAsset    Module = "Asset"
	ModuleArticle  Module = "Article"
	ModuleDownload Module = "Download"
)

// Resource returns the module's URL path segment.
func (m Module) Resource() string {
	return string(m)
}

// HasRequiredFields reports whether the module carries required-field
// validation that `_enforceRequiredFields_` can relax. The call factory
// consults it when assembling create/update arguments.
func (m Module) HasRequiredFields() bool {
	switch m {
	case ModuleTicket, ModuleAccount, ModuleCustomer, ModuleProduct, ModuleAsset:
		return true
	default:
		return false
	}
}

// Entity identifies a second-level Paradesk entity, reachable either
// directly or nested under a module.
type Entity string

// Paradesk entities.
const (
	EntitySla           Entity = "Sla"
	EntityRole          Entity = "Role"
	EntityStatus        Entity = "Status"
	EntityQueue         Entity = "Queue"
	EntityArticleFolder Entity = "ArticleFolder"
	EntityAttachment    Entity = "Attachment"
)

// Resource returns the entity's URL path segment.
func (e Entity) Resource() string {
	return string(e)
}

// AutoRetryMode selects the backoff profile the auto-retry wrapper applies
// to intermittent server faults.
type AutoRetryMode int

// Auto-retry modes.
const (
	// AutoRetryDisabled turns the auto-retry wrapper off entirely.
	AutoRetryDisabled AutoRetryMode = iota

	// AutoRetryDefault retries on a fast schedule suited to interactive use.
	AutoRetryDefault

	// AutoRetryLongRunning retries on a slow schedule suited to batch
	// processes that prefer eventual success over latency.
	AutoRetryLongRunning
)

// String implements fmt.Stringer.
func (m AutoRetryMode) String() string {
	switch m {
	case AutoRetryDefault:
		return "default"
	case AutoRetryLongRunning:
		return "long-running"
	default:
		return "disabled"
	}
}

// CallResult is the normalized outcome of one logical API operation. Every
// public operation in the SDK returns one; no remote failure is ever
// surfaced as a Go error.
type CallResult struct {
	// CalledURL is the fully built request URL.
	CalledURL string

	// HTTPMethod is the verb used for the call.
	HTTPMethod string

	// HTTPResponseCode is the numeric HTTP status. 0 means no response was
	// obtainable at all; -1 means a response arrived but its status could
	// not be read.
	HTTPResponseCode int

	// HasException is true iff the call did not complete as a clean success.
	HasException bool

	// ExceptionDetails is a human-readable diagnostic. Empty whenever
	// HasException is false.
	ExceptionDetails string

	// XMLSent is the document transmitted with the call, nil when the call
	// carried no body.
	XMLSent *Document

	// XMLReceived is the parsed response body. Nil when the body was absent
	// or not well-formed XML; a parse failure alone is not an exception.
	XMLReceived *Document

	// ObjectID is the identifier of a newly created resource, extracted
	// from the `id` attribute of a 201 response's root element. 0 when
	// absent or unparseable.
	ObjectID int64

	// AutomatedRetries is the number of attempts made by the auto-retry
	// wrapper, the first call included. Starts at 1.
	AutomatedRetries int
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config carries the credentials and behavior switches for a client.
type Config struct {
	// Host is the API server farm, e.g. "api.paradesk.example".
	Host string

	// Instance is the numeric account/instance identifier. It keys the
	// call-spacing throttle: all calls a client makes for one instance
	// share the spacing window.
	Instance int64

	// Department is the department the credentials are scoped to.
	Department int64

	// Token is the API token issued for the instance.
	Token string

	// AutoRetry selects the profile for retrying intermittent server
	// faults. Disabled by default.
	AutoRetry AutoRetryMode

	// CallSpacing is the minimum gap enforced between consecutive calls to
	// the same instance. Zero selects the default spacing.
	CallSpacing time.Duration

	// LogRetries emits a diagnostic record per auto-retry attempt through
	// the configured Logger.
	LogRetries bool

	// RelaxRequiredFields turns off the vendor's required-field validation
	// on create/update calls by passing `_enforceRequiredFields_=false` for
	// the modules that support it. Enforcement stays on by default.
	RelaxRequiredFields bool

	// Logger receives debug and retry diagnostics. Nil means silent.
	Logger Logger

	// Cache configures the optional read-through cache for GET calls.
	// Nil disables caching.
	Cache *CacheConfig
}
