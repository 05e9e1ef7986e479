package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/paradesk-io/paradesk-go/internal/constants"
	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

// Dispatcher is the call factory: it assembles the URL and body for each
// logical operation, drives the layered retry wrappers, and hands back the
// normalized CallResult. One dispatcher serves one credential scope.
type Dispatcher struct {
	cfg       *paradesk.Config
	urls      *URLBuilder
	transport *Transport
	exec      *retryExecutor
}

// NewDispatcher wires a dispatcher for the given configuration. The
// caller owns the throttle registry; every dispatcher handed the same
// registry shares the per-instance spacing window.
func NewDispatcher(cfg *paradesk.Config, throttle *ThrottleRegistry) *Dispatcher {
	spacing := cfg.CallSpacing
	if spacing == 0 {
		spacing = constants.DefaultCallSpacing
	}

	return &Dispatcher{
		cfg:       cfg,
		urls:      NewURLBuilder(cfg.Host, cfg.Instance, cfg.Department, cfg.Token),
		transport: NewTransport(throttle, cfg.Instance, spacing, cfg.Logger),
		exec:      newRetryExecutor(nil),
	}
}

// URLs exposes the dispatcher's URL builder for cache-key construction.
func (d *Dispatcher) URLs() *URLBuilder {
	return d.urls
}

// CreateUpdate posts a document to a module: POST creates when objectID is
// zero, PUT updates otherwise. Extra arguments ride along unmodified.
func (d *Dispatcher) CreateUpdate(ctx context.Context, module paradesk.Module, objectID int64, doc *paradesk.Document, args []string) paradesk.CallResult {
	method := http.MethodPut
	if objectID == 0 {
		method = http.MethodPost
	}

	if d.cfg.RelaxRequiredFields && module.HasRequiredFields() {
		args = append(args, "_enforceRequiredFields_=false")
	}

	return d.call(ctx, callDescriptor{
		url:      d.urls.Object(module.Resource(), objectID, args),
		method:   method,
		kind:     bodyDocument,
		document: doc,
	})
}

// Delete removes a module object. With purge the record is destroyed;
// without it the record is moved to trash.
func (d *Dispatcher) Delete(ctx context.Context, module paradesk.Module, objectID int64, purge bool) paradesk.CallResult {
	var args []string
	if purge {
		args = append(args, "_purge_=true")
	}

	return d.call(ctx, callDescriptor{
		url:    d.urls.Object(module.Resource(), objectID, args),
		method: http.MethodDelete,
	})
}

// EntityDelete removes a second-level entity object. Entities have no
// trash; the delete is always a purge.
func (d *Dispatcher) EntityDelete(ctx context.Context, entity paradesk.Entity, objectID int64) paradesk.CallResult {
	return d.call(ctx, callDescriptor{
		url:    d.urls.Object(entity.Resource(), objectID, []string{"_purge_=true"}),
		method: http.MethodDelete,
	})
}

// GetDetail fetches a single object by id.
func (d *Dispatcher) GetDetail(ctx context.Context, resource string, objectID int64, args []string) paradesk.CallResult {
	return d.call(ctx, callDescriptor{
		url:    d.urls.Object(resource, objectID, args),
		method: http.MethodGet,
	})
}

// GetList fetches a page of a resource's collection.
func (d *Dispatcher) GetList(ctx context.Context, resource string, args []string) paradesk.CallResult {
	return d.call(ctx, callDescriptor{
		url:    d.urls.Object(resource, 0, args),
		method: http.MethodGet,
	})
}

// GetSchema fetches a resource's blank schema object.
func (d *Dispatcher) GetSchema(ctx context.Context, resource string) paradesk.CallResult {
	return d.call(ctx, callDescriptor{
		url:    d.urls.Schema(resource),
		method: http.MethodGet,
	})
}

// SecondLevelList fetches a page of an entity collection nested under a
// module, such as Ticket/Status.
func (d *Dispatcher) SecondLevelList(ctx context.Context, module paradesk.Module, entity paradesk.Entity, args []string) paradesk.CallResult {
	return d.call(ctx, callDescriptor{
		url:    d.urls.SecondLevel(module.Resource(), entity.Resource(), args),
		method: http.MethodGet,
	})
}

// FileUploadURL asks the server for the one-time target URL of a file
// upload for the module.
func (d *Dispatcher) FileUploadURL(ctx context.Context, module paradesk.Module) paradesk.CallResult {
	return d.call(ctx, callDescriptor{
		url:    d.urls.Custom(module.Resource(), "upload", nil),
		method: http.MethodGet,
	})
}

// FilePerformUpload posts raw file bytes to an upload URL previously
// obtained from FileUploadURL. The URL is used verbatim; it is not built
// from the credential scope.
func (d *Dispatcher) FilePerformUpload(ctx context.Context, uploadURL, name, contentType string, data []byte) paradesk.CallResult {
	return d.call(ctx, callDescriptor{
		url:    uploadURL,
		method: http.MethodPost,
		kind:   bodyAttachment,
		attachment: &attachmentBody{
			name:        name,
			contentType: contentType,
			data:        data,
		},
		authCeiling: constants.UnauthorizedUploadSleepCeiling,
	})
}

// call runs one logical operation through both retry layers: the inner
// throttled call with its overload and auth loops, then the outer
// auto-retry wrapper for intermittent server faults.
func (d *Dispatcher) call(ctx context.Context, desc callDescriptor) paradesk.CallResult {
	result := d.throttledCall(ctx, desc)
	attempt := 1

	if d.cfg.AutoRetry != paradesk.AutoRetryDisabled && paradesk.IsServerFault(&result) {
		for attempt < constants.AutoRetryMaxAttempts && faultPersists(&result) {
			attempt++
			d.logRetry(&desc, &result, attempt)
			d.exec.sleep(autoRetryDelay(attempt, d.cfg.AutoRetry))

			result = d.throttledCall(ctx, desc)
		}
	}

	result.AutomatedRetries = attempt

	return result
}

// faultPersists is the continuation test for the auto-retry loop. Unlike
// the entry test it does not exempt the ticket-status rejection: once the
// loop is running, any 500 keeps it going until the attempt cap.
func faultPersists(r *paradesk.CallResult) bool {
	return r.HTTPResponseCode == http.StatusInternalServerError ||
		r.HTTPResponseCode == http.StatusUnauthorized ||
		strings.Contains(r.ExceptionDetails, paradesk.UnexpectedErrorText)
}

// throttledCall issues the call once, then runs the two inner retry loops
// in sequence: first the long-sleep overload loop, then the short-sleep
// auth loop. Each loop evaluates the previous outcome before making any
// further request, so a call that comes back clean costs exactly one
// round trip.
func (d *Dispatcher) throttledCall(ctx context.Context, desc callDescriptor) paradesk.CallResult {
	op := func() paradesk.CallResult {
		return d.transport.Execute(ctx, desc)
	}

	result := d.exec.run(op(), op, paradesk.IsOverloaded, unavailablePolicy)

	ceiling := desc.authCeiling
	if ceiling == 0 {
		ceiling = constants.UnauthorizedSleepCeiling
	}

	return d.exec.run(result, op, paradesk.IsTransientAuth, unauthorizedPolicy(ceiling))
}

func (d *Dispatcher) logRetry(desc *callDescriptor, r *paradesk.CallResult, attempt int) {
	if !d.cfg.LogRetries || d.cfg.Logger == nil {
		return
	}

	d.cfg.Logger.Warn("retrying API call", map[string]interface{}{
		"method":       desc.method,
		"url":          desc.url,
		"status":       r.HTTPResponseCode,
		"attempt":      attempt,
		"max":          constants.AutoRetryMaxAttempts,
		"delay":        autoRetryDelay(attempt, d.cfg.AutoRetry).String(),
		"details":      truncate(r.ExceptionDetails, 200),
		"xml_sent":     truncate(r.XMLSent.String(), 200),
		"xml_received": truncate(r.XMLReceived.String(), 200),
	})
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit] + "..."
}
