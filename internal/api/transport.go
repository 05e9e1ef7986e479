package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/paradesk-io/paradesk-go/internal/constants"
	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

// bodyKind tags the three request shapes the API accepts.
type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyDocument
	bodyAttachment
)

// attachmentBody is a file upload: raw bytes plus the content type and the
// name used in the vendor's framing.
type attachmentBody struct {
	name        string
	contentType string
	data        []byte
}

// callDescriptor is one logical call: target, verb, and at most one body.
type callDescriptor struct {
	url        string
	method     string
	kind       bodyKind
	document   *paradesk.Document
	attachment *attachmentBody

	// authCeiling is the accumulated-sleep ceiling for the 401 retry loop.
	// Raw-byte uploads tolerate more retries than other call shapes.
	authCeiling time.Duration
}

// Transport performs exactly one physical HTTP request per Execute call
// and normalizes whatever happens into a CallResult. It carries no retry
// logic; the wrappers above it own that.
type Transport struct {
	httpClient   *http.Client
	uploadClient *http.Client
	throttle     *ThrottleRegistry
	instance     int64
	spacing      time.Duration
	logger       paradesk.Logger
}

// NewTransport builds a transport bound to one instance's throttle scope.
func NewTransport(throttle *ThrottleRegistry, instance int64, spacing time.Duration, logger paradesk.Logger) *Transport {
	base := cleanhttp.DefaultTransport()
	base.DisableKeepAlives = true

	upload := cleanhttp.DefaultTransport()
	upload.DisableKeepAlives = true

	// Uploads carry no overall deadline, so stall detection happens at the
	// connection: every Write refreshes a deadline, failing only transfers
	// that stop moving entirely.
	baseDial := upload.DialContext
	upload.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := baseDial(ctx, network, addr)
		if err != nil {
			return nil, err
		}

		return &writeDeadlineConn{Conn: conn, tolerance: constants.UploadWriteTimeout}, nil
	}

	return &Transport{
		httpClient: &http.Client{
			Transport: base,
			Timeout:   constants.RequestTimeout,
		},
		// Uploads run without an overall deadline so large files over slow
		// links survive; this asymmetry is part of the call contract.
		uploadClient: &http.Client{
			Transport: upload,
		},
		throttle: throttle,
		instance: instance,
		spacing:  spacing,
		logger:   logger,
	}
}

// Execute performs the described call. Every failure mode lands in the
// returned CallResult; the error return of the underlying HTTP client
// never escapes.
func (t *Transport) Execute(ctx context.Context, desc callDescriptor) (result paradesk.CallResult) {
	result = paradesk.CallResult{
		CalledURL:        desc.url,
		HTTPMethod:       desc.method,
		AutomatedRetries: 1,
	}

	// The pause is a blocking wait, not advisory: no request leaves this
	// method before the instance's spacing window has elapsed.
	t.throttle.Pause(t.instance, t.spacing)
	defer t.throttle.RecordCompletion(t.instance)
	defer normalizeDocuments(&result)

	var (
		body   io.Reader
		client = t.httpClient
	)

	switch desc.kind {
	case bodyDocument:
		result.XMLSent = desc.document
		body = bytes.NewReader(desc.document.Bytes())
	case bodyAttachment:
		client = t.uploadClient
		body = bytes.NewReader(frameAttachment(desc.attachment))
	case bodyNone:
	}

	req, err := http.NewRequestWithContext(ctx, desc.method, desc.url, body)
	if err != nil {
		return t.noResponse(result, err)
	}

	req.Close = true

	switch desc.kind {
	case bodyDocument:
		// The vendor expects this content type on raw XML bodies. The body
		// is not actually form-encoded; do not "fix" this.
		req.Header.Set("Content-Type", constants.DocumentContentType)
	case bodyAttachment:
		req.Header.Set("Content-Type", desc.attachment.contentType+"; boundary:"+constants.UploadBoundary)
	case bodyNone:
	}

	t.debugf("API request", map[string]interface{}{
		"method": desc.method,
		"url":    desc.url,
	})

	resp, err := client.Do(req)
	if err != nil {
		return t.noResponse(result, err)
	}

	defer func() { _ = resp.Body.Close() }()

	responseBody, readErr := io.ReadAll(resp.Body)
	result.HTTPResponseCode = resp.StatusCode

	t.debugf("API response", map[string]interface{}{
		"method": desc.method,
		"url":    desc.url,
		"status": resp.StatusCode,
	})

	if resp.StatusCode < http.StatusBadRequest {
		return t.success(result, resp.StatusCode, responseBody, readErr)
	}

	return t.failure(result, resp.StatusCode, responseBody)
}

// success handles any status below 400. A body that fails to parse is not
// an error; the caller just gets no document.
func (t *Transport) success(result paradesk.CallResult, status int, body []byte, readErr error) paradesk.CallResult {
	if readErr != nil {
		// A status line arrived but the body did not survive.
		result.HasException = true
		result.ExceptionDetails = readErr.Error()
		result.HTTPResponseCode = -1

		return result
	}

	doc, err := paradesk.ParseDocument(body)
	if err == nil {
		result.XMLReceived = doc
	}

	if status == http.StatusCreated && result.XMLReceived != nil {
		result.ObjectID = result.XMLReceived.Root().IntAttr("id")
	}

	result.HasException = false
	result.ExceptionDetails = ""

	return result
}

// failure handles 4xx/5xx responses. The server's own error document,
// when present and well-formed, is authoritative over the transport
// status line.
func (t *Transport) failure(result paradesk.CallResult, status int, body []byte) paradesk.CallResult {
	result.HasException = true
	result.ExceptionDetails = fmt.Sprintf("the remote server returned an error: (%d) %s",
		status, http.StatusText(status))

	if len(body) == 0 {
		return result
	}

	result.ExceptionDetails += "\nException response:" + string(body)

	doc, err := paradesk.ParseDocument(body)
	if err != nil {
		return result
	}

	result.XMLReceived = doc

	if strings.ToLower(doc.RootName()) == "error" {
		if code := doc.RootAttr("code"); code != "" {
			parsed, parseErr := strconv.Atoi(code)
			if parseErr == nil {
				result.HTTPResponseCode = parsed
			}
		}

		if message := doc.RootAttr("message"); message != "" {
			result.ExceptionDetails = message
		}
	}

	return result
}

// noResponse handles calls that produced no HTTP response at all. The
// status is promoted from 0 to 503 so the overload retry loop picks the
// condition up; "no response" and "server says unavailable" are treated
// the same way.
func (t *Transport) noResponse(result paradesk.CallResult, err error) paradesk.CallResult {
	result.HasException = true
	result.ExceptionDetails = err.Error()

	if result.HTTPResponseCode == 0 {
		result.HTTPResponseCode = http.StatusServiceUnavailable
	}

	return result
}

// normalizeDocuments drops documents whose serialized form is empty. A
// zero-content success is "no document", never an empty one; downstream
// parsers rely on that.
func normalizeDocuments(result *paradesk.CallResult) {
	if result.XMLReceived.IsEmpty() {
		result.XMLReceived = nil
	}

	if result.XMLSent.IsEmpty() {
		result.XMLSent = nil
	}
}

// writeDeadlineConn stamps a fresh write deadline before every Write. An
// upload that keeps moving never hits it; one that stalls for the full
// tolerance fails instead of hanging forever.
type writeDeadlineConn struct {
	net.Conn
	tolerance time.Duration
}

func (c *writeDeadlineConn) Write(p []byte) (int, error) {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(c.tolerance)); err != nil {
		return 0, err
	}

	return c.Conn.Write(p)
}

// frameAttachment reproduces the vendor's single-part upload framing
// byte-for-byte: boundary line, disposition and type headers, blank line,
// payload, closing boundary.
func frameAttachment(att *attachmentBody) []byte {
	var buf bytes.Buffer

	buf.WriteString(constants.UploadBoundary + constants.LineBreak)
	buf.WriteString(fmt.Sprintf("Content-Disposition: %s; name=\"%s\"; filename=\"%s\"",
		att.contentType, att.name, att.name))
	buf.WriteString(constants.LineBreak)
	buf.WriteString("Content-Type: " + att.contentType + constants.LineBreak)
	buf.WriteString(constants.LineBreak)
	buf.Write(att.data)
	buf.WriteString(constants.LineBreak + constants.UploadBoundary + "--")

	return buf.Bytes()
}

func (t *Transport) debugf(msg string, fields map[string]interface{}) {
	if t.logger != nil {
		t.logger.Debug(msg, fields)
	}
}
