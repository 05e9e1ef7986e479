package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// RequestTimeout bounds document-body and bodiless API calls.
	RequestTimeout = 120 * time.Second

	// UploadWriteTimeout is the per-write tolerance for attachment uploads.
	// Uploads deliberately carry no overall deadline so that large files
	// over slow links are not cut off mid-transfer.
	UploadWriteTimeout = 10 * time.Minute
)

// Service-unavailable retry schedule. The loop sleeps, retries, and stops
// once the next sleep value would reach the ceiling.
const (
	// UnavailableInitialSleep is the first sleep after a 503 or an
	// unreachable server.
	UnavailableInitialSleep = 121 * time.Second

	// UnavailableSleepIncrement is added to the sleep for each further retry.
	UnavailableSleepIncrement = 60 * time.Second

	// UnavailableSleepCeiling terminates the unavailable-retry loop.
	UnavailableSleepCeiling = 240 * time.Second
)

// Unauthorized retry schedule. The vendor intermittently rejects valid
// tokens with 401; a short fixed-interval retry rides those out.
const (
	// UnauthorizedSleep is the fixed sleep between 401 retries.
	UnauthorizedSleep = 2 * time.Second

	// UnauthorizedSleepCeiling terminates the 401 loop for document and
	// bodiless calls.
	UnauthorizedSleepCeiling = 6 * time.Second

	// UnauthorizedUploadSleepCeiling terminates the 401 loop for raw-byte
	// attachment uploads, which are costlier to restart from the caller side.
	UnauthorizedUploadSleepCeiling = 10 * time.Second
)

// Auto-retry limits for intermittent server faults.
const (
	// AutoRetryMaxAttempts caps the total attempts made by the auto-retry
	// wrapper, first call included.
	AutoRetryMaxAttempts = 5
)

// Wire-format constants. These reproduce the vendor's framing exactly and
// must not be normalized to RFC-compliant forms.
const (
	// UploadBoundary is the literal multipart boundary token, leading dashes
	// included, expected by the upload endpoint.
	UploadBoundary = "--ParaBoundary"

	// DocumentContentType is the content type the vendor expects on XML
	// document bodies. The body is raw XML, not form-encoded; this mismatch
	// is part of the vendor contract.
	DocumentContentType = "application/x-www-form-urlencoded"

	// LineBreak is the upload framing line terminator.
	LineBreak = "\r\n"
)

// Pagination and display limits.
const (
	// DefaultPageSize is the page size the API applies when none is given.
	DefaultPageSize = 25

	// RetrieveAllPageSize is the page size used when pulling every record.
	RetrieveAllPageSize = 500
)

// Throttling defaults.
const (
	// DefaultCallSpacing is the minimum gap between calls to the same
	// instance when the configuration does not specify one.
	DefaultCallSpacing = 500 * time.Millisecond
)

// Cache defaults.
const (
	// DefaultCacheSize is the maximum entry count for the memory cache.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is how long cached GET responses stay fresh.
	DefaultCacheTTL = 5 * time.Minute
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)
