package analysis

import "errors"

// Input-shape errors, detected before any external call.
var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrMessageTooLong = errors.New("message exceeds maximum length")
	ErrURLTooLong     = errors.New("url exceeds maximum length")
	ErrInvalidURL     = errors.New("url has no parseable hostname")
)

// Classifier-side errors.
var (
	// ErrClassifierUnavailable indicates the external classifier could not
	// be reached at all (network failure, process spawn failure).
	ErrClassifierUnavailable = errors.New("classifier unavailable")

	// ErrSchemaViolation indicates model output that still failed to parse
	// after the single repair pass.
	ErrSchemaViolation = errors.New("model output violates result schema")

	// ErrAnalysisFailed is the catch-all surfaced to the caller once repair
	// is exhausted. Never carries provider detail.
	ErrAnalysisFailed = errors.New("analysis failed")
)
