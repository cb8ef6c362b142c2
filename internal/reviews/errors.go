package reviews

import "errors"

var ErrNotFound = errors.New("not found")

const (
	ErrorCodeMalformedInput      = "MALFORMED_INPUT"
	ErrorCodeInsufficientContent = "INSUFFICIENT_CONTENT"
	ErrorCodeUnsupportedType     = "UNSUPPORTED_TYPE"
	ErrorCodeStorage             = "STORAGE_ERROR"
	ErrorCodeInternal            = "INTERNAL_ERROR"
)
