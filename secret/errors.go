package secret

import "errors"

// Sentinel errors for hint resolution. Resolution errors wrap one of
// these plus the hint's non-sensitive metadata (variable name or file
// path); secret content never appears in an error message.
var (
	ErrMissingVariable = errors.New("secret: environment variable not set")
	ErrFileNotFound    = errors.New("secret: secret file not found")
	ErrFileUnreadable  = errors.New("secret: secret file not readable")
	ErrInvalidEncoding = errors.New("secret: secret is not valid UTF-8")
)
