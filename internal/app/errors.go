// Package app implements the primary ports on top of the repositories.
// All input validation happens here, before any write reaches storage.
package app

import "errors"

// ErrValidation is returned for malformed input (missing required fields,
// out-of-range stage numbers, negative line counts). Detected with
// errors.Is; rejected before any write.
var ErrValidation = errors.New("validation error")
