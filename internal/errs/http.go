package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "price", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: lets the client show Message verbatim.
//   - Errors: per-field errors (validation).
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`
}

// Error returns the human-friendly message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError; fields are not compared.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// Response is the JSON body written for an HTTPError.
//
// It carries the HTTPError envelope plus a flat "error" key holding the
// message, which is the field API clients of this service read.
type Response struct {
	HTTPError
	Error string `json:"error"`
}

// NewResponse builds the response body for e.
func NewResponse(e HTTPError) Response {
	return Response{HTTPError: e, Error: e.Message}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
