// Package errs defines the one error shape the API returns to clients.
//
// Every failed request is answered with an HTTPError serialized as JSON,
// whatever layer produced the failure:
//
//	{"code":"BAD_REQUEST","message":"...","status":400,"override":false,"errors":[...]}
package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "id", "error": "must be a valid identifier" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the uniform API error.
//
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST", "PERSON_INVALID_ID").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: whether a client may show Message to end users verbatim.
//   - Errors: per-field errors, set for validation failures.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It does not compare
// codes or statuses.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
// Used to derive stable codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
