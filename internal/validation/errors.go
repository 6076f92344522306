package validation

import (
	"fmt"
	"sort"
	"strings"
)

// NonFieldKey is the sentinel key for errors that belong to the whole form
// rather than a single field (e.g. password mismatch).
const NonFieldKey = "__all__"

// Stable machine-readable error codes. Callers and tests key off these, so
// they must never change once published.
const (
	CodeRequired           = "required"
	CodeMaxLength          = "max_length"
	CodeInvalidUsername    = "invalid_username"
	CodeUsernameExists     = "username_exists"
	CodePasswordMismatch   = "password_mismatch"
	CodePasswordTooShort   = "password_too_short"
	CodePasswordTooCommon  = "password_too_common"
	CodePasswordTooSimilar = "password_too_similar"
	CodeInvalidEmail       = "invalid_email"
	CodeInvalidDate        = "invalid_date"
	CodeInvalidLogin       = "invalid_login"
)

// FieldError is a single validation failure with a human-readable message
// and a stable code.
type FieldError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Errors maps a field name (or NonFieldKey) to the ordered list of failures
// collected for it. It serializes to {"field": [{"message": ..., "code": ...}]}
// and implements error so services can return it directly.
type Errors map[string][]FieldError

// Add appends a failure for the given field.
func (e Errors) Add(field, message, code string) {
	e[field] = append(e[field], FieldError{Message: message, Code: code})
}

// Has reports whether any failure was recorded for the field.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		msgs := make([]string, len(e[f]))
		for j, fe := range e[f] {
			msgs[j] = fe.Message
		}
		fmt.Fprintf(&b, "%s: %s", f, strings.Join(msgs, " "))
	}
	return b.String()
}
