// Package forms binds and validates the HTML forms of the admin client.
//
// Each form keeps its fields as the raw strings posted by the browser
// and produces a field-name to error-message map on validation, so a
// page can be re-rendered with inline errors without losing what the
// user typed. Validation here is advisory: it blocks submission on
// obvious mistakes, but the remote API remains the authority.
package forms

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks the typed payloads a form produces before they are
// handed to the API client, mirroring the struct tags on the input
// types.
var validate = validator.New()

// emailPattern is the permissive check the catalog uses everywhere: some
// non-whitespace before the @, and a domain containing a dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors maps form field names (the wire names used in templates) to
// user-facing messages. An empty map means the form is valid.
type Errors map[string]string

// Valid reports whether no field failed validation.
func (e Errors) Valid() bool {
	return len(e) == 0
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}
