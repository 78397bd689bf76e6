package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every field violation of one request so the
// API can answer with the full per-field list in a single round trip.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// ByField groups messages under their field name, the shape the HTTP layer
// serializes as {"errors": {"field": ["message", ...]}}.
func (e ValidationErrors) ByField() map[string][]string {
	out := make(map[string][]string, len(e))
	for _, v := range e {
		out[v.Field] = append(out[v.Field], v.Message)
	}
	return out
}

var phonePattern = regexp.MustCompile(`^\d{5,10}$`)

// ValidateLeadFields checks the field rules shared by create and update:
// name required (<=255), email required + valid syntax (<=255), phone
// optional but digits-only with 5 to 10 digits when present. Email
// uniqueness is probed separately by the use cases, against the clients
// table.
func ValidateLeadFields(name, email, phone string) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	} else if len(name) > 255 {
		errs = append(errs, ValidationError{"name", "must not exceed 255 characters"})
	}

	if strings.TrimSpace(email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if len(email) > 255 {
		errs = append(errs, ValidationError{"email", "must not exceed 255 characters"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	if phone != "" && !phonePattern.MatchString(phone) {
		errs = append(errs, ValidationError{"phone", "must contain 5 to 10 digits"})
	}

	return errs
}
