// Package validation implements the registration validation pipeline: a set
// of independent per-field checks over a candidate {username, email, password}
// payload. Violations are accumulated per field rather than short-circuited,
// so a response always carries every reason a field was rejected.
package validation

// FieldErrors maps a field name to the ordered list of violation messages
// accumulated for it. The zero value is ready to use via Add.
type FieldErrors map[string][]string

// Add appends a violation message to the given field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Merge appends all violations from other, preserving message order.
func (fe FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		fe[field] = append(fe[field], msgs...)
	}
}

// Any reports whether at least one violation has been recorded.
func (fe FieldErrors) Any() bool {
	return len(fe) > 0
}
