package validate

import (
	"sort"
	"strings"
)

// Errors is a field → message map that doubles as an error value, so
// data-layer operations can hand validation failures back to callers
// through a plain error return.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = e[f]
	}
	return strings.Join(parts, " ")
}

// Check validates v and returns its failures as an error, or nil.
func Check(v interface{}) error {
	if errs := Struct(v); len(errs) > 0 {
		return Errors(errs)
	}
	return nil
}
