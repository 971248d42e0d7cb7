package coerce

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errors maps a field name to the ordered list of messages reported for it.
// Lists only ever grow by appending: when several variants complain about
// the same field, every message is kept, in variant-declaration order.
//
// Errors marshals directly into the error body of a 400 response.
type Errors map[string][]string

// AppendFieldErrors appends messages for a field onto dst, initializing the
// map when needed. Appending nothing returns dst unchanged.
func AppendFieldErrors(dst Errors, field string, msgs ...string) Errors {
	if len(msgs) == 0 {
		return dst
	}
	if dst == nil {
		dst = Errors{}
	}
	dst[field] = append(dst[field], msgs...)
	return dst
}

// Error summarizes the first few fields.
func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}

	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	const maxShown = 3
	lim := len(fields)
	if lim > maxShown {
		lim = maxShown
	}

	b := &strings.Builder{}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		f := fields[i]
		fmt.Fprintf(b, "%s: %s", f, e[f][0])
	}
	if len(fields) > lim {
		fmt.Fprintf(b, "; ... (total %d fields)", len(fields))
	}
	return b.String()
}

// AsErrors extracts Errors from an error using errors.As internally.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var e Errors
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
