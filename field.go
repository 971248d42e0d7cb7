package coerce

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Kind identifies the rule a Field enforces on its raw value.
type Kind int

const (
	// KindUUID accepts strings that parse as UUIDs.
	KindUUID Kind = iota

	// KindInt accepts JSON numbers with an integral value.
	KindInt

	// KindEnum accepts one of a fixed, ordered set of symbols.
	KindEnum
)

// Field describes a single key in a flat record: its name and the rule its
// value must satisfy. Fields are built once at startup and never mutated.
type Field struct {
	Name string
	Kind Kind

	// Enum is the ordered set of allowed symbols for KindEnum fields.
	// The order is the order symbols are listed in error messages.
	Enum []string
}

// UUID returns a Field requiring a UUID string.
func UUID(name string) Field { return Field{Name: name, Kind: KindUUID} }

// Int returns a Field requiring an integral number.
func Int(name string) Field { return Field{Name: name, Kind: KindInt} }

// Enum returns a Field requiring one of the given symbols. At least one
// symbol is required; Enum panics otherwise, since fields are built once at
// process start.
func Enum(name string, symbols ...string) Field {
	if len(symbols) == 0 {
		panic("coerce: enum field " + name + " needs at least one symbol")
	}
	return Field{Name: name, Kind: KindEnum, Enum: symbols}
}

// Validate checks a raw value against the field's rule and returns
// human-readable messages, one per violation. An empty result means the
// value is valid. Validate is a pure function of its inputs.
func (f Field) Validate(v gjson.Result) []string {
	if !v.Exists() {
		return []string{"missing required key"}
	}

	switch f.Kind {
	case KindUUID:
		if v.Type != gjson.String {
			return []string{"should be a uuid"}
		}
		if _, err := uuid.Parse(v.String()); err != nil {
			return []string{"should be a uuid"}
		}
	case KindInt:
		if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
			return []string{"should be an integer"}
		}
	case KindEnum:
		if v.Type != gjson.String || !containsSymbol(f.Enum, v.String()) {
			return []string{symbolMessage(f.Enum)}
		}
	}

	return nil
}

// coerce converts a raw value that already validated into its typed form.
func (f Field) coerce(v gjson.Result) any {
	if f.Kind == KindInt {
		return v.Int()
	}
	return v.String()
}

func containsSymbol(symbols []string, s string) bool {
	for _, sym := range symbols {
		if sym == s {
			return true
		}
	}
	return false
}

// symbolMessage renders the expectation for a symbol set. Symbols are shown
// as keywords; all but the last are joined by ", " and the last by " or ".
func symbolMessage(symbols []string) string {
	rendered := make([]string, len(symbols))
	for i, s := range symbols {
		rendered[i] = ":" + s
	}

	if len(rendered) == 1 {
		return "should be " + rendered[0]
	}
	head := strings.Join(rendered[:len(rendered)-1], ", ")
	return "should be either " + head + " or " + rendered[len(rendered)-1]
}
