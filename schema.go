package coerce

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Schema coerces a raw data object into a typed map or reports per-field
// errors. Implementations are immutable after construction and safe for
// concurrent use.
type Schema interface {
	// Coerce validates raw data and returns the typed value on success, or
	// the accumulated field errors on failure. Exactly one of the two
	// returns is non-nil.
	Coerce(data gjson.Result) (map[string]any, Errors)
}

// Variant is one concrete alternative shape within a union: an ordered
// sequence of fields plus the tag value that identifies it.
type Variant struct {
	Tag    string
	Fields []Field
}

// Validate runs every field rule against data and accumulates messages per
// field name. Validation never stops at the first failure; the caller sees
// every invalid field in one result.
func (v Variant) Validate(data gjson.Result) Errors {
	var errs Errors
	for _, f := range v.Fields {
		errs = AppendFieldErrors(errs, f.Name, f.Validate(data.Get(f.Name))...)
	}
	return errs
}

// coerce converts data that already validated into its typed form.
func (v Variant) coerce(data gjson.Result) map[string]any {
	out := make(map[string]any, len(v.Fields))
	for _, f := range v.Fields {
		out[f.Name] = f.coerce(data.Get(f.Name))
	}
	return out
}

// Untagged is a union with no discriminator. Coercion has to try every
// variant, so invalidity is reported at the union boundary: the error list
// for a field name concatenates every variant's complaints about it, even
// though only one variant could have been intended.
type Untagged struct {
	variants []Variant
}

// OneOf builds an undiscriminated union over the given variants. Variant
// order is the order error messages are concatenated in. At least one
// variant is required; OneOf panics otherwise, since unions are built once
// at process start.
func OneOf(variants ...Variant) *Untagged {
	if len(variants) == 0 {
		panic("coerce: union needs at least one variant")
	}
	return &Untagged{variants: variants}
}

// Coerce attempts every variant. If any variant's full field set validates,
// the value coerces to the first such variant; the choice between several
// fully-valid variants is never arbitrated. Otherwise the per-variant error
// lists are merged, appending across variants that share a field name.
func (u *Untagged) Coerce(data gjson.Result) (map[string]any, Errors) {
	perVariant := make([]Errors, len(u.variants))
	for i, v := range u.variants {
		perVariant[i] = v.Validate(data)
		if len(perVariant[i]) == 0 {
			return v.coerce(data), nil
		}
	}

	merged := Errors{}
	for i, v := range u.variants {
		for _, f := range v.Fields {
			merged = AppendFieldErrors(merged, f.Name, perVariant[i][f.Name]...)
		}
	}
	return nil, merged
}

// Tagged is a discriminated union: a discriminator field plus a closed
// mapping from tag value to variant. The tag is resolved first, and only
// the resolved variant's fields are ever validated.
type Tagged struct {
	field    string
	variants []Variant
	byTag    map[string]int
}

// TaggedBy builds a discriminated union dispatching on the named field.
// Variant tags must be unique and at least one variant is required;
// TaggedBy panics otherwise, since unions are built once at process start.
func TaggedBy(field string, variants ...Variant) *Tagged {
	if len(variants) == 0 {
		panic("coerce: union needs at least one variant")
	}
	t := &Tagged{
		field:    field,
		variants: variants,
		byTag:    make(map[string]int, len(variants)),
	}
	for i, v := range variants {
		if _, dup := t.byTag[v.Tag]; dup {
			panic(fmt.Sprintf("coerce: duplicate tag %q in tagged union", v.Tag))
		}
		t.byTag[v.Tag] = i
	}
	return t
}

// Field returns the discriminator field name.
func (t *Tagged) Field() string { return t.field }

// Tags returns the known discriminator values in declaration order.
func (t *Tagged) Tags() []string {
	tags := make([]string, len(t.variants))
	for i, v := range t.variants {
		tags[i] = v.Tag
	}
	return tags
}

// Resolve reads the discriminator field from data and returns the matching
// variant. The second return is false when the field is absent, not a
// string, or not a known tag. Resolution is structural dispatch only: it
// says nothing about whether the variant's fields will validate.
func (t *Tagged) Resolve(data gjson.Result) (Variant, bool) {
	tag := data.Get(t.field)
	if tag.Type != gjson.String {
		return Variant{}, false
	}
	i, ok := t.byTag[tag.String()]
	if !ok {
		return Variant{}, false
	}
	return t.variants[i], true
}

// Coerce resolves the discriminator first and validates only the resolved
// variant. An unresolved discriminator is a single error keyed to the
// discriminator field, naming the known tags; it never cascades into field
// errors from variants the input did not claim to be.
func (t *Tagged) Coerce(data gjson.Result) (map[string]any, Errors) {
	v, ok := t.Resolve(data)
	if !ok {
		return nil, Errors{t.field: []string{symbolMessage(t.Tags())}}
	}
	if errs := v.Validate(data); len(errs) > 0 {
		return nil, errs
	}
	return v.coerce(data), nil
}
