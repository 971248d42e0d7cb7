package main

import (
	coerce "github.com/ALai57/malli-or-considered-dangerous"
)

// The demo union: two record shapes sharing "foo" and "bar", differing in
// their "type" tag and the symbols "baz" accepts.
func variants() (encabulator, retro coerce.Variant) {
	encabulator = coerce.Variant{
		Tag: "encabulator",
		Fields: []coerce.Field{
			coerce.Enum("type", "encabulator"),
			coerce.UUID("foo"),
			coerce.Int("bar"),
			coerce.Enum("baz", "e", "f", "g"),
		},
	}
	retro = coerce.Variant{
		Tag: "retro-encabulator",
		Fields: []coerce.Field{
			coerce.Enum("type", "retro-encabulator"),
			coerce.UUID("foo"),
			coerce.Int("bar"),
			coerce.Enum("baz", "h", "i", "j"),
		},
	}
	return encabulator, retro
}

// untaggedUnion tries every variant and merges their errors.
func untaggedUnion() coerce.Schema {
	encabulator, retro := variants()
	return coerce.OneOf(encabulator, retro)
}

// taggedUnion dispatches on "type" before validating.
func taggedUnion() coerce.Schema {
	encabulator, retro := variants()
	return coerce.TaggedBy("type", encabulator, retro)
}
