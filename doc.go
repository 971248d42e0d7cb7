// Package coerce demonstrates how union resolution strategy decides the
// quality of schema validation errors.
//
// A schema that says "this value is variant A or variant B" can be coerced
// two ways. Without a discriminator, a validator has no way to know which
// variant the caller intended, so it has to try every variant and — when
// none fits — report every variant's complaints about every field. With a
// discriminator, the validator resolves the variant first from a single tag
// field and validates only that variant's shape, so a caller who made one
// mistake sees exactly one error.
//
// # Quick Start
//
// Define the variants of the union:
//
//	encabulator := coerce.Variant{
//	    Tag: "encabulator",
//	    Fields: []coerce.Field{
//	        coerce.Enum("type", "encabulator"),
//	        coerce.UUID("foo"),
//	        coerce.Int("bar"),
//	        coerce.Enum("baz", "e", "f", "g"),
//	    },
//	}
//	retro := coerce.Variant{
//	    Tag: "retro-encabulator",
//	    Fields: []coerce.Field{
//	        coerce.Enum("type", "retro-encabulator"),
//	        coerce.UUID("foo"),
//	        coerce.Int("bar"),
//	        coerce.Enum("baz", "h", "i", "j"),
//	    },
//	}
//
// Build one pipeline per strategy and hand each raw request body to Handle:
//
//	untagged := coerce.New(coerce.OneOf(encabulator, retro))
//	tagged := coerce.New(coerce.TaggedBy("type", encabulator, retro))
//
//	resp := tagged.Handle(ctx, rawBody)
//	// resp.Status, resp.Body are ready for the transport layer
//
// # The Two Strategies
//
// Both pipelines accept the same envelope:
//
//	{"id": "<uuid>", "data": {"type": "encabulator", "foo": "<uuid>", "bar": 1, "baz": "e"}}
//
// Send a body whose only mistake is an invalid "baz" and the tagged
// pipeline answers with errors scoped to the one variant the input claimed
// to be:
//
//	{"data": {"baz": ["should be either :e, :f or :g"]}}
//
// The untagged pipeline cannot scope. Every variant is attempted, every
// variant fails somewhere, and the error lists concatenate across variants
// that share a field name:
//
//	{"data": {"baz": ["should be either :e, :f or :g",
//	                  "should be either :h, :i or :j"],
//	          "type": ["should be :retro-encabulator"]}}
//
// The caller made one mistake and received complaints about fields of a
// variant they never mentioned. That union-boundary error scoping is the
// behavior this package exists to demonstrate; OneOf implements it
// faithfully rather than fixing it.
//
// # Dispatch Before Validate
//
// TaggedBy resolves the variant in two phases, the same shape as any
// tag-dispatched message router:
//
//  1. Resolve: read the discriminator field, look the tag up in a closed
//     mapping from tag value to variant
//  2. Validate: run only the resolved variant's field rules
//
// Resolution is structural dispatch only. An unresolved tag (absent, not a
// string, or unknown) is a single error keyed to the discriminator field,
// naming the known tags — never a cascade of per-field errors from variants
// the input did not claim to be:
//
//	{"data": {"type": ["should be either :encabulator or :retro-encabulator"]}}
//
// # Fields
//
// Variants are flat maps of Field rules. Three kinds are provided:
//
//   - UUID: the value must be a string parsing as a UUID
//   - Int: the value must be an integral JSON number
//   - Enum: the value must be one of an ordered set of symbols
//
// Field validation accumulates: every invalid field of a variant is
// reported in one pass, never just the first.
//
// # Hooks
//
// Hooks provide observability without coupling the pipeline to a logging or
// metrics system. Use functional options to configure them:
//
//	p := coerce.New(schema,
//	    coerce.WithOnDecodeError(func(ctx context.Context, err error) {
//	        logger.Warn("request body rejected", zap.Error(err))
//	    }),
//	    coerce.WithOnInvalid(func(ctx context.Context, body map[string]any, d time.Duration) {
//	        metrics.Incr("coerce.invalid")
//	    }),
//	    coerce.WithOnValid(func(ctx context.Context, value map[string]any, d time.Duration) {
//	        metrics.Timing("coerce.valid", d)
//	    }),
//	)
//
// Multiple hooks of the same type are called in order.
//
// # Thread Safety
//
// Schemas and pipelines are immutable after construction and safe for
// concurrent use. Field validation is a pure function of its inputs, so
// coercing the same input twice yields the same result.
package coerce
