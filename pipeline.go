package coerce

import (
	"context"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

// envelopeID is the identifier field every request envelope carries.
var envelopeID = UUID("id")

// Response is the transport-level outcome of a coercion request.
// Body is ready-to-write JSON.
type Response struct {
	Status int
	Body   []byte
}

// Pipeline validates request envelopes against a configured union schema
// and converts coercion outcomes into transport responses.
//
// The envelope is one level deep: an "id" key holding a UUID and a "data"
// key holding the union value. Pipeline is safe for concurrent use after
// construction; the schema and hooks are fixed at creation and validation
// writes no shared state.
type Pipeline struct {
	schema Schema
	hooks  hooks
}

// New creates a Pipeline for the given union schema.
//
// Example:
//
//	p := coerce.New(coerce.TaggedBy("type", encabulator, retro),
//	    coerce.WithOnInvalid(func(ctx context.Context, body map[string]any, d time.Duration) {
//	        logger.Info("coercion failed", zap.Duration("duration", d))
//	    }),
//	)
func New(schema Schema, opts ...Option) *Pipeline {
	p := &Pipeline{schema: schema}
	for _, opt := range opts {
		opt(&p.hooks)
	}
	return p
}

// Handle decodes raw as a JSON envelope, runs the union coercion over its
// "data" value, and renders the outcome.
//
// The flow:
//  1. Reject bodies that are not well-formed JSON with a decode-error body
//  2. Validate the envelope's "id" field and the presence of "data"
//  3. Run the configured union strategy against "data"
//  4. Render 200 on success, 400 with the field-error mapping otherwise
//
// Every failure is captured as structured response data; nothing in the
// validation path escapes past Handle.
func (p *Pipeline) Handle(ctx context.Context, raw []byte) Response {
	start := time.Now()

	doc, err := ParseDocument(raw)
	if err != nil {
		p.hooks.callOnDecodeError(ctx, err)
		return respond(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	// Error bodies mirror the input's nesting: envelope errors at the top
	// level, union errors under "data".
	body := map[string]any{}

	if msgs := envelopeID.Validate(doc.Get("id")); len(msgs) > 0 {
		body["id"] = msgs
	}

	var value map[string]any
	data := doc.Get("data")
	switch {
	case !data.Exists():
		body["data"] = []string{"missing required key"}
	case !data.IsObject():
		body["data"] = []string{"should be a map"}
	default:
		v, errs := p.schema.Coerce(data)
		if len(errs) > 0 {
			body["data"] = errs
		} else {
			value = v
		}
	}

	if len(body) > 0 {
		p.hooks.callOnInvalid(ctx, body, time.Since(start))
		return respond(http.StatusBadRequest, body)
	}

	p.hooks.callOnValid(ctx, value, time.Since(start))
	return respond(http.StatusOK, map[string]any{"msg": "Yay!"})
}

func respond(status int, body any) Response {
	b, err := json.Marshal(body)
	if err != nil {
		// Bodies are maps of strings and string slices; this cannot fail.
		return Response{
			Status: http.StatusInternalServerError,
			Body:   []byte(`{"error":"response encoding failed"}`),
		}
	}
	return Response{Status: status, Body: b}
}
