package coerce

import (
	"context"
	"time"
)

// OnDecodeErrorFunc is called when a request body fails to decode as JSON.
type OnDecodeErrorFunc func(ctx context.Context, err error)

// OnInvalidFunc is called after validation fails. body is the structured
// error payload that will be rendered into the 400 response.
type OnInvalidFunc func(ctx context.Context, body map[string]any, duration time.Duration)

// OnValidFunc is called after an input coerces successfully.
type OnValidFunc func(ctx context.Context, value map[string]any, duration time.Duration)

// hooks holds all configured hook functions.
type hooks struct {
	onDecodeError []OnDecodeErrorFunc
	onInvalid     []OnInvalidFunc
	onValid       []OnValidFunc
}

// Option configures hook behavior.
type Option func(*hooks)

// WithOnDecodeError adds a hook called when the body is not valid JSON.
// Multiple hooks are called in order.
//
// Example:
//
//	coerce.WithOnDecodeError(func(ctx context.Context, err error) {
//	    logger.Warn("request body rejected", zap.Error(err))
//	})
func WithOnDecodeError(fn OnDecodeErrorFunc) Option {
	return func(h *hooks) {
		h.onDecodeError = append(h.onDecodeError, fn)
	}
}

// WithOnInvalid adds a hook called after validation fails.
// Multiple hooks are called in order.
//
// Example:
//
//	coerce.WithOnInvalid(func(ctx context.Context, body map[string]any, d time.Duration) {
//	    metrics.Incr("coerce.invalid")
//	})
func WithOnInvalid(fn OnInvalidFunc) Option {
	return func(h *hooks) {
		h.onInvalid = append(h.onInvalid, fn)
	}
}

// WithOnValid adds a hook called after an input coerces successfully.
// Multiple hooks are called in order.
//
// Example:
//
//	coerce.WithOnValid(func(ctx context.Context, value map[string]any, d time.Duration) {
//	    metrics.Timing("coerce.valid", d)
//	})
func WithOnValid(fn OnValidFunc) Option {
	return func(h *hooks) {
		h.onValid = append(h.onValid, fn)
	}
}

func (h *hooks) callOnDecodeError(ctx context.Context, err error) {
	for _, fn := range h.onDecodeError {
		fn(ctx, err)
	}
}

func (h *hooks) callOnInvalid(ctx context.Context, body map[string]any, duration time.Duration) {
	for _, fn := range h.onInvalid {
		fn(ctx, body, duration)
	}
}

func (h *hooks) callOnValid(ctx context.Context, value map[string]any, duration time.Duration) {
	for _, fn := range h.onValid {
		fn(ctx, value, duration)
	}
}
