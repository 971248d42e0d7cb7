package coerce

import (
	"errors"
	"testing"
)

func TestParseDocument(t *testing.T) {
	t.Run("accepts well-formed JSON", func(t *testing.T) {
		doc, err := ParseDocument([]byte(`{"id": "abc", "data": {"type": "encabulator"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := doc.Get("data.type").String(); got != "encabulator" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := ParseDocument([]byte(`{"id": `))
		if !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("expected ErrInvalidJSON, got %v", err)
		}
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		_, err := ParseDocument(nil)
		if !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("expected ErrInvalidJSON, got %v", err)
		}
	})

	t.Run("absent paths do not exist", func(t *testing.T) {
		doc, err := ParseDocument([]byte(`{"id": "abc"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Get("data").Exists() {
			t.Error("expected data to be absent")
		}
	})

	t.Run("reports non-object roots", func(t *testing.T) {
		doc, err := ParseDocument([]byte(`[1, 2, 3]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.IsObject() {
			t.Error("expected non-object root")
		}
	})
}
