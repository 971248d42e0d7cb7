package coerce

import (
	"reflect"
	"testing"

	"github.com/tidwall/gjson"
)

// fieldValue extracts the raw value named "v" from a JSON fragment, or a
// non-existent result when the fragment omits it.
func fieldValue(t *testing.T, fragment string) gjson.Result {
	t.Helper()
	if !gjson.Valid(fragment) {
		t.Fatalf("bad fixture: %s", fragment)
	}
	return gjson.Parse(fragment).Get("v")
}

func TestFieldUUID(t *testing.T) {
	f := UUID("foo")

	t.Run("accepts a uuid string", func(t *testing.T) {
		v := fieldValue(t, `{"v": "123e4567-e89b-12d3-a456-426614174000"}`)
		if msgs := f.Validate(v); len(msgs) != 0 {
			t.Errorf("expected valid, got %v", msgs)
		}
	})

	t.Run("rejects a non-uuid string", func(t *testing.T) {
		v := fieldValue(t, `{"v": "not-a-uuid"}`)
		msgs := f.Validate(v)
		if !reflect.DeepEqual(msgs, []string{"should be a uuid"}) {
			t.Errorf("unexpected messages: %v", msgs)
		}
	})

	t.Run("rejects a number", func(t *testing.T) {
		v := fieldValue(t, `{"v": 42}`)
		msgs := f.Validate(v)
		if !reflect.DeepEqual(msgs, []string{"should be a uuid"}) {
			t.Errorf("unexpected messages: %v", msgs)
		}
	})

	t.Run("rejects a missing value", func(t *testing.T) {
		v := fieldValue(t, `{}`)
		msgs := f.Validate(v)
		if !reflect.DeepEqual(msgs, []string{"missing required key"}) {
			t.Errorf("unexpected messages: %v", msgs)
		}
	})
}

func TestFieldInt(t *testing.T) {
	f := Int("bar")

	t.Run("accepts an integer", func(t *testing.T) {
		v := fieldValue(t, `{"v": 1}`)
		if msgs := f.Validate(v); len(msgs) != 0 {
			t.Errorf("expected valid, got %v", msgs)
		}
	})

	t.Run("accepts an integral float", func(t *testing.T) {
		v := fieldValue(t, `{"v": 2.0}`)
		if msgs := f.Validate(v); len(msgs) != 0 {
			t.Errorf("expected valid, got %v", msgs)
		}
	})

	t.Run("accepts a negative integer", func(t *testing.T) {
		v := fieldValue(t, `{"v": -7}`)
		if msgs := f.Validate(v); len(msgs) != 0 {
			t.Errorf("expected valid, got %v", msgs)
		}
	})

	t.Run("rejects a fractional number", func(t *testing.T) {
		v := fieldValue(t, `{"v": 1.5}`)
		msgs := f.Validate(v)
		if !reflect.DeepEqual(msgs, []string{"should be an integer"}) {
			t.Errorf("unexpected messages: %v", msgs)
		}
	})

	t.Run("rejects a numeric string", func(t *testing.T) {
		v := fieldValue(t, `{"v": "1"}`)
		msgs := f.Validate(v)
		if !reflect.DeepEqual(msgs, []string{"should be an integer"}) {
			t.Errorf("unexpected messages: %v", msgs)
		}
	})

	t.Run("rejects a missing value", func(t *testing.T) {
		v := fieldValue(t, `{}`)
		msgs := f.Validate(v)
		if !reflect.DeepEqual(msgs, []string{"missing required key"}) {
			t.Errorf("unexpected messages: %v", msgs)
		}
	})
}

func TestFieldEnum(t *testing.T) {
	f := Enum("baz", "e", "f", "g")

	t.Run("accepts a member symbol", func(t *testing.T) {
		v := fieldValue(t, `{"v": "e"}`)
		if msgs := f.Validate(v); len(msgs) != 0 {
			t.Errorf("expected valid, got %v", msgs)
		}
	})

	t.Run("rejects a non-member with the full symbol list", func(t *testing.T) {
		v := fieldValue(t, `{"v": "invalid-baz"}`)
		msgs := f.Validate(v)
		if !reflect.DeepEqual(msgs, []string{"should be either :e, :f or :g"}) {
			t.Errorf("unexpected messages: %v", msgs)
		}
	})

	t.Run("rejects a non-string value", func(t *testing.T) {
		v := fieldValue(t, `{"v": 3}`)
		msgs := f.Validate(v)
		if !reflect.DeepEqual(msgs, []string{"should be either :e, :f or :g"}) {
			t.Errorf("unexpected messages: %v", msgs)
		}
	})

	t.Run("rejects a missing value", func(t *testing.T) {
		v := fieldValue(t, `{}`)
		msgs := f.Validate(v)
		if !reflect.DeepEqual(msgs, []string{"missing required key"}) {
			t.Errorf("unexpected messages: %v", msgs)
		}
	})

	t.Run("panics without symbols", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for empty enum")
			}
		}()
		Enum("empty")
	})
}

func TestSymbolMessage(t *testing.T) {
	t.Run("single symbol", func(t *testing.T) {
		got := symbolMessage([]string{"encabulator"})
		if got != "should be :encabulator" {
			t.Errorf("unexpected message: %q", got)
		}
	})

	t.Run("two symbols", func(t *testing.T) {
		got := symbolMessage([]string{"a", "b"})
		if got != "should be either :a or :b" {
			t.Errorf("unexpected message: %q", got)
		}
	})

	t.Run("symbols listed in declaration order", func(t *testing.T) {
		got := symbolMessage([]string{"g", "e", "f"})
		if got != "should be either :g, :e or :f" {
			t.Errorf("unexpected message: %q", got)
		}
	})
}
