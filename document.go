package coerce

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when a request body is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Document is a read-only view over a decoded JSON request body.
type Document struct {
	root gjson.Result
}

// ParseDocument checks that raw is well-formed JSON and returns a view over
// it. The raw bytes must not be modified while the Document is in use.
func ParseDocument(raw []byte) (Document, error) {
	if !gjson.ValidBytes(raw) {
		return Document{}, ErrInvalidJSON
	}
	return Document{root: gjson.ParseBytes(raw)}, nil
}

// Get returns the value at path, which does not exist when the path is
// absent from the body.
func (d Document) Get(path string) gjson.Result {
	return d.root.Get(path)
}

// IsObject reports whether the document root is a JSON object.
func (d Document) IsObject() bool {
	return d.root.IsObject()
}
