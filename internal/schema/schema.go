// Package schema validates JSON documents against named JSON Schemas.
package schema

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema definition.
type Schema struct {
	Name       string
	Definition string
}

// DocumentError reports a document that does not conform to its schema.
type DocumentError struct {
	Schema string
	Err    error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("invalid %s document: %v", e.Schema, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// cache holds compiled schemas by name.
var cache sync.Map // map[string]*jsonschema.Schema

// Validate checks raw JSON against s.
// Returns *DocumentError when the document is malformed or fails validation.
func Validate(s Schema, raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &DocumentError{Schema: s.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compiled(s)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", s.Name, err)
	}

	if err := sch.Validate(doc); err != nil {
		return &DocumentError{Schema: s.Name, Err: err}
	}
	return nil
}

// compiled returns a cached compiled schema or compiles and caches it.
func compiled(s Schema) (*jsonschema.Schema, error) {
	if cached, ok := cache.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, err := jsonschema.UnmarshalJSON(strings.NewReader(s.Definition))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	cache.Store(s.Name, sch)
	return sch, nil
}
