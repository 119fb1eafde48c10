package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "reciclamack.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("config: add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("config: compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// Validate checks a YAML document against the configuration schema.
// The document is normalized through JSON so the validator sees the same
// value types it would for a JSON file.
func Validate(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: parse: %w", err)
	}
	if doc == nil {
		return nil // empty document keeps every default
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: normalize: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("config: normalize: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
