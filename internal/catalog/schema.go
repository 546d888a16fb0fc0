package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateDefaults checks data against an optional JSON schema. Types
// without a schema accept any object.
func ValidateDefaults(schema map[string]any, data map[string]any) error {
	if len(schema) == 0 {
		return nil
	}
	compiled, err := compileSchema(schema)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	payload, err := jsonValue(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDefaultsInvalid, err)
	}
	if err := compiled.Validate(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrDefaultsInvalid, err)
	}
	return nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("section_type.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("section_type.json")
}

// jsonValue round-trips data through encoding/json so numbers and nested
// values have the shapes the validator expects.
func jsonValue(data map[string]any) (any, error) {
	if data == nil {
		data = map[string]any{}
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, err
	}
	return out, nil
}
