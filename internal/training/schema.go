package training

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildPredictResponseSchema returns the JSON-Schema the trainer's
// /predict response must satisfy. Validating before decoding keeps a
// misbehaving trainer from writing garbage uncertainty scores.
func BuildPredictResponseSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"classes": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items":    map[string]any{"type": "integer"},
			},
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"data_id": map[string]any{"type": "integer", "minimum": 1},
						"probabilities": map[string]any{
							"type":     "array",
							"minItems": 2,
							"items":    map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
						},
					},
					"required": []string{"data_id", "probabilities"},
				},
			},
		},
		"required": []string{"classes", "items"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
