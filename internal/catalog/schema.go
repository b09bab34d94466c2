package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the JSON Schema for the quiz document: an array of
// lecture records. Question-level fields are deliberately unconstrained here;
// missing or empty question fields are handled as per-question warnings, not
// document errors.
var documentSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Lecture title, preferred over the lecture field",
			},
			"lecture": map[string]any{
				"type":        []any{"string", "number"},
				"description": "Fallback lecture label: a numeric index or a literal title",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks the parsed document against documentSchema.
// A violation means the document shape itself is wrong and is reported
// as a ParseError by the caller.
func validateDocument(parsed any) error {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://quiz-document.json", defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://quiz-document.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile document schema: %w", compileErr)
	}
	return compiledSchema.Validate(parsed)
}
