package questionbank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://question-bank.json"

// bankSchema accepts either a bare array of questions or an envelope
// carrying a version string next to the questions.
const bankSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$defs": {
    "question": {
      "type": "object",
      "required": ["question", "options", "correctAnswer"],
      "properties": {
        "id": {"type": "string"},
        "question": {"type": "string", "minLength": 1},
        "options": {
          "type": "array",
          "items": {"type": "string", "minLength": 1},
          "minItems": 4,
          "maxItems": 4
        },
        "correctAnswer": {"type": "integer", "minimum": 0, "maximum": 3},
        "explanation": {"type": "string"},
        "difficulty": {
          "anyOf": [
            {"type": "null"},
            {"type": "string", "pattern": "^(?i)(easy|medium|hard)$"}
          ]
        },
        "category": {"type": "string"}
      }
    },
    "questions": {
      "type": "array",
      "items": {"$ref": "#/$defs/question"}
    }
  },
  "oneOf": [
    {"$ref": "#/$defs/questions"},
    {
      "type": "object",
      "required": ["version", "questions"],
      "properties": {
        "version": {"type": "string"},
        "questions": {"$ref": "#/$defs/questions"}
      }
    }
  ]
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles bankSchema once.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks raw against the bank schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := sch.Validate(parsed); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
