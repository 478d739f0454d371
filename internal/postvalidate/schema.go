package postvalidate

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed envelope.schema.json
var envelopeSchemaJSON []byte

var (
	envelopeOnce   sync.Once
	envelopeSchema *jsonschema.Schema
	envelopeErr    error
)

// compiledEnvelopeSchema compiles the embedded target-envelope schema once.
func compiledEnvelopeSchema() (*jsonschema.Schema, error) {
	envelopeOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal(envelopeSchemaJSON, &parsed); err != nil {
			envelopeErr = fmt.Errorf("parse envelope schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://envelope.json", parsed); err != nil {
			envelopeErr = fmt.Errorf("add resource: %w", err)
			return
		}
		envelopeSchema, envelopeErr = c.Compile("schema://envelope.json")
	})
	return envelopeSchema, envelopeErr
}

// schemaErrors validates the converted envelope's root presence and
// primitive types against the embedded JSON Schema. The document is passed
// through a JSON round-trip so the schema sees plain JSON values regardless
// of how the tree was produced.
func schemaErrors(conv map[string]any) []string {
	schema, err := compiledEnvelopeSchema()
	if err != nil {
		return []string{fmt.Sprintf("Envelope schema unavailable: %v", err)}
	}

	raw, err := json.Marshal(conv)
	if err != nil {
		return []string{fmt.Sprintf("Converted document is not serializable: %v", err)}
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return []string{fmt.Sprintf("Converted document is not valid JSON: %v", err)}
	}

	if err := schema.Validate(parsed); err != nil {
		return []string{fmt.Sprintf("Envelope schema validation failed: %v", err)}
	}
	return nil
}
