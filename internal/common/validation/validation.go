// Package validation checks inbound request payloads against JSON schemas.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Request body schemas. Only shape and required fields are enforced here;
// business rules (duplicate emails, approval state) live in the services.
const (
	CreateOrderSchema = `{
		"type": "object",
		"properties": {
			"amount": {"type": "number", "minimum": 1}
		},
		"required": ["amount"]
	}`

	VerifySchema = `{
		"type": "object",
		"properties": {
			"name":         {"type": "string"},
			"email":        {"type": "string", "minLength": 3},
			"phone":        {"type": "string"},
			"position":     {"type": "string"},
			"duration":     {"type": "string"},
			"enrollmentId": {"type": "string"},
			"order_id":     {"type": "string", "minLength": 1},
			"payment_id":   {"type": "string", "minLength": 1},
			"signature":    {"type": "string", "minLength": 1},
			"userEmail":    {"type": "string"}
		},
		"required": ["email", "order_id", "payment_id", "signature"]
	}`
)

// ValidateJSON validates a raw JSON document against a schema string and
// returns a single error joining all violations.
func ValidateJSON(doc []byte, schema string) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	docLoader := gojsonschema.NewBytesLoader(doc)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("invalid payload: %s", strings.Join(msgs, "; "))
}
