package validator

import (
	"github.com/golangid/weathertogo/api"
)

// Validator instance
type Validator struct {
	*JSONSchemaValidator
	*StructValidator
}

// NewValidator constructor, using embedded jsonschema & struct validator (github.com/go-playground/validator)
func NewValidator() (*Validator, error) {
	jsonSchema, err := NewJSONSchemaValidator(api.JSONSchema, api.JSONSchemaRoot)
	if err != nil {
		return nil, err
	}
	return &Validator{
		JSONSchemaValidator: jsonSchema,
		StructValidator:     NewStructValidator(),
	}, nil
}
