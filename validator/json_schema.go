package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/golangid/weathertogo/candihelper"
	"github.com/xeipuuv/gojsonschema"
)

var notShowErrorListType = map[string]bool{
	"condition_else": true, "condition_then": true,
}

// JSONSchemaValidator validator
type JSONSchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewJSONSchemaValidator constructor, load all json schema inside root dir of given file system
func NewJSONSchemaValidator(fsys fs.FS, root string) (*JSONSchemaValidator, error) {
	v := &JSONSchemaValidator{schemas: map[string]*gojsonschema.Schema{}}
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		s, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("%s: %v", d.Name(), err)
		}

		var data map[string]interface{}
		if err := json.Unmarshal(s, &data); err != nil {
			return fmt.Errorf("%s: %v", d.Name(), err)
		}
		id, ok := data["$id"].(string)
		if !ok {
			id = strings.TrimSuffix(path.Base(p), ".json") // take filename without extension
		}
		v.schemas[id], err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(s))
		if err != nil {
			return fmt.Errorf("%s: %v", d.Name(), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (v *JSONSchemaValidator) getSchema(schemaID string) (schema *gojsonschema.Schema, err error) {
	s, ok := v.schemas[schemaID]
	if !ok {
		return nil, fmt.Errorf("schema '%s' not found", schemaID)
	}

	return s, nil
}

// ValidateDocument based on schema id
func (v *JSONSchemaValidator) ValidateDocument(schemaID string, documentSource []byte) error {
	multiError := candihelper.NewMultiError()

	schema, err := v.getSchema(schemaID)
	if err != nil {
		return err
	}

	document := gojsonschema.NewBytesLoader(documentSource)

	result, err := schema.Validate(document)
	if err != nil {
		multiError.Append("validateInput", errors.New("failed to load input document"))
		return multiError
	}

	if !result.Valid() {
		for _, desc := range result.Errors() {
			if notShowErrorListType[desc.Type()] {
				continue
			}
			var field = desc.Field()
			if desc.Type() == "required" || desc.Type() == "additional_property_not_allowed" {
				field = fmt.Sprintf("%s.%s", field, desc.Details()["property"])
				field = strings.TrimPrefix(field, "(root).")
			}
			multiError.Append(field, errors.New(desc.Description()))
		}
	}

	if multiError.HasError() {
		return multiError
	}

	return nil
}
