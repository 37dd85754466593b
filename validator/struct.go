package validator

import (
	"errors"
	"strings"

	validatorengine "github.com/go-playground/validator/v10"
	"github.com/golangid/weathertogo/candihelper"
)

// StructValidatorOptionFunc type
type StructValidatorOptionFunc func(*StructValidator)

// SetCoreStructValidatorOption option func
func SetCoreStructValidatorOption(additionalConfigFunc ...func(*validatorengine.Validate)) StructValidatorOptionFunc {
	return func(v *StructValidator) {
		ve := validatorengine.New()
		for _, additionalFunc := range additionalConfigFunc {
			additionalFunc(ve)
		}
		v.Validator = ve
	}
}

// StructValidator struct
type StructValidator struct {
	Validator *validatorengine.Validate
}

// NewStructValidator using go library
// https://github.com/go-playground/validator (all struct tags will be here)
func NewStructValidator(opts ...StructValidatorOptionFunc) *StructValidator {
	sv := &StructValidator{}
	for _, opt := range opts {
		opt(sv)
	}

	if sv.Validator == nil {
		sv.Validator = validatorengine.New()
	}

	return sv
}

// ValidateStruct function, field error keyed by the field name (or its registered tag name)
func (v *StructValidator) ValidateStruct(data interface{}) error {
	if err := v.Validator.Struct(data); err != nil {
		switch errs := err.(type) {
		case validatorengine.ValidationErrors:
			multiError := candihelper.NewMultiError()
			for _, e := range errs {
				multiError.Append(e.Field(), errors.New(strings.TrimSpace("failed on '"+e.Tag()+"' "+e.Param())))
			}
			if multiError.HasError() {
				return multiError
			}
		default:
			return err
		}
	}

	return nil
}
