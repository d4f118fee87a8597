// Package schemas checks evaluation and cheating records against embedded
// JSON Schemas.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed evaluation.schema.json
var evaluationSchema string

//go:embed cheating.schema.json
var cheatingSchema string

type Kind string

const (
	KindEvaluation Kind = "evaluation"
	KindCheating   Kind = "cheating"
)

// ValidationError lists every schema violation of a document.
type ValidationError struct {
	Kind   Kind
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s validation failed:\n", ve.Kind)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

var (
	compileOnce sync.Once
	compiled    map[Kind]*gojsonschema.Schema
	compileErr  error
)

func schemaFor(kind Kind) (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = compile()
	})
	if compileErr != nil {
		return nil, compileErr
	}

	schema, ok := compiled[kind]
	if !ok {
		return nil, fmt.Errorf("unknown schema kind %q", kind)
	}
	return schema, nil
}

func compile() (map[Kind]*gojsonschema.Schema, error) {
	cheating, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(cheatingSchema))
	if err != nil {
		return nil, fmt.Errorf("compile cheating schema: %w", err)
	}

	loader := gojsonschema.NewSchemaLoader()
	loader.Draft = gojsonschema.Draft7
	if err := loader.AddSchemas(gojsonschema.NewStringLoader(cheatingSchema)); err != nil {
		return nil, fmt.Errorf("register cheating schema: %w", err)
	}
	evaluation, err := loader.Compile(gojsonschema.NewStringLoader(evaluationSchema))
	if err != nil {
		return nil, fmt.Errorf("compile evaluation schema: %w", err)
	}

	return map[Kind]*gojsonschema.Schema{
		KindEvaluation: evaluation,
		KindCheating:   cheating,
	}, nil
}

// ValidateJSON validates a raw JSON document of the given kind.
func ValidateJSON(kind Kind, data []byte) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("load %s document: %w", kind, err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Kind:   kind,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}

// ValidateEvaluation checks an evaluation record, including an attached cheating analysis.
func ValidateEvaluation(v any) error {
	return validateValue(KindEvaluation, v)
}

func ValidateCheating(v any) error {
	return validateValue(KindCheating, v)
}

func validateValue(kind Kind, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", kind, err)
	}
	return ValidateJSON(kind, data)
}
