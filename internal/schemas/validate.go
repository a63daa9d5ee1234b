// Package schemas validates incoming JSON documents against the embedded JSON Schemas.
package schemas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	schemafiles "github.com/jonathan/devmatch/schemas"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

var (
	compiledMu sync.Mutex
	compiled   = map[string]*gojsonschema.Schema{}
)

// compile returns the named embedded schema with every other embedded schema
// available for $ref resolution. Compiled schemas are cached.
func compile(name string) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[name]; ok {
		return schema, nil
	}

	target, err := schemafiles.FS.ReadFile(name)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "schema not embedded", Cause: err}
	}

	loader := gojsonschema.NewSchemaLoader()
	for _, other := range schemafiles.All {
		if other == name {
			continue
		}
		data, err := schemafiles.FS.ReadFile(other)
		if err != nil {
			return nil, &SchemaLoadError{Path: other, Message: "schema not embedded", Cause: err}
		}
		if err := loader.AddSchemas(gojsonschema.NewBytesLoader(data)); err != nil {
			return nil, &SchemaLoadError{Path: other, Message: "failed to register schema", Cause: err}
		}
	}

	schema, err := loader.Compile(gojsonschema.NewBytesLoader(target))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "failed to compile schema", Cause: err}
	}
	compiled[name] = schema
	return schema, nil
}

// ValidateDocument validates a JSON document against one of the embedded schemas
// (see the constants in the schemas package). A document that is not JSON at all
// is reported as a ValidationError on the root.
func ValidateDocument(schemaName string, doc []byte) error {
	schema, err := compile(schemaName)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: fmt.Sprintf("invalid JSON: %v", err)}}}
	}
	return resultError(result)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return resultError(result)
}

func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
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
