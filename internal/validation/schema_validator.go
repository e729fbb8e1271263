package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaTrackerSettings validates the tracker settings file
const SchemaTrackerSettings = "tracker_settings.schema.json"

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// SchemaValidator validates decoded documents against the bundled JSON schemas
type SchemaValidator interface {
	Validate(doc interface{}, schemaName string) error
	ValidateBytes(data []byte, schemaName string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// Validate checks a document holding JSON-shaped values (maps, slices, strings, float64, bool, nil)
func (v *validator) Validate(doc interface{}, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateBytes validates JSON data bytes against a bundled schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	return v.Validate(doc, schemaName)
}

// loadSchema compiles a bundled schema once and caches it
func (v *validator) loadSchema(schemaName string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaName]; ok {
		return schema, nil
	}

	schemaData, err := schemaFS.ReadFile("schemas/" + schemaName)
	if err != nil {
		return nil, fmt.Errorf("unknown schema: %w", err)
	}

	var schemaJSON interface{}
	if err := json.Unmarshal(schemaData, &schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(schemaName, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaName] = schema
	return schema, nil
}

// formatValidationError lists every failing location on its own line
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	// Only leaves carry a specific failure; parents just group their causes
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	if len(err.InstanceLocation) == 0 {
		location = "(root)"
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}

	if keywords == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
}
