// Package replay runs scripted intents through the task store without a
// terminal, and renders the resulting view.
package replay

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/tasklist/internal/intent"
	"github.com/nibzard/tasklist/internal/utils"
)

//go:embed script.schema.json
var schemaJSON []byte

const schemaURL = "script.schema.json"

// ScriptVersion is the only supported script version.
const ScriptVersion = 1

// ErrEmptyScript is returned for a script with no content.
var ErrEmptyScript = errors.New("empty script")

// Script is a sequence of intents with the initial view flags.
type Script struct {
	Version  int             `json:"version"`
	DarkMode bool            `json:"dark_mode,omitempty"`
	Intents  []intent.Intent `json:"intents"`
}

// ValidationError is a single schema violation.
type ValidationError struct {
	Path string // dotted path to the offending value
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SchemaError collects every violation found in a script.
type SchemaError struct {
	Errors []*ValidationError
}

func (e *SchemaError) Error() string {
	lines := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		lines[i] = ve.Error()
	}
	return "invalid script:\n  " + strings.Join(lines, "\n  ")
}

var (
	compileOnce sync.Once
	schema      *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			compileErr = fmt.Errorf("load script schema: %w", err)
			return
		}
		schema, compileErr = compiler.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile script schema: %w", compileErr)
		}
	})
	return schema, compileErr
}

// Parse validates data against the script schema and decodes it.
func Parse(data []byte) (*Script, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyScript
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, toSchemaError(err)
	}

	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &s, nil
}

// Read parses a script from r.
func Read(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

// Load parses the script at path. The path "-" reads standard input.
func Load(path string) (*Script, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

func toSchemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	se := &SchemaError{}
	collectSchemaErrors(se, ve)
	return se
}

// collectSchemaErrors flattens the leaf causes of a validation error.
func collectSchemaErrors(se *SchemaError, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		se.Errors = append(se.Errors, &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(se, cause)
	}
}
