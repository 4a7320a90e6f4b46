package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed task-file.schema.json
var taskFileSchema string

const taskFileSchemaURL = "https://github.com/nibzard/tareas/task-file.schema.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(taskFileSchemaURL, strings.NewReader(taskFileSchema)); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(taskFileSchemaURL)
	})
	return compiledSchema, compileErr
}

// SchemaViolation is one place where a task file departs from the schema.
type SchemaViolation struct {
	Path    string // e.g. "[1].titulo"; empty for the top level
	Message string
}

func (v SchemaViolation) Error() string {
	if v.Path != "" {
		return fmt.Sprintf("%s: %s", v.Path, v.Message)
	}
	return v.Message
}

// SchemaReport is the result of Validate.
type SchemaReport struct {
	Valid      bool
	Violations []SchemaViolation
}

// Validate checks task file content against the task file schema. It is
// stricter than Load, which tolerates unknown codes and skips bad elements,
// so it is meant for diagnostics only.
func Validate(data []byte) (*SchemaReport, error) {
	s, err := schema()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return &SchemaReport{
			Violations: []SchemaViolation{{Message: fmt.Sprintf("invalid JSON: %v", err)}},
		}, nil
	}

	report := &SchemaReport{Valid: true}
	if err := s.Validate(doc); err != nil {
		report.Valid = false
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			report.Violations = append(report.Violations, SchemaViolation{Message: err.Error()})
			return report, nil
		}
		collectViolations(report, ve)
	}
	return report, nil
}

func collectViolations(report *SchemaReport, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		report.Violations = append(report.Violations, SchemaViolation{
			Path:    jsonPointerToPath(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectViolations(report, cause)
	}
}

// jsonPointerToPath converts "/1/titulo" to "[1].titulo".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
