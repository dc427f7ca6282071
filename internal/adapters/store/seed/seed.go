// Package seed reads todo seed files. JSON and YAML are supported; the format
// is chosen by file extension. Every record is validated before any todo is
// returned, so a bad file never half-loads.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
)

// Format identifies a seed file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported seed format")

// record is one todo as written in a seed file. Completion may be spelled
// "completed" or "status"; "completed" wins when both are present.
type record struct {
	Title     string `json:"title" yaml:"title"`
	Owner     string `json:"owner" yaml:"owner"`
	Category  string `json:"category" yaml:"category"`
	Body      string `json:"body" yaml:"body"`
	Completed *bool  `json:"completed" yaml:"completed"`
	Status    *bool  `json:"status" yaml:"status"`
}

func (r *record) toDomain() todo.Todo {
	done := false
	switch {
	case r.Completed != nil:
		done = *r.Completed
	case r.Status != nil:
		done = *r.Status
	}
	return todo.Todo{
		Title:     r.Title,
		Owner:     r.Owner,
		Category:  r.Category,
		Body:      r.Body,
		Completed: done,
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads and validates the seed file at path.
func LoadFile(path string) ([]todo.Todo, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	todos, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return todos, nil
}

// Decode reads a list of todos in the given format and validates each one.
// A failing record yields a *domain.ValidationError whose field names carry
// the record index, e.g. "todos[3].owner".
func Decode(r io.Reader, format Format) ([]todo.Todo, error) {
	var records []record

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	todos := make([]todo.Todo, 0, len(records))
	for i := range records {
		t := records[i].toDomain()
		if err := t.Validate(); err != nil {
			return nil, indexed(i, err)
		}
		todos = append(todos, t)
	}
	return todos, nil
}

// indexed prefixes each field of a validation error with the record index.
func indexed(i int, err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("record %d: %w", i, err)
	}
	fields := make(map[string]string, len(verr.Fields))
	for k, v := range verr.Fields {
		fields[fmt.Sprintf("todos[%d].%s", i, k)] = v
	}
	return &domain.ValidationError{Fields: fields}
}
