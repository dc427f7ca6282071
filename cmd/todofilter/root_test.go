package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/http/dto"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
)

const referenceData = "../../data/todos.json"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing seed file: %v", err)
	}
	return path
}

const smallSeed = `- title: Shop
  owner: Blanche
  category: groceries
  body: eggs and milk
  completed: true
- title: Essay
  owner: Fry
  category: homework
  body: quis nostrud
  completed: false
- title: Raid
  owner: Fry
  category: video games
  body: quis aute
  completed: true
`

func TestRoot_Table(t *testing.T) {
	t.Parallel()

	path := writeSeed(t, "todos.yaml", smallSeed)
	out, err := execute(t, "--owner", "Fry", path)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "TITLE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Essay") || !strings.HasSuffix(lines[1], "Incomplete") {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Raid") || !strings.HasSuffix(lines[2], "Complete") {
		t.Errorf("second row = %q", lines[2])
	}
	if lines[3] != "2 todos" {
		t.Errorf("count line = %q, want %q", lines[3], "2 todos")
	}
}

func TestRoot_Criteria(t *testing.T) {
	t.Parallel()

	path := writeSeed(t, "todos.yaml", smallSeed)

	tests := []struct {
		name      string
		args      []string
		wantCount string
	}{
		{name: "no criteria", args: nil, wantCount: "3 todos"},
		{name: "status complete", args: []string{"--status", "complete"}, wantCount: "2 todos"},
		{name: "status false", args: []string{"--status", "false"}, wantCount: "1 todo"},
		{name: "body and limit", args: []string{"--body", "quis", "--limit", "1"}, wantCount: "1 todo"},
		{name: "zero limit ignored", args: []string{"--limit", "0"}, wantCount: "3 todos"},
		{name: "category substring", args: []string{"--category", "es"}, wantCount: "2 todos"},
		{name: "no match", args: []string{"--owner", "fry"}, wantCount: "0 todos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, append(tt.args, path)...)
			if err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
			if got := lines[len(lines)-1]; got != tt.wantCount {
				t.Errorf("count line = %q, want %q", got, tt.wantCount)
			}
		})
	}
}

func TestRoot_JSONReferenceData(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--category", "es", "--json", referenceData)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	var resp dto.TodoListResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if resp.Count != 221 || len(resp.Todos) != 221 {
		t.Errorf("count = %d (%d todos), want 221", resp.Count, len(resp.Todos))
	}
}

func TestRoot_Errors(t *testing.T) {
	t.Parallel()

	path := writeSeed(t, "todos.yaml", smallSeed)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "bad status", args: []string{"--status", "maybe", path}, want: domain.ErrValidation},
		{name: "missing file", args: []string{filepath.Join(t.TempDir(), "none.json")}, want: os.ErrNotExist},
		{name: "invalid record", args: []string{writeSeed(t, "bad.json", `[{"title":"x"}]`)}, want: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("Execute() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRoot_RequiresOneFile(t *testing.T) {
	t.Parallel()

	if _, err := execute(t); err == nil {
		t.Error("Execute() with no file returned nil error")
	}
}
