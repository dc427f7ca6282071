package dto_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/http/dto"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("error = nil, want validation error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid request passes",
			req:     dto.CreateTodoRequest{Title: "Groceries", Owner: "Fry"},
			wantErr: false,
		},
		{
			name: "valid request with all fields",
			req: dto.CreateTodoRequest{
				Title:     "Groceries",
				Owner:     "Fry",
				Category:  "groceries",
				Body:      "eggs, milk",
				Completed: true,
			},
			wantErr: false,
		},
		{
			name:      "missing title",
			req:       dto.CreateTodoRequest{Owner: "Fry"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "whitespace title",
			req:       dto.CreateTodoRequest{Title: "   ", Owner: "Fry"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "missing owner",
			req:       dto.CreateTodoRequest{Title: "Groceries"},
			wantErr:   true,
			wantField: "owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateTodoRequest_Validate_MultipleErrors(t *testing.T) {
	t.Parallel()

	req := dto.CreateTodoRequest{}
	err := req.Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("len(Fields) = %d, want 2: %v", len(verr.Fields), verr.Fields)
	}
}

func TestCreateTodoRequest_ToDomain(t *testing.T) {
	t.Parallel()

	req := dto.CreateTodoRequest{Title: "Groceries", Owner: "Fry", Category: "groceries", Body: "eggs", Completed: true}
	got := req.ToDomain()

	want := todo.Todo{Title: "Groceries", Owner: "Fry", Category: "groceries", Body: "eggs", Completed: true}
	if *got != want {
		t.Errorf("ToDomain() = %+v, want %+v", *got, want)
	}
}

func TestParseCriteria(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		want      todo.Criteria
		wantField string
	}{
		{
			name:  "empty query",
			query: "",
			want:  todo.Criteria{},
		},
		{
			name:  "text filters verbatim",
			query: "owner=Barry&category=video+games&body=quis",
			want:  todo.Criteria{Owner: "Barry", Category: "video games", Body: "quis"},
		},
		{
			name:  "status complete",
			query: "status=complete",
			want:  todo.Criteria{Status: todo.StatusComplete},
		},
		{
			name:  "status true",
			query: "status=true",
			want:  todo.Criteria{Status: todo.StatusComplete},
		},
		{
			name:  "status incomplete",
			query: "status=incomplete",
			want:  todo.Criteria{Status: todo.StatusIncomplete},
		},
		{
			name:  "status false",
			query: "status=false",
			want:  todo.Criteria{Status: todo.StatusIncomplete},
		},
		{
			name:  "status either",
			query: "status=either",
			want:  todo.Criteria{},
		},
		{
			name:  "limit",
			query: "limit=7",
			want:  todo.Criteria{Limit: 7},
		},
		{
			name:  "negative limit accepted",
			query: "limit=-3",
			want:  todo.Criteria{Limit: -3},
		},
		{
			name:  "all parameters",
			query: "owner=Fry&category=es&body=quis&status=incomplete&limit=12",
			want: todo.Criteria{
				Owner: "Fry", Category: "es", Body: "quis",
				Status: todo.StatusIncomplete, Limit: 12,
			},
		},
		{
			name:      "non-integer limit",
			query:     "limit=lots",
			wantField: dto.ParamLimit,
		},
		{
			name:      "unknown status",
			query:     "status=maybe",
			wantField: dto.ParamStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery() error = %v", err)
			}

			got, err := dto.ParseCriteria(q)
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Fatalf("ParseCriteria() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseCriteria() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseCriteria_ReportsEveryBadParameter(t *testing.T) {
	t.Parallel()

	_, err := dto.ParseCriteria(url.Values{"limit": {"x"}, "status": {"maybe"}})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ParseCriteria() = %v, want *ValidationError", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("Fields = %v, want limit and status", verr.Fields)
	}
}
