// Package todo holds the Todo entity and the filter engine that selects todos
// by owner, category, body, completion status and limit.
package todo

import (
	"strings"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
)

// Todo is a single task owned by someone. Records are treated as immutable
// once loaded: stores hand out copies and the filter engine never mutates them.
type Todo struct {
	ID        string
	Title     string
	Owner     string
	Category  string
	Body      string
	Completed bool
}

// Validate requires a non-blank title and owner. Failures come back as a
// *domain.ValidationError naming each field.
func (t *Todo) Validate() error {
	var verr domain.ValidationError
	if strings.TrimSpace(t.Title) == "" {
		verr.Add("title", domain.MsgRequired)
	}
	if strings.TrimSpace(t.Owner) == "" {
		verr.Add("owner", domain.MsgRequired)
	}
	return verr.Err()
}

// StatusLabel returns the human-readable completion label shown for a todo.
func (t *Todo) StatusLabel() string {
	if t.Completed {
		return "Complete"
	}
	return "Incomplete"
}
