package dto

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
)

const msgNotInteger = "must be an integer"

// Query parameters accepted by GET /api/v1/todos.
const (
	ParamOwner    = "owner"
	ParamCategory = "category"
	ParamBody     = "body"
	ParamStatus   = "status"
	ParamLimit    = "limit"
)

// CreateTodoRequest represents the JSON body for creating a todo.
type CreateTodoRequest struct {
	Title     string `json:"title"`
	Owner     string `json:"owner"`
	Category  string `json:"category"`
	Body      string `json:"body"`
	Completed bool   `json:"completed"`
}

// Validate applies the todo's own rules, so the body is rejected before it
// reaches the service.
func (r *CreateTodoRequest) Validate() error {
	return r.ToDomain().Validate()
}

// ToDomain maps the request onto a todo without an ID.
func (r *CreateTodoRequest) ToDomain() *todo.Todo {
	return &todo.Todo{
		Title:     r.Title,
		Owner:     r.Owner,
		Category:  r.Category,
		Body:      r.Body,
		Completed: r.Completed,
	}
}

// ParseCriteria reads filter criteria from a query string. Text parameters
// are taken verbatim, so a value of spaces still filters. A limit that is not
// an integer and an unknown status are both reported in one
// *domain.ValidationError; a zero or negative limit is accepted and leaves
// the result untruncated.
func ParseCriteria(q url.Values) (todo.Criteria, error) {
	c := todo.Criteria{
		Owner:    q.Get(ParamOwner),
		Category: q.Get(ParamCategory),
		Body:     q.Get(ParamBody),
	}
	var verr domain.ValidationError

	status, err := todo.ParseStatusFilter(q.Get(ParamStatus))
	if err != nil {
		verr.Add(ParamStatus, "invalid: "+strconv.Quote(q.Get(ParamStatus)))
	}
	c.Status = status

	if raw := strings.TrimSpace(q.Get(ParamLimit)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			verr.Add(ParamLimit, msgNotInteger)
		}
		c.Limit = n
	}

	if err := verr.Err(); err != nil {
		return todo.Criteria{}, err
	}
	return c, nil
}
