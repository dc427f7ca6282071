// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Owner     string `json:"owner"`
	Category  string `json:"category"`
	Body      string `json:"body"`
	Completed bool   `json:"completed"`
	Status    string `json:"status"`
}

// TodoListResponse represents a filtered list of todos. Count is the number
// of todos returned after the limit.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
}

// ToTodoResponse converts a domain Todo to its HTTP representation.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Owner:     t.Owner,
		Category:  t.Category,
		Body:      t.Body,
		Completed: t.Completed,
		Status:    t.StatusLabel(),
	}
}

// ToTodoListResponse converts todos in order. An empty input yields an empty
// "todos" array rather than null.
func ToTodoListResponse(todos []todo.Todo) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return TodoListResponse{
		Todos: items,
		Count: len(items),
	}
}
