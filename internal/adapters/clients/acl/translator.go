package acl

import (
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
)

// toDomainTodo maps the upstream "status" flag onto Completed. Upstream
// records are taken as stored and not run through Todo.Validate: collections
// written by other clients may lack a title and must still list and filter.
func toDomainTodo(dto *todoDTO) todo.Todo {
	return todo.Todo{
		ID:        dto.ID,
		Title:     dto.Title,
		Owner:     dto.Owner,
		Category:  dto.Category,
		Body:      dto.Body,
		Completed: dto.Status,
	}
}

func toDomainTodoList(dtos []todoDTO) []todo.Todo {
	todos := make([]todo.Todo, len(dtos))
	for i := range dtos {
		todos[i] = toDomainTodo(&dtos[i])
	}
	return todos
}

func toCreateTodoRequest(t *todo.Todo) createTodoRequestDTO {
	return createTodoRequestDTO{
		Title:    t.Title,
		Owner:    t.Owner,
		Category: t.Category,
		Body:     t.Body,
		Status:   t.Completed,
	}
}
