package acl

// todoDTO matches a todo as the upstream API serializes it.
type todoDTO struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	Owner    string `json:"owner"`
	Category string `json:"category"`
	Body     string `json:"body"`
	Status   bool   `json:"status"`
}

// createTodoRequestDTO is the POST /api/todos payload.
type createTodoRequestDTO struct {
	Title    string `json:"title"`
	Owner    string `json:"owner"`
	Category string `json:"category"`
	Body     string `json:"body"`
	Status   bool   `json:"status"`
}

// createdResponseDTO is the upstream's reply to a successful create.
type createdResponseDTO struct {
	ID string `json:"id"`
}
