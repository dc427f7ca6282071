package todo

import "strings"

// Criteria holds optional filter criteria for listing todos.
// Zero-value fields mean "no filter" for that dimension, and every active
// dimension must match (logical AND).
//
// Substring matches are case-sensitive. A Limit of zero or less is inactive.
type Criteria struct {
	Owner    string
	Category string
	Body     string
	Status   StatusFilter
	Limit    int
}

// IsZero reports whether no criterion is active.
func (c Criteria) IsZero() bool {
	return c.Owner == "" &&
		c.Category == "" &&
		c.Body == "" &&
		c.Status == StatusEither &&
		c.Limit <= 0
}

// Matches reports whether t satisfies every active predicate. Limit is not a
// per-record predicate and is ignored here.
func (c Criteria) Matches(t *Todo) bool {
	if c.Owner != "" && !strings.Contains(t.Owner, c.Owner) {
		return false
	}
	if c.Category != "" && !strings.Contains(t.Category, c.Category) {
		return false
	}
	if c.Body != "" && !strings.Contains(t.Body, c.Body) {
		return false
	}
	return c.Status.matches(t.Completed)
}

// Apply returns the todos that satisfy c, in their original order, truncated
// to c.Limit when it is positive. The input slice is never modified and the
// result never shares its backing array, so callers may append to either.
func Apply(todos []Todo, c Criteria) []Todo {
	capacity := len(todos)
	if c.Limit > 0 && c.Limit < capacity {
		capacity = c.Limit
	}

	out := make([]Todo, 0, capacity)
	for i := range todos {
		if c.Limit > 0 && len(out) == c.Limit {
			break
		}
		if c.Matches(&todos[i]) {
			out = append(out, todos[i])
		}
	}
	return out
}
