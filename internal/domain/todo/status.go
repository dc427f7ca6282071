package todo

import (
	"fmt"
	"strings"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
)

// StatusFilter selects todos by completion state. The zero value is
// StatusEither, which does not filter.
type StatusFilter string

const (
	StatusEither     StatusFilter = ""
	StatusComplete   StatusFilter = "complete"
	StatusIncomplete StatusFilter = "incomplete"
)

// IsValid returns true if the filter is one of the defined constants.
func (s StatusFilter) IsValid() bool {
	switch s {
	case StatusEither, StatusComplete, StatusIncomplete:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s StatusFilter) String() string {
	if s == StatusEither {
		return "either"
	}
	return string(s)
}

// ParseStatusFilter converts user input into a StatusFilter. Matching is
// case-insensitive and ignores surrounding whitespace. Besides the canonical
// names it accepts "true" and "false", which is how completion is spelled on
// the wire. Unknown values return a *domain.ValidationError for "status".
func ParseStatusFilter(raw string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "either", "all":
		return StatusEither, nil
	case "complete", "completed", "true":
		return StatusComplete, nil
	case "incomplete", "false":
		return StatusIncomplete, nil
	default:
		return StatusEither, &domain.ValidationError{
			Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", raw)},
		}
	}
}

// matches reports whether a todo with the given completion flag passes the filter.
func (s StatusFilter) matches(completed bool) bool {
	switch s {
	case StatusComplete:
		return completed
	case StatusIncomplete:
		return !completed
	default:
		return true
	}
}
