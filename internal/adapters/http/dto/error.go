package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
)

const problemContentType = "application/problem+json"

// LocationPath prefixes field errors about URL path parameters.
const LocationPath = "path"

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at one offending input, e.g. "query.limit" or "body.title".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusBySentinel is checked in order; the first match wins.
var statusBySentinel = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

func newProblem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// NewErrorResponse builds the problem document for err. Validation errors
// carry one ErrorDetail per field, located in the query for reads and the
// body otherwise.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	return newErrorResponse(r, inputLocation(r), err)
}

func newErrorResponse(r *http.Request, location string, err error) ErrorResponse {
	resp := newProblem(r, statusFor(err), err.Error())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(location, verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteErrorResponseAt is WriteErrorResponse with field errors placed under
// location, e.g. LocationPath for a bad {id}.
func WriteErrorResponseAt(w http.ResponseWriter, r *http.Request, location string, err error) {
	writeProblem(w, r, newErrorResponse(r, location, err))
}

// WriteStatus writes a problem response for a status that has no domain error
// behind it, such as an unmatched route.
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, newProblem(r, status, detail))
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "encoding problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
}

func statusFor(err error) int {
	for _, m := range statusBySentinel {
		if errors.Is(err, m.sentinel) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// inputLocation is "query" for reads and "body" for everything else.
func inputLocation(r *http.Request) string {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		return "query"
	default:
		return "body"
	}
}

// fieldDetails sorts by location. An empty field name refers to the input as
// a whole and gets the bare location.
func fieldDetails(location string, fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := location
		if field != "" {
			loc = location + "." + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
