// Package acl is the anti-corruption layer for the remote store backend. It
// speaks the upstream todos API wire format (Mongo-style "_id" keys and a
// boolean "status" for completion) and hands domain todos to the rest of the
// service.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problemDetail is the subset of an error body the upstream may send: RFC
// 9457 problem details, or Javalin's JSON errors, which carry the message in
// "title" and leave "detail" out.
type problemDetail struct {
	Title  string        `json:"title"`
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

func (pd *problemDetail) message(status int) string {
	switch {
	case pd.Detail != "":
		return pd.Detail
	case pd.Title != "" && pd.Title != http.StatusText(status):
		return pd.Title
	default:
		return http.StatusText(status)
	}
}

// errorDetail is one field-level error.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps an upstream error response to a domain error.
// Problem bodies contribute their detail text, and 400/422 responses that
// list field errors become a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	sentinel := sentinelFor(resp.StatusCode)
	if errors.Is(sentinel, domain.ErrValidation) && len(pd.Errors) > 0 {
		return toValidationError(pd.Errors)
	}

	detail := pd.message(resp.StatusCode)
	if sentinel == nil {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
	return fmt.Errorf("%s: %w", detail, sentinel)
}

// sentinelFor returns the domain error for an upstream status, or nil when
// the status has no domain meaning.
func sentinelFor(status int) error {
	switch status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrForbidden
	}
	if status >= http.StatusInternalServerError {
		return domain.ErrUnavailable
	}
	return nil
}

// parseProblemDetail returns the zero value for anything that is not a
// readable JSON error body.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError keys fields by location without the "body." or "query."
// prefix.
func toValidationError(details []errorDetail) *domain.ValidationError {
	var verr domain.ValidationError
	for _, d := range details {
		field := strings.TrimPrefix(strings.TrimPrefix(d.Location, "body."), "query.")
		verr.Add(field, d.Message)
	}
	return &verr
}
