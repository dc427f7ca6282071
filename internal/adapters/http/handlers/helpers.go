package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/http/dto"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies at 1 MB.
const maxJSONBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// decodeJSONBody decodes exactly one JSON object from the request body into
// dst. Unknown fields, trailing data and bodies over maxJSONBodyBytes are
// rejected. On failure it writes a 400 problem and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errTrailingData
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, decodeError(err))
		return false
	}
	return true
}

var errTrailingData = errors.New("trailing data after JSON object")

// decodeError turns a json.Decoder failure into a validation error. Problems
// with the body as a whole use the empty field name, which the problem
// response reports as the body itself.
func decodeError(err error) error {
	var (
		verr      domain.ValidationError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		sizeErr   *http.MaxBytesError
	)

	switch {
	case errors.Is(err, io.EOF):
		verr.Add("", "must not be empty")
	case errors.Is(err, errTrailingData):
		verr.Add("", "must contain a single JSON object")
	case errors.As(err, &sizeErr):
		verr.Add("", fmt.Sprintf("must not exceed %d bytes", sizeErr.Limit))
	case errors.As(err, &syntaxErr):
		verr.Add("", fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	case errors.As(err, &typeErr) && typeErr.Field != "":
		verr.Add(typeErr.Field, "must be a "+typeErr.Type.String())
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		name := strings.TrimPrefix(err.Error(), "json: unknown field ")
		if unquoted, uerr := strconv.Unquote(name); uerr == nil {
			name = unquoted
		}
		verr.Add(name, "unknown field")
	default:
		verr.Add("", "invalid JSON")
	}
	return verr.Err()
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the body into dst and runs its validation,
// writing the problem response itself on either failure.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
