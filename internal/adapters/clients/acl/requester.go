package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/httpclient"
)

// Requester runs one JSON exchange with the upstream: it encodes the request
// body, sends it through httpclient.Client, checks the status and decodes
// the reply. Bodies are always closed.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do sends method path with reqBody encoded as JSON when non-nil. A response
// whose status differs from wantStatus goes through TranslateHTTPError;
// otherwise the body is decoded into respBody when non-nil.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := r.client.NewRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(req, wantStatus, respBody)
}

func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	ctx := req.Context()
	log := r.logger.With(
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
	)

	resp, err := r.client.Do(ctx, req)
	if resp == nil {
		log.ErrorContext(ctx, "upstream request failed", slog.Any("error", err))
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.WarnContext(ctx, "failed to close response body", slog.Any("error", cerr))
		}
	}()

	// A retryable status that outlived its retries arrives with both resp and
	// err set; the status still decides the domain error.
	if resp.StatusCode != wantStatus {
		log.ErrorContext(ctx, "unexpected upstream status",
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
