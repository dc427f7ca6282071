package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/telemetry"
)

// Stack returns the service's middleware in the order they wrap a request,
// outermost first. requestTimeout bounds each handler; zero disables it.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, requestTimeout time.Duration) []func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(requestTimeout),
	}
}
