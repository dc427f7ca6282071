package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of HTTP header names (lowercase) that carry
// credentials. The HTTP middleware's RedactHeaders uses the same set, so a
// header redacted in one place is redacted in the other.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// sensitiveFields are attribute keys whose values are always redacted.
// "dsn" and "uri" cover store connection strings from the config.
var sensitiveFields = []string{"password", "secret", "token", "dsn", "uri"}

var (
	// bearerPattern matches "Bearer <token>" strings that appear as raw values.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// jwtPattern matches raw JWT strings. Each segment needs at least 10
	// characters so version strings like 1.2.3 are left alone.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// apiKeyInlinePattern matches "api_key=<value>" or "apikey:<value>".
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

	// connCredentialsPattern matches URLs with embedded user:password, as in
	// postgres:// and mongodb:// connection strings that end up in errors.
	connCredentialsPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.\-]*://[^:/@\s]+:[^@\s]+@`)
)

// newRedactAttr returns a masq ReplaceAttr function for slog.HandlerOptions.
// Values are redacted by attribute name, by name prefix, and by regex for
// credentials that slip into free-form strings such as wrapped errors.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+6)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
		masq.WithRegex(connCredentialsPattern),
	)

	return masq.New(opts...)
}
