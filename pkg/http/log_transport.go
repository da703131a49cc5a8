package http

import (
	"net/http"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// headers that must never reach the logs
var redactedHeaders = map[string]struct{}{
	"Authorization":  {},
	"X-Goog-Api-Key": {},
}

type logTransport struct {
	transport http.RoundTripper
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()

	ctxzap.Debug(ctx, "HTTP outbound request",
		zap.String("method", req.Method),
		zap.String("url", redactURL(req)),
		zap.Any("headers", redactHeaders(req.Header)),
		zap.Int64("content_length", req.ContentLength),
	)

	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		ctxzap.Debug(ctx, "HTTP outbound request failed",
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	ctxzap.Debug(ctx, "HTTP outbound response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return resp, nil
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if _, ok := redactedHeaders[http.CanonicalHeaderKey(k)]; ok {
			out[k] = []string{"[REDACTED]"}
			continue
		}
		out[k] = v
	}
	return out
}

func redactURL(req *http.Request) string {
	u := *req.URL
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "[REDACTED]")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// WithRequestLogging wraps the HTTP transport with debug logging of outbound calls.
// Credentials in headers and the query string are redacted.
func WithRequestLogging() HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &logTransport{
			transport: rt,
		}
	})
}
