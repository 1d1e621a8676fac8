package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// sensitiveFields are field names that should be filtered from logs
var sensitiveFields = []string{
	"password",
	"password_hash",
	"token",
	"access_token",
	"refresh_token",
	"authorization",
	"secret",
	"credential",
}

// maxLoggedBody caps how much of a body is inspected and logged.
const maxLoggedBody = 8 << 10

func LoggingMiddleware(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			traceID := w.Header().Get(TraceHeader)

			logRequest(logger, r, traceID)

			ww := &responseWriter{ResponseWriter: w, body: &bytes.Buffer{}}

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logResponse(logger, ww, duration, traceID)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status and body
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.body.Len() < maxLoggedBody {
		rw.body.Write(b[:min(len(b), maxLoggedBody-rw.body.Len())])
	}
	return rw.ResponseWriter.Write(b)
}

func logRequest(logger *slog.Logger, r *http.Request, traceID string) {
	var bodyBytes []byte
	if r.Body != nil {
		bodyBytes, _ = io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}
	if len(bodyBytes) > maxLoggedBody {
		bodyBytes = bodyBytes[:maxLoggedBody]
	}

	logger.Info("incoming request",
		"trace_id", traceID,
		"method", r.Method,
		"path", r.URL.Path,
		"query", r.URL.RawQuery,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
		"body", filterSensitiveBody(bodyBytes),
	)
}

func logResponse(logger *slog.Logger, rw *responseWriter, duration time.Duration, traceID string) {
	statusCode := rw.statusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	logLevel := slog.LevelInfo
	if statusCode >= 500 {
		logLevel = slog.LevelError
	} else if statusCode >= 400 {
		logLevel = slog.LevelWarn
	}

	logger.Log(nil, logLevel, "response",
		"trace_id", traceID,
		"status_code", statusCode,
		"duration_ms", duration.Milliseconds(),
		"response_size", rw.body.Len(),
		"body", filterSensitiveBody(rw.body.Bytes()),
	)
}

// filterSensitiveBody masks credential-bearing fields in JSON bodies.
// Non-JSON bodies that mention a sensitive field are dropped wholesale.
func filterSensitiveBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var jsonData interface{}
	if err := json.Unmarshal(body, &jsonData); err != nil {
		bodyStr := string(body)
		lower := strings.ToLower(bodyStr)
		for _, field := range sensitiveFields {
			if strings.Contains(lower, field) {
				return "[FILTERED]"
			}
		}
		return bodyStr
	}

	filtered, err := json.Marshal(filterSensitiveJSON(jsonData))
	if err != nil {
		return "[FILTERED]"
	}
	return string(filtered)
}

func filterSensitiveJSON(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		filtered := make(map[string]interface{})
		for key, value := range v {
			lowerKey := strings.ToLower(key)

			isSensitive := false
			for _, field := range sensitiveFields {
				if strings.Contains(lowerKey, field) {
					isSensitive = true
					break
				}
			}

			if isSensitive {
				filtered[key] = "[FILTERED]"
			} else {
				filtered[key] = filterSensitiveJSON(value)
			}
		}
		return filtered
	case []interface{}:
		filtered := make([]interface{}, len(v))
		for i, item := range v {
			filtered[i] = filterSensitiveJSON(item)
		}
		return filtered
	default:
		return v
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
