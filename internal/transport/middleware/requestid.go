package middleware

import (
	"net/http"

	"github.com/frahmantamala/budget-tracker/pkg/logger"
	"github.com/google/uuid"
)

const TraceHeader = "X-Trace-ID"

// RequestID tags every request with a trace id, honoring one supplied
// by the caller so ids survive proxy hops.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "trace_id", traceID)
		w.Header().Set(TraceHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
