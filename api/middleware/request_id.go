package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/artmovehq/artmove-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID seeds every request with a correlation id. An inbound id is
// trusted only when it parses as a UUID; anything else gets a fresh one so
// clients cannot inject arbitrary strings into log lines.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if _, err := uuid.Parse(reqID); err != nil {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
