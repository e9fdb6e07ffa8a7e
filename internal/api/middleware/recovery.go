package middleware

import (
	"log/slog"
	"net/http"

	"github.com/teamcal/teamcal/internal/api/response"
)

// Recovery is middleware that recovers from panics and returns a 500 error.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic recovered", "error", err, "requestId", GetRequestID(r.Context()))
				response.Err(w, http.StatusInternalServerError, response.CodeInternalError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
