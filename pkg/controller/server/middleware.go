package server

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/secmon-lab/pushloop/pkg/utils/logging"
)

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.Default().With(slog.String("request_id", uuid.NewString()))
		ctx := logging.With(r.Context(), logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		// Health checks hit /health constantly
		level := slog.LevelInfo
		if r.URL.Path == "/health" {
			level = logging.LevelTrace
		}
		logger.Log(ctx, level, "http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
