package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type CtxKey int8

const (
	CtxKeyLogger CtxKey = iota
)

// RequestLogger puts a request scoped logger on the context and logs one
// line per completed request.
func RequestLogger(base *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := base.With("request_id", middleware.GetReqID(r.Context()))
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), CtxKeyLogger, logger)))

			logger.Infow("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}

// LoggerFrom returns the request logger, or a no-op logger outside a request.
func LoggerFrom(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(CtxKeyLogger).(*zap.SugaredLogger); ok {
		return logger
	}

	return zap.NewNop().Sugar()
}

// CORS answers preflight requests itself and stamps the allow headers on
// everything else.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")

		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", "POST, GET, PUT, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Credentials", "false")
			h.Set("Access-Control-Max-Age", "86400") // 24 hours
			h.Set("Access-Control-Allow-Headers", "X-Requested-With, X-HTTP-Method-Override, Content-Type, Accept")
			w.WriteHeader(http.StatusOK)

			return
		}

		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "X-Requested-With,content-type")
		next.ServeHTTP(w, r)
	})
}
