package server

import (
	"context"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"seqstats/internal/logger"
	"seqstats/internal/perr"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// requestID propagates X-Request-ID or mints a UUID, stores it where
// chi's GetReqID finds it, echoes it on the response and tags the
// request logger.
func requestID(base logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			ctx := logger.Into(r.Context(), base)
			ctx = logger.WithRequest(ctx, id)
			ctx = withReqID(ctx, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// recoverJSON converts panics into a JSON 500 and logs the stack.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				stack := strings.Join(strings.Split(string(debug.Stack()), "\n"), "\n\t")
				logger.C(r.Context()).Error().
					Interface("panic", v).
					Msgf("panic recovered\n%s", stack)

				writeError(w, r, perr.New(perr.CodeUnknown, "internal error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// captureWriter records status and bytes written.
type captureWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	n, err := cw.ResponseWriter.Write(b)
	if n > 0 {
		cw.bytes += n
	}
	return n, err
}

// accessLog logs method, path, status, elapsed and bytes on the request
// logger. Requests slower than slow log at warn; 0 disables that.
func accessLog(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(cw, r)

			elapsed := time.Since(start)
			log := logger.C(r.Context())
			evt := log.Info()
			if slow > 0 && elapsed >= slow {
				evt = log.Warn()
			}
			evt.Int("status", cw.status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("bytes", cw.bytes).
				Msg("request done")
		})
	}
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader, "Content-Disposition"},
		MaxAge:         300,
	})
}

func withReqID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, chimw.RequestIDKey, id)
}

// reqIDOf returns the request ID stored by requestID.
func reqIDOf(r *http.Request) string { return chimw.GetReqID(r.Context()) }
