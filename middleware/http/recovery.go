package http

import (
	"log/slog"
	nethttp "net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
)

// Recovery turns a handler panic into a 500 response.
func Recovery(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == nethttp.ErrAbortHandler {
					panic(rec)
				}

				logger.ErrorContext(r.Context(), "panic while handling request",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				nethttp.Error(w, "Internal Server Error", nethttp.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
