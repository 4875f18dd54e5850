package http

import (
	nethttp "net/http"
	"strings"
)

// NormalizePath drops empty path segments so that "/api/users/" and
// "//api//users" route the same as "/api/users".
func NormalizePath(next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		segments := strings.FieldsFunc(r.URL.Path, func(c rune) bool { return c == '/' })
		cleaned := "/" + strings.Join(segments, "/")

		if cleaned != r.URL.Path {
			r2 := r.Clone(r.Context())
			r2.URL.Path = cleaned
			r2.URL.RawPath = ""
			r = r2
		}

		next.ServeHTTP(w, r)
	})
}
