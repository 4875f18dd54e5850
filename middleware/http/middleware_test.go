package http

import (
	"bytes"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/api/users", want: "/api/users"},
		{path: "/api/users/", want: "/api/users"},
		{path: "//api//users", want: "/api/users"},
		{path: "/api/users/abc/", want: "/api/users/abc"},
		{path: "/", want: "/"},
		{path: "///", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var got string
			handler := NormalizePath(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				got = r.URL.Path
			}))

			req := httptest.NewRequest(nethttp.MethodGet, "http://example.com"+tt.path, nil)
			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := Recovery(logger)(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodPost, "/api/users", nil))
	})

	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error\n", rec.Body.String())
	assert.Contains(t, buf.String(), "panic while handling request")
	assert.Contains(t, buf.String(), "boom")
}

func TestRecovery_PassThrough(t *testing.T) {
	handler := Recovery(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))(
		nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusCreated)
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodPost, "/api/users", nil))

	assert.Equal(t, nethttp.StatusCreated, rec.Code)
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		handler   nethttp.HandlerFunc
		wantLevel string
		wantCode  string
	}{
		{
			name: "explicit status",
			handler: func(w nethttp.ResponseWriter, r *nethttp.Request) {
				w.WriteHeader(nethttp.StatusNoContent)
			},
			wantLevel: "level=INFO",
			wantCode:  "status=204",
		},
		{
			name: "implicit ok",
			handler: func(w nethttp.ResponseWriter, r *nethttp.Request) {
				_, _ = w.Write([]byte("[]"))
			},
			wantLevel: "level=INFO",
			wantCode:  "status=200",
		},
		{
			name: "server error",
			handler: func(w nethttp.ResponseWriter, r *nethttp.Request) {
				nethttp.Error(w, "Internal Server Error", nethttp.StatusInternalServerError)
			},
			wantLevel: "level=ERROR",
			wantCode:  "status=500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			Logging(logger)(tt.handler).ServeHTTP(
				httptest.NewRecorder(),
				httptest.NewRequest(nethttp.MethodGet, "/api/users", nil),
			)

			out := buf.String()
			assert.Contains(t, out, "http request")
			assert.Contains(t, out, "method=GET")
			assert.Contains(t, out, "path=/api/users")
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, tt.wantCode)
		})
	}
}
