package grpc

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLoggingInterceptor(t *testing.T) {
	tests := []struct {
		name      string
		handler   grpc.UnaryHandler
		wantErr   bool
		wantLevel string
		wantCode  string
	}{
		{
			name: "success",
			handler: func(ctx context.Context, req any) (any, error) {
				return "ok", nil
			},
			wantLevel: "level=DEBUG",
			wantCode:  "code=OK",
		},
		{
			name: "failure",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, status.Error(codes.NotFound, "unknown service")
			},
			wantErr:   true,
			wantLevel: "level=WARN",
			wantCode:  "code=NotFound",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			interceptor := LoggingInterceptor(logger)

			info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
			resp, err := interceptor(context.Background(), nil, info, tt.handler)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "ok", resp)
			}

			out := buf.String()
			assert.Contains(t, out, "method=/grpc.health.v1.Health/Check")
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, tt.wantCode)
		})
	}
}
