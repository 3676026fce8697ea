package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	t.Run("Production", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, log)
	})

	t.Run("Development", func(t *testing.T) {
		Init("development")
		assert.NotNil(t, log)
	})
}

func TestL(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	// Force nil to test lazy initialization
	log = nil
	t.Setenv("APP_ENV", "test")

	assert.NotNil(t, L())
	assert.NotNil(t, log)
}

func TestReplace(t *testing.T) {
	original := L()
	replacement := zap.NewNop()

	restore := Replace(replacement)
	assert.Same(t, replacement, L())

	restore()
	assert.Same(t, original, L())
}

func TestContextFunctions(t *testing.T) {
	ctx := context.Background()

	t.Run("RequestID", func(t *testing.T) {
		assert.Equal(t, "req-1", RequestIDFrom(WithRequestID(ctx, "req-1")))
		assert.Empty(t, RequestIDFrom(ctx))
	})

	t.Run("Username", func(t *testing.T) {
		assert.Equal(t, "alice", UsernameFrom(WithUsername(ctx, "alice")))
		assert.Empty(t, UsernameFrom(ctx))
	})
}

func TestFromCtx(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	defer Replace(zap.New(core))()

	t.Run("WithRequestIDAndUser", func(t *testing.T) {
		ctx := WithUsername(WithRequestID(context.Background(), "req-abc-123"), "alice")

		FromCtx(ctx).Info("order placed")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		fields := logs[0].ContextMap()
		assert.Equal(t, "req-abc-123", fields["request_id"])
		assert.Equal(t, "alice", fields["user"])
	})

	t.Run("WithoutValues", func(t *testing.T) {
		FromCtx(context.Background()).Info("anonymous")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		fields := logs[0].ContextMap()
		_, hasID := fields["request_id"]
		_, hasUser := fields["user"]
		assert.False(t, hasID)
		assert.False(t, hasUser)
	})
}

func TestSync(t *testing.T) {
	assert.NotPanics(t, func() {
		Sync()
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	t.Run("Generates ID when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/menu", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.Equal(t, w.Header().Get(RequestIDHeader), seen)
	})

	t.Run("Preserves existing ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/menu", nil)
		req.Header.Set(RequestIDHeader, "test-id-123")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "test-id-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "test-id-123", seen)
	})
}
