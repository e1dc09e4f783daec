package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
)

func signTestToken(t *testing.T, secret string, method jwt.SigningMethod) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"user_id":    "user-1",
		"session_id": "sess-1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestJWTAuthValidToken(t *testing.T) {
	called := false
	handler := JWTAuth("test-secret", nil)(func(ctx *fasthttp.RequestCtx) {
		called = true
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", jwt.SigningMethodHS256))
	handler(ctx)

	if !called {
		t.Fatalf("expected the wrapped handler to run")
	}
	if got := string(ctx.Request.Header.Peek("X-User-ID")); got != "user-1" {
		t.Fatalf("expected user id propagated, got %q", got)
	}
}

func TestJWTAuthMissingToken(t *testing.T) {
	called := false
	handler := JWTAuth("test-secret", nil)(func(ctx *fasthttp.RequestCtx) {
		called = true
	})

	ctx := &fasthttp.RequestCtx{}
	handler(ctx)

	if called {
		t.Fatalf("handler must not run without a token")
	}
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", ctx.Response.StatusCode())
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	called := false
	handler := JWTAuth("test-secret", nil)(func(ctx *fasthttp.RequestCtx) {
		called = true
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("Authorization", "Bearer "+signTestToken(t, "other-secret", jwt.SigningMethodHS256))
	handler(ctx)

	if called {
		t.Fatalf("handler must not run with a forged token")
	}
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", ctx.Response.StatusCode())
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	called := false
	handler := JWTAuth("test-secret", nil)(func(ctx *fasthttp.RequestCtx) {
		called = true
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("Authorization", "Bearer "+signed)
	handler(ctx)

	if called {
		t.Fatalf("handler must not run with an expired token")
	}
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", ctx.Response.StatusCode())
	}
}
