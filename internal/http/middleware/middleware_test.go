package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/platform/ctxutil"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type stubAuth struct {
	tokens services.TokenService
}

func (s stubAuth) Login(ctx context.Context, email, password string) (string, error) {
	return s.tokens.Issue(email)
}

func (s stubAuth) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	return false, nil
}

func (s stubAuth) VerifyToken(tokenString string) (*services.JWTClaims, error) {
	return s.tokens.Verify(tokenString)
}

func newGatedRouter(tokens services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	am := NewAuthMiddleware(logger.NewNop(), stubAuth{tokens: tokens})
	r.POST("/courses", am.RequireAuth(), func(c *gin.Context) {
		ad := ctxutil.GetAuthData(c.Request.Context())
		c.JSON(http.StatusCreated, gin.H{"email": ad.Email, "key": c.GetString(AuthEmailKey)})
	})
	return r
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body["message"]
}

func TestRequireAuthMissingToken(t *testing.T) {
	r := newGatedRouter(services.NewTokenService("s", time.Hour))
	for _, header := range []string{"", "Bearer", "Basic abc"} {
		req := httptest.NewRequest(http.MethodPost, "/courses", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: want=%d got=%d", header, http.StatusUnauthorized, rec.Code)
		}
		if msg := decodeMessage(t, rec); msg != "Access denied. No token provided." {
			t.Fatalf("header %q: message=%q", header, msg)
		}
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	now := time.Now()
	tokens := services.NewTokenServiceWithClock("s", time.Hour, func() time.Time { return now })
	expired, err := tokens.Issue("admin@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	now = now.Add(2 * time.Hour)
	r := newGatedRouter(tokens)

	for _, tok := range []string{"garbage", expired} {
		req := httptest.NewRequest(http.MethodPost, "/courses", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("want=%d got=%d", http.StatusBadRequest, rec.Code)
		}
		if msg := decodeMessage(t, rec); msg != "Invalid token." {
			t.Fatalf("message=%q", msg)
		}
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	tokens := services.NewTokenService("s", time.Hour)
	tok, err := tokens.Issue("admin@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/courses", nil)
	req.Header.Set("Authorization", "bearer "+tok)
	rec := httptest.NewRecorder()
	newGatedRouter(tokens).ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: want=%d got=%d body=%s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["email"] != "admin@example.com" || body["key"] != "admin@example.com" {
		t.Fatalf("claims not propagated: %v", body)
	}
}

func TestAttachTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, ctxutil.RequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Body.String() != "req-123" || rec.Header().Get(headerRequestID) != "req-123" {
		t.Fatalf("request id: body=%q header=%q", rec.Body.String(), rec.Header().Get(headerRequestID))
	}
	if rec.Header().Get(headerTraceID) != "req-123" {
		t.Fatalf("trace id should fall back to request id, got=%q", rec.Header().Get(headerTraceID))
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerRequestID, "bad id\nwith newline")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get(headerRequestID); got == "" || strings.Contains(got, " ") {
		t.Fatalf("unsafe request id should be replaced, got=%q", got)
	}
}
