package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"github.com/yungbote/portfolio-backend/internal/platform/gdrive"
)

func tokenServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// withTokenURL points the exchange at srv through the oauth2 HTTP client hook.
func withTokenURL(ctx context.Context, srv *httptest.Server) context.Context {
	client := &http.Client{Transport: rewriteTransport{target: srv.URL}}
	return context.WithValue(ctx, oauth2.HTTPClient, client)
}

type rewriteTransport struct{ target string }

func (rt rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	u := strings.TrimPrefix(rt.target, "http://")
	req.URL.Scheme = "http"
	req.URL.Host = u
	return http.DefaultTransport.RoundTrip(req)
}

func TestMintRefreshToken(t *testing.T) {
	srv := tokenServer(t, `{"access_token":"at","refresh_token":"rt-123","token_type":"Bearer","expires_in":3600}`)
	var out bytes.Buffer
	cfg := gdrive.Config{ClientID: "id", ClientSecret: "secret", RedirectURL: "http://localhost"}
	if err := mintRefreshToken(withTokenURL(context.Background(), srv), strings.NewReader("code-1\n"), &out, cfg); err != nil {
		t.Fatalf("mintRefreshToken: %v", err)
	}
	if !strings.Contains(out.String(), "access_type=offline") {
		t.Fatalf("consent url missing offline access:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Refresh Token: rt-123") {
		t.Fatalf("refresh token not printed:\n%s", out.String())
	}
}

func TestMintRefreshTokenEmptyCode(t *testing.T) {
	var out bytes.Buffer
	cfg := gdrive.Config{ClientID: "id", ClientSecret: "secret"}
	if err := mintRefreshToken(context.Background(), strings.NewReader("\n"), &out, cfg); err == nil {
		t.Fatalf("expected error for empty code")
	}
}

func TestCheckRefreshToken(t *testing.T) {
	srv := tokenServer(t, `{"access_token":"at","token_type":"Bearer","expires_in":3600}`)
	var out bytes.Buffer
	cfg := gdrive.Config{ClientID: "id", ClientSecret: "secret", RefreshToken: "rt"}
	if err := checkRefreshToken(withTokenURL(context.Background(), srv), &out, cfg); err != nil {
		t.Fatalf("checkRefreshToken: %v", err)
	}
	if !strings.Contains(out.String(), "Refresh token is valid.") || !strings.Contains(out.String(), "Access token expires:") {
		t.Fatalf("output:\n%s", out.String())
	}

	if err := checkRefreshToken(context.Background(), &out, gdrive.Config{}); err == nil {
		t.Fatalf("expected error without refresh token")
	}
}
