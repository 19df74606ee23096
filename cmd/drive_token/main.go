// Command drive_token mints the Google Drive refresh token used by the upload
// relay, or checks that the configured one still works.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"

	"github.com/yungbote/portfolio-backend/internal/platform/envutil"
	"github.com/yungbote/portfolio-backend/internal/platform/gdrive"
)

func main() {
	check := flag.Bool("check", false, "verify GOOGLE_REFRESH_TOKEN instead of minting a new one")
	flag.Parse()

	_ = godotenv.Load()
	cfg := gdrive.Config{
		ClientID:     envutil.String("GOOGLE_CLIENT_ID", ""),
		ClientSecret: envutil.String("GOOGLE_CLIENT_SECRET", ""),
		RedirectURL:  envutil.String("GOOGLE_REDIRECT_URI", ""),
		RefreshToken: envutil.String("GOOGLE_REFRESH_TOKEN", ""),
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		fmt.Fprintln(os.Stderr, "GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var err error
	if *check {
		err = checkRefreshToken(ctx, os.Stdout, cfg)
	} else {
		err = mintRefreshToken(ctx, os.Stdin, os.Stdout, cfg)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func mintRefreshToken(ctx context.Context, in io.Reader, out io.Writer, cfg gdrive.Config) error {
	oc := gdrive.OAuthConfig(cfg)
	url := oc.AuthCodeURL("state", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Fprintln(out, "Visit this URL and authorize the app:")
	fmt.Fprintln(out, url)
	fmt.Fprint(out, "Enter the authorization code: ")

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("read code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("no authorization code entered")
	}
	tok, err := oc.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange code: %w", err)
	}
	if tok.RefreshToken == "" {
		return fmt.Errorf("no refresh token returned; revoke the app's access and retry")
	}
	fmt.Fprintln(out, "Refresh Token:", tok.RefreshToken)
	fmt.Fprintln(out, "Store it as GOOGLE_REFRESH_TOKEN.")
	return nil
}

func checkRefreshToken(ctx context.Context, out io.Writer, cfg gdrive.Config) error {
	if cfg.RefreshToken == "" {
		return fmt.Errorf("no refresh token found; run without -check to mint one")
	}
	ts := gdrive.OAuthConfig(cfg).TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	tok, err := ts.Token()
	if err != nil {
		return fmt.Errorf("refresh token is invalid or expired: %w", err)
	}
	fmt.Fprintln(out, "Refresh token is valid.")
	if !tok.Expiry.IsZero() {
		fmt.Fprintln(out, "Access token expires:", tok.Expiry.UTC().Format(time.RFC3339))
	}
	return nil
}
