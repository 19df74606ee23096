package ctxutil

import "context"

type authDataKey struct{}

// AuthData is what the bearer gate learned about the caller.
type AuthData struct {
	Email string
}

func WithAuthData(ctx context.Context, ad *AuthData) context.Context {
	return context.WithValue(ctx, authDataKey{}, ad)
}

func GetAuthData(ctx context.Context) *AuthData {
	if ad, ok := ctx.Value(authDataKey{}).(*AuthData); ok {
		return ad
	}
	return nil
}
