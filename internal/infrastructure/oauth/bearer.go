package oauth

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// StaticBearer returns a token source for a long-lived API key
func StaticBearer(apiKey string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: apiKey,
		TokenType:   "Bearer",
	})
}

// NewBearerClient returns an HTTP client that sends "Authorization: Bearer
// <apiKey>" on every request
func NewBearerClient(ctx context.Context, apiKey string, timeout time.Duration) *http.Client {
	client := oauth2.NewClient(ctx, StaticBearer(apiKey))
	client.Timeout = timeout
	return client
}
