package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticBearer(t *testing.T) {
	token, err := StaticBearer("sk-123").Token()
	require.NoError(t, err)
	assert.Equal(t, "sk-123", token.AccessToken)
	assert.Equal(t, "Bearer", token.Type())
}

func TestNewBearerClient(t *testing.T) {
	var header string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
	}))
	defer server.Close()

	client := NewBearerClient(context.Background(), "sk-123", time.Second)
	assert.Equal(t, time.Second, client.Timeout)

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "Bearer sk-123", header)
}
