package persistence

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// maxConnectWait bounds startup retries against a dependency
var maxConnectWait = 30 * time.Second

// retry runs op with exponential backoff until it succeeds, ctx ends or
// maxConnectWait elapses
func retry(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = maxConnectWait
	return backoff.Retry(op, backoff.WithContext(b, ctx))
}
