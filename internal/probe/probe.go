// Package probe answers one question about a URL: does it look reachable
// right now. Results are advisory; node resources come from untrusted
// generated text and dead links are expected.
package probe

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Prober performs HEAD reachability checks with a short timeout, optionally
// backed by a persistent result cache.
type Prober struct {
	client *http.Client
	cache  *Cache // nil disables caching
	ttl    time.Duration
	logger *zap.Logger
}

// New builds a prober. cache may be nil; a nil logger disables logging.
func New(timeout time.Duration, cache *Cache, ttl time.Duration, logger *zap.Logger) *Prober {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prober{
		// The default client follows redirects, which is what we want:
		// a URL that redirects to a live page is reachable.
		client: &http.Client{Timeout: timeout},
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Check reports whether url answers a HEAD request with a non-error status.
// Any transport failure, timeout, or status >= 400 counts as unreachable.
func (p *Prober) Check(ctx context.Context, url string) bool {
	if p.cache != nil {
		if reachable, ok, err := p.cache.Get(url, p.ttl); err == nil && ok {
			return reachable
		} else if err != nil {
			p.logger.Warn("probe cache read failed", zap.String("url", url), zap.Error(err))
		}
	}

	reachable := p.head(ctx, url)

	if p.cache != nil {
		if err := p.cache.Put(url, reachable); err != nil {
			p.logger.Warn("probe cache write failed", zap.String("url", url), zap.Error(err))
		}
	}
	return reachable
}

func (p *Prober) head(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < 400
}
