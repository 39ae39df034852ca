package watcher

import (
	"context"
	"crypto/sha1"
	"fmt"
	"time"

	"sjsage522/salewatcher/helpers"
	"sjsage522/salewatcher/logger"
	"sjsage522/salewatcher/services/cache"
)

// Fetcher retrieves decoded page text. Bodies are kept in a short-TTL
// cache so the classification and image steps share one request per URL
// within a pass; a brand whose image_page equals its url costs a single
// request.
type Fetcher struct {
	cacheSvc  cache.CacheService
	userAgent string
	timeout   time.Duration
	cacheTTL  time.Duration
	log       *logger.Logger
}

// NewFetcher creates a fetcher. cacheSvc may be nil to disable caching.
func NewFetcher(cacheSvc cache.CacheService, userAgent string, timeout, cacheTTL time.Duration) *Fetcher {
	return &Fetcher{
		cacheSvc:  cacheSvc,
		userAgent: userAgent,
		timeout:   timeout,
		cacheTTL:  cacheTTL,
		log:       logger.ForFetcher(),
	}
}

// Fetch returns the UTF-8 page body for pageURL, from cache when a
// fresh copy exists.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	key := pageKey(pageURL)

	if f.cacheSvc != nil {
		if body, err := f.cacheSvc.Get(key); err == nil {
			f.log.Debug().Str("url", pageURL).Msg("Page cache hit")
			return string(body), nil
		}
	}

	body, err := helpers.FetchPage(ctx, pageURL, f.userAgent, f.timeout)
	if err != nil {
		return "", err
	}

	if f.cacheSvc != nil {
		if err := f.cacheSvc.Set(key, body, f.cacheTTL); err != nil {
			f.log.Warn().Err(err).Str("url", pageURL).Msg("Failed to cache page")
		}
	}

	return string(body), nil
}

// pageKey hashes the URL into a memcache-safe key.
func pageKey(pageURL string) string {
	return fmt.Sprintf("page:%x", sha1.Sum([]byte(pageURL)))
}
