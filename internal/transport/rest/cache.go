package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/heartmarshall/wordoftheday-backend/internal/config"
)

// CachePolicy holds the Cache-Control values for successful responses.
type CachePolicy struct {
	Today   string
	Preview string
}

// NewCachePolicy renders the configured lifetimes as Cache-Control values.
func NewCachePolicy(cfg config.CacheConfig) CachePolicy {
	return CachePolicy{
		Today:   sharedCache(cfg.TodaySMaxAge, cfg.TodayStaleWhileRevalidate),
		Preview: sharedCache(cfg.PreviewSMaxAge, cfg.PreviewStaleWhileRevalidate),
	}
}

// sharedCache lets CDNs cache for sMaxAge while browsers always revalidate.
func sharedCache(sMaxAge, swr time.Duration) string {
	return fmt.Sprintf("public, max-age=0, s-maxage=%d, stale-while-revalidate=%d",
		int64(sMaxAge/time.Second), int64(swr/time.Second))
}

func setCache(w http.ResponseWriter, value string) {
	if value != "" {
		w.Header().Set("Cache-Control", value)
	}
}
