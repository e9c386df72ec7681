package client

import (
	"github.com/HassanElshazlyEida/Stunning/internal/adapter/ristretto"
	"github.com/HassanElshazlyEida/Stunning/internal/config"
	"github.com/HassanElshazlyEida/Stunning/internal/resilience"
)

// NewSessionHistory assembles a ready-to-use history manager from
// configuration: a breaker-guarded API client, a ristretto last-known-good
// cache, and a fresh session. The returned func releases the cache.
func NewSessionHistory(cfg *config.Config) (*History, func(), error) {
	c := NewClient(cfg.Client)
	c.SetBreaker(resilience.NewBreaker(cfg.Breaker.MaxFailures, cfg.Breaker.Timeout))

	cache, err := ristretto.New(cfg.Cache.MaxSizeMB << 20)
	if err != nil {
		return nil, nil, err
	}

	h := NewHistory(c, cache, NewSessionContext())
	if cfg.Cache.TTL > 0 {
		h.ttl = cfg.Cache.TTL
	}
	return h, cache.Close, nil
}
