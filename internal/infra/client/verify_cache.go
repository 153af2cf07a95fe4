package client

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/pkg/clock"

	"github.com/jellydator/ttlcache/v3"
)

// verifyCacheCapacity bounds memory; the least recently used subject goes
// first once it is reached.
const verifyCacheCapacity = 4096

type cacheEntry struct {
	subject   auth.Subject
	expiresAt time.Time
}

// verifyCache maps sha256(token) to a verified subject. Entries never
// outlive the token itself and only successful verifications are stored.
// Expiry is checked against the injected clock; ttlcache evicts on its own
// schedule and enforces the capacity.
type verifyCache struct {
	ttl   time.Duration
	clk   clock.Clock
	items *ttlcache.Cache[string, cacheEntry]
}

func newVerifyCache(ttl time.Duration, clk clock.Clock) *verifyCache {
	return &verifyCache{
		ttl: ttl,
		clk: clk,
		items: ttlcache.New(
			ttlcache.WithTTL[string, cacheEntry](ttl),
			ttlcache.WithCapacity[string, cacheEntry](verifyCacheCapacity),
			ttlcache.WithDisableTouchOnHit[string, cacheEntry](),
		),
	}
}

func (c *verifyCache) enabled() bool {
	return c.ttl > 0
}

func (c *verifyCache) get(token string) (*auth.Subject, bool) {
	if !c.enabled() {
		return nil, false
	}
	key := cacheKey(token)

	item := c.items.Get(key)
	if item == nil {
		return nil, false
	}
	entry := item.Value()
	if !c.clk.Now().Before(entry.expiresAt) {
		c.items.Delete(key)
		return nil, false
	}
	subject := entry.subject
	return &subject, true
}

func (c *verifyCache) put(token string, subject *auth.Subject) {
	if !c.enabled() {
		return
	}
	now := c.clk.Now()
	expiresAt := now.Add(c.ttl)
	if !subject.ExpiresAt.IsZero() && subject.ExpiresAt.Before(expiresAt) {
		expiresAt = subject.ExpiresAt
	}
	if !now.Before(expiresAt) {
		return
	}

	c.items.Set(cacheKey(token), cacheEntry{subject: *subject, expiresAt: expiresAt}, expiresAt.Sub(now))
}

func (c *verifyCache) len() int {
	return c.items.Len()
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
