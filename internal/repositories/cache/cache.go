// Package cache provides a small in-process cache used for rendered receipt
// documents, so repeat downloads do not re-generate the PDF.
package cache

import (
	"log"
	"time"

	"github.com/dgraph-io/ristretto"
)

// CacheService wraps ristretto with a fixed default TTL.
type CacheService struct {
	cache      *ristretto.Cache
	defaultTTL time.Duration
}

// NewCacheService builds the receipt cache. Costs are byte counts, so MaxCost
// bounds the total size of cached documents.
func NewCacheService(maxCost int64, defaultTTL time.Duration) *CacheService {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10_000,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
	return &CacheService{cache: c, defaultTTL: defaultTTL}
}

// GetBytes returns a cached document, if present.
func (s *CacheService) GetBytes(key string) ([]byte, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

// SetBytes stores a document under the given key.
func (s *CacheService) SetBytes(key string, value []byte) {
	s.cache.SetWithTTL(key, value, int64(len(value)), s.defaultTTL)
}

// Wait blocks until buffered writes have been applied.
func (s *CacheService) Wait() {
	s.cache.Wait()
}

// Del drops a cached document. Called when a record changes status, since the
// receipt rendering embeds record fields.
func (s *CacheService) Del(key string) {
	s.cache.Del(key)
}

// Close releases the cache's internal goroutines.
func (s *CacheService) Close() {
	s.cache.Close()
}
