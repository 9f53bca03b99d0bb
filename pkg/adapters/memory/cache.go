package memory

import (
	"context"
	"sync"

	"github.com/aretw0/spark/pkg/domain"
)

// Cache implements ports.StylesheetCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{data: make(map[string]string)}
}

// Get returns the cached stylesheet or domain.ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	css, ok := c.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return css, nil
}

// Set stores css under key.
func (c *Cache) Set(ctx context.Context, key string, css string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = css
	return nil
}

// Delete removes key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}
