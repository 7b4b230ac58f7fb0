// Package memory provides an in-process summary cache scoped to an explicit
// instance. It is never a process-wide singleton: each test or caller
// constructs its own isolated cache.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/caselens/internal/core/domain"
	"github.com/custodia-labs/caselens/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.SummaryCache = (*Cache)(nil)

// Cache is an in-memory implementation of driven.SummaryCache.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*domain.LayeredSummary
}

type cacheKey struct {
	caseID string
	orgID  string
}

// New creates a new in-memory summary cache.
func New() *Cache {
	return &Cache{
		entries: make(map[cacheKey]*domain.LayeredSummary),
	}
}

// Get retrieves the cached summary for a case.
func (c *Cache) Get(_ context.Context, caseID, orgID string) (*domain.LayeredSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	summary, ok := c.entries[cacheKey{caseID, orgID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return summary, nil
}

// Set stores the summary for a case. Snapshots are immutable once built, so
// the pointer is stored as-is; concurrent writers race last-write-wins on
// complete snapshots.
func (c *Cache) Set(_ context.Context, caseID, orgID string, summary *domain.LayeredSummary) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey{caseID, orgID}] = summary
	return nil
}

// Len returns the number of cached entries. Used by tests.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
