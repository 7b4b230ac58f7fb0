// Package noop provides the default always-miss summary cache.
// Every Get misses and every Set is acknowledged and discarded, so the
// orchestrator rebuilds on every call.
package noop

import (
	"context"

	"github.com/custodia-labs/caselens/internal/core/domain"
	"github.com/custodia-labs/caselens/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.SummaryCache = (*Cache)(nil)

// Cache is the always-miss implementation of driven.SummaryCache.
type Cache struct{}

// New creates a new no-op cache.
func New() *Cache {
	return &Cache{}
}

// Get always reports a miss.
func (*Cache) Get(_ context.Context, _, _ string) (*domain.LayeredSummary, error) {
	return nil, domain.ErrNotFound
}

// Set acknowledges the write and discards the snapshot.
func (*Cache) Set(_ context.Context, _, _ string, _ *domain.LayeredSummary) error {
	return nil
}
