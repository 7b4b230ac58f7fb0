package driving

import (
	"context"

	"github.com/custodia-labs/caselens/internal/core/domain"
)

// SummaryService builds layered case summaries.
type SummaryService interface {
	// Build runs the full pipeline — classification once, then six role
	// lenses — and returns a fresh immutable snapshot. No cache involved.
	Build(bundle domain.CaseBundle) (*domain.LayeredSummary, error)

	// GetOrBuild returns a cached snapshot when the content fingerprint
	// and document-id set still match, otherwise builds fresh and
	// attempts a best-effort cache write.
	GetOrBuild(ctx context.Context, bundle domain.CaseBundle) (*domain.LayeredSummary, error)
}
