package driven

import (
	"context"

	"github.com/custodia-labs/caselens/internal/core/domain"
)

// SummaryCache stores layered summaries keyed by (caseID, orgID).
//
// Validity is decided by the orchestrator — fingerprint plus sorted
// document-id equality — never by the implementation. Implementations only
// store and retrieve whole snapshots; a snapshot is always fully assembled
// before Set is called, so a reader can never observe partial state.
type SummaryCache interface {
	// Get retrieves the cached summary for a case.
	// Returns domain.ErrNotFound when no entry exists.
	Get(ctx context.Context, caseID, orgID string) (*domain.LayeredSummary, error)

	// Set stores the summary for a case, replacing any previous entry.
	// Writes are best-effort from the caller's perspective: the
	// orchestrator logs failures and still returns the fresh snapshot.
	Set(ctx context.Context, caseID, orgID string, summary *domain.LayeredSummary) error
}
