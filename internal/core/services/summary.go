package services

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/custodia-labs/caselens/internal/core/domain"
	"github.com/custodia-labs/caselens/internal/core/ports/driven"
	"github.com/custodia-labs/caselens/internal/core/ports/driving"
	"github.com/custodia-labs/caselens/internal/logger"
	"github.com/custodia-labs/caselens/internal/textkit"
)

// Ensure SummaryService implements the interface.
var _ driving.SummaryService = (*SummaryService)(nil)

// largeBundlePageThreshold is the page count above which large-bundle mode
// switches on. 300 pages is not large; 301 is.
const largeBundlePageThreshold = 300

// SummaryService orchestrates the summary pipeline: fingerprint, one
// classification pass, one lens-building pass, snapshot assembly, and the
// cache fast path.
type SummaryService struct {
	cache driven.SummaryCache
	now   func() time.Time

	// Pipeline stages, swappable in tests to count invocations.
	classify    func(ClassifierInput) []domain.DomainSummary
	buildLenses func([]domain.DomainSummary, LensContext) map[domain.Role]domain.RoleLens
}

// NewSummaryService creates a summary service. The cache may be nil, in
// which case every GetOrBuild call builds fresh.
func NewSummaryService(cache driven.SummaryCache) *SummaryService {
	return &SummaryService{
		cache:       cache,
		now:         time.Now,
		classify:    BuildDomainSummaries,
		buildLenses: BuildRoleLenses,
	}
}

// Build runs the pure pipeline with no cache involvement. Classification
// runs exactly once; the six lenses are derived from its output.
func (s *SummaryService) Build(bundle domain.CaseBundle) (*domain.LayeredSummary, error) {
	fingerprint, sortedIDs := contentFingerprint(bundle)
	return s.assemble(bundle, fingerprint, sortedIDs), nil
}

// GetOrBuild returns the cached snapshot when both its fingerprint and its
// sorted document-id set match the freshly computed values, otherwise builds
// fresh and attempts a best-effort cache write. Cache failures are logged
// and never surfaced to the caller.
func (s *SummaryService) GetOrBuild(
	ctx context.Context, bundle domain.CaseBundle,
) (*domain.LayeredSummary, error) {
	fingerprint, sortedIDs := contentFingerprint(bundle)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, bundle.CaseID, bundle.OrgID)
		switch {
		case err == nil && snapshotValid(cached, fingerprint, sortedIDs):
			logger.Debug("Summary cache hit: case=%s org=%s fingerprint=%s",
				bundle.CaseID, bundle.OrgID, fingerprint)
			return cached, nil

		case err != nil && !errors.Is(err, domain.ErrNotFound):
			logger.Warn("Summary cache read failed, rebuilding: %v", err)
		}
	}

	fresh := s.assemble(bundle, fingerprint, sortedIDs)

	if s.cache != nil {
		if err := s.cache.Set(ctx, bundle.CaseID, bundle.OrgID, fresh); err != nil {
			logger.Warn("Summary cache write failed: %v", err)
		}
	}

	return fresh, nil
}

// assemble runs classification once, fans out into the role lenses, and
// builds the immutable snapshot. Inputs are never mutated.
func (s *SummaryService) assemble(
	bundle domain.CaseBundle, fingerprint string, sortedIDs []string,
) *domain.LayeredSummary {
	computedAt := s.now().UTC()
	largeBundle := bundle.TotalPages > largeBundlePageThreshold

	summaries := s.classify(ClassifierInput{
		Documents:       bundle.Documents,
		PracticeArea:    bundle.PracticeArea,
		KeyDates:        bundle.KeyDates,
		MissingEvidence: bundle.MissingEvidence,
	})

	lenses := s.buildLenses(summaries, LensContext{
		PracticeArea:      bundle.PracticeArea,
		IsLargeBundleMode: largeBundle,
		KeyDates:          bundle.KeyDates,
		TopRisks:          bundle.Risks,
		Now:               computedAt,
	})

	return &domain.LayeredSummary{
		Version:      domain.SummaryVersion,
		ComputedAt:   computedAt,
		PracticeArea: bundle.PracticeArea,
		Source: domain.SummarySource{
			DocumentIDs:           sortedIDs,
			TotalPages:            bundle.TotalPages,
			LatestAnalysisVersion: bundle.LatestAnalysisVersion,
			KeyFactsHash:          fingerprint,
		},
		IsLargeBundleMode: largeBundle,
		DomainSummaries:   summaries,
		RoleLenses:        lenses,
	}
}

// contentFingerprint hashes the request fields that determine whether a
// previously computed summary is still valid. Document ids are sorted first,
// making the fingerprint order-independent with respect to membership; key
// dates and risks stay order-sensitive.
func contentFingerprint(bundle domain.CaseBundle) (string, []string) {
	ids := make([]string, 0, len(bundle.Documents))
	for _, doc := range bundle.Documents {
		if doc.ID != "" {
			ids = append(ids, doc.ID)
		}
	}
	sort.Strings(ids)

	parts := make([]string, 0, len(ids)+len(bundle.KeyDates)+len(bundle.Risks)+2)
	parts = append(parts, ids...)
	parts = append(parts, strconv.Itoa(bundle.TotalPages))
	parts = append(parts, bundle.LatestAnalysisVersion)
	for _, kd := range bundle.KeyDates {
		parts = append(parts, kd.Label+"\t"+kd.Date)
	}
	parts = append(parts, bundle.Risks...)

	return textkit.Fingerprint(parts), ids
}

// snapshotValid reports whether a cached snapshot still matches the freshly
// computed fingerprint and sorted document-id set. Validity lives here, in
// the orchestrator, never in a cache implementation.
func snapshotValid(
	cached *domain.LayeredSummary, fingerprint string, sortedIDs []string,
) bool {
	if cached == nil {
		return false
	}
	if cached.Source.KeyFactsHash != fingerprint {
		return false
	}
	if len(cached.Source.DocumentIDs) != len(sortedIDs) {
		return false
	}
	for i, id := range sortedIDs {
		if cached.Source.DocumentIDs[i] != id {
			return false
		}
	}
	return true
}
