package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/caselens/internal/core/domain"
)

// stubCache is a hand-rolled driven.SummaryCache for orchestrator tests.
type stubCache struct {
	stored *domain.LayeredSummary
	getErr error
	setErr error

	getCalls int
	setCalls int
}

func (s *stubCache) Get(_ context.Context, _, _ string) (*domain.LayeredSummary, error) {
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.stored == nil {
		return nil, domain.ErrNotFound
	}
	return s.stored, nil
}

func (s *stubCache) Set(_ context.Context, _, _ string, summary *domain.LayeredSummary) error {
	s.setCalls++
	if s.setErr != nil {
		return s.setErr
	}
	s.stored = summary
	return nil
}

// countingService wraps a SummaryService whose pipeline stages count their
// invocations.
func countingService(cache *stubCache) (*SummaryService, *int, *int) {
	classifyCalls := new(int)
	lensCalls := new(int)

	var svc *SummaryService
	if cache != nil {
		svc = NewSummaryService(cache)
	} else {
		svc = NewSummaryService(nil)
	}
	svc.now = func() time.Time {
		return time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	}
	svc.classify = func(in ClassifierInput) []domain.DomainSummary {
		*classifyCalls++
		return BuildDomainSummaries(in)
	}
	svc.buildLenses = func(
		summaries []domain.DomainSummary, lc LensContext,
	) map[domain.Role]domain.RoleLens {
		*lensCalls++
		return BuildRoleLenses(summaries, lc)
	}
	return svc, classifyCalls, lensCalls
}

func testBundle() domain.CaseBundle {
	return domain.CaseBundle{
		CaseID:       "case-1",
		OrgID:        "org-1",
		PracticeArea: domain.PracticePersonalInjury,
		Documents: []domain.CaseDocument{
			{
				ID:   "doc-b",
				Name: "Discharge summary",
				Extracted: domain.ExtractedContent{
					Summary: "Patient attended A&E with a fractured wrist.",
				},
			},
			{
				ID:   "doc-a",
				Name: "Supermarket CCTV",
				Extracted: domain.ExtractedContent{
					Summary: "Footage from the store entrance.",
				},
			},
		},
		KeyDates:              []domain.KeyDate{{Label: "Limitation expiry", Date: "2026-03-01"}},
		Risks:                 []string{"Limitation is approaching."},
		TotalPages:            120,
		LatestAnalysisVersion: "v3",
	}
}

func TestBuild_ClassifiesOnceAndAssembles(t *testing.T) {
	svc, classifyCalls, lensCalls := countingService(nil)

	summary, err := svc.Build(testBundle())

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 1, *classifyCalls)
	assert.Equal(t, 1, *lensCalls)

	assert.Equal(t, domain.SummaryVersion, summary.Version)
	assert.Equal(t, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC), summary.ComputedAt)
	assert.Equal(t, domain.PracticePersonalInjury, summary.PracticeArea)
	assert.False(t, summary.IsLargeBundleMode)
	assert.Len(t, summary.RoleLenses, len(domain.AllRoles))

	// Source document ids are sorted, independent of bundle order.
	assert.Equal(t, []string{"doc-a", "doc-b"}, summary.Source.DocumentIDs)
	assert.Equal(t, 120, summary.Source.TotalPages)
	assert.Equal(t, "v3", summary.Source.LatestAnalysisVersion)
	assert.Len(t, summary.Source.KeyFactsHash, 16)
}

func TestLargeBundleModeBoundary(t *testing.T) {
	svc, _, _ := countingService(nil)

	bundle := testBundle()
	bundle.TotalPages = largeBundlePageThreshold
	summary, err := svc.Build(bundle)
	require.NoError(t, err)
	assert.False(t, summary.IsLargeBundleMode)

	bundle.TotalPages = largeBundlePageThreshold + 1
	summary, err = svc.Build(bundle)
	require.NoError(t, err)
	assert.True(t, summary.IsLargeBundleMode)
}

func TestGetOrBuild_CacheHitSkipsRebuild(t *testing.T) {
	cache := &stubCache{}
	svc, classifyCalls, _ := countingService(cache)
	ctx := context.Background()

	first, err := svc.GetOrBuild(ctx, testBundle())
	require.NoError(t, err)
	assert.Equal(t, 1, *classifyCalls)
	assert.Equal(t, 1, cache.setCalls)

	second, err := svc.GetOrBuild(ctx, testBundle())
	require.NoError(t, err)
	assert.Equal(t, 1, *classifyCalls, "cache hit must not re-classify")
	assert.Same(t, first, second)
}

func TestGetOrBuild_RebuildsWhenDocumentsChange(t *testing.T) {
	cache := &stubCache{}
	svc, classifyCalls, _ := countingService(cache)
	ctx := context.Background()

	_, err := svc.GetOrBuild(ctx, testBundle())
	require.NoError(t, err)

	changed := testBundle()
	changed.Documents = append(changed.Documents, domain.CaseDocument{
		ID:   "doc-c",
		Name: "Consultant report",
		Extracted: domain.ExtractedContent{
			Summary: "Medico-legal opinion on causation.",
		},
	})

	fresh, err := svc.GetOrBuild(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, 2, *classifyCalls)
	assert.Equal(t, []string{"doc-a", "doc-b", "doc-c"}, fresh.Source.DocumentIDs)
}

func TestGetOrBuild_RebuildsWhenPagesChange(t *testing.T) {
	cache := &stubCache{}
	svc, classifyCalls, _ := countingService(cache)
	ctx := context.Background()

	_, err := svc.GetOrBuild(ctx, testBundle())
	require.NoError(t, err)

	changed := testBundle()
	changed.TotalPages = 121

	_, err = svc.GetOrBuild(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, 2, *classifyCalls)
}

func TestGetOrBuild_DocumentOrderDoesNotInvalidate(t *testing.T) {
	cache := &stubCache{}
	svc, classifyCalls, _ := countingService(cache)
	ctx := context.Background()

	_, err := svc.GetOrBuild(ctx, testBundle())
	require.NoError(t, err)

	reordered := testBundle()
	reordered.Documents[0], reordered.Documents[1] =
		reordered.Documents[1], reordered.Documents[0]

	_, err = svc.GetOrBuild(ctx, reordered)
	require.NoError(t, err)
	assert.Equal(t, 1, *classifyCalls,
		"same membership in a different order must stay a cache hit")
}

func TestGetOrBuild_CacheReadFailureFallsBackToBuild(t *testing.T) {
	cache := &stubCache{getErr: errors.New("database locked")}
	svc, classifyCalls, _ := countingService(cache)

	summary, err := svc.GetOrBuild(context.Background(), testBundle())

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 1, *classifyCalls)
}

func TestGetOrBuild_CacheWriteFailureIsNotSurfaced(t *testing.T) {
	cache := &stubCache{setErr: errors.New("disk full")}
	svc, _, _ := countingService(cache)

	summary, err := svc.GetOrBuild(context.Background(), testBundle())

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 1, cache.setCalls)
}

func TestGetOrBuild_NilCacheBuildsEveryTime(t *testing.T) {
	svc, classifyCalls, _ := countingService(nil)
	ctx := context.Background()

	_, err := svc.GetOrBuild(ctx, testBundle())
	require.NoError(t, err)
	_, err = svc.GetOrBuild(ctx, testBundle())
	require.NoError(t, err)

	assert.Equal(t, 2, *classifyCalls)
}

func TestContentFingerprint(t *testing.T) {
	base := testBundle()
	fp1, ids1 := contentFingerprint(base)
	fp2, _ := contentFingerprint(base)

	assert.Equal(t, fp1, fp2)
	assert.Equal(t, []string{"doc-a", "doc-b"}, ids1)

	reordered := testBundle()
	reordered.Documents[0], reordered.Documents[1] =
		reordered.Documents[1], reordered.Documents[0]
	fp3, _ := contentFingerprint(reordered)
	assert.Equal(t, fp1, fp3, "doc order must not change the fingerprint")

	risked := testBundle()
	risked.Risks = append(risked.Risks, "New surveillance risk.")
	fp4, _ := contentFingerprint(risked)
	assert.NotEqual(t, fp1, fp4)

	versioned := testBundle()
	versioned.LatestAnalysisVersion = "v4"
	fp5, _ := contentFingerprint(versioned)
	assert.NotEqual(t, fp1, fp5)
}

func TestSnapshotValid(t *testing.T) {
	cached := &domain.LayeredSummary{
		Source: domain.SummarySource{
			DocumentIDs:  []string{"doc-a", "doc-b"},
			KeyFactsHash: "abc",
		},
	}

	assert.True(t, snapshotValid(cached, "abc", []string{"doc-a", "doc-b"}))
	assert.False(t, snapshotValid(cached, "def", []string{"doc-a", "doc-b"}))
	assert.False(t, snapshotValid(cached, "abc", []string{"doc-a"}))
	assert.False(t, snapshotValid(cached, "abc", []string{"doc-a", "doc-c"}))
	assert.False(t, snapshotValid(nil, "abc", nil))
}
