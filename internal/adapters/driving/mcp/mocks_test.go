package mcp

import (
	"context"

	"github.com/custodia-labs/caselens/internal/core/domain"
)

// mockSummaryService is a mock implementation of driving.SummaryService.
type mockSummaryService struct {
	summary *domain.LayeredSummary
	err     error

	buildCalls      int
	getOrBuildCalls int
	lastBundle      domain.CaseBundle
}

func (m *mockSummaryService) Build(bundle domain.CaseBundle) (*domain.LayeredSummary, error) {
	m.buildCalls++
	m.lastBundle = bundle
	return m.summary, m.err
}

func (m *mockSummaryService) GetOrBuild(
	_ context.Context, bundle domain.CaseBundle,
) (*domain.LayeredSummary, error) {
	m.getOrBuildCalls++
	m.lastBundle = bundle
	return m.summary, m.err
}
