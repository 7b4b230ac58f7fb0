package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/caselens/internal/core/domain"
	"github.com/custodia-labs/caselens/internal/core/ports/driving"
)

// mockSummaryService is a mock implementation of driving.SummaryService.
type mockSummaryService struct {
	summary *domain.LayeredSummary
	err     error

	lastBundle domain.CaseBundle
}

func (m *mockSummaryService) Build(bundle domain.CaseBundle) (*domain.LayeredSummary, error) {
	m.lastBundle = bundle
	return m.summary, m.err
}

func (m *mockSummaryService) GetOrBuild(
	_ context.Context, bundle domain.CaseBundle,
) (*domain.LayeredSummary, error) {
	m.lastBundle = bundle
	return m.summary, m.err
}

func testLayeredSummary() *domain.LayeredSummary {
	return &domain.LayeredSummary{
		Version:      domain.SummaryVersion,
		PracticeArea: domain.PracticePersonalInjury,
		Source: domain.SummarySource{
			DocumentIDs:  []string{"doc-1"},
			TotalPages:   120,
			KeyFactsHash: "0011223344556677",
		},
		DomainSummaries: []domain.DomainSummary{
			{
				Domain:         domain.DomainMedical,
				SourceDocIDs:   []string{"doc-1"},
				RelevanceScore: 1,
				KeyFacts:       []string{"Discharge summary notes a fractured wrist."},
			},
		},
		RoleLenses: map[domain.Role]domain.RoleLens{
			domain.RoleSupervisor: {
				Role:        domain.RoleSupervisor,
				TopDomains:  []domain.Domain{domain.DomainMedical},
				PrimaryRisk: "Insufficient data at this stage to state a primary risk.",
			},
		},
	}
}

// setupSummaryService injects a summary service and returns a cleanup.
// Passing nil forces per-backend construction in summaryServiceFor.
func setupSummaryService(mock driving.SummaryService) func() {
	old := summaryService
	summaryService = mock
	return func() { summaryService = old }
}

func writeTestBundle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestSummarizeCmd_Use(t *testing.T) {
	assert.Equal(t, "summarize [bundle.json]", summarizeCmd.Use)
}

func TestSummarizeCmd_HasFlags(t *testing.T) {
	for _, name := range []string{"cache", "json", "role"} {
		assert.NotNil(t, summarizeCmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestSummarizeCmd_RequiresBundleArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"summarize"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSummarizeCmd_RendersSummary(t *testing.T) {
	cleanup := setupSummaryService(&mockSummaryService{summary: testLayeredSummary()})
	defer cleanup()

	path := writeTestBundle(t, `{"caseId": "case-1"}`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"summarize", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Layered Case Summary")
	assert.Contains(t, buf.String(), "Hospital & Medical")
	assert.Contains(t, buf.String(), "Lens: Supervisor")
}

func TestSummarizeCmd_JSONOutput(t *testing.T) {
	cleanup := setupSummaryService(&mockSummaryService{summary: testLayeredSummary()})
	defer cleanup()

	path := writeTestBundle(t, `{"caseId": "case-1"}`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"summarize", "--json", path})
	defer func() {
		rootCmd.SetArgs(nil)
		summarizeJSON = false // Reset flag
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"keyFactsHash": "0011223344556677"`)
	assert.Contains(t, buf.String(), `"roleLenses"`)
}

func TestSummarizeCmd_SingleRole(t *testing.T) {
	cleanup := setupSummaryService(&mockSummaryService{summary: testLayeredSummary()})
	defer cleanup()

	path := writeTestBundle(t, `{"caseId": "case-1"}`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"summarize", "--role", "supervisor", path})
	defer func() {
		rootCmd.SetArgs(nil)
		summarizeRole = "" // Reset flag
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Lens: Supervisor")
	assert.NotContains(t, buf.String(), "Layered Case Summary")
}

func TestSummarizeCmd_UnknownRole(t *testing.T) {
	cleanup := setupSummaryService(&mockSummaryService{summary: testLayeredSummary()})
	defer cleanup()

	path := writeTestBundle(t, `{"caseId": "case-1"}`)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"summarize", "--role", "barrister", path})
	defer func() {
		rootCmd.SetArgs(nil)
		summarizeRole = "" // Reset flag
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestSummarizeCmd_MissingBundleFile(t *testing.T) {
	cleanup := setupSummaryService(&mockSummaryService{summary: testLayeredSummary()})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"summarize", filepath.Join(t.TempDir(), "missing.json")})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestSummaryServiceFor_UnknownBackend(t *testing.T) {
	cleanup := setupSummaryService(nil)
	defer cleanup()

	_, err := summaryServiceFor("redis")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cache backend")
}

func TestSummaryServiceFor_KnownBackends(t *testing.T) {
	cleanup := setupSummaryService(nil)
	defer cleanup()

	for _, backend := range []string{"", cacheBackendNone, cacheBackendMemory} {
		svc, err := summaryServiceFor(backend)
		require.NoError(t, err, "backend %q", backend)
		assert.NotNil(t, svc)
	}
}
