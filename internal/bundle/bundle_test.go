package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/caselens/internal/core/domain"
)

func TestParse_FullBundle(t *testing.T) {
	data := []byte(`{
		"caseId": "case-1",
		"orgId": "org-1",
		"practiceArea": "personal_injury",
		"documents": [
			{
				"id": "doc-1",
				"name": "Discharge summary",
				"type": "medical_note",
				"extracted": {
					"summary": "Patient attended A&E.",
					"events": [
						{"label": "Admission", "date": "2025-01-02"},
						{"label": "Discharge", "event_date": "2025-01-05"}
					]
				}
			}
		],
		"keyDates": [
			{"label": "Limitation expiry", "date": "2026-03-01", "isUrgent": true}
		],
		"risks": ["Limitation is approaching."],
		"missingEvidence": [
			{"label": "GP records", "priority": "HIGH", "notes": "requested"}
		],
		"totalPages": 250,
		"latestAnalysisVersion": "v3"
	}`)

	b, err := Parse(data)

	require.NoError(t, err)
	assert.Equal(t, "case-1", b.CaseID)
	assert.Equal(t, "org-1", b.OrgID)
	assert.Equal(t, domain.PracticePersonalInjury, b.PracticeArea)
	assert.Equal(t, 250, b.TotalPages)
	assert.Equal(t, "v3", b.LatestAnalysisVersion)

	require.Len(t, b.Documents, 1)
	events := b.Documents[0].Extracted.Events
	require.Len(t, events, 2)
	assert.Equal(t, "2025-01-02", events[0].Date)
	// event_date is accepted as an alternate date key.
	assert.Equal(t, "2025-01-05", events[1].Date)

	require.Len(t, b.MissingEvidence, 1)
	assert.Equal(t, domain.SeverityHigh, b.MissingEvidence[0].Priority)

	require.Len(t, b.KeyDates, 1)
	assert.True(t, b.KeyDates[0].IsUrgent)
}

func TestParse_MinimalBundleGetsGeneratedCaseID(t *testing.T) {
	b, err := Parse([]byte(`{"documents": []}`))

	require.NoError(t, err)
	assert.NotEmpty(t, b.CaseID)
	assert.Empty(t, b.Documents)
}

func TestParse_UnknownSeverityDegrades(t *testing.T) {
	b, err := Parse([]byte(`{
		"caseId": "case-1",
		"missingEvidence": [{"label": "GP records", "priority": "urgent!!"}]
	}`))

	require.NoError(t, err)
	require.Len(t, b.MissingEvidence, 1)
	assert.Equal(t, domain.SeverityUnknown, b.MissingEvidence[0].Priority)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoad_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"caseId": "case-1"}`), 0600))

	b, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "case-1", b.CaseID)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}
