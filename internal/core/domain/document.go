package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// CaseDocument is the read-only boundary DTO for one extracted case
// document. It is owned by an external collaborator (ingestion/extraction);
// every field except ID is optional and may be zero. Nothing in this module
// ever writes to a document.
type CaseDocument struct {
	// ID is the unique identifier for the document.
	ID string `json:"id"`

	// Name is the human-readable document name, e.g. a filename.
	Name string `json:"name,omitempty"`

	// Type is the collaborator-assigned document type label.
	Type string `json:"type,omitempty"`

	// Extracted is the opaque extracted-content blob. Only the summary
	// text and structured events are consumed here.
	Extracted ExtractedContent `json:"extracted,omitempty"`

	// CreatedAt is when the document entered the bundle, if known.
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// ExtractedContent carries the parts of a document's extraction output that
// classification consumes. Malformed or missing fields degrade to "no
// contribution" — they never fail a build.
type ExtractedContent struct {
	// Summary is the extracted summary text, if any.
	Summary string `json:"summary,omitempty"`

	// Events are structured {label, date} pairs found in the document.
	Events []DocumentEvent `json:"events,omitempty"`
}

// DocumentEvent is a dated event extracted from a document.
type DocumentEvent struct {
	// Label describes the event.
	Label string `json:"label"`

	// Date is the event date as an ISO-8601 string.
	Date string `json:"date"`
}

// UnmarshalJSON accepts both "date" and "event_date" as the date key.
// Upstream extractors have emitted both shapes.
func (e *DocumentEvent) UnmarshalJSON(data []byte) error {
	var raw struct {
		Label     string `json:"label"`
		Date      string `json:"date"`
		EventDate string `json:"event_date"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Label = raw.Label
	e.Date = raw.Date
	if e.Date == "" {
		e.Date = raw.EventDate
	}
	return nil
}

// KeyDate is an externally supplied case-level date.
type KeyDate struct {
	// Label describes the date, e.g. "limitation expiry".
	Label string `json:"label"`

	// Date is the ISO-8601 date string.
	Date string `json:"date"`

	// IsPast marks dates already passed.
	IsPast bool `json:"isPast,omitempty"`

	// IsUrgent marks dates flagged urgent by the collaborator.
	IsUrgent bool `json:"isUrgent,omitempty"`
}

// Severity grades a missing-evidence item. Parsed case-insensitively at the
// boundary; unknown values degrade to SeverityUnknown.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"

	// SeverityUnknown is the degraded value for unrecognised input.
	SeverityUnknown Severity = ""
)

// ParseSeverity normalises a free-text priority into a Severity.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return SeverityCritical
	case "high":
		return SeverityHigh
	case "medium":
		return SeverityMedium
	case "low":
		return SeverityLow
	}
	return SeverityUnknown
}

// MissingEvidenceItem is an externally supplied record describing an
// evidentiary gap on the case.
type MissingEvidenceItem struct {
	// Area is the free-text category the gap concerns, if provided.
	Area string `json:"area,omitempty"`

	// Label names the missing evidence.
	Label string `json:"label"`

	// Priority is the collaborator-assigned severity.
	Priority Severity `json:"priority,omitempty"`

	// Notes carries any free-text follow-up detail.
	Notes string `json:"notes,omitempty"`
}

// UnmarshalJSON parses the priority case-insensitively.
func (m *MissingEvidenceItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Area     string `json:"area"`
		Label    string `json:"label"`
		Priority string `json:"priority"`
		Notes    string `json:"notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.Area = raw.Area
	m.Label = raw.Label
	m.Priority = ParseSeverity(raw.Priority)
	m.Notes = raw.Notes
	return nil
}

// PracticeArea is the external practice-area scalar. The framing tables fall
// back to neutral sentences for areas they do not cover.
type PracticeArea string

const (
	PracticePersonalInjury     PracticeArea = "personal_injury"
	PracticeClinicalNegligence PracticeArea = "clinical_negligence"
	PracticeCriminalDefence    PracticeArea = "criminal_defence"
	PracticeHousing            PracticeArea = "housing"
)

// CaseBundle aggregates every input the summary build consumes. The case and
// org ids are opaque here — they exist only to key the cache.
type CaseBundle struct {
	CaseID       string       `json:"caseId"`
	OrgID        string       `json:"orgId"`
	PracticeArea PracticeArea `json:"practiceArea"`

	// Documents in caller-supplied order. Order matters: key facts are
	// extracted in this order.
	Documents []CaseDocument `json:"documents"`

	// KeyDates in caller-supplied order.
	KeyDates []KeyDate `json:"keyDates,omitempty"`

	// Risks are top-level risk strings in caller-supplied order.
	Risks []string `json:"risks,omitempty"`

	// MissingEvidence is the canonical missing-evidence list.
	MissingEvidence []MissingEvidenceItem `json:"missingEvidence,omitempty"`

	// TotalPages is the bundle page count, defaulting to 0.
	TotalPages int `json:"totalPages,omitempty"`

	// LatestAnalysisVersion is the collaborator's analysis version, if any.
	LatestAnalysisVersion string `json:"latestAnalysisVersion,omitempty"`
}
