package domain

import "time"

// SummaryVersion is the schema version stamped on every layered summary.
const SummaryVersion = 1

// TimelineEntry is one dated highlight within a domain summary.
type TimelineEntry struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

// DomainSummary is the evidentiary summary for one domain. A summary exists
// only for domains with at least one assigned document — a domain with zero
// documents is never emitted.
type DomainSummary struct {
	// Domain identifies which category this summary covers.
	Domain Domain `json:"domain"`

	// SourceDocIDs is the de-duplicated set of contributing document ids.
	SourceDocIDs []string `json:"sourceDocIds"`

	// RelevanceScore is an integer ordering aid. It carries no
	// probabilistic meaning and is never displayed as a confidence.
	RelevanceScore int `json:"relevanceScore"`

	// KeyFacts holds up to 8 de-duplicated short sentences.
	KeyFacts []string `json:"keyFacts"`

	// TimelineHighlights holds up to 8 chronologically sorted entries.
	TimelineHighlights []TimelineEntry `json:"timelineHighlights"`

	// Contradictions holds up to 5 contradiction/uncertainty flags.
	Contradictions []string `json:"contradictionsOrUncertainties"`

	// MissingEvidence holds up to 8 items from the canonical
	// missing-evidence list mapped to this domain.
	MissingEvidence []MissingEvidenceItem `json:"missingEvidence"`

	// HelpsHurts holds up to 4 framing sentences.
	HelpsHurts []string `json:"helpsHurts"`
}

// SupervisorAddendum is the oversight block attached to every role lens.
type SupervisorAddendum struct {
	// TopRisks holds up to 5 de-duplicated risk strings.
	TopRisks []string `json:"topRisks"`

	// UpcomingDeadlines holds up to 5 "label: date" strings for dates
	// flagged urgent or falling within the next 14 days.
	UpcomingDeadlines []string `json:"upcomingDeadlines"`

	// SpendGuardrails carries the fixed spend-policy sentences.
	SpendGuardrails []string `json:"spendGuardrails"`

	// EscalationTriggers holds up to 3 escalation instructions derived
	// from the highest-severity missing evidence.
	EscalationTriggers []string `json:"escalationTriggers"`
}

// RoleLens is one role's prioritised view over the domain summaries. It is
// derived from classifier output only — building a lens never touches raw
// documents.
type RoleLens struct {
	// Role identifies the viewpoint.
	Role Role `json:"role"`

	// TopDomains holds up to 3 domains, relevance-descending, filtered to
	// the role's preference list.
	TopDomains []Domain `json:"topDomains"`

	// WhatMattersMost holds the headline strings: up to 3 in large-bundle
	// mode, otherwise up to 2.
	WhatMattersMost []string `json:"whatMattersMost"`

	// PrimaryRisk is the single most pressing risk sentence.
	PrimaryRisk string `json:"primaryRisk"`

	// RecommendedNextMove is the single suggested next action.
	RecommendedNextMove string `json:"recommendedNextMove"`

	// Supervisor is the oversight addendum.
	Supervisor SupervisorAddendum `json:"supervisorAddendum"`
}

// SummarySource records what the summary was computed from. The cache layer
// compares these fields to decide whether a stored snapshot is still valid.
type SummarySource struct {
	// DocumentIDs is the lexicographically sorted id set.
	DocumentIDs []string `json:"documentIds"`

	// TotalPages is the bundle page count at build time.
	TotalPages int `json:"totalPages"`

	// LatestAnalysisVersion is the collaborator analysis version, if any.
	LatestAnalysisVersion string `json:"latestAnalysisVersion,omitempty"`

	// KeyFactsHash is the content fingerprint over the build inputs.
	// It is a cache-invalidation key, not a security boundary.
	KeyFactsHash string `json:"keyFactsHash"`
}

// LayeredSummary is the immutable aggregate: one classification pass fanned
// out into six role lenses. It is fully assembled in memory before any cache
// write is attempted, so partial snapshots cannot be observed.
type LayeredSummary struct {
	Version      int          `json:"version"`
	ComputedAt   time.Time    `json:"computedAt"`
	PracticeArea PracticeArea `json:"practiceArea"`

	Source SummarySource `json:"source"`

	// IsLargeBundleMode affects only how many headline facts are
	// surfaced, never which documents are classified or how.
	IsLargeBundleMode bool `json:"isLargeBundleMode"`

	// DomainSummaries in fixed domain order; only populated domains.
	DomainSummaries []DomainSummary `json:"domainSummaries"`

	// RoleLenses holds exactly one lens per role.
	RoleLenses map[Role]RoleLens `json:"roleLenses"`
}
