package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/custodia-labs/caselens/internal/core/domain"
	"github.com/custodia-labs/caselens/internal/textkit"
)

// Lens caps.
const (
	maxTopDomains          = 3
	maxHeadlines           = 2
	maxHeadlinesLarge      = 3
	maxSupervisorRisks     = 5
	maxSupervisorDeadlines = 5
	maxEscalationTriggers  = 3
)

// deadlineWindow is how far ahead a key date counts as upcoming.
const deadlineWindow = 14 * 24 * time.Hour

// Fixed fallback sentences.
const (
	fallbackPrimaryRisk = "Insufficient data at this stage to state a primary risk."
	fallbackNextMove    = "Confirm the bundle is complete before advising further."
)

// spendGuardrails are static policy sentences, identical for every case.
var spendGuardrails = []string{
	"Keep disbursements within the agreed stage budget; seek approval before instructing further experts.",
	"Counsel and expert fees above scheme rates require written sign-off.",
}

// rolePreferences fixes each role's domain preference list. The list acts
// as a filter over the relevance-descending ordering: domains absent from a
// role's list never appear in its lens. The table covers every role.
var rolePreferences = map[domain.Role][]domain.Domain{
	domain.RoleParalegal: {
		domain.DomainMedical,
		domain.DomainDisclosure,
		domain.DomainDamages,
		domain.DomainIncident,
		domain.DomainPolice,
	},
	domain.RoleSolicitor: {
		domain.DomainIncident,
		domain.DomainMedical,
		domain.DomainExpert,
		domain.DomainDisclosure,
		domain.DomainDamages,
		domain.DomainPolice,
	},
	domain.RoleSupervisor: {
		domain.DomainDamages,
		domain.DomainDisclosure,
		domain.DomainIncident,
		domain.DomainMedical,
		domain.DomainExpert,
		domain.DomainPolice,
	},
	domain.RoleCounsel: {
		domain.DomainIncident,
		domain.DomainPolice,
		domain.DomainDisclosure,
		domain.DomainExpert,
		domain.DomainMedical,
	},
	domain.RoleCosts: {
		domain.DomainDamages,
		domain.DomainMedical,
		domain.DomainExpert,
	},
	domain.RoleClientCare: {
		domain.DomainMedical,
		domain.DomainDamages,
		domain.DomainIncident,
	},
}

// LensContext is the per-build context handed to the lens builder alongside
// the classifier output. Now is the orchestrator's build timestamp so that
// deadline filtering stays pure and testable.
type LensContext struct {
	PracticeArea      domain.PracticeArea
	IsLargeBundleMode bool
	KeyDates          []domain.KeyDate
	TopRisks          []string
	Now               time.Time
}

// BuildRoleLenses derives one lens per fixed role from the classifier
// output. It performs no document-level work: its only inputs are the domain
// summaries and the context.
func BuildRoleLenses(
	summaries []domain.DomainSummary, lc LensContext,
) map[domain.Role]domain.RoleLens {
	ordered := orderByRelevance(summaries)

	// The addendum is identical for every role; build it once.
	addendum := buildSupervisorAddendum(summaries, lc)

	lenses := make(map[domain.Role]domain.RoleLens, len(domain.AllRoles))
	for _, role := range domain.AllRoles {
		lenses[role] = buildLens(role, ordered, addendum, lc)
	}
	return lenses
}

// orderByRelevance returns the summaries sorted by relevance score
// descending. The sort is stable, so equal scores keep fixed domain order.
func orderByRelevance(summaries []domain.DomainSummary) []domain.DomainSummary {
	ordered := make([]domain.DomainSummary, len(summaries))
	copy(ordered, summaries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].RelevanceScore > ordered[j].RelevanceScore
	})
	return ordered
}

// buildLens assembles a single role's lens from the relevance-ordered
// summaries.
func buildLens(
	role domain.Role, ordered []domain.DomainSummary,
	addendum domain.SupervisorAddendum, lc LensContext,
) domain.RoleLens {
	top := topSummariesFor(role, ordered)

	topDomains := make([]domain.Domain, 0, len(top))
	for _, s := range top {
		topDomains = append(topDomains, s.Domain)
	}

	return domain.RoleLens{
		Role:                role,
		TopDomains:          topDomains,
		WhatMattersMost:     buildHeadlines(top, lc.IsLargeBundleMode),
		PrimaryRisk:         primaryRisk(top, lc.TopRisks),
		RecommendedNextMove: recommendedNextMove(top),
		Supervisor:          addendum,
	}
}

// topSummariesFor filters the relevance-ordered summaries to the role's
// preference list, preserving relevance order, capped at maxTopDomains.
// Preference acts as a filter only; it never reorders survivors.
func topSummariesFor(
	role domain.Role, ordered []domain.DomainSummary,
) []domain.DomainSummary {
	prefs := rolePreferences[role]
	allowed := make(map[domain.Domain]bool, len(prefs))
	for _, d := range prefs {
		allowed[d] = true
	}

	top := make([]domain.DomainSummary, 0, maxTopDomains)
	for _, s := range ordered {
		if !allowed[s.Domain] {
			continue
		}
		top = append(top, s)
		if len(top) == maxTopDomains {
			break
		}
	}
	return top
}

// buildHeadlines produces the what-matters-most strings: per top domain, the
// first key fact, falling back to the first framing sentence, falling back
// to the domain title.
func buildHeadlines(top []domain.DomainSummary, largeBundle bool) []string {
	limit := maxHeadlines
	if largeBundle {
		limit = maxHeadlinesLarge
	}

	headlines := make([]string, 0, limit)
	for _, s := range top {
		var headline string
		switch {
		case len(s.KeyFacts) > 0:
			headline = s.KeyFacts[0]
		case len(s.HelpsHurts) > 0:
			headline = s.HelpsHurts[0]
		default:
			headline = s.Domain.Title()
		}

		headlines = append(headlines, headline)
		if len(headlines) == limit {
			break
		}
	}
	return headlines
}

// primaryRisk picks the first non-empty candidate: a contradiction across
// the top domains, a missing-evidence label, an external risk, then the
// fixed fallback.
func primaryRisk(top []domain.DomainSummary, externalRisks []string) string {
	for _, s := range top {
		if len(s.Contradictions) > 0 {
			return s.Contradictions[0]
		}
	}
	for _, s := range top {
		if len(s.MissingEvidence) > 0 {
			return "Missing evidence: " + s.MissingEvidence[0].Label
		}
	}
	if len(externalRisks) > 0 {
		return externalRisks[0]
	}
	return fallbackPrimaryRisk
}

// recommendedNextMove turns the first missing-evidence item across the top
// domains into an action request, with its notes appended when present.
func recommendedNextMove(top []domain.DomainSummary) string {
	for _, s := range top {
		if len(s.MissingEvidence) == 0 {
			continue
		}
		item := s.MissingEvidence[0]
		if item.Notes != "" {
			return fmt.Sprintf("Obtain %s (%s).", item.Label, item.Notes)
		}
		return fmt.Sprintf("Obtain %s.", item.Label)
	}
	return fallbackNextMove
}

// buildSupervisorAddendum assembles the oversight block from all domains,
// not just a role's top picks.
func buildSupervisorAddendum(
	summaries []domain.DomainSummary, lc LensContext,
) domain.SupervisorAddendum {
	var risks []string
	for i, r := range lc.TopRisks {
		if i == 3 {
			break
		}
		risks = append(risks, r)
	}
	for _, s := range summaries {
		if len(s.Contradictions) > 0 {
			risks = append(risks, s.Contradictions[0])
		}
	}
	risks = textkit.DedupePreserveOrder(risks)
	if len(risks) > maxSupervisorRisks {
		risks = risks[:maxSupervisorRisks]
	}

	return domain.SupervisorAddendum{
		TopRisks:           risks,
		UpcomingDeadlines:  upcomingDeadlines(lc.KeyDates, lc.Now),
		SpendGuardrails:    spendGuardrails,
		EscalationTriggers: escalationTriggers(summaries),
	}
}

// upcomingDeadlines filters the key dates to urgent-flagged entries or
// dates falling within the deadline window, formatted "label: date".
func upcomingDeadlines(keyDates []domain.KeyDate, now time.Time) []string {
	deadlines := make([]string, 0, maxSupervisorDeadlines)
	for _, kd := range keyDates {
		if kd.Label == "" || kd.Date == "" {
			continue
		}
		if !kd.IsUrgent && !withinWindow(kd.Date, now) {
			continue
		}

		deadlines = append(deadlines, kd.Label+": "+kd.Date)
		if len(deadlines) == maxSupervisorDeadlines {
			break
		}
	}
	return deadlines
}

// withinWindow reports whether an ISO date falls between now and the end of
// the deadline window. Unparseable dates contribute nothing.
func withinWindow(date string, now time.Time) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		if d, err = time.Parse(time.RFC3339, date); err != nil {
			return false
		}
	}

	today := now.Truncate(24 * time.Hour)
	return !d.Before(today) && !d.After(today.Add(deadlineWindow))
}

// escalationTriggers collects missing-evidence items at the two highest
// severities across all domains, de-duplicated by label.
func escalationTriggers(summaries []domain.DomainSummary) []string {
	triggers := make([]string, 0, maxEscalationTriggers)
	seen := make(map[string]bool)

	for _, s := range summaries {
		for _, item := range s.MissingEvidence {
			if item.Priority != domain.SeverityCritical &&
				item.Priority != domain.SeverityHigh {

				continue
			}
			key := textkit.Normalize(item.Label)
			if seen[key] {
				continue
			}
			seen[key] = true

			triggers = append(triggers, fmt.Sprintf(
				"Escalate: %s is outstanding at %s priority.",
				item.Label, item.Priority,
			))
			if len(triggers) == maxEscalationTriggers {
				return triggers
			}
		}
	}
	return triggers
}
