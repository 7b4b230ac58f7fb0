package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/caselens/internal/core/domain"
)

func TestRenderSummary_IncludesDomainsAndLenses(t *testing.T) {
	summary := testLayeredSummary()
	summary.IsLargeBundleMode = true
	summary.DomainSummaries[0].Contradictions = []string{
		"Only a single document covers this area; coverage is thin.",
	}
	summary.DomainSummaries[0].MissingEvidence = []domain.MissingEvidenceItem{
		{Label: "GP records", Priority: domain.SeverityHigh},
	}

	out := renderSummary(summary)

	assert.Contains(t, out, "Layered Case Summary")
	assert.Contains(t, out, "large bundle mode")
	assert.Contains(t, out, "Hospital & Medical")
	assert.Contains(t, out, "Discharge summary notes a fractured wrist.")
	assert.Contains(t, out, "coverage is thin")
	assert.Contains(t, out, "GP records [high]")
	assert.Contains(t, out, "Lens: Supervisor")
}

func TestRenderRoleLens_SupervisorCarriesAddendum(t *testing.T) {
	lens := domain.RoleLens{
		Role:                domain.RoleSupervisor,
		TopDomains:          []domain.Domain{domain.DomainDamages},
		WhatMattersMost:     []string{"Schedule of loss totals are provisional."},
		PrimaryRisk:         "Missing evidence: GP records",
		RecommendedNextMove: "Obtain GP records.",
		Supervisor: domain.SupervisorAddendum{
			TopRisks:           []string{"Limitation is four months out."},
			UpcomingDeadlines:  []string{"Limitation expiry: 2026-03-01"},
			SpendGuardrails:    []string{"Keep disbursements within the agreed stage budget."},
			EscalationTriggers: []string{"Escalate: GP records is outstanding at high priority."},
		},
	}

	out := renderRoleLens(lens)

	assert.Contains(t, out, "Lens: Supervisor")
	assert.Contains(t, out, "Damages & Impact")
	assert.Contains(t, out, "Limitation is four months out.")
	assert.Contains(t, out, "Limitation expiry: 2026-03-01")
	assert.Contains(t, out, "Escalate: GP records is outstanding at high priority.")
}

func TestRenderRoleLens_NonSupervisorOmitsAddendum(t *testing.T) {
	lens := domain.RoleLens{
		Role:        domain.RoleParalegal,
		PrimaryRisk: "Insufficient data at this stage to state a primary risk.",
		Supervisor: domain.SupervisorAddendum{
			TopRisks: []string{"Limitation is four months out."},
		},
	}

	out := renderRoleLens(lens)

	assert.Contains(t, out, "Lens: Paralegal")
	assert.NotContains(t, out, "Limitation is four months out.")
}
