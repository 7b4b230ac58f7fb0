package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/caselens/internal/core/domain"
)

// fallbackWidth is used when the output is not a terminal.
const fallbackWidth = 80

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4")) // Cyan

	labelStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")) // Medium gray

	riskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")) // Red
)

// terminalWidth returns the stdout width, or fallbackWidth when stdout is not
// a terminal (pipes, tests).
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

// renderSummary renders the full layered summary: a header, one section per
// populated domain, then one section per role lens.
func renderSummary(summary *domain.LayeredSummary) string {
	var b strings.Builder
	divider := mutedStyle.Render(strings.Repeat("─", terminalWidth()))

	b.WriteString(titleStyle.Render("Layered Case Summary"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf(
		"practice area: %s | documents: %d | pages: %d | computed: %s",
		summary.PracticeArea,
		len(summary.Source.DocumentIDs),
		summary.Source.TotalPages,
		summary.ComputedAt.Format("2006-01-02 15:04"),
	)))
	b.WriteString("\n")
	if summary.IsLargeBundleMode {
		b.WriteString(mutedStyle.Render("large bundle mode"))
		b.WriteString("\n")
	}
	b.WriteString(divider)
	b.WriteString("\n\n")

	for _, ds := range summary.DomainSummaries {
		b.WriteString(renderDomainSummary(ds))
		b.WriteString("\n")
	}

	b.WriteString(divider)
	b.WriteString("\n\n")

	for _, role := range domain.AllRoles {
		lens, ok := summary.RoleLenses[role]
		if !ok {
			continue
		}
		b.WriteString(renderRoleLens(lens))
		b.WriteString("\n")
	}

	return b.String()
}

func renderDomainSummary(ds domain.DomainSummary) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render(ds.Domain.Title()))
	b.WriteString(mutedStyle.Render(fmt.Sprintf(
		"  (%d docs, relevance %d)", len(ds.SourceDocIDs), ds.RelevanceScore)))
	b.WriteString("\n")

	writeBullets(&b, "Key facts", ds.KeyFacts, nil)

	if len(ds.TimelineHighlights) > 0 {
		b.WriteString(labelStyle.Render("  Timeline"))
		b.WriteString("\n")
		for _, e := range ds.TimelineHighlights {
			b.WriteString(fmt.Sprintf("    %s  %s\n", e.Date, e.Label))
		}
	}

	writeBullets(&b, "Contradictions / uncertainties", ds.Contradictions, riskStyle.Render)

	if len(ds.MissingEvidence) > 0 {
		b.WriteString(labelStyle.Render("  Missing evidence"))
		b.WriteString("\n")
		for _, item := range ds.MissingEvidence {
			line := item.Label
			if item.Priority != domain.SeverityUnknown {
				line += fmt.Sprintf(" [%s]", item.Priority)
			}
			b.WriteString("    • " + riskStyle.Render(line) + "\n")
		}
	}

	writeBullets(&b, "Helps / hurts", ds.HelpsHurts, nil)

	return b.String()
}

// renderRoleLens renders one role's lens including the supervisor addendum.
func renderRoleLens(lens domain.RoleLens) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Lens: " + lens.Role.Title()))
	b.WriteString("\n")

	if len(lens.TopDomains) > 0 {
		titles := make([]string, 0, len(lens.TopDomains))
		for _, d := range lens.TopDomains {
			titles = append(titles, d.Title())
		}
		b.WriteString(labelStyle.Render("  Top domains: "))
		b.WriteString(strings.Join(titles, ", "))
		b.WriteString("\n")
	}

	writeBullets(&b, "What matters most", lens.WhatMattersMost, nil)

	b.WriteString(labelStyle.Render("  Primary risk: "))
	b.WriteString(riskStyle.Render(lens.PrimaryRisk))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("  Next move: "))
	b.WriteString(lens.RecommendedNextMove)
	b.WriteString("\n")

	if lens.Role == domain.RoleSupervisor {
		b.WriteString(renderAddendum(lens.Supervisor))
	}

	return b.String()
}

func renderAddendum(a domain.SupervisorAddendum) string {
	var b strings.Builder

	writeBullets(&b, "Top risks", a.TopRisks, riskStyle.Render)
	writeBullets(&b, "Upcoming deadlines", a.UpcomingDeadlines, nil)
	writeBullets(&b, "Spend guardrails", a.SpendGuardrails, nil)
	writeBullets(&b, "Escalation triggers", a.EscalationTriggers, riskStyle.Render)

	return b.String()
}

// writeBullets writes a labelled bullet list, skipping empty lists. style may
// be nil for unstyled items.
func writeBullets(b *strings.Builder, label string, items []string, style func(...string) string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(labelStyle.Render("  " + label))
	b.WriteString("\n")
	for _, item := range items {
		if style != nil {
			item = style(item)
		}
		b.WriteString("    • " + item + "\n")
	}
}
