package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/caselens/internal/core/domain"
	"github.com/custodia-labs/caselens/internal/textkit"
)

// Per-domain output caps. Key facts and timeline sentences beyond these are
// dropped, never truncated mid-entry.
const (
	maxKeyFacts           = 8
	maxTimelineHighlights = 8
	maxContradictions     = 5
	maxMissingEvidence    = 8
	maxHelpsHurts         = 4
)

// Key-fact sentences must have a length strictly inside this range.
const (
	minFactLen = 15
	maxFactLen = 260
)

// relevanceDocCountCeiling caps the document-count component of the
// relevance score.
const relevanceDocCountCeiling = 10

// ClassifierInput aggregates everything the domain classifier consumes.
// Document order is significant: key facts are extracted in this order.
type ClassifierInput struct {
	Documents       []domain.CaseDocument
	PracticeArea    domain.PracticeArea
	KeyDates        []domain.KeyDate
	MissingEvidence []domain.MissingEvidenceItem
}

// BuildDomainSummaries classifies the documents into domains and builds one
// summary per populated domain, in fixed domain order. Domains with zero
// assigned documents are never emitted.
//
// The function never fails: malformed or missing optional fields simply
// contribute nothing. Identical input (including document order) yields
// deep-equal output on every call.
func BuildDomainSummaries(in ClassifierInput) []domain.DomainSummary {
	corpora := make([]string, len(in.Documents))
	assigned := make(map[domain.Domain][]int)

	for i, doc := range in.Documents {
		if doc.ID == "" {
			continue
		}

		corpus := textkit.Normalize(strings.Join(
			[]string{doc.Name, doc.Type, doc.Extracted.Summary}, " ",
		))
		corpora[i] = corpus

		// Witness statements are routed to the incident and police
		// domains regardless of keyword results.
		witness := isWitnessStatement(doc, corpus)

		for _, d := range domain.DomainOrder {
			forced := witness &&
				(d == domain.DomainIncident || d == domain.DomainPolice)
			if forced || containsAny(corpus, domainKeywords[d]) {
				assigned[d] = append(assigned[d], i)
			}
		}
	}

	summaries := make([]domain.DomainSummary, 0, len(domain.DomainOrder))
	for _, d := range domain.DomainOrder {
		idxs := dedupeByDocID(in.Documents, assigned[d])
		if len(idxs) == 0 {
			continue
		}
		summaries = append(summaries, buildDomainSummary(d, idxs, in))
	}

	return summaries
}

// isWitnessStatement reports whether a document should be treated as a
// witness statement: an explicit marker in its name/type, an explicit phrase
// in its corpus, or at least two first-person narrative patterns.
func isWitnessStatement(doc domain.CaseDocument, corpus string) bool {
	nameType := textkit.Normalize(doc.Name + " " + doc.Type)
	if containsAny(nameType, witnessNameMarkers) {
		return true
	}
	if containsAny(corpus, witnessPhraseMarkers) {
		return true
	}

	hits := 0
	for _, pattern := range witnessNarrativePatterns {
		if strings.Contains(corpus, pattern) {
			hits++
			if hits >= witnessNarrativeThreshold {
				return true
			}
		}
	}
	return false
}

// containsAny reports whether text contains any of the given lowercase terms.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// dedupeByDocID removes indexes whose document id was already seen,
// preserving first-occurrence order.
func dedupeByDocID(docs []domain.CaseDocument, idxs []int) []int {
	seen := make(map[string]bool, len(idxs))
	result := make([]int, 0, len(idxs))
	for _, idx := range idxs {
		id := docs[idx].ID
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, idx)
	}
	return result
}

// buildDomainSummary assembles the full summary for one populated domain.
func buildDomainSummary(
	d domain.Domain, idxs []int, in ClassifierInput,
) domain.DomainSummary {
	ids := make([]string, 0, len(idxs))
	for _, idx := range idxs {
		ids = append(ids, in.Documents[idx].ID)
	}

	timeline, conflicts := buildTimeline(d, idxs, in)
	mapped := mapMissingEvidence(d, in.MissingEvidence)

	return domain.DomainSummary{
		Domain:             d,
		SourceDocIDs:       ids,
		RelevanceScore:     relevanceScore(len(ids), mapped),
		KeyFacts:           buildKeyFacts(idxs, in.Documents),
		TimelineHighlights: timeline,
		Contradictions:     buildContradictions(len(ids), conflicts, mapped),
		MissingEvidence:    mapped,
		HelpsHurts:         buildHelpsHurts(d, in.PracticeArea, mapped),
	}
}

// buildKeyFacts extracts up to maxKeyFacts short sentences from "name.
// summary" text, processing documents in caller-supplied order and
// de-duplicating on normalised text.
func buildKeyFacts(idxs []int, docs []domain.CaseDocument) []string {
	facts := make([]string, 0, maxKeyFacts)
	seen := make(map[string]bool)

	for _, idx := range idxs {
		doc := docs[idx]
		text := doc.Name + ". " + doc.Extracted.Summary

		for _, sentence := range textkit.SplitSentences(text) {
			if len(sentence) <= minFactLen || len(sentence) >= maxFactLen {
				continue
			}
			key := textkit.Normalize(sentence)
			if seen[key] {
				continue
			}
			seen[key] = true

			facts = append(facts, sentence)
			if len(facts) == maxKeyFacts {
				return facts
			}
		}
	}

	return facts
}

// buildTimeline merges the case-level key dates with the structured events
// of the domain's documents, de-duplicates on (date, label), sorts ascending
// by date and caps the result. It also returns the labels that resolve to
// two or more distinct dates across the domain's documents.
func buildTimeline(
	_ domain.Domain, idxs []int, in ClassifierInput,
) (entries []domain.TimelineEntry, conflictLabels []string) {
	var merged []domain.TimelineEntry

	for _, kd := range in.KeyDates {
		if kd.Label == "" || kd.Date == "" {
			continue
		}
		merged = append(merged, domain.TimelineEntry{
			Date:  kd.Date,
			Label: kd.Label,
		})
	}

	// Track distinct dates per label across the domain's documents only;
	// case-level key dates are singletons by construction.
	datesByLabel := make(map[string]map[string]bool)
	var labelOrder []string
	displayLabel := make(map[string]string)

	for _, idx := range idxs {
		for _, ev := range in.Documents[idx].Extracted.Events {
			if ev.Label == "" || ev.Date == "" {
				continue
			}
			merged = append(merged, domain.TimelineEntry{
				Date:  ev.Date,
				Label: ev.Label,
			})

			key := textkit.Normalize(ev.Label)
			if datesByLabel[key] == nil {
				datesByLabel[key] = make(map[string]bool)
				labelOrder = append(labelOrder, key)
				displayLabel[key] = ev.Label
			}
			datesByLabel[key][ev.Date] = true
		}
	}

	for _, key := range labelOrder {
		if len(datesByLabel[key]) >= 2 {
			conflictLabels = append(conflictLabels, displayLabel[key])
		}
	}

	seen := make(map[string]bool, len(merged))
	entries = make([]domain.TimelineEntry, 0, len(merged))
	for _, e := range merged {
		key := e.Date + "|" + textkit.Normalize(e.Label)
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, e)
	}

	// ISO-8601 dates sort correctly as strings. Stable keeps insertion
	// order for equal dates, which keeps output deterministic.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	if len(entries) > maxTimelineHighlights {
		entries = entries[:maxTimelineHighlights]
	}
	return entries, conflictLabels
}

// mapMissingEvidence filters the canonical missing-evidence list down to the
// items whose category/label text matches the domain's gap terms.
func mapMissingEvidence(
	d domain.Domain, items []domain.MissingEvidenceItem,
) []domain.MissingEvidenceItem {
	mapped := make([]domain.MissingEvidenceItem, 0, maxMissingEvidence)
	for _, item := range items {
		if item.Label == "" {
			continue
		}
		text := textkit.Normalize(item.Area + " " + item.Label)
		if !containsAny(text, domainGapTerms[d]) {
			continue
		}
		mapped = append(mapped, item)
		if len(mapped) == maxMissingEvidence {
			break
		}
	}
	return mapped
}

// buildContradictions flags thin coverage, conflicting dates and
// provisional conclusions, de-duplicated and capped.
func buildContradictions(
	docCount int, conflictLabels []string,
	mapped []domain.MissingEvidenceItem,
) []string {
	var notes []string

	if docCount == 1 {
		notes = append(notes,
			"Only a single document covers this area; coverage is thin.")
	}

	for _, label := range conflictLabels {
		notes = append(notes, fmt.Sprintf(
			"Conflicting dates recorded for %q across documents.", label))
	}

	if len(mapped) > 0 {
		notes = append(notes,
			"Conclusions are provisional until outstanding evidence is obtained.")
	}

	notes = textkit.DedupePreserveOrder(notes)
	if len(notes) > maxContradictions {
		notes = notes[:maxContradictions]
	}
	return notes
}

// buildHelpsHurts produces the framing sentences: one binary sentence keyed
// on the presence of mapped missing evidence, then the fixed (practice area,
// domain) framing, de-duplicated and capped.
func buildHelpsHurts(
	d domain.Domain, area domain.PracticeArea,
	mapped []domain.MissingEvidenceItem,
) []string {
	var frames []string

	if len(mapped) > 0 {
		frames = append(frames,
			"Outstanding evidence gaps mean this area currently cuts both ways.")
	} else {
		frames = append(frames,
			"No outstanding evidence gaps are recorded against this area.")
	}

	frames = append(frames, framingFor(area, d)...)

	frames = textkit.DedupePreserveOrder(frames)
	if len(frames) > maxHelpsHurts {
		frames = frames[:maxHelpsHurts]
	}
	return frames
}

// relevanceScore computes the integer ordering aid: capped document count,
// plus 5 when any mapped gap is critical, plus 2 when any is high. It is
// never a probability.
func relevanceScore(docCount int, mapped []domain.MissingEvidenceItem) int {
	score := docCount
	if score > relevanceDocCountCeiling {
		score = relevanceDocCountCeiling
	}

	var hasCritical, hasHigh bool
	for _, item := range mapped {
		switch item.Priority {
		case domain.SeverityCritical:
			hasCritical = true
		case domain.SeverityHigh:
			hasHigh = true
		}
	}

	if hasCritical {
		score += 5
	}
	if hasHigh {
		score += 2
	}
	return score
}
