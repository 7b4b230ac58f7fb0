package services

import (
	"github.com/custodia-labs/caselens/internal/core/domain"
)

// framingSentences holds up to three helps/hurts framing sentences per
// (practice area, domain) pair. Areas or domains without an entry fall back
// to defaultFraming.
var framingSentences = map[domain.PracticeArea]map[domain.Domain][]string{
	domain.PracticePersonalInjury: {
		domain.DomainIncident: {
			"A consistent account of the accident circumstances supports primary liability.",
			"Gaps between witness accounts and the incident report will be probed on causation.",
		},
		domain.DomainMedical: {
			"Contemporaneous A&E records anchor the injury to the accident date.",
			"Pre-existing conditions in the GP records may reduce recoverable damages.",
		},
		domain.DomainPolice: {
			"A police report attributing fault assists on liability.",
			"Absence of police attendance weakens independent corroboration.",
		},
		domain.DomainDisclosure: {
			"CCTV or dashcam footage is usually decisive on how the accident happened.",
			"Late or incomplete disclosure invites adverse inference on liability.",
		},
		domain.DomainExpert: {
			"A supportive causation opinion underpins both liability and quantum.",
			"An equivocal prognosis delays settlement valuation.",
		},
		domain.DomainDamages: {
			"A documented schedule of loss strengthens the negotiating position.",
			"Unvouched special damages are routinely challenged.",
		},
	},
	domain.PracticeCriminalDefence: {
		domain.DomainIncident: {
			"Inconsistencies between prosecution witness accounts assist the defence.",
			"An early defence account fixed in writing limits later challenge.",
		},
		domain.DomainPolice: {
			"Procedural breaches in interview or custody handling may found exclusion arguments.",
			"The CAD log timeline often contradicts later statements.",
		},
		domain.DomainDisclosure: {
			"Unserved unused material is fertile ground for disclosure applications.",
			"Breaks in exhibit continuity undermine the prosecution chain of custody.",
		},
		domain.DomainExpert: {
			"A defence expert conclusion that conflicts with the Crown's invites a Part 35 battle.",
		},
	},
	domain.PracticeClinicalNegligence: {
		domain.DomainMedical: {
			"The contemporaneous clinical records are the primary battleground on breach.",
			"Gaps in the records cut both ways and need expert comment.",
		},
		domain.DomainExpert: {
			"Breach and causation stand or fall on the independent expert evidence.",
		},
	},
	domain.PracticeHousing: {
		domain.DomainIncident: {
			"A documented complaint history establishes notice on the landlord.",
		},
		domain.DomainDamages: {
			"Photographic and receipt evidence of loss supports the disrepair schedule.",
		},
	},
}

// defaultFraming provides neutral per-domain sentences for practice areas
// the table above does not cover.
var defaultFraming = map[domain.Domain][]string{
	domain.DomainIncident: {
		"A clear factual account of the incident supports the case theory.",
	},
	domain.DomainMedical: {
		"Medical records provide the objective spine of the chronology.",
	},
	domain.DomainPolice: {
		"Procedural records fix an independent timeline of events.",
	},
	domain.DomainDisclosure: {
		"Complete disclosure protects the integrity of the evidence relied on.",
	},
	domain.DomainExpert: {
		"Independent expert opinion carries the technical issues.",
	},
	domain.DomainDamages: {
		"Documented losses are recoverable; undocumented ones are contested.",
	},
}

// framingFor returns the framing sentences for a (practice area, domain)
// pair, falling back to the neutral defaults.
func framingFor(area domain.PracticeArea, d domain.Domain) []string {
	if byDomain, ok := framingSentences[area]; ok {
		if sentences, ok := byDomain[d]; ok {
			return sentences
		}
	}
	return defaultFraming[d]
}
