package services

import (
	"github.com/custodia-labs/caselens/internal/core/domain"
)

// domainKeywords maps each domain to the lowercase terms tested by
// case-insensitive substring containment against a document's corpus.
// Matching is non-exclusive: a document may land in zero, one or many
// domains. The table covers every domain — the enum is closed.
var domainKeywords = map[domain.Domain][]string{
	domain.DomainIncident: {
		"accident",
		"collision",
		"road traffic",
		"incident report",
		"locus",
		"scene of",
	},
	domain.DomainMedical: {
		"hospital",
		"a&e",
		"triage",
		"discharge summary",
		"gp records",
		"orthopaedic",
		"radiology",
		"x-ray",
		"mri",
		"clinic",
		"prognosis",
		"rehabilitation",
	},
	domain.DomainPolice: {
		"police",
		"custody record",
		"cad",
		"crime reference",
		"charge sheet",
		"interview under caution",
		"pnc",
	},
	domain.DomainDisclosure: {
		"cctv",
		"disclosure",
		"unused material",
		"exhibit",
		"continuity",
		"chain of custody",
		"body-worn",
		"bodycam",
		"footage",
	},
	domain.DomainExpert: {
		"expert",
		"opinion",
		"medico-legal",
		"part 35",
		"instructed to report",
		"consultant report",
	},
	domain.DomainDamages: {
		"schedule of loss",
		"special damages",
		"general damages",
		"quantum",
		"loss of earnings",
		"receipts",
		"invoice",
		"care costs",
	},
}

// witnessNameMarkers are tested against a document's name and type.
var witnessNameMarkers = []string{
	"witness statement",
	"statement of witness",
}

// witnessPhraseMarkers are explicit phrases tested against the corpus.
var witnessPhraseMarkers = []string{
	"witness statement",
	"statement of truth",
	"i make this statement",
}

// witnessNarrativePatterns are first-person narrative fragments. A document
// matching at least two is treated as a witness statement even when no
// explicit marker is present.
var witnessNarrativePatterns = []string{
	"i saw",
	"i was told",
	"i heard",
	"i went",
	"i did not",
	"i noticed",
	"my recollection",
}

// witnessNarrativeThreshold is the minimum number of narrative pattern hits
// for witness-statement detection without an explicit marker.
const witnessNarrativeThreshold = 2

// domainGapTerms maps each domain to the terms tested against a
// missing-evidence item's category and label text. An item may map to more
// than one domain; each domain filters the canonical list independently.
var domainGapTerms = map[domain.Domain][]string{
	domain.DomainIncident: {
		"accident",
		"scene",
		"locus",
		"witness",
		"dashcam",
	},
	domain.DomainMedical: {
		"medical",
		"records",
		"gp",
		"hospital",
		"prognosis",
		"rehab",
		"clinic",
	},
	domain.DomainPolice: {
		"police",
		"interview",
		"custody",
		"cad",
		"crime report",
	},
	domain.DomainDisclosure: {
		"disclosure",
		"cctv",
		"unused",
		"schedule",
		"exhibit",
		"footage",
		"body-worn",
	},
	domain.DomainExpert: {
		"expert",
		"opinion",
		"medico-legal",
		"instruction",
	},
	domain.DomainDamages: {
		"loss",
		"earnings",
		"receipt",
		"invoice",
		"quantum",
		"care",
	},
}
