package domain

// Domain is a fixed substantive category used to group case evidence by
// subject matter. It is a classification label, not an instance: the set is
// closed and every lookup table keyed by Domain covers it exhaustively.
type Domain string

const (
	// DomainIncident covers the accident or incident itself: scene
	// evidence, witness accounts, locus reports.
	DomainIncident Domain = "incident"

	// DomainMedical covers hospital and medical evidence: A&E records,
	// GP notes, radiology, prognosis.
	DomainMedical Domain = "medical"

	// DomainPolice covers police and procedural material: CAD logs,
	// interviews, custody records, charge sheets.
	DomainPolice Domain = "police"

	// DomainDisclosure covers disclosure and evidence-integrity material:
	// CCTV, unused material schedules, exhibit continuity.
	DomainDisclosure Domain = "disclosure"

	// DomainExpert covers expert opinion evidence: instructed reports,
	// medico-legal opinions.
	DomainExpert Domain = "expert"

	// DomainDamages covers damages and impact evidence: schedules of
	// loss, receipts, care costs, quantum material.
	DomainDamages Domain = "damages"
)

// DomainOrder is the fixed emission order for domain summaries. Output is
// always produced in this order so identical inputs yield identical output.
var DomainOrder = []Domain{
	DomainIncident,
	DomainMedical,
	DomainPolice,
	DomainDisclosure,
	DomainExpert,
	DomainDamages,
}

// Title returns the human-readable display title for a domain.
func (d Domain) Title() string {
	switch d {
	case DomainIncident:
		return "Incident & Accident"
	case DomainMedical:
		return "Hospital & Medical"
	case DomainPolice:
		return "Police & Procedural"
	case DomainDisclosure:
		return "Disclosure & Evidence Integrity"
	case DomainExpert:
		return "Expert Opinion"
	case DomainDamages:
		return "Damages & Impact"
	}
	return string(d)
}
