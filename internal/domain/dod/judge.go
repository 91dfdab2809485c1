// Package dod implements the Definition-of-Done judge: eight fixed,
// independently evaluated completeness items whose conjunction declares a
// mission complete.
package dod

import (
	"github.com/maidos/codeqc/internal/domain"
	"github.com/maidos/codeqc/internal/domain/gate"
)

// Item is one completeness criterion. EvidenceRef names the primary
// artifact behind the condition and feeds presentation only.
type Item struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Verification string              `json:"verification"`
	Passed       bool                `json:"passed"`
	EvidenceRef  domain.ArtifactName `json:"evidence_ref"`
}

// Status is the judge's verdict: all eight items plus their conjunction.
type Status struct {
	Items           []Item `json:"items"`
	MissionComplete bool   `json:"mission_complete"`
}

// Judge evaluates the eight items against the evidence collection and the
// hierarchical gates. The mapping is exact: item 3 depends on gate G2, not
// on the mapping artifact directly, and item 7 evaluates iav+blds while the
// fraud check is item 8.
func Judge(ev domain.EvidenceCollection, gates gate.Hierarchy) Status {
	items := []Item{
		{
			ID:           1,
			Name:         "Implementation proof",
			Verification: "full redline re-check reports zero violations",
			Passed:       ev.Clean(domain.ArtifactRedline),
			EvidenceRef:  domain.ArtifactRedline,
		},
		{
			ID:           2,
			Name:         "Completion proof",
			Verification: "spec-mapping is clean and the implementation artifact exists",
			Passed:       ev.Clean(domain.ArtifactMapping) && ev.Exists(domain.ArtifactImpl),
			EvidenceRef:  domain.ArtifactMapping,
		},
		{
			ID:           3,
			Name:         "Specification proof",
			Verification: "spec-mapping gate G2 passed",
			Passed:       gates.G2.Passed,
			EvidenceRef:  domain.ArtifactMapping,
		},
		{
			ID:           4,
			Name:         "Synchronization proof",
			Verification: "specification-sync check reports zero disconnects",
			Passed:       ev.Clean(domain.ArtifactSync),
			EvidenceRef:  domain.ArtifactSync,
		},
		{
			ID:           5,
			Name:         "Compilation proof",
			Verification: "compile stage completed without errors",
			Passed:       ev.Clean(domain.ArtifactBuild),
			EvidenceRef:  domain.ArtifactBuild,
		},
		{
			ID:           6,
			Name:         "Delivery proof",
			Verification: "package and run commands succeeded and delivery gate G4 passed",
			Passed:       ev.Clean(domain.ArtifactPackage) && ev.Clean(domain.ArtifactRun) && gates.G4.Passed,
			EvidenceRef:  domain.ArtifactPackage,
		},
		{
			ID:           7,
			Name:         "Authenticity proof",
			Verification: "IAV interview passed and BLDS score meets the minimum",
			Passed:       ev.Clean(domain.ArtifactIAV) && ev.Clean(domain.ArtifactBLDS),
			EvidenceRef:  domain.ArtifactIAV,
		},
		{
			ID:           8,
			Name:         "Anti-fraud proof",
			Verification: "fraud scan reports zero findings",
			Passed:       ev.Clean(domain.ArtifactFraud),
			EvidenceRef:  domain.ArtifactFraud,
		},
	}

	complete := true
	for _, item := range items {
		if !item.Passed {
			complete = false
			break
		}
	}

	return Status{Items: items, MissionComplete: complete}
}
