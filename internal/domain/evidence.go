package domain

// ArtifactName is the fixed identifier of one evidence artifact. The set of
// names is closed: every collection contains all sixteen exactly once.
type ArtifactName string

const (
	// Stage-derived artifacts, one per pipeline stage.
	ArtifactScan     ArtifactName = "scan"
	ArtifactFraud    ArtifactName = "fraud"
	ArtifactBuild    ArtifactName = "build"
	ArtifactLint     ArtifactName = "lint"
	ArtifactTest     ArtifactName = "test"
	ArtifactCoverage ArtifactName = "coverage"
	ArtifactRedline  ArtifactName = "redline"
	ArtifactSync     ArtifactName = "sync"
	ArtifactMapping  ArtifactName = "mapping"

	// Derived from the spec-mapping stage alone: no MISSING entries means
	// implementation complete at this engine's baseline.
	ArtifactImpl ArtifactName = "impl"

	// Authenticity proofs, supplied independently of the stages.
	ArtifactIAV        ArtifactName = "iav"
	ArtifactBLDS       ArtifactName = "blds"
	ArtifactDataSource ArtifactName = "datasource"

	// Delivery and operational artifacts from external command results.
	ArtifactPackage ArtifactName = "package"
	ArtifactRun     ArtifactName = "run"
	ArtifactAudit   ArtifactName = "audit"
)

// AllArtifacts returns the complete, ordered set of artifact names.
func AllArtifacts() []ArtifactName {
	return []ArtifactName{
		ArtifactScan, ArtifactFraud, ArtifactBuild, ArtifactLint,
		ArtifactTest, ArtifactCoverage, ArtifactRedline, ArtifactSync,
		ArtifactMapping, ArtifactImpl,
		ArtifactIAV, ArtifactBLDS, ArtifactDataSource,
		ArtifactPackage, ArtifactRun, ArtifactAudit,
	}
}

// LogFile returns the conventional file name an orchestrator persists this
// artifact under, relative to the evidence directory.
func (n ArtifactName) LogFile() string { return string(n) + ".log" }

// NotProvidedMark prefixes the summary of any artifact whose underlying
// source was absent for the run.
const NotProvidedMark = "⚠️ not provided"

// EvidenceArtifact is the normalized record of one verification outcome,
// independent of how the underlying check was executed.
type EvidenceArtifact struct {
	Name    ArtifactName `json:"name"`
	Exists  bool         `json:"exists"`
	Count   int          `json:"count"`
	Clean   bool         `json:"clean"`
	Summary string       `json:"summary"`
}

// EvidenceCollection holds exactly one artifact per defined name. Consumers
// never need to special-case a missing key: absent sources are represented
// as not-provided artifacts, not as absent entries.
type EvidenceCollection map[ArtifactName]EvidenceArtifact

// Clean reports whether the named artifact represents a zero-defect state.
func (c EvidenceCollection) Clean(name ArtifactName) bool {
	return c[name].Clean
}

// Exists reports whether the named artifact's source was provided.
func (c EvidenceCollection) Exists(name ArtifactName) bool {
	return c[name].Exists
}
