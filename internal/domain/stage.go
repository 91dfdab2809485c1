package domain

// StageID identifies one of the nine ordered verification stages in the
// acceptance pipeline. The stage→artifact mapping is an explicit contract:
// reordering stages never changes which artifact a result lands in.
type StageID int

const (
	StageScan StageID = iota
	StageFraud
	StageBuild
	StageLint
	StageTest
	StageCoverage
	StageRedline
	StageSync
	StageMapping
)

// OrderedStages returns the nine pipeline stages in execution order.
func OrderedStages() []StageID {
	return []StageID{
		StageScan, StageFraud, StageBuild, StageLint, StageTest,
		StageCoverage, StageRedline, StageSync, StageMapping,
	}
}

func (s StageID) String() string {
	switch s {
	case StageScan:
		return "static-rule scan"
	case StageFraud:
		return "fraud scan"
	case StageBuild:
		return "compile"
	case StageLint:
		return "lint"
	case StageTest:
		return "test"
	case StageCoverage:
		return "coverage"
	case StageRedline:
		return "redline re-check"
	case StageSync:
		return "spec-sync check"
	case StageMapping:
		return "spec-mapping check"
	default:
		return "unknown"
	}
}

// Artifact returns the evidence artifact name this stage's result feeds.
func (s StageID) Artifact() ArtifactName {
	switch s {
	case StageScan:
		return ArtifactScan
	case StageFraud:
		return ArtifactFraud
	case StageBuild:
		return ArtifactBuild
	case StageLint:
		return ArtifactLint
	case StageTest:
		return ArtifactTest
	case StageCoverage:
		return ArtifactCoverage
	case StageRedline:
		return ArtifactRedline
	case StageSync:
		return ArtifactSync
	case StageMapping:
		return ArtifactMapping
	default:
		return ""
	}
}

// StageResult is the already-resolved outcome of one pipeline stage, as
// reported by the orchestrator that ran it.
type StageResult struct {
	Passed           bool   `json:"passed" yaml:"passed"`
	EvidenceProvided bool   `json:"evidence_provided" yaml:"evidence"`
	ViolationCount   int    `json:"violation_count" yaml:"violations"`
	DisconnectCount  int    `json:"disconnect_count" yaml:"disconnects"`
	Summary          string `json:"summary" yaml:"summary"`
}

// EffectiveViolations normalizes the violation count: a failed stage with no
// known count still counts as one violation.
func (r StageResult) EffectiveViolations() int {
	if !r.Passed && r.ViolationCount == 0 {
		return 1
	}
	return r.ViolationCount
}

// StageResults maps each pipeline stage to its result.
type StageResults map[StageID]StageResult
