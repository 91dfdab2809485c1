package domain

import "fmt"

// Default thresholds applied when .codeqc.yaml does not override them.
const (
	DefaultCoverageThreshold = 80.0
	DefaultBLDSMinimum       = 3.0
	DefaultEvidenceDir       = "evidence"
)

// ProjectConfig controls per-project gating behavior. Channel weights are a
// fixed policy and deliberately not configurable here.
type ProjectConfig struct {
	CoverageThreshold float64    `yaml:"coverage_threshold" json:"coverage_threshold"`
	BLDSMinimum       float64    `yaml:"blds_minimum" json:"blds_minimum"`
	EvidenceDir       string     `yaml:"evidence_dir" json:"evidence_dir"`
	Gates             GateConfig `yaml:"gates" json:"gates"`
}

// GateConfig names, per gate, the evidence artifacts whose clean state forms
// that gate's criteria. An empty list makes the gate vacuously pass; leaving
// a gate unconfigured is how staged rollouts disable it.
type GateConfig struct {
	Entry  []ArtifactName `yaml:"entry" json:"entry"`
	Mid    []ArtifactName `yaml:"mid" json:"mid"`
	Exit   []ArtifactName `yaml:"exit" json:"exit"`
	Accept []ArtifactName `yaml:"accept" json:"accept"`
	G1     []ArtifactName `yaml:"g1" json:"g1"`
	G2     []ArtifactName `yaml:"g2" json:"g2"`
	G4     []ArtifactName `yaml:"g4" json:"g4"`
}

// DefaultConfig returns the stock gating configuration. The audit artifact
// is intentionally absent from the default g4 criteria: its fail-closed
// default (no audit counts as a critical finding) must not block acceptance
// unless a project explicitly wires it in.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		CoverageThreshold: DefaultCoverageThreshold,
		BLDSMinimum:       DefaultBLDSMinimum,
		EvidenceDir:       DefaultEvidenceDir,
		Gates: GateConfig{
			Entry:  []ArtifactName{ArtifactScan, ArtifactFraud},
			Mid:    []ArtifactName{ArtifactBuild, ArtifactLint, ArtifactTest},
			Exit:   []ArtifactName{ArtifactCoverage, ArtifactRedline},
			Accept: []ArtifactName{ArtifactSync, ArtifactMapping},
			G1:     []ArtifactName{ArtifactSync},
			G2:     []ArtifactName{ArtifactMapping},
			G4:     []ArtifactName{ArtifactPackage, ArtifactRun},
		},
	}
}

// Validate catches typos in user-supplied config before it reaches the core.
func (c ProjectConfig) Validate() error {
	if c.CoverageThreshold < 0 || c.CoverageThreshold > 100 {
		return fmt.Errorf("coverage_threshold %.1f out of range [0,100]", c.CoverageThreshold)
	}
	if c.BLDSMinimum < 0 || c.BLDSMinimum > 5 {
		return fmt.Errorf("blds_minimum %.1f out of range [0,5]", c.BLDSMinimum)
	}
	known := make(map[ArtifactName]bool, 16)
	for _, n := range AllArtifacts() {
		known[n] = true
	}
	lists := map[string][]ArtifactName{
		"entry": c.Gates.Entry, "mid": c.Gates.Mid, "exit": c.Gates.Exit,
		"accept": c.Gates.Accept, "g1": c.Gates.G1, "g2": c.Gates.G2, "g4": c.Gates.G4,
	}
	for gate, names := range lists {
		for _, n := range names {
			if !known[n] {
				return fmt.Errorf("gates.%s: unknown artifact %q", gate, n)
			}
		}
	}
	return nil
}
