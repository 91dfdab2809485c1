package application

import (
	"fmt"
	"time"

	"github.com/maidos/codeqc/internal/domain"
	"github.com/maidos/codeqc/internal/domain/collect"
	"github.com/maidos/codeqc/internal/domain/dod"
	"github.com/maidos/codeqc/internal/domain/gate"
	"github.com/maidos/codeqc/internal/domain/waveform"
)

// VerifyService drives the acceptance-gating pipeline for one run:
// load config → load run record → collect evidence → evaluate gates →
// judge DoD → score waveform.
type VerifyService struct {
	configLoader domain.ConfigLoader
	runLoader    domain.RunLoader
}

func NewVerifyService(configLoader domain.ConfigLoader, runLoader domain.RunLoader) *VerifyService {
	return &VerifyService{
		configLoader: configLoader,
		runLoader:    runLoader,
	}
}

// VerifyResult aggregates every output of one verification run.
type VerifyResult struct {
	Evidence   domain.EvidenceCollection `json:"evidence"`
	Gates      gate.Status               `json:"gates"`
	Hierarchy  gate.Hierarchy            `json:"hierarchy"`
	DoD        dod.Status                `json:"dod"`
	Waveform   waveform.WaveformReport   `json:"waveform"`
	Timestamp  time.Time                 `json:"timestamp"`
	CommitHash string                    `json:"commit_hash,omitempty"`
}

// VerifyRun loads the run record at runPath and evaluates it against the
// project's gating configuration.
func (s *VerifyService) VerifyRun(projectPath, runPath string) (*VerifyResult, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	record, err := s.runLoader.Load(runPath)
	if err != nil {
		return nil, fmt.Errorf("loading run record: %w", err)
	}

	return Verify(cfg, record), nil
}

// Verify evaluates an already-loaded run record. It is total: every run
// record, however sparse, yields a complete result.
func Verify(cfg domain.ProjectConfig, record domain.RunRecord) *VerifyResult {
	ev := collect.Collect(record.Stages, record.Commands, record.Proofs)

	gates := gate.NewStatus(
		criteriaFor(ev, cfg.Gates.Entry),
		criteriaFor(ev, cfg.Gates.Mid),
		criteriaFor(ev, cfg.Gates.Exit),
		criteriaFor(ev, cfg.Gates.Accept),
	)

	// G3 integration criteria come from the orchestrator as-is; the other
	// hierarchical gates read configured artifacts.
	hierarchy := gate.NewHierarchy(
		criteriaFor(ev, cfg.Gates.G1),
		criteriaFor(ev, cfg.Gates.G2),
		record.Integration,
		criteriaFor(ev, cfg.Gates.G4),
	)

	status := dod.Judge(ev, hierarchy)

	report := waveform.BuildReport(
		waveform.BuildFunctionalChannel(functionalInput(cfg, ev, record)),
		waveform.BuildQualityChannel(qualityInput(ev, record)),
		waveform.BuildAuthenticityChannel(authenticityInput(cfg, ev, record)),
	)

	return &VerifyResult{
		Evidence:  ev,
		Gates:     gates,
		Hierarchy: hierarchy,
		DoD:       status,
		Waveform:  report,
		Timestamp: time.Now(),
	}
}

// criteriaFor turns a configured artifact list into a gate criteria map
// keyed by artifact name, one criterion per artifact's clean state.
func criteriaFor(ev domain.EvidenceCollection, names []domain.ArtifactName) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	criteria := make(map[string]bool, len(names))
	for _, name := range names {
		criteria[string(name)] = ev.Clean(name)
	}
	return criteria
}

func functionalInput(cfg domain.ProjectConfig, ev domain.EvidenceCollection, record domain.RunRecord) waveform.FunctionalInput {
	in := waveform.FunctionalInput{
		SpecMapped:        ev.Clean(domain.ArtifactMapping),
		CoverageThreshold: cfg.CoverageThreshold,
		ImplComplete:      ev.Clean(domain.ArtifactImpl),
	}
	if !in.SpecMapped {
		in.SpecMissingCount = ev[domain.ArtifactMapping].Count
	}

	if cmd, ok := record.Commands[domain.CommandTest]; ok {
		in.TestsPass = cmd.Succeeded() && cmd.TestsFailed == 0
		in.TestsFailed = cmd.TestsFailed
		in.TestsTotal = cmd.TestsPassed + cmd.TestsFailed
	} else {
		in.TestsPass = ev.Clean(domain.ArtifactTest)
	}

	if cmd, ok := record.Commands[domain.CommandCoverage]; ok {
		in.CoveragePercent = cmd.CoveragePercent
	}

	return in
}

func qualityInput(ev domain.EvidenceCollection, record domain.RunRecord) waveform.QualityInput {
	in := waveform.QualityInput{
		SecurityCritical: 1, // fail-closed when no audit was supplied
	}

	if cmd, ok := record.Commands[domain.CommandBuild]; ok {
		in.BuildErrors = cmd.Errors
		in.BuildWarnings = cmd.Warnings
	} else if !ev.Clean(domain.ArtifactBuild) {
		in.BuildErrors = ev[domain.ArtifactBuild].Count
	}

	if cmd, ok := record.Commands[domain.CommandLint]; ok {
		in.LintErrors = cmd.Errors
		in.LintWarnings = cmd.Warnings
	} else if !ev.Clean(domain.ArtifactLint) {
		in.LintErrors = ev[domain.ArtifactLint].Count
	}

	if !ev.Clean(domain.ArtifactRedline) {
		in.RedlineViolations = ev[domain.ArtifactRedline].Count
	}

	if cmd, ok := record.Commands[domain.CommandAudit]; ok {
		in.SecurityCritical = cmd.Critical
		in.SecurityHigh = cmd.High
	}

	return in
}

func authenticityInput(cfg domain.ProjectConfig, ev domain.EvidenceCollection, record domain.RunRecord) waveform.AuthenticityInput {
	in := waveform.AuthenticityInput{
		IAVPass:      ev.Clean(domain.ArtifactIAV),
		BLDSMinimum:  cfg.BLDSMinimum,
		Traceability: ev.Clean(domain.ArtifactDataSource),
	}

	if !ev.Clean(domain.ArtifactFraud) {
		in.FraudCount = ev[domain.ArtifactFraud].Count
	}

	if proof := record.Proofs.BLDS; proof != nil {
		in.BLDSScore = proof.Score
		if proof.Minimum > 0 {
			in.BLDSMinimum = proof.Minimum
		}
	}

	return in
}
