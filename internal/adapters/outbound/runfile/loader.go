// Package runfile loads the YAML record an orchestrator writes after
// running the nine pipeline stages, the external commands, and the
// authenticity proofs.
package runfile

import (
	"fmt"
	"os"

	"github.com/maidos/codeqc/internal/domain"
	"gopkg.in/yaml.v3"
)

// Loader implements domain.RunLoader for YAML run records.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// rawRecord is the on-disk shape: stages and commands keyed by name.
type rawRecord struct {
	Stages   map[string]domain.StageResult   `yaml:"stages"`
	Commands map[string]domain.CommandResult `yaml:"commands"`
	Proofs   domain.AuthenticityProofs       `yaml:"proofs"`
	Gates    struct {
		G3 map[string]bool `yaml:"g3"`
	} `yaml:"gates"`
}

// stageKeys maps on-disk stage names to stage ids. Keys match the artifact
// names so a run file reads the same as the evidence it produces.
var stageKeys = map[string]domain.StageID{
	"scan":     domain.StageScan,
	"fraud":    domain.StageFraud,
	"build":    domain.StageBuild,
	"lint":     domain.StageLint,
	"test":     domain.StageTest,
	"coverage": domain.StageCoverage,
	"redline":  domain.StageRedline,
	"sync":     domain.StageSync,
	"mapping":  domain.StageMapping,
}

var commandKeys = map[string]domain.CommandKind{
	"build":    domain.CommandBuild,
	"lint":     domain.CommandLint,
	"test":     domain.CommandTest,
	"coverage": domain.CommandCoverage,
	"audit":    domain.CommandAudit,
	"package":  domain.CommandPackage,
	"run":      domain.CommandRun,
}

// Load reads and decodes the run record at path.
func (l *Loader) Load(path string) (domain.RunRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RunRecord{}, fmt.Errorf("reading run record: %w", err)
	}

	var raw rawRecord
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.RunRecord{}, fmt.Errorf("parsing run record %s: %w", path, err)
	}

	record := domain.RunRecord{
		Stages:      make(domain.StageResults, len(raw.Stages)),
		Commands:    make(domain.CommandResults, len(raw.Commands)),
		Proofs:      raw.Proofs,
		Integration: raw.Gates.G3,
	}

	for key, result := range raw.Stages {
		id, ok := stageKeys[key]
		if !ok {
			return domain.RunRecord{}, fmt.Errorf("run record %s: unknown stage %q", path, key)
		}
		record.Stages[id] = result
	}

	for key, result := range raw.Commands {
		kind, ok := commandKeys[key]
		if !ok {
			return domain.RunRecord{}, fmt.Errorf("run record %s: unknown command %q", path, key)
		}
		result.Kind = kind
		record.Commands[kind] = result
	}

	return record, nil
}
