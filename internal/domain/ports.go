package domain

// ConfigLoader loads project gating configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// RunLoader loads the serialized results of one pipeline run.
type RunLoader interface {
	Load(path string) (RunRecord, error)
}

// RunRecord is everything an orchestrator hands the core for one run:
// the nine stage outcomes, any external command results, any authenticity
// proofs, and the externally evaluated integration (G3) criteria.
type RunRecord struct {
	Stages      StageResults
	Commands    CommandResults
	Proofs      AuthenticityProofs
	Integration map[string]bool
}

// EvidenceWriter persists one log file per artifact under an evidence dir.
type EvidenceWriter interface {
	Write(dir string, evidence EvidenceCollection) error
}

// GitInfo provides repository metadata for reports and manifests.
type GitInfo interface {
	CommitHash(projectPath string) (string, error)
	IsDirty(projectPath string) (bool, error)
}

// RunHistory stores verdict history entries.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// RunEntry is one historical verdict record.
type RunEntry struct {
	Timestamp       string  `json:"timestamp"`
	CommitHash      string  `json:"commit_hash,omitempty"`
	MissionComplete bool    `json:"mission_complete"`
	CompositeScore  float64 `json:"composite_score"`
}
