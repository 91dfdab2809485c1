package domain

// CommandKind identifies an externally supplied command result.
type CommandKind string

const (
	CommandBuild    CommandKind = "build"
	CommandLint     CommandKind = "lint"
	CommandTest     CommandKind = "test"
	CommandCoverage CommandKind = "coverage"
	CommandAudit    CommandKind = "audit"
	CommandPackage  CommandKind = "package"
	CommandRun      CommandKind = "run"
)

// CommandResult is the outcome of one external command run by the
// orchestrator. ExitCode is meaningful for every kind; the remaining fields
// are populated per kind (errors/warnings for build and lint, test counts
// for test, percent for coverage, critical/high for audit).
type CommandResult struct {
	Kind            CommandKind `json:"kind" yaml:"-"`
	ExitCode        int         `json:"exit_code" yaml:"exit_code"`
	Errors          int         `json:"errors,omitempty" yaml:"errors"`
	Warnings        int         `json:"warnings,omitempty" yaml:"warnings"`
	TestsPassed     int         `json:"tests_passed,omitempty" yaml:"passed"`
	TestsFailed     int         `json:"tests_failed,omitempty" yaml:"failed"`
	CoveragePercent float64     `json:"coverage_percent,omitempty" yaml:"percent"`
	Critical        int         `json:"critical,omitempty" yaml:"critical"`
	High            int         `json:"high,omitempty" yaml:"high"`
}

// Succeeded reports whether the command's exit signal was success.
func (r CommandResult) Succeeded() bool { return r.ExitCode == 0 }

// CommandResults maps command kinds to their results. Absent kinds mean the
// orchestrator never ran that command for this run.
type CommandResults map[CommandKind]CommandResult
