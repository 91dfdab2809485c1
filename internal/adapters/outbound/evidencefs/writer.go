// Package evidencefs persists the evidence collection to a conventional
// directory: one log file per artifact name, summary written verbatim.
package evidencefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/maidos/codeqc/internal/domain"
)

// Writer implements domain.EvidenceWriter on the local filesystem.
type Writer struct{}

// New creates a Writer.
func New() *Writer { return &Writer{} }

// Write stores one <name>.log per artifact under dir, creating it as
// needed. Not-provided artifacts are written too, so the directory always
// carries the complete artifact set for the run.
func (w *Writer) Write(dir string, evidence domain.EvidenceCollection) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating evidence dir: %w", err)
	}

	for _, name := range domain.AllArtifacts() {
		art := evidence[name]
		content := fmt.Sprintf("artifact: %s\nexists: %t\nclean: %t\ncount: %d\nsummary: %s\n",
			art.Name, art.Exists, art.Clean, art.Count, art.Summary)
		fp := filepath.Join(dir, name.LogFile())
		if err := os.WriteFile(fp, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", fp, err)
		}
	}

	return nil
}
