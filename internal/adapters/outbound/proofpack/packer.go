// Package proofpack seals a proof directory: it hashes every file, writes a
// fresh nonce, and emits the codeqc-proofpack-3 manifest.json with a merkle
// root over the file hashes.
package proofpack

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maidos/codeqc/internal/domain/manifest"
)

const (
	manifestFile = "manifest.json"
	nonceFile    = "e2e/nonce.txt"
)

// Packer seals proof directories.
type Packer struct {
	// Now is injectable for deterministic tests; defaults to time.Now.
	Now func() time.Time
}

// New creates a Packer.
func New() *Packer {
	return &Packer{Now: time.Now}
}

// Pack hashes every file under proofDir (except the manifest itself),
// writes a fresh nonce, and writes manifest.json. The returned manifest is
// the one written to disk.
func (p *Packer) Pack(proofDir string, journeys []manifest.Journey, git manifest.GitState) (*manifest.Manifest, error) {
	if _, err := os.Stat(proofDir); err != nil {
		return nil, fmt.Errorf("proof dir %s: %w", proofDir, err)
	}

	now := p.Now().UTC()
	runID := fmt.Sprintf("RUN-%s-%s", now.Format("20060102-150405"), uuid.NewString()[:8])
	nonce := "NONCE-" + strings.ReplaceAll(uuid.NewString(), "-", "")

	noncePath := filepath.Join(proofDir, nonceFile)
	if err := os.MkdirAll(filepath.Dir(noncePath), 0755); err != nil {
		return nil, fmt.Errorf("creating nonce dir: %w", err)
	}
	if err := os.WriteFile(noncePath, []byte(nonce+"\n"), 0644); err != nil {
		return nil, fmt.Errorf("writing nonce: %w", err)
	}

	hashes, err := hashTree(proofDir)
	if err != nil {
		return nil, err
	}

	leaves := make([]string, 0, len(hashes))
	for _, h := range hashes {
		leaves = append(leaves, h.SHA256)
	}

	m := &manifest.Manifest{
		Version:    manifest.Version,
		RunID:      runID,
		Nonce:      nonce,
		Timestamp:  now.Format(time.RFC3339),
		Journeys:   journeys,
		Hashes:     hashes,
		MerkleRoot: manifest.MerkleRoot(leaves),
		Git:        git,
		Env: manifest.EnvInfo{
			OS: runtime.GOOS,
			CI: os.Getenv("CI") == "true",
		},
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(proofDir, manifestFile), data, 0644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	return m, nil
}

// hashTree hashes every regular file under root, keyed by slash-separated
// relative path. The manifest itself is skipped so packing is idempotent.
func hashTree(root string) (map[string]manifest.FileHash, error) {
	hashes := make(map[string]manifest.FileHash)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == manifestFile {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		h, size, err := hashFile(path)
		if err != nil {
			return err
		}

		hashes[filepath.ToSlash(rel)] = manifest.FileHash{SHA256: h, Bytes: size}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("hashing proof dir: %w", err)
	}

	return hashes, nil
}

func hashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), size, nil
}
