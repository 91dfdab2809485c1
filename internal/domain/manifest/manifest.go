// Package manifest renders the Proof Pack: a human-readable summary of the
// evidence map and DoD verdict, and the hash manifest that seals a proof
// directory (per-file sha256 plus a merkle root over the sorted leaves).
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/maidos/codeqc/internal/domain"
	"github.com/maidos/codeqc/internal/domain/dod"
)

// Verdict lines. The summary always ends in exactly one of these.
const (
	VerdictComplete = "MISSION COMPLETE ✅"
	VerdictRejected = "REJECTED ❌"
)

// RenderSummary renders the Proof Pack summary: every evidence artifact,
// every DoD item, and the final verdict line.
func RenderSummary(ev domain.EvidenceCollection, status dod.Status) string {
	var b strings.Builder

	b.WriteString("PROOF PACK\n")
	b.WriteString("==========\n\n")

	b.WriteString("Evidence\n")
	for _, name := range domain.AllArtifacts() {
		art := ev[name]
		mark := "✗"
		if art.Clean {
			mark = "✓"
		}
		fmt.Fprintf(&b, "  [%s] %-11s count=%-3d %s\n", mark, art.Name, art.Count, art.Summary)
	}

	b.WriteString("\nDefinition of Done\n")
	for _, item := range status.Items {
		mark := "✗"
		if item.Passed {
			mark = "✓"
		}
		fmt.Fprintf(&b, "  [%s] %d. %-22s %s (%s)\n", mark, item.ID, item.Name, item.Verification, item.EvidenceRef.LogFile())
	}

	b.WriteString("\n")
	if status.MissionComplete {
		b.WriteString(VerdictComplete)
	} else {
		b.WriteString(VerdictRejected)
	}
	b.WriteString("\n")

	return b.String()
}

// Version identifies the hash-manifest format.
const Version = "codeqc-proofpack-3"

// FileHash records the digest and size of one sealed file.
type FileHash struct {
	SHA256 string `json:"sha256"`
	Bytes  int64  `json:"bytes"`
}

// Journey is one verified user journey recorded in the manifest.
type Journey struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Artifacts   []string `json:"artifacts"`
}

// GitState records repository state at sealing time.
type GitState struct {
	Dirty  bool   `json:"dirty"`
	Commit string `json:"commit,omitempty"`
}

// EnvInfo records the sealing environment.
type EnvInfo struct {
	OS string `json:"os"`
	CI bool   `json:"ci"`
}

// Manifest is the sealed proof-pack descriptor written as manifest.json.
type Manifest struct {
	Version    string              `json:"version"`
	RunID      string              `json:"run_id"`
	Nonce      string              `json:"nonce"`
	Timestamp  string              `json:"timestamp"`
	Journeys   []Journey           `json:"journeys"`
	Hashes     map[string]FileHash `json:"hashes"`
	MerkleRoot string              `json:"merkle_root"`
	Git        GitState            `json:"git"`
	Env        EnvInfo             `json:"env"`
}

// JourneysFromDoD maps the eight DoD items onto manifest journeys.
func JourneysFromDoD(status dod.Status) []Journey {
	journeys := make([]Journey, 0, len(status.Items))
	for _, item := range status.Items {
		js := "fail"
		if item.Passed {
			js = "pass"
		}
		journeys = append(journeys, Journey{
			ID:          fmt.Sprintf("J-%03d", item.ID),
			Description: item.Name,
			Status:      js,
			Artifacts:   []string{item.EvidenceRef.LogFile()},
		})
	}
	return journeys
}

// MerkleRoot folds the leaf hashes pairwise into a single root. Leaves are
// sorted first, so the root is independent of input order; an odd level
// duplicates its last node. No leaves hashes the literal "empty".
func MerkleRoot(leaves []string) string {
	if len(leaves) == 0 {
		sum := sha256.Sum256([]byte("empty"))
		return hex.EncodeToString(sum[:])
	}

	sorted := append([]string(nil), leaves...)
	sort.Strings(sorted)

	nodes := make([][]byte, 0, len(sorted))
	for _, leaf := range sorted {
		raw, err := hex.DecodeString(leaf)
		if err != nil {
			// Malformed leaves are hashed as-is rather than dropped.
			raw = []byte(leaf)
		}
		nodes = append(nodes, raw)
	}

	for len(nodes) > 1 {
		if len(nodes)%2 == 1 {
			nodes = append(nodes, nodes[len(nodes)-1])
		}
		next := make([][]byte, 0, len(nodes)/2)
		for i := 0; i < len(nodes); i += 2 {
			sum := sha256.Sum256(append(append([]byte{}, nodes[i]...), nodes[i+1]...))
			next = append(next, sum[:])
		}
		nodes = next
	}

	return hex.EncodeToString(nodes[0])
}
