package manifest_test

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"testing"

	"github.com/maidos/codeqc/internal/domain"
	"github.com/maidos/codeqc/internal/domain/collect"
	"github.com/maidos/codeqc/internal/domain/dod"
	"github.com/maidos/codeqc/internal/domain/gate"
	"github.com/maidos/codeqc/internal/domain/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passingStatus(t *testing.T) (domain.EvidenceCollection, dod.Status) {
	t.Helper()

	stages := make(domain.StageResults, 9)
	for _, id := range domain.OrderedStages() {
		stages[id] = domain.StageResult{Passed: true, EvidenceProvided: true}
	}
	ev := collect.Collect(stages, domain.CommandResults{
		domain.CommandPackage: {Kind: domain.CommandPackage},
		domain.CommandRun:     {Kind: domain.CommandRun},
		domain.CommandAudit:   {Kind: domain.CommandAudit},
	}, domain.AuthenticityProofs{
		IAV:        &domain.IAVProof{Passed: true, PassedCount: 5},
		BLDS:       &domain.BLDSProof{Score: 5, Minimum: 3, Passed: true},
		DataSource: &domain.DataSourceProof{Passed: true},
	})

	gates := gate.NewHierarchy(
		map[string]bool{"sync": true},
		map[string]bool{"mapping": true},
		map[string]bool{"integrationGreen": true},
		map[string]bool{"package": true, "run": true},
	)
	return ev, dod.Judge(ev, gates)
}

func TestRenderSummary_CompleteVerdict(t *testing.T) {
	ev, status := passingStatus(t)
	require.True(t, status.MissionComplete)

	out := manifest.RenderSummary(ev, status)

	assert.Contains(t, out, "PROOF PACK")
	for _, name := range domain.AllArtifacts() {
		assert.Contains(t, out, string(name))
	}
	for _, item := range status.Items {
		assert.Contains(t, out, item.Name)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, manifest.VerdictComplete, lines[len(lines)-1])
}

func TestRenderSummary_RejectedVerdict(t *testing.T) {
	ev, _ := passingStatus(t)
	rejected := dod.Judge(ev, gate.NewHierarchy(nil, map[string]bool{"mapping": false}, nil, nil))
	require.False(t, rejected.MissionComplete)

	out := manifest.RenderSummary(ev, rejected)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, manifest.VerdictRejected, lines[len(lines)-1])
	assert.NotContains(t, out, "MISSION COMPLETE")
}

func TestJourneysFromDoD(t *testing.T) {
	_, status := passingStatus(t)

	journeys := manifest.JourneysFromDoD(status)

	require.Len(t, journeys, 8)
	assert.Equal(t, "J-001", journeys[0].ID)
	assert.Equal(t, "J-008", journeys[7].ID)
	for i, j := range journeys {
		assert.Equal(t, status.Items[i].Name, j.Description)
		assert.Equal(t, "pass", j.Status)
		assert.Equal(t, []string{status.Items[i].EvidenceRef.LogFile()}, j.Artifacts)
	}
}

func sha(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

func TestMerkleRoot_EmptyHashesLiteralEmpty(t *testing.T) {
	assert.Equal(t, sha("empty"), manifest.MerkleRoot(nil))
}

func TestMerkleRoot_SingleLeafIsItself(t *testing.T) {
	leaf := sha("one")
	assert.Equal(t, leaf, manifest.MerkleRoot([]string{leaf}))
}

func TestMerkleRoot_OrderIndependent(t *testing.T) {
	leaves := []string{sha("a"), sha("b"), sha("c"), sha("d")}
	reversed := []string{leaves[3], leaves[2], leaves[1], leaves[0]}

	assert.Equal(t, manifest.MerkleRoot(leaves), manifest.MerkleRoot(reversed))
}

func shaRaw(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func TestMerkleRoot_OddLeafCountDuplicatesLast(t *testing.T) {
	leaves := []string{sha("a"), sha("b"), sha("c")}

	sorted := make([]string, len(leaves))
	copy(sorted, leaves)
	sort.Strings(sorted)

	raw := make([][]byte, len(sorted))
	for i, leaf := range sorted {
		b, err := hex.DecodeString(leaf)
		require.NoError(t, err)
		raw[i] = b
	}

	// Hand-fold: pair adjacently over the raw digests, duplicating the
	// unpaired last node, then combine the two parents.
	p1 := shaRaw(raw[0], raw[1])
	p2 := shaRaw(raw[2], raw[2])
	want := hex.EncodeToString(shaRaw(p1, p2))

	assert.Equal(t, want, manifest.MerkleRoot(leaves))
}

func TestMerkleRoot_Deterministic(t *testing.T) {
	leaves := []string{sha("x"), sha("y"), sha("z")}
	assert.Equal(t, manifest.MerkleRoot(leaves), manifest.MerkleRoot(leaves))
}
