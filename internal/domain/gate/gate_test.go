package gate_test

import (
	"testing"

	"github.com/maidos/codeqc/internal/domain/gate"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate_AllTrue(t *testing.T) {
	result := gate.Evaluate("entry", map[string]bool{"scan": true, "fraud": true})

	assert.True(t, result.Passed)
	assert.Equal(t, "entry", result.Name)
}

func TestEvaluate_SingleFalseFailsGate(t *testing.T) {
	result := gate.Evaluate("mid", map[string]bool{"build": true, "lint": false, "test": true})

	assert.False(t, result.Passed)
}

// A gate with no criteria passes vacuously. This is deliberate: gates are
// disabled by omission during staged rollout, so production configs must
// supply a non-empty criteria map for every gate they mean to enforce.
func TestEvaluate_EmptyCriteriaPassesVacuously(t *testing.T) {
	assert.True(t, gate.Evaluate("exit", map[string]bool{}).Passed)
	assert.True(t, gate.Evaluate("exit", nil).Passed)
}

func TestEvaluate_ANDPurity(t *testing.T) {
	// passed=true iff every value in the criteria map is true.
	cases := []struct {
		criteria map[string]bool
		want     bool
	}{
		{map[string]bool{"a": true}, true},
		{map[string]bool{"a": false}, false},
		{map[string]bool{"a": true, "b": true, "c": true}, true},
		{map[string]bool{"a": true, "b": true, "c": false}, false},
		{map[string]bool{"a": false, "b": false}, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, gate.Evaluate("g", tc.criteria).Passed, "criteria %v", tc.criteria)
	}
}

func TestNewStatus_GatesAreIndependent(t *testing.T) {
	status := gate.NewStatus(
		map[string]bool{"scan": false},
		map[string]bool{"build": true},
		map[string]bool{"coverage": true},
		map[string]bool{"sync": true},
	)

	assert.False(t, status.Entry.Passed)
	assert.True(t, status.Mid.Passed)
	assert.True(t, status.Exit.Passed)
	assert.True(t, status.Accept.Passed)
}

func TestNewHierarchy(t *testing.T) {
	h := gate.NewHierarchy(
		map[string]bool{"sync": true},
		map[string]bool{"mapping": false},
		map[string]bool{"integrationGreen": true},
		map[string]bool{"package": true, "run": true},
	)

	assert.True(t, h.G1.Passed)
	assert.False(t, h.G2.Passed)
	assert.True(t, h.G3.Passed)
	assert.True(t, h.G4.Passed)
	assert.Equal(t, "G2", h.G2.Name)
}

func TestEvaluate_CriteriaKeptForDisplay(t *testing.T) {
	criteria := map[string]bool{"build": true, "lint": false}
	result := gate.Evaluate("mid", criteria)

	assert.Equal(t, criteria, result.Criteria)
}
