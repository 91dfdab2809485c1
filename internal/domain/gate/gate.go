// Package gate reduces named boolean criteria into pass/fail gates.
//
// Every gate is a flat AND over its criteria: it passes iff every criterion
// holds. A gate with no criteria passes vacuously, which is how gates are
// disabled by omission during staged rollout.
package gate

// Result is the outcome of evaluating one gate. Passed is the only field
// other components consume; the itemized criteria are kept for display.
type Result struct {
	Name     string          `json:"name"`
	Passed   bool            `json:"passed"`
	Criteria map[string]bool `json:"criteria,omitempty"`
}

// Evaluate reduces a criteria map to a single pass/fail.
func Evaluate(name string, criteria map[string]bool) Result {
	passed := true
	for _, ok := range criteria {
		if !ok {
			passed = false
			break
		}
	}
	return Result{Name: name, Passed: passed, Criteria: criteria}
}

// Status is the legacy four-gate set. The gates are independent: no gate's
// outcome feeds another's.
type Status struct {
	Entry  Result `json:"entry"`
	Mid    Result `json:"mid"`
	Exit   Result `json:"exit"`
	Accept Result `json:"accept"`
}

// NewStatus evaluates the four legacy gates independently.
func NewStatus(entry, mid, exit, accept map[string]bool) Status {
	return Status{
		Entry:  Evaluate("entry", entry),
		Mid:    Evaluate("mid", mid),
		Exit:   Evaluate("exit", exit),
		Accept: Evaluate("accept", accept),
	}
}

// Hierarchy is the G1–G4 gate set consumed by the DoD judge: G1 sync,
// G2 spec-mapping, G3 integration (supplied externally), G4 delivery.
type Hierarchy struct {
	G1 Result `json:"g1"`
	G2 Result `json:"g2"`
	G3 Result `json:"g3"`
	G4 Result `json:"g4"`
}

// NewHierarchy evaluates the four hierarchical gates by the same flat-AND
// rule as the legacy set.
func NewHierarchy(g1, g2, g3, g4 map[string]bool) Hierarchy {
	return Hierarchy{
		G1: Evaluate("G1", g1),
		G2: Evaluate("G2", g2),
		G3: Evaluate("G3", g3),
		G4: Evaluate("G4", g4),
	}
}
