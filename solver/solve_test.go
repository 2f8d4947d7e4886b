// ABOUTME: Tests for the constraint model and minimization loop
// ABOUTME: Small hand-checkable models covering optimal, infeasible, and timeout

package solver

import (
	"context"
	"testing"
	"time"

	"github.com/panel-tools/fireplan/models"
)

func TestSolve_MinimizesInteger(t *testing.T) {
	// x in 0..5, x >= 2, minimize 3x: optimum is x=2, objective 6
	m := NewModel()
	x := m.NewVar("x", 5)
	m.AddGE("floor", []Term{T(1, x)}, 2)
	m.SetObjective([]Term{T(3, x)})

	out := Solve(context.Background(), m)
	if out.Status != models.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", out.Status)
	}
	if out.Values[x] != 2 {
		t.Errorf("Expected x=2, got %d", out.Values[x])
	}
	if out.Objective != 6 {
		t.Errorf("Expected objective 6, got %d", out.Objective)
	}
}

func TestSolve_PicksCheaperAlternative(t *testing.T) {
	// Either a (cost 10) or b (cost 3) must be on; minimizing picks b
	m := NewModel()
	a := m.NewBool("a")
	b := m.NewBool("b")
	m.AddGE("coverage", []Term{T(1, a), T(1, b)}, 1)
	m.SetObjective([]Term{T(10, a), T(3, b)})

	out := Solve(context.Background(), m)
	if out.Status != models.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", out.Status)
	}
	if out.Values[a] != 0 || out.Values[b] != 1 {
		t.Errorf("Expected a=0 b=1, got a=%d b=%d", out.Values[a], out.Values[b])
	}
	if out.Objective != 3 {
		t.Errorf("Expected objective 3, got %d", out.Objective)
	}
}

func TestSolve_EqualityAndUpperBound(t *testing.T) {
	// x + y == 4 with x <= 1 forces y >= 3; minimize y
	m := NewModel()
	x := m.NewVar("x", 1)
	y := m.NewVar("y", 10)
	m.AddEQ("total", []Term{T(1, x), T(1, y)}, 4)
	m.SetObjective([]Term{T(1, y)})

	out := Solve(context.Background(), m)
	if out.Status != models.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", out.Status)
	}
	if out.Values[x]+out.Values[y] != 4 {
		t.Errorf("Equality violated: x=%d y=%d", out.Values[x], out.Values[y])
	}
	if out.Values[y] != 3 {
		t.Errorf("Expected y=3, got %d", out.Values[y])
	}
}

func TestSolve_NegativeCoefficients(t *testing.T) {
	// x - 2y <= 0 links x to y: with x >= 3, y must reach 2
	m := NewModel()
	x := m.NewVar("x", 5)
	y := m.NewVar("y", 5)
	m.AddGE("demand", []Term{T(1, x)}, 3)
	m.AddLE("link", []Term{T(1, x), T(-2, y)}, 0)
	m.SetObjective([]Term{T(1, x), T(1, y)})

	out := Solve(context.Background(), m)
	if out.Status != models.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", out.Status)
	}
	if out.Values[x] != 3 || out.Values[y] != 2 {
		t.Errorf("Expected x=3 y=2, got x=%d y=%d", out.Values[x], out.Values[y])
	}
}

func TestSolve_ImpliedConstraintActive(t *testing.T) {
	// cond forced on makes x >= 4 binding
	m := NewModel()
	cond := m.NewBool("cond")
	x := m.NewVar("x", 10)
	m.AddGE("force cond", []Term{T(1, cond)}, 1)
	m.AddImpliesGE("conditional floor", cond, []Term{T(1, x)}, 4)
	m.SetObjective([]Term{T(1, x)})

	out := Solve(context.Background(), m)
	if out.Status != models.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", out.Status)
	}
	if out.Values[x] != 4 {
		t.Errorf("Expected x=4 under active condition, got %d", out.Values[x])
	}
}

func TestSolve_ImpliedConstraintInactive(t *testing.T) {
	// cond free: cheapest solution turns it off and leaves x at 0
	m := NewModel()
	cond := m.NewBool("cond")
	x := m.NewVar("x", 10)
	m.AddImpliesGE("conditional floor", cond, []Term{T(1, x)}, 4)
	m.SetObjective([]Term{T(1, cond), T(1, x)})

	out := Solve(context.Background(), m)
	if out.Status != models.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", out.Status)
	}
	if out.Values[cond] != 0 || out.Values[x] != 0 {
		t.Errorf("Expected cond=0 x=0, got cond=%d x=%d", out.Values[cond], out.Values[x])
	}
}

func TestSolve_ImpliedUpperBound(t *testing.T) {
	// cond on caps x at 1 even though demand wants more from x or y
	m := NewModel()
	cond := m.NewBool("cond")
	x := m.NewVar("x", 5)
	y := m.NewVar("y", 5)
	m.AddGE("force cond", []Term{T(1, cond)}, 1)
	m.AddImpliesLE("conditional cap", cond, []Term{T(1, x)}, 1)
	m.AddGE("demand", []Term{T(1, x), T(1, y)}, 4)
	m.SetObjective([]Term{T(1, x), T(2, y)})

	out := Solve(context.Background(), m)
	if out.Status != models.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", out.Status)
	}
	if out.Values[x] > 1 {
		t.Errorf("Conditional cap violated: x=%d", out.Values[x])
	}
	if out.Values[x]+out.Values[y] < 4 {
		t.Errorf("Demand violated: x=%d y=%d", out.Values[x], out.Values[y])
	}
}

func TestSolve_Infeasible(t *testing.T) {
	// x <= 2 and x >= 3 cannot both hold
	m := NewModel()
	x := m.NewVar("x", 10)
	m.AddLE("cap", []Term{T(1, x)}, 2)
	m.AddGE("floor", []Term{T(1, x)}, 3)
	m.SetObjective([]Term{T(1, x)})

	out := Solve(context.Background(), m)
	if out.Status != models.StatusInfeasible {
		t.Errorf("Expected infeasible, got %s", out.Status)
	}
	if out.Values != nil {
		t.Error("Infeasible outcome should carry no assignment")
	}
}

func TestSolve_InfeasibleByBounds(t *testing.T) {
	// Demand exceeds what the domains can supply; detected at compile time
	m := NewModel()
	x := m.NewVar("x", 2)
	m.AddGE("impossible demand", []Term{T(1, x)}, 5)

	out := Solve(context.Background(), m)
	if out.Status != models.StatusInfeasible {
		t.Errorf("Expected infeasible, got %s", out.Status)
	}
}

func TestSolve_ExpiredDeadlineIsTimeout(t *testing.T) {
	m := NewModel()
	x := m.NewVar("x", 5)
	m.AddGE("floor", []Term{T(1, x)}, 1)
	m.SetObjective([]Term{T(1, x)})

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	out := Solve(ctx, m)
	if out.Status != models.StatusTimeout {
		t.Errorf("Expected timeout, got %s", out.Status)
	}
}

func TestSolve_NoObjectiveStopsAtFirstSolution(t *testing.T) {
	m := NewModel()
	x := m.NewVar("x", 3)
	m.AddGE("floor", []Term{T(1, x)}, 1)

	out := Solve(context.Background(), m)
	if out.Status != models.StatusOptimal {
		t.Fatalf("Expected optimal, got %s", out.Status)
	}
	if out.Iterations != 1 {
		t.Errorf("Expected a single iteration without an objective, got %d", out.Iterations)
	}
	if out.Values[x] < 1 {
		t.Errorf("Constraint violated: x=%d", out.Values[x])
	}
}

func TestEval(t *testing.T) {
	terms := []Term{T(2, 0), T(-1, 1)}
	if got := Eval(terms, []int{3, 4}); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
}

func TestModel_BoolAndBounds(t *testing.T) {
	m := NewModel()
	b := m.NewBool("flag")
	v := m.NewVar("count", 7)
	neg := m.NewVar("clamped", -3)

	if m.UB(b) != 1 {
		t.Errorf("Bool upper bound should be 1, got %d", m.UB(b))
	}
	if m.UB(v) != 7 {
		t.Errorf("Expected upper bound 7, got %d", m.UB(v))
	}
	if m.UB(neg) != 0 {
		t.Errorf("Negative bound should clamp to 0, got %d", m.UB(neg))
	}
	if m.NumVars() != 3 {
		t.Errorf("Expected 3 variables, got %d", m.NumVars())
	}
	if m.Name(v) != "count" {
		t.Errorf("Expected name 'count', got %q", m.Name(v))
	}
}
