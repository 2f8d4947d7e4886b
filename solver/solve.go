// ABOUTME: Minimization loop over the pseudo-boolean backend
// ABOUTME: Iteratively tightens a cost bound until optimality, infeasibility, or deadline

package solver

import (
	"context"
	"log/slog"
	"time"

	gs "github.com/crillab/gophersat/solver"

	"github.com/panel-tools/fireplan/models"
)

// Outcome is the terminal result of one Solve call. Values is the variable
// assignment of the best solution found and is nil unless Status is
// optimal or feasible.
type Outcome struct {
	Status     models.SolveStatus
	Values     []int
	Objective  int
	Iterations int
	Elapsed    time.Duration
}

// Solve minimizes the model objective. The context deadline is the time
// budget: expiring with an incumbent yields feasible, without one yields
// timeout. An unsatisfiable model yields infeasible, which is a proof, not
// a timeout. Without a deadline the loop runs to optimality.
func Solve(ctx context.Context, m *Model) Outcome {
	start := time.Now()
	prog := compile(m)
	if prog.unsat {
		return Outcome{Status: models.StatusInfeasible, Elapsed: time.Since(start)}
	}

	deadline, hasDeadline := ctx.Deadline()

	// Bisect the objective range: lower starts at the objective's domain
	// minimum, upper at the incumbent's value. Each SAT call either proves
	// the lower half reachable or raises the floor.
	lower, _ := m.bounds(m.obj)
	if lower < 0 {
		lower = 0
	}

	var (
		best       []int
		bestObj    int
		iterations int
	)

	for {
		var budget time.Duration
		if hasDeadline {
			budget = time.Until(deadline)
			if budget <= 0 {
				return outOfTime(best, bestObj, iterations, start)
			}
		}

		constrs := prog.base
		if best != nil {
			if lower >= bestObj {
				return Outcome{Status: models.StatusOptimal, Values: best, Objective: bestObj,
					Iterations: iterations, Elapsed: time.Since(start)}
			}
			mid := lower + (bestObj-1-lower)/2
			constrs = append(append([]gs.PBConstr{}, prog.base...), prog.boundObjective(mid)...)
		}

		assignment, status, timedOut := solveOnce(ctx, constrs, budget)
		iterations++
		if timedOut {
			return outOfTime(best, bestObj, iterations, start)
		}

		switch status {
		case gs.Sat:
			best = prog.decode(assignment)
			bestObj = Eval(m.obj, best)
			slog.Debug("incumbent improved", "objective", bestObj, "iteration", iterations)
			if len(m.obj) == 0 || bestObj <= lower {
				// Nothing left to tighten.
				return Outcome{Status: models.StatusOptimal, Values: best, Objective: bestObj,
					Iterations: iterations, Elapsed: time.Since(start)}
			}
		case gs.Unsat:
			if best == nil {
				return Outcome{Status: models.StatusInfeasible, Iterations: iterations, Elapsed: time.Since(start)}
			}
			// The bound proved unreachable: raise the floor past it.
			lower = lower + (bestObj-1-lower)/2 + 1
		default:
			return outOfTime(best, bestObj, iterations, start)
		}
	}
}

func outOfTime(best []int, bestObj, iterations int, start time.Time) Outcome {
	if best != nil {
		return Outcome{Status: models.StatusFeasible, Values: best, Objective: bestObj,
			Iterations: iterations, Elapsed: time.Since(start)}
	}
	return Outcome{Status: models.StatusTimeout, Iterations: iterations, Elapsed: time.Since(start)}
}

// solveOnce runs a single satisfiability call, abandoning it if the budget
// expires first. budget <= 0 means no limit. An abandoned call's goroutine
// is left to finish on its own; its result is discarded.
func solveOnce(ctx context.Context, constrs []gs.PBConstr, budget time.Duration) ([]bool, gs.Status, bool) {
	type result struct {
		assignment []bool
		status     gs.Status
	}

	done := make(chan result, 1)
	go func() {
		pb := gs.ParsePBConstrs(constrs)
		s := gs.New(pb)
		status := s.Solve()
		var assignment []bool
		if status == gs.Sat {
			assignment = s.Model()
		}
		done <- result{assignment: assignment, status: status}
	}()

	var expire <-chan time.Time
	if budget > 0 {
		timer := time.NewTimer(budget)
		defer timer.Stop()
		expire = timer.C
	}

	select {
	case r := <-done:
		return r.assignment, r.status, false
	case <-expire:
		return nil, gs.Unsat, true
	case <-ctx.Done():
		return nil, gs.Unsat, true
	}
}
