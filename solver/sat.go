// ABOUTME: Compiles the integer-linear model to pseudo-boolean clauses
// ABOUTME: Sole point of contact with the gophersat solving backend

package solver

import (
	gs "github.com/crillab/gophersat/solver"
)

// pbVar tracks how one model variable maps onto solver literals.
// Binary variables use a single literal; wider domains use a one-hot
// encoding with one literal per value 0..ub.
type pbVar struct {
	binLit int   // literal for value 1 when ub == 1
	oneHot []int // literal per value, index = value, when ub > 1
}

// program is the compiled pseudo-boolean form of a Model. base holds the
// structural clauses; cost-bound clauses are appended per solve iteration.
type program struct {
	model   *Model
	vars    []pbVar
	base    []gs.PBConstr
	unsat   bool // a constraint was unsatisfiable over the domains
	nextLit int
}

// compile lowers a model to pseudo-boolean constraints.
func compile(m *Model) *program {
	p := &program{model: m, nextLit: 1}

	p.vars = make([]pbVar, m.NumVars())
	for v := 0; v < m.NumVars(); v++ {
		ub := m.ubs[v]
		switch {
		case ub == 0:
			// Fixed at zero; encode as a single literal forced false so
			// every variable still owns at least one solver literal.
			lit := p.alloc()
			p.vars[v] = pbVar{binLit: lit}
			p.base = append(p.base, gs.GtEq([]int{-lit}, []int{1}, 1))
		case ub == 1:
			p.vars[v] = pbVar{binLit: p.alloc()}
		default:
			hot := make([]int, ub+1)
			for k := range hot {
				hot[k] = p.alloc()
			}
			p.vars[v] = pbVar{oneHot: hot}
			// Exactly one value literal is true.
			ones := make([]int, len(hot))
			negs := make([]int, len(hot))
			ws := make([]int, len(hot))
			for i, lit := range hot {
				ones[i] = lit
				negs[i] = -lit
				ws[i] = 1
			}
			p.base = append(p.base, gs.GtEq(ones, ws, 1))
			p.base = append(p.base, gs.GtEq(negs, ws, ub))
		}
	}

	for _, c := range m.constrs {
		p.addConstraint(c)
	}

	return p
}

func (p *program) alloc() int {
	lit := p.nextLit
	p.nextLit++
	return lit
}

// expand rewrites linear terms over model variables as weighted literals.
func (p *program) expand(terms []Term) (lits, weights []int) {
	for _, t := range terms {
		if t.Coef == 0 {
			continue
		}
		pv := p.vars[t.Var]
		if pv.oneHot == nil {
			if p.model.ubs[t.Var] == 0 {
				continue // fixed at zero, contributes nothing
			}
			lits = append(lits, pv.binLit)
			weights = append(weights, t.Coef)
			continue
		}
		for k := 1; k < len(pv.oneHot); k++ {
			lits = append(lits, pv.oneHot[k])
			weights = append(weights, t.Coef*k)
		}
	}
	return lits, weights
}

// addConstraint lowers one comparison, splitting equalities and rewriting
// conditionals as slack-padded inequalities.
func (p *program) addConstraint(c constraint) {
	switch c.op {
	case opGE:
		p.addGE(c.terms, c.rhs, c.cond)
	case opLE:
		p.addLE(c.terms, c.rhs, c.cond)
	case opEQ:
		p.addGE(c.terms, c.rhs, c.cond)
		p.addLE(c.terms, c.rhs, c.cond)
	}
}

func (p *program) addLE(terms []Term, rhs int, cond Var) {
	// sum <= rhs  <=>  -sum >= -rhs
	neg := make([]Term, len(terms))
	for i, t := range terms {
		neg[i] = Term{Coef: -t.Coef, Var: t.Var}
	}
	p.addGE(neg, -rhs, cond)
}

// addGE emits sum(terms) >= rhs, optionally relaxed to hold only while
// cond = 1 by granting (rhs - lower bound) of slack when cond = 0.
func (p *program) addGE(terms []Term, rhs int, cond Var) {
	lo, _ := p.model.bounds(terms)
	if rhs <= lo {
		return // holds over the whole domain
	}

	lits, weights := p.expand(terms)

	if cond != NoVar {
		slack := rhs - lo
		condLit := p.litFor(cond)
		lits = append(lits, -condLit)
		weights = append(weights, slack)
	}

	lits, weights, atLeast := normalize(lits, weights, rhs)
	if atLeast <= 0 {
		return
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if atLeast > total {
		p.unsat = true
		return
	}
	p.base = append(p.base, gs.GtEq(lits, weights, atLeast))
}

// litFor returns the "value >= 1" literal of a boolean model variable.
func (p *program) litFor(v Var) int {
	pv := p.vars[v]
	if pv.oneHot != nil {
		// Conditions are boolean by construction in the encoder; a one-hot
		// condition would need an indicator, which the encoder models
		// explicitly instead.
		panic("conditional on non-boolean variable " + p.model.names[v])
	}
	return pv.binLit
}

// normalize flips negative weights so every weight is positive, adjusting
// the threshold: -w*l >= is equivalent to w*(not l) - w.
func normalize(lits, weights []int, atLeast int) ([]int, []int, int) {
	outLits := make([]int, 0, len(lits))
	outWeights := make([]int, 0, len(weights))
	for i, w := range weights {
		switch {
		case w > 0:
			outLits = append(outLits, lits[i])
			outWeights = append(outWeights, w)
		case w < 0:
			outLits = append(outLits, -lits[i])
			outWeights = append(outWeights, -w)
			atLeast += -w
		}
	}
	return outLits, outWeights, atLeast
}

// boundObjective emits sum(objective) <= bound as a pseudo-boolean clause.
func (p *program) boundObjective(bound int) []gs.PBConstr {
	lits, weights := p.expand(p.model.obj)
	neg := make([]int, len(weights))
	for i, w := range weights {
		neg[i] = -w
	}
	lits, weights, atLeast := normalize(lits, neg, -bound)
	if atLeast <= 0 {
		return nil
	}
	return []gs.PBConstr{gs.GtEq(lits, weights, atLeast)}
}

// decode reads integer variable values back out of a solver assignment.
func (p *program) decode(assignment []bool) []int {
	values := make([]int, p.model.NumVars())
	truth := func(lit int) bool {
		return assignment[lit-1]
	}
	for v := range p.vars {
		pv := p.vars[v]
		if pv.oneHot == nil {
			if p.model.ubs[v] >= 1 && truth(pv.binLit) {
				values[v] = 1
			}
			continue
		}
		for k, lit := range pv.oneHot {
			if truth(lit) {
				values[v] = k
				break
			}
		}
	}
	return values
}
