// ABOUTME: Neutral integer-linear constraint model built by the rule encoder
// ABOUTME: Bounded int vars, linear comparisons, optional implications, minimize objective

package solver

import "fmt"

// Var identifies one bounded integer variable in a Model. Boolean
// variables are integer variables with an upper bound of 1.
type Var int

// NoVar marks the absence of a variable (e.g. an unconditional constraint).
const NoVar Var = -1

// Term is one coefficient-variable product in a linear expression.
type Term struct {
	Coef int
	Var  Var
}

// T builds a term.
func T(coef int, v Var) Term {
	return Term{Coef: coef, Var: v}
}

type compareOp int

const (
	opGE compareOp = iota
	opLE
	opEQ
)

type constraint struct {
	terms []Term
	op    compareOp
	rhs   int
	cond  Var // when set, the comparison is enforced only while cond = 1
	label string
}

// Model is a minimization problem over bounded non-negative integers.
// Build it up with NewVar/NewBool and the Add* methods, then hand it to
// Solve. The zero value is not usable; call NewModel.
type Model struct {
	names   []string
	ubs     []int
	constrs []constraint
	obj     []Term
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// NewVar declares an integer variable ranging over 0..ub.
func (m *Model) NewVar(name string, ub int) Var {
	if ub < 0 {
		ub = 0
	}
	m.names = append(m.names, name)
	m.ubs = append(m.ubs, ub)
	return Var(len(m.ubs) - 1)
}

// NewBool declares a 0/1 variable.
func (m *Model) NewBool(name string) Var {
	return m.NewVar(name, 1)
}

// UB returns the declared upper bound of a variable.
func (m *Model) UB(v Var) int {
	return m.ubs[v]
}

// Name returns the declared name of a variable.
func (m *Model) Name(v Var) string {
	return m.names[v]
}

// NumVars returns the number of declared variables.
func (m *Model) NumVars() int {
	return len(m.ubs)
}

// AddGE constrains sum(terms) >= rhs.
func (m *Model) AddGE(label string, terms []Term, rhs int) {
	m.constrs = append(m.constrs, constraint{terms: terms, op: opGE, rhs: rhs, cond: NoVar, label: label})
}

// AddLE constrains sum(terms) <= rhs.
func (m *Model) AddLE(label string, terms []Term, rhs int) {
	m.constrs = append(m.constrs, constraint{terms: terms, op: opLE, rhs: rhs, cond: NoVar, label: label})
}

// AddEQ constrains sum(terms) == rhs.
func (m *Model) AddEQ(label string, terms []Term, rhs int) {
	m.constrs = append(m.constrs, constraint{terms: terms, op: opEQ, rhs: rhs, cond: NoVar, label: label})
}

// AddImpliesGE constrains cond = 1 -> sum(terms) >= rhs.
func (m *Model) AddImpliesGE(label string, cond Var, terms []Term, rhs int) {
	m.constrs = append(m.constrs, constraint{terms: terms, op: opGE, rhs: rhs, cond: cond, label: label})
}

// AddImpliesLE constrains cond = 1 -> sum(terms) <= rhs.
func (m *Model) AddImpliesLE(label string, cond Var, terms []Term, rhs int) {
	m.constrs = append(m.constrs, constraint{terms: terms, op: opLE, rhs: rhs, cond: cond, label: label})
}

// SetObjective sets the expression to minimize. Coefficients must make the
// objective non-negative over the variable domains.
func (m *Model) SetObjective(terms []Term) {
	m.obj = terms
}

// Objective returns the current objective terms.
func (m *Model) Objective() []Term {
	return m.obj
}

// Eval computes a linear expression under an assignment.
func Eval(terms []Term, values []int) int {
	total := 0
	for _, t := range terms {
		total += t.Coef * values[t.Var]
	}
	return total
}

// bounds returns the minimum and maximum value sum(terms) can take over
// the declared variable domains.
func (m *Model) bounds(terms []Term) (lo, hi int) {
	for _, t := range terms {
		if t.Var < 0 || int(t.Var) >= len(m.ubs) {
			panic(fmt.Sprintf("term references undeclared variable %d", t.Var))
		}
		if t.Coef >= 0 {
			hi += t.Coef * m.ubs[t.Var]
		} else {
			lo += t.Coef * m.ubs[t.Var]
		}
	}
	return lo, hi
}
