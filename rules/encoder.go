// ABOUTME: Builds the constraint model: quantity, role, and placement variables
// ABOUTME: Applies structural constraints and the declarative rule table

package rules

import (
	"fmt"
	"math"

	"github.com/panel-tools/fireplan/catalog"
	"github.com/panel-tools/fireplan/layout"
	"github.com/panel-tools/fireplan/models"
	"github.com/panel-tools/fireplan/solver"
)

// Context carries everything a rule may consult when encoding.
type Context struct {
	Panel   models.PanelType
	Prefs   models.Preferences
	Devices models.DeviceCounts
	Demand  models.Demand
	Catalog *catalog.Catalog
	Frame   *layout.Frame
}

// PlacementVar maps one solver variable back to the physical placement it
// represents, for result extraction.
type PlacementVar struct {
	Model string
	Copy  int
	Bay   int
	Plane models.Plane
	Block string
	Slot  int
	Var   solver.Var
}

// Encoding is the built model plus the variable maps extraction needs.
type Encoding struct {
	Model      *solver.Model
	Qty        map[string]solver.Var
	Placements []PlacementVar
}

type placement struct {
	comp  models.Component
	copyN int
	bay   int
	plane models.Plane
	block string
	slot  int
	cells []int
	v     solver.Var
}

type roleKey struct {
	bay  int
	role models.BayRole
}

// Encoder assembles the solver model. Helper methods record the first
// error instead of returning one, so rule encodings stay declarative;
// Build surfaces it.
type Encoder struct {
	ctx *Context
	m   *solver.Model

	qty map[string]solver.Var
	sel map[string]solver.Var

	placements []placement
	byModel    map[string][]int

	roles map[roleKey]solver.Var

	err error
}

// Encode builds the full constraint model for a panel: variables,
// structural constraints, every applicable rule, and the cost objective.
func Encode(ctx *Context) (*Encoding, error) {
	e := &Encoder{
		ctx:     ctx,
		m:       solver.NewModel(),
		qty:     make(map[string]solver.Var),
		sel:     make(map[string]solver.Var),
		byModel: make(map[string][]int),
		roles:   make(map[roleKey]solver.Var),
	}

	e.buildQuantities()
	e.buildPlacements()
	e.buildStructure()
	e.buildRoles()

	for _, r := range Table() {
		if !r.Applies(ctx) {
			continue
		}
		if err := r.Encode(ctx, e); err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.Name, err)
		}
	}
	if e.err != nil {
		return nil, e.err
	}

	e.buildObjective()

	enc := &Encoding{Model: e.m, Qty: e.qty}
	for _, p := range e.placements {
		enc.Placements = append(enc.Placements, PlacementVar{
			Model: p.comp.Model, Copy: p.copyN, Bay: p.bay,
			Plane: p.plane, Block: p.block, Slot: p.slot, Var: p.v,
		})
	}
	return enc, nil
}

func (e *Encoder) buildQuantities() {
	for _, comp := range e.ctx.Catalog.All() {
		q := e.m.NewVar("qty:"+comp.Model, comp.MaxQuantity)
		s := e.m.NewBool("sel:" + comp.Model)
		e.qty[comp.Model] = q
		e.sel[comp.Model] = s
		// q >= 1 iff s = 1.
		e.m.AddGE("sel-link:"+comp.Model, []solver.Term{solver.T(1, q), solver.T(-1, s)}, 0)
		e.m.AddLE("sel-link:"+comp.Model, []solver.Term{solver.T(1, q), solver.T(-comp.MaxQuantity, s)}, 0)
	}
}

// buildPlacements declares one boolean per (component, copy, legal anchor).
// Front-door slot 4 is reserved for network and RS-232 interface cards.
func (e *Encoder) buildPlacements() {
	for _, comp := range e.ctx.Catalog.All() {
		if !comp.Placeable() {
			continue
		}
		for copyN := 0; copyN < comp.MaxQuantity; copyN++ {
			for _, bay := range e.ctx.Frame.Bays {
				e.placeCopyInBay(comp, copyN, bay.Index)
			}
		}
	}
}

func (e *Encoder) placeCopyInBay(comp models.Component, copyN, bay int) {
	for _, plane := range comp.Planes {
		if plane == models.PlaneFrontDoor {
			slots := comp.Slots
			if len(slots) == 0 {
				slots = []int{1, 2, 3, 4, 5, 6, 7, 8}
			}
			for _, slot := range slots {
				if slot == 4 && comp.Category != models.CategoryNetwork && comp.Category != models.CategoryInterface {
					continue
				}
				cell, ok := e.ctx.Frame.PointAt(bay, plane, "", slot)
				if !ok {
					continue
				}
				e.addPlacement(placement{comp: comp, copyN: copyN, bay: bay,
					plane: plane, slot: slot, cells: []int{cell}})
			}
			continue
		}

		anchors := comp.Blocks
		if len(anchors) == 0 {
			anchors = []string{"A", "B", "C", "D", "E", "F", "G", "H"}
		}
		for _, anchor := range anchors {
			cells, ok := e.ctx.Frame.BlockCells(bay, plane, anchor)
			if !ok {
				continue
			}
			e.addPlacement(placement{comp: comp, copyN: copyN, bay: bay,
				plane: plane, block: anchor, cells: cells})
		}
	}
}

func (e *Encoder) addPlacement(p placement) {
	name := fmt.Sprintf("place:%s#%d@bay%d/%s/%s%d", p.comp.Model, p.copyN, p.bay, p.plane, p.block, p.slot)
	p.v = e.m.NewBool(name)
	e.placements = append(e.placements, p)
	e.byModel[p.comp.Model] = append(e.byModel[p.comp.Model], len(e.placements)-1)
}

// buildStructure ties quantities to placements and enforces occupancy:
// each copy sits in at most one spot, placed copies equal the quantity,
// lower-numbered copies place first, and no cell holds two modules.
func (e *Encoder) buildStructure() {
	cellUse := make(map[int][]solver.Term)

	for _, comp := range e.ctx.Catalog.All() {
		if !comp.Placeable() {
			continue
		}
		idxs := e.byModel[comp.Model]

		perCopy := make(map[int][]solver.Term)
		var all []solver.Term
		for _, i := range idxs {
			p := e.placements[i]
			perCopy[p.copyN] = append(perCopy[p.copyN], solver.T(1, p.v))
			all = append(all, solver.T(1, p.v))
			for _, cell := range p.cells {
				cellUse[cell] = append(cellUse[cell], solver.T(1, p.v))
			}
		}

		for copyN := 0; copyN < comp.MaxQuantity; copyN++ {
			e.m.AddLE(fmt.Sprintf("one-spot:%s#%d", comp.Model, copyN), perCopy[copyN], 1)
			if copyN > 0 {
				terms := append(append([]solver.Term{}, perCopy[copyN]...), negate(perCopy[copyN-1])...)
				e.m.AddLE(fmt.Sprintf("copy-order:%s#%d", comp.Model, copyN), terms, 0)
			}
		}

		linked := append(append([]solver.Term{}, all...), solver.T(-1, e.qty[comp.Model]))
		e.m.AddEQ("placed-equals-qty:"+comp.Model, linked, 0)
	}

	for cell, terms := range cellUse {
		pt := e.ctx.Frame.Points[cell]
		e.m.AddLE(fmt.Sprintf("occupancy:bay%d/%s/%s%d", pt.Bay, pt.Plane, pt.Block, pt.Slot), terms, 1)
	}
}

// buildRoles declares one boolean per (bay, eligible role), at most one
// role per bay.
func (e *Encoder) buildRoles() {
	for _, bay := range e.ctx.Frame.Bays {
		var terms []solver.Term
		for _, role := range bay.EligibleRoles {
			v := e.m.NewBool(fmt.Sprintf("role:bay%d/%s", bay.Index, role))
			e.roles[roleKey{bay: bay.Index, role: role}] = v
			terms = append(terms, solver.T(1, v))
		}
		e.m.AddLE(fmt.Sprintf("one-role:bay%d", bay.Index), terms, 1)
	}
}

func (e *Encoder) buildObjective() {
	var obj []solver.Term
	for _, comp := range e.ctx.Catalog.All() {
		if cents := Cents(comp.Cost); cents != 0 {
			obj = append(obj, solver.T(cents, e.qty[comp.Model]))
		}
	}
	e.m.SetObjective(obj)
}

func negate(terms []solver.Term) []solver.Term {
	out := make([]solver.Term, len(terms))
	for i, t := range terms {
		out[i] = solver.T(-t.Coef, t.Var)
	}
	return out
}

// ---- helpers used by rule encodings ----

func (e *Encoder) fail(format string, args ...any) {
	if e.err == nil {
		e.err = fmt.Errorf(format, args...)
	}
}

// Model exposes the underlying constraint model to rule encodings.
func (e *Encoder) Model() *solver.Model {
	return e.m
}

// Qty returns the quantity variable of a catalog model.
func (e *Encoder) Qty(model string) solver.Var {
	v, ok := e.qty[model]
	if !ok {
		e.fail("quantity of unknown model %s", model)
		return 0
	}
	return v
}

// Sel returns the 0/1 "selected at all" indicator of a catalog model.
func (e *Encoder) Sel(model string) solver.Var {
	v, ok := e.sel[model]
	if !ok {
		e.fail("selection of unknown model %s", model)
		return 0
	}
	return v
}

// CategoryTerms builds weighted quantity terms over one category. A nil
// weight function weighs every component 1.
func (e *Encoder) CategoryTerms(cat models.Category, weight func(models.Component) int) []solver.Term {
	var terms []solver.Term
	for _, comp := range e.ctx.Catalog.ByCategory(cat) {
		w := 1
		if weight != nil {
			w = weight(comp)
		}
		if w != 0 {
			terms = append(terms, solver.T(w, e.qty[comp.Model]))
		}
	}
	return terms
}

// BayTerms sums the placement variables of one model within one bay.
func (e *Encoder) BayTerms(model string, bay int) []solver.Term {
	var terms []solver.Term
	for _, i := range e.byModel[model] {
		if e.placements[i].bay == bay {
			terms = append(terms, solver.T(1, e.placements[i].v))
		}
	}
	return terms
}

// CategoryBayTerms sums the placement variables of a category within one
// bay, optionally filtered.
func (e *Encoder) CategoryBayTerms(cat models.Category, bay int, keep func(models.Component) bool) []solver.Term {
	var terms []solver.Term
	for _, p := range e.placements {
		if p.comp.Category != cat || p.bay != bay {
			continue
		}
		if keep != nil && !keep(p.comp) {
			continue
		}
		terms = append(terms, solver.T(1, p.v))
	}
	return terms
}

// Restrict zeroes every placement of a model the keep predicate rejects.
func (e *Encoder) Restrict(model string, keep func(bay int, plane models.Plane, block string, slot int) bool) {
	for _, i := range e.byModel[model] {
		p := e.placements[i]
		if !keep(p.bay, p.plane, p.block, p.slot) {
			e.m.AddEQ("restrict:"+e.m.Name(p.v), []solver.Term{solver.T(1, p.v)}, 0)
		}
	}
}

// Pin forces the first copy of a model onto an exact anchor whenever the
// model is selected, and forbids every other anchor for it.
func (e *Encoder) Pin(model string, bay int, plane models.Plane, block string, slot int) {
	var pinned *placement
	for _, i := range e.byModel[model] {
		p := &e.placements[i]
		if p.copyN == 0 && p.bay == bay && p.plane == plane && p.block == block && p.slot == slot {
			pinned = p
			continue
		}
	}
	if pinned == nil {
		e.fail("model %s has no anchor at bay %d %s %s%d", model, bay, plane, block, slot)
		return
	}
	e.Restrict(model, func(b int, pl models.Plane, bl string, sl int) bool {
		return b == bay && pl == plane && bl == block && sl == slot
	})
	e.m.AddImpliesGE("pin:"+model, e.Sel(model), []solver.Term{solver.T(1, pinned.v)}, 1)
}

// ForbidBay zeroes every placement variable in a bay.
func (e *Encoder) ForbidBay(bay int) {
	for _, p := range e.placements {
		if p.bay == bay {
			e.m.AddEQ(fmt.Sprintf("forbid-bay%d:%s", bay, p.comp.Model), []solver.Term{solver.T(1, p.v)}, 0)
		}
	}
}

// RequireRole assigns a role to a bay unconditionally.
func (e *Encoder) RequireRole(bay int, role models.BayRole) {
	v, ok := e.roles[roleKey{bay: bay, role: role}]
	if !ok {
		e.fail("bay %d is not eligible for role %s", bay, role)
		return
	}
	e.m.AddEQ(fmt.Sprintf("require-role:bay%d/%s", bay, role), []solver.Term{solver.T(1, v)}, 1)
}

// Role returns the role variable for a bay, declaring nothing new.
func (e *Encoder) Role(bay int, role models.BayRole) (solver.Var, bool) {
	v, ok := e.roles[roleKey{bay: bay, role: role}]
	return v, ok
}

// Bays exposes the frame's bays to rule encodings.
func (e *Encoder) Bays() []layout.Bay {
	return e.ctx.Frame.Bays
}

// PlacementsIn yields every placement variable in a bay on one plane.
func (e *Encoder) PlacementsIn(bay int, plane models.Plane) []solver.Term {
	var terms []solver.Term
	for _, p := range e.placements {
		if p.bay == bay && p.plane == plane {
			terms = append(terms, solver.T(1, p.v))
		}
	}
	return terms
}

// SlotTerms sums placements at one exact front-door slot, filtered by
// component generation when gen is non-empty.
func (e *Encoder) SlotTerms(bay, slot int, gen models.Generation) []solver.Term {
	var terms []solver.Term
	for _, p := range e.placements {
		if p.bay != bay || p.plane != models.PlaneFrontDoor || p.slot != slot {
			continue
		}
		if gen != "" && p.comp.Generation != gen {
			continue
		}
		terms = append(terms, solver.T(1, p.v))
	}
	return terms
}

// ModelPlacements yields the placement variables of one model.
func (e *Encoder) ModelPlacements(model string) []PlacementVar {
	var out []PlacementVar
	for _, i := range e.byModel[model] {
		p := e.placements[i]
		out = append(out, PlacementVar{
			Model: p.comp.Model, Copy: p.copyN, Bay: p.bay,
			Plane: p.plane, Block: p.block, Slot: p.slot, Var: p.v,
		})
	}
	return out
}

// Cabinets exposes the frame's cabinets to rule encodings.
func (e *Encoder) Cabinets() []layout.Cabinet {
	return e.ctx.Frame.Cabinets
}

// Cents converts a catalog price to integer objective weight.
func Cents(cost float64) int {
	return int(math.Round(cost * 100))
}

// MilliAmps converts amps to integer milliamps for constraint weights.
func MilliAmps(amps float64) int {
	return int(math.Round(amps * 1000))
}

// DeciWatts converts watts to integer deciwatts for constraint weights.
func DeciWatts(watts float64) int {
	return int(math.Round(watts * 10))
}
