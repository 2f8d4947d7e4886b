// ABOUTME: Reads the solver assignment back into a priced panel configuration
// ABOUTME: All totals are recomputed from the catalog, never from solver internals

package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/panel-tools/fireplan/layout"
	"github.com/panel-tools/fireplan/models"
	"github.com/panel-tools/fireplan/rules"
	"github.com/panel-tools/fireplan/solver"
)

// extract packages a solver outcome into the result shape. Terminal states
// without an assignment yield an empty selection with one violation naming
// the state.
func (o *Optimizer) extract(panelType models.PanelType, frame *layout.Frame,
	enc *rules.Encoding, outcome solver.Outcome, demand models.Demand) models.PanelConfig {

	cfg := models.PanelConfig{
		PanelType:    panelType,
		CabinetDoor:  frame.Cabinets[0].Door,
		Selections:   []models.Selection{},
		Placements:   []models.Placement{},
		Violations:   []string{},
		SolverStatus: outcome.Status,
		SolveTimeMS:  outcome.Elapsed.Milliseconds(),
	}

	switch outcome.Status {
	case models.StatusInfeasible:
		cfg.Violations = append(cfg.Violations,
			"no configuration satisfies the requested devices and preferences; relax preferences and retry")
		return cfg
	case models.StatusTimeout:
		cfg.Violations = append(cfg.Violations,
			"the search exhausted its time budget before finding a configuration; re-run with a larger time limit")
		return cfg
	}

	for model, v := range enc.Qty {
		qty := outcome.Values[v]
		if qty == 0 {
			continue
		}
		comp, err := o.catalog.Lookup(model)
		if err != nil {
			// Qty variables only exist for catalog entries.
			cfg.Violations = append(cfg.Violations, fmt.Sprintf("selected model %s missing from catalog", model))
			continue
		}
		cfg.Selections = append(cfg.Selections, models.Selection{
			Model:        comp.Model,
			Description:  comp.Description,
			Category:     comp.Category,
			Quantity:     qty,
			UnitCost:     comp.Cost,
			ExtendedCost: round2(comp.Cost * float64(qty)),
		})

		cfg.TotalCost += comp.Cost * float64(qty)
		cfg.StandbyCurrent += comp.StandbyCurrent * float64(qty)
		cfg.AlarmCurrent += comp.AlarmCurrent * float64(qty)
		if comp.Primary {
			cfg.SupplyCapacity += comp.SupplyCapacity * float64(qty)
		}
	}
	sort.Slice(cfg.Selections, func(i, j int) bool {
		return cfg.Selections[i].Model < cfg.Selections[j].Model
	})

	for _, pv := range enc.Placements {
		if outcome.Values[pv.Var] == 0 {
			continue
		}
		cfg.Placements = append(cfg.Placements, models.Placement{
			Model:   pv.Model,
			Copy:    pv.Copy,
			Cabinet: frame.Bays[pv.Bay].Cabinet,
			Bay:     pv.Bay,
			Plane:   pv.Plane,
			Block:   pv.Block,
			Slot:    pv.Slot,
		})
	}
	sort.Slice(cfg.Placements, func(i, j int) bool {
		a, b := cfg.Placements[i], cfg.Placements[j]
		if a.Model != b.Model {
			return a.Model < b.Model
		}
		return a.Copy < b.Copy
	})

	cfg.TotalCost = round2(cfg.TotalCost)
	cfg.StandbyCurrent = round3(cfg.StandbyCurrent)
	cfg.AlarmCurrent = round3(cfg.AlarmCurrent)
	cfg.SupplyCapacity = round3(cfg.SupplyCapacity)
	if cfg.SupplyCapacity > 0 {
		cfg.UtilizationPercent = round2(cfg.AlarmCurrent / cfg.SupplyCapacity * 100)
	}

	cfg.Violations = append(cfg.Violations, Validate(cfg, o.catalog, demand)...)
	return cfg
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
