// ABOUTME: Panel optimization orchestration: encode, solve, extract, validate
// ABOUTME: Each call is a pure batch computation over the shared read-only catalog

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/panel-tools/fireplan/catalog"
	"github.com/panel-tools/fireplan/layout"
	"github.com/panel-tools/fireplan/models"
	"github.com/panel-tools/fireplan/rules"
	"github.com/panel-tools/fireplan/solver"
)

// Optimizer solves panel configurations against one catalog. It holds no
// per-call state; concurrent Optimize calls need no coordination.
type Optimizer struct {
	catalog     *catalog.Catalog
	maxCabinets int
}

// NewOptimizer builds an optimizer over a catalog. maxCabinets is the
// default frame size when a panel's preferences do not override it.
func NewOptimizer(cat *catalog.Catalog, maxCabinets int) *Optimizer {
	return &Optimizer{catalog: cat, maxCabinets: maxCabinets}
}

// Optimize selects and places components for one panel, minimizing cost
// within the time limit. Input and catalog errors are returned; infeasible
// and timeout outcomes are expected results, reported in the config's
// solver status, never as errors.
func (o *Optimizer) Optimize(ctx context.Context, input models.PanelInput, timeLimit time.Duration) (models.PanelConfig, error) {
	if err := input.Devices.Validate(); err != nil {
		return models.PanelConfig{}, err
	}
	if err := input.Preferences.Validate(); err != nil {
		return models.PanelConfig{}, err
	}

	panelType, err := models.ResolvePanelType(input.Preferences)
	if err != nil {
		return models.PanelConfig{}, err
	}

	cabinets := input.Preferences.MaxCabinets
	if cabinets == 0 {
		cabinets = o.maxCabinets
	}
	frame, err := layout.Build(panelType, cabinets, input.Preferences.DoorType())
	if err != nil {
		return models.PanelConfig{}, err
	}

	demand := models.DeriveDemand(input.Devices, input.Preferences)

	enc, err := rules.Encode(&rules.Context{
		Panel:   panelType,
		Prefs:   input.Preferences,
		Devices: input.Devices,
		Demand:  demand,
		Catalog: o.catalog,
		Frame:   frame,
	})
	if err != nil {
		return models.PanelConfig{}, fmt.Errorf("encoding %s panel: %w", panelType, err)
	}

	solveCtx := ctx
	if timeLimit > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, timeLimit)
		defer cancel()
	}

	outcome := solver.Solve(solveCtx, enc.Model)
	observeSolve(string(outcome.Status), outcome.Elapsed)

	slog.Info("panel solved",
		"panel_type", panelType,
		"status", outcome.Status,
		"iterations", outcome.Iterations,
		"elapsed_ms", outcome.Elapsed.Milliseconds())

	cfg := o.extract(panelType, frame, enc, outcome, demand)
	return cfg, nil
}
