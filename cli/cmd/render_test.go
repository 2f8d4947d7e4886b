// ABOUTME: Tests for result rendering
// ABOUTME: Panel ordering, selection lines, and violation display

package cmd

import (
	"strings"
	"testing"

	"github.com/panel-tools/fireplan/models"
)

func sampleConfig() models.PanelConfig {
	return models.PanelConfig{
		PanelType:    models.PanelBasic,
		SolverStatus: models.StatusOptimal,
		TotalCost:    9600.00,
		Selections: []models.Selection{
			{Model: "4100-9701", Description: "ES master controller CPU",
				Category: models.CategoryCPU, Quantity: 1, UnitCost: 4500, ExtendedCost: 4500},
		},
		Placements: []models.Placement{
			{Model: "4100-9701", Copy: 0, Cabinet: 0, Bay: 0, Plane: models.PlaneFrontDoor, Slot: 3},
		},
	}
}

func TestRenderPanel_ShowsSelectionsAndPlacements(t *testing.T) {
	out := renderPanel("main", sampleConfig())

	for _, want := range []string{"main", "4100-9701", "OPTIMAL", "slot 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderPanel_ShowsViolations(t *testing.T) {
	cfg := models.PanelConfig{
		PanelType:    models.PanelBasic,
		SolverStatus: models.StatusInfeasible,
		Violations:   []string{"no configuration satisfies the requested devices"},
	}

	out := renderPanel("p", cfg)
	if !strings.Contains(out, "no configuration satisfies") {
		t.Errorf("Expected the violation in the output:\n%s", out)
	}
	if !strings.Contains(out, "INFEASIBLE") {
		t.Errorf("Expected the status in the output:\n%s", out)
	}
}

func TestRenderResults_StablePanelOrder(t *testing.T) {
	resp := &models.OptimizeResponse{
		Results: map[string]models.PanelConfig{
			"zeta":  sampleConfig(),
			"alpha": sampleConfig(),
		},
	}

	out := renderResults(resp)
	if strings.Index(out, "alpha") > strings.Index(out, "zeta") {
		t.Error("Expected panels rendered in id order")
	}
}
