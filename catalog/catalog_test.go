// ABOUTME: Tests for the component catalog
// ABOUTME: Validates construction, lookup, ordering, and the built-in data

package catalog

import (
	"errors"
	"testing"

	"github.com/panel-tools/fireplan/models"
)

func TestNew_RejectsDuplicateModel(t *testing.T) {
	_, err := New([]models.Component{
		{Model: "4100-0001", MaxQuantity: 1},
		{Model: "4100-0001", MaxQuantity: 2},
	})
	if err == nil {
		t.Error("Expected error for duplicate model number")
	}
}

func TestNew_RejectsEmptyModel(t *testing.T) {
	_, err := New([]models.Component{{Description: "nameless", MaxQuantity: 1}})
	if err == nil {
		t.Error("Expected error for missing model number")
	}
}

func TestNew_RejectsNonPositiveMaxQuantity(t *testing.T) {
	_, err := New([]models.Component{{Model: "4100-0001", MaxQuantity: 0}})
	if err == nil {
		t.Error("Expected error for zero max quantity")
	}
}

func TestLookup(t *testing.T) {
	c, err := New([]models.Component{
		{Model: "4100-0002", Description: "thing", MaxQuantity: 3},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	comp, err := c.Lookup("4100-0002")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if comp.Description != "thing" {
		t.Errorf("Expected description 'thing', got %q", comp.Description)
	}

	_, err = c.Lookup("4100-9999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestAll_StableModelOrder(t *testing.T) {
	c, err := New([]models.Component{
		{Model: "4100-0300", MaxQuantity: 1},
		{Model: "4100-0100", MaxQuantity: 1},
		{Model: "4100-0200", MaxQuantity: 1},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	all := c.All()
	if len(all) != 3 {
		t.Fatalf("Expected 3 components, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Model >= all[i].Model {
			t.Errorf("All() out of order: %s before %s", all[i-1].Model, all[i].Model)
		}
	}
}

func TestByCategory(t *testing.T) {
	c := Default()
	for _, comp := range c.ByCategory(models.CategoryPowerSupply) {
		if comp.Category != models.CategoryPowerSupply {
			t.Errorf("ByCategory returned %s with category %s", comp.Model, comp.Category)
		}
	}
	if len(c.ByCategory(models.CategoryPowerSupply)) == 0 {
		t.Error("Expected at least one power supply in the built-in catalog")
	}
}

func TestDefault_WellKnownModelsResolve(t *testing.T) {
	// Every model constant the rules reference must exist in the built-in data
	wellKnown := []string{
		ModelCPU, ModelLCDDisplay, ModelTouchDisplay,
		ModelNetworkCard, ModelNetMedia,
		ModelPSUPrimary, ModelPSUExpansion, ModelPSUBackup, ModelFanKit, ModelDistribution,
		ModelLoopIDNet2, ModelLoopIDNet2Dual, ModelMasterIDNet2, ModelMasterMX, ModelLoopMX,
		ModelNACConventional, ModelIDNAC,
		ModelAudioController, ModelAudioInput, ModelAudioRiser, ModelAmplifier100W,
		ModelPhoneController, ModelPhoneAdapter, ModelMicrophone,
		ModelRegulator25V, ModelZoneRelay,
		ModelLEDController, ModelLEDControllerExp, ModelLEDSwitchModule,
		ModelRS232, ModelPrinter, ModelSDACT, ModelNoDACT,
		ModelRemoteCommand, ModelBayChassis, ModelFillerPlate,
	}

	c := Default()
	for _, model := range wellKnown {
		if _, err := c.Lookup(model); err != nil {
			t.Errorf("Well-known model %s missing from built-in catalog: %v", model, err)
		}
	}
}

func TestDefault_EntriesAreSane(t *testing.T) {
	for _, comp := range Default().All() {
		if comp.Cost < 0 {
			t.Errorf("%s has negative cost %v", comp.Model, comp.Cost)
		}
		if comp.StandbyCurrent < 0 || comp.AlarmCurrent < 0 {
			t.Errorf("%s has negative current draw", comp.Model)
		}
		if comp.MaxQuantity <= 0 {
			t.Errorf("%s has non-positive max quantity %d", comp.Model, comp.MaxQuantity)
		}
		// A placeable component needs at least one mount option
		if comp.Placeable() && len(comp.Planes) == 0 {
			t.Errorf("%s is placeable but lists no planes", comp.Model)
		}
	}
}

func TestDefault_Shared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the shared instance")
	}
}
