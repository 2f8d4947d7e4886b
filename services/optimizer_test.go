// ABOUTME: End-to-end optimizer tests over the built-in catalog
// ABOUTME: Covers representative panel scenarios and result invariants

package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/panel-tools/fireplan/catalog"
	"github.com/panel-tools/fireplan/models"
)

const solveBudget = 60 * time.Second

func newTestOptimizer() *Optimizer {
	return NewOptimizer(catalog.Default(), 1)
}

func solved(t *testing.T, cfg models.PanelConfig) {
	t.Helper()
	if cfg.SolverStatus != models.StatusOptimal && cfg.SolverStatus != models.StatusFeasible {
		t.Fatalf("Expected a solved configuration, got %s with violations %v",
			cfg.SolverStatus, cfg.Violations)
	}
	if len(cfg.Violations) != 0 {
		t.Errorf("Expected no violations, got %v", cfg.Violations)
	}
}

func TestOptimize_BasicPanel(t *testing.T) {
	// 150 loop devices and 100 horn-strobes on a basic panel
	input := models.PanelInput{
		Devices: models.DeviceCounts{
			SmokeDetector: 100,
			HeatDetector:  25,
			ManualStation: 10,
			MonitorModule: 5,
			ControlRelay:  10,
			HornStrobe:    100,
		},
	}

	cfg, err := newTestOptimizer().Optimize(context.Background(), input, solveBudget)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	solved(t, cfg)

	if cfg.PanelType != models.PanelBasic {
		t.Errorf("Expected basic panel, got %s", cfg.PanelType)
	}
	if got := cfg.CategoryQuantity(models.CategoryCPU); got != 1 {
		t.Errorf("Expected exactly 1 CPU, got %d", got)
	}
	if got := cfg.CategoryQuantity(models.CategoryDisplay); got < 1 {
		t.Errorf("Expected at least 1 display, got %d", got)
	}

	// Loop demand: the selected loop cards must cover 150 points
	capacity := 0
	for _, sel := range cfg.Selections {
		comp, err := catalog.Default().Lookup(sel.Model)
		if err != nil {
			t.Fatalf("Lookup %s failed: %v", sel.Model, err)
		}
		if comp.Category == models.CategoryLoopCard {
			capacity += comp.LoopCapacity * sel.Quantity
		}
	}
	if capacity < 150 {
		t.Errorf("Loop capacity %d below the 150 required points", capacity)
	}

	// 100 notification devices need 5 circuits at 3 per module
	circuits := 0
	for _, sel := range cfg.Selections {
		comp, _ := catalog.Default().Lookup(sel.Model)
		if comp.Category == models.CategoryNAC || comp.Category == models.CategoryIDNAC {
			circuits += comp.NACCircuits * sel.Quantity
		}
	}
	if circuits < 5 {
		t.Errorf("Notification circuits %d below the 5 required", circuits)
	}

	if cfg.TotalCost <= 0 {
		t.Errorf("Expected a positive total cost, got %v", cfg.TotalCost)
	}
	if cfg.AlarmCurrent > cfg.SupplyCapacity {
		t.Errorf("Alarm current %v exceeds supply capacity %v", cfg.AlarmCurrent, cfg.SupplyCapacity)
	}

	// Every selected placeable component is physically placed
	placed := make(map[string]int)
	for _, p := range cfg.Placements {
		placed[p.Model]++
	}
	for _, sel := range cfg.Selections {
		comp, _ := catalog.Default().Lookup(sel.Model)
		if !comp.Placeable() {
			continue
		}
		if placed[sel.Model] != sel.Quantity {
			t.Errorf("%s: selected %d but placed %d", sel.Model, sel.Quantity, placed[sel.Model])
		}
	}
}

func TestOptimize_DACTExactlyOne(t *testing.T) {
	cfg, err := newTestOptimizer().Optimize(context.Background(),
		models.PanelInput{Devices: models.DeviceCounts{HornStrobe: 10}}, solveBudget)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	solved(t, cfg)

	dacts := cfg.Quantity(catalog.ModelSDACT) + cfg.Quantity(catalog.ModelNoDACT)
	if dacts != 1 {
		t.Errorf("Expected exactly one DACT decision, got %d", dacts)
	}
}

func TestOptimize_Transponder(t *testing.T) {
	// A transponder carries power but no annunciation circuits
	input := models.PanelInput{
		Preferences: models.Preferences{PanelType: "transponder"},
	}

	cfg, err := newTestOptimizer().Optimize(context.Background(), input, solveBudget)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	solved(t, cfg)

	if got := cfg.CategoryQuantity(models.CategoryNAC) + cfg.CategoryQuantity(models.CategoryIDNAC); got != 0 {
		t.Errorf("Transponder must carry no notification modules, got %d", got)
	}

	primaries := 0
	for _, sel := range cfg.Selections {
		if comp, err := catalog.Default().Lookup(sel.Model); err == nil && comp.Primary {
			primaries += sel.Quantity
		}
	}
	if primaries < 1 {
		t.Error("Transponder requires a primary power supply")
	}
}

func TestOptimize_CarriesCabinetDoor(t *testing.T) {
	input := models.PanelInput{
		Preferences: models.Preferences{PanelType: "transponder", CabinetDoor: "glass"},
	}

	cfg, err := newTestOptimizer().Optimize(context.Background(), input, solveBudget)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	solved(t, cfg)

	if cfg.CabinetDoor != models.DoorGlass {
		t.Errorf("Expected the glass door carried through, got %q", cfg.CabinetDoor)
	}
}

func TestOptimize_PreferAddressableNAC(t *testing.T) {
	input := models.PanelInput{
		Devices:     models.DeviceCounts{HornStrobe: 40},
		Preferences: models.Preferences{PreferAddressableNAC: true},
	}

	cfg, err := newTestOptimizer().Optimize(context.Background(), input, solveBudget)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	solved(t, cfg)

	if got := cfg.Quantity(catalog.ModelNACConventional); got != 0 {
		t.Errorf("Conventional NAC forbidden under the preference, got %d", got)
	}
	if got := cfg.CategoryQuantity(models.CategoryIDNAC); got < 1 {
		t.Errorf("Expected IDNAC modules to cover the circuits, got %d", got)
	}
}

func TestOptimize_NDUNetworkMediaRatio(t *testing.T) {
	// A network panel needs media cards: at least one per network card,
	// at most two
	input := models.PanelInput{
		Devices:     models.DeviceCounts{SmokeDetector: 50, HornStrobe: 20},
		Preferences: models.Preferences{PanelType: "ndu"},
	}

	cfg, err := newTestOptimizer().Optimize(context.Background(), input, solveBudget)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	solved(t, cfg)

	net := cfg.CategoryQuantity(models.CategoryNetwork)
	media := cfg.CategoryQuantity(models.CategoryNetworkMedia)
	if net < 1 {
		t.Fatalf("NDU panel requires a network card, got %d", net)
	}
	if media < net || media > 2*net {
		t.Errorf("Media cards %d outside [%d, %d] for %d network cards",
			media, net, 2*net, net)
	}
}

func TestOptimize_VoiceEvacuation(t *testing.T) {
	// Voice evacuation pulls in the audio chain and enough amplification
	// for the requested wattage
	input := models.PanelInput{
		Devices: models.DeviceCounts{Speaker: 60, SpeakerStrobe: 15},
		Preferences: models.Preferences{
			VoiceEvacuation:     true,
			SpeakerWattageTotal: 150,
		},
	}

	cfg, err := newTestOptimizer().Optimize(context.Background(), input, solveBudget)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	solved(t, cfg)

	if cfg.PanelType != models.PanelNDUVoice {
		t.Errorf("Expected the voice-capable NDU build, got %s", cfg.PanelType)
	}
	if got := cfg.CategoryQuantity(models.CategoryAudioController); got < 1 {
		t.Errorf("Expected an audio controller, got %d", got)
	}
	if got := cfg.CategoryQuantity(models.CategoryAudioRiser); got < 1 {
		t.Errorf("Expected an audio riser, got %d", got)
	}

	watts := 0
	for _, sel := range cfg.Selections {
		comp, _ := catalog.Default().Lookup(sel.Model)
		if comp.Category == models.CategoryAmplifier {
			watts += comp.AmplifierWatts * sel.Quantity
		}
	}
	if watts < 150 {
		t.Errorf("Amplifier wattage %d below the 150 required", watts)
	}
}

func TestOptimize_FirePhones(t *testing.T) {
	// 12 jacks need 2 circuits, served by one phone controller plus its
	// riser adapter
	input := models.PanelInput{
		Devices:     models.DeviceCounts{FirePhoneJack: 12, Speaker: 20},
		Preferences: models.Preferences{VoiceEvacuation: true},
	}

	cfg, err := newTestOptimizer().Optimize(context.Background(), input, solveBudget)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	solved(t, cfg)

	if got := cfg.Quantity(catalog.ModelPhoneController); got < 1 {
		t.Errorf("Expected a phone controller, got %d", got)
	}
	if got := cfg.Quantity(catalog.ModelPhoneAdapter); got < 1 {
		t.Errorf("Expected a phone riser adapter, got %d", got)
	}
}

func TestOptimize_AddressCeilingInfeasible(t *testing.T) {
	// 200 addressable appliances exceed the 118 point budget outright
	input := models.PanelInput{
		Devices: models.DeviceCounts{AddressableHornStrobe: 200},
	}

	cfg, err := newTestOptimizer().Optimize(context.Background(), input, solveBudget)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}

	if cfg.SolverStatus != models.StatusInfeasible {
		t.Fatalf("Expected infeasible, got %s", cfg.SolverStatus)
	}
	if len(cfg.Selections) != 0 || cfg.TotalCost != 0 {
		t.Error("Infeasible result must carry no selections or cost")
	}
	if len(cfg.Violations) == 0 {
		t.Error("Infeasible result should explain itself in violations")
	}
}

func TestOptimize_TinyTimeLimitIsTimeout(t *testing.T) {
	input := models.PanelInput{
		Devices: models.DeviceCounts{SmokeDetector: 100, HornStrobe: 100},
	}

	cfg, err := newTestOptimizer().Optimize(context.Background(), input, time.Nanosecond)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}

	if cfg.SolverStatus != models.StatusTimeout {
		t.Fatalf("Expected timeout, got %s", cfg.SolverStatus)
	}
	if len(cfg.Selections) != 0 || cfg.TotalCost != 0 {
		t.Error("Timeout result must carry no selections or cost")
	}
	if len(cfg.Violations) == 0 {
		t.Error("Timeout result should explain itself in violations")
	}
}

func TestOptimize_RejectsBadInput(t *testing.T) {
	o := newTestOptimizer()

	_, err := o.Optimize(context.Background(),
		models.PanelInput{Devices: models.DeviceCounts{SmokeDetector: -5}}, solveBudget)
	if err == nil {
		t.Error("Expected error for negative device count")
	}

	_, err = o.Optimize(context.Background(),
		models.PanelInput{Preferences: models.Preferences{Protocol: "wrong"}}, solveBudget)
	if err == nil {
		t.Error("Expected error for unknown protocol")
	}

	_, err = o.Optimize(context.Background(),
		models.PanelInput{Preferences: models.Preferences{PanelType: "mystery"}}, solveBudget)
	if err == nil {
		t.Error("Expected error for unknown panel type")
	}
}

func TestOptimize_CostIsDeterministicAtOptimum(t *testing.T) {
	// Optimal total cost is a function of the input, not the search path
	input := models.PanelInput{Devices: models.DeviceCounts{HornStrobe: 10}}
	o := newTestOptimizer()

	first, err := o.Optimize(context.Background(), input, solveBudget)
	if err != nil {
		t.Fatalf("First optimize failed: %v", err)
	}
	second, err := o.Optimize(context.Background(), input, solveBudget)
	if err != nil {
		t.Fatalf("Second optimize failed: %v", err)
	}

	if first.SolverStatus != models.StatusOptimal || second.SolverStatus != models.StatusOptimal {
		t.Skipf("Optimality not proven within the budget (%s, %s)",
			first.SolverStatus, second.SolverStatus)
	}
	if first.TotalCost != second.TotalCost {
		t.Errorf("Optimal cost differs between runs: %v vs %v", first.TotalCost, second.TotalCost)
	}
}

func TestOptimize_CostGrowsWithDemand(t *testing.T) {
	o := newTestOptimizer()

	small, err := o.Optimize(context.Background(),
		models.PanelInput{Devices: models.DeviceCounts{SmokeDetector: 100, HornStrobe: 20}}, solveBudget)
	if err != nil {
		t.Fatalf("Small optimize failed: %v", err)
	}
	large, err := o.Optimize(context.Background(),
		models.PanelInput{Devices: models.DeviceCounts{SmokeDetector: 600, HornStrobe: 20}}, solveBudget)
	if err != nil {
		t.Fatalf("Large optimize failed: %v", err)
	}

	if small.SolverStatus != models.StatusOptimal || large.SolverStatus != models.StatusOptimal {
		t.Skipf("Optimality not proven within the budget (%s, %s)",
			small.SolverStatus, large.SolverStatus)
	}
	// Every configuration serving 600 points also serves 100, so the larger
	// demand can never be cheaper.
	if large.TotalCost < small.TotalCost {
		t.Errorf("600-point cost %v undercuts 100-point cost %v", large.TotalCost, small.TotalCost)
	}
}

func TestValidate_FlagsMissingMandatory(t *testing.T) {
	// A hand-built config with no CPU, display, or power must be flagged
	cfg := models.PanelConfig{
		PanelType:    models.PanelBasic,
		Selections:   []models.Selection{},
		SolverStatus: models.StatusOptimal,
	}

	violations := Validate(cfg, catalog.Default(), models.Demand{})
	if len(violations) == 0 {
		t.Fatal("Expected violations for an empty basic panel")
	}
}

func TestValidate_FlagsDemandShortfall(t *testing.T) {
	// One 250-point loop card cannot serve 400 points
	cfg := models.PanelConfig{
		PanelType: models.PanelTransponder,
		Selections: []models.Selection{
			{Model: catalog.ModelPSUPrimary, Category: models.CategoryPowerSupply, Quantity: 1},
			{Model: catalog.ModelMasterIDNet2, Category: models.CategoryLoopCard, Quantity: 1},
			{Model: catalog.ModelNoDACT, Category: models.CategorySystemConfig, Quantity: 1},
		},
	}

	violations := Validate(cfg, catalog.Default(), models.Demand{LoopDevices: 400})
	found := false
	for _, v := range violations {
		if strings.Contains(v, "loop capacity") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a loop capacity violation, got %v", violations)
	}
}
