// ABOUTME: Component catalog entry types for 4100ES-series panel hardware
// ABOUTME: Defines categories, mounting planes, and electrical characteristics

package models

// Category classifies a catalog component by function.
type Category string

const (
	CategoryCPU                 Category = "cpu"
	CategoryDisplay             Category = "display"
	CategoryNetwork             Category = "network"
	CategoryNetworkMedia        Category = "network-media"
	CategoryPowerSupply         Category = "power-supply"
	CategoryLoopCard            Category = "loop-card"
	CategoryNAC                 Category = "nac"
	CategoryIDNAC               Category = "idnac"
	CategoryAudioController     Category = "audio-controller"
	CategoryAudioInput          Category = "audio-input"
	CategoryAudioRiser          Category = "audio-riser"
	CategoryAmplifier           Category = "amplifier"
	CategoryPhone               Category = "phone"
	CategoryPhoneAdapter        Category = "phone-adapter"
	CategoryMicrophone          Category = "microphone"
	CategoryRegulator           Category = "regulator"
	CategoryZoneRelay           Category = "zone-relay"
	CategoryLEDSwitchController Category = "led-switch-controller"
	CategoryLEDSwitch           Category = "led-switch"
	CategoryInterface           Category = "interface"
	CategoryPrinter             Category = "printer"
	CategoryDACT                Category = "dact"
	CategoryRemoteCommand       Category = "remote-command"
	CategoryChassis             Category = "chassis"
	CategoryFiller              Category = "filler"
	CategoryDistribution        Category = "distribution"
	CategoryHarness             Category = "harness"
	CategorySystemConfig        Category = "system-config"
)

// Plane identifies a mounting surface within a bay.
type Plane string

const (
	PlaneBack       Plane = "back"
	PlaneMezzanine  Plane = "mezzanine"
	PlaneBehindDoor Plane = "behind-door"
	PlaneFrontDoor  Plane = "front-door"
)

// Generation marks a component as legacy 4100 or 4100ES hardware.
// Legacy and ES modules may not occupy adjacent front-door slots.
type Generation string

const (
	GenerationLegacy Generation = "legacy"
	GenerationES     Generation = "es"
)

// Component is one catalog entry: a purchasable module with its price,
// electrical characteristics, and physical mounting footprint.
//
// Planes lists the mounting surfaces the module accepts. Blocks lists the
// legal block anchors on block-addressed planes; a multi-letter entry like
// "AB" is a merged footprint covering each named block. Slots lists legal
// front-door slots. An empty Planes means the component is selectable but
// occupies no mounting space (configuration markers, chassis hardware).
type Component struct {
	Model       string   `json:"model"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Cost        float64  `json:"cost"`

	StandbyCurrent float64 `json:"standby_current"` // amps drawn in standby
	AlarmCurrent   float64 `json:"alarm_current"`   // amps drawn in alarm

	CardPowerConsumed float64 `json:"card_power_consumed"` // watts drawn from the card power bus
	CardPowerSupplied float64 `json:"card_power_supplied"` // watts contributed to the card power bus

	ConsumesAddress bool `json:"consumes_address"` // counts against the panel address space
	MaxQuantity     int  `json:"max_quantity"`

	Planes []Plane  `json:"planes,omitempty"`
	Blocks []string `json:"blocks,omitempty"`
	Slots  []int    `json:"slots,omitempty"`

	Generation Generation `json:"generation,omitempty"`

	// Category-specific capacities. Zero when not applicable.
	LoopCapacity   int     `json:"loop_capacity,omitempty"`   // addressable points per loop card
	NACCircuits    int     `json:"nac_circuits,omitempty"`    // notification circuits per NAC/IDNAC module
	SupplyCapacity float64 `json:"supply_capacity,omitempty"` // alarm amps a power supply can source
	AmplifierWatts int     `json:"amplifier_watts,omitempty"` // audio watts an amplifier can drive

	Primary bool `json:"primary,omitempty"` // primary (vs expansion) power supply
	Backup  bool `json:"backup,omitempty"`  // backup battery supply, requires a cooling fan
}

// Placeable reports whether the component occupies physical mounting space.
func (c Component) Placeable() bool {
	return len(c.Planes) > 0
}
