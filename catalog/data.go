// ABOUTME: Built-in 4100ES component catalog data
// ABOUTME: Model numbers, pricing, currents, and mounting footprints per entry

package catalog

import "github.com/panel-tools/fireplan/models"

var (
	backPlane     = []models.Plane{models.PlaneBack}
	mezzPlane     = []models.Plane{models.PlaneMezzanine}
	optionPlanes  = []models.Plane{models.PlaneMezzanine, models.PlaneBehindDoor}
	frontDoor     = []models.Plane{models.PlaneFrontDoor}
	singleBlocks  = []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	cardBlocks    = []string{"A", "B", "C", "D"}
	supplyBlocks  = []string{"EF", "GH"}
	operatorSlots = []int{1, 2, 5, 6}
	switchSlots   = []int{5, 6, 7, 8}
)

// builtin is the 4100ES-series catalog the service ships with.
var builtin = []models.Component{
	// ---- CPU and operator displays ----
	{
		Model: "4100-9701", Description: "ES master controller CPU",
		Category: models.CategoryCPU, Cost: 4500,
		StandbyCurrent: 0.125, AlarmCurrent: 0.125, CardPowerConsumed: 5,
		MaxQuantity: 2, Planes: frontDoor, Slots: []int{3},
		Generation: models.GenerationES,
	},
	{
		Model: "4100-7402", Description: "2x40 character LCD display",
		Category: models.CategoryDisplay, Cost: 850,
		StandbyCurrent: 0.040, AlarmCurrent: 0.080, CardPowerConsumed: 2,
		MaxQuantity: 4, Planes: frontDoor, Slots: operatorSlots,
		Generation: models.GenerationES,
	},
	{
		Model: "4100-7403", Description: "InfoAlarm touch screen display",
		Category: models.CategoryDisplay, Cost: 1600,
		StandbyCurrent: 0.060, AlarmCurrent: 0.120, CardPowerConsumed: 4,
		MaxQuantity: 2, Planes: frontDoor, Slots: operatorSlots,
		Generation: models.GenerationES,
	},

	// ---- Network ----
	{
		Model: "4100-6080", Description: "network interface card",
		Category: models.CategoryNetwork, Cost: 1100,
		StandbyCurrent: 0.050, AlarmCurrent: 0.050, CardPowerConsumed: 3,
		MaxQuantity: 2, Planes: frontDoor, Slots: []int{4},
		Generation: models.GenerationES,
	},
	{
		Model: "4100-6056", Description: "fiber-optic network media module",
		Category: models.CategoryNetworkMedia, Cost: 700,
		StandbyCurrent: 0.030, AlarmCurrent: 0.030, CardPowerConsumed: 1,
		MaxQuantity: 4, Planes: mezzPlane, Blocks: singleBlocks,
		Generation: models.GenerationES,
	},

	// ---- Power ----
	{
		Model: "4100-5311", Description: "primary system power supply",
		Category: models.CategoryPowerSupply, Cost: 1200,
		StandbyCurrent: 0.100, CardPowerSupplied: 45,
		SupplyCapacity: 9.0, Primary: true,
		MaxQuantity: 8, Planes: backPlane, Blocks: supplyBlocks,
		Generation: models.GenerationES,
	},
	{
		Model: "4100-5325", Description: "expansion power supply",
		Category: models.CategoryPowerSupply, Cost: 950,
		StandbyCurrent: 0.080, CardPowerSupplied: 25,
		SupplyCapacity: 5.0,
		MaxQuantity: 8, Planes: backPlane, Blocks: supplyBlocks,
		Generation: models.GenerationES,
	},
	{
		Model: "4100-5125", Description: "backup battery power supply",
		Category: models.CategoryPowerSupply, Cost: 1050,
		StandbyCurrent: 0.060, CardPowerSupplied: 10,
		Backup: true,
		MaxQuantity: 4, Planes: backPlane, Blocks: supplyBlocks,
		Generation: models.GenerationES,
	},
	{
		Model: "4100-0620", Description: "power supply cooling fan kit",
		Category: models.CategoryHarness, Cost: 90,
		StandbyCurrent: 0.020, AlarmCurrent: 0.060,
		MaxQuantity: 8, Planes: backPlane, Blocks: singleBlocks,
		Generation: models.GenerationES,
	},
	{
		Model: "4100-5126", Description: "power distribution module",
		Category: models.CategoryDistribution, Cost: 350,
		StandbyCurrent: 0.010, AlarmCurrent: 0.010, CardPowerConsumed: 1,
		MaxQuantity: 4, Planes: backPlane, Blocks: singleBlocks,
		Generation: models.GenerationES,
	},

	// ---- Signaling loop cards ----
	{
		Model: "4100-3101", Description: "IDNet2 loop card, 250 points",
		Category: models.CategoryLoopCard, Cost: 950,
		StandbyCurrent: 0.100, AlarmCurrent: 0.150, CardPowerConsumed: 3.5,
		LoopCapacity: 250,
		MaxQuantity:  10, Planes: backPlane, Blocks: cardBlocks,
		Generation: models.GenerationES,
	},
	{
		Model: "4100-3109", Description: "IDNet2 dual loop card, 500 points",
		Category: models.CategoryLoopCard, Cost: 1600,
		StandbyCurrent: 0.160, AlarmCurrent: 0.240, CardPowerConsumed: 5,
		LoopCapacity: 500,
		MaxQuantity:  5, Planes: backPlane, Blocks: cardBlocks,
		Generation: models.GenerationES,
	},
	{
		Model: "4100-3102", Description: "IDNet2 master loop controller",
		Category: models.CategoryLoopCard, Cost: 1250,
		StandbyCurrent: 0.120, AlarmCurrent: 0.180, CardPowerConsumed: 4,
		LoopCapacity: 250,
		MaxQuantity:  1, Planes: backPlane, Blocks: []string{"E"},
		Generation: models.GenerationES,
	},
	{
		Model: "4100-3105", Description: "MX digital master loop controller",
		Category: models.CategoryLoopCard, Cost: 1400,
		StandbyCurrent: 0.130, AlarmCurrent: 0.190, CardPowerConsumed: 4.5,
		LoopCapacity: 250,
		MaxQuantity:  1, Planes: backPlane, Blocks: []string{"AB"},
		Generation: models.GenerationES,
	},
	{
		Model: "4100-3106", Description: "MX loop expansion card, 250 points",
		Category: models.CategoryLoopCard, Cost: 1100,
		StandbyCurrent: 0.110, AlarmCurrent: 0.160, CardPowerConsumed: 3.5,
		LoopCapacity: 250,
		MaxQuantity:  10, Planes: backPlane, Blocks: cardBlocks,
		Generation: models.GenerationES,
	},

	// ---- Notification circuits ----
	{
		Model: "4100-5450", Description: "conventional NAC module, 3 circuits",
		Category: models.CategoryNAC, Cost: 900,
		StandbyCurrent: 0.080, AlarmCurrent: 0.350, CardPowerConsumed: 3,
		NACCircuits: 3,
		MaxQuantity: 8, Planes: backPlane, Blocks: cardBlocks,
		Generation: models.GenerationES,
	},
	{
		Model: "4100-5451", Description: "IDNAC addressable notification module, 3 circuits",
		Category: models.CategoryIDNAC, Cost: 1050,
		StandbyCurrent: 0.090, AlarmCurrent: 0.400, CardPowerConsumed: 3,
		NACCircuits: 3, ConsumesAddress: true,
		MaxQuantity: 8, Planes: backPlane, Blocks: cardBlocks,
		Generation: models.GenerationES,
	},

	// ---- Audio ----
	{
		Model: "4100-9620", Description: "analog audio controller",
		Category: models.CategoryAudioController, Cost: 1800,
		StandbyCurrent: 0.200, AlarmCurrent: 0.400, CardPowerConsumed: 6,
		MaxQuantity: 2, Planes: backPlane, Blocks: []string{"AB"},
		Generation: models.GenerationES,
	},
	{
		Model: "4100-1253", Description: "audio input interface",
		Category: models.CategoryAudioInput, Cost: 750,
		StandbyCurrent: 0.050, AlarmCurrent: 0.100, CardPowerConsumed: 2,
		MaxQuantity: 2, Planes: mezzPlane, Blocks: singleBlocks,
		Generation: models.GenerationES,
	},
	{
		Model: "4100-1251", Description: "audio riser module",
		Category: models.CategoryAudioRiser, Cost: 600,
		StandbyCurrent: 0.040, AlarmCurrent: 0.080, CardPowerConsumed: 1.5,
		MaxQuantity: 4, Planes: optionPlanes, Blocks: singleBlocks,
		Generation: models.GenerationES,
	},
	{
		Model: "4100-1248", Description: "100W audio amplifier",
		Category: models.CategoryAmplifier, Cost: 1300,
		StandbyCurrent: 0.150, AlarmCurrent: 1.500, CardPowerConsumed: 4,
		AmplifierWatts: 100,
		MaxQuantity:    8, Planes: backPlane, Blocks: []string{"CD", "EF", "GH"},
		Generation: models.GenerationES,
	},

	// ---- Fire fighter phones ----
	{
		Model: "4100-1270", Description: "fire fighter phone controller",
		Category: models.CategoryPhone, Cost: 750,
		StandbyCurrent: 0.060, AlarmCurrent: 0.200, CardPowerConsumed: 2,
		ConsumesAddress: true,
		MaxQuantity:     4, Planes: frontDoor, Slots: operatorSlots,
		Generation: models.GenerationLegacy,
	},
	{
		Model: "4100-1274", Description: "phone riser line adapter",
		Category: models.CategoryPhoneAdapter, Cost: 300,
		StandbyCurrent: 0.020, AlarmCurrent: 0.040, CardPowerConsumed: 1,
		MaxQuantity: 4, Planes: optionPlanes, Blocks: singleBlocks,
		Generation: models.GenerationLegacy,
	},

	// ---- Microphone ----
	{
		Model: "4100-1243", Description: "master microphone assembly",
		Category: models.CategoryMicrophone, Cost: 650,
		StandbyCurrent: 0.020, AlarmCurrent: 0.100, CardPowerConsumed: 1,
		MaxQuantity: 1, Planes: frontDoor, Slots: []int{7},
		Generation: models.GenerationLegacy,
	},

	// ---- Relays and regulation ----
	{
		Model: "4100-5128", Description: "25V regulated power module",
		Category: models.CategoryRegulator, Cost: 400,
		StandbyCurrent: 0.030, AlarmCurrent: 0.060, CardPowerConsumed: 2,
		MaxQuantity: 4, Planes: backPlane, Blocks: singleBlocks,
		Generation: models.GenerationES,
	},
	{
		Model: "4100-5013", Description: "zone relay module, 8 relays",
		Category: models.CategoryZoneRelay, Cost: 500,
		StandbyCurrent: 0.040, AlarmCurrent: 0.320, CardPowerConsumed: 2,
		ConsumesAddress: true,
		MaxQuantity:     10, Planes: backPlane, Blocks: cardBlocks,
		Generation: models.GenerationES,
	},

	// ---- LED/switch annunciation ----
	{
		Model: "4100-1288", Description: "LED/switch controller",
		Category: models.CategoryLEDSwitchController, Cost: 650,
		StandbyCurrent: 0.050, AlarmCurrent: 0.150, CardPowerConsumed: 2,
		MaxQuantity: 4, Planes: frontDoor, Slots: switchSlots,
		Generation: models.GenerationLegacy,
	},
	{
		Model: "4100-1289", Description: "expansion LED/switch controller",
		Category: models.CategoryLEDSwitchController, Cost: 450,
		StandbyCurrent: 0.040, AlarmCurrent: 0.120, CardPowerConsumed: 2,
		MaxQuantity: 4, Planes: frontDoor, Slots: switchSlots,
		Generation: models.GenerationLegacy,
	},
	{
		Model: "4100-1282", Description: "24 LED/switch module",
		Category: models.CategoryLEDSwitch, Cost: 250,
		StandbyCurrent: 0.020, AlarmCurrent: 0.200, CardPowerConsumed: 1,
		MaxQuantity: 8, Planes: frontDoor, Slots: switchSlots,
		Generation: models.GenerationLegacy,
	},

	// ---- Peripherals and reporting ----
	{
		Model: "4100-6038", Description: "RS-232 interface module",
		Category: models.CategoryInterface, Cost: 450,
		StandbyCurrent: 0.030, AlarmCurrent: 0.030, CardPowerConsumed: 1,
		MaxQuantity: 2, Planes: frontDoor, Slots: []int{4},
		Generation: models.GenerationES,
	},
	{
		Model: "4100-1293", Description: "panel-mounted service printer",
		Category: models.CategoryPrinter, Cost: 1250,
		StandbyCurrent: 0.100, AlarmCurrent: 0.300, CardPowerConsumed: 5,
		MaxQuantity: 1, Planes: frontDoor, Slots: []int{5, 6},
		Generation: models.GenerationLegacy,
	},
	{
		Model: "4100-6083", Description: "SDACT digital alarm communicator",
		Category: models.CategoryDACT, Cost: 550,
		StandbyCurrent: 0.040, AlarmCurrent: 0.080, CardPowerConsumed: 1.5,
		ConsumesAddress: true,
		MaxQuantity:     1, Planes: mezzPlane, Blocks: singleBlocks,
		Generation: models.GenerationES,
	},
	{
		Model: "4100-0632", Description: "no-DACT configuration marker",
		Category: models.CategorySystemConfig, Cost: 0,
		MaxQuantity: 1,
	},
	{
		Model: "4100-6078", Description: "remote command center interface",
		Category: models.CategoryRemoteCommand, Cost: 900,
		StandbyCurrent: 0.060, AlarmCurrent: 0.120, CardPowerConsumed: 2,
		MaxQuantity: 2, Planes: frontDoor, Slots: []int{1, 2},
		Generation: models.GenerationES,
	},
	{
		Model: "4100-2300", Description: "expansion bay chassis",
		Category: models.CategoryChassis, Cost: 700,
		MaxQuantity: 8,
	},
	{
		Model: "4100-2301", Description: "blank filler plate",
		Category: models.CategoryFiller, Cost: 40,
		MaxQuantity: 24, Planes: frontDoor, Slots: []int{1, 2, 3, 4, 5, 6, 7, 8},
		Generation: models.GenerationES,
	},
}
