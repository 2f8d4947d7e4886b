// ABOUTME: Demand derivation from device counts and preferences
// ABOUTME: Pure arithmetic that sizes loops, circuits, amplification, and phones

package models

import "math"

// Sizing constants for demand arithmetic.
const (
	// DevicesPerCircuit is how many notification appliances one circuit drives.
	DevicesPerCircuit = 20
	// CircuitsPerPhoneModule is how many phone circuits one controller serves.
	CircuitsPerPhoneModule = 3
	// JacksPerPhoneCircuit is how many phone jacks share one circuit.
	JacksPerPhoneCircuit = 10
	// MaxAddressablePoints is the panel-wide address space.
	MaxAddressablePoints = 118
	// MaxLoopCards caps signaling-loop cards per panel.
	MaxLoopCards = 10
	// MaxInternalModules caps address-consuming internal modules per panel.
	MaxInternalModules = 20
	// MaxPowerSuppliesPerCabinet caps supplies mounted in one cabinet.
	MaxPowerSuppliesPerCabinet = 4
	// ZoneRelaysPerRegulator is how many zone-relay modules one 25V regulator feeds.
	ZoneRelaysPerRegulator = 5
)

// Demand is the sized requirement set derived from one panel's inputs.
// It is what the selection rules bound quantities against.
type Demand struct {
	LoopDevices      int     // addressable points the loop cards must cover
	NACCircuits      int     // notification circuits required
	AddressedDevices int     // field devices that consume panel addresses
	PhoneCircuits    int     // fire-phone circuits required
	PhoneModules     int     // minimum phone controllers (0 when phones not required)
	SpeakerWatts     int     // audio watts the amplifiers must cover
	SpeakerWattsRaw  float64 // as requested, before rounding up
}

// DeriveDemand sizes the requirement set for one panel.
//
// Notification circuits come from appliance count at DevicesPerCircuit per
// circuit. Phone circuits come from the explicit preference when given,
// otherwise from jack count at JacksPerPhoneCircuit per circuit. Speaker
// wattage rounds up to whole watts.
func DeriveDemand(d DeviceCounts, p Preferences) Demand {
	dem := Demand{
		LoopDevices: d.LoopDevices(),
		NACCircuits: ceilDiv(d.NotificationDevices(), DevicesPerCircuit),
		// Remote annunciators sit on the panel bus and hold an address each.
		AddressedDevices: d.AddressableNotification() + d.RemoteAnnunciatorCount,
		SpeakerWattsRaw:  p.SpeakerWattageTotal,
	}

	dem.PhoneCircuits = p.FirePhoneCircuits
	if dem.PhoneCircuits == 0 && d.FirePhoneJack > 0 {
		dem.PhoneCircuits = ceilDiv(d.FirePhoneJack, JacksPerPhoneCircuit)
	}
	if p.FirePhoneRequired || dem.PhoneCircuits > 0 {
		dem.PhoneModules = ceilDiv(dem.PhoneCircuits, CircuitsPerPhoneModule)
		if dem.PhoneModules < 1 {
			dem.PhoneModules = 1
		}
	}

	if p.VoiceEvacuation {
		dem.SpeakerWatts = int(math.Ceil(p.SpeakerWattageTotal))
		if dem.SpeakerWatts == 0 && d.Speaker+d.SpeakerStrobe > 0 {
			// No wattage given: assume 2W taps on every speaker.
			dem.SpeakerWatts = 2 * (d.Speaker + d.SpeakerStrobe)
		}
	}

	return dem
}

func ceilDiv(n, per int) int {
	if n <= 0 || per <= 0 {
		return 0
	}
	return (n + per - 1) / per
}
