// ABOUTME: Optimization request types: per-panel device counts and preferences
// ABOUTME: Preferences parse from a loose JSON map, ignoring unrecognized keys

package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// DeviceCounts is the per-panel field-device bill of quantities.
// Every count defaults to zero when absent from the request.
type DeviceCounts struct {
	SmokeDetector          int `json:"smoke_detector"`
	HeatDetector           int `json:"heat_detector"`
	DuctDetector           int `json:"duct_detector"`
	BeamDetector           int `json:"beam_detector"`
	ManualStation          int `json:"manual_station"`
	HornStrobe             int `json:"horn_strobe"`
	StrobeOnly             int `json:"strobe_only"`
	HornOnly               int `json:"horn_only"`
	AddressableHornStrobe  int `json:"addressable_horn_strobe"`
	AddressableStrobe      int `json:"addressable_strobe"`
	Speaker                int `json:"speaker"`
	SpeakerStrobe          int `json:"speaker_strobe"`
	MonitorModule          int `json:"monitor_module"`
	ControlRelay           int `json:"control_relay"`
	FirePhoneJack          int `json:"fire_phone_jack"`
	RemoteAnnunciatorCount int `json:"remote_annunciator"`
}

// LoopDevices counts the addressable initiating devices that occupy
// signaling-loop points.
func (d DeviceCounts) LoopDevices() int {
	return d.SmokeDetector + d.HeatDetector + d.DuctDetector + d.BeamDetector +
		d.ManualStation + d.MonitorModule + d.ControlRelay
}

// NotificationDevices counts the appliances driven by notification circuits.
func (d DeviceCounts) NotificationDevices() int {
	return d.HornStrobe + d.StrobeOnly + d.HornOnly +
		d.AddressableHornStrobe + d.AddressableStrobe + d.SpeakerStrobe
}

// AddressableNotification counts the notification appliances that consume
// panel addresses in addition to circuit capacity.
func (d DeviceCounts) AddressableNotification() int {
	return d.AddressableHornStrobe + d.AddressableStrobe
}

// Validate rejects negative device counts.
func (d DeviceCounts) Validate() error {
	counts := map[string]int{
		"smoke_detector":          d.SmokeDetector,
		"heat_detector":           d.HeatDetector,
		"duct_detector":           d.DuctDetector,
		"beam_detector":           d.BeamDetector,
		"manual_station":          d.ManualStation,
		"horn_strobe":             d.HornStrobe,
		"strobe_only":             d.StrobeOnly,
		"horn_only":               d.HornOnly,
		"addressable_horn_strobe": d.AddressableHornStrobe,
		"addressable_strobe":      d.AddressableStrobe,
		"speaker":                 d.Speaker,
		"speaker_strobe":          d.SpeakerStrobe,
		"monitor_module":          d.MonitorModule,
		"control_relay":           d.ControlRelay,
		"fire_phone_jack":         d.FirePhoneJack,
		"remote_annunciator":      d.RemoteAnnunciatorCount,
	}
	for key, v := range counts {
		if v < 0 {
			return fmt.Errorf("device count %s must be >= 0, got %d", key, v)
		}
	}
	return nil
}

// Preferences carries the derived design constraints for one panel.
// It decodes from a JSON object in which every key is optional and
// unrecognized keys are ignored; absent keys mean "not required".
type Preferences struct {
	Protocol             string  // "idnet2" (default) or "mx"
	VoiceEvacuation      bool    //
	PreferAddressableNAC bool    // forbids conventional NAC modules
	DisplayType          string  // "2x40_lcd" (default) or "touch_screen"
	FirePhoneRequired    bool    //
	FirePhoneCircuits    int     //
	NetworkConnection    bool    //
	SpeakerWattageTotal  float64 // total audio watts to amplify
	HasAudioControl      bool    // remote annunciator with audio controls
	PanelType            string  // see ResolvePanelType
	MaxCabinets          int     // 0 means service default
	CabinetDoor          string  // "solid" (default) or "glass"
}

// prefWire is the loose JSON shape Preferences decode from.
type prefWire struct {
	Protocol             *string  `json:"protocol"`
	VoiceEvacuation      *bool    `json:"voice_evacuation"`
	PreferAddressableNAC *bool    `json:"prefer_addressable_nac"`
	DisplayType          *string  `json:"display_type"`
	FirePhoneRequired    *bool    `json:"fire_phone_required"`
	FirePhoneCircuits    *float64 `json:"fire_phone_circuits"`
	NetworkConnection    *bool    `json:"network_connection"`
	SpeakerWattageTotal  *float64 `json:"speaker_wattage_total"`
	HasAudioControl      *bool    `json:"has_audio_control"`
	PanelType            *string  `json:"panel_type"`
	MaxCabinets          *float64 `json:"max_cabinets"`
	CabinetDoor          *string  `json:"cabinet_door"`
}

// UnmarshalJSON decodes preferences from a JSON object, tolerating extra
// keys so callers can pass their full constraint map through unchanged.
func (p *Preferences) UnmarshalJSON(data []byte) error {
	var w prefWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decoding preferences: %w", err)
	}
	*p = Preferences{}
	if w.Protocol != nil {
		p.Protocol = *w.Protocol
	}
	if w.VoiceEvacuation != nil {
		p.VoiceEvacuation = *w.VoiceEvacuation
	}
	if w.PreferAddressableNAC != nil {
		p.PreferAddressableNAC = *w.PreferAddressableNAC
	}
	if w.DisplayType != nil {
		p.DisplayType = *w.DisplayType
	}
	if w.FirePhoneRequired != nil {
		p.FirePhoneRequired = *w.FirePhoneRequired
	}
	if w.FirePhoneCircuits != nil {
		p.FirePhoneCircuits = int(*w.FirePhoneCircuits)
	}
	if w.NetworkConnection != nil {
		p.NetworkConnection = *w.NetworkConnection
	}
	if w.SpeakerWattageTotal != nil {
		p.SpeakerWattageTotal = *w.SpeakerWattageTotal
	}
	if w.HasAudioControl != nil {
		p.HasAudioControl = *w.HasAudioControl
	}
	if w.PanelType != nil {
		p.PanelType = *w.PanelType
	}
	if w.MaxCabinets != nil {
		p.MaxCabinets = int(*w.MaxCabinets)
	}
	if w.CabinetDoor != nil {
		p.CabinetDoor = *w.CabinetDoor
	}
	return nil
}

// DoorType resolves the cabinet door preference, defaulting to solid.
func (p Preferences) DoorType() DoorType {
	if p.CabinetDoor == string(DoorGlass) {
		return DoorGlass
	}
	return DoorSolid
}

// Validate rejects out-of-range preference values. Unknown panel types are
// caught later by ResolvePanelType so the error can name the value.
func (p Preferences) Validate() error {
	switch p.Protocol {
	case "", "idnet2", "mx":
	default:
		return fmt.Errorf("unknown protocol %q", p.Protocol)
	}
	switch p.DisplayType {
	case "", "2x40_lcd", "touch_screen":
	default:
		return fmt.Errorf("unknown display type %q", p.DisplayType)
	}
	if p.FirePhoneCircuits < 0 {
		return fmt.Errorf("fire_phone_circuits must be >= 0, got %d", p.FirePhoneCircuits)
	}
	if p.SpeakerWattageTotal < 0 || math.IsNaN(p.SpeakerWattageTotal) || math.IsInf(p.SpeakerWattageTotal, 0) {
		return fmt.Errorf("speaker_wattage_total must be a finite value >= 0")
	}
	if p.MaxCabinets < 0 || p.MaxCabinets > 8 {
		return fmt.Errorf("max_cabinets must be between 1 and 8, got %d", p.MaxCabinets)
	}
	switch p.CabinetDoor {
	case "", string(DoorSolid), string(DoorGlass):
	default:
		return fmt.Errorf("unknown cabinet door %q", p.CabinetDoor)
	}
	return nil
}

// PanelInput pairs the device counts and preferences for one panel.
type PanelInput struct {
	Devices     DeviceCounts `json:"devices"`
	Preferences Preferences  `json:"preferences"`
}

// OptimizeRequest is the batch request body: one entry per panel, keyed by
// a caller-chosen panel id, solved independently and concurrently.
type OptimizeRequest struct {
	Panels           map[string]PanelInput `json:"panels"`
	TimeLimitSeconds float64               `json:"time_limit_seconds,omitempty"`
}

// OptimizeResponse maps each panel id to its solved configuration.
type OptimizeResponse struct {
	Results map[string]PanelConfig `json:"results"`
}
