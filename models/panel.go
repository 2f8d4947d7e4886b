// ABOUTME: Panel type and bay role definitions
// ABOUTME: Resolves the requested panel type from preference inputs

package models

import "fmt"

// PanelType selects which rule set governs a panel configuration.
type PanelType string

const (
	PanelBasic                   PanelType = "basic"
	PanelRedundant               PanelType = "redundant"
	PanelNDU                     PanelType = "ndu"
	PanelNDUVoice                PanelType = "ndu_with_voice"
	PanelTransponder             PanelType = "transponder"
	PanelRemoteAnnunciator       PanelType = "remote_annunciator"
	PanelBasicRemoteAnnunciator  PanelType = "basic_remote_annunciator"
	PanelRemoteAnnunciatorWithIC PanelType = "remote_annunciator_with_incident_commander"
)

// DoorType is the cabinet door style, carried through from the request to
// the layout and the result.
type DoorType string

const (
	DoorSolid DoorType = "solid"
	DoorGlass DoorType = "glass"
)

// BayRole is a function a bay can be assigned.
type BayRole string

const (
	RoleMasterController  BayRole = "master-controller"
	RoleAudioController   BayRole = "audio-controller"
	RoleIncidentCommander BayRole = "incident-commander"
	RoleExpansion         BayRole = "expansion"
)

// RemoteAnnunciator reports whether the panel type is one of the
// remote-annunciator variants, which carry a reduced mandatory set.
func (p PanelType) RemoteAnnunciator() bool {
	switch p {
	case PanelRemoteAnnunciator, PanelBasicRemoteAnnunciator, PanelRemoteAnnunciatorWithIC:
		return true
	}
	return false
}

// ResolvePanelType maps the panel_type preference to a PanelType,
// defaulting to a basic panel when unset. Voice evacuation upgrades an
// unspecified or basic panel to the voice-capable NDU build.
func ResolvePanelType(p Preferences) (PanelType, error) {
	switch p.PanelType {
	case "":
		if p.VoiceEvacuation {
			return PanelNDUVoice, nil
		}
		if p.NetworkConnection {
			return PanelNDU, nil
		}
		return PanelBasic, nil
	case string(PanelBasic), string(PanelRedundant), string(PanelNDU),
		string(PanelNDUVoice), string(PanelTransponder),
		string(PanelRemoteAnnunciator), string(PanelBasicRemoteAnnunciator),
		string(PanelRemoteAnnunciatorWithIC):
		return PanelType(p.PanelType), nil
	}
	return "", fmt.Errorf("unknown panel type %q", p.PanelType)
}
