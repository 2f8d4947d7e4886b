// ABOUTME: Well-known model numbers referenced by rules and validation
// ABOUTME: Every constant here must resolve in the built-in catalog

package catalog

const (
	ModelCPU          = "4100-9701"
	ModelLCDDisplay   = "4100-7402"
	ModelTouchDisplay = "4100-7403"

	ModelNetworkCard = "4100-6080"
	ModelNetMedia    = "4100-6056"

	ModelPSUPrimary   = "4100-5311"
	ModelPSUExpansion = "4100-5325"
	ModelPSUBackup    = "4100-5125"
	ModelFanKit       = "4100-0620"
	ModelDistribution = "4100-5126"

	ModelLoopIDNet2     = "4100-3101"
	ModelLoopIDNet2Dual = "4100-3109"
	ModelMasterIDNet2   = "4100-3102"
	ModelMasterMX       = "4100-3105"
	ModelLoopMX         = "4100-3106"

	ModelNACConventional = "4100-5450"
	ModelIDNAC           = "4100-5451"

	ModelAudioController = "4100-9620"
	ModelAudioInput      = "4100-1253"
	ModelAudioRiser      = "4100-1251"
	ModelAmplifier100W   = "4100-1248"

	ModelPhoneController = "4100-1270"
	ModelPhoneAdapter    = "4100-1274"
	ModelMicrophone      = "4100-1243"

	ModelRegulator25V = "4100-5128"
	ModelZoneRelay    = "4100-5013"

	ModelLEDController    = "4100-1288"
	ModelLEDControllerExp = "4100-1289"
	ModelLEDSwitchModule  = "4100-1282"

	ModelRS232   = "4100-6038"
	ModelPrinter = "4100-1293"
	ModelSDACT   = "4100-6083"
	ModelNoDACT  = "4100-0632"

	ModelRemoteCommand = "4100-6078"
	ModelBayChassis    = "4100-2300"
	ModelFillerPlate   = "4100-2301"
)
