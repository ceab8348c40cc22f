package reconcile

import "slices"

// FallbackEntry is one row of the static service schema.
type FallbackEntry struct {
	Service  string
	Required []string
	Optional []string
}

var sensorStatus = []string{"Name", "StatusActive", "StatusFault", "StatusTampered", "StatusLowBattery"}

func withStatus(primary ...string) []string {
	return append(slices.Clone(primary), sensorStatus...)
}

// fallbackTable mirrors the HomeKit Accessory Protocol service definitions.
var fallbackTable = []FallbackEntry{
	{
		Service:  "AccessoryInformation",
		Required: []string{"Identify", "Manufacturer", "Model", "Name", "SerialNumber", "FirmwareVersion"},
		Optional: []string{"HardwareVersion", "SoftwareVersion"},
	},
	{
		Service:  "AirPurifier",
		Required: []string{"Active", "CurrentAirPurifierState", "TargetAirPurifierState"},
		Optional: []string{"LockPhysicalControls", "Name", "SwingMode", "RotationSpeed"},
	},
	{
		Service:  "AirQualitySensor",
		Required: []string{"AirQuality"},
		Optional: append([]string{
			"OzoneDensity", "NitrogenDioxideDensity", "SulphurDioxideDensity",
			"PM2_5Density", "PM10Density", "VolatileOrganicCompoundDensity",
		}, sensorStatus...),
	},
	{
		Service:  "Battery",
		Required: []string{"BatteryLevel", "ChargingState", "StatusLowBattery"},
		Optional: []string{"Name"},
	},
	{
		Service:  "CameraControl",
		Required: []string{"PowerState"},
		Optional: []string{
			"CurrentHorizontalTilt", "TargetHorizontalTilt", "CurrentVerticalTilt", "TargetVerticalTilt",
			"NightVision", "OpticalZoom", "DigitalZoom", "ImageRotation", "ImageMirroring", "Name",
		},
	},
	{
		Service: "CameraRTPStreamManagement",
		Required: []string{
			"SupportedVideoStreamConfiguration", "SupportedAudioStreamConfiguration",
			"SupportedRTPConfiguration", "SelectedStreamConfiguration", "StreamingStatus", "SetupStreamEndpoint",
		},
		Optional: []string{"Name"},
	},
	{
		Service:  "CarbonDioxideSensor",
		Required: []string{"CarbonDioxideDetected"},
		Optional: append([]string{"CarbonDioxideLevel", "CarbonDioxidePeakLevel"}, sensorStatus...),
	},
	{
		Service:  "CarbonMonoxideSensor",
		Required: []string{"CarbonMonoxideDetected"},
		Optional: append([]string{"CarbonMonoxideLevel", "CarbonMonoxidePeakLevel"}, sensorStatus...),
	},
	{Service: "ContactSensor", Required: []string{"ContactState"}, Optional: withStatus()},
	{
		Service:  "Door",
		Required: []string{"CurrentPosition", "PositionState", "TargetPosition"},
		Optional: []string{"Name", "HoldPosition", "ObstructionDetected"},
	},
	{Service: "Doorbell", Required: []string{"InputEvent"}, Optional: []string{"Brightness", "Volume", "Name"}},
	{
		Service:  "Fan",
		Required: []string{"Active"},
		Optional: []string{
			"CurrentFanState", "TargetFanState", "LockPhysicalControls", "Name",
			"RotationDirection", "RotationSpeed", "SwingMode",
		},
	},
	{Service: "Faucet", Required: []string{"Active"}, Optional: []string{"Name", "StatusFault"}},
	{
		Service:  "FilterMaintenance",
		Required: []string{"FilterChangeIndication"},
		Optional: []string{"FilterLifeLevel", "FilterResetChangeIndication", "Name"},
	},
	{
		Service:  "GarageDoorOpener",
		Required: []string{"CurrentDoorState", "TargetDoorState", "ObstructionDetected"},
		Optional: []string{"CurrentLockMechanismState", "TargetLockMechanismState", "Name"},
	},
	{
		Service:  "HeaterCooler",
		Required: []string{"Active", "CurrentHeaterCoolerState", "TargetHeaterCoolerState", "CurrentTemperature"},
		Optional: []string{
			"LockPhysicalControls", "Name", "SwingMode", "CoolingThreshold",
			"HeatingThreshold", "TemperatureUnits", "RotationSpeed",
		},
	},
	{
		Service: "HumidifierDehumidifier",
		Required: []string{
			"CurrentRelativeHumidity", "CurrentHumidifierDehumidifierState",
			"TargetHumidifierDehumidifierState", "Active",
		},
		Optional: []string{
			"LockPhysicalControls", "Name", "SwingMode", "WaterLevel",
			"DehumidifierThreshold", "HumidifierThreshold", "RotationSpeed",
		},
	},
	{Service: "HumiditySensor", Required: []string{"CurrentRelativeHumidity"}, Optional: withStatus()},
	{
		Service:  "IrrigationSystem",
		Required: []string{"Active", "ProgramMode", "InUse"},
		Optional: []string{"Name", "RemainingDuration", "StatusFault"},
	},
	{Service: "Label", Required: []string{"LabelNamespace"}},
	{Service: "LeakSensor", Required: []string{"LeakDetected"}, Optional: withStatus()},
	{Service: "LightSensor", Required: []string{"CurrentLightLevel"}, Optional: withStatus()},
	{
		Service:  "Lightbulb",
		Required: []string{"PowerState"},
		Optional: []string{"Brightness", "Hue", "Saturation", "ColorTemperature", "Name"},
	},
	{
		Service:  "LockManagement",
		Required: []string{"LockManagementControlPoint", "Version"},
		Optional: []string{
			"Logs", "AudioFeedback", "LockManagementAutoSecureTimeout", "AdminOnlyAccess",
			"LockLastKnownAction", "CurrentDoorState", "MotionDetected", "Name",
		},
	},
	{
		Service:  "LockMechanism",
		Required: []string{"CurrentLockMechanismState", "TargetLockMechanismState"},
		Optional: []string{"Name"},
	},
	{Service: "Microphone", Required: []string{"Mute"}, Optional: []string{"Volume", "Name"}},
	{Service: "MotionSensor", Required: []string{"MotionDetected"}, Optional: withStatus()},
	{Service: "OccupancySensor", Required: []string{"OccupancyDetected"}, Optional: withStatus()},
	{Service: "Outlet", Required: []string{"PowerState", "OutletInUse"}, Optional: []string{"Name"}},
	{
		Service:  "SecuritySystem",
		Required: []string{"CurrentSecuritySystemState", "TargetSecuritySystemState"},
		Optional: []string{"SecuritySystemAlarmType", "Name", "StatusFault", "StatusTampered"},
	},
	{
		Service:  "Slats",
		Required: []string{"CurrentSlatState", "SlatType"},
		Optional: []string{"Name", "SwingMode", "CurrentTilt", "TargetTilt"},
	},
	{Service: "SmokeSensor", Required: []string{"SmokeDetected"}, Optional: withStatus()},
	{Service: "Speaker", Required: []string{"Mute"}, Optional: []string{"Volume", "Name"}},
	{Service: "StatefulProgrammableSwitch", Required: []string{"InputEvent", "OutputState"}, Optional: []string{"Name"}},
	{Service: "StatelessProgrammableSwitch", Required: []string{"InputEvent"}, Optional: []string{"Name", "LabelIndex"}},
	{Service: "Switch", Required: []string{"PowerState"}, Optional: []string{"Name"}},
	{
		Service:  "TemperatureSensor",
		Required: []string{"CurrentTemperature"},
		Optional: withStatus(),
	},
	{
		Service: "Thermostat",
		Required: []string{
			"CurrentHeatingCooling", "TargetHeatingCooling", "CurrentTemperature",
			"TargetTemperature", "TemperatureUnits",
		},
		Optional: []string{
			"CurrentRelativeHumidity", "TargetRelativeHumidity", "CoolingThreshold", "HeatingThreshold", "Name",
		},
	},
	{
		Service:  "Valve",
		Required: []string{"Active", "InUse", "ValveType"},
		Optional: []string{"SetDuration", "RemainingDuration", "IsConfigured", "LabelIndex", "StatusFault", "Name"},
	},
	{
		Service:  "Window",
		Required: []string{"CurrentPosition", "TargetPosition", "PositionState"},
		Optional: []string{"Name", "HoldPosition", "ObstructionDetected"},
	},
	{
		Service:  "WindowCovering",
		Required: []string{"CurrentPosition", "TargetPosition", "PositionState"},
		Optional: []string{
			"HoldPosition", "TargetHorizontalTilt", "TargetVerticalTilt",
			"CurrentHorizontalTilt", "CurrentVerticalTilt", "ObstructionDetected", "Name",
		},
	},
}

var fallbackIndex = func() map[string]int {
	idx := make(map[string]int, len(fallbackTable))
	for i, e := range fallbackTable {
		idx[e.Service] = i
	}

	return idx
}()

// Fallback returns a copy of the table entry for service.
func Fallback(service string) (FallbackEntry, bool) {
	i, ok := fallbackIndex[service]
	if !ok {
		return FallbackEntry{}, false
	}

	e := fallbackTable[i]

	return FallbackEntry{
		Service:  e.Service,
		Required: slices.Clone(e.Required),
		Optional: slices.Clone(e.Optional),
	}, true
}

// FallbackServices lists the services covered by the table, in table order.
func FallbackServices() []string {
	out := make([]string, len(fallbackTable))
	for i, e := range fallbackTable {
		out[i] = e.Service
	}

	return out
}
