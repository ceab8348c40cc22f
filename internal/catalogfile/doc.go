// Package catalogfile reads and writes the catalog interchange file.
//
// The file is a small YAML subset:
//
//	services:
//	  - identifier: HMServiceTypeLightbulb
//	    name: Lightbulb
//	    generatedName: lightbulb
//	    requiredCharacteristics:
//	      - PowerState
//	characteristics:
//	  - identifier: HMCharacteristicTypePowerState
//	    name: PowerState
//	    generatedName: powerState
//	    valueType: bool
//
// The encoder is strict and refuses records without an identifier or name.
// The decoder is lenient: such records are dropped and only counted on
// Decoder.Dropped. Existing catalog files rely on that asymmetry.
package catalogfile
