// Package relations loads the HomeKit metadata document that links services
// to their required and optional characteristics.
//
// The document is YAML or JSON (for example the output of
// `plutil -convert json` on the framework metadata plist). Records live
// under a fixed key path:
//
//	PlistDictionary:
//	  HAP:
//	    Base:
//	      Characteristics:
//	        power-state:
//	          DefaultDescription: Power State
//	          ShortUUID: "25"
//	          UUID: 00000025-0000-1000-8000-0026BB765291
//	          Format: bool
//	      Services:
//	        lightbulb:
//	          DefaultDescription: Lightbulb
//	          Characteristics:
//	            Required: [power-state]
//	            Optional: [brightness, "13"]
//
// Every characteristic alias (map key, short UUID, long UUID) resolves to a
// single canonical name built by naming.Canonical from the description.
package relations
