// Package extract scans declaration-style header text for exported type
// constants and turns each match into a catalog entry.
//
// The recognised idiom is a single line of the form
//
//	HM_EXTERN NSString * const HMServiceTypeLightbulb API_AVAILABLE(ios(8.0));
//
// i.e. an export macro, a type, an optional const, the prefixed name and any
// trailing availability annotations. Contiguous "//" comments directly above
// a declaration become its documentation.
package extract
