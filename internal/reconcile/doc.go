// Package reconcile merges relationship metadata into an extracted catalog.
//
// Precedence, first success wins:
//  1. Relationship metadata with at least one non-empty service list.
//  2. The built-in fallback table of well-known HAP services.
//
// Format hints from the metadata overwrite heuristic value kinds regardless
// of which branch fired. Nothing here fails: names that do not line up
// between the two sources are recorded in the Summary.
package reconcile
