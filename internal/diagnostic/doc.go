// Package diagnostic provides structured, non-fatal findings collected while
// building and generating the catalog.
//
// Key capabilities:
//   - Symbol-presence mismatches
//   - Relationship entries referencing unknown services or characteristics,
//     with nearest-name suggestions
//   - Generator skips and renames
package diagnostic
