// Package gen holds what the language backends share: identifier
// resolution, the resolved catalog model, parallel per-entity rendering and
// the atomic tree writer.
//
// Names are resolved serially in sorted catalog order before any rendering
// starts, so output never depends on goroutine scheduling. Rendering then
// fans out with errgroup and each result lands in its own slot.
package gen
