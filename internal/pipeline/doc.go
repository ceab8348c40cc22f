// Package pipeline sequences extraction, symbol validation, relationship
// loading and reconciliation into a finished catalog.
//
// Only the two headers are mandatory. A missing or broken symbol stub or
// metadata document downgrades the run instead of failing it.
package pipeline
