// Package catalog defines the canonical schema of HomeKit services and
// characteristics shared by extraction and code generation.
//
// A Catalog is built once per extraction run, filled in by the reconciler,
// and written to the interchange file. Generators decode it again and treat
// it as read-only.
package catalog
