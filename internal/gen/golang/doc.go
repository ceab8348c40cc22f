// Package golang renders a catalog as a Go package.
//
// The tree holds service_types.go and characteristic_types.go with the type
// constants and their lookup tables, runtime.go with the value holders the
// wrappers build on, and one file per characteristic and service wrapper.
// Every file is passed through golang.org/x/tools/imports before writing.
package golang
