// Package symbols reads linker export stubs (.tbd text files) and checks
// that catalog identifiers are actually exported by the framework.
//
// The check is best effort: a missing stub skips validation and mismatches
// are warnings only.
package symbols
