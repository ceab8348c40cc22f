// Package typescript renders a catalog as TypeScript modules: two enum
// files, one module per characteristic and service, and an index that
// re-exports everything.
package typescript
