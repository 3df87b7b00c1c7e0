// Package palette owns the catalog of named bivariate colour schemes.
//
// Responsibilities: the Palette data model (a complete code->colour
// table for one k), the process-wide read-only Registry, and the CSV
// interchange format. Key types: Palette, Registry, Entry,
// UnknownPaletteError, DimensionMismatchError.
//
// The registry is built once from static tables and never mutated, so
// lookups are safe from any goroutine without locking.
package palette
