// Package style resolves combined class codes to display colours.
//
// Responsibilities: building the code->colour table for the codes a
// dataset actually contains, verifying full palette coverage before
// any artifact is written, and emitting the two symbology outputs the
// GIS host consumes (a colour-table CSV and a QGIS paletted-raster QML
// style). Key types: ColorTable, PaletteCoverageError.
package style
