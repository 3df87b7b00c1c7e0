// Package grid owns the raster data model for the bivariate pipeline.
//
// Responsibilities: loading and writing ESRI ASCII grids, nodata
// masking, and alignment validation between the two input rasters.
// Key types: Grid, InputMismatchError.
//
// Dependency rule: grid is a leaf package. No classification, palette
// or styling code is allowed here.
package grid
