// Package pipeline runs a full bivariate classification job: load the
// two input rasters, derive class breaks, classify, combine, resolve
// colours, and write the output artifacts. Validation is front-loaded
// so a failing run produces no partial output.
package pipeline
