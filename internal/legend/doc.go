// Package legend builds and renders the k-by-k colour key that
// accompanies a bivariate map. The grid carries the same palette
// colours as the raster symbology, with the class break values on the
// axes, so a reader can decode any map cell back to its two variable
// ranges.
package legend
