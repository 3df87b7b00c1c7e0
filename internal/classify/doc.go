// Package classify owns the binning engine: it turns a raw numeric
// variable into ordinal classes 1..k.
//
// Responsibilities: break computation (equal-interval, quantile,
// manual), sample classification, and whole-grid classification.
// Key types: BreakSet, Method, InsufficientVarianceError.
//
// The boundary policy is fixed: breaks[i-1] < v <= breaks[i], with the
// lowest class taking the global minimum and the highest class the
// global maximum. Legend tick labels are derived from the same
// BreakSet, so the policy here is the one the reader decodes.
package classify
