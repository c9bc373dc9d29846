// SPDX-License-Identifier: MIT

// Package estimate holds the correlation and regression estimators compared
// by the dropout experiment.
//
//   - Pearson / CorrelationMatrix: unweighted sample correlation.
//   - WeightedPearson / WeightedCorrelationMatrix: observation-weighted
//     correlation; equal weights reproduce Pearson.
//   - OLS: closed-form (XᵗX)⁻¹Xᵗy on the design [1, x].
//   - WLS: closed-form (XᵗWX)⁻¹XᵗWy with W = diag(w).
//   - CompleteCases: the rows that survived dropout in every column.
//
// Inputs are never mutated. Failure modes are sentinels (ErrSingular,
// ErrZeroWeights, ErrDegenerate, ...) rather than NaN results.
package estimate
