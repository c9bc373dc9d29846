// SPDX-License-Identifier: MIT

// Package dropout simulates technical dropout: expression readings that are
// lost and recorded as zero, more often for small magnitudes.
//
// The pass has three steps, each available on its own:
//
//   - Probabilities: P_ij = f(|Z_ij|) with the logistic curve
//     f(x) = 1 − 1/(1 + exp(−(x − 3)/0.5)) (configurable via WithLogistic).
//   - Indicators: Zind_ij ~ Bernoulli(1 − P_ij), 1 = kept.
//   - Apply: Zdrop_ij = Z_ij if kept, 0 otherwise.
//
// Inject runs all three. RowWeights turns indicators into per-row weights
// w_i = (Π_j Zind_ij) · Beta(1, 0.1) for weighted estimators, and Rates
// and CompleteRows summarize the indicator matrix.
//
// Random draws go through gonum's distuv.Bernoulli and distuv.Beta reading
// the caller's rand.Source in row-major order; that order is part of the
// reproducibility contract.
package dropout
