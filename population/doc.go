// SPDX-License-Identifier: MIT

// Package population sets up the multivariate normal population the
// experiment samples from.
//
// A Population holds the mean vector μ, the covariance Σ (symmetric,
// positive definite, checked at construction) and the correlation
// ρ_ij = Σ_ij / sqrt(Σ_ii Σ_jj). Default returns the fixed two-gene
// population with variances 1 and 16, covariance 3.6 and means 5 and 12,
// for which ρ_12 = 0.9.
package population
