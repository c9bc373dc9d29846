// SPDX-License-Identifier: MIT

// Package dropcorr simulates "dropout" (true values read as zero) in
// bivariate normal expression data and measures how well weighted
// estimators recover the correlation the dropout hides.
//
// Pipeline:
//
//	population/   Σ, μ and the derived correlation ρ = D^-1/2 Σ D^-1/2
//	sampler/      N rows of N(μ, Σ) from an explicit random source
//	dropout/      P = f(|Z|), Zind ~ Bernoulli(1−P), Zdrop, Beta row weights
//	estimate/     Pearson, weighted Pearson, OLS, WLS, complete cases
//	experiment/   one seeded end-to-end run
//
// Support:
//
//	matrix/    dense row-major matrices, LU, Cholesky, covariance
//	rng/       seed policy and independent per-stage streams
//	config/    defaults, YAML, DROPCORR_* env and flags via viper
//	logging/   zap loggers
//	report/    console tables and YAML summaries
//	figure/    scatter plots with fitted lines
//
// The command in cmd/dropcorr ties them together:
//
//	go run ./cmd/dropcorr --seed 42 --plots --report summary.yaml
package dropcorr
