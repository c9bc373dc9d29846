// SPDX-License-Identifier: MIT

// Package experiment runs the dropout simulation end to end:
//
//	Σ, μ  →  Z ~ N(μ, Σ)  →  P = f(|Z|)  →  Zind ~ Bernoulli(1−P)  →  Zdrop
//	      →  w_i = Π_j Zind_ij · Beta(α, β)
//	      →  correlations and fits on clean, dropped, complete-case and weighted data.
//
// Every random stage reads its own stream derived from Config.Seed, so two
// runs with the same Config produce bit-identical results.
package experiment
