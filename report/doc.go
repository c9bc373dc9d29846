// SPDX-License-Identifier: MIT

// Package report turns an experiment.Result into console tables
// (go-pretty) and a YAML summary document.
package report
