// SPDX-License-Identifier: MIT

package experiment

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate and Run for unusable parameters.
var ErrInvalidConfig = errors.New("experiment: invalid config")

const (
	opRun        = "Run"
	stageConfig  = "config"
	stagePop     = "population"
	stageSample  = "sample"
	stageDropout = "dropout"
	stageWeights = "weights"
	stageClean   = "clean"
	stageDropped = "dropped"
	stageKept    = "complete-case"
	stageWeight  = "weighted"
)

func experimentErrorf(stage string, err error) error {
	return fmt.Errorf("experiment.%s[%s]: %w", opRun, stage, err)
}
