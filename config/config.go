// SPDX-License-Identifier: MIT

// Package config resolves an experiment.Config from layered sources.
//
// Precedence, lowest first: built-in defaults, the YAML file named by
// --config, DROPCORR_* environment variables, explicitly set flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dropcorr/experiment"
	"github.com/katalvlaran/dropcorr/population"
)

// EnvPrefix prefixes every environment key, e.g. DROPCORR_SAMPLES.
const EnvPrefix = "DROPCORR"

// FlagConfig names the YAML file flag.
const FlagConfig = "config"

var (
	// ErrInvalid wraps every validation failure of the resolved config.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrRead indicates the config file could not be read or parsed.
	ErrRead = errors.New("config: cannot read config file")
)

// param ties a viper key to its flag.
type param struct {
	key   string // mapstructure key
	flag  string
	usage string
}

var params = []param{
	{"seed", "seed", "base random seed (0 selects the fixed default)"},
	{"samples", "samples", "number of rows drawn"},
	{"var1", "var1", "variance of x"},
	{"var2", "var2", "variance of y"},
	{"cov", "cov", "covariance of x and y"},
	{"mean1", "mean1", "mean of x"},
	{"mean2", "mean2", "mean of y"},
	{"midpoint", "midpoint", "|value| at which half the readings drop out"},
	{"scale", "scale", "width of the dropout transition"},
	{"weight_alpha", "weight-alpha", "alpha of the Beta row-weight multiplier"},
	{"weight_beta", "weight-beta", "beta of the Beta row-weight multiplier"},
}

// RegisterFlags adds --config and one flag per experiment parameter to fs,
// with the defaults of experiment.DefaultConfig.
func RegisterFlags(fs *pflag.FlagSet) {
	d := experiment.DefaultConfig()
	fs.String(FlagConfig, "", "YAML config file")
	fs.Uint64(params[0].flag, d.Seed, params[0].usage)
	fs.Int(params[1].flag, d.Samples, params[1].usage)
	floats := []float64{d.Var1, d.Var2, d.Cov, d.Mean1, d.Mean2, d.Midpoint, d.Scale, d.WeightAlpha, d.WeightBeta}
	for i, v := range floats {
		p := params[i+2]
		fs.Float64(p.flag, v, p.usage)
	}
}

// Load resolves the config. fs may be nil, in which case only defaults and
// the environment apply. Flags not registered on fs are skipped.
func Load(fs *pflag.FlagSet) (experiment.Config, error) {
	v := viper.New()
	setDefaults(v, experiment.DefaultConfig())

	if fs != nil {
		if f := fs.Lookup(FlagConfig); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return experiment.Config{}, fmt.Errorf("%w %s: %w", ErrRead, f.Value.String(), err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for _, p := range params {
			if f := fs.Lookup(p.flag); f != nil {
				if err := v.BindPFlag(p.key, f); err != nil {
					return experiment.Config{}, err
				}
			}
		}
	}

	var cfg experiment.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return experiment.Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := Validate(cfg); err != nil {
		return experiment.Config{}, err
	}

	return cfg, nil
}

// Validate runs experiment.Config.Validate and checks that Σ is positive
// definite, tagging failures with ErrInvalid.
func Validate(cfg experiment.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := population.NewCovariance(cfg.Var1, cfg.Var2, cfg.Cov); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

func setDefaults(v *viper.Viper, d experiment.Config) {
	v.SetDefault("seed", d.Seed)
	v.SetDefault("samples", d.Samples)
	v.SetDefault("var1", d.Var1)
	v.SetDefault("var2", d.Var2)
	v.SetDefault("cov", d.Cov)
	v.SetDefault("mean1", d.Mean1)
	v.SetDefault("mean2", d.Mean2)
	v.SetDefault("midpoint", d.Midpoint)
	v.SetDefault("scale", d.Scale)
	v.SetDefault("weight_alpha", d.WeightAlpha)
	v.SetDefault("weight_beta", d.WeightBeta)
}
