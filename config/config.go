// Package config loads the CLI and sampler tunables — solver
// library path, default sample batch size, RNG seed, worker count —
// via viper, grounded on discordwell-OnChainPoker's apps/cosmos config
// stack (viper+cobra is its root-command idiom; BindPFlag is viper's
// standard flag/env-override pattern).
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix viper requires on every environment-variable
// override, e.g. BRIDGEPLAY_WORKERS.
const EnvPrefix = "BRIDGEPLAY"

// Config holds every tunable the CLI and sampler read at startup.
type Config struct {
	// SolverLibPath is the path to the vendored native double-dummy
	// library solvercgo binds via cgo. The CLI loads it but does not act
	// on it: the sample subcommand scores with the Mock solver whatever
	// this holds.
	SolverLibPath string `mapstructure:"solver-lib-path"`

	// SampleBatchSize is the default number of deals GenerateMany draws
	// per call when a caller does not override it.
	SampleBatchSize int `mapstructure:"sample-batch-size"`

	// Seed seeds the master RNG stream GenerateMany derives per-worker
	// sub-seeds from. Zero means "derive from the runtime clock",
	// matching viper's zero-value-is-unset convention for an int flag.
	Seed int64 `mapstructure:"seed"`

	// Workers is the number of goroutines GenerateMany spreads sampling
	// across. Zero means "use runtime.NumCPU()".
	Workers int `mapstructure:"workers"`
}

// Defaults returns the Config used when no flag, env var, or config
// file overrides a field.
func Defaults() Config {
	return Config{
		SampleBatchSize: 200,
		Workers:         0,
	}
}

// BindFlags registers cmd's persistent flags with v and binds each one
// so flag > env > default, in viper's standard precedence order. Callers
// call this once per cobra.Command that accepts these flags, then call
// Load to materialize a Config.
func BindFlags(cmd *cobra.Command, v *viper.Viper) error {
	d := Defaults()

	cmd.PersistentFlags().String("solver-lib-path", "", "path to the vendored native double-dummy library (not used by the sample subcommand, which always scores with the mock solver)")
	cmd.PersistentFlags().Int("sample-batch-size", d.SampleBatchSize, "default number of deals drawn per sampling call")
	cmd.PersistentFlags().Int64("seed", 0, "RNG seed for deal sampling (0 = derive from the runtime clock)")
	cmd.PersistentFlags().Int("workers", d.Workers, "worker goroutines for deal sampling (0 = runtime.NumCPU())")

	for _, name := range []string{"solver-lib-path", "sample-batch-size", "seed", "workers"} {
		if err := v.BindPFlag(name, cmd.PersistentFlags().Lookup(name)); err != nil {
			return errors.Wrapf(err, "config: bind flag %q", name)
		}
	}
	return nil
}

// New constructs a viper instance wired for BRIDGEPLAY_-prefixed
// environment variable overrides, with '-' in flag names mapped to '_'
// for the corresponding env var, matching viper's standard
// SetEnvKeyReplacer idiom.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load materializes a Config from v's current flag/env/file/default
// layering.
func Load(v *viper.Viper) (Config, error) {
	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: unmarshal")
	}
	return cfg, nil
}
