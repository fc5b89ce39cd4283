// Package config loads the CLI settings. Values come from command-line
// flags, REBUILD_* environment variables and an optional YAML file, in
// that order of precedence.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/rebuild/engine"
)

// Setting keys. They double as flag names and YAML keys.
const (
	KeyConfig       = "config"
	KeyVerbose      = "verbose"
	KeyRE2          = "re2"
	KeyLiteralSet   = "literal-set"
	KeyMinLiterals  = "min-literals"
	KeyMatchTimeout = "match-timeout"
)

// EnvPrefix is prepended to environment variable names, e.g.
// REBUILD_MIN_LITERALS.
const EnvPrefix = "REBUILD"

// Config holds the CLI settings.
type Config struct {
	Verbose          bool          `mapstructure:"verbose"`
	EnableRE2        bool          `mapstructure:"re2"`
	EnableLiteralSet bool          `mapstructure:"literal-set"`
	MinLiterals      int           `mapstructure:"min-literals"`
	MatchTimeout     time.Duration `mapstructure:"match-timeout"`
}

// Engine returns the matcher configuration.
func (c Config) Engine() engine.Config {
	return engine.Config{
		EnableRE2:        c.EnableRE2,
		EnableLiteralSet: c.EnableLiteralSet,
		MinLiterals:      c.MinLiterals,
		MatchTimeout:     c.MatchTimeout,
	}
}

// AddFlags registers the setting flags on cmd as persistent flags.
func AddFlags(cmd *cobra.Command) {
	def := engine.DefaultConfig()
	flags := cmd.PersistentFlags()
	flags.StringP(KeyConfig, "c", "", "config file (default .config/rebuild.yaml)")
	flags.BoolP(KeyVerbose, "v", false, "log debug messages")
	flags.Bool(KeyRE2, def.EnableRE2, "answer existence checks with the RE2 engine when possible")
	flags.Bool(KeyLiteralSet, def.EnableLiteralSet, "answer existence checks with Aho-Corasick for literal alternations")
	flags.Int(KeyMinLiterals, def.MinLiterals, "minimum alternation size for the literal set")
	flags.Duration(KeyMatchTimeout, def.MatchTimeout, "abort a single match after this long (0 disables)")
}

// FromCommand loads the settings for a running command, reading the
// flags it was invoked with.
func FromCommand(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}
	file, _ := cmd.Flags().GetString(KeyConfig)
	return Load(v, file)
}

// Load reads the settings known to v. When file is empty the optional
// .config/rebuild.yaml is used if present.
func Load(v *viper.Viper, file string) (config Config, err error) {
	def := engine.DefaultConfig()
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyRE2, def.EnableRE2)
	v.SetDefault(KeyLiteralSet, def.EnableLiteralSet)
	v.SetDefault(KeyMinLiterals, def.MinLiterals)
	v.SetDefault(KeyMatchTimeout, def.MatchTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".config")
		v.SetConfigName("rebuild")
		v.SetConfigType("yaml")
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	if verr := config.Engine().Validate(); verr != nil {
		err = verr
	}
	return
}
