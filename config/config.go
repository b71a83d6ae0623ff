package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/krabbels/locale"
)

const (
	ConfigDebug       = "debug"
	ConfigLanguage    = "language"
	ConfigRandSeed    = "rand-seed"
	ConfigHistoryFile = "history-file"
	ConfigCPUProfile  = "cpu-profile"
	ConfigFile        = "config"
)

const envPrefix = "KRABBELS"

var (
	ErrUnknownSetting      = errors.New("unknown setting")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// settable are the keys the shell's `set` command may change.
var settable = map[string]bool{
	ConfigDebug:    true,
	ConfigLanguage: true,
	ConfigRandSeed: true,
}

type Config struct {
	*viper.Viper
	args []string
}

// DefaultConfig returns a config with only the defaults loaded. Useful for
// tests.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigLanguage, "fr")
	c.SetDefault(ConfigRandSeed, "")
	c.SetDefault(ConfigHistoryFile, filepath.Join(os.TempDir(), "krabbels-readline.tmp"))
	c.SetDefault(ConfigCPUProfile, "")
}

// Load reads defaults, then the config file, then KRABBELS_ environment
// variables, then the flags in args. A missing config file is not an
// error.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("krabbels", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigLanguage, "fr", "language for user-facing text (fr or en)")
	fs.String(ConfigRandSeed, "", "seed for the tile bag; empty means unseeded")
	fs.String(ConfigHistoryFile, "", "readline history file")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigFile, "", "path to a config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cfgFile, _ := fs.GetString(ConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
	} else {
		c.SetConfigName("config")
		c.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			c.AddConfigPath(filepath.Join(home, ".krabbels"))
		}
	}
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
		log.Debug().Msg("no config file found; using defaults")
	}
	return nil
}

// Args returns the command-line arguments left over after the flags.
func (c *Config) Args() []string {
	return c.args
}

// Put changes a setting at runtime. Only the keys a session can change
// safely are accepted.
func (c *Config) Put(key, value string) error {
	if !settable[key] {
		return fmt.Errorf("%w: %v", ErrUnknownSetting, key)
	}
	if key == ConfigDebug {
		switch strings.ToLower(value) {
		case "true", "on", "1":
			c.Set(key, true)
		case "false", "off", "0":
			c.Set(key, false)
		default:
			return fmt.Errorf("debug must be true or false, not %q", value)
		}
		return nil
	}
	if key == ConfigLanguage && !locale.Supported(value) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, value)
	}
	c.Set(key, value)
	return nil
}

// Write saves the current settings to the config file in use, creating
// $HOME/.krabbels/config.yaml if there is none.
func (c *Config) Write() error {
	if c.ConfigFileUsed() != "" {
		return c.WriteConfig()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".krabbels")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return c.WriteConfigAs(filepath.Join(dir, "config.yaml"))
}

// SanitizedSettings returns the settings suitable for logging.
func (c *Config) SanitizedSettings() map[string]any {
	out := map[string]any{}
	for _, k := range c.AllKeys() {
		out[k] = c.Get(k)
	}
	return out
}
