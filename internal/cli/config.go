// Config loading for the contacts CLI.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys in config.yaml.
	cfgKeyFile     = "file"
	cfgKeyLogLevel = "log_level"

	// envPrefix applies to keys bound with BindEnv (CONTACTS_LOG_LEVEL).
	envPrefix = "CONTACTS"
)

// loadConfig reads config.yaml from configDir using Viper. A missing
// directory or file is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	if err := v.BindEnv(cfgKeyLogLevel); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// resolveConfig combines flags, config.yaml and the environment into a
// validated types.Config.
func (a *app) resolveConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return types.Config{}, err
	}

	file, err := paths.ResolveDataFile(a.flags.file, v.GetString(cfgKeyFile))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data file: %w", err)
	}

	cfg := types.Config{
		File:     file,
		LogLevel: v.GetString(cfgKeyLogLevel),
	}
	if a.flags.verbose {
		cfg.LogLevel = types.LogLevelDebug
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
