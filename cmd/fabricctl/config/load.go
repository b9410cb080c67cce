package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/concave-dev/fabricctl/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".fabricctl"
	configFileName = "config.yaml"
	envPrefix      = "FABRICCTL"
)

// Viper keys of the layered global settings. Each key matches the name of
// its persistent flag.
const (
	endpointKey = "endpoint"
	schemeKey   = "scheme"
	timeoutKey  = "timeout"
	logLevelKey = "log-level"
	logFileKey  = "log-file"
	outputKey   = "output"
	verboseKey  = "verbose"
)

var layeredKeys = []string{endpointKey, schemeKey, timeoutKey, logLevelKey, logFileKey, outputKey, verboseKey}

// DefaultConfigPath returns $HOME/.fabricctl/config.yaml, or an empty
// string when the home directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, configFileName)
}

// ConfigPath returns the config file in effect: --config when given,
// otherwise the default path.
func ConfigPath() string {
	if Global.ConfigFile != "" {
		return Global.ConfigFile
	}
	return DefaultConfigPath()
}

// Load layers the config file and FABRICCTL_* environment variables under
// the flags of cmd and stores the result in Global. A missing default
// config file is not an error; a missing --config file is.
func Load(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// bind viper keys to cobra flags so explicitly set flags win
	for _, key := range layeredKeys {
		flag := cmd.Flags().Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("fail to bind viper key %q to flag %q: %w", key, key, err)
		}
	}

	if path := ConfigPath(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			switch {
			case Global.ConfigFile == "" && (errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)):
				logging.Debug("No config file at %s", path)
			default:
				return fmt.Errorf("read config file %s: %w", path, err)
			}
		} else {
			logging.Debug("Loaded config file %s", v.ConfigFileUsed())
		}
	}

	Global.Endpoint = v.GetString(endpointKey)
	Global.Scheme = v.GetString(schemeKey)
	Global.Timeout = v.GetInt(timeoutKey)
	Global.LogLevel = strings.ToUpper(v.GetString(logLevelKey))
	Global.LogFile = v.GetString(logFileKey)
	Global.Output = strings.ToLower(v.GetString(outputKey))
	Global.Verbose = v.GetBool(verboseKey)
	return nil
}

// SaveEndpoint records endpoint and scheme in the config file at path,
// keeping any other keys already present.
func SaveEndpoint(path, endpoint, scheme string) error {
	if path == "" {
		return fmt.Errorf("no config file path: home directory is unknown, pass --config")
	}

	doc := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse config file %s: %w", path, err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	doc[endpointKey] = endpoint
	doc[schemeKey] = scheme

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("write config file %s: %w", path, err)
	}
	return nil
}
