// Package config resolves pmdetect settings from flags, environment
// variables and the user config file.
package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-hclog"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/muhammadmuzzammil1998/jsonc"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vercel/pmdetect/internal/fspath"
	"github.com/vercel/pmdetect/internal/packagemanager"
)

const envPrefix = "PMDETECT"

// Keys shared by flags, environment variables and the config file.
const (
	WorkingDirKey = "working-dir"
	StrategiesKey = "strategies"
	FormatKey     = "format"
	UserAgentKey  = "user-agent"
)

// DefaultFormat is used when no output format is configured.
const DefaultFormat = "json"

// EnvConfig holds the process level settings read from PMDETECT_*
// environment variables.
type EnvConfig struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	LogJSON  bool   `envconfig:"LOG_JSON"`
}

// ReadEnvConfig processes PMDETECT_LOG_LEVEL and PMDETECT_LOG_JSON.
func ReadEnvConfig() (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "invalid environment variable")
	}
	return cfg, nil
}

// Level parses LogLevel. An empty level means warn.
func (c *EnvConfig) Level() (hclog.Level, error) {
	if c.LogLevel == "" {
		return hclog.Warn, nil
	}
	level := hclog.LevelFromString(c.LogLevel)
	if level == hclog.NoLevel {
		return hclog.NoLevel, errors.Errorf("invalid %v_LOG_LEVEL %q", envPrefix, c.LogLevel)
	}
	return level, nil
}

// Options are the settings shared by every detection command.
type Options struct {
	WorkingDir string   `mapstructure:"working-dir"`
	Strategies []string `mapstructure:"strategies"`
	Format     string   `mapstructure:"format"`
	UserAgent  string   `mapstructure:"user-agent"`
}

// DefaultUserConfigPath is $XDG_CONFIG_HOME/pmdetect/config.json.
func DefaultUserConfigPath() fspath.AbsoluteSystemPath {
	return fspath.AbsoluteSystemPathFromUpstream(xdg.ConfigHome).UntypedJoin("pmdetect", "config.json")
}

// AddFlags adds the option flags to the given flagset
func AddFlags(flags *pflag.FlagSet) {
	flags.StringP(WorkingDirKey, "w", "", "The directory to start searching from (default: current directory)")
	flags.StringSlice(StrategiesKey, nil, "Comma separated detection strategies, in order (default: packageJson,lockFile,userAgent)")
	flags.String(FormatKey, DefaultFormat, "Output format: json, yaml or table")
	flags.String(UserAgentKey, "", "Override the "+packagemanager.UserAgentEnvVar+" value")
}

// NormalizeFlagName maps --cwd onto --working-dir.
func NormalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "cwd" {
		name = WorkingDirKey
	}
	return pflag.NormalizedName(name)
}

// ReadOptions layers flags over PMDETECT_* environment variables over the
// user config file over defaults. The user agent additionally falls back to
// npm_config_user_agent. A missing config file is not an error.
func ReadOptions(flags *pflag.FlagSet, userConfigPath fspath.AbsoluteSystemPath) (*Options, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(UserAgentKey, envPrefix+"_USER_AGENT", packagemanager.UserAgentEnvVar); err != nil {
		return nil, err
	}
	v.SetDefault(FormatKey, DefaultFormat)
	v.SetDefault(StrategiesKey, strategyNames(packagemanager.DefaultStrategies))
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}
	if err := readUserConfigFile(v, userConfigPath); err != nil {
		return nil, err
	}

	opts := &Options{}
	decodeHook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(opts, viper.DecodeHook(decodeHook)); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return opts, nil
}

func readUserConfigFile(v *viper.Viper, path fspath.AbsoluteSystemPath) error {
	if path == "" {
		return nil
	}
	contents, err := path.ReadFile()
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Wrapf(err, "reading config file %v", path)
	}
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(jsonc.ToJSON(contents))); err != nil {
		return errors.Wrapf(err, "invalid config file %v", path)
	}
	return nil
}

// ResolveWorkingDir expands a leading ~ and makes the working directory absolute.
func (o *Options) ResolveWorkingDir() (fspath.AbsoluteSystemPath, error) {
	dir, err := homedir.Expand(o.WorkingDir)
	if err != nil {
		return "", errors.Wrapf(err, "invalid working directory %v", o.WorkingDir)
	}
	return fspath.ResolveDirectory(dir)
}

// ResolveStrategies validates the configured strategy names.
func (o *Options) ResolveStrategies() ([]packagemanager.Strategy, error) {
	return packagemanager.ParseStrategies(o.Strategies)
}

// LookupEnv reads the environment, answering npm_config_user_agent from the
// resolved options so that --user-agent and the config file apply.
func (o *Options) LookupEnv(key string) (string, bool) {
	if key == packagemanager.UserAgentEnvVar {
		return o.UserAgent, o.UserAgent != ""
	}
	return os.LookupEnv(key)
}

func strategyNames(strategies []packagemanager.Strategy) []string {
	names := make([]string, len(strategies))
	for i, strategy := range strategies {
		names[i] = string(strategy)
	}
	return names
}
