// Package cmdutil holds functionality to run pmdetect via cobra. That includes
// flag parsing and configuration of components common to all subcommands
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/vercel/pmdetect/internal/config"
	"github.com/vercel/pmdetect/internal/fspath"
	"github.com/vercel/pmdetect/internal/output"
	"github.com/vercel/pmdetect/internal/packagemanager"
	"github.com/vercel/pmdetect/internal/ui"
	"github.com/vercel/pmdetect/internal/util"
)

const (
	_configFlag    = "config"
	_verbosityFlag = "verbosity"
	_colorFlag     = "color"
	_noColorFlag   = "no-color"
)

// Helper is a struct used to hold configuration values passed via flag, env vars,
// config files, etc. It is not intended for direct use by pmdetect commands, it
// drives the creation of CmdBase, which is then used by the commands themselves.
type Helper struct {
	// Version is the version of pmdetect that is currently executing
	Version string

	// UserConfigPath is the path to where we expect to find
	// a user-specific config file, if one is present. Set by --config.
	UserConfigPath fspath.AbsoluteSystemPath

	// Stdout and Stderr receive command output. They default to the process streams.
	Stdout io.Writer
	Stderr io.Writer

	rawUserConfigPath string
	verbosity         int
	forceColor        bool
	noColor           bool
}

// NewHelper returns a new helper instance to hold configuration values for the root
// pmdetect command.
func NewHelper(version string) *Helper {
	return &Helper{
		Version:        version,
		UserConfigPath: config.DefaultUserConfigPath(),
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
	}
}

// AddFlags adds common flags for all pmdetect commands to the given flagset and binds
// them to this instance of Helper
func (h *Helper) AddFlags(flags *pflag.FlagSet) {
	config.AddFlags(flags)
	flags.StringVar(&h.rawUserConfigPath, _configFlag, "", "Path to the user config file (default: $XDG_CONFIG_HOME/pmdetect/config.json)")
	flags.CountVarP(&h.verbosity, _verbosityFlag, "v", "verbosity")
	flags.BoolVar(&h.forceColor, _colorFlag, false, "Force color usage in the terminal")
	flags.BoolVar(&h.noColor, _noColorFlag, false, "Suppress color usage in the terminal")
	flags.SetNormalizeFunc(config.NormalizeFlagName)
}

func (h *Helper) getUI() cli.Ui {
	return ui.BuildColoredUi(ui.ColorModeFromFlags(h.forceColor, h.noColor), h.Stdout, h.Stderr)
}

func (h *Helper) getLogger() (hclog.Logger, error) {
	envConfig, err := config.ReadEnvConfig()
	if err != nil {
		return nil, err
	}
	level, err := envConfig.Level()
	if err != nil {
		return nil, err
	}
	if verbose := verbosityLevel(h.verbosity); verbose != hclog.NoLevel && verbose < level {
		level = verbose
	}
	// hclog can only color *os.File outputs
	color := hclog.ColorOff
	if _, isFile := h.Stderr.(*os.File); isFile && !h.noColor {
		color = hclog.AutoColor
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "pmdetect",
		Level:      level,
		Output:     h.Stderr,
		Color:      color,
		JSONFormat: envConfig.LogJSON,
	}), nil
}

func verbosityLevel(verbosity int) hclog.Level {
	switch {
	case verbosity <= 0:
		return hclog.NoLevel
	case verbosity == 1:
		return hclog.Info
	case verbosity == 2:
		return hclog.Debug
	default:
		return hclog.Trace
	}
}

// LogError prints an error that happened before, or outside of, a CmdBase.
func (h *Helper) LogError(err error) {
	h.getUI().Error(fmt.Sprintf("%s %v", ui.ErrorPrefix, err))
}

// GetCmdBase returns a CmdBase instance configured with values from this helper.
func (h *Helper) GetCmdBase(flags *pflag.FlagSet) (*CmdBase, error) {
	terminal := h.getUI()
	logger, err := h.getLogger()
	if err != nil {
		return nil, err
	}
	userConfigPath := h.UserConfigPath
	if h.rawUserConfigPath != "" {
		abs, err := filepath.Abs(h.rawUserConfigPath)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --config %v", h.rawUserConfigPath)
		}
		userConfigPath = fspath.AbsoluteSystemPathFromUpstream(abs)
	}
	logger.Trace("reading options", "config", userConfigPath)
	options, err := config.ReadOptions(flags, userConfigPath)
	if err != nil {
		return nil, err
	}
	format, err := output.ParseFormat(options.Format)
	if err != nil {
		return nil, err
	}
	return &CmdBase{
		UI:      terminal,
		Logger:  logger,
		Options: options,
		Format:  format,
		Stdout:  h.Stdout,
		Version: h.Version,
	}, nil
}

// CmdBase encompasses configured components common to all pmdetect commands.
type CmdBase struct {
	UI      cli.Ui
	Logger  hclog.Logger
	Options *config.Options
	Format  output.Format
	Stdout  io.Writer
	Version string
}

// Detect runs package manager detection with the configured working
// directory, strategies and user agent. Finding nothing is an *Error with
// exit code 1.
func (b *CmdBase) Detect() (packagemanager.Identity, error) {
	cwd, err := b.Options.ResolveWorkingDir()
	if err != nil {
		return packagemanager.Identity{}, err
	}
	strategies, err := b.Options.ResolveStrategies()
	if err != nil {
		return packagemanager.Identity{}, err
	}
	id, err := packagemanager.Detect(packagemanager.DetectOptions{
		Cwd:        cwd.ToString(),
		Strategies: strategies,
		LookupEnv:  b.Options.LookupEnv,
		Logger:     b.Logger.Named("detect"),
	})
	if errors.Is(err, packagemanager.ErrNotFound) {
		return packagemanager.Identity{}, &Error{
			ExitCode: 1,
			Err:      errors.New(util.Sprintf("No package manager found from ${BOLD}%v${RESET}", cwd)),
		}
	}
	return id, err
}
