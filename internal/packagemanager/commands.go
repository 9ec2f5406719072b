package packagemanager

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Action names one of the operations a CommandSet provides.
type Action string

const (
	ActionInstall         Action = "install"
	ActionFrozenInstall   Action = "frozen-install"
	ActionGlobalInstall   Action = "global-install"
	ActionUninstall       Action = "uninstall"
	ActionGlobalUninstall Action = "global-uninstall"
	ActionUpdate          Action = "update"
	ActionRun             Action = "run"
	ActionExec            Action = "exec"
	ActionExecLocal       Action = "exec-local"
)

// Actions lists every Action in table order.
var Actions = []Action{
	ActionInstall,
	ActionFrozenInstall,
	ActionGlobalInstall,
	ActionUninstall,
	ActionGlobalUninstall,
	ActionUpdate,
	ActionRun,
	ActionExec,
	ActionExecLocal,
}

// CommandSet holds the command line prefix a package manager uses for each
// Action. Name is the executable family, Agent the variant the set belongs to.
type CommandSet struct {
	Name            string `json:"name" yaml:"name"`
	Agent           Name   `json:"agent" yaml:"agent"`
	Install         string `json:"install" yaml:"install"`
	FrozenInstall   string `json:"frozen-install" yaml:"frozen-install"`
	GlobalInstall   string `json:"global-install" yaml:"global-install"`
	Uninstall       string `json:"uninstall" yaml:"uninstall"`
	GlobalUninstall string `json:"global-uninstall" yaml:"global-uninstall"`
	Update          string `json:"update" yaml:"update"`
	Run             string `json:"run" yaml:"run"`
	Exec            string `json:"exec" yaml:"exec"`
	ExecLocal       string `json:"exec-local" yaml:"exec-local"`
}

// Command returns the command line for an action.
func (c CommandSet) Command(action Action) (string, bool) {
	switch action {
	case ActionInstall:
		return c.Install, true
	case ActionFrozenInstall:
		return c.FrozenInstall, true
	case ActionGlobalInstall:
		return c.GlobalInstall, true
	case ActionUninstall:
		return c.Uninstall, true
	case ActionGlobalUninstall:
		return c.GlobalUninstall, true
	case ActionUpdate:
		return c.Update, true
	case ActionRun:
		return c.Run, true
	case ActionExec:
		return c.Exec, true
	case ActionExecLocal:
		return c.ExecLocal, true
	default:
		return "", false
	}
}

// ParseAction validates an action name.
func ParseAction(raw string) (Action, bool) {
	for _, action := range Actions {
		if string(action) == raw {
			return action, true
		}
	}
	return "", false
}

// MajorVersion reads the major component of a version string: everything
// before the first ".", which must be a non-empty run of ASCII digits.
// Majors too large for an int saturate at math.MaxInt.
func MajorVersion(version string) (int, bool) {
	segment := version
	if i := strings.IndexByte(version, '.'); i >= 0 {
		segment = version[:i]
	}
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return 0, false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	major, err := strconv.Atoi(segment)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, true
	} else if err != nil {
		return 0, false
	}
	return major, true
}

// GetCommands returns the command set for a detected package manager. A yarn
// identity declaring a major version of 2 or more gets the berry commands.
// Names outside the supported set return *UnknownPackageManagerError.
func GetCommands(id Identity) (CommandSet, error) {
	name := id.Name
	if name == Yarn && id.Version != "" && isBerry(id.Version) {
		name = YarnBerry
	}
	pm, err := GetPackageManager(name)
	if err != nil {
		return CommandSet{}, err
	}
	return pm.Commands, nil
}
