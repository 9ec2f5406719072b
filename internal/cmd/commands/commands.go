// Package commands implements the commands and get subcommands, which print
// the command lines of a package manager.
package commands

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vercel/pmdetect/internal/cmdutil"
	"github.com/vercel/pmdetect/internal/output"
	"github.com/vercel/pmdetect/internal/packagemanager"
)

// CommandsCmd returns the commands command
func CommandsCmd(helper *cmdutil.Helper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commands [<name>[@<version>]]",
		Short: "Print the command set of a package manager",
		Long: `Print the command set of the given package manager, written the way the
package.json "packageManager" field spells it (for example yarn@3.2.1).
Without an argument the detected package manager is used.`,
		Args:                  cobra.MaximumNArgs(1),
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			var id packagemanager.Identity
			if len(args) == 1 {
				id = packagemanager.ParsePackageManagerString(args[0])
			} else if id, err = base.Detect(); err != nil {
				return err
			}
			commands, err := lookup(id)
			if err != nil {
				return err
			}
			return output.WriteCommands(base.Stdout, base.Format, commands)
		},
	}
	return cmd
}

// GetCmd returns the get command
func GetCmd(helper *cmdutil.Helper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <action> [<args>...]",
		Short: "Print a single command line for the detected package manager",
		Long: `Print the command line the detected package manager uses for an action,
followed by any extra arguments. Arguments that look like flags must come
after '--'.

Actions: ` + actionNames(),
		Example: `  $(pmdetect get run build)
  $(pmdetect get exec -- cowsay --help)`,
		Args:                  cobra.MinimumNArgs(1),
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			action, ok := packagemanager.ParseAction(args[0])
			if !ok {
				return errors.Errorf("unknown action %q: expected one of %v", args[0], actionNames())
			}
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			id, err := base.Detect()
			if err != nil {
				return err
			}
			commands, err := lookup(id)
			if err != nil {
				return err
			}
			command, _ := commands.Command(action)
			line := append([]string{command}, args[1:]...)
			_, err = fmt.Fprintln(base.Stdout, strings.Join(line, " "))
			return err
		},
	}
	return cmd
}

func lookup(id packagemanager.Identity) (packagemanager.CommandSet, error) {
	commands, err := packagemanager.GetCommands(id)
	if err != nil {
		return packagemanager.CommandSet{}, &cmdutil.Error{ExitCode: 1, Err: err}
	}
	return commands, nil
}

func actionNames() string {
	names := make([]string, len(packagemanager.Actions))
	for i, action := range packagemanager.Actions {
		names[i] = string(action)
	}
	return strings.Join(names, ", ")
}
