// Package cmd holds the root cobra command for pmdetect
package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vercel/pmdetect/internal/cmd/commands"
	"github.com/vercel/pmdetect/internal/cmd/detect"
	"github.com/vercel/pmdetect/internal/cmdutil"
	"github.com/vercel/pmdetect/internal/config"
	"github.com/vercel/pmdetect/internal/output"
	"github.com/vercel/pmdetect/internal/packagemanager"
	"github.com/vercel/pmdetect/internal/util"
)

// Execute executes the root pmdetect command and returns the process exit code
func Execute(version string) int {
	util.InitPrintf()
	return run(cmdutil.NewHelper(version), os.Args[1:])
}

func run(helper *cmdutil.Helper, args []string) int {
	root := getCmd(helper)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		helper.LogError(err)
		exitErr := &cmdutil.Error{}
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode
		}
		return 1
	}
	return 0
}

func getCmd(helper *cmdutil.Helper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pmdetect",
		Short: "Detect the JavaScript package manager of a project",
		Long: `Detect which package manager (npm, yarn, yarn berry or pnpm) manages the
working directory and print the command lines it uses.

Detection walks from the working directory up to the filesystem root. In
each directory the package.json "packageManager" field and the known lock
files are consulted in strategy order. If nothing matches, the package
manager that launched pmdetect (npm_config_user_agent) is used.`,
		Version:               helper.Version,
		Args:                  cobra.NoArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		CompletionOptions:     cobra.CompletionOptions{DisableDefaultCmd: true},
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := helper.GetCmdBase(cmd.Flags())
			if err != nil {
				return err
			}
			id, err := base.Detect()
			if err != nil {
				return err
			}
			set, err := packagemanager.GetCommands(id)
			if err != nil {
				return err
			}
			return output.WriteCommands(base.Stdout, base.Format, set)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetOut(writerOrDiscard(helper.Stdout))
	cmd.SetErr(writerOrDiscard(helper.Stderr))
	helper.AddFlags(cmd.PersistentFlags())
	cmd.SetGlobalNormalizationFunc(config.NormalizeFlagName)
	cmd.AddCommand(detect.DetectCmd(helper))
	cmd.AddCommand(commands.CommandsCmd(helper))
	cmd.AddCommand(commands.GetCmd(helper))
	return cmd
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
