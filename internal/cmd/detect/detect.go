// Package detect implements the detect subcommand.
package detect

import (
	"github.com/spf13/cobra"
	"github.com/vercel/pmdetect/internal/cmdutil"
	"github.com/vercel/pmdetect/internal/output"
)

// DetectCmd returns the detect command
func DetectCmd(helper *cmdutil.Helper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Print the package manager used by the current project",
		Long: `Print the name, and the declared version when there is one, of the
package manager that manages the working directory.

Every directory from the working directory up to the filesystem root is
searched with the configured strategies (packageJson, lockFile). When none
matches and the userAgent strategy is enabled, the package manager that
launched pmdetect is reported instead.`,
		Args:                  cobra.NoArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
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
			return output.WriteIdentity(base.Stdout, base.Format, id)
		},
	}
	return cmd
}
