package up

import (
	"fmt"

	upcmd "github.com/arthur-debert/hoist/pkg/commands/up"
	"github.com/arthur-debert/hoist/pkg/style"
	"github.com/spf13/cobra"
)

// NewCommand creates the up command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "up [files...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			host, _ := cmd.Root().PersistentFlags().GetString("host")
			user, _ := cmd.Root().PersistentFlags().GetString("user")

			result, err := upcmd.Up(cmd.Context(), upcmd.Options{
				Files:  args,
				DryRun: dryRun,
				Host:   host,
				User:   user,
			})
			if result == nil || result.Report == nil {
				return err
			}

			if result.DryRun {
				fmt.Println(style.DryRunStyle.Render(MsgDryRunNotice))
				for _, planned := range result.Planned {
					fmt.Println(planned)
				}
				if len(result.Planned) == 0 {
					fmt.Println(MsgNothingToCopy)
				}
				return err
			}

			fmt.Println(style.RenderReport(result.Report))
			return err
		},
	}
}
