package status

import (
	"fmt"

	statuscmd "github.com/arthur-debert/hoist/pkg/commands/status"
	"github.com/arthur-debert/hoist/pkg/style"
	"github.com/spf13/cobra"
)

// NewCommand creates the status command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status [files...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			host, _ := cmd.Root().PersistentFlags().GetString("host")
			user, _ := cmd.Root().PersistentFlags().GetString("user")

			result, err := statuscmd.Status(cmd.Context(), statuscmd.Options{
				Files: args,
				Host:  host,
				User:  user,
			})
			if err != nil {
				return err
			}

			fmt.Println(style.MutedStyle.Render(result.Repo))
			fmt.Println(style.RenderManifest(result.Manifest))
			return nil
		},
	}
}
