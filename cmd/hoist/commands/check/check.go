package check

import (
	"fmt"

	checkcmd "github.com/arthur-debert/hoist/pkg/commands/check"
	"github.com/arthur-debert/hoist/pkg/style"
	"github.com/spf13/cobra"
)

// NewCommand creates the check command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := checkcmd.Check(cmd.Context(), checkcmd.Options{})
			if result != nil {
				fmt.Printf(MsgSummaryFormat,
					result.Repo, result.RuleCount, result.VarCount, result.HookCount)
			}
			if err != nil {
				return err
			}

			fmt.Println(style.SuccessStyle.Render(MsgConfigOK))
			return nil
		},
	}
}
