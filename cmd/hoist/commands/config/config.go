package config

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/hoist/pkg/commands/configure"
	"github.com/arthur-debert/hoist/pkg/style"
	"github.com/spf13/cobra"
)

// NewCommand creates the config command and its subcommands
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare 'hoist config' shows the effective configuration.
			return runShow(cmd)
		},
	}

	cmd.AddCommand(newSetHostCmd())
	cmd.AddCommand(newSetUserCmd())
	cmd.AddCommand(newSetRootCmd())
	cmd.AddCommand(newShowCmd())

	return cmd
}

func newSetHostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-host <host>",
		Short: MsgSetHostShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configure.SetHost(args[0]); err != nil {
				return err
			}
			fmt.Printf(MsgHostSetFormat, args[0])
			return nil
		},
	}
}

func newSetUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-user <user>",
		Short: MsgSetUserShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configure.SetUser(args[0]); err != nil {
				return err
			}
			fmt.Printf(MsgUserSetFormat, args[0])
			return nil
		},
	}
}

func newSetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-root [path]",
		Short: MsgSetRootShort,
		Long:  MsgSetRootLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) > 0 {
				root = args[0]
			}
			result, err := configure.SetRoot(cmd.Context(), configure.Options{Root: root})
			if err != nil {
				return err
			}
			fmt.Printf(MsgRootSetFormat, result.Repo, result.Root)
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd)
		},
	}
}

func runShow(cmd *cobra.Command) error {
	view, err := configure.Show(cmd.Context(), configure.Options{})
	if err != nil {
		return err
	}
	fmt.Print(renderView(view))
	return nil
}

func renderView(view *configure.View) string {
	out := style.TitleStyle.Render("Settings") + "\n"
	out += fmt.Sprintf("  host: %s\n", orUnset(view.Settings.Host))
	out += fmt.Sprintf("  user: %s\n", orUnset(view.Settings.User))
	out += fmt.Sprintf("  transport: %s / %s\n",
		view.Settings.SSHBinary(), view.Settings.SCPBinary())

	if view.Repo == "" {
		return out
	}

	out += "\n" + style.TitleStyle.Render("Repository") + "\n"
	out += fmt.Sprintf("  %s\n", view.Repo)
	if root, ok := view.Settings.RootFor(view.Repo); ok {
		out += fmt.Sprintf("  root: %s\n", style.PathStyle.Render(root))
	}

	if view.Config == nil {
		out += fmt.Sprintf("  %s\n", style.MutedStyle.Render(MsgRepoUnconfigured))
		return out
	}

	out += "\n" + style.TitleStyle.Render("Rules") + "\n"
	for _, rule := range view.Config.Paths {
		out += fmt.Sprintf("  %s\n", rule)
	}
	out += renderTable("Variables", view.Config.Variables)
	out += renderTable("Hooks", view.Config.Hooks)
	return out
}

func renderTable(title string, entries map[string]string) string {
	if len(entries) == 0 {
		return ""
	}
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	out := "\n" + style.TitleStyle.Render(title) + "\n"
	for _, name := range names {
		out += fmt.Sprintf("  %s = %s\n", name, entries[name])
	}
	return out
}

func orUnset(s string) string {
	if s == "" {
		return style.MutedStyle.Render("(unset)")
	}
	return s
}
