// cmd/hoist/commands/root_test.go
// TEST TYPE: Unit Test (command tree structure)
// DEPENDENCIES: None
// PURPOSE: Verifies the root command wiring: subcommands, groups, flags
// and the topic-based help system

package commands

import (
	"testing"

	"github.com/arthur-debert/hoist/pkg/testutil"
)

func TestNewRootCmd(t *testing.T) {
	rootCmd := NewRootCmd()

	t.Run("registers_every_command", func(t *testing.T) {
		expected := []string{"up", "status", "check", "config", "topics", "version", "completion", "help"}
		for _, name := range expected {
			cmd, _, err := rootCmd.Find([]string{name})
			testutil.AssertNoError(t, err, "command %s", name)
			testutil.AssertEqual(t, name, cmd.Name())
		}
	})

	t.Run("declares_global_flags", func(t *testing.T) {
		flags := rootCmd.PersistentFlags()
		for _, name := range []string{"verbose", "dry-run", "host", "user"} {
			testutil.AssertNotNil(t, flags.Lookup(name), "flag %s", name)
		}
	})

	t.Run("groups_commands", func(t *testing.T) {
		testutil.AssertEqual(t, 2, len(rootCmd.Groups()))

		upCmd, _, err := rootCmd.Find([]string{"up"})
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, "core", upCmd.GroupID)

		versionCmd, _, err := rootCmd.Find([]string{"version"})
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, "misc", versionCmd.GroupID)
	})

	t.Run("config_subcommands", func(t *testing.T) {
		for _, name := range []string{"set-host", "set-user", "set-root", "show"} {
			cmd, _, err := rootCmd.Find([]string{"config", name})
			testutil.AssertNoError(t, err, "config %s", name)
			testutil.AssertEqual(t, name, cmd.Name())
		}
	})

	t.Run("help_serves_embedded_topics", func(t *testing.T) {
		helpCmd, _, err := rootCmd.Find([]string{"help"})
		testutil.AssertNoError(t, err)

		completions, _ := helpCmd.ValidArgsFunction(helpCmd, nil, "")
		found := make(map[string]bool, len(completions))
		for _, c := range completions {
			found[c] = true
		}
		for _, topic := range []string{"rules", "variables", "hooks", "configuration", "option-dry-run"} {
			testutil.AssertTrue(t, found[topic], "topic %s", topic)
		}
	})

	t.Run("errors_stay_quiet_for_main_to_render", func(t *testing.T) {
		testutil.AssertTrue(t, rootCmd.SilenceErrors)
		testutil.AssertTrue(t, rootCmd.SilenceUsage)
	})
}
