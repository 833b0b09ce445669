// pkg/style/style_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (renders to a non-tty, so output is plain text)
// PURPOSE: Verify theme overrides and report rendering

package style

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/hoist/pkg/engine"
	"github.com/arthur-debert/hoist/pkg/errors"
	"github.com/arthur-debert/hoist/pkg/hooks"
	"github.com/arthur-debert/hoist/pkg/testutil"
)

// saveStyles restores the package styles after a theme test mutates them.
func saveStyles(t *testing.T) {
	t.Helper()
	saved := make(map[string]lipgloss.Style, len(registry))
	for name, style := range registry {
		saved[name] = *style
	}
	t.Cleanup(func() {
		for name, style := range saved {
			*registry[name] = style
		}
	})
}

func TestLoadTheme(t *testing.T) {
	t.Run("missing_file_keeps_defaults", func(t *testing.T) {
		saveStyles(t)
		err := LoadTheme(t.TempDir() + "/theme.yaml")
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, SuccessStyle.GetBold())
	})

	t.Run("overrides_named_styles", func(t *testing.T) {
		saveStyles(t)
		path := testutil.CreateFile(t, t.TempDir(), "theme.yaml", `
colors:
  mint:
    light: "#00AA66"
    dark: "#33FFAA"
styles:
  success:
    bold: false
    foreground: mint
  path:
    underline: true
`)

		err := LoadTheme(path)
		testutil.AssertNoError(t, err)

		testutil.AssertFalse(t, SuccessStyle.GetBold())
		testutil.AssertEqual(t,
			lipgloss.TerminalColor(lipgloss.AdaptiveColor{Light: "#00AA66", Dark: "#33FFAA"}),
			SuccessStyle.GetForeground())
		testutil.AssertTrue(t, PathStyle.GetUnderline())
	})

	t.Run("builtin_palette_names_resolve", func(t *testing.T) {
		saveStyles(t)
		path := testutil.CreateFile(t, t.TempDir(), "theme.yaml", `
styles:
  muted:
    foreground: warning
`)

		err := LoadTheme(path)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, lipgloss.TerminalColor(WarningColor), MutedStyle.GetForeground())
	})

	t.Run("literal_colors_pass_through", func(t *testing.T) {
		saveStyles(t)
		path := testutil.CreateFile(t, t.TempDir(), "theme.yaml", `
styles:
  title:
    foreground: "#123456"
`)

		err := LoadTheme(path)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, lipgloss.TerminalColor(lipgloss.Color("#123456")), TitleStyle.GetForeground())
	})

	t.Run("unknown_style_names_are_ignored", func(t *testing.T) {
		saveStyles(t)
		path := testutil.CreateFile(t, t.TempDir(), "theme.yaml", `
styles:
  sparkle:
    bold: true
`)

		err := LoadTheme(path)
		testutil.AssertNoError(t, err)
	})

	t.Run("invalid_yaml_is_reported", func(t *testing.T) {
		saveStyles(t)
		path := testutil.CreateFile(t, t.TempDir(), "theme.yaml", "styles: [")

		err := LoadTheme(path)
		testutil.AssertError(t, err)
		testutil.AssertTrue(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestRenderManifest(t *testing.T) {
	t.Run("hooks_and_transfers", func(t *testing.T) {
		values := hooks.NewValues()
		values.Set("[zone_root fwapi]", "/zones/fwapi")

		manifest := &engine.Manifest{
			Transfers: []engine.Transfer{
				{Source: "lib/x.js", Destination: "/opt/app/lib/x.js"},
				{Source: "lib", Destination: "/opt/app", Recursive: true},
			},
			Hooks:  []hooks.Call{{Name: "zone_root", Args: []string{"fwapi"}}},
			Values: values,
		}

		out := RenderManifest(manifest)

		testutil.AssertContains(t, out, "[zone_root fwapi]")
		testutil.AssertContains(t, out, "/zones/fwapi")
		testutil.AssertContains(t, out, "lib/x.js")
		testutil.AssertContains(t, out, "/opt/app/lib/x.js")
		testutil.AssertContains(t, out, "(recursive)")
	})

	t.Run("empty_manifest", func(t *testing.T) {
		manifest := &engine.Manifest{Values: hooks.NewValues()}

		out := RenderManifest(manifest)

		testutil.AssertContains(t, out, "nothing to copy")
		testutil.AssertFalse(t, strings.Contains(out, "Hooks"))
	})
}

func TestRenderReport(t *testing.T) {
	t.Run("all_copied", func(t *testing.T) {
		report := &engine.Report{
			Results: []engine.TransferResult{
				{Transfer: engine.Transfer{Source: "a.js", Destination: "/opt/a.js"}},
				{Transfer: engine.Transfer{Source: "b.js", Destination: "/opt/b.js"}},
			},
		}

		out := RenderReport(report)

		testutil.AssertContains(t, out, "2 files copied")
		testutil.AssertFalse(t, strings.Contains(out, "failed"))
	})

	t.Run("failures_keep_their_reason", func(t *testing.T) {
		report := &engine.Report{
			Results: []engine.TransferResult{
				{Transfer: engine.Transfer{Source: "a.js", Destination: "/opt/a.js"}},
				{
					Transfer: engine.Transfer{Source: "b.js", Destination: "/opt/b.js"},
					Err:      errors.New(errors.ErrTransferFailure, "connection refused"),
				},
			},
		}

		out := RenderReport(report)

		testutil.AssertContains(t, out, "1 file copied")
		testutil.AssertContains(t, out, "1 failed")
		testutil.AssertContains(t, out, "connection refused")
	})
}
