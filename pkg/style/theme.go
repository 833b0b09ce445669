package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/hoist/pkg/errors"
)

// ColorDef is an adaptive color definition in YAML.
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef overrides one named style. Absent fields keep the built-in
// value, so a theme only has to name what it changes.
type StyleDef struct {
	Bold       *bool  `yaml:"bold,omitempty"`
	Italic     *bool  `yaml:"italic,omitempty"`
	Underline  *bool  `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Theme is the theme.yaml document.
type Theme struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// registry maps theme style names to the package styles.
var registry = map[string]*lipgloss.Style{
	"title":   &TitleStyle,
	"success": &SuccessStyle,
	"error":   &ErrorStyle,
	"warning": &WarningStyle,
	"muted":   &MutedStyle,
	"path":    &PathStyle,
	"hook":    &HookStyle,
	"dryrun":  &DryRunStyle,
}

// builtinColors lets theme styles reference the stock palette by name.
var builtinColors = map[string]lipgloss.AdaptiveColor{
	"success": SuccessColor,
	"error":   ErrorColor,
	"warning": WarningColor,
	"info":    InfoColor,
	"heading": HeadingColor,
	"muted":   MutedColor,
	"path":    PathColor,
	"hook":    HookColor,
}

// LoadTheme applies a theme file's overrides to the package styles.
// A missing file leaves the defaults untouched. Style names not in the
// registry are ignored, so themes survive across versions.
func LoadTheme(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read theme %s", path)
	}

	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "cannot parse theme %s", path)
	}

	palette := make(map[string]lipgloss.AdaptiveColor, len(builtinColors)+len(theme.Colors))
	for name, color := range builtinColors {
		palette[name] = color
	}
	for name, def := range theme.Colors {
		palette[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	for name, def := range theme.Styles {
		target, ok := registry[name]
		if !ok {
			continue
		}
		*target = applyDef(*target, def, palette)
	}
	return nil
}

func applyDef(s lipgloss.Style, def StyleDef, palette map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	if def.Bold != nil {
		s = s.Bold(*def.Bold)
	}
	if def.Italic != nil {
		s = s.Italic(*def.Italic)
	}
	if def.Underline != nil {
		s = s.Underline(*def.Underline)
	}
	if def.Foreground != "" {
		s = s.Foreground(colorFor(def.Foreground, palette))
	}
	if def.Background != "" {
		s = s.Background(colorFor(def.Background, palette))
	}
	return s
}

// colorFor resolves a palette name, falling back to a literal color.
func colorFor(name string, palette map[string]lipgloss.AdaptiveColor) lipgloss.TerminalColor {
	if color, ok := palette[name]; ok {
		return color
	}
	return lipgloss.Color(name)
}
