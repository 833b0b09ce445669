package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/hoist/pkg/engine"
)

// RenderManifest renders the plan view: the hooks a run resolved (with
// their values when already known) and the queued transfers.
func RenderManifest(m *engine.Manifest) string {
	var b strings.Builder

	if len(m.Hooks) > 0 {
		b.WriteString(TitleStyle.Render("Hooks") + "\n")
		for _, call := range m.Hooks {
			line := "  " + HookStyle.Render(HookMark+" "+call.Signature())
			if value, ok := m.Values.Get(call.Signature()); ok {
				line += MutedStyle.Render(" "+Arrow+" ") + value
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString(TitleStyle.Render("Transfers") + "\n")
	if len(m.Transfers) == 0 {
		b.WriteString(MutedStyle.Render("  nothing to copy") + "\n")
		return b.String()
	}
	for _, transfer := range m.Transfers {
		b.WriteString("  " + MutedStyle.Render(QueuedMark) + " " + renderTransfer(transfer) + "\n")
	}
	return b.String()
}

// RenderReport renders per-transfer outcomes and a summary line.
func RenderReport(r *engine.Report) string {
	var b strings.Builder

	for _, result := range r.Results {
		if result.Err != nil {
			b.WriteString("  " + ErrorStyle.Render(ErrorMark) + " " + renderTransfer(result.Transfer))
			b.WriteString(MutedStyle.Render(": ") + result.Err.Error() + "\n")
			continue
		}
		b.WriteString("  " + SuccessStyle.Render(SuccessMark) + " " + renderTransfer(result.Transfer) + "\n")
	}

	copied := len(r.Results) - r.Failed()
	summary := fmt.Sprintf("%d %s copied", copied, pluralize("file", copied))
	if failed := r.Failed(); failed > 0 {
		summary += ", " + ErrorStyle.Render(fmt.Sprintf("%d failed", failed))
	}
	b.WriteString(summary + "\n")
	return b.String()
}

func renderTransfer(t engine.Transfer) string {
	line := t.Source + " " + MutedStyle.Render(Arrow) + " " + PathStyle.Render(t.Destination)
	if t.Recursive {
		line += MutedStyle.Render(" (recursive)")
	}
	return line
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
