package tmpl

import (
	"strings"

	"github.com/arthur-debert/hoist/pkg/errors"
)

// Substitute replaces every %name% reference in template with values[name].
// Substituted values may themselves contain references (a variable's raw
// value is recorded verbatim during resolution), so replacement repeats
// until no reference remains, bounded by the size of the value table.
//
// A fully resolved value table leaves no % behind. If one remains — a name
// was referenced but never resolved, or a value carried a stray marker —
// Substitute fails with an unresolved-reference error rather than producing
// a silently wrong path.
func Substitute(template string, values map[string]string) (string, error) {
	result := template
	maxPasses := len(values) + 1
	for pass := 0; pass < maxPasses; pass++ {
		refs := FindReferences(result)
		if len(refs) == 0 {
			break
		}

		next := result
		replaced := make(map[string]bool, len(refs))
		for _, name := range refs {
			if replaced[name] {
				continue
			}
			replaced[name] = true
			if value, ok := values[name]; ok {
				next = strings.ReplaceAll(next, "%"+name+"%", value)
			}
		}

		if next == result {
			// No progress; the residual check below reports what is left.
			break
		}
		result = next
	}

	if strings.ContainsRune(result, '%') {
		return "", errors.Newf(errors.ErrUnresolvedRef,
			"unresolved references remain after substitution: %q", result)
	}
	return result, nil
}
