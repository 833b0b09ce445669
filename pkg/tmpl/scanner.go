// Package tmpl implements the %name% reference grammar used by remote
// path templates and variable values.
//
// A reference is a non-overlapping %<name>% span whose name contains no %
// character. When the name itself is bracketed, as in %[zone_root fwapi]%,
// the reference denotes a hook invocation instead of a plain variable: the
// first whitespace-separated token inside the brackets is the hook name and
// the remaining tokens are its positional arguments.
package tmpl

import (
	"strings"
)

// FindReferences scans s for %name% references and returns the enclosed
// names in left-to-right order, duplicates preserved. An unterminated %
// is not a reference. A bare %% pair is skipped; its closing marker may
// open the next reference.
func FindReferences(s string) []string {
	var refs []string
	for i := 0; i < len(s); {
		open := strings.IndexByte(s[i:], '%')
		if open < 0 {
			break
		}
		open += i
		end := strings.IndexByte(s[open+1:], '%')
		if end < 0 {
			break
		}
		end += open + 1
		name := s[open+1 : end]
		if name == "" {
			i = end
			continue
		}
		refs = append(refs, name)
		i = end + 1
	}
	return refs
}

// ParseHook reports whether a reference name denotes a hook invocation.
// Hook references are bracketed: the name begins with [ and ends with ],
// and the bracketed span holds the hook name followed by its positional
// arguments, whitespace-separated. For non-hook names ok is false.
func ParseHook(name string) (hook string, args []string, ok bool) {
	if len(name) < 2 || name[0] != '[' || name[len(name)-1] != ']' {
		return "", nil, false
	}
	fields := strings.Fields(name[1 : len(name)-1])
	if len(fields) == 0 {
		// Bracketed but empty: still a hook reference, with no name.
		// Callers report it against their registry as unknown.
		return "", nil, true
	}
	return fields[0], fields[1:], true
}
