// Package mapping matches repo-relative paths against a repository's
// ordered path rules and composes final remote destinations.
package mapping

import (
	"path"
	"strings"

	"github.com/arthur-debert/hoist/pkg/errors"
)

// Rule maps a local path prefix onto a remote path template. An empty
// Local is the repository root sentinel and matches every path.
type Rule struct {
	Local  string
	Remote string
}

// ParseRule parses the local=remote declaration form. The local side may
// be empty (the root sentinel); the remote side must not be.
func ParseRule(s string) (Rule, error) {
	idx := strings.Index(s, "=")
	if idx < 0 {
		return Rule{}, errors.Newf(errors.ErrInvalidInput,
			"path rule %q must have the form local=remote", s)
	}
	rule := Rule{Local: s[:idx], Remote: s[idx+1:]}
	if rule.Remote == "" {
		return Rule{}, errors.Newf(errors.ErrInvalidInput,
			"path rule %q has an empty remote template", s)
	}
	return rule, nil
}

// ParseRules parses an ordered list of declarations, reporting every
// invalid entry rather than stopping at the first.
func ParseRules(declarations []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(declarations))
	errs := errors.NewList()
	for _, declaration := range declarations {
		rule, err := ParseRule(declaration)
		if err != nil {
			errs.Add(err)
			continue
		}
		rules = append(rules, rule)
	}
	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}
	return rules, nil
}

// Match returns the index of the first rule whose Local is an anchored
// prefix of filePath. Declaration order is priority order: specific
// prefixes are declared before catch-alls, the way routes are.
func Match(filePath string, rules []Rule) (int, error) {
	for i, rule := range rules {
		if rule.Local == "" || strings.HasPrefix(filePath, rule.Local) {
			return i, nil
		}
	}
	return -1, errors.Newf(errors.ErrNoMapping,
		"no path rule matches %q", filePath).WithDetail("path", filePath)
}

// Compose produces the final destination for a file. The file's path
// relative to the matched prefix is appended to the rule's substituted
// remote path; under the root sentinel the whole path is preserved
// verbatim. Directories transfer as whole subtrees: their destination is
// the parent of the composed path, so a recursive copy recreates the
// directory itself as the leaf.
func Compose(rule Rule, resolvedRemote, filePath string, isDirectory bool) (destination string, recursive bool) {
	rel := filePath
	if rule.Local != "" {
		rel = strings.TrimPrefix(filePath, rule.Local)
		rel = strings.TrimPrefix(rel, "/")
	}

	destination = resolvedRemote
	if rel != "" {
		destination = path.Join(resolvedRemote, rel)
	}

	if isDirectory {
		return path.Dir(destination), true
	}
	return destination, false
}
