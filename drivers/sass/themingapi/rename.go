package themingapi

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/emenda-labs/themeshift/drivers/sass/symbols"
)

// replaceAll is the replacement count that rewrites every match.
const replaceAll = -1

// Characters that may continue a Sass identifier.
const identChars = `[-_a-zA-Z0-9]`

// symbolFormat builds the search pattern and the replacement text for one
// symbol kind. ns is "" for the un-namespaced pass.
type symbolFormat struct {
	pattern func(ns, name string) string
	value   func(ns, name string) string
}

var symbolFormats = map[symbols.Kind]symbolFormat{
	// Mixins may be included without parentheses, so only an identifier
	// character after the name disqualifies a match.
	symbols.KindMixin: {
		pattern: func(ns, name string) string {
			return `@include\s+` + regexp2.Escape(qualify(ns, name)) + `(?!` + identChars + `)`
		},
		value: func(ns, name string) string {
			return "@include " + ns + "." + name
		},
	},
	symbols.KindFunction: {
		pattern: func(ns, name string) string {
			return `(?<!` + identChars + `)` + regexp2.Escape(qualify(ns, name)+"(")
		},
		value: func(ns, name string) string {
			return ns + "." + name + "("
		},
	},
	symbols.KindVariable: {
		pattern: func(ns, name string) string {
			return regexp2.Escape(qualify(ns, "$"+name)) + `(?!` + identChars + `)`
		},
		value: func(ns, name string) string {
			return ns + ".$" + name
		},
	},
}

func qualify(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + "." + name
}

// renameRule is one compiled search pattern with its literal replacement.
type renameRule struct {
	pattern *regexp2.Regexp
	value   string
	count   int
}

// apply rewrites content. It fails if the rule would leave matches behind.
func (r renameRule) apply(content string) (string, error) {
	if r.count != replaceAll {
		return "", fmt.Errorf("rename pattern %q must replace every match, has count %d: %w", r.pattern.String(), r.count, ErrInvalidState)
	}
	value := r.value
	return r.pattern.ReplaceFunc(content, func(regexp2.Match) string { return value }, -1, r.count)
}

// candidateNamespaces orders namespaces longest first and appends "" so the
// last pass migrates un-namespaced references.
func candidateNamespaces(namespaces []string) []string {
	out := make([]string, 0, len(namespaces)+1)
	out = append(out, namespaces...)
	symbols.SortLongestFirst(out)
	return append(out, "")
}

// renameSymbols migrates every symbol of kind in mapping, as referenced
// through any of namespaces or without one, to newNamespace. It reports
// whether anything was replaced.
func renameSymbols(content string, kind symbols.Kind, mapping symbols.Mapping, namespaces []string, newNamespace string, cache *patternCache) (string, bool, error) {
	format, ok := symbolFormats[kind]
	if !ok {
		return "", false, fmt.Errorf("no rename format for symbol kind %q: %w", kind, ErrInvalidState)
	}

	changed := false
	keys := symbols.SortedKeys(mapping)

	for _, ns := range candidateNamespaces(namespaces) {
		for _, key := range keys {
			if !strings.Contains(content, key) {
				continue
			}

			pattern, err := cache.compile(format.pattern(ns, key))
			if err != nil {
				return "", false, fmt.Errorf("compiling %s pattern for %q: %w", kind, key, err)
			}

			rule := renameRule{
				pattern: pattern,
				value:   format.value(newNamespace, mapping[key]),
				count:   replaceAll,
			}

			out, err := rule.apply(content)
			if err != nil {
				return "", false, err
			}
			if out != content {
				changed = true
				content = out
			}
		}
	}

	return content, changed, nil
}
