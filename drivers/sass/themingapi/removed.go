package themingapi

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/emenda-labs/themeshift/drivers/sass/symbols"
)

// removedVariablePattern matches a reference to a deleted variable. Assignments
// are left alone since there is nothing to inline into them.
func removedVariablePattern(ns, name string) string {
	return regexp2.Escape(qualify(ns, "$"+name)) + `(?!` + identChars + `)(?!\s*:)`
}

// replaceRemovedVariables inlines the literal value of every variable in
// table, referenced through any of namespaces or without one.
func replaceRemovedVariables(content string, table symbols.Mapping, namespaces []string, cache *patternCache) (string, error) {
	keys := symbols.SortedKeys(table)

	for _, ns := range candidateNamespaces(namespaces) {
		for _, name := range keys {
			if !strings.Contains(content, "$"+name) {
				continue
			}

			pattern, err := cache.compile(removedVariablePattern(ns, name))
			if err != nil {
				return "", fmt.Errorf("compiling removed variable pattern for %q: %w", name, err)
			}

			rule := renameRule{pattern: pattern, value: table[name], count: replaceAll}
			content, err = rule.apply(content)
			if err != nil {
				return "", err
			}
		}
	}

	return content, nil
}
