package themingapi

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
)

// insertUseStatement adds `@use '<importPath>' as <namespace>;` unless the file
// already uses importPath.
//
// Sass requires every `@use` to come before any other statement, and `@import`
// may appear anywhere, so the statement goes at the very top. A leading
// comment (usually a license header) stays above it.
func insertUseStatement(content, importPath, namespace string, ph *placeholders, cache *patternCache) (string, error) {
	existing, err := cache.compile(`@use +['"]` + regexp2.Escape(importPath) + `['"]`)
	if err != nil {
		return "", fmt.Errorf("compiling use pattern for %q: %w", importPath, err)
	}
	found, err := existing.MatchString(content)
	if err != nil {
		return "", fmt.Errorf("matching use pattern for %q: %w", importPath, err)
	}
	if found {
		return content, nil
	}

	index := 0
	lineBreak := ""
	if strings.HasPrefix(strings.TrimLeftFunc(content, unicode.IsSpace), placeholderStart) {
		start := strings.Index(content, placeholderStart)
		if rel := strings.Index(content[start+1:], placeholderEnd); rel > -1 {
			index = start + 1 + rel + len(placeholderEnd)

			// Comments do not carry their newline. Start on the next line.
			if comment, ok := ph.lookup(content[start:index]); ok && !strings.HasSuffix(comment, "\n") {
				if nl := strings.Index(content[index:], "\n"); nl > -1 {
					index += nl + 1
				} else {
					lineBreak = "\n"
				}
			}
		}
	}

	statement := lineBreak + "@use '" + importPath + "' as " + namespace + ";\n"
	return content[:index] + statement + content[index:], nil
}
