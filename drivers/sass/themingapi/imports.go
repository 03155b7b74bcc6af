package themingapi

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
)

// DetectedImports holds the import statements that matched a prefix and the
// namespaces their `@use` statements bind.
type DetectedImports struct {
	// Imports are the matched statements in source order, with the line
	// break when nothing else follows on the line. They are removed
	// verbatim once migration is done.
	Imports []string

	// Namespaces are the distinct `@use` namespaces in first-seen order.
	Namespaces []string
}

// detectImports finds every `@import` or `@use` of a path starting with prefix.
// Statements matching exclude are ignored. prefix must end in a slash.
func detectImports(content, prefix string, exclude *regexp2.Regexp, cache *patternCache) (DetectedImports, error) {
	if !strings.HasSuffix(prefix, "/") {
		return DetectedImports{}, fmt.Errorf("prefix %q has to end in a slash: %w", prefix, ErrInvalidArgument)
	}

	pattern, err := cache.compile(importPattern(prefix))
	if err != nil {
		return DetectedImports{}, fmt.Errorf("compiling import pattern for %q: %w", prefix, err)
	}

	var result DetectedImports
	seen := make(map[string]bool)

	m, err := pattern.FindStringMatch(content)
	for ; m != nil && err == nil; m, err = pattern.FindNextMatch(m) {
		statement := m.String()

		if exclude != nil {
			excluded, matchErr := exclude.MatchString(statement)
			if matchErr != nil {
				return DetectedImports{}, fmt.Errorf("matching exclude pattern: %w", matchErr)
			}
			if excluded {
				continue
			}
		}

		if m.GroupByNumber(1).String() == "use" {
			namespace, nsErr := extractNamespace(statement)
			if nsErr != nil {
				return DetectedImports{}, nsErr
			}
			if namespace != "" && !seen[namespace] {
				seen[namespace] = true
				result.Namespaces = append(result.Namespaces, namespace)
			}
		}

		result.Imports = append(result.Imports, statement)
	}
	if err != nil {
		return DetectedImports{}, fmt.Errorf("scanning imports for %q: %w", prefix, err)
	}

	return result, nil
}

// importPattern matches one import statement of a path starting with prefix.
// The match ends at the line break or before an escaped comment, so a comment
// trailing the statement stays in the content once the statement is removed.
func importPattern(prefix string) string {
	return `@(import|use) +['"]~?` + regexp2.Escape(prefix) + `[^'"\n]*['"]` +
		`(?:(?!` + regexp2.Escape(placeholderStart) + `)[^;\n])*;?[ \t\r]*\n?`
}

// extractNamespace derives the namespace a `@use` statement binds. It returns
// "" for `as *`, which exposes members without a namespace.
func extractNamespace(statement string) (string, error) {
	closeQuote := max(strings.LastIndex(statement, `"`), strings.LastIndex(statement, `'`))
	if closeQuote > -1 {
		if as := strings.Index(statement[closeQuote:], "as "); as > -1 {
			rest := statement[closeQuote+as+len("as "):]
			namespace, _, _ := strings.Cut(rest, ";")
			namespace = strings.TrimSpace(namespace)
			if namespace == "*" {
				return "", nil
			}
			if namespace != "" {
				return namespace, nil
			}
		} else if lastSlash := strings.LastIndex(statement[:closeQuote], "/"); lastSlash > -1 {
			name := trimSassFileName(statement[lastSlash+1 : closeQuote])

			// Sass ignores a trailing `/index` and uses the directory name.
			if name == "index" {
				if prevSlash := strings.LastIndex(statement[:lastSlash], "/"); prevSlash > -1 {
					if dir := statement[prevSlash+1 : lastSlash]; dir != "" {
						return dir, nil
					}
				}
			} else if name != "" {
				return name, nil
			}
		}
	}

	return "", fmt.Errorf("could not extract namespace from import %q: %w", statement, ErrInvalidImport)
}

// trimSassFileName strips the partial underscore and the extensions Sass lets
// an import omit.
func trimSassFileName(name string) string {
	name = strings.TrimPrefix(name, "_")
	for _, suffix := range []string{".import.scss", ".scss", ".import"} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}

// removeStrings deletes the first occurrence of each statement and trims the
// whitespace left at the top of the file.
func removeStrings(content string, toRemove []string) string {
	for _, s := range toRemove {
		content = strings.Replace(content, s, "", 1)
	}
	return strings.TrimLeftFunc(content, unicode.IsSpace)
}
