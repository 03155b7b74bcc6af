// Package themingapi rewrites Sass stylesheets from the `@import`-based
// Angular Material theming API to the `@use`-based Sass module API.
//
// Migration is a pure text transform. Comments are escaped into placeholder
// tokens, imports of the old entry points are detected, legacy mixins,
// functions and variables are renamed into the `mat` and `cdk` namespaces,
// deleted variables are inlined, the old imports are dropped and the comments
// are restored.
package themingapi

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/emenda-labs/themeshift/drivers/sass/symbols"
)

const (
	materialNamespace = "mat"
	cdkNamespace      = "cdk"
)

// PrebuiltThemeImports excludes the prebuilt theme stylesheets, which are
// plain CSS and have no Sass module to migrate to.
const PrebuiltThemeImports = `material/prebuilt-themes|cdk/.*-prebuilt`

// Options configures a Migrator.
type Options struct {
	// OldMaterialPrefix and OldCDKPrefix select the legacy imports. Both must
	// end in a slash, e.g. "~@angular/material/".
	OldMaterialPrefix string
	OldCDKPrefix      string

	// NewMaterialImportPath and NewCDKImportPath are the module entry points
	// inserted as `@use` statements, e.g. "~@angular/material".
	NewMaterialImportPath string
	NewCDKImportPath      string

	// ExcludedImports is an optional regular expression. Matching import
	// statements are neither migrated nor removed.
	ExcludedImports string

	// ExtraMaterialSymbols are merged over the built-in Material tables.
	ExtraMaterialSymbols symbols.Set

	// ImportsOnly leaves files untouched when they import neither Material
	// nor the CDK. By default symbols are migrated even without an import,
	// since they may have been imported transitively.
	ImportsOnly bool

	// PatternCacheSize bounds the compiled pattern cache. Zero picks
	// DefaultPatternCacheSize.
	PatternCacheSize int
}

// DefaultOptions returns the configuration used by `ng update` for v12.
func DefaultOptions() Options {
	return Options{
		OldMaterialPrefix:     "~@angular/material/",
		OldCDKPrefix:          "~@angular/cdk/",
		NewMaterialImportPath: "~@angular/material",
		NewCDKImportPath:      "~@angular/cdk",
	}
}

// Migrator migrates stylesheet content. It holds no per-file state and is
// safe for concurrent use.
type Migrator struct {
	opts     Options
	exclude  *regexp2.Regexp
	material symbols.Set
	cdk      symbols.Set
	cache    *patternCache
}

// New validates opts and returns a Migrator.
func New(opts Options) (*Migrator, error) {
	for _, prefix := range []string{opts.OldMaterialPrefix, opts.OldCDKPrefix} {
		if !strings.HasSuffix(prefix, "/") {
			return nil, fmt.Errorf("prefix %q has to end in a slash: %w", prefix, ErrInvalidArgument)
		}
	}
	if opts.NewMaterialImportPath == "" || opts.NewCDKImportPath == "" {
		return nil, fmt.Errorf("new import paths must not be empty: %w", ErrInvalidArgument)
	}

	var exclude *regexp2.Regexp
	if opts.ExcludedImports != "" {
		re, err := regexp2.Compile(opts.ExcludedImports, regexp2.ECMAScript)
		if err != nil {
			return nil, fmt.Errorf("compiling excluded imports pattern %q: %v: %w", opts.ExcludedImports, err, ErrInvalidArgument)
		}
		exclude = re
	}

	cache, err := newPatternCache(opts.PatternCacheSize)
	if err != nil {
		return nil, err
	}

	return &Migrator{
		opts:     opts,
		exclude:  exclude,
		material: MaterialSymbols().Merge(opts.ExtraMaterialSymbols),
		cdk:      CDKSymbols(),
		cache:    cache,
	}, nil
}

// MigrateFileContent migrates content in one pass. Without any legacy
// reference the content is returned unchanged.
func (m *Migrator) MigrateFileContent(content string) (string, error) {
	escaped, ph := escapeComments(content)

	// Both detections run against the untouched imports.
	cdkImports, err := detectImports(escaped, m.opts.OldCDKPrefix, m.exclude, m.cache)
	if err != nil {
		return "", err
	}
	materialImports, err := detectImports(escaped, m.opts.OldMaterialPrefix, m.exclude, m.cache)
	if err != nil {
		return "", err
	}

	if m.opts.ImportsOnly && len(cdkImports.Imports) == 0 && len(materialImports.Imports) == 0 {
		return content, nil
	}

	// The legacy Material theming bundle forwarded the CDK mixins, so CDK
	// symbols may be referenced through a Material namespace too.
	cdkNamespaces := unionNamespaces(cdkImports.Namespaces, materialImports.Namespaces)

	out, err := m.migrateSymbols(escaped, m.cdk, []symbols.Kind{symbols.KindMixin, symbols.KindVariable},
		cdkNamespaces, cdkNamespace, m.opts.NewCDKImportPath, ph)
	if err != nil {
		return "", err
	}

	out, err = m.migrateSymbols(out, m.material, symbols.Kinds,
		materialImports.Namespaces, materialNamespace, m.opts.NewMaterialImportPath, ph)
	if err != nil {
		return "", err
	}

	out, err = replaceRemovedVariables(out, removedMaterialVariables, materialImports.Namespaces, m.cache)
	if err != nil {
		return "", err
	}

	// Symbols used transitively through the Material import have been handled
	// above, so the unprefixed names are safe to inline and the import can go.
	if len(materialImports.Imports) > 0 {
		out, err = replaceRemovedVariables(out, unprefixedRemovedVariables, materialImports.Namespaces, m.cache)
		if err != nil {
			return "", err
		}
		out = removeStrings(out, materialImports.Imports)
	}

	if len(cdkImports.Imports) > 0 {
		out = removeStrings(out, cdkImports.Imports)
	}

	return restoreComments(out, ph), nil
}

// migrateSymbols renames the given kinds from set and, if anything changed,
// inserts the `@use` statement for importPath.
func (m *Migrator) migrateSymbols(content string, set symbols.Set, kinds []symbols.Kind, namespaces []string, newNamespace, importPath string, ph *placeholders) (string, error) {
	changed := false

	for _, kind := range kinds {
		out, renamed, err := renameSymbols(content, kind, set.Get(kind), namespaces, newNamespace, m.cache)
		if err != nil {
			return "", err
		}
		content = out
		changed = changed || renamed
	}

	if !changed {
		return content, nil
	}
	return insertUseStatement(content, importPath, newNamespace, ph, m.cache)
}

func unionNamespaces(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, ns := range append(append([]string{}, a...), b...) {
		if !seen[ns] {
			seen[ns] = true
			out = append(out, ns)
		}
	}
	return out
}

// MigrateFileContent migrates content with a Migrator built from opts.
// Callers migrating many files should build one Migrator and reuse it.
func MigrateFileContent(content string, opts Options) (string, error) {
	m, err := New(opts)
	if err != nil {
		return "", err
	}
	return m.MigrateFileContent(content)
}
