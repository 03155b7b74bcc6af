// Package config loads the optional .themeshift.yaml project file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"

	"github.com/emenda-labs/themeshift/drivers/sass/symbols"
	"github.com/emenda-labs/themeshift/drivers/sass/themingapi"
	"github.com/emenda-labs/themeshift/pkg/fstree"
)

// DefaultFileName is looked up in the repository root when no --config flag
// is given.
const DefaultFileName = ".themeshift.yaml"

// Entrypoint maps a legacy import prefix to its Sass module entry point.
type Entrypoint struct {
	OldPrefix  string `yaml:"old_prefix"`
	ImportPath string `yaml:"import_path"`
}

// Config holds the contents of .themeshift.yaml.
type Config struct {
	Material       Entrypoint  `yaml:"material"`
	CDK            Entrypoint  `yaml:"cdk"`
	ExcludeImports string      `yaml:"exclude_imports"`
	ImportsOnly    bool        `yaml:"imports_only"`
	Include        []string    `yaml:"include"`
	Exclude        []string    `yaml:"exclude"`
	Concurrency    int         `yaml:"concurrency"`
	ExtraSymbols   symbols.Set `yaml:"extra_symbols"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	opts := themingapi.DefaultOptions()
	return &Config{
		Material: Entrypoint{OldPrefix: opts.OldMaterialPrefix, ImportPath: opts.NewMaterialImportPath},
		CDK:      Entrypoint{OldPrefix: opts.OldCDKPrefix, ImportPath: opts.NewCDKImportPath},
		Include:  append([]string(nil), fstree.DefaultInclude...),
		Exclude:  append([]string(nil), fstree.DefaultExclude...),
	}
}

// Load reads the YAML file at path over the defaults. Keys the file leaves
// out keep their default value and unknown keys are rejected. A missing file
// yields the defaults when optional is true.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && optional {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadRepo loads DefaultFileName from the repository root, or the defaults
// if the repository has none.
func LoadRepo(repoPath string) (*Config, error) {
	return Load(filepath.Join(repoPath, DefaultFileName), true)
}

// Validate checks the values a Migrator and a file tree would reject.
func (c *Config) Validate() error {
	for name, e := range map[string]Entrypoint{"material": c.Material, "cdk": c.CDK} {
		if !strings.HasSuffix(e.OldPrefix, "/") {
			return fmt.Errorf("%s.old_prefix %q has to end in a slash", name, e.OldPrefix)
		}
		if e.ImportPath == "" {
			return fmt.Errorf("%s.import_path must not be empty", name)
		}
	}

	if c.ExcludeImports != "" {
		if _, err := regexp2.Compile(c.ExcludeImports, regexp2.ECMAScript); err != nil {
			return fmt.Errorf("exclude_imports: %w", err)
		}
	}

	for _, pattern := range c.Include {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid include pattern: %s", pattern)
		}
	}
	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	return nil
}

// MigratorOptions builds the theming API options the config describes.
func (c *Config) MigratorOptions() themingapi.Options {
	return themingapi.Options{
		OldMaterialPrefix:     c.Material.OldPrefix,
		OldCDKPrefix:          c.CDK.OldPrefix,
		NewMaterialImportPath: c.Material.ImportPath,
		NewCDKImportPath:      c.CDK.ImportPath,
		ExcludedImports:       c.ExcludeImports,
		ExtraMaterialSymbols:  c.ExtraSymbols,
		ImportsOnly:           c.ImportsOnly,
	}
}
