package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/emenda-labs/themeshift/drivers/sass/symbols"
	"github.com/emenda-labs/themeshift/drivers/sass/themingapi"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return dir
}

func TestLoadRepo_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadRepo(t.TempDir())
	if err != nil {
		t.Fatalf("LoadRepo: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRepo_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadRepo(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadRepo: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRepo_OverridesDefaults(t *testing.T) {
	dir := writeConfig(t, `
material:
  old_prefix: "@angular/material/"
  import_path: "@angular/material"
exclude_imports: "prebuilt-themes"
imports_only: true
include: ["src/**/*.scss"]
concurrency: 4
extra_symbols:
  mixins:
    my-app-theme: app-theme
`)

	cfg, err := LoadRepo(dir)
	if err != nil {
		t.Fatalf("LoadRepo: %v", err)
	}

	want := Default()
	want.Material = Entrypoint{OldPrefix: "@angular/material/", ImportPath: "@angular/material"}
	want.ExcludeImports = "prebuilt-themes"
	want.ImportsOnly = true
	want.Include = []string{"src/**/*.scss"}
	want.Concurrency = 4
	want.ExtraSymbols = symbols.Set{Mixins: symbols.Mapping{"my-app-theme": "app-theme"}}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown_key", "materail: {}\n", "parsing config"},
		{"bad_yaml", "include: [\n", "parsing config"},
		{"prefix_without_slash", "cdk:\n  old_prefix: \"~@angular/cdk\"\n", "has to end in a slash"},
		{"empty_import_path", "material:\n  import_path: \"\"\n", "import_path must not be empty"},
		{"bad_exclude_imports", "exclude_imports: \"(\"\n", "exclude_imports"},
		{"bad_glob", "exclude: [\"[\"]\n", "invalid exclude pattern"},
		{"negative_concurrency", "concurrency: -1\n", "concurrency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRepo(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_RequiredFileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "custom.yaml"), false); err == nil {
		t.Fatal("expected error")
	}
}

func TestMigratorOptions(t *testing.T) {
	got := Default().MigratorOptions()
	if diff := cmp.Diff(themingapi.DefaultOptions(), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := themingapi.New(got); err != nil {
		t.Errorf("default options rejected: %v", err)
	}
}
