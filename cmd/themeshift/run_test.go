package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/emenda-labs/themeshift/core/cli"
	"github.com/emenda-labs/themeshift/pkg/logging"
)

const legacyTheme = "@import '~@angular/material/theming';\n@include mat-core();\n"

const migratedTheme = "@use '~@angular/material' as mat;\n@include mat.core();\n"

func setupRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	repo := t.TempDir()
	for path, content := range files {
		full := filepath.Join(repo, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return repo
}

func readFile(t *testing.T, repo, path string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(repo, filepath.FromSlash(path)))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func newTestRunner() (*runner, *bytes.Buffer) {
	var out bytes.Buffer
	return &runner{stdout: &out, logger: logging.Nop()}, &out
}

func TestUpgradeMaterial_ReadsInstalledVersion(t *testing.T) {
	repo := setupRepo(t, map[string]string{
		"package.json":    `{"dependencies": {"@angular/material": "^11.2.0"}}`,
		"src/styles.scss": legacyTheme,
	})
	r, out := newTestRunner()

	err := r.upgradeMaterial(context.Background(), cli.UpgradeMaterialOptions{
		RunOptions: cli.RunOptions{Repo: repo},
		To:         "v12.0.0",
	})
	if err != nil {
		t.Fatalf("upgradeMaterial: %v", err)
	}

	if diff := cmp.Diff(migratedTheme, readFile(t, repo, "src/styles.scss")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	for _, want := range []string{"Current version: v11.2.0", "migrated src/styles.scss", "1 scanned, 1 changed, 0 failed"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestUpgradeMaterial_NoMigrationInRange(t *testing.T) {
	repo := setupRepo(t, map[string]string{"src/styles.scss": legacyTheme})
	r, out := newTestRunner()

	err := r.upgradeMaterial(context.Background(), cli.UpgradeMaterialOptions{
		RunOptions: cli.RunOptions{Repo: repo},
		From:       "v12.1.0",
		To:         "v13.0.0",
	})
	if err != nil {
		t.Fatalf("upgradeMaterial: %v", err)
	}

	if got := readFile(t, repo, "src/styles.scss"); got != legacyTheme {
		t.Errorf("file changed to %q", got)
	}
	if !strings.Contains(out.String(), "No stylesheet migrations apply") {
		t.Errorf("output = %q", out.String())
	}
}

func TestUpgradeMaterial_AlreadyAtTarget(t *testing.T) {
	r, _ := newTestRunner()
	err := r.upgradeMaterial(context.Background(), cli.UpgradeMaterialOptions{
		RunOptions: cli.RunOptions{Repo: t.TempDir()},
		From:       "v12.0.0",
		To:         "v12.0.0",
	})
	if err == nil || !strings.Contains(err.Error(), "already at") {
		t.Errorf("err = %v, want already at target", err)
	}
}

func TestUpgradeMaterial_MissingManifest(t *testing.T) {
	r, _ := newTestRunner()
	err := r.upgradeMaterial(context.Background(), cli.UpgradeMaterialOptions{
		RunOptions: cli.RunOptions{Repo: t.TempDir()},
		To:         "v12.0.0",
	})
	if err == nil || !strings.Contains(err.Error(), "package.json") {
		t.Errorf("err = %v, want a package.json error", err)
	}
}

func TestMigrateThemingAPI_KeepsPrebuiltThemes(t *testing.T) {
	input := "@import '~@angular/material/prebuilt-themes/indigo-pink.css';\n" + legacyTheme
	repo := setupRepo(t, map[string]string{"styles.scss": input})
	r, _ := newTestRunner()

	if err := r.migrateThemingAPI(context.Background(), cli.RunOptions{Repo: repo}); err != nil {
		t.Fatalf("migrateThemingAPI: %v", err)
	}

	want := "@use '~@angular/material' as mat;\n" +
		"@import '~@angular/material/prebuilt-themes/indigo-pink.css';\n" +
		"@include mat.core();\n"
	if diff := cmp.Diff(want, readFile(t, repo, "styles.scss")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMigrateThemingAPI_DryRun(t *testing.T) {
	repo := setupRepo(t, map[string]string{"styles.scss": legacyTheme})
	r, out := newTestRunner()

	if err := r.migrateThemingAPI(context.Background(), cli.RunOptions{Repo: repo, DryRun: true}); err != nil {
		t.Fatalf("migrateThemingAPI: %v", err)
	}

	if got := readFile(t, repo, "styles.scss"); got != legacyTheme {
		t.Errorf("dry run changed file to %q", got)
	}
	if !strings.Contains(out.String(), "[dry-run] migrated styles.scss") {
		t.Errorf("output = %q", out.String())
	}
}

func TestMigrateThemingAPI_ReportsFailures(t *testing.T) {
	repo := setupRepo(t, map[string]string{
		"bad.scss":  "@use '~@angular/material/' as ;\n",
		"good.scss": legacyTheme,
	})
	r, out := newTestRunner()

	err := r.migrateThemingAPI(context.Background(), cli.RunOptions{Repo: repo})
	if err == nil || !strings.Contains(err.Error(), "1 of 2 stylesheets failed") {
		t.Fatalf("err = %v, want one failure", err)
	}
	if !strings.Contains(out.String(), "failed   bad.scss") {
		t.Errorf("output = %q", out.String())
	}
	if diff := cmp.Diff(migratedTheme, readFile(t, repo, "good.scss")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	repo := setupRepo(t, map[string]string{
		".themeshift.yaml": "include: [\"file/**/*.scss\"]\nconcurrency: 3\nimports_only: true\n",
	})
	r, _ := newTestRunner()

	cfg, err := r.resolveConfig(cli.RunOptions{
		Repo:        repo,
		Include:     []string{"flag/**/*.scss"},
		Concurrency: 8,
		Explicit:    map[string]bool{cli.FlagInclude: true},
	})
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}

	if diff := cmp.Diff([]string{"flag/**/*.scss"}, cfg.Include); diff != "" {
		t.Errorf("include mismatch (-want +got):\n%s", diff)
	}
	if cfg.Concurrency != 3 {
		t.Errorf("Concurrency = %d, want the file value 3", cfg.Concurrency)
	}
	if !cfg.ImportsOnly {
		t.Error("ImportsOnly = false, want the file value true")
	}
}
