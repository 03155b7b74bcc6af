package sass

import (
	"fmt"
	"sort"

	"golang.org/x/mod/semver"

	"github.com/emenda-labs/themeshift/core/driver"
	"github.com/emenda-labs/themeshift/drivers/sass/themingapi"
)

// ThemingAPIVersion is the Angular Material release that introduced the
// `@use`-based theming API.
const ThemingAPIVersion = "v12.0.0"

var _ driver.Migration = (*ThemingAPIMigration)(nil)

// ThemingAPIMigration moves stylesheets from the `@import`-based theming API
// to Sass modules.
type ThemingAPIMigration struct {
	migrator *themingapi.Migrator
}

// NewThemingAPIMigration creates the migration from opts.
func NewThemingAPIMigration(opts themingapi.Options) (*ThemingAPIMigration, error) {
	m, err := themingapi.New(opts)
	if err != nil {
		return nil, fmt.Errorf("configuring theming API migration: %w", err)
	}
	return &ThemingAPIMigration{migrator: m}, nil
}

func (m *ThemingAPIMigration) Name() string {
	return "theming-api-v12"
}

func (m *ThemingAPIMigration) TargetVersion() string {
	return ThemingAPIVersion
}

func (m *ThemingAPIMigration) MigrateFile(path, content string) (string, error) {
	out, err := m.migrator.MigrateFileContent(content)
	if err != nil {
		return "", fmt.Errorf("migrating %s: %w", path, err)
	}
	return out, nil
}

// SelectMigrations returns the migrations whose target version lies in the
// half-open range (from, to], ordered by target version. Migrations without
// a target version always apply.
func SelectMigrations(all []driver.Migration, from, to string) ([]driver.Migration, error) {
	if !semver.IsValid(from) {
		return nil, fmt.Errorf("invalid current version: %s", from)
	}
	if !semver.IsValid(to) {
		return nil, fmt.Errorf("invalid target version: %s", to)
	}

	var selected []driver.Migration
	for _, m := range all {
		target := m.TargetVersion()
		if target == "" {
			selected = append(selected, m)
			continue
		}
		if !semver.IsValid(target) {
			return nil, fmt.Errorf("migration %s has invalid target version: %s", m.Name(), target)
		}
		if semver.Compare(from, target) < 0 && semver.Compare(target, to) <= 0 {
			selected = append(selected, m)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return semver.Compare(selected[i].TargetVersion(), selected[j].TargetVersion()) < 0
	})

	return selected, nil
}
