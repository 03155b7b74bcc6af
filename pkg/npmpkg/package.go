// Package npmpkg reads dependency versions from a package.json manifest.
package npmpkg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
)

// Manifest is the subset of package.json the upgrade needs.
type Manifest struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// ReadManifest parses the package.json at the given repo path.
func ReadManifest(repoPath string) (*Manifest, error) {
	manifestPath := filepath.Join(repoPath, "package.json")

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no package.json found at %s", manifestPath)
		}
		return nil, fmt.Errorf("failed to read package.json: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}
	return &m, nil
}

// Range returns the version range declared for name, searching
// dependencies, devDependencies and peerDependencies in that order.
func (m *Manifest) Range(name string) (string, bool) {
	for _, deps := range []map[string]string{m.Dependencies, m.DevDependencies, m.PeerDependencies} {
		if r, ok := deps[name]; ok {
			return r, true
		}
	}
	return "", false
}

// FindPackageVersion reads the package.json at the given repo path and
// returns the lowest version the declared range of name accepts, in
// canonical semver form such as "v12.2.0".
func FindPackageVersion(repoPath, name string) (string, error) {
	m, err := ReadManifest(repoPath)
	if err != nil {
		return "", err
	}

	r, ok := m.Range(name)
	if !ok {
		return "", fmt.Errorf("package %s not found in package.json at %s", name, repoPath)
	}

	version, err := NormalizeRange(r)
	if err != nil {
		return "", fmt.Errorf("package %s: %w", name, err)
	}
	return version, nil
}

// NormalizeRange turns an npm version range into the canonical semver
// version at its lower bound. Wildcard components become zero, so "12.x"
// yields "v12.0.0". Local and VCS specifiers cannot be resolved and are
// errors.
func NormalizeRange(r string) (string, error) {
	specifier := strings.TrimSpace(r)

	// An npm alias like "npm:@angular/material@^12.0.0" carries the range
	// after the last @.
	if rest, ok := strings.CutPrefix(specifier, "npm:"); ok {
		at := strings.LastIndex(rest, "@")
		if at <= 0 {
			return "", fmt.Errorf("unsupported version specifier %q", r)
		}
		specifier = rest[at+1:]
	}

	for _, prefix := range []string{"file:", "link:", "workspace:", "git", "http:", "https:"} {
		if strings.HasPrefix(specifier, prefix) {
			return "", fmt.Errorf("unsupported version specifier %q", r)
		}
	}

	// Only the lower bound of a compound range such as ">=12.0.0 <13" matters.
	if fields := strings.Fields(specifier); len(fields) > 0 {
		specifier = fields[0]
	}
	specifier = strings.TrimLeft(specifier, "^~>=v")

	parts := strings.SplitN(specifier, ".", 3)
	for i, part := range parts {
		if part == "x" || part == "X" || part == "*" {
			parts = parts[:i]
			break
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("version range %q has no lower bound", r)
	}

	version := "v" + strings.Join(parts, ".")
	if !semver.IsValid(version) {
		return "", fmt.Errorf("invalid version range %q", r)
	}
	return semver.Canonical(version), nil
}
