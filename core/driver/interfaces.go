package driver

import (
	"context"
)

// Tree is the file collection a migration run reads from and writes to.
type Tree interface {
	// Files lists every candidate path in the tree, relative to its root,
	// with forward slashes.
	Files(ctx context.Context) ([]string, error)

	// Read returns the current text content of path.
	Read(path string) (string, error)

	// Overwrite replaces the content of path.
	Overwrite(path, content string) error

	// IsStylesheet reports whether path is a Sass stylesheet the migrations
	// understand.
	IsStylesheet(path string) bool
}

// Migration rewrites one stylesheet at a time. Implementations must be pure
// functions of their input so files can be migrated in parallel.
type Migration interface {
	// Name identifies the migration in reports, e.g. "theming-api-v12".
	Name() string

	// TargetVersion is the semver version the migration upgrades to, e.g.
	// "v12.0.0". An empty string means the migration is not tied to a version.
	TargetVersion() string

	// MigrateFile returns the migrated content of the file at path.
	// Returning content unchanged means the file needs no changes.
	MigrateFile(path, content string) (string, error)
}
