package fstree

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/emenda-labs/themeshift/core/driver"
)

var _ driver.Tree = (*Dir)(nil)

var (
	// DefaultInclude selects every Sass stylesheet.
	DefaultInclude = []string{"**/*.scss"}

	// DefaultExclude skips installed packages and VCS metadata.
	DefaultExclude = []string{"**/node_modules/**", "**/.git/**"}
)

// Dir is a Tree backed by a directory on disk.
type Dir struct {
	root    string
	include []string
	exclude []string
}

// NewDir creates a Dir rooted at root. include and exclude are doublestar
// patterns matched against slash-separated paths relative to root; nil
// selects DefaultInclude and DefaultExclude.
func NewDir(root string, include, exclude []string) (*Dir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("cannot access root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	if include == nil {
		include = DefaultInclude
	}
	if exclude == nil {
		exclude = DefaultExclude
	}

	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern: %s", pattern)
		}
	}
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}

	return &Dir{root: abs, include: include, exclude: exclude}, nil
}

// Root returns the absolute directory the tree is rooted at.
func (d *Dir) Root() string {
	return d.root
}

// Files walks the tree and returns every included path in lexical order.
// Excluded directories are not descended into and symlinks are skipped.
func (d *Dir) Files(ctx context.Context) ([]string, error) {
	var files []string

	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if entry.Type()&os.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return fmt.Errorf("relativizing %s: %w", path, err)
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if excludesDir(d.exclude, rel) {
				return fs.SkipDir
			}
			return nil
		}

		if matchAny(d.exclude, rel) {
			return nil
		}

		if matchAny(d.include, rel) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", d.root, err)
	}

	return files, nil
}

// Read returns the content of the file at the tree-relative path.
func (d *Dir) Read(path string) (string, error) {
	full, err := d.resolve(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Overwrite replaces the file at path. The new content is written to a
// temporary file in the same directory and renamed over the original, keeping
// its permissions.
func (d *Dir) Overwrite(path, content string) error {
	full, err := d.resolve(path)
	if err != nil {
		return err
	}

	mode := fs.FileMode(0o644)
	if info, statErr := os.Stat(full); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), "."+filepath.Base(full)+".themeshift-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { os.Remove(tmpName) }

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		cleanup()
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, full); err != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}

// IsStylesheet reports whether path has a .scss extension.
func (d *Dir) IsStylesheet(path string) bool {
	return IsSCSS(path)
}

// IsSCSS reports whether path has a .scss extension, ignoring case.
func IsSCSS(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".scss")
}

// resolve maps a tree-relative path to an absolute one and rejects paths
// that escape the root.
func (d *Dir) resolve(path string) (string, error) {
	full := filepath.Join(d.root, filepath.FromSlash(path))
	if full != d.root && !strings.HasPrefix(full, d.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("path escapes tree root: %s", path)
	}
	return full, nil
}

// childProbe stands in for an arbitrary entry below a directory. It never
// matches a name-based pattern such as `**/_*.scss`.
const childProbe = "\x00"

// excludesDir reports whether a pattern matches dir itself or every entry
// below it, so `**/node_modules/**` prunes the whole directory.
func excludesDir(patterns []string, dir string) bool {
	return matchAny(patterns, dir) || matchAny(patterns, dir+"/"+childProbe)
}

func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}
