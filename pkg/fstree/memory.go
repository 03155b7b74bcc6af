package fstree

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/emenda-labs/themeshift/core/driver"
)

var _ driver.Tree = (*Memory)(nil)

// Memory is an in-memory Tree. It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	files  map[string]string
	writes map[string]int
}

// NewMemory creates a Memory tree holding a copy of files.
func NewMemory(files map[string]string) *Memory {
	m := &Memory{
		files:  make(map[string]string, len(files)),
		writes: make(map[string]int),
	}
	for path, content := range files {
		m.files[path] = content
	}
	return m
}

// Files returns every path in lexical order.
func (m *Memory) Files(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make([]string, 0, len(m.files))
	for path := range m.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

func (m *Memory) Read(path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	content, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("reading %s: %w", path, fs.ErrNotExist)
	}
	return content, nil
}

func (m *Memory) Overwrite(path, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = content
	m.writes[path]++
	return nil
}

func (m *Memory) IsStylesheet(path string) bool {
	return IsSCSS(path)
}

// Writes reports how many times path was overwritten.
func (m *Memory) Writes(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes[path]
}
