// Package stylesheet caches compiled stylesheets and applies them to documents.
package stylesheet

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
)

type entry struct {
	modTime  time.Time
	template ports.Template
}

// Cache maps stylesheet paths to compiled templates. A cached template is
// reused until the file's modification time moves forward.
//
// The cache is unbounded. Entries leave it only through Flush, FlushAll or a
// recompile of the same path.
type Cache struct {
	mu       sync.Mutex
	compiler ports.TemplateCompiler
	entries  map[string]entry
}

// NewCache creates an empty cache compiling through compiler.
func NewCache(compiler ports.TemplateCompiler) *Cache {
	return &Cache{
		compiler: compiler,
		entries:  make(map[string]entry),
	}
}

// Get returns the compiled template for path. Concurrent callers for the same
// unchanged file receive the same template; at most one compile runs at a time.
func (c *Cache) Get(path string) (ports.Template, error) {
	key, err := cacheKey(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := os.Stat(key)
	if err != nil {
		delete(c.entries, key)
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrStylesheetNotFound, err), "path", key)
	}

	modTime := info.ModTime()
	if cached, ok := c.entries[key]; ok && !modTime.After(cached.modTime) {
		return cached.template, nil
	}

	// A newer file invalidates the old entry even if the recompile fails.
	delete(c.entries, key)

	tmpl, err := c.compiler.Compile(key)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrStylesheetCompile, err), "path", key)
	}

	c.entries[key] = entry{modTime: modTime, template: tmpl}
	return tmpl, nil
}

// Flush drops the entry for path, if any.
func (c *Cache) Flush(path string) {
	key, err := cacheKey(path)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// FlushAll drops every entry.
func (c *Cache) FlushAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of cached templates.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Contains reports whether path currently has a cached template.
func (c *Cache) Contains(path string) bool {
	key, err := cacheKey(path)
	if err != nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

func cacheKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrStylesheetNotFound, err), "path", path)
	}
	return abs, nil
}
