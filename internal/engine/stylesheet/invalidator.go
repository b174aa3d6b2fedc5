package stylesheet

import (
	"context"
	"strings"

	"go.trai.ch/toolbelt/internal/core/ports"
)

// Invalidator flushes cache entries whose stylesheet changed on disk.
type Invalidator struct {
	cache   *Cache
	watcher ports.Watcher
	logger  ports.Logger
}

// NewInvalidator creates an Invalidator.
func NewInvalidator(cache *Cache, watcher ports.Watcher, logger ports.Logger) *Invalidator {
	return &Invalidator{cache: cache, watcher: watcher, logger: logger}
}

// Run watches dirs until ctx is canceled.
func (i *Invalidator) Run(ctx context.Context, dirs ...string) error {
	return i.Watch(ctx, nil, dirs...)
}

// Watch is Run with a callback invoked for every changed stylesheet, whether
// or not it was cached. A stylesheet that failed to compile has no entry, and
// its next save still has to reach onChange.
func (i *Invalidator) Watch(ctx context.Context, onChange func(path string), dirs ...string) error {
	if err := i.watcher.Start(ctx, dirs...); err != nil {
		return err
	}
	defer func() { _ = i.watcher.Stop() }()

	for ev := range i.watcher.Events() {
		if !isStylesheet(ev.Path) {
			continue
		}
		i.Handle(ev)
		if onChange != nil {
			onChange(ev.Path)
		}
	}
	return ctx.Err()
}

// Handle flushes the entry named by ev and reports whether one was dropped.
// Events for other files are ignored.
func (i *Invalidator) Handle(ev ports.WatchEvent) bool {
	if !isStylesheet(ev.Path) || !i.cache.Contains(ev.Path) {
		return false
	}
	i.cache.Flush(ev.Path)
	i.logger.Info("stylesheet changed, dropped from cache: " + ev.Path)
	return true
}

func isStylesheet(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".xsl") || strings.HasSuffix(lower, ".xslt")
}
