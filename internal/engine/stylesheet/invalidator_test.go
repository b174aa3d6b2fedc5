package stylesheet_test

import (
	"context"
	"errors"
	"iter"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/toolbelt/internal/core/ports/mocks"
	"go.trai.ch/toolbelt/internal/engine/stylesheet"
	"go.uber.org/mock/gomock"
)

// fakeWatcher replays a fixed list of events.
type fakeWatcher struct {
	dirs    []string
	events  []ports.WatchEvent
	stopped bool
}

func (f *fakeWatcher) Start(_ context.Context, dirs ...string) error {
	f.dirs = dirs
	return nil
}

func (f *fakeWatcher) Stop() error {
	f.stopped = true
	return nil
}

func (f *fakeWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for _, ev := range f.events {
			if !yield(ev) {
				return
			}
		}
	}
}

func TestInvalidator_Run_FlushesChangedStylesheets(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockTemplateCompiler(ctrl)
	log := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	changed := writeStylesheet(t, dir, "changed.xsl")
	kept := writeStylesheet(t, dir, "kept.xsl")
	compiler.EXPECT().Compile(gomock.Any()).Return(mocks.NewMockTemplate(ctrl), nil).Times(2)
	log.EXPECT().Info(gomock.Any()).Times(1)

	cache := stylesheet.NewCache(compiler)
	_, err := cache.Get(changed)
	require.NoError(t, err)
	_, err = cache.Get(kept)
	require.NoError(t, err)

	w := &fakeWatcher{events: []ports.WatchEvent{
		{Path: changed, Operation: ports.OpWrite},
		{Path: filepath.Join(dir, "notes.txt"), Operation: ports.OpWrite},
		{Path: filepath.Join(dir, "unknown.xsl"), Operation: ports.OpCreate},
	}}

	inv := stylesheet.NewInvalidator(cache, w, log)
	require.NoError(t, inv.Run(t.Context(), dir))

	assert.Equal(t, []string{dir}, w.dirs)
	assert.True(t, w.stopped)
	assert.False(t, cache.Contains(changed))
	assert.True(t, cache.Contains(kept))
}

func TestInvalidator_Watch_ReportsChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockTemplateCompiler(ctrl)
	log := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	xsl := writeStylesheet(t, dir, "report.xsl")
	compiler.EXPECT().Compile(gomock.Any()).Return(mocks.NewMockTemplate(ctrl), nil)
	log.EXPECT().Info(gomock.Any())

	cache := stylesheet.NewCache(compiler)
	_, err := cache.Get(xsl)
	require.NoError(t, err)

	w := &fakeWatcher{events: []ports.WatchEvent{
		{Path: xsl, Operation: ports.OpWrite},
		{Path: filepath.Join(dir, "notes.txt"), Operation: ports.OpWrite},
		{Path: xsl, Operation: ports.OpWrite},
	}}

	var changed []string
	inv := stylesheet.NewInvalidator(cache, w, log)
	require.NoError(t, inv.Watch(t.Context(), func(path string) { changed = append(changed, path) }, dir))

	assert.Equal(t, []string{xsl, xsl}, changed)
	assert.False(t, cache.Contains(xsl))
}

func TestInvalidator_Watch_ReportsUncachedStylesheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockTemplateCompiler(ctrl)
	log := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	xsl := writeStylesheet(t, dir, "broken.xsl")
	compiler.EXPECT().Compile(xsl).Return(nil, errors.New("unexpected token"))

	cache := stylesheet.NewCache(compiler)
	_, err := cache.Get(xsl)
	require.Error(t, err)

	w := &fakeWatcher{events: []ports.WatchEvent{{Path: xsl, Operation: ports.OpWrite}}}

	var changed []string
	inv := stylesheet.NewInvalidator(cache, w, log)
	require.NoError(t, inv.Watch(t.Context(), func(path string) { changed = append(changed, path) }, dir))

	assert.Equal(t, []string{xsl}, changed)
}
