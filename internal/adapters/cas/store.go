// Package cas records the last successful run of each build target.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore using a flat JSON file.
type Store struct {
	fs    afero.Fs
	path  string
	mu    sync.RWMutex
	cache map[string]domain.BuildInfo
}

// NewStore opens the store backed by the file at path. A missing or empty
// file yields an empty store.
func NewStore(fsys afero.Fs, path string) (*Store, error) {
	s := &Store{
		fs:    fsys,
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return s.wrap(domain.ErrStoreReadFailed, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.cache); err != nil {
		return s.wrap(domain.ErrStoreReadFailed, err)
	}
	return nil
}

// saveLocked writes the whole store through a temporary file so a crash
// never leaves a truncated record behind. Callers hold mu.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return s.wrap(domain.ErrStoreWriteFailed, err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return s.wrap(domain.ErrStoreWriteFailed, err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, domain.FilePerm); err != nil {
		return s.wrap(domain.ErrStoreWriteFailed, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return s.wrap(domain.ErrStoreWriteFailed, err)
	}
	return nil
}

func (s *Store) wrap(sentinel, err error) error {
	return zerr.With(fmt.Errorf("%w: %w", sentinel, err), "path", s.path)
}

// Get retrieves the build info for a given target name.
// It returns nil, nil when the target has no record.
func (s *Store) Get(taskName string) (*domain.BuildInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[taskName]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the build info and persists the store.
func (s *Store) Put(info domain.BuildInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[info.TaskName] = info
	return s.saveLocked()
}

// Opener opens stores on a file system. The store location is only known
// once settings are loaded, so it is resolved per command.
type Opener struct {
	fs afero.Fs
}

// NewOpener creates a new Opener.
func NewOpener(fsys afero.Fs) *Opener {
	return &Opener{fs: fsys}
}

// Open opens the store at path.
func (o *Opener) Open(path string) (*Store, error) {
	return NewStore(o.fs, path)
}
