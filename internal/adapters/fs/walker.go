// Package fs provides file system adapters for walking, hashing, copying and
// moving files. Every adapter works on an afero.Fs so tests can run against
// an in-memory tree.
package fs

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/toolbelt/internal/core/domain"
)

// Walker yields the regular files below a directory.
type Walker struct {
	fs afero.Fs
}

// NewWalker creates a new Walker.
func NewWalker(fs afero.Fs) *Walker {
	return &Walker{fs: fs}
}

// WalkFiles yields all files below root in lexical order. VCS metadata and
// toolbelt state directories are skipped, as is anything whose base name
// matches one of ignores.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if skip, dir := shouldSkip(info, ignores); skip {
				if dir {
					return filepath.SkipDir
				}
				return nil
			}
			if info.IsDir() {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func shouldSkip(info os.FileInfo, ignores []string) (skip, dir bool) {
	name := info.Name()
	if info.IsDir() && (name == ".git" || name == domain.StateDirName) {
		return true, true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true, info.IsDir()
		}
	}
	return false, false
}
