package fs

import (
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver expands input patterns to concrete paths.
type Resolver struct {
	fs afero.Fs
}

// NewResolver creates a new Resolver.
func NewResolver(fs afero.Fs) *Resolver {
	return &Resolver{fs: fs}
}

// ResolveInputs resolves each pattern against root and returns the sorted,
// de-duplicated matches. A pattern matching nothing is an error.
func (r *Resolver) ResolveInputs(inputs []string, root string) ([]string, error) {
	seen := make(map[string]struct{})

	for _, input := range inputs {
		path := filepath.Join(root, input)

		matches, err := afero.Glob(r.fs, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInputNotFound, "unresolved build input"), "path", path)
		}
		for _, match := range matches {
			seen[match] = struct{}{}
		}
	}

	result := make([]string, 0, len(seen))
	for path := range seen {
		result = append(result, path)
	}
	slices.Sort(result)
	return result, nil
}
