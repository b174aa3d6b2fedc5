package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints build targets and their files with XXHash.
type Hasher struct {
	fs       afero.Fs
	walker   *Walker
	resolver *Resolver
}

// NewHasher creates a new Hasher.
func NewHasher(fs afero.Fs, walker *Walker, resolver *Resolver) *Hasher {
	return &Hasher{fs: fs, walker: walker, resolver: resolver}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := h.fs.Open(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return digest.Sum64(), nil
}

// ComputeInputHash covers the target definition, env and the content of
// every file its input patterns resolve to below root.
func (h *Hasher) ComputeInputHash(task *domain.Task, env map[string]string, root string) (string, error) {
	digest := xxhash.New()

	writeDefinition(digest, task)
	writeEnvironment(digest, env)

	inputs := make([]string, len(task.Inputs))
	for i, in := range task.Inputs {
		inputs[i] = in.String()
	}
	paths, err := h.resolver.ResolveInputs(inputs, root)
	if err != nil {
		return "", zerr.With(err, "target", task.Name.String())
	}
	for _, path := range paths {
		if err := h.hashPath(digest, path, root); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

// ComputeOutputHash hashes the given outputs, relative to root, in sorted
// order. A missing output is an error.
func (h *Hasher) ComputeOutputHash(outputs []string, root string) (string, error) {
	digest := xxhash.New()

	for _, output := range slices.Sorted(slices.Values(outputs)) {
		path := filepath.Join(root, output)
		if _, err := h.fs.Stat(path); err != nil {
			return "", zerr.With(zerr.Wrap(err, "build output missing"), "path", path)
		}
		if err := h.hashPath(digest, path, root); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func writeDefinition(w io.Writer, task *domain.Task) {
	writeField(w, task.Name.String())
	writeSection(w, task.Command)
	writeSection(w, internedStrings(task.Inputs))
	writeSection(w, internedStrings(task.Outputs))
	writeSection(w, internedStrings(task.Dependencies))
	writeField(w, task.WorkingDir.String())
}

func writeEnvironment(w io.Writer, env map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(env)) {
		writeField(w, k+"="+env[k])
	}
	_, _ = w.Write([]byte{0})
}

func writeSection(w io.Writer, values []string) {
	for _, v := range values {
		writeField(w, v)
	}
	_, _ = w.Write([]byte{0})
}

func writeField(w io.Writer, v string) {
	_, _ = io.WriteString(w, v)
	_, _ = w.Write([]byte{0})
}

func internedStrings(in []domain.InternedString) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = s.String()
	}
	return out
}

func (h *Hasher) hashPath(w io.Writer, path, root string) error {
	info, err := h.fs.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	if !info.IsDir() {
		return h.hashFile(w, path, root)
	}
	for file := range h.walker.WalkFiles(path, nil) {
		if err := h.hashFile(w, file, root); err != nil {
			return err
		}
	}
	return nil
}

// hashFile mixes the root-relative name and the content hash of path into w,
// so moving a checkout does not invalidate its targets.
func (h *Hasher) hashFile(w io.Writer, path, root string) error {
	name := path
	if rel, err := filepath.Rel(root, path); err == nil {
		name = filepath.ToSlash(rel)
	}
	writeField(w, name)

	sum, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, sum); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
