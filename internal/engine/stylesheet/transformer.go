package stylesheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Transformer applies cached stylesheets to documents on disk.
type Transformer struct {
	cache  *Cache
	logger ports.Logger
}

// NewTransformer creates a Transformer.
func NewTransformer(cache *Cache, logger ports.Logger) *Transformer {
	return &Transformer{cache: cache, logger: logger}
}

// Run transforms the input document with the stylesheet at xsl and writes
// the result to output. params are passed to the stylesheet as string
// parameters. Failures are logged before being returned.
func (t *Transformer) Run(input, output, xsl string, params map[string]string) error {
	if err := t.run(input, output, xsl, params); err != nil {
		t.logger.Error(err)
		return err
	}
	return nil
}

func (t *Transformer) run(input, output, xsl string, params map[string]string) error {
	tmpl, err := t.cache.Get(xsl)
	if err != nil {
		return err
	}

	//nolint:gosec // document paths are supplied by the operator
	doc, err := os.ReadFile(input)
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrDocumentRead, err), "path", input)
	}

	result, err := tmpl.Transform(doc, params)
	if err != nil {
		if !errors.Is(err, domain.ErrTransformFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrTransformFailed, err)
		}
		return zerr.With(err, "input", input)
	}

	if err := os.MkdirAll(filepath.Dir(output), domain.DirPerm); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrTransformFailed, err), "output", output)
	}
	if err := os.WriteFile(output, result, domain.FilePerm); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrTransformFailed, err), "output", output)
	}
	return nil
}
