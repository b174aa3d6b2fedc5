package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	banner = "****************************\n"
	// TimestampLayout formats the time in each block header.
	TimestampLayout = "Mon Jan 02 15:04:05 MST 2006"
)

// Validator validates documents against XML schemas. It is safe for
// concurrent use; each pass writes its log block in a single write.
type Validator struct {
	compiler ports.SchemaCompiler
	logger   ports.Logger

	mu  sync.Mutex
	log io.Writer
	now func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock replaces the clock used for block headers.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// NewValidator creates a Validator writing its error log to log.
func NewValidator(compiler ports.SchemaCompiler, log io.Writer, logger ports.Logger, opts ...Option) *Validator {
	v := &Validator{
		compiler: compiler,
		logger:   logger,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks the document at docPath against the schema at schemaPath.
// The returned report is valid only when no error or fatal diagnostic was
// reported. Warnings are recorded but do not affect validity.
func (v *Validator) Validate(docPath, schemaPath string) (domain.Report, error) {
	schema, err := v.compiler.Compile(schemaPath)
	if err != nil {
		if !errors.Is(err, domain.ErrSchemaCompile) {
			err = zerr.With(fmt.Errorf("%w: %w", domain.ErrSchemaCompile, err), "schema", schemaPath)
		}
		v.logger.Error(err)
		return domain.Report{}, err
	}
	defer schema.Close()

	//nolint:gosec // document paths are supplied by the operator
	doc, err := os.ReadFile(docPath)
	if err != nil {
		err = zerr.With(fmt.Errorf("%w: %w", domain.ErrDocumentRead, err), "document", docPath)
		v.logger.Error(err)
		return domain.Report{}, err
	}

	systemID := docPath
	if abs, absErr := filepath.Abs(docPath); absErr == nil {
		systemID = abs
	}

	v.logger.Info("XML schema validation results: " + systemID)
	diags, verr := schema.Validate(doc, systemID)

	report := domain.Report{Valid: verr == nil, Diagnostics: diags}
	var block bytes.Buffer
	block.WriteString(banner)
	block.WriteString(v.now().Format(TimestampLayout) + "\n")
	block.WriteString(banner + "\n")
	for _, d := range diags {
		block.WriteString(d.Severity.Label() + d.String() + "\n")
		v.report(d)
		if d.Invalidates() {
			report.Valid = false
		}
	}
	block.WriteString("\n")

	if err := v.write(block.Bytes()); err != nil {
		v.logger.Error(err)
		return report, err
	}
	if verr != nil {
		v.logger.Error(verr)
		return report, verr
	}
	return report, nil
}

// IsValid reports whether the document at docPath is well-formed and valid
// against the schema at schemaPath.
func (v *Validator) IsValid(docPath, schemaPath string) bool {
	report, err := v.Validate(docPath, schemaPath)
	return err == nil && report.Valid
}

func (v *Validator) write(block []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, err := v.log.Write(block); err != nil {
		if errors.Is(err, domain.ErrValidationLogWrite) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrValidationLogWrite, err)
	}
	return nil
}

func (v *Validator) report(d domain.Diagnostic) {
	switch d.Severity {
	case domain.SeverityWarning:
		v.logger.Warn(d.String())
	case domain.SeverityFatal:
		v.logger.Error(zerr.Wrap(zerr.New(d.String()), d.SystemID+" is not well-formed XML"))
	default:
		v.logger.Error(zerr.New(d.String()))
	}
}
