// Package xsd validates XML documents against W3C XML Schemas with libxml2.
package xsd

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	xsdvalidate "github.com/terminalstatic/go-xsd-validate"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// libxml2 error levels.
const (
	levelWarning = 1
	levelError   = 2
	levelFatal   = 3
)

var initLibxml = sync.OnceValue(xsdvalidate.Init)

// Compiler implements ports.SchemaCompiler.
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile reads and compiles the schema at path.
func (c *Compiler) Compile(path string) (ports.Schema, error) {
	if err := initLibxml(); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrSchemaCompile, err), "schema", path)
	}

	handler, err := xsdvalidate.NewXsdHandlerUrl(path, xsdvalidate.ParsErrVerbose)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrSchemaCompile, err), "schema", path)
	}
	return &Schema{handler: handler}, nil
}

// Schema is a compiled XML schema. It may be used from several goroutines
// until Close is called.
type Schema struct {
	handler *xsdvalidate.XsdHandler
	once    sync.Once
}

// Validate checks doc against the schema. Documents libxml2 cannot parse are
// reported as a single fatal diagnostic; otherwise every schema violation is
// returned in document order.
func (s *Schema) Validate(doc []byte, systemID string) ([]domain.Diagnostic, error) {
	err := s.handler.ValidateMem(expandEntities(doc), xsdvalidate.ValidErrDefault|xsdvalidate.ParsErrVerbose)
	if err == nil {
		return nil, nil
	}

	var verr xsdvalidate.ValidationError
	if errors.As(err, &verr) {
		return s.diagnostics(doc, systemID, verr.Errors), nil
	}
	var perr xsdvalidate.XmlParserError
	if errors.As(err, &perr) {
		return []domain.Diagnostic{parserDiagnostic(doc, systemID, perr.Error())}, nil
	}
	return nil, zerr.With(zerr.Wrap(err, "schema validation failed"), "document", systemID)
}

func (s *Schema) diagnostics(doc []byte, systemID string, errs []xsdvalidate.StructError) []domain.Diagnostic {
	loc := newLocator(doc)
	diags := make([]domain.Diagnostic, 0, len(errs))
	for _, e := range errs {
		d := domain.Diagnostic{
			Severity: severity(e.Level),
			SystemID: systemID,
			Line:     e.Line,
			Column:   loc.column(e.Line, e.NodeName),
			Message:  strings.TrimSpace(e.Message),
		}
		diags = append(diags, d)
		if d.Severity == domain.SeverityFatal {
			break
		}
	}
	return diags
}

// Close releases the compiled schema. It is safe to call more than once.
func (s *Schema) Close() {
	s.once.Do(s.handler.Free)
}

func severity(level int) domain.Severity {
	switch level {
	case levelWarning:
		return domain.SeverityWarning
	case levelFatal:
		return domain.SeverityFatal
	default:
		return domain.SeverityError
	}
}
