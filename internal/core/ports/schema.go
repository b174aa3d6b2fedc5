package ports

import "go.trai.ch/toolbelt/internal/core/domain"

// Schema is a compiled XML schema.
type Schema interface {
	// Validate checks doc against the schema and returns every problem found.
	// A fatal diagnostic, if any, is always the last one: the pass ends there.
	// The error is reserved for failures of the validator itself.
	Validate(doc []byte, systemID string) ([]domain.Diagnostic, error)
	// Close releases the compiled schema.
	Close()
}

// SchemaCompiler compiles XML schemas.
//
//go:generate mockgen -source=schema.go -destination=mocks/mock_schema.go -package=mocks
type SchemaCompiler interface {
	// Compile reads and compiles the schema at path.
	Compile(path string) (Schema, error)
}
