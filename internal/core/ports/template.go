// Package ports defines the core interfaces for the application.
package ports

// Template is a compiled, reusable stylesheet.
// Implementations must be safe to apply from multiple goroutines.
type Template interface {
	// Transform applies the stylesheet to an XML document and returns the result.
	// params bind top-level stylesheet parameters by name; nil binds none.
	Transform(doc []byte, params map[string]string) ([]byte, error)
}

// TemplateCompiler compiles stylesheets into reusable templates.
//
//go:generate mockgen -source=template.go -destination=mocks/mock_template.go -package=mocks
type TemplateCompiler interface {
	// Compile reads and compiles the stylesheet at path.
	Compile(path string) (Template, error)
}
