// Package xslt compiles XSLT 1.0 stylesheets with libxslt.
package xslt

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/wamuir/go-xslt"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Compiler implements ports.TemplateCompiler.
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile reads and compiles the stylesheet at path.
func (c *Compiler) Compile(path string) (ports.Template, error) {
	//nolint:gosec // stylesheet paths are supplied by the operator
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrStylesheetNotFound, err), "path", path)
	}

	src, err = anchorIncludes(src, path)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrStylesheetCompile, err), "path", path)
	}

	ss, err := xslt.NewStylesheet(src)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrStylesheetCompile, err), "path", path)
	}

	tmpl := &Template{ss: ss, path: path}
	runtime.AddCleanup(tmpl, func(ss *xslt.Stylesheet) { ss.Close() }, ss)
	return tmpl, nil
}

const xslNamespace = "http://www.w3.org/1999/XSL/Transform"

// anchorIncludes rewrites relative xsl:include and xsl:import hrefs to file
// URLs under the stylesheet's directory. libxslt parses src from memory
// without a base URI and would otherwise resolve them against the working
// directory. src is returned untouched when nothing needs rewriting or
// when it does not parse, leaving the verdict to libxslt.
func anchorIncludes(src []byte, path string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if err := doc.ReadFromBytes(src); err != nil {
		return src, nil //nolint:nilerr // libxslt reports the parse error with context
	}
	root := doc.Root()
	if root == nil {
		return src, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(abs)

	changed := false
	for _, el := range root.ChildElements() {
		if el.NamespaceURI() != xslNamespace || (el.Tag != "include" && el.Tag != "import") {
			continue
		}
		attr := el.SelectAttr("href")
		if attr == nil || !isRelative(attr.Value) {
			continue
		}
		target := filepath.Join(dir, filepath.FromSlash(attr.Value))
		attr.Value = (&url.URL{Scheme: "file", Path: filepath.ToSlash(target)}).String()
		changed = true
	}
	if !changed {
		return src, nil
	}
	return doc.WriteToBytes()
}

func isRelative(href string) bool {
	if href == "" || strings.Contains(href, ":") {
		return false
	}
	return !filepath.IsAbs(filepath.FromSlash(href)) && !strings.HasPrefix(href, "/")
}

// Template is a compiled stylesheet. The underlying libxslt object is released
// once the Template becomes unreachable.
type Template struct {
	ss   *xslt.Stylesheet
	path string
}

// Transform applies the stylesheet to doc. Each entry in params is bound to
// the top-level xsl:param of the same name as a string.
func (t *Template) Transform(doc []byte, params map[string]string) ([]byte, error) {
	out, err := t.ss.Transform(doc, stringParams(params)...)
	runtime.KeepAlive(t)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrTransformFailed, err), "stylesheet", t.path)
	}
	return out, nil
}

// Path returns the file the template was compiled from.
func (t *Template) Path() string {
	return t.path
}

func stringParams(params map[string]string) []xslt.Parameter {
	if len(params) == 0 {
		return nil
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]xslt.Parameter, 0, len(names))
	for _, name := range names {
		out = append(out, xslt.StringParameter{Name: name, Value: params[name]})
	}
	return out
}
