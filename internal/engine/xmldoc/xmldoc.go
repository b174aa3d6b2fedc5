// Package xmldoc loads, serializes and pretty-prints XML documents.
package xmldoc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/zerr"
)

// IndentSpaces is the indentation used by pretty serialization.
const IndentSpaces = 2

// Load reads and parses the document at path.
func Load(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrXMLLoadFailed, err), "path", path)
	}
	if doc.Root() == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrXMLLoadFailed, "document has no root element"), "path", path)
	}
	return doc, nil
}

// Parse parses data as a document.
func Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrXMLLoadFailed, err)
	}
	if doc.Root() == nil {
		return nil, zerr.Wrap(domain.ErrXMLLoadFailed, "document has no root element")
	}
	return doc, nil
}

// Serialize renders doc. The XML declaration is dropped when omitDeclaration
// is set; pretty re-indents element content. doc itself is left unchanged.
func Serialize(doc *etree.Document, omitDeclaration, pretty bool) ([]byte, error) {
	out := doc.Copy()
	if omitDeclaration {
		for _, tok := range out.Child {
			if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
				out.RemoveChild(pi)
				break
			}
		}
	}
	if pretty {
		out.Indent(IndentSpaces)
	}

	var buf bytes.Buffer
	if _, err := out.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrXMLWriteFailed, err)
	}
	return buf.Bytes(), nil
}

// Write pretty-prints doc to path, keeping its declaration.
func Write(doc *etree.Document, path string) error {
	data, err := Serialize(doc, false, true)
	if err != nil {
		return zerr.With(err, "path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrXMLWriteFailed, err), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrXMLWriteFailed, err), "path", path)
	}
	return nil
}

// Format pretty-prints the document at path in place.
func Format(path string) error {
	doc, err := Load(path)
	if err != nil {
		return err
	}
	return Write(doc, path)
}
