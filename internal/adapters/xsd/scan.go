package xsd

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/toolbelt/internal/core/domain"
)

// parserLine matches the line number libxml2 prints in front of a parser
// error, as "Entity: line 3: " for in-memory documents or "file.xml:3: ".
var parserLine = regexp.MustCompile(`(?:line |:)(\d+): `)

// entityDecl matches an internal general entity declaration.
var entityDecl = regexp.MustCompile(`<!ENTITY\s+([A-Za-z_][\w.-]*)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// expandEntities replaces references to entities declared in the internal
// subset with their values. The libxml2 schema validator refuses entity
// reference nodes, so they have to be gone before the document reaches it.
// References inside entity values are left for libxml2.
func expandEntities(doc []byte) []byte {
	start := bytes.Index(doc, []byte("<!DOCTYPE"))
	if start < 0 {
		return doc
	}
	end := bytes.Index(doc[start:], []byte("]>"))
	if end < 0 {
		return doc
	}
	end += start + len("]>")

	decls := entityDecl.FindAllSubmatch(doc[start:end], -1)
	if len(decls) == 0 {
		return doc
	}
	pairs := make([]string, 0, 2*len(decls))
	for _, m := range decls {
		pairs = append(pairs, "&"+string(m[1])+";", string(m[2])+string(m[3]))
	}

	body := strings.NewReplacer(pairs...).Replace(string(doc[end:]))
	out := make([]byte, 0, end+len(body))
	out = append(out, doc[:end]...)
	return append(out, body...)
}

// parserDiagnostic turns a libxml2 parser failure into a fatal diagnostic.
// The line comes from the libxml2 message; the decoder supplies the column
// when it stops on the same line.
func parserDiagnostic(doc []byte, systemID, msg string) domain.Diagnostic {
	msg = strings.TrimSpace(msg)
	d := domain.Diagnostic{
		Severity: domain.SeverityFatal,
		SystemID: systemID,
		Column:   1,
		Message:  msg,
	}
	if first, _, ok := strings.Cut(msg, "\n"); ok {
		d.Message = strings.TrimSpace(first)
	}
	if m := parserLine.FindStringSubmatch(msg); m != nil {
		d.Line, _ = strconv.Atoi(m[1])
	}

	if pos, ok := checkWellFormed(doc, systemID); !ok && (d.Line <= 0 || d.Line == pos.Line) {
		d.Line, d.Column = pos.Line, max(pos.Column, 1)
	}
	d.Line = max(d.Line, 1)
	return d
}

// checkWellFormed tokenizes doc and reports the first syntax error as a fatal
// diagnostic with its line and column. It only locates errors libxml2
// already reported: the decoder rejects some documents libxml2 accepts.
func checkWellFormed(doc []byte, systemID string) (domain.Diagnostic, bool) {
	dec := newDecoder(doc)
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return domain.Diagnostic{}, true
		}
		if err == nil {
			continue
		}

		line, col := dec.InputPos()
		msg := err.Error()
		var syn *xml.SyntaxError
		if errors.As(err, &syn) {
			line, msg = syn.Line, syn.Msg
		}
		return domain.Diagnostic{
			Severity: domain.SeverityFatal,
			SystemID: systemID,
			Line:     line,
			Column:   col,
			Message:  msg,
		}, false
	}
}

func newDecoder(doc []byte) *xml.Decoder {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	// Declared encodings are resolved by libxml2; positions only need bytes.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return dec
}

// locator maps a (line, element name) pair reported by libxml2 to the column
// just past that element's start tag.
type locator struct {
	starts map[int][]startTag
}

type startTag struct {
	name   string
	column int
}

func newLocator(doc []byte) *locator {
	l := &locator{starts: make(map[int][]startTag)}
	dec := newDecoder(doc)
	for {
		offset := dec.InputOffset()
		tok, err := dec.RawToken()
		if err != nil {
			return l
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		// libxml2 reports the line the start tag begins on.
		line := 1 + bytes.Count(doc[:offset], []byte("\n"))
		_, col := dec.InputPos()
		l.starts[line] = append(l.starts[line], startTag{name: qualified(se.Name), column: col})
	}
}

func (l *locator) column(line int, name string) int {
	tags := l.starts[line]
	for _, tag := range tags {
		if tag.name == name || localName(tag.name) == localName(name) {
			return tag.column
		}
	}
	if len(tags) > 0 {
		return tags[0].column
	}
	return 1
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func localName(name string) string {
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}
