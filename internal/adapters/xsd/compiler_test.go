package xsd_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolbelt/internal/adapters/xsd"
	"go.trai.ch/toolbelt/internal/core/domain"
)

const unitSchema = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="scenario">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="unit" maxOccurs="unbounded">
          <xs:complexType>
            <xs:sequence>
              <xs:element name="name" type="xs:string"/>
            </xs:sequence>
          </xs:complexType>
        </xs:element>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>
`

func compileSchema(t *testing.T) *xsd.Schema {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unit.xsd")
	require.NoError(t, os.WriteFile(path, []byte(unitSchema), 0o600))

	schema, err := xsd.NewCompiler().Compile(path)
	require.NoError(t, err)
	t.Cleanup(schema.Close)
	return schema.(*xsd.Schema)
}

func TestSchema_Valid(t *testing.T) {
	schema := compileSchema(t)

	diags, err := schema.Validate([]byte("<scenario>\n  <unit><name>alpha</name></unit>\n</scenario>\n"), "ok.xml")
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestSchema_MissingElement(t *testing.T) {
	schema := compileSchema(t)

	diags, err := schema.Validate([]byte("<scenario>\n  <unit></unit>\n</scenario>\n"), "bad.xml")
	require.NoError(t, err)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, domain.SeverityError, d.Severity)
	assert.Equal(t, "bad.xml", d.SystemID)
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, 9, d.Column)
	assert.Contains(t, d.Message, "name")
}

func TestSchema_NotWellFormed(t *testing.T) {
	schema := compileSchema(t)

	diags, err := schema.Validate([]byte("<scenario>\n  <unit>\n</scenario>\n"), "broken.xml")
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, domain.SeverityFatal, diags[0].Severity)
	assert.Equal(t, 3, diags[0].Line)
	assert.Positive(t, diags[0].Column)
}

func TestSchema_InternalEntity(t *testing.T) {
	schema := compileSchema(t)

	doc := `<!DOCTYPE scenario [<!ENTITY who "alpha">]>
<scenario><unit><name>&who;</name></unit></scenario>`
	diags, err := schema.Validate([]byte(doc), "entity.xml")
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestSchema_CloseTwice(t *testing.T) {
	schema := compileSchema(t)
	schema.Close()
	assert.NotPanics(t, schema.Close)
}

func TestCompiler_MissingSchema(t *testing.T) {
	_, err := xsd.NewCompiler().Compile(filepath.Join(t.TempDir(), "absent.xsd"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSchemaCompile))
}
