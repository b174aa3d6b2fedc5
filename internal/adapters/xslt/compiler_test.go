package xslt_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolbelt/internal/adapters/xslt"
	"go.trai.ch/toolbelt/internal/core/domain"
)

const renameStylesheet = `<?xml version="1.0"?>
<xsl:stylesheet version="1.0" xmlns:xsl="http://www.w3.org/1999/XSL/Transform">
  <xsl:output method="xml" indent="no"/>
  <xsl:template match="/scenario">
    <mission name="{@name}"><xsl:value-of select="count(unit)"/></mission>
  </xsl:template>
</xsl:stylesheet>
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCompiler_CompileAndTransform(t *testing.T) {
	path := writeFile(t, "rename.xsl", renameStylesheet)

	tmpl, err := xslt.NewCompiler().Compile(path)
	require.NoError(t, err)

	out, err := tmpl.Transform([]byte(`<scenario name="alpha"><unit/><unit/></scenario>`), nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<mission name="alpha">2</mission>`)
}

func TestCompiler_MissingFile(t *testing.T) {
	_, err := xslt.NewCompiler().Compile(filepath.Join(t.TempDir(), "absent.xsl"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStylesheetNotFound))
}

func TestCompiler_InvalidStylesheet(t *testing.T) {
	path := writeFile(t, "broken.xsl", `<xsl:stylesheet version="1.0" xmlns:xsl="http://www.w3.org/1999/XSL/Transform"><xsl:bogus/>`)

	_, err := xslt.NewCompiler().Compile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStylesheetCompile))
}

func TestTemplate_TransformMalformedInput(t *testing.T) {
	path := writeFile(t, "rename.xsl", renameStylesheet)
	tmpl, err := xslt.NewCompiler().Compile(path)
	require.NoError(t, err)

	_, err = tmpl.Transform([]byte(`<scenario>`), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransformFailed))
}

func TestCompiler_IncludeRelativeToStylesheet(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "common.xsl"), []byte(`<?xml version="1.0"?>
<xsl:stylesheet version="1.0" xmlns:xsl="http://www.w3.org/1999/XSL/Transform">
  <xsl:template name="banner"><banner>shared</banner></xsl:template>
</xsl:stylesheet>
`), 0o600))
	main := filepath.Join(dir, "main.xsl")
	require.NoError(t, os.WriteFile(main, []byte(`<?xml version="1.0"?>
<xsl:stylesheet version="1.0" xmlns:xsl="http://www.w3.org/1999/XSL/Transform">
  <xsl:include href="common.xsl"/>
  <xsl:output method="xml" indent="no"/>
  <xsl:template match="/"><xsl:call-template name="banner"/></xsl:template>
</xsl:stylesheet>
`), 0o600))

	t.Chdir(t.TempDir())

	tmpl, err := xslt.NewCompiler().Compile(main)
	require.NoError(t, err)
	out, err := tmpl.Transform([]byte(`<scenario/>`), nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<banner>shared</banner>")
}

func TestTemplate_TransformParams(t *testing.T) {
	path := writeFile(t, "params.xsl", `<?xml version="1.0"?>
<xsl:stylesheet version="1.0" xmlns:xsl="http://www.w3.org/1999/XSL/Transform">
  <xsl:output method="text"/>
  <xsl:param name="side" select="'red'"/>
  <xsl:param name="phase" select="'none'"/>
  <xsl:template match="/"><xsl:value-of select="concat($side, '/', $phase)"/></xsl:template>
</xsl:stylesheet>
`)
	tmpl, err := xslt.NewCompiler().Compile(path)
	require.NoError(t, err)

	out, err := tmpl.Transform([]byte(`<scenario/>`), nil)
	require.NoError(t, err)
	assert.Equal(t, "red/none", strings.TrimSpace(string(out)))

	out, err = tmpl.Transform([]byte(`<scenario/>`), map[string]string{"side": "blue", "phase": "it's 2"})
	require.NoError(t, err)
	assert.Equal(t, "blue/it's 2", strings.TrimSpace(string(out)))
}
