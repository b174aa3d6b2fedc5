package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolbelt/cmd/toolbelt/commands"
	"go.trai.ch/toolbelt/internal/app"
	"go.trai.ch/toolbelt/internal/build"
	"go.trai.ch/toolbelt/internal/core/domain"
)

type mockApp struct {
	transformFunc      func(input, output, xsl string, params map[string]string) error
	transformWatchFunc func(ctx context.Context, input, output, xsl string, params map[string]string) error
	validateFunc       func(doc, schema string) (domain.Report, error)
	runAntFunc         func(ctx context.Context, target string, out io.Writer) error
	buildFunc          func(ctx context.Context, targets []string, opts app.BuildOptions) error
	copyFunc           func(src, dst string) (int64, error)
	copyLinesFunc      func(src, dst string) (int, error)
	moveFunc           func(src, dst string) (int64, error)
	stampFunc          func(name, path string) (string, error)
	toUTMFunc          func(p domain.LatLon) (domain.UTMPoint, error)
	fromUTMFunc        func(u domain.UTMPoint) (domain.LatLon, error)
	offsetFunc         func(origin domain.LatLon, east, north float64) (domain.LatLon, error)
	mgrsFunc           func(p domain.LatLon, digits int) (string, error)
	formatXMLFunc      func(path string) error
	watchFunc          func(ctx context.Context, dirs ...string) error
}

func (m *mockApp) Transform(input, output, xsl string, params map[string]string) error {
	if m.transformFunc != nil {
		return m.transformFunc(input, output, xsl, params)
	}
	return nil
}

func (m *mockApp) TransformWatch(ctx context.Context, input, output, xsl string, params map[string]string) error {
	if m.transformWatchFunc != nil {
		return m.transformWatchFunc(ctx, input, output, xsl, params)
	}
	return nil
}

func (m *mockApp) Validate(doc, schema string) (domain.Report, error) {
	if m.validateFunc != nil {
		return m.validateFunc(doc, schema)
	}
	return domain.Report{Valid: true}, nil
}

func (m *mockApp) RunAnt(ctx context.Context, target string, out io.Writer) error {
	if m.runAntFunc != nil {
		return m.runAntFunc(ctx, target, out)
	}
	return nil
}

func (m *mockApp) Build(ctx context.Context, targets []string, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, targets, opts)
	}
	return nil
}

func (m *mockApp) Copy(src, dst string) (int64, error) {
	if m.copyFunc != nil {
		return m.copyFunc(src, dst)
	}
	return 0, nil
}

func (m *mockApp) CopyLines(src, dst string) (int, error) {
	if m.copyLinesFunc != nil {
		return m.copyLinesFunc(src, dst)
	}
	return 0, nil
}

func (m *mockApp) Move(src, dst string) (int64, error) {
	if m.moveFunc != nil {
		return m.moveFunc(src, dst)
	}
	return 0, nil
}

func (m *mockApp) DateTimeGroup() string {
	return "050709ZMAR2024"
}

func (m *mockApp) WriteBuildStamp(name, path string) (string, error) {
	if m.stampFunc != nil {
		return m.stampFunc(name, path)
	}
	return "", nil
}

func (m *mockApp) ToUTM(p domain.LatLon) (domain.UTMPoint, error) {
	if m.toUTMFunc != nil {
		return m.toUTMFunc(p)
	}
	return domain.UTMPoint{}, nil
}

func (m *mockApp) FromUTM(u domain.UTMPoint) (domain.LatLon, error) {
	if m.fromUTMFunc != nil {
		return m.fromUTMFunc(u)
	}
	return domain.LatLon{}, nil
}

func (m *mockApp) Offset(origin domain.LatLon, east, north float64) (domain.LatLon, error) {
	if m.offsetFunc != nil {
		return m.offsetFunc(origin, east, north)
	}
	return origin, nil
}

func (m *mockApp) MGRS(p domain.LatLon, digits int) (string, error) {
	if m.mgrsFunc != nil {
		return m.mgrsFunc(p, digits)
	}
	return "", nil
}

func (m *mockApp) FormatXML(path string) error {
	if m.formatXMLFunc != nil {
		return m.formatXMLFunc(path)
	}
	return nil
}

func (m *mockApp) WatchStylesheets(ctx context.Context, dirs ...string) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, dirs...)
	}
	return nil
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Transform(t *testing.T) {
	t.Run("passes paths in order", func(t *testing.T) {
		var got []string
		m := &mockApp{transformFunc: func(input, output, xsl string, params map[string]string) error {
			got = []string{input, output, xsl}
			assert.Nil(t, params)
			return nil
		}}

		out, err := execute(t, m, "transform", "in.xml", "out.xml", "style.xsl")
		require.NoError(t, err)
		assert.Equal(t, []string{"in.xml", "out.xml", "style.xsl"}, got)
		assert.Contains(t, out, "in.xml")
	})

	t.Run("passes stylesheet parameters", func(t *testing.T) {
		var got map[string]string
		m := &mockApp{transformFunc: func(_, _, _ string, params map[string]string) error {
			got = params
			return nil
		}}

		_, err := execute(t, m, "transform", "-p", "side=blue", "--param", "phase=a=b",
			"in.xml", "out.xml", "style.xsl")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"side": "blue", "phase": "a=b"}, got)
	})

	t.Run("rejects malformed parameter", func(t *testing.T) {
		m := &mockApp{transformFunc: func(_, _, _ string, _ map[string]string) error {
			panic("should not be called")
		}}

		_, err := execute(t, m, "transform", "--param", "side", "in.xml", "out.xml", "style.xsl")
		require.Error(t, err)
	})

	t.Run("watch flag selects the watching transform", func(t *testing.T) {
		watched := false
		m := &mockApp{
			transformFunc: func(_, _, _ string, _ map[string]string) error {
				panic("should not be called")
			},
			transformWatchFunc: func(_ context.Context, _, _, _ string, _ map[string]string) error {
				watched = true
				return nil
			},
		}

		_, err := execute(t, m, "transform", "--watch", "in.xml", "out.xml", "style.xsl")
		require.NoError(t, err)
		assert.True(t, watched)
	})

	t.Run("requires three arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "transform", "in.xml")
		require.Error(t, err)
	})
}

func TestCommands_Validate(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "validate", "doc.xml", "schema.xsd")
		require.NoError(t, err)
		assert.Contains(t, out, "doc.xml: 0 error(s), 0 warning(s)")
	})

	t.Run("invalid document fails", func(t *testing.T) {
		m := &mockApp{validateFunc: func(_, _ string) (domain.Report, error) {
			return domain.Report{Diagnostics: []domain.Diagnostic{
				{Severity: domain.SeverityError, Message: "bad"},
				{Severity: domain.SeverityWarning, Message: "odd"},
			}}, nil
		}}

		out, err := execute(t, m, "validate", "doc.xml", "schema.xsd")
		require.ErrorIs(t, err, domain.ErrDocumentInvalid)
		assert.Contains(t, out, "1 error(s), 1 warning(s)")
	})

	t.Run("validator failure is returned", func(t *testing.T) {
		m := &mockApp{validateFunc: func(_, _ string) (domain.Report, error) {
			return domain.Report{}, domain.ErrSchemaCompile
		}}

		_, err := execute(t, m, "validate", "doc.xml", "schema.xsd")
		require.ErrorIs(t, err, domain.ErrSchemaCompile)
	})
}

func TestCommands_Ant(t *testing.T) {
	var target string
	m := &mockApp{runAntFunc: func(_ context.Context, tgt string, out io.Writer) error {
		target = tgt
		_, err := io.WriteString(out, "Task begun.\n")
		return err
	}}

	out, err := execute(t, m, "ant", "dist")
	require.NoError(t, err)
	assert.Equal(t, "dist", target)
	assert.Equal(t, "Task begun.\n", out)
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.BuildOptions
		var capturedTargets []string
		m := &mockApp{buildFunc: func(_ context.Context, targets []string, opts app.BuildOptions) error {
			capturedTargets = targets
			capturedOpts = opts
			return nil
		}}

		_, err := execute(t, m, "build", "compile", "-D", "mode=release", "-D", "arch=", "--no-cache", "--file", "other.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"compile"}, capturedTargets)
		assert.Equal(t, map[string]string{"mode": "release", "arch": ""}, capturedOpts.Properties)
		assert.True(t, capturedOpts.NoCache)
		assert.Equal(t, "other.yaml", capturedOpts.File)
	})

	t.Run("rejects malformed properties", func(t *testing.T) {
		m := &mockApp{buildFunc: func(_ context.Context, _ []string, _ app.BuildOptions) error {
			panic("should not be called")
		}}

		_, err := execute(t, m, "build", "-D", "mode")
		require.Error(t, err)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		m := &mockApp{buildFunc: func(_ context.Context, _ []string, _ app.BuildOptions) error {
			return errors.New("simulated error")
		}}

		_, err := execute(t, m, "build")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Copy(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		m := &mockApp{copyFunc: func(_, _ string) (int64, error) { return 2048, nil }}

		out, err := execute(t, m, "copy", "a.bin", "b.bin")
		require.NoError(t, err)
		assert.Contains(t, out, "2.0 kB")
	})

	t.Run("lines", func(t *testing.T) {
		m := &mockApp{
			copyFunc:      func(_, _ string) (int64, error) { panic("should not be called") },
			copyLinesFunc: func(_, _ string) (int, error) { return 1200, nil },
		}

		out, err := execute(t, m, "copy", "--lines", "a.txt", "b.txt")
		require.NoError(t, err)
		assert.Contains(t, out, "1,200 lines")
	})
}

func TestCommands_Move(t *testing.T) {
	var got []string
	m := &mockApp{moveFunc: func(src, dst string) (int64, error) {
		got = []string{src, dst}
		return 10, nil
	}}

	out, err := execute(t, m, "move", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Contains(t, out, "10 B")
}

func TestCommands_DTG(t *testing.T) {
	out, err := execute(t, &mockApp{}, "dtg")
	require.NoError(t, err)
	assert.Equal(t, "050709ZMAR2024\n", out)
}

func TestCommands_Stamp(t *testing.T) {
	var path string
	m := &mockApp{stampFunc: func(name, p string) (string, error) {
		path = p
		return "Current " + name + " build is: 050709ZMAR2024", nil
	}}

	out, err := execute(t, m, "stamp", "Simulator")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBuildStampFile, path)
	assert.Contains(t, out, "Current Simulator build is: 050709ZMAR2024")
}

func TestCommands_UTM(t *testing.T) {
	t.Run("negative coordinates after separator", func(t *testing.T) {
		var got domain.LatLon
		m := &mockApp{toUTMFunc: func(p domain.LatLon) (domain.UTMPoint, error) {
			got = p
			return domain.UTMPoint{Easting: 334369, Northing: 6250948, ZoneNumber: 56, ZoneLetter: "H"}, nil
		}}

		out, err := execute(t, m, "utm", "--", "-33.8688", "151.2093")
		require.NoError(t, err)
		assert.Equal(t, domain.LatLon{Lat: -33.8688, Lon: 151.2093}, got)
		assert.Contains(t, out, "56H 334369E 6250948N")
	})

	t.Run("offset is applied first", func(t *testing.T) {
		moved := domain.LatLon{Lat: 1, Lon: 2}
		var offsets [2]float64
		var projected domain.LatLon
		m := &mockApp{
			offsetFunc: func(_ domain.LatLon, east, north float64) (domain.LatLon, error) {
				offsets = [2]float64{east, north}
				return moved, nil
			},
			toUTMFunc: func(p domain.LatLon) (domain.UTMPoint, error) {
				projected = p
				return domain.UTMPoint{}, nil
			},
		}

		_, err := execute(t, m, "utm", "--east", "500", "--north", "-250", "10", "20")
		require.NoError(t, err)
		assert.Equal(t, [2]float64{500, -250}, offsets)
		assert.Equal(t, moved, projected)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "utm", "north", "20")
		require.ErrorIs(t, err, domain.ErrInvalidCoordinate)
	})
}

func TestCommands_LatLon(t *testing.T) {
	t.Run("parses zone and band", func(t *testing.T) {
		var got domain.UTMPoint
		m := &mockApp{fromUTMFunc: func(u domain.UTMPoint) (domain.LatLon, error) {
			got = u
			return domain.LatLon{Lat: 40.7128, Lon: -74.006}, nil
		}}

		out, err := execute(t, m, "latlon", "18t", "583959", "4507350")
		require.NoError(t, err)
		assert.Equal(t, domain.UTMPoint{Easting: 583959, Northing: 4507350, ZoneNumber: 18, ZoneLetter: "T"}, got)
		assert.Contains(t, out, "(40.712800, -74.006000)")
	})

	t.Run("rejects zone without band", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "latlon", "18", "583959", "4507350")
		require.ErrorIs(t, err, domain.ErrInvalidCoordinate)
	})
}

func TestCommands_MGRS(t *testing.T) {
	var digits int
	m := &mockApp{mgrsFunc: func(_ domain.LatLon, d int) (string, error) {
		digits = d
		return "18TWL839073", nil
	}}

	out, err := execute(t, m, "mgrs", "--digits", "3", "40.7128", "-74.0060")
	require.NoError(t, err)
	assert.Equal(t, 3, digits)
	assert.Equal(t, "18TWL839073\n", out)
}

func TestCommands_XMLFmt(t *testing.T) {
	var formatted []string
	m := &mockApp{formatXMLFunc: func(path string) error {
		formatted = append(formatted, path)
		if path == "broken.xml" {
			return domain.ErrXMLLoadFailed
		}
		return nil
	}}

	_, err := execute(t, m, "xmlfmt", "a.xml", "broken.xml", "c.xml")
	require.ErrorIs(t, err, domain.ErrXMLLoadFailed)
	assert.Equal(t, []string{"a.xml", "broken.xml"}, formatted)
}

func TestCommands_Watch(t *testing.T) {
	var dirs []string
	m := &mockApp{watchFunc: func(_ context.Context, d ...string) error {
		dirs = d
		return nil
	}}

	_, err := execute(t, m, "watch", "styles", "shared")
	require.NoError(t, err)
	assert.Equal(t, []string{"styles", "shared"}, dirs)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
