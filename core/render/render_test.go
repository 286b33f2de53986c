package render

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shlint/shlint/core/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)
}

func sampleResult() *scanner.ScanResult {
	return &scanner.ScanResult{
		Diagnostics: []scanner.Diagnostic{
			{
				RuleID:   "unquoted-expansion",
				Line:     2,
				Col:      17,
				Message:  `expansion of $var is unquoted and subject to wordsplitting and globbing; use "${var}"`,
				Severity: scanner.Warning,
			},
			{
				RuleID:   "unchecked-cd",
				Line:     5,
				Message:  "cd can fail and the script keeps running in the wrong directory; use cd ... || exit",
				Severity: scanner.Error,
			},
		},
		Lines: 6,
	}
}

func extraResult() *scanner.ScanResult {
	return &scanner.ScanResult{
		Diagnostics: []scanner.Diagnostic{
			{
				RuleID:   "backtick-substitution",
				Line:     3,
				Col:      5,
				Message:  "backtick command substitution doesn't nest and is easy to misread; use $(...)",
				Severity: scanner.Warning,
			},
		},
		Lines: 3,
	}
}

func TestTextRenderer(t *testing.T) {
	g := newGoldie(t)

	t.Run("diagnostics", func(t *testing.T) {
		var buf bytes.Buffer
		renderer := NewText(&buf, ColorNever)
		require.NoError(t, renderer.Render("scripts/deploy.sh", sampleResult()))
		require.NoError(t, renderer.Close())

		g.Assert(t, "diagnostics", buf.Bytes())
	})

	t.Run("clean result", func(t *testing.T) {
		var buf bytes.Buffer
		renderer := NewText(&buf, ColorNever)
		require.NoError(t, renderer.Render("clean.sh", &scanner.ScanResult{Lines: 10}))
		require.NoError(t, renderer.Close())

		assert.Empty(t, buf.String())
	})

	t.Run("colored severities", func(t *testing.T) {
		var buf bytes.Buffer
		renderer := NewText(&buf, ColorAlways)
		require.NoError(t, renderer.Render("scripts/deploy.sh", sampleResult()))

		assert.Contains(t, buf.String(), "\x1b[")
	})

	t.Run("never has no escapes", func(t *testing.T) {
		var buf bytes.Buffer
		renderer := NewText(&buf, ColorNever)
		require.NoError(t, renderer.Render("scripts/deploy.sh", sampleResult()))

		assert.False(t, strings.Contains(buf.String(), "\x1b["))
	})
}

func TestJSONRenderer(t *testing.T) {
	g := newGoldie(t)

	t.Run("multiple files", func(t *testing.T) {
		var buf bytes.Buffer
		renderer := NewJSON(&buf)
		require.NoError(t, renderer.Render("scripts/deploy.sh", sampleResult()))
		require.NoError(t, renderer.Render("lib/util.sh", extraResult()))
		require.NoError(t, renderer.Close())

		g.Assert(t, "multiple_files", buf.Bytes())
	})

	t.Run("no diagnostics", func(t *testing.T) {
		var buf bytes.Buffer
		renderer := NewJSON(&buf)
		require.NoError(t, renderer.Render("clean.sh", &scanner.ScanResult{Lines: 4}))
		require.NoError(t, renderer.Close())

		assert.Equal(t, "[]\n", buf.String())
	})
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	text, err := New("text", ColorAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &Text{}, text)

	jsonRenderer, err := New("json", ColorAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &JSON{}, jsonRenderer)

	_, err = New("xml", ColorAuto, &buf)
	assert.Error(t, err)
}
