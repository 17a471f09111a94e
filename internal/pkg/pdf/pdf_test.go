package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLines(t *testing.T) {
	out := RenderLines([]string{"Salary Receipt", "Total Pay: 750"})

	s := string(out)
	require.True(t, strings.HasPrefix(s, "%PDF-1.4"))
	assert.True(t, strings.HasSuffix(s, "%%EOF"))
	assert.Contains(t, s, "(Salary Receipt) Tj")
	assert.Contains(t, s, "(Total Pay: 750) Tj")
	assert.Contains(t, s, "xref")
}

func TestRenderLines_EscapesDelimiters(t *testing.T) {
	out := RenderLines([]string{"Jane (Doe) \\ HR"})
	assert.Contains(t, string(out), `(Jane \(Doe\) \\ HR) Tj`)
}

func TestRenderLines_EmptyInput(t *testing.T) {
	out := RenderLines(nil)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-1.4"))
}
