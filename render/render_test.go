package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML_Basics(t *testing.T) {
	r := New()
	out, err := r.HTML("# Aurora Coffee\n\n- bold **roast**\n- smooth finish\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Aurora Coffee</h1>")
	assert.Contains(t, out, "<li>bold <strong>roast</strong></li>")
}

func TestHTML_Table(t *testing.T) {
	out, err := New().HTML("| Plan | Price |\n|---|---|\n| Pro | $9 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>Pro</td>")
}

func TestHTML_StripsRawHTML(t *testing.T) {
	out, err := New().HTML("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestHTML_Deterministic(t *testing.T) {
	r := New()
	a, err := r.HTML("## Subject lines\n1. One\n2. Two")
	require.NoError(t, err)
	b, err := r.HTML("## Subject lines\n1. One\n2. Two")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
