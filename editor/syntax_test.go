package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSyntaxMatchesByExtension(t *testing.T) {
	assert.Equal(t, "c", SelectSyntax("main.c").Filetype)
	assert.Equal(t, "go", SelectSyntax("main.go").Filetype)
	assert.Nil(t, SelectSyntax("README.md"))
	assert.Nil(t, SelectSyntax(""))
}

func TestHighlightRowTagsKeywordsStringsNumbersAndComments(t *testing.T) {
	syntax := SelectSyntax("x.c")
	require.NotNil(t, syntax)

	render := []byte(`if (x == 42) { s = "hi"; } // done`)
	hl, openAfter := highlightRow(render, syntax, false)

	require.Len(t, hl, len(render))
	assert.False(t, openAfter)
	assert.Equal(t, HLKeyword1, hl[0]) // "if"
	assert.Equal(t, HLNumber, hl[9])   // "42"

	stringStart := indexOf(render, '"')
	assert.Equal(t, HLString, hl[stringStart])

	commentStart := indexOf(render, '/')
	for _, code := range hl[commentStart:] {
		assert.Equal(t, HLComment, code)
	}
}

func TestHighlightRowBlockCommentCarriesAcrossLinesUntilClosed(t *testing.T) {
	syntax := SelectSyntax("x.c")
	require.NotNil(t, syntax)

	hl1, open1 := highlightRow([]byte("/* start"), syntax, false)
	assert.True(t, open1)
	for _, code := range hl1 {
		assert.Equal(t, HLComment, code)
	}

	line2 := []byte("end */ int x = 1;")
	hl2, open2 := highlightRow(line2, syntax, true)
	assert.False(t, open2)
	assert.Equal(t, HLComment, hl2[0])
	closeIdx := indexOf(line2, '*')
	assert.Equal(t, HLComment, hl2[closeIdx+1]) // the trailing '/' of "*/"
	assert.NotEqual(t, HLComment, hl2[len(hl2)-1])
}

func TestHighlightRowLineCommentConsumesRestOfLine(t *testing.T) {
	syntax := SelectSyntax("x.go")
	require.NotNil(t, syntax)

	hl, _ := highlightRow([]byte(`x := 1 // trailing`), syntax, false)
	commentStart := indexOf([]byte(`x := 1 // trailing`), '/')
	for _, code := range hl[commentStart:] {
		assert.Equal(t, HLComment, code)
	}
}

func indexOf(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}
