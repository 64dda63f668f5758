package csvx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBasic(t *testing.T) {
	got := Parse("a,b,c\n1,2,3")
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"1", "2", "3"}}, got)
}

func TestParseQuotedComma(t *testing.T) {
	got := Parse(`"Acme, Inc.",100`)
	assert.Equal(t, [][]string{{"Acme, Inc.", "100"}}, got)
}

func TestParseEscapedQuote(t *testing.T) {
	got := Parse(`"She said ""hi"""`)
	assert.Equal(t, [][]string{{`She said "hi"`}}, got)
}

func TestParseQuotedNewline(t *testing.T) {
	got := Parse("\"line one\nline two\",x")
	assert.Equal(t, [][]string{{"line one\nline two", "x"}}, got)
}

func TestParseTrimsCells(t *testing.T) {
	got := Parse("  a  , b ,\tc\n")
	assert.Equal(t, [][]string{{"a", "b", "c"}}, got)
}

func TestParseBlankLinesSkipped(t *testing.T) {
	got := Parse("a,b\n\n\nc,d\n")
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, got)
}

func TestParseRowOfCommas(t *testing.T) {
	got := Parse(",,")
	assert.Equal(t, [][]string{{"", "", ""}}, got)
}

func TestParseCRLF(t *testing.T) {
	got := Parse("a,b\r\nc,d\r\n")
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, got)
}

func TestParseBareCR(t *testing.T) {
	got := Parse("a,b\rc,d")
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, got)
}

func TestParseEmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
}

func TestParseUnterminatedQuote(t *testing.T) {
	got := Parse("a,\"rest of it")
	assert.Equal(t, [][]string{{"a", "rest of it"}}, got)
}

func TestParseTrailingComma(t *testing.T) {
	got := Parse("a,b,\n")
	assert.Equal(t, [][]string{{"a", "b", ""}}, got)
}
