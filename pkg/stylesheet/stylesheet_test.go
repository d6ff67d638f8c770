// classforge/pkg/stylesheet/stylesheet_test.go

package stylesheet_test

import (
	"strings"
	"testing"

	"github.com/classforge/classforge/pkg/stylesheet"
	"github.com/gorilla/css/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidCSS round-trips css through gorilla/css's tokenizer to confirm
// the emitter never produces something that doesn't even scan as CSS.
func assertValidCSS(t *testing.T, css string) {
	t.Helper()
	s := scanner.New(css)
	for {
		tok := s.Next()
		require.NotEqual(t, scanner.TokenError, tok.Type, "tokenize error: %s", tok.Value)
		if tok.Type == scanner.TokenEOF {
			break
		}
	}
}

func TestEmitSingleRule(t *testing.T) {
	sheet := stylesheet.Sheet{
		Entries: []stylesheet.Entry{
			{Rule: &stylesheet.Rule{
				Selector: ".c_abcdef12",
				Declarations: []stylesheet.Declaration{
					{Property: "padding", Value: "1rem"},
				},
			}},
		},
	}
	css := stylesheet.Emit(sheet)
	assert.Equal(t, ".c_abcdef12 {\n  padding: 1rem;\n}\n", css)
	assertValidCSS(t, css)
}

func TestEmitMediaBlock(t *testing.T) {
	sheet := stylesheet.Sheet{
		Entries: []stylesheet.Entry{
			{Media: &stylesheet.MediaBlock{
				AtRule: "@media (min-width: 768px)",
				Rules: []stylesheet.Rule{
					{Selector: ".c_abcdef12", Declarations: []stylesheet.Declaration{
						{Property: "padding", Value: "2rem"},
					}},
				},
			}},
		},
	}
	css := stylesheet.Emit(sheet)
	assert.Contains(t, css, "@media (min-width: 768px) {")
	assert.Contains(t, css, "  .c_abcdef12 {")
	assert.Contains(t, css, "    padding: 2rem;")
	assertValidCSS(t, css)
}

func TestEmitRootVariablesPreamble(t *testing.T) {
	sheet := stylesheet.Sheet{
		RootVariables: []stylesheet.Declaration{
			{Property: "--brand", Value: "#3b82f6"},
		},
		Entries: []stylesheet.Entry{
			{Rule: &stylesheet.Rule{Selector: ".c_1", Declarations: []stylesheet.Declaration{
				{Property: "color", Value: "var(--brand)"},
			}}},
		},
	}
	css := stylesheet.Emit(sheet)
	assert.True(t, strings.HasPrefix(css, ":root {\n  --brand: #3b82f6;\n}\n"))
	assertValidCSS(t, css)
}

func TestEmitBlankLineSeparatesEntries(t *testing.T) {
	sheet := stylesheet.Sheet{
		Entries: []stylesheet.Entry{
			{Rule: &stylesheet.Rule{Selector: ".a", Declarations: []stylesheet.Declaration{{Property: "color", Value: "red"}}}},
			{Rule: &stylesheet.Rule{Selector: ".b", Declarations: []stylesheet.Declaration{{Property: "color", Value: "blue"}}}},
		},
	}
	css := stylesheet.Emit(sheet)
	assert.Contains(t, css, "}\n\n.b {")
}
