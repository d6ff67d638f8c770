// classforge/pkg/classparser/parser.go

// Package classparser lexes a single utility-class token into a ParsedClass
// record. It knows about variant-prefix punctuation and the compound-plugin
// table needed to find the plugin/value boundary, but nothing about what a
// plugin does with its value — that is pkg/synth's job. Keeping this layer
// ignorant of value semantics is what lets the same parser front every
// plugin family without a dependency cycle.
package classparser

import (
	"fmt"
	"strings"
)

// ValueKind tags how ParsedClass.Value should be interpreted.
type ValueKind int

const (
	// NoValue marks a valueless utility ("flex", "hidden").
	NoValue ValueKind = iota
	// Standard is a plain token value ("4", "blue-500", "1/2").
	Standard
	// Arbitrary is verbatim text captured between balanced [ ].
	Arbitrary
	// CssVariable is verbatim text captured between balanced ( ), optionally
	// preceded by a "hint:" type tag.
	CssVariable
)

// ParsedClass is the structured record produced by Parse.
type ParsedClass struct {
	// RawVariantPrefix is kept verbatim, including the trailing ':' of the
	// last segment if any variants were present. Empty when there are none.
	RawVariantPrefix string
	Negated          bool
	Plugin           string
	ValueKind        ValueKind
	Value            string
	// Hint is the optional "word:" type tag inside a CssVariable value,
	// e.g. "length" in "bg-(length:--foo)". Empty when absent.
	Hint         string
	Alpha        string
	AlphaBracket bool
	Important    bool
}

// Error is a malformed-token diagnostic: the token could not be lexed at
// all (unbalanced brackets, empty plugin, isolated '-').
type Error struct {
	Token  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("malformed-token %q: %s", e.Token, e.Reason)
}

// IsCompoundPlugin reports whether name is a recognized multi-segment
// plugin name, consulted while resolving the plugin/value boundary.
// Exported so pkg/pluginmap's enumeration and this parser share one table.
var IsCompoundPlugin func(name string) bool

// Parse lexes one whitespace-free token into a ParsedClass.
func Parse(token string) (ParsedClass, error) {
	if token == "" {
		return ParsedClass{}, &Error{Token: token, Reason: "empty token"}
	}

	pc := ParsedClass{}
	rest := token

	prefix, remainder, err := captureVariantPrefix(rest)
	if err != nil {
		return ParsedClass{}, &Error{Token: token, Reason: err.Error()}
	}
	pc.RawVariantPrefix = prefix
	rest = remainder

	if strings.HasPrefix(rest, "-") && len(rest) > 1 && isLetter(rest[1]) {
		pc.Negated = true
		rest = rest[1:]
	}

	plugin, remainder, err := capturePlugin(rest)
	if err != nil {
		return ParsedClass{}, &Error{Token: token, Reason: err.Error()}
	}
	if plugin == "" {
		return ParsedClass{}, &Error{Token: token, Reason: "empty plugin after modifiers"}
	}
	pc.Plugin = plugin
	rest = remainder

	// A '-' directly followed by a bracket/paren value-start marker is just
	// the plugin/value joiner, not part of a standard value — strip it so
	// captureValue sees the marker itself ("w-[13px]", "bg-(--brand)").
	if len(rest) > 1 && rest[0] == '-' && (rest[1] == '[' || rest[1] == '(') {
		rest = rest[1:]
	}

	remainder, err = captureValue(&pc, rest)
	if err != nil {
		return ParsedClass{}, &Error{Token: token, Reason: err.Error()}
	}
	rest = remainder

	remainder, err = captureAlpha(&pc, rest)
	if err != nil {
		return ParsedClass{}, &Error{Token: token, Reason: err.Error()}
	}
	rest = remainder

	if strings.HasPrefix(rest, "!") {
		pc.Important = true
		rest = rest[1:]
	}

	if rest != "" {
		return ParsedClass{}, &Error{Token: token, Reason: fmt.Sprintf("unexpected trailing input %q", rest)}
	}

	return pc, nil
}

// captureVariantPrefix consumes up to and including the last top-level ':'
// at bracket/paren depth zero, tracking depth across the whole prefix so
// variant payloads like "has-[.foo]:" and "data-[state=open]:" don't break
// the scan.
func captureVariantPrefix(s string) (prefix, rest string, err error) {
	depth := 0
	lastColon := -1
	for i, r := range s {
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
			if depth < 0 {
				return "", "", fmt.Errorf("unbalanced closing bracket at %d", i)
			}
		case ':':
			if depth == 0 {
				lastColon = i
			}
		}
	}
	if depth != 0 {
		return "", "", fmt.Errorf("unbalanced brackets in variant prefix")
	}
	if lastColon == -1 {
		return "", s, nil
	}
	return s[:lastColon+1], s[lastColon+1:], nil
}

// capturePlugin consumes the plugin name, preferring the longest matching
// compound-plugin prefix; falling back to the leading segment that ends at
// the first '-' or value-start marker ('[', '(').
func capturePlugin(s string) (plugin, rest string, err error) {
	if s == "" {
		return "", "", nil
	}

	// Longest-match compound lookup: try progressively shorter prefixes up
	// to the full identifier run.
	identEnd := 0
	for identEnd < len(s) && isIdentChar(s[identEnd]) {
		identEnd++
	}
	full := s[:identEnd]

	if IsCompoundPlugin != nil {
		best := ""
		segs := strings.Split(full, "-")
		for cut := len(segs); cut >= 1; cut-- {
			candidate := strings.Join(segs[:cut], "-")
			if IsCompoundPlugin(candidate) {
				best = candidate
				break
			}
		}
		if best != "" {
			return best, s[len(best):], nil
		}
	}

	// No compound match: the plugin is the single leading segment — the
	// run of identifier characters up to the first '-' or value-start
	// marker ('[', '('). A hyphen followed by a non-letter (e.g. the '-2'
	// in "z-2") never starts a new segment at all, since the value parser
	// (step 4) is the one that consumes a leading '-'; it is only reached
	// here because identEnd's scan treats '-' as an ident char, so we must
	// stop at the FIRST '-' unconditionally once a compound prefix match
	// has already been ruled out.
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(', '-':
			return s[:i], s[i:], nil
		}
	}
	return s, "", nil
}

// captureValue reads the optional value segment into pc, returning the
// unconsumed remainder.
func captureValue(pc *ParsedClass, s string) (rest string, err error) {
	if s == "" {
		pc.ValueKind = NoValue
		return "", nil
	}

	switch s[0] {
	case '[':
		content, remainder, err := balancedSpan(s, '[', ']')
		if err != nil {
			return "", err
		}
		pc.ValueKind = Arbitrary
		pc.Value = content
		return remainder, nil
	case '(':
		content, remainder, err := balancedSpan(s, '(', ')')
		if err != nil {
			return "", err
		}
		if idx := strings.Index(content, ":"); idx != -1 && isIdent(content[:idx]) {
			pc.Hint = content[:idx]
			content = content[idx+1:]
		}
		pc.ValueKind = CssVariable
		pc.Value = content
		return remainder, nil
	case '-':
		rest := s[1:]
		end := 0
		for end < len(rest) && rest[end] != '/' && rest[end] != '!' {
			end++
		}
		if end == 0 {
			return "", fmt.Errorf("isolated '-' with no value")
		}
		pc.ValueKind = Standard
		pc.Value = rest[:end]
		return rest[end:], nil
	default:
		pc.ValueKind = NoValue
		return s, nil
	}
}

// captureAlpha reads an optional "/alpha" suffix.
func captureAlpha(pc *ParsedClass, s string) (rest string, err error) {
	if !strings.HasPrefix(s, "/") {
		return s, nil
	}
	s = s[1:]
	if strings.HasPrefix(s, "[") {
		content, remainder, err := balancedSpan(s, '[', ']')
		if err != nil {
			return "", err
		}
		pc.Alpha = content
		pc.AlphaBracket = true
		return remainder, nil
	}
	end := 0
	for end < len(s) && isAlphaTokenChar(s[end]) {
		end++
	}
	if end == 0 {
		return "", fmt.Errorf("empty alpha suffix")
	}
	pc.Alpha = s[:end]
	return s[end:], nil
}

// balancedSpan consumes s starting at open, returning the interior text
// (exclusive of the delimiters) and the remainder after the matching close,
// tracking nested [] and () throughout.
func balancedSpan(s string, open, close byte) (content, rest string, err error) {
	if len(s) == 0 || s[0] != open {
		return "", "", fmt.Errorf("expected %q", open)
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:], nil
			}
			if depth < 0 {
				return "", "", fmt.Errorf("unbalanced brackets")
			}
		}
	}
	return "", "", fmt.Errorf("unbalanced brackets: missing closing %q", close)
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentChar(b byte) bool {
	return isLetter(b) || (b >= '0' && b <= '9') || b == '-'
}

func isAlphaTokenChar(b byte) bool {
	return (b >= '0' && b <= '9') || isLetter(b) || b == '.'
}

// SplitPrefix splits a raw variant prefix (as captured in
// ParsedClass.RawVariantPrefix, trailing ':' included) into its
// top-level segments, respecting bracket/paren depth so that
// "has-[.foo]:" and "data-[state=open]:" survive as single segments.
func SplitPrefix(prefix string) []string {
	prefix = strings.TrimSuffix(prefix, ":")
	if prefix == "" {
		return nil
	}
	var segs []string
	depth := 0
	start := 0
	for i, r := range prefix {
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case ':':
			if depth == 0 {
				segs = append(segs, prefix[start:i])
				start = i + 1
			}
		}
	}
	segs = append(segs, prefix[start:])
	return segs
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) && s[i] != '-' {
			return false
		}
	}
	return true
}
