// classforge/pkg/stylesheet/stylesheet.go

// Package stylesheet holds the Stylesheet IR (Rule/MediaBlock) and the
// Emitter that serializes it to CSS text. Formatting follows the house
// style used throughout pkg/generators in this codebase: two-space indent,
// one declaration per line, blocks separated by a blank line, all built
// through a strings.Builder rather than repeated string concatenation.
package stylesheet

import "strings"

// Declaration is a rendered property/value pair ready for emission.
type Declaration struct {
	Property string
	Value    string
}

// Rule is one selector block.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// MediaBlock wraps one or more Rules in an at-rule (@media or @container).
// A variant prefix combining two at-rule variants (e.g. a breakpoint and a
// container query) nests rather than flattens: Nested holds the inner
// at-rule block and Rules is empty in that case.
type MediaBlock struct {
	AtRule string
	Rules  []Rule
	Nested *MediaBlock
}

// Entry is either a Rule or a MediaBlock; exactly one field is set.
type Entry struct {
	Rule  *Rule
	Media *MediaBlock
}

// Sheet is the ordered top-level IR: an optional :root preamble followed by
// entries in emission order.
type Sheet struct {
	RootVariables []Declaration
	Entries       []Entry
}

// Emit serializes the sheet to CSS text.
func Emit(s Sheet) string {
	var b strings.Builder

	if len(s.RootVariables) > 0 {
		b.WriteString(":root {\n")
		for _, d := range s.RootVariables {
			b.WriteString("  ")
			b.WriteString(d.Property)
			b.WriteString(": ")
			b.WriteString(d.Value)
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
		if len(s.Entries) > 0 {
			b.WriteString("\n")
		}
	}

	for i, e := range s.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		if e.Rule != nil {
			emitRule(&b, "", *e.Rule)
		} else if e.Media != nil {
			emitMedia(&b, "", *e.Media)
		}
	}

	return b.String()
}

func emitRule(b *strings.Builder, indent string, r Rule) {
	b.WriteString(indent)
	b.WriteString(r.Selector)
	b.WriteString(" {\n")
	for _, d := range r.Declarations {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}

func emitMedia(b *strings.Builder, indent string, m MediaBlock) {
	b.WriteString(indent)
	b.WriteString(m.AtRule)
	b.WriteString(" {\n")
	if m.Nested != nil {
		emitMedia(b, indent+"  ", *m.Nested)
	} else {
		for i, r := range m.Rules {
			if i > 0 {
				b.WriteString("\n")
			}
			emitRule(b, indent+"  ", r)
		}
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}
