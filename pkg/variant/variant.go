// classforge/pkg/variant/variant.go

// Package variant resolves a raw variant-prefix segment into a Variant and,
// from there, into selector-fragment or at-rule metadata. It is the only
// package that understands the breakpoint/pseudo/state/container vocabulary;
// pkg/classparser stays ignorant of it and just hands over the raw prefix
// string.
package variant

import (
	"fmt"
	"strings"

	"github.com/classforge/classforge/pkg/classparser"
	"github.com/classforge/classforge/pkg/palette"
)

// Kind tags which family a Variant belongs to.
type Kind int

const (
	Responsive Kind = iota
	PseudoClass
	PseudoElement
	State
	ContainerQuery
	Custom
)

// Variant is one classified segment of a raw variant prefix.
type Variant struct {
	Kind Kind
	// Name is the breakpoint/pseudo/state name, or the raw segment for
	// Custom/arbitrary variants.
	Name string
	// Arbitrary holds bracketed payload text, e.g. the "400px" in "@[400px]"
	// or the ".foo" in "has-[.foo]".
	Arbitrary string
}

var pseudoClasses = map[string]bool{
	"hover": true, "focus": true, "active": true, "visited": true,
	"disabled": true, "enabled": true, "checked": true, "required": true,
	"focus-within": true, "focus-visible": true, "first": true, "last": true,
	"odd": true, "even": true, "only": true, "target": true, "default": true,
	"indeterminate": true, "invalid": true, "valid": true, "optional": true,
	"read-only": true, "empty": true, "first-of-type": true, "last-of-type": true,
}

var pseudoElements = map[string]bool{
	"before": true, "after": true, "placeholder": true, "selection": true,
	"first-line": true, "first-letter": true, "marker": true, "backdrop": true,
	"file": true,
}

// Parse classifies a single raw segment (as produced by
// classparser.SplitPrefix) into a Variant.
func Parse(segment string) Variant {
	switch {
	case palette.Breakpoints[segment] != "":
		return Variant{Kind: Responsive, Name: segment}
	case strings.HasPrefix(segment, "@"):
		return parseContainer(segment)
	case pseudoClasses[segment]:
		return Variant{Kind: PseudoClass, Name: segment}
	case pseudoElements[segment]:
		return Variant{Kind: PseudoElement, Name: segment}
	case segment == "dark":
		return Variant{Kind: State, Name: "dark"}
	case hasStateFamily(segment, "group-"),
		hasStateFamily(segment, "peer-"),
		hasStateFamily(segment, "aria-"),
		hasStateFamily(segment, "data-"),
		hasStateFamily(segment, "has-"),
		hasStateFamily(segment, "not-"):
		return parseStateFamily(segment)
	default:
		return Variant{Kind: Custom, Name: segment}
	}
}

func hasStateFamily(segment, prefix string) bool {
	return strings.HasPrefix(segment, prefix)
}

func parseStateFamily(segment string) Variant {
	idx := strings.Index(segment, "-")
	prefix := segment[:idx]
	rest := segment[idx+1:]
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		return Variant{Kind: State, Name: prefix, Arbitrary: rest[1 : len(rest)-1]}
	}
	return Variant{Kind: State, Name: prefix + "-" + rest}
}

func parseContainer(segment string) Variant {
	body := strings.TrimPrefix(segment, "@")
	if strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]") {
		return Variant{Kind: ContainerQuery, Arbitrary: body[1 : len(body)-1]}
	}
	return Variant{Kind: ContainerQuery, Name: body}
}

// ParsePrefix classifies a full raw variant prefix (e.g. "md:hover:dark:")
// into its ordered sequence of Variants, re-deriving via
// classparser.SplitPrefix per the spec's "lazy re-parse" design: the raw
// string is the grouping key; this is only invoked when building a
// selector.
func ParsePrefix(rawPrefix string) []Variant {
	segs := classparser.SplitPrefix(rawPrefix)
	out := make([]Variant, 0, len(segs))
	for _, s := range segs {
		out = append(out, Parse(s))
	}
	return out
}

// Fragment is what a Variant contributes to selector/at-rule construction.
type Fragment struct {
	// Suffix is appended directly to the class selector (":hover", "::before").
	Suffix string
	// ParentPredicate, when non-empty, is prepended as an ancestor/sibling
	// selector, e.g. ".dark " or ".peer:checked ~ ".
	ParentPredicate string
	// AtRule, when non-empty, wraps the rule in this at-rule text, e.g.
	// "@media (min-width: 768px)" or "@container (min-width: 448px)".
	AtRule string
	// AutoContent is set when a pseudo-element variant requires an
	// auto-injected `content: ""` declaration unless already present.
	AutoContent bool
}

// Resolve maps a single Variant to its Fragment.
func Resolve(v Variant) (Fragment, error) {
	switch v.Kind {
	case Responsive:
		width, ok := palette.Breakpoints[v.Name]
		if !ok {
			return Fragment{}, fmt.Errorf("unknown breakpoint %q", v.Name)
		}
		return Fragment{AtRule: fmt.Sprintf("@media (min-width: %s)", width)}, nil

	case ContainerQuery:
		if v.Arbitrary != "" {
			return Fragment{AtRule: fmt.Sprintf("@container (min-width: %s)", v.Arbitrary)}, nil
		}
		width, ok := palette.ContainerSizes[v.Name]
		if !ok {
			return Fragment{}, fmt.Errorf("unknown container size %q", v.Name)
		}
		return Fragment{AtRule: fmt.Sprintf("@container (min-width: %s)", width)}, nil

	case PseudoClass:
		return Fragment{Suffix: ":" + v.Name}, nil

	case PseudoElement:
		return Fragment{Suffix: "::" + v.Name, AutoContent: v.Name == "before" || v.Name == "after"}, nil

	case State:
		return resolveState(v)

	case Custom:
		return Fragment{Suffix: ":" + v.Name}, nil
	}
	return Fragment{}, fmt.Errorf("unhandled variant kind %v", v.Kind)
}

func resolveState(v Variant) (Fragment, error) {
	switch v.Name {
	case "dark":
		return Fragment{ParentPredicate: ".dark "}, nil
	case "group":
		return Fragment{ParentPredicate: ".group:hover "}, nil
	case "peer":
		return Fragment{ParentPredicate: ".peer:checked ~ "}, nil
	case "aria":
		return Fragment{Suffix: fmt.Sprintf("[aria-%s]", v.Arbitrary)}, nil
	case "data":
		return Fragment{Suffix: fmt.Sprintf("[data-%s]", v.Arbitrary)}, nil
	case "has":
		return Fragment{Suffix: fmt.Sprintf(":has(%s)", v.Arbitrary)}, nil
	case "not":
		return Fragment{Suffix: fmt.Sprintf(":not(%s)", v.Arbitrary)}, nil
	}
	if strings.HasPrefix(v.Name, "group-") {
		return Fragment{ParentPredicate: fmt.Sprintf(".group:%s ", strings.TrimPrefix(v.Name, "group-"))}, nil
	}
	if strings.HasPrefix(v.Name, "peer-") {
		return Fragment{ParentPredicate: fmt.Sprintf(".peer:%s ~ ", strings.TrimPrefix(v.Name, "peer-"))}, nil
	}
	if strings.HasPrefix(v.Name, "aria-") {
		return Fragment{Suffix: fmt.Sprintf("[aria-%s]", strings.TrimPrefix(v.Name, "aria-"))}, nil
	}
	if strings.HasPrefix(v.Name, "data-") {
		return Fragment{Suffix: fmt.Sprintf("[data-%s]", strings.TrimPrefix(v.Name, "data-"))}, nil
	}
	return Fragment{}, fmt.Errorf("unknown state variant %q", v.Name)
}
