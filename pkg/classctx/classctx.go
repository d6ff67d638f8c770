// classforge/pkg/classctx/classctx.go

// Package classctx implements the Class Context accumulator: it groups a
// generated class's declarations by their raw variant-prefix key, applies
// last-wins conflict resolution, and runs the Shorthand Folder over each
// group before the bundler hands everything to the stylesheet emitter.
package classctx

import (
	"sort"

	"github.com/classforge/classforge/pkg/synth"
)

// VariantGroup accumulates declarations sharing one raw variant-prefix key.
type VariantGroup struct {
	Key          string
	Declarations []synth.Declaration
}

// Context is the per-generated-class accumulator. Groups preserve
// first-seen insertion order for stable emission.
type Context struct {
	order  []string
	groups map[string]*VariantGroup
}

// New creates an empty Context.
func New() *Context {
	return &Context{groups: make(map[string]*VariantGroup)}
}

// Add appends decls to the group keyed by variantKey, creating it on first
// use. Declaration conflict policy (last-wins on repeated property within a
// group) is resolved at fold/emit time, not here — insertion order must
// survive intact so "later wins" remains well-defined.
func (c *Context) Add(variantKey string, decls []synth.Declaration) {
	g, ok := c.groups[variantKey]
	if !ok {
		g = &VariantGroup{Key: variantKey}
		c.groups[variantKey] = g
		c.order = append(c.order, variantKey)
	}
	g.Declarations = append(g.Declarations, decls...)
}

// Groups returns the accumulated groups in first-seen insertion order.
func (c *Context) Groups() []*VariantGroup {
	out := make([]*VariantGroup, len(c.order))
	for i, k := range c.order {
		out[i] = c.groups[k]
	}
	return out
}

// Resolve applies last-wins conflict resolution within g, keeping only the
// final value for each property while preserving the position of its last
// occurrence.
func (g *VariantGroup) Resolve() []synth.Declaration {
	lastIndex := make(map[string]int)
	for i, d := range g.Declarations {
		lastIndex[d.Property] = i
	}
	keep := make(map[int]bool, len(lastIndex))
	for _, i := range lastIndex {
		keep[i] = true
	}
	out := make([]synth.Declaration, 0, len(keep))
	for i, d := range g.Declarations {
		if keep[i] {
			out = append(out, d)
		}
	}
	return out
}

// Fold runs the Shorthand Folder over the resolved declaration list,
// collapsing axis/corner pairs into shorthands when every contributing
// declaration has an identical value and none is later overridden (callers
// pass the already-last-wins-resolved list, so "no later override" holds by
// construction).
func Fold(decls []synth.Declaration) []synth.Declaration {
	// Four-sided collapse is tried first: it is strictly more specific than
	// an axis-pair fold (all four sides equal, not just one axis), so it
	// must get first claim on the longhands before the pair folds below
	// consume half of them.
	decls = foldFour(decls,
		[]string{"padding-top", "padding-right", "padding-bottom", "padding-left"},
		"padding")
	decls = foldFour(decls,
		[]string{"margin-top", "margin-right", "margin-bottom", "margin-left"},
		"margin")
	decls = foldPair(decls, "padding-left", "padding-right", "padding-inline")
	decls = foldPair(decls, "padding-top", "padding-bottom", "padding-block")
	decls = foldPair(decls, "margin-left", "margin-right", "margin-inline")
	decls = foldPair(decls, "margin-top", "margin-bottom", "margin-block")
	decls = foldPair(decls, "border-top-left-radius", "border-top-right-radius", "border-top-radius")
	decls = foldPair(decls, "border-bottom-left-radius", "border-bottom-right-radius", "border-bottom-radius")
	decls = foldPair(decls, "row-gap", "column-gap", "gap")
	return decls
}

// foldPair collapses two same-valued longhands into one shorthand,
// preserving the position of the first of the pair and dropping the
// second.
func foldPair(decls []synth.Declaration, a, b, shorthand string) []synth.Declaration {
	ai, bi := -1, -1
	for i, d := range decls {
		if d.Property == a {
			ai = i
		}
		if d.Property == b {
			bi = i
		}
	}
	if ai == -1 || bi == -1 || decls[ai].Value != decls[bi].Value {
		return decls
	}
	out := make([]synth.Declaration, 0, len(decls)-1)
	for i, d := range decls {
		if i == bi {
			continue
		}
		if i == ai {
			out = append(out, synth.Declaration{Property: shorthand, Value: d.Value})
			continue
		}
		out = append(out, d)
	}
	return out
}

// foldFour collapses a symmetric four-sided set (top/right/bottom/left,
// all equal) into a single shorthand declaration at the position of the
// first side.
func foldFour(decls []synth.Declaration, sides []string, shorthand string) []synth.Declaration {
	idx := make(map[string]int, 4)
	for i, d := range decls {
		for _, s := range sides {
			if d.Property == s {
				idx[s] = i
			}
		}
	}
	if len(idx) != len(sides) {
		return decls
	}
	first := decls[idx[sides[0]]].Value
	for _, s := range sides[1:] {
		if decls[idx[s]].Value != first {
			return decls
		}
	}
	remove := make(map[int]bool, 4)
	for _, i := range idx {
		remove[i] = true
	}
	out := make([]synth.Declaration, 0, len(decls)-3)
	inserted := false
	for i, d := range decls {
		if remove[i] {
			if !inserted {
				out = append(out, synth.Declaration{Property: shorthand, Value: first})
				inserted = true
			}
			continue
		}
		out = append(out, d)
	}
	return out
}

// CanonicalKeys returns group keys ordered per the spec's grouping-order
// rule: the no-prefix group first, then remaining prefixes lexicographically.
func CanonicalKeys(groups []*VariantGroup) []string {
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i] == "" {
			return keys[j] != ""
		}
		if keys[j] == "" {
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}
