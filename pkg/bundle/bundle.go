// classforge/pkg/bundle/bundle.go

// Package bundle is the compiler's single external entry point: Bundle
// tokenizes a class string, runs each token through the parser, synthesizer
// and variant resolver, groups and folds declarations per variant prefix,
// assigns an identifier, and emits a stylesheet. It is pure and
// reentrant-safe — the only state is the Context built and discarded within
// one call.
package bundle

import (
	"regexp"
	"sort"
	"strings"

	"github.com/classforge/classforge/pkg/classctx"
	"github.com/classforge/classforge/pkg/classparser"
	"github.com/classforge/classforge/pkg/naming"
	"github.com/classforge/classforge/pkg/stylesheet"
	"github.com/classforge/classforge/pkg/synth"
	"github.com/classforge/classforge/pkg/variant"
)

// OutputMode mirrors the downstream access-syntax choice; the core emits
// identical CSS regardless, so this only annotates the result for adapters.
type OutputMode string

const (
	OutputGlobal     OutputMode = "global"
	OutputCSSModules OutputMode = "css-modules"
)

// UnknownClassPolicy controls how malformed/unknown tokens affect the
// generated identifier.
type UnknownClassPolicy string

const (
	UnknownRemove   UnknownClassPolicy = "remove"
	UnknownPreserve UnknownClassPolicy = "preserve"
)

// Options is the bundler's external configuration surface.
type Options struct {
	NamingMode     naming.Mode
	OutputMode     OutputMode
	CSSVariables   string // "var" or "inline"
	UnknownClasses UnknownClassPolicy
	ColorMode      synth.ColorMode
	ColorMix       bool
	Overlay        synth.Overlay
}

// DefaultOptions returns the spec's documented defaults.
func DefaultOptions() Options {
	return Options{
		NamingMode:     naming.Hash,
		OutputMode:     OutputGlobal,
		CSSVariables:   "inline",
		UnknownClasses: UnknownRemove,
		ColorMode:      synth.ColorHex,
		ColorMix:       false,
	}
}

// DiagnosticLevel is a two-level severity, grounded on the same
// warning/error split used for compiler diagnostics throughout the
// ecosystem.
type DiagnosticLevel string

const (
	LevelWarning DiagnosticLevel = "warning"
	LevelError   DiagnosticLevel = "error"
)

// Diagnostic is one non-fatal problem surfaced back to the caller.
type Diagnostic struct {
	Level   DiagnosticLevel
	Message string
	Token   string
}

// Result is the bundler's output.
type Result struct {
	Identifier            string
	CSS                    string
	DeclarationsByVariant  map[string][]synth.Declaration
	Diagnostics            []Diagnostic
}

// Bundle compiles a whitespace-separated class string into a Result.
func Bundle(inputClasses string, opts Options) Result {
	tokens := strings.Fields(inputClasses)

	type accepted struct {
		token string
		group string // raw variant prefix
		pc    classparser.ParsedClass
	}

	var ok []accepted
	// unknownKept holds tokens that failed to parse or synthesize but are
	// fed back into the identifier under UnknownPreserve; they carry no
	// variant semantics of their own, so they're grouped under the
	// no-prefix key alongside any other bare tokens.
	var unknownKept []string
	var diags []Diagnostic

	for _, tok := range tokens {
		pc, err := classparser.Parse(tok)
		if err != nil {
			diags = append(diags, Diagnostic{Level: LevelError, Message: err.Error(), Token: tok})
			if opts.UnknownClasses == UnknownPreserve {
				unknownKept = append(unknownKept, tok)
			}
			continue
		}
		ok = append(ok, accepted{token: tok, group: pc.RawVariantPrefix, pc: pc})
	}

	ctx := classctx.New()
	groupTokens := make(map[string][]string)

	for _, a := range ok {
		decls, err := synth.Synthesize(a.pc, synth.Options{
			ColorMode: opts.ColorMode,
			ColorMix:  opts.ColorMix,
			Overlay:   opts.Overlay,
		})
		if err != nil {
			diags = append(diags, Diagnostic{Level: LevelWarning, Message: err.Error(), Token: a.token})
			if opts.UnknownClasses == UnknownPreserve {
				unknownKept = append(unknownKept, a.token)
			}
			continue
		}
		ctx.Add(a.group, decls)
		groupTokens[a.group] = append(groupTokens[a.group], a.token)
	}

	if opts.UnknownClasses == UnknownPreserve && len(unknownKept) > 0 {
		groupTokens[""] = append(groupTokens[""], unknownKept...)
	}

	normalized := naming.Normalize(groupTokens)
	identifier := naming.Identifier(normalized, opts.NamingMode)

	sheet, declByVariant := buildSheet(ctx, identifier)

	if opts.CSSVariables == "var" {
		synthOpts := synth.Options{ColorMode: opts.ColorMode, ColorMix: opts.ColorMix, Overlay: opts.Overlay}
		for _, varName := range referencedVars(sheet) {
			if value, ok := synth.RootVariableValue(varName, synthOpts); ok {
				sheet.RootVariables = append(sheet.RootVariables, stylesheet.Declaration{
					Property: "--" + varName,
					Value:    value,
				})
			}
		}
	}

	css := stylesheet.Emit(sheet)

	return Result{
		Identifier:            identifier,
		CSS:                   css,
		DeclarationsByVariant: declByVariant,
		Diagnostics:           diags,
	}
}

// varRefPattern matches a var(--name) reference as emitted by pkg/synth.
var varRefPattern = regexp.MustCompile(`var\(--([a-zA-Z0-9-]+)\)`)

// referencedVars returns, in sorted order, every distinct custom-property
// name referenced via var(--name) anywhere in the built sheet. This is the
// single pass over already-synthesized declarations that spec section 4.9
// calls for: the :root preamble is built from exactly this set, never the
// full theme table.
func referencedVars(sheet stylesheet.Sheet) []string {
	seen := make(map[string]bool)
	var names []string
	collect := func(decls []stylesheet.Declaration) {
		for _, d := range decls {
			for _, m := range varRefPattern.FindAllStringSubmatch(d.Value, -1) {
				name := m[1]
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
	}
	for _, e := range sheet.Entries {
		switch {
		case e.Rule != nil:
			collect(e.Rule.Declarations)
		case e.Media != nil:
			collectMedia(e.Media, collect)
		}
	}
	sort.Strings(names)
	return names
}

func collectMedia(m *stylesheet.MediaBlock, collect func([]stylesheet.Declaration)) {
	if m.Nested != nil {
		collectMedia(m.Nested, collect)
		return
	}
	for _, r := range m.Rules {
		collect(r.Declarations)
	}
}

// groupOrderClass buckets a group by the spec's emission order:
// {no-prefix, pseudo, attribute/state, media/container}.
func groupOrderClass(vs []variant.Variant) int {
	hasMedia := false
	hasState := false
	hasPseudo := false
	for _, v := range vs {
		switch v.Kind {
		case variant.Responsive, variant.ContainerQuery:
			hasMedia = true
		case variant.State:
			hasState = true
		case variant.PseudoClass, variant.PseudoElement, variant.Custom:
			hasPseudo = true
		}
	}
	switch {
	case len(vs) == 0:
		return 0
	case hasMedia:
		return 3
	case hasState:
		return 2
	case hasPseudo:
		return 1
	default:
		return 1
	}
}

func buildSheet(ctx *classctx.Context, identifier string) (stylesheet.Sheet, map[string][]synth.Declaration) {
	groups := ctx.Groups()

	type built struct {
		order    int
		key      string
		selector string
		// atRules holds every at-rule fragment contributed by the variant
		// sequence, outer to inner; more than one nests rather than
		// flattens (a breakpoint plus a container query, say).
		atRules []string
		decls   []stylesheet.Declaration
	}

	var items []built
	declByVariant := make(map[string][]synth.Declaration)

	for _, g := range groups {
		resolved := g.Resolve()
		folded := classctx.Fold(resolved)
		declByVariant[g.Key] = folded

		vs := variant.ParsePrefix(g.Key)
		selector := "." + identifier
		var atRules []string
		var parentPredicate strings.Builder
		var suffixes strings.Builder
		autoContent := false

		for _, v := range vs {
			frag, err := variant.Resolve(v)
			if err != nil {
				continue
			}
			if frag.ParentPredicate != "" {
				parentPredicate.WriteString(frag.ParentPredicate)
			}
			if frag.Suffix != "" {
				suffixes.WriteString(frag.Suffix)
			}
			if frag.AtRule != "" {
				atRules = append(atRules, frag.AtRule)
			}
			if frag.AutoContent {
				autoContent = true
			}
		}

		fullSelector := parentPredicate.String() + selector + suffixes.String()

		cssDecls := make([]stylesheet.Declaration, 0, len(folded)+1)
		if autoContent && !hasContent(folded) {
			cssDecls = append(cssDecls, stylesheet.Declaration{Property: "content", Value: `""`})
		}
		for _, d := range folded {
			cssDecls = append(cssDecls, stylesheet.Declaration{Property: d.Property, Value: d.Value})
		}

		items = append(items, built{
			order:    groupOrderClass(vs),
			key:      g.Key,
			selector: fullSelector,
			atRules:  atRules,
			decls:    cssDecls,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].order < items[j].order
	})

	var entries []stylesheet.Entry
	for _, it := range items {
		r := stylesheet.Rule{Selector: it.selector, Declarations: it.decls}
		if len(it.atRules) > 0 {
			entries = append(entries, stylesheet.Entry{Media: nestAtRules(it.atRules, r)})
		} else {
			entries = append(entries, stylesheet.Entry{Rule: &r})
		}
	}

	return stylesheet.Sheet{Entries: entries}, declByVariant
}

// nestAtRules wraps r in a chain of at-rule blocks, outermost first, so a
// variant sequence combining e.g. a breakpoint and a container query nests
// rather than drops all but the first at-rule.
func nestAtRules(atRules []string, r stylesheet.Rule) *stylesheet.MediaBlock {
	block := &stylesheet.MediaBlock{AtRule: atRules[len(atRules)-1], Rules: []stylesheet.Rule{r}}
	for i := len(atRules) - 2; i >= 0; i-- {
		block = &stylesheet.MediaBlock{AtRule: atRules[i], Nested: block}
	}
	return block
}

func hasContent(decls []synth.Declaration) bool {
	for _, d := range decls {
		if d.Property == "content" {
			return true
		}
	}
	return false
}
