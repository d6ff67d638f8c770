// classforge/pkg/synth/declaration.go

// Package synth is the Declaration Synthesizer: it turns one ParsedClass
// into an ordered list of Declarations, consulting pkg/pluginmap for which
// properties a plugin writes and pkg/palette (optionally shadowed by an
// overlay) for concrete values. This is the only layer that knows how to
// turn a plugin+value pair into CSS text.
package synth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/classforge/classforge/pkg/classparser"
	"github.com/classforge/classforge/pkg/colors"
	"github.com/classforge/classforge/pkg/palette"
	"github.com/classforge/classforge/pkg/pluginmap"
)

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// ColorMode selects how color plugins render their value.
type ColorMode string

const (
	ColorHex   ColorMode = "hex"
	ColorOklch ColorMode = "oklch"
	ColorHSL   ColorMode = "hsl"
	ColorVar   ColorMode = "var"
)

func (m ColorMode) renderMode() colors.RenderMode {
	switch m {
	case ColorOklch:
		return colors.RenderOKLCH
	case ColorHSL:
		return colors.RenderHSL
	case ColorVar:
		return colors.RenderVar
	default:
		return colors.RenderHex
	}
}

// Options configures value rendering; it is the subset of bundle.Options
// the synthesizer needs, passed down rather than imported, to keep this
// package free of a dependency on pkg/bundle.
type Options struct {
	ColorMode ColorMode
	ColorMix  bool
	// Overlay, when non-nil, is consulted before the static palette for
	// color/spacing/size lookups — the configuration-layer escape hatch
	// the design notes call for, without making the core impure.
	Overlay Overlay
}

// Overlay lets a caller shadow individual theme-table entries (e.g. from a
// pkg/tokens dictionary) without mutating the static tables.
type Overlay interface {
	Color(name string) (colors.Color, bool)
	Spacing(token string) (string, bool)
}

// ErrUnknownValue is returned when the plugin is recognized but the value
// token has no mapping and isn't arbitrary.
type ErrUnknownValue struct {
	Plugin, Value string
}

func (e *ErrUnknownValue) Error() string {
	return fmt.Sprintf("unknown-value: plugin %q has no mapping for value %q", e.Plugin, e.Value)
}

// ErrUnknownPlugin is returned when the plugin name has no mapping anywhere
// and the value isn't arbitrary/variable either.
type ErrUnknownPlugin struct {
	Plugin string
}

func (e *ErrUnknownPlugin) Error() string {
	return fmt.Sprintf("unknown-plugin: %q", e.Plugin)
}

// Synthesize turns pc into its ordered Declarations.
func Synthesize(pc classparser.ParsedClass, opts Options) ([]Declaration, error) {
	var decls []Declaration
	var err error

	switch pc.ValueKind {
	case classparser.Arbitrary:
		decls, err = synthArbitrary(pc)
	case classparser.CssVariable:
		decls, err = synthCssVariable(pc)
	default:
		decls, err = synthStandard(pc, opts)
	}
	if err != nil {
		return nil, err
	}

	if pc.Important {
		for i := range decls {
			decls[i].Value += " !important"
		}
	}
	return decls, nil
}

func synthArbitrary(pc classparser.ParsedClass) ([]Declaration, error) {
	props, ok := pluginPropertiesAny(pc.Plugin)
	if !ok {
		return nil, &ErrUnknownPlugin{Plugin: pc.Plugin}
	}

	value := pc.Value
	if pc.Negated {
		value = "-" + value
	}
	if wrap, ok := pluginmap.GradientWrap(pc.Plugin); ok && !looksWrapped(value) {
		value = wrap + "(" + value + ")"
	}

	decls := make([]Declaration, len(props))
	for i, p := range props {
		decls[i] = Declaration{Property: p, Value: value}
	}
	return decls, nil
}

func synthCssVariable(pc classparser.ParsedClass) ([]Declaration, error) {
	props, ok := pluginPropertiesAny(pc.Plugin)
	if !ok {
		return nil, &ErrUnknownPlugin{Plugin: pc.Plugin}
	}
	if pc.Hint != "" {
		props = propertiesForHint(pc.Plugin, pc.Hint, props)
	}
	value := "var(" + pc.Value + ")"
	decls := make([]Declaration, len(props))
	for i, p := range props {
		decls[i] = Declaration{Property: p, Value: value}
	}
	return decls, nil
}

// propertiesForHint narrows a polymorphic plugin's property list when a
// type hint steers it, e.g. "length:" forces the length-typed property
// variant for a plugin that otherwise writes both a length and a color
// property (rare; most plugins have a single property list already).
func propertiesForHint(plugin, hint string, fallback []string) []string {
	switch hint {
	case "color":
		if props, ok := pluginmap.Colors(plugin); ok {
			return props
		}
	case "length":
		if props, ok := pluginmap.Spacing(plugin); ok {
			return props
		}
		if props, ok := pluginmap.Size(plugin); ok {
			return props
		}
	}
	return fallback
}

func pluginPropertiesAny(plugin string) ([]string, bool) {
	if props, ok := pluginmap.Colors(plugin); ok {
		return props, true
	}
	if props, ok := pluginmap.Spacing(plugin); ok {
		return props, true
	}
	if props, ok := pluginmap.Size(plugin); ok {
		return props, true
	}
	if props, ok := pluginmap.Typography(plugin); ok {
		return props, true
	}
	if props, ok := pluginmap.Structural(plugin); ok {
		return props, true
	}
	if props, ok := pluginmap.Gradient(plugin); ok {
		return props, true
	}
	return nil, false
}

func looksWrapped(value string) bool {
	for _, fn := range []string{"linear-gradient(", "radial-gradient(", "conic-gradient(", "var(", "calc("} {
		if strings.HasPrefix(value, fn) {
			return true
		}
	}
	return false
}

func synthStandard(pc classparser.ParsedClass, opts Options) ([]Declaration, error) {
	if pc.Plugin == "text" {
		if _, ok := palette.TextSizes[pc.Value]; ok {
			return synthFontSize(pc)
		}
	}
	if props, ok := pluginmap.Colors(pc.Plugin); ok {
		return synthColor(pc, props, opts)
	}
	if props, ok := pluginmap.Spacing(pc.Plugin); ok {
		return synthSpacing(pc, props, opts)
	}
	if props, ok := pluginmap.Size(pc.Plugin); ok {
		return synthSize(pc, props, opts)
	}
	if family, ok := pluginmap.PresetFamily(pc.Plugin); ok {
		return synthPreset(pc, family)
	}
	if pc.Plugin == "opacity" {
		return synthOpacity(pc)
	}
	if props, ok := pluginmap.Typography(pc.Plugin); ok {
		return synthTypography(pc, props)
	}
	if props, ok := pluginmap.Structural(pc.Plugin); ok {
		return synthStructural(pc, props)
	}
	if props, ok := pluginmap.Gradient(pc.Plugin); ok {
		return synthGradient(pc, props)
	}
	if property, value, ok := pluginmap.Valueless(pc.Plugin); ok {
		return []Declaration{{Property: property, Value: value}}, nil
	}
	return nil, &ErrUnknownPlugin{Plugin: pc.Plugin}
}

// gradientDirections maps the eight corner/side keywords to the CSS
// <side-or-corner> syntax linear-gradient() expects.
var gradientDirections = map[string]string{
	"to-t":  "to top",
	"to-tr": "to top right",
	"to-r":  "to right",
	"to-br": "to bottom right",
	"to-b":  "to bottom",
	"to-bl": "to bottom left",
	"to-l":  "to left",
	"to-tl": "to top left",
}

// synthGradient resolves the standard-value form of the gradient plugins.
// Only bg-linear has one per spec: a direction keyword (to-r, to-br, ...) or
// a bare degree number (bg-linear-45 -> linear-gradient(45deg, ...)). The
// gradient's color stops come from the separate from-*/via-*/to-* color
// utilities via the shared --tw-gradient-stops custom property, the same
// indirection Tailwind itself uses to let those utilities compose freely.
func synthGradient(pc classparser.ParsedClass, props []string) ([]Declaration, error) {
	if pc.Plugin != "bg-linear" {
		return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
	}

	var angle string
	if dir, ok := gradientDirections[pc.Value]; ok {
		angle = dir
	} else if deg, err := strconv.ParseFloat(pc.Value, 64); err == nil {
		angle = trimFloat(deg) + "deg"
	} else {
		return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
	}

	value := fmt.Sprintf("linear-gradient(%s, var(--tw-gradient-stops))", angle)
	decls := make([]Declaration, len(props))
	for i, p := range props {
		decls[i] = Declaration{Property: p, Value: value}
	}
	return decls, nil
}

// RootVariableValue resolves the concrete fallback value for a custom
// property name as referenced via var(--name) in emitted CSS (e.g.
// "color-blue-500"), consulting the overlay before the static palette. The
// bundler calls this once per distinct reference it finds in the built
// sheet to populate the :root preamble under css_variables=var.
func RootVariableValue(varName string, opts Options) (string, bool) {
	key := strings.TrimPrefix(varName, "color-")
	if opts.Overlay != nil {
		if c, ok := opts.Overlay.Color(key); ok {
			return c.Hex(), true
		}
	}
	if sw, ok := palette.Colors[key]; ok {
		return sw.Hex, true
	}
	return "", false
}

func synthColor(pc classparser.ParsedClass, props []string, opts Options) ([]Declaration, error) {
	var c colors.Color
	var varName string
	if opts.Overlay != nil {
		if oc, ok := opts.Overlay.Color(pc.Value); ok {
			c = oc
			varName = "color-" + pc.Value
		}
	}
	if varName == "" {
		sw, ok := palette.Colors[pc.Value]
		if !ok {
			return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
		}
		c = sw.Color
		varName = sw.VarName
	}

	alphaPct := 100.0
	if pc.Alpha != "" {
		v, err := strconv.ParseFloat(pc.Alpha, 64)
		if err == nil {
			alphaPct = v
		}
	}

	mode := opts.ColorMode.renderMode()
	varRef := fmt.Sprintf("var(--%s)", varName)
	value := c.RenderWithAlpha(mode, alphaPct, opts.ColorMix, varRef)

	decls := make([]Declaration, len(props))
	for i, p := range props {
		decls[i] = Declaration{Property: p, Value: value}
	}
	return decls, nil
}

func synthSpacing(pc classparser.ParsedClass, props []string, opts Options) ([]Declaration, error) {
	length, ok := resolveSpacing(pc.Value, opts)
	if !ok {
		return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
	}
	if pc.Negated {
		length = "-" + length
	}
	decls := make([]Declaration, len(props))
	for i, p := range props {
		decls[i] = Declaration{Property: p, Value: length}
	}
	return decls, nil
}

func resolveSpacing(token string, opts Options) (string, bool) {
	if opts.Overlay != nil {
		if v, ok := opts.Overlay.Spacing(token); ok {
			return v, true
		}
	}
	if v, ok := palette.Spacing[token]; ok {
		return v, true
	}
	if v, ok := palette.Fractions[token]; ok {
		return v, true
	}
	return "", false
}

func synthSize(pc classparser.ParsedClass, props []string, opts Options) ([]Declaration, error) {
	if pc.Value == "screen" {
		decls := make([]Declaration, len(props))
		for i, p := range props {
			if p == "width" || p == "min-width" || p == "max-width" {
				decls[i] = Declaration{Property: p, Value: "100vw"}
			} else {
				decls[i] = Declaration{Property: p, Value: "100vh"}
			}
		}
		return decls, nil
	}
	if kw, ok := palette.SizeKeyword(pc.Value); ok {
		decls := make([]Declaration, len(props))
		for i, p := range props {
			decls[i] = Declaration{Property: p, Value: kw}
		}
		return decls, nil
	}
	length, ok := resolveSpacing(pc.Value, opts)
	if !ok {
		return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
	}
	decls := make([]Declaration, len(props))
	for i, p := range props {
		decls[i] = Declaration{Property: p, Value: length}
	}
	return decls, nil
}

func synthFontSize(pc classparser.ParsedClass) ([]Declaration, error) {
	pair, ok := palette.TextSizes[pc.Value]
	if !ok {
		return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
	}
	return []Declaration{
		{Property: "font-size", Value: pair[0]},
		{Property: "line-height", Value: pair[1]},
	}, nil
}

func synthOpacity(pc classparser.ParsedClass) ([]Declaration, error) {
	n, err := strconv.ParseFloat(pc.Value, 64)
	if err != nil {
		return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
	}
	return []Declaration{{Property: "opacity", Value: trimFloat(n / 100)}}, nil
}

func synthTypography(pc classparser.ParsedClass, props []string) ([]Declaration, error) {
	var value string
	switch pc.Plugin {
	case "font-weight":
		v, ok := palette.FontWeights[pc.Value]
		if !ok {
			return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
		}
		value = v
	case "tracking":
		v, ok := palette.Tracking[pc.Value]
		if !ok {
			return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
		}
		value = v
	default:
		value = pc.Value
	}
	decls := make([]Declaration, len(props))
	for i, p := range props {
		decls[i] = Declaration{Property: p, Value: value}
	}
	return decls, nil
}

// synthStructural resolves plugins whose standard-value form is the token
// text itself (z-index/order/grid-line numbers), with negation applied.
func synthStructural(pc classparser.ParsedClass, props []string) ([]Declaration, error) {
	if pc.Value == "" {
		return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
	}
	value := pc.Value
	if pc.Negated {
		value = "-" + value
	}
	decls := make([]Declaration, len(props))
	for i, p := range props {
		decls[i] = Declaration{Property: p, Value: value}
	}
	return decls, nil
}

func synthPreset(pc classparser.ParsedClass, family string) ([]Declaration, error) {
	switch family {
	case "radius":
		v, ok := palette.Radii[pc.Value]
		if !ok {
			return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
		}
		return []Declaration{{Property: "border-radius", Value: v}}, nil
	case "shadow":
		v, ok := palette.Shadows[pc.Value]
		if !ok {
			return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
		}
		return []Declaration{{Property: "box-shadow", Value: v}}, nil
	case "blur":
		v, ok := palette.Blurs[pc.Value]
		if !ok {
			return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
		}
		return []Declaration{{Property: "filter", Value: fmt.Sprintf("blur(%s)", v)}}, nil
	}
	return nil, &ErrUnknownValue{Plugin: pc.Plugin, Value: pc.Value}
}

func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return s
}
