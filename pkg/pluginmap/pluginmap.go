// classforge/pkg/pluginmap/pluginmap.go

// Package pluginmap holds the plugin-name → ordered-CSS-properties table and
// the compound-plugin enumeration used by pkg/classparser to find the
// plugin/value boundary. It is static data, not logic: pkg/synth consults
// it to know which properties a plugin writes, and pkg/classparser consults
// Compound to resolve compound names like "grid-cols" before they'd
// otherwise be mis-split as "grid" + value "cols".
package pluginmap

import "github.com/classforge/classforge/pkg/classparser"

func init() {
	classparser.IsCompoundPlugin = IsCompound
}

// compoundPlugins is the set of recognized multi-segment plugin names.
// Per the decision recorded in the project's design ledger for the "unlisted
// compound plugin" ambiguity: any compound not listed here falls through to
// single-segment (first-hyphen) parsing rather than failing.
var compoundPlugins = map[string]bool{
	"justify-items":    true,
	"justify-self":     true,
	"justify-content":  true,
	"align-items":      true,
	"align-self":       true,
	"align-content":    true,
	"gap-x":            true,
	"gap-y":            true,
	"border-t":         true,
	"border-r":         true,
	"border-b":         true,
	"border-l":         true,
	"border-x":         true,
	"border-y":         true,
	"border-s":         true,
	"border-e":         true,
	"rounded-t":        true,
	"rounded-r":        true,
	"rounded-b":        true,
	"rounded-l":        true,
	"rounded-tl":       true,
	"rounded-tr":       true,
	"rounded-bl":       true,
	"rounded-br":       true,
	"translate-x":      true,
	"translate-y":      true,
	"scroll-mt":        true,
	"scroll-mb":        true,
	"scroll-ms":        true,
	"scroll-me":        true,
	"scroll-m":         true,
	"scroll-p":         true,
	"scroll-px":        true,
	"scroll-py":        true,
	"inset-x":          true,
	"inset-y":          true,
	"space-x":          true,
	"space-y":          true,
	"grid-cols":        true,
	"grid-rows":        true,
	"grid-flow":        true,
	"bg-linear":        true,
	"bg-radial":        true,
	"bg-conic":         true,
	"bg-clip":          true,
	"bg-blend":         true,
	"mix-blend":        true,
	"font-weight":      true,
	"line-clamp":       true,
	"list-inside":      true,
	"overflow-x":       true,
	"overflow-y":       true,
	"overscroll-x":     true,
	"overscroll-y":     true,
	"outline-offset":   true,
	"divide-x":         true,
	"divide-y":         true,
	"inset-shadow":     true,
	"inset-ring":       true,
	"decoration-clone": true,
}

// IsCompound reports whether name is a known compound plugin.
func IsCompound(name string) bool {
	return compoundPlugins[name]
}

// colorProperties is the canonical list of plugins that resolve a palette
// color entry rather than a spacing/size/typography value.
var colorProperties = map[string][]string{
	"bg":           {"background-color"},
	"text":         {"color"},
	"border":       {"border-color"},
	"border-t":     {"border-top-color"},
	"border-r":     {"border-right-color"},
	"border-b":     {"border-bottom-color"},
	"border-l":     {"border-left-color"},
	"border-x":     {"border-left-color", "border-right-color"},
	"border-y":     {"border-top-color", "border-bottom-color"},
	"fill":         {"fill"},
	"stroke":       {"stroke"},
	"accent":       {"accent-color"},
	"caret":        {"caret-color"},
	"outline":      {"outline-color"},
	"decoration":   {"text-decoration-color"},
	"ring":         {"--tw-ring-color"},
	"shadow":       {"--tw-shadow-color"},
	"inset-shadow": {"--tw-inset-shadow-color"},
	"inset-ring":   {"--tw-inset-ring-color"},
	"divide":       {"border-color"},
}

// Colors returns the CSS properties a color plugin writes, when plugin is a
// recognized color plugin.
func Colors(plugin string) ([]string, bool) {
	p, ok := colorProperties[plugin]
	return p, ok
}

// spacingProperties covers single- and axis-pair spacing plugins.
var spacingProperties = map[string][]string{
	"p":   {"padding"},
	"px":  {"padding-left", "padding-right"},
	"py":  {"padding-top", "padding-bottom"},
	"pt":  {"padding-top"},
	"pr":  {"padding-right"},
	"pb":  {"padding-bottom"},
	"pl":  {"padding-left"},
	"ps":  {"padding-inline-start"},
	"pe":  {"padding-inline-end"},
	"m":   {"margin"},
	"mx":  {"margin-left", "margin-right"},
	"my":  {"margin-top", "margin-bottom"},
	"mt":  {"margin-top"},
	"mr":  {"margin-right"},
	"mb":  {"margin-bottom"},
	"ml":  {"margin-left"},
	"ms":  {"margin-inline-start"},
	"me":  {"margin-inline-end"},
	"gap": {"gap"},

	"gap-x": {"column-gap"},
	"gap-y": {"row-gap"},

	"space-x": {"--tw-space-x"},
	"space-y": {"--tw-space-y"},

	"inset":    {"top", "right", "bottom", "left"},
	"inset-x":  {"left", "right"},
	"inset-y":  {"top", "bottom"},
	"top":      {"top"},
	"right":    {"right"},
	"bottom":   {"bottom"},
	"left":     {"left"},

	"scroll-m":  {"scroll-margin"},
	"scroll-mt": {"scroll-margin-top"},
	"scroll-mb": {"scroll-margin-bottom"},
	"scroll-ms": {"scroll-margin-left"},
	"scroll-me": {"scroll-margin-right"},
	"scroll-p":  {"scroll-padding"},
	"scroll-px": {"scroll-padding-left", "scroll-padding-right"},
	"scroll-py": {"scroll-padding-top", "scroll-padding-bottom"},
}

// Spacing returns the CSS properties a spacing plugin writes.
func Spacing(plugin string) ([]string, bool) {
	p, ok := spacingProperties[plugin]
	return p, ok
}

// sizeProperties covers w/h/min/max plugins.
var sizeProperties = map[string][]string{
	"w":     {"width"},
	"h":     {"height"},
	"min-w": {"min-width"},
	"min-h": {"min-height"},
	"max-w": {"max-width"},
	"max-h": {"max-height"},
	"size":  {"width", "height"},
}

// Size returns the CSS properties a size plugin writes.
func Size(plugin string) ([]string, bool) {
	p, ok := sizeProperties[plugin]
	return p, ok
}

// structuralProperties covers plugins whose value is consumed almost
// entirely through arbitrary/CSS-variable forms (grid templates, z-index,
// order...) with only a thin standard-value mapping, if any.
var structuralProperties = map[string][]string{
	"grid-cols": {"grid-template-columns"},
	"grid-rows": {"grid-template-rows"},
	"z":         {"z-index"},
	"order":     {"order"},
	"col":       {"grid-column"},
	"row":       {"grid-row"},
}

// Structural returns the CSS properties a structural plugin writes.
func Structural(plugin string) ([]string, bool) {
	p, ok := structuralProperties[plugin]
	return p, ok
}

// valuelessDeclarations covers static utilities with a fixed property/value
// pair and no value token at all ("flex" -> display: flex).
var valuelessDeclarations = map[string][2]string{
	"flex":         {"display", "flex"},
	"grid":         {"display", "grid"},
	"block":        {"display", "block"},
	"inline-block": {"display", "inline-block"},
	"inline":       {"display", "inline"},
	"hidden":       {"display", "none"},
	"table":        {"display", "table"},
	"contents":     {"display", "contents"},

	"static":   {"position", "static"},
	"fixed":    {"position", "fixed"},
	"absolute": {"position", "absolute"},
	"relative": {"position", "relative"},
	"sticky":   {"position", "sticky"},

	"overflow-hidden":  {"overflow", "hidden"},
	"overflow-auto":    {"overflow", "auto"},
	"overflow-visible": {"overflow", "visible"},
	"overflow-scroll":  {"overflow", "scroll"},

	"italic":     {"font-style", "italic"},
	"not-italic": {"font-style", "normal"},

	"underline":     {"text-decoration-line", "underline"},
	"line-through":  {"text-decoration-line", "line-through"},
	"no-underline":  {"text-decoration-line", "none"},

	"truncate": {"text-overflow", "ellipsis"},

	"border-solid":  {"border-style", "solid"},
	"border-dashed":  {"border-style", "dashed"},
	"border-dotted":  {"border-style", "dotted"},
	"border-none":    {"border-style", "none"},

	"cursor-pointer":     {"cursor", "pointer"},
	"cursor-default":     {"cursor", "default"},
	"cursor-not-allowed": {"cursor", "not-allowed"},

	"select-none": {"user-select", "none"},
	"select-all":  {"user-select", "all"},
	"select-text": {"user-select", "text"},

	"justify-start":   {"justify-content", "flex-start"},
	"justify-end":     {"justify-content", "flex-end"},
	"justify-center":  {"justify-content", "center"},
	"justify-between": {"justify-content", "space-between"},
	"justify-around":  {"justify-content", "space-around"},
	"justify-evenly":  {"justify-content", "space-evenly"},

	"items-start":    {"align-items", "flex-start"},
	"items-end":      {"align-items", "flex-end"},
	"items-center":   {"align-items", "center"},
	"items-baseline": {"align-items", "baseline"},
	"items-stretch":  {"align-items", "stretch"},

	"flex-row":          {"flex-direction", "row"},
	"flex-row-reverse":   {"flex-direction", "row-reverse"},
	"flex-col":           {"flex-direction", "column"},
	"flex-col-reverse":   {"flex-direction", "column-reverse"},
	"flex-wrap":          {"flex-wrap", "wrap"},
	"flex-nowrap":        {"flex-wrap", "nowrap"},

	"rounded-full": {"border-radius", "9999px"},
}

// Valueless returns the single fixed declaration a valueless plugin emits.
func Valueless(plugin string) (property, value string, ok bool) {
	d, ok := valuelessDeclarations[plugin]
	if !ok {
		return "", "", false
	}
	return d[0], d[1], true
}

// GradientWrap reports the CSS function name a gradient plugin's arbitrary
// value should be wrapped in when the content doesn't already start with a
// wrapping function call.
var gradientWrap = map[string]string{
	"bg-linear": "linear-gradient",
	"bg-radial": "radial-gradient",
	"bg-conic":  "conic-gradient",
}

// GradientWrap returns the wrapping function for a gradient plugin.
func GradientWrap(plugin string) (string, bool) {
	f, ok := gradientWrap[plugin]
	return f, ok
}

// gradientProperties covers the three bg-linear/bg-radial/bg-conic plugins,
// all of which write background-image whether reached through the
// arbitrary, CSS-variable, or standard-value form.
var gradientProperties = map[string][]string{
	"bg-linear": {"background-image"},
	"bg-radial": {"background-image"},
	"bg-conic":  {"background-image"},
}

// Gradient returns the CSS properties a gradient plugin writes.
func Gradient(plugin string) ([]string, bool) {
	p, ok := gradientProperties[plugin]
	return p, ok
}

// TypographyPlugins maps typography plugins to their property, for plugins
// with a single resolved property (family, weight, tracking...). Font size
// ("text") is handled specially since it emits a (font-size, line-height)
// pair; "text" itself is listed under colorProperties for its color form,
// and "text-<size>" vs "text-<color>" is disambiguated by pkg/synth, which
// consults the font-size table before the color table.
var typographyPlugins = map[string][]string{
	"font":     {"font-family"},
	"font-weight": {"font-weight"},
	"leading":  {"line-height"},
	"tracking": {"letter-spacing"},
}

// Typography returns the CSS properties a typography plugin writes.
func Typography(plugin string) ([]string, bool) {
	p, ok := typographyPlugins[plugin]
	return p, ok
}

// presetFamilies lists the plugins whose value resolves through a named
// preset table (radius, shadow, blur) rather than a numeric scale.
var presetFamilies = map[string]string{
	"rounded": "radius",
	"shadow":  "shadow",
	"blur":    "blur",
}

// PresetFamily returns which preset table (radius/shadow/blur) a plugin
// resolves its value through.
func PresetFamily(plugin string) (string, bool) {
	f, ok := presetFamilies[plugin]
	return f, ok
}
