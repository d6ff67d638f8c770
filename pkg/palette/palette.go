// classforge/pkg/palette/palette.go

// Package palette holds the static theme tables: color ramps, spacing
// scale, fractions, named sizes, and breakpoint widths. Every table here is
// an immutable constant built once at package init — no table is loaded
// from disk or mutated at runtime. An overlay (see pkg/tokens) may shadow
// individual entries but never replaces these tables in place.
package palette

import (
	"fmt"

	"github.com/classforge/classforge/pkg/colors"
)

// Swatch is one color-ramp entry: its hex source, custom-property name and
// parsed color, from which Render and RenderAlpha produce each encoding.
type Swatch struct {
	Name string
	Hex  string
	// VarName is the custom-property name without the leading "--".
	VarName string
	Color   colors.Color
}

// Colors maps a palette name (e.g. "blue-500") to its Swatch.
var Colors = buildColors()

// Render returns the color in the requested mode without alpha decoration.
func (s Swatch) Render(mode colors.RenderMode) string {
	if mode == colors.RenderVar {
		return fmt.Sprintf("var(--%s)", s.VarName)
	}
	return s.Color.RenderWithAlpha(mode, 100, false, "")
}

// RenderAlpha returns the color in the requested mode with alphaPercent
// (0-100) applied, honoring colorMix per the bundler's color_mix option.
func (s Swatch) RenderAlpha(mode colors.RenderMode, alphaPercent float64, colorMix bool) string {
	varRef := fmt.Sprintf("var(--%s)", s.VarName)
	return s.Color.RenderWithAlpha(mode, alphaPercent, colorMix, varRef)
}

type ramp struct {
	name string
	hex  map[string]string
}

// rampSteps is the standard 11-step scale shared by every hue family, plus
// the bare black/white/transparent entries handled separately.
var rampSteps = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

func buildColors() map[string]Swatch {
	out := make(map[string]Swatch)

	for _, r := range hueRamps {
		for step, hex := range r.hex {
			name := r.name + "-" + step
			out[name] = newSwatch(name, hex)
		}
	}

	for name, hex := range namedStatics {
		out[name] = newSwatch(name, hex)
	}

	return out
}

func newSwatch(name, hex string) Swatch {
	c, err := colors.Parse(hex)
	if err != nil {
		panic(fmt.Sprintf("palette: invalid static color %q=%q: %v", name, hex, err))
	}
	return Swatch{
		Name:    name,
		Hex:     hex,
		VarName: "color-" + name,
		Color:   c,
	}
}

// namedStatics are the palette entries with no step suffix.
var namedStatics = map[string]string{
	"black":       "#000000",
	"white":       "#ffffff",
	"transparent": "#00000000",
}

// hueRamps is a representative subset of the standard color scale: enough
// hue families, at the standard 11 steps, to exercise every color branch of
// the synthesizer and every encoding in pkg/colors. An overlay can add
// further families without touching this table.
var hueRamps = []ramp{
	{"slate", map[string]string{
		"50": "#f8fafc", "100": "#f1f5f9", "200": "#e2e8f0", "300": "#cbd5e1",
		"400": "#94a3b8", "500": "#64748b", "600": "#475569", "700": "#334155",
		"800": "#1e293b", "900": "#0f172a", "950": "#020617",
	}},
	{"gray", map[string]string{
		"50": "#f9fafb", "100": "#f3f4f6", "200": "#e5e7eb", "300": "#d1d5db",
		"400": "#9ca3af", "500": "#6b7280", "600": "#4b5563", "700": "#374151",
		"800": "#1f2937", "900": "#111827", "950": "#030712",
	}},
	{"red", map[string]string{
		"50": "#fef2f2", "100": "#fee2e2", "200": "#fecaca", "300": "#fca5a5",
		"400": "#f87171", "500": "#ef4444", "600": "#dc2626", "700": "#b91c1c",
		"800": "#991b1b", "900": "#7f1d1d", "950": "#450a0a",
	}},
	{"orange", map[string]string{
		"50": "#fff7ed", "100": "#ffedd5", "200": "#fed7aa", "300": "#fdba74",
		"400": "#fb923c", "500": "#f97316", "600": "#ea580c", "700": "#c2410c",
		"800": "#9a3412", "900": "#7c2d12", "950": "#431407",
	}},
	{"amber", map[string]string{
		"50": "#fffbeb", "100": "#fef3c7", "200": "#fde68a", "300": "#fcd34d",
		"400": "#fbbf24", "500": "#f59e0b", "600": "#d97706", "700": "#b45309",
		"800": "#92400e", "900": "#78350f", "950": "#451a03",
	}},
	{"yellow", map[string]string{
		"50": "#fefce8", "100": "#fef9c3", "200": "#fef08a", "300": "#fde047",
		"400": "#facc15", "500": "#eab308", "600": "#ca8a04", "700": "#a16207",
		"800": "#854d0e", "900": "#713f12", "950": "#422006",
	}},
	{"green", map[string]string{
		"50": "#f0fdf4", "100": "#dcfce7", "200": "#bbf7d0", "300": "#86efac",
		"400": "#4ade80", "500": "#22c55e", "600": "#16a34a", "700": "#15803d",
		"800": "#166534", "900": "#14532d", "950": "#052e16",
	}},
	{"teal", map[string]string{
		"50": "#f0fdfa", "100": "#ccfbf1", "200": "#99f6e4", "300": "#5eead4",
		"400": "#2dd4bf", "500": "#14b8a6", "600": "#0d9488", "700": "#0f766e",
		"800": "#115e59", "900": "#134e4a", "950": "#042f2e",
	}},
	{"blue", map[string]string{
		"50": "#eff6ff", "100": "#dbeafe", "200": "#bfdbfe", "300": "#93c5fd",
		"400": "#60a5fa", "500": "#3b82f6", "600": "#2563eb", "700": "#1d4ed8",
		"800": "#1e40af", "900": "#1e3a8a", "950": "#172554",
	}},
	{"indigo", map[string]string{
		"50": "#eef2ff", "100": "#e0e7ff", "200": "#c7d2fe", "300": "#a5b4fc",
		"400": "#818cf8", "500": "#6366f1", "600": "#4f46e5", "700": "#4338ca",
		"800": "#3730a3", "900": "#312e81", "950": "#1e1b4b",
	}},
	{"violet", map[string]string{
		"50": "#f5f3ff", "100": "#ede9fe", "200": "#ddd6fe", "300": "#c4b5fd",
		"400": "#a78bfa", "500": "#8b5cf6", "600": "#7c3aed", "700": "#6d28d9",
		"800": "#5b21b6", "900": "#4c1d95", "950": "#2e1065",
	}},
	{"pink", map[string]string{
		"50": "#fdf2f8", "100": "#fce7f3", "200": "#fbcfe8", "300": "#f9a8d4",
		"400": "#f472b6", "500": "#ec4899", "600": "#db2777", "700": "#be185d",
		"800": "#9d174d", "900": "#831843", "950": "#500724",
	}},
}
