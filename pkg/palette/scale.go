// classforge/pkg/palette/scale.go

package palette

import "fmt"

// Spacing maps a spacing token ("0", "px", "0.5", "1" ... "96") to a CSS
// length string. The table mirrors the standard 0.25rem step scale with a
// handful of exceptions (0 and px).
var Spacing = buildSpacing()

func buildSpacing() map[string]string {
	out := map[string]string{
		"0":    "0px",
		"px":   "1px",
		"0.5":  "0.125rem",
		"1.5":  "0.375rem",
		"2.5":  "0.625rem",
		"3.5":  "0.875rem",
	}
	steps := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 14, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60, 64, 72, 80, 96}
	for _, n := range steps {
		out[fmt.Sprintf("%d", n)] = remString(float64(n) * 0.25)
	}
	return out
}

func remString(rem float64) string {
	if rem == float64(int(rem)) {
		return fmt.Sprintf("%drem", int(rem))
	}
	return trimFloat(rem) + "rem"
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// Fractions maps "1/2", "1/3", "3/4" ... to a percentage string.
var Fractions = buildFractions()

func buildFractions() map[string]string {
	out := make(map[string]string)
	denoms := []int{2, 3, 4, 5, 6, 12}
	for _, d := range denoms {
		for n := 1; n < d; n++ {
			key := fmt.Sprintf("%d/%d", n, d)
			pct := float64(n) / float64(d) * 100
			out[key] = trimFloat(pct) + "%"
		}
	}
	return out
}

// SizeKeyword resolves size-plugin special tokens shared by w/h/min-*/max-*.
func SizeKeyword(token string) (string, bool) {
	switch token {
	case "screen":
		return "", false // axis-dependent, resolved by caller (100vw vs 100vh)
	case "min":
		return "min-content", true
	case "max":
		return "max-content", true
	case "fit":
		return "fit-content", true
	case "full":
		return "100%", true
	case "auto":
		return "auto", true
	default:
		return "", false
	}
}

// TextSizes maps a font-size token to its (font-size, line-height) pair.
var TextSizes = map[string][2]string{
	"xs":   {"0.75rem", "1rem"},
	"sm":   {"0.875rem", "1.25rem"},
	"base": {"1rem", "1.5rem"},
	"lg":   {"1.125rem", "1.75rem"},
	"xl":   {"1.25rem", "1.75rem"},
	"2xl":  {"1.5rem", "2rem"},
	"3xl":  {"1.875rem", "2.25rem"},
	"4xl":  {"2.25rem", "2.5rem"},
	"5xl":  {"3rem", "1"},
	"6xl":  {"3.75rem", "1"},
	"7xl":  {"4.5rem", "1"},
}

// Radii maps a radius token to a length.
var Radii = map[string]string{
	"none": "0px",
	"sm":   "0.125rem",
	"":     "0.25rem", // bare "rounded"
	"md":   "0.375rem",
	"lg":   "0.5rem",
	"xl":   "0.75rem",
	"2xl":  "1rem",
	"3xl":  "1.5rem",
	"full": "9999px",
}

// Shadows maps a shadow token to its box-shadow value.
var Shadows = map[string]string{
	"sm":    "0 1px 2px 0 rgb(0 0 0 / 0.05)",
	"":      "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
	"md":    "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
	"lg":    "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
	"xl":    "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
	"2xl":   "0 25px 50px -12px rgb(0 0 0 / 0.25)",
	"inner": "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
	"none":  "0 0 #0000",
}

// Blurs maps a blur token to a filter-function length.
var Blurs = map[string]string{
	"none": "0",
	"sm":   "4px",
	"":     "8px",
	"md":   "12px",
	"lg":   "16px",
	"xl":   "24px",
	"2xl":  "40px",
	"3xl":  "64px",
}

// Tracking maps a letter-spacing token to an em value.
var Tracking = map[string]string{
	"tighter": "-0.05em",
	"tight":   "-0.025em",
	"normal":  "0em",
	"wide":    "0.025em",
	"wider":   "0.05em",
	"widest":  "0.1em",
}

// FontWeights maps a weight token to its numeric CSS value.
var FontWeights = map[string]string{
	"thin":       "100",
	"extralight": "200",
	"light":      "300",
	"normal":     "400",
	"medium":     "500",
	"semibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"black":      "900",
}

// Breakpoints maps a breakpoint name to its min-width media value.
var Breakpoints = map[string]string{
	"sm": "640px",
	"md": "768px",
	"lg": "1024px",
	"xl": "1280px",
	"2xl": "1536px",
}

// BreakpointOrder is the canonical breakpoint ordering, smallest first.
var BreakpointOrder = []string{"sm", "md", "lg", "xl", "2xl"}

// ContainerSizes maps an @-container shorthand (e.g. "@md") to its
// min-width value, mirroring Breakpoints but addressed separately since
// container queries and media queries are independent scales.
var ContainerSizes = map[string]string{
	"xs":  "320px",
	"sm":  "384px",
	"md":  "448px",
	"lg":  "512px",
	"xl":  "576px",
	"2xl": "672px",
	"3xl": "768px",
	"4xl": "896px",
}
