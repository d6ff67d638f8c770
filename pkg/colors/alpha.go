// classforge/pkg/colors/alpha.go

package colors

import "fmt"

// RenderMode is the CSS color syntax an alpha-aware render targets.
type RenderMode string

const (
	RenderHex   RenderMode = FormatHex
	RenderHSL   RenderMode = FormatHSL
	RenderOKLCH RenderMode = FormatOKLCH
	// RenderVar asks for a var(--color-<name>) reference rather than a
	// literal color; Render still needs a concrete fallback to wrap in
	// color-mix() when alpha is present, so callers pass the variable
	// reference text as varRef.
	RenderVar RenderMode = "var"
)

// RenderWithAlpha renders c in the given mode, applying alphaPercent (0-100,
// 100 meaning fully opaque) per the encoding rules for that mode:
//
//   - hex: two extra hex digits appended (alphaPercent < 100 only)
//   - hsl/oklch: " / <fraction>" appended (alphaPercent < 100 only)
//   - var: the variable reference verbatim, wrapped in color-mix() when
//     alphaPercent < 100 or colorMix is forced
//
// When colorMix is true the color (in hex/hsl/oklch modes too) is wrapped in
// color-mix(in oklab, <color> <pct>, transparent) instead of using the
// mode's native alpha syntax. alphaPercent == 100 and colorMix == false is a
// plain opaque render with no alpha decoration at all.
func (c Color) RenderWithAlpha(mode RenderMode, alphaPercent float64, colorMix bool, varRef string) string {
	hasAlpha := alphaPercent < 100

	if mode == RenderVar {
		if !hasAlpha && !colorMix {
			return varRef
		}
		return fmt.Sprintf("color-mix(in oklab, %s %s%%, transparent)", varRef, trimPercent(alphaPercent))
	}

	if colorMix && hasAlpha {
		base := c.ToCSS(string(mode))
		return fmt.Sprintf("color-mix(in oklab, %s %s%%, transparent)", base, trimPercent(alphaPercent))
	}

	switch mode {
	case RenderHex:
		hex := c.Hex()
		if !hasAlpha {
			return hex
		}
		a := clamp255(alphaPercent / 100 * 255)
		return fmt.Sprintf("%s%02x", hex, a)
	case RenderHSL:
		h, s, l := c.Color.Hsl()
		if !hasAlpha {
			return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", h, s*100, l*100)
		}
		return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%% / %s%%)", h, s*100, l*100, trimPercent(alphaPercent))
	case RenderOKLCH:
		l, ch, h := c.Color.OkLch()
		if !hasAlpha {
			return fmt.Sprintf("oklch(%.2f%% %.3f %.2f)", l*100, ch, h)
		}
		return fmt.Sprintf("oklch(%.2f%% %.3f %.2f / %s%%)", l*100, ch, h, trimPercent(alphaPercent))
	default:
		return c.Hex()
	}
}

func clamp255(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v + 0.5)
}

// trimPercent formats a 0-100 percentage without a trailing ".00".
func trimPercent(pct float64) string {
	if pct == float64(int(pct)) {
		return fmt.Sprintf("%d", int(pct))
	}
	return fmt.Sprintf("%g", pct)
}
