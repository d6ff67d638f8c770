package tokens

import (
	"strings"

	"github.com/classforge/classforge/pkg/colors"
)

// Overlay adapts a resolved token Dictionary to the synth.Overlay interface,
// letting a design-token set override the compiler's built-in color palette
// and spacing scale. It is the configuration-layer escape hatch: classforge
// theme build produces the Dictionary this wraps, and compile consumes it.
type Overlay struct {
	resolved map[string]any
}

// NewOverlay wraps an already-resolved token map (as returned by
// Resolver.ResolveAll) for use as a synth.Overlay.
func NewOverlay(resolved map[string]any) *Overlay {
	return &Overlay{resolved: resolved}
}

// Color looks up name (e.g. "brand-primary") under the "color." namespace,
// trying both the dashed leaf and the fully dotted path since token trees
// nest dashed multi-word names at different depths.
func (o *Overlay) Color(name string) (colors.Color, bool) {
	for _, path := range []string{"color." + name, "color." + strings.ReplaceAll(name, "-", ".")} {
		v, ok := o.resolved[path]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		c, err := colors.Parse(s)
		if err != nil {
			continue
		}
		return c, true
	}
	return colors.Color{}, false
}

// Spacing looks up token (e.g. "sm", "4", or a nested "scale-4") under the
// "spacing." namespace, trying both the dashed leaf and the fully dotted
// path for the same reason Color does: a grouped token tree (e.g.
// spacing.scale.4) only exposes a dashed name like "scale-4" at the
// plugin-value boundary.
func (o *Overlay) Spacing(token string) (string, bool) {
	for _, path := range []string{"spacing." + token, "spacing." + strings.ReplaceAll(token, "-", ".")} {
		v, ok := o.resolved[path]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		return s, true
	}
	return "", false
}
