// Package preset assembles a batteries-included engine.UserConfig: a
// theme, a rule set, a variant set, a handful of component shortcuts,
// and a reset preflight. It exists to exercise every operation the
// engine package implements end-to-end, the way tokenctl's
// pkg/generators package exercises pkg/tokens against a concrete CSS
// output format rather than leaving it a library with no default
// wiring.
package preset

import (
	"fmt"

	"github.com/dmoose/atomicss/pkg/theme"
)

// palette is the default color ramp: a handful of semantic roles, one
// shade each; DefaultTheme derives a contrast-aware ".content" color
// for every role. Values are OKLCH so the expression language's
// darken/lighten/contrast helpers operate in a perceptually uniform
// space, same as tokenctl's pkg/colors does internally.
var palette = map[string]string{
	"primary":   "oklch(55% 0.2 260)",
	"secondary": "oklch(65% 0.18 330)",
	"accent":    "oklch(70% 0.2 160)",
	"neutral":   "oklch(30% 0.02 260)",
	"base-100":  "oklch(100% 0 0)",
	"base-200":  "oklch(96% 0 0)",
	"base-300":  "oklch(90% 0 0)",
	"error":     "oklch(55% 0.22 25)",
	"warning":   "oklch(75% 0.18 85)",
	"success":   "oklch(60% 0.18 145)",
	"info":      "oklch(65% 0.15 230)",
}

// DefaultTheme builds the theme store the default preset's rules and
// shortcuts resolve against: the color palette plus its derived
// content-on pairs, a spacing scale, a typography scale, and a radius
// scale. Adapted from tokenctl's default token set (colors, spacing,
// typography all flattened into one resolvable dictionary) but built
// directly as {path: value} entries instead of loaded from JSON, since
// the engine's Theme has no file-backed loader of its own.
func DefaultTheme() *theme.Theme {
	t := theme.New(map[string]string{})

	for name, value := range palette {
		t.Set("color."+name, value)
		t.Set("color."+name+".content", fmt.Sprintf("contrast({color.%s})", name))
	}

	t.Set("spacing.unit", "0.25rem")
	theme.NumericScale(t, "spacing", "spacing.unit", theme.SpacingSteps())

	t.Set("text.unit", "1rem")
	theme.NamedScale(t, "text", "text.unit", theme.TypographyScale())

	t.Set("radius.unit", "0.25rem")
	theme.NamedScale(t, "radius", "radius.unit", theme.StandardScale())
	t.Set("radius.full", "9999px")

	t.Set("shadow.sm", "0 1px 2px 0 rgb(0 0 0 / 0.05)")
	t.Set("shadow.md", "0 4px 6px -1px rgb(0 0 0 / 0.1)")
	t.Set("shadow.lg", "0 10px 15px -3px rgb(0 0 0 / 0.1)")

	return t
}
