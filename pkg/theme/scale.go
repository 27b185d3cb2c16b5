package theme

import "fmt"

// NumericScale registers a "prefix.N": "calc({base} * N)"-shaped run of
// entries into a Theme, one per step in steps — the same "expand once
// into a flat map" strategy tokenctl's pkg/tokens/scale.go uses for its
// $scale feature, generalized from named scale factors (xs/sm/md/lg/xl)
// to the dense numeric run (0, 1, 2, 3, ... 96) a spacing/sizing preset
// needs. basePath must already be a resolvable entry in the theme
// (typically a 1-unit dimension such as "spacing.unit": "0.25rem").
func NumericScale(t *Theme, prefix, basePath string, steps []float64) {
	for _, step := range steps {
		key := fmt.Sprintf("%s.%g", prefix, step)
		if step == 0 {
			t.Set(key, "0px")
			continue
		}
		if step == 1 {
			t.Set(key, "{"+basePath+"}")
			continue
		}
		t.Set(key, fmt.Sprintf("calc({%s} * %g)", basePath, step))
	}
}

// NamedScale registers "prefix.name": "calc({base} * factor)" entries from
// a named factor table, adapted from tokenctl's StandardScale /
// TypographyScale — a DaisyUI-style size scale (xs..xl) or a major-third
// typographic scale, reused here to back the preset's `text-*` and
// `btn-*` size variants.
func NamedScale(t *Theme, prefix, basePath string, factors map[string]float64) {
	for name, factor := range factors {
		key := prefix + "." + name
		if factor == 1.0 {
			t.Set(key, "{"+basePath+"}")
			continue
		}
		t.Set(key, fmt.Sprintf("calc({%s} * %g)", basePath, factor))
	}
}

// StandardScale is the DaisyUI-style size scale factor table.
func StandardScale() map[string]float64 {
	return map[string]float64{"xs": 0.6, "sm": 0.8, "md": 1.0, "lg": 1.2, "xl": 1.4}
}

// TypographyScale is a major-third typographic scale factor table.
func TypographyScale() map[string]float64 {
	return map[string]float64{
		"xs": 0.64, "sm": 0.8, "md": 1.0, "lg": 1.25,
		"xl": 1.563, "2xl": 1.953, "3xl": 2.441,
	}
}

// SpacingSteps is the standard 0..96 spacing run used by the default
// preset's dynamic margin/padding/gap rule (half-steps from 0 to 3.5,
// whole steps from 4 to 12, then a coarser tail up to 96).
func SpacingSteps() []float64 {
	steps := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5}
	for i := 4; i <= 12; i++ {
		steps = append(steps, float64(i))
	}
	for _, i := range []int{14, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60, 64, 72, 80, 96} {
		steps = append(steps, float64(i))
	}
	return steps
}
