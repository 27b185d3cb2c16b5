package preset

import "github.com/dmoose/atomicss/pkg/engine"

// Default assembles the preset's UserConfig: theme, rules, variants,
// shortcuts, extractors, and preflights, plus the layer weights that
// keep reset ahead of shortcuts ahead of utilities regardless of match
// order. Intended as the `defaults` argument to engine.Resolve — most
// callers layer their own UserConfig (extra rules, a safelist, a
// blocklist) on top rather than using this standalone.
func Default() engine.UserConfig {
	t := DefaultTheme()
	return engine.UserConfig{
		Rules:      DefaultRules(t),
		Shortcuts:  DefaultShortcuts(),
		Variants:   DefaultVariants(),
		Preflights: DefaultPreflights(),
		Extractors: DefaultExtractors(),
		Theme:      t,
		Layers: map[string]int{
			"reset":     0,
			"tokens":    1,
			"shortcuts": 2,
			"utilities": 3,
		},
		ShortcutsLayer: "shortcuts",
		MergeSelectors: true,
	}
}
