package engine

import (
	"regexp"
	"sort"

	"github.com/dmoose/atomicss/pkg/theme"
)

// BlockEntry is one blocklist entry: either an exact raw-token match or
// a compiled pattern.
type BlockEntry struct {
	Exact   string
	Pattern *regexp.Regexp
}

// PostprocessInput is the mutable record a postprocess hook receives
// after variant folding but before body rendering.
type PostprocessInput struct {
	Selector string
	Entries  DeclList
	Parent   string
	Layer    string
}

// PostprocessFunc mutates a PostprocessInput in place.
type PostprocessFunc func(*PostprocessInput)

// UserConfig is what a preset or an application assembles by hand.
// Resolve merges it against a defaults UserConfig (typically the
// built-in preset) to produce a ResolvedConfig the Generator runs
// against.
type UserConfig struct {
	Rules       []Rule
	Shortcuts   []Shortcut
	Variants    []Variant
	Preflights  []Preflight
	Extractors  []Extractor
	Preprocess  []func(string) string
	Postprocess []PostprocessFunc

	Blocklist []BlockEntry
	Safelist  []string

	Theme *theme.Theme

	// Layers maps a layer name to its sort weight; layers absent from
	// this map sort after every named layer, in lexicographic order.
	Layers         map[string]int
	ShortcutsLayer string
	MergeSelectors bool
}

// ResolvedConfig is the immutable, ready-to-run form of a UserConfig.
// Rules/Variants/Shortcuts are the defaults-then-user concatenation, so
// a user-registered entry has a higher index than every default and
// therefore wins both the rule matcher's reverse scan ("last registered
// wins") and the static-rule map's last-write-wins insertion.
type ResolvedConfig struct {
	Rules          []Rule
	RulesStaticMap map[string]int
	RulesSize      int

	Shortcuts   []Shortcut
	Variants    []Variant
	Preflights  []Preflight
	Extractors  []Extractor
	Preprocess  []func(string) string
	Postprocess []PostprocessFunc

	Blocklist []BlockEntry
	Safelist  []string

	Theme *theme.Theme

	Layers         map[string]int
	ShortcutsLayer string
	MergeSelectors bool
}

// Resolve concatenates defaults and user configuration (defaults first,
// so user entries are registered later and take priority) and builds
// the static-rule lookup map.
func Resolve(defaults, user UserConfig) *ResolvedConfig {
	cfg := &ResolvedConfig{
		Rules:          append(append([]Rule{}, defaults.Rules...), user.Rules...),
		Shortcuts:      append(append([]Shortcut{}, defaults.Shortcuts...), user.Shortcuts...),
		Variants:       append(append([]Variant{}, defaults.Variants...), user.Variants...),
		Preflights:     append(append([]Preflight{}, defaults.Preflights...), user.Preflights...),
		Extractors:     append(append([]Extractor{}, defaults.Extractors...), user.Extractors...),
		Preprocess:     append(append([]func(string) string{}, defaults.Preprocess...), user.Preprocess...),
		Postprocess:    append(append([]PostprocessFunc{}, defaults.Postprocess...), user.Postprocess...),
		Blocklist:      append(append([]BlockEntry{}, defaults.Blocklist...), user.Blocklist...),
		Safelist:       append(append([]string{}, defaults.Safelist...), user.Safelist...),
		Layers:         map[string]int{},
		ShortcutsLayer: "shortcuts",
	}

	if user.Theme != nil {
		cfg.Theme = user.Theme
	} else {
		cfg.Theme = defaults.Theme
	}
	if user.ShortcutsLayer != "" {
		cfg.ShortcutsLayer = user.ShortcutsLayer
	} else if defaults.ShortcutsLayer != "" {
		cfg.ShortcutsLayer = defaults.ShortcutsLayer
	}
	cfg.MergeSelectors = defaults.MergeSelectors || user.MergeSelectors

	for name, weight := range defaults.Layers {
		cfg.Layers[name] = weight
	}
	for name, weight := range user.Layers {
		cfg.Layers[name] = weight
	}

	cfg.RulesSize = len(cfg.Rules) - 1
	cfg.RulesStaticMap = make(map[string]int)
	for i, r := range cfg.Rules {
		if r.Key != "" {
			cfg.RulesStaticMap[r.Key] = i
		}
	}

	return cfg
}

// SortLayers orders layer names by configured weight, falling back to
// lexicographic order for ties and for layers with no configured
// weight (they sort after every weighted layer).
func (c *ResolvedConfig) SortLayers(names []string) []string {
	sorted := append([]string{}, names...)
	sort.SliceStable(sorted, func(i, j int) bool {
		wi, oki := c.Layers[sorted[i]]
		wj, okj := c.Layers[sorted[j]]
		if oki && okj && wi != wj {
			return wi < wj
		}
		if oki != okj {
			return oki
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

// IsBlocked reports whether raw is excluded by the blocklist. An empty
// token is always blocked, regardless of what the blocklist contains.
func (c *ResolvedConfig) IsBlocked(raw string) bool {
	if raw == "" {
		return true
	}
	for _, b := range c.Blocklist {
		if b.Pattern != nil {
			if b.Pattern.MatchString(raw) {
				return true
			}
			continue
		}
		if b.Exact == raw {
			return true
		}
	}
	return false
}
