package engine

import (
	"regexp"
	"sort"
	"strings"
)

// ShortcutExpansion is a shortcut's replacement: either a single
// expansion string (subject to variant-group expansion and whitespace
// splitting) or a pre-split list of tokens.
type ShortcutExpansion struct {
	Str  string
	List []string
}

// ExpansionString builds a string-form expansion.
func ExpansionString(s string) ShortcutExpansion { return ShortcutExpansion{Str: s} }

// ExpansionList builds a pre-split list-form expansion.
func ExpansionList(tokens []string) ShortcutExpansion { return ShortcutExpansion{List: tokens} }

// ShortcutExpandFunc computes a dynamic shortcut's expansion from its
// regex submatches; ok=false means the shortcut recognized the pattern
// but declines to expand this particular value.
type ShortcutExpandFunc func(match []string, ctx *RuleContext) (ShortcutExpansion, bool)

// Shortcut is either static (Key, Static) or dynamic (Pattern, Expand).
type Shortcut struct {
	Key    string
	Static ShortcutExpansion

	Pattern *regexp.Regexp
	Expand  ShortcutExpandFunc

	Meta Meta
}

// StaticShortcut builds a literal key -> expansion shortcut.
func StaticShortcut(key string, expansion ShortcutExpansion, meta Meta) Shortcut {
	return Shortcut{Key: key, Static: expansion, Meta: meta}
}

// DynamicShortcut builds a regex-matched shortcut.
func DynamicShortcut(pattern *regexp.Regexp, expand ShortcutExpandFunc, meta Meta) Shortcut {
	return Shortcut{Pattern: pattern, Expand: expand, Meta: meta}
}

var variantGroupRegex = regexp.MustCompile(`([\w-]*):\(([^()]*)\)`)

// expandVariantGroups rewrites "prefix:(a b c)" into "prefix:a prefix:b
// prefix:c", repeatedly, so that arbitrarily nested groups resolve from
// the innermost outward.
func expandVariantGroups(s string) string {
	for {
		loc := variantGroupRegex.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}
		prefix := s[loc[2]:loc[3]]
		inner := s[loc[4]:loc[5]]
		parts := strings.Fields(inner)
		expanded := make([]string, len(parts))
		for i, p := range parts {
			expanded[i] = prefix + ":" + p
		}
		s = s[:loc[0]] + strings.Join(expanded, " ") + s[loc[1]:]
	}
}

// ExpandShortcut recursively expands residual into the flat list of
// leaf tokens a shortcut ultimately bottoms out at, depth-limited to
// guard against shortcuts that reference each other in a cycle. Each
// sub-token is tried again as a shortcut key/pattern first; if none
// matches it is kept as a literal residual for the rule matcher.
func ExpandShortcut(cfg *ResolvedConfig, residual string, ctx *RuleContext, depth int) ([]string, Meta, bool) {
	if depth <= 0 {
		return nil, Meta{}, false
	}

	for _, sc := range cfg.Shortcuts {
		var expansion ShortcutExpansion
		matched := false

		switch {
		case sc.Pattern != nil:
			if m := sc.Pattern.FindStringSubmatch(residual); m != nil {
				if exp, ok := sc.Expand(m, ctx); ok {
					expansion, matched = exp, true
				}
			}
		case sc.Key == residual:
			expansion, matched = sc.Static, true
		}

		if !matched {
			continue
		}

		var tokens []string
		if expansion.List != nil {
			tokens = expansion.List
		} else {
			tokens = strings.Fields(expandVariantGroups(expansion.Str))
		}

		var result []string
		for _, t := range tokens {
			if t == "" {
				continue
			}
			if sub, _, ok := ExpandShortcut(cfg, t, ctx, depth-1); ok {
				result = append(result, sub...)
			} else {
				result = append(result, t)
			}
		}
		return result, sc.Meta, true
	}

	return nil, Meta{}, false
}

// shortcutUnit is one expanded leaf token after its own variant prefixes
// (if any) have been peeled and rule-matched.
type shortcutUnit struct {
	order    int
	selector string
	parent   string
	entries  DeclList
	noMerge  bool
}

// StringifyShortcut implements the shortcut stringification pipeline:
// dedup the expanded tokens, variant-match and rule-match each one
// (internal=true so shortcuts can reach Meta.Internal rules), fold in
// the shortcut's own variant handlers alongside each leaf's own, group
// the results by (selector, parent), and split each group into merged
// or individually-emitted units depending on the no-merge marker.
func StringifyShortcut(
	cfg *ResolvedConfig,
	parentRaw string,
	parentHandlers []VariantHandler,
	expandedTokens []string,
	shortcutMeta Meta,
	ctx *RuleContext,
	warn func(token string),
) ([]*StringifiedUtility, error) {
	seen := make(map[string]bool)
	var deduped []string
	for _, t := range expandedTokens {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		deduped = append(deduped, t)
	}

	var units []shortcutUnit
	for _, t := range deduped {
		mv, err := MatchVariants(cfg, t, t, ctx)
		if err != nil {
			return nil, err
		}
		parsed, _, ok := MatchRule(cfg, t, mv.Residual, mv.Handlers, ctx, true)
		if !ok {
			warn(t)
			continue
		}
		for _, p := range parsed {
			combined := make([]VariantHandler, 0, len(p.VariantHandlers)+len(parentHandlers))
			combined = append(combined, p.VariantHandlers...)
			combined = append(combined, parentHandlers...)
			selector, body, parent, _ := applyVariants(parentRaw, combined, p.Entries, cfg)
			units = append(units, shortcutUnit{
				order:    p.Order,
				selector: selector,
				parent:   parent,
				entries:  body,
				noMerge:  p.Meta.NoMerge,
			})
		}
	}
	sort.SliceStable(units, func(i, j int) bool { return units[i].order < units[j].order })

	layer := shortcutMeta.Layer
	if layer == "" {
		layer = cfg.ShortcutsLayer
	}

	type bucketKey struct{ selector, parent string }
	var bucketOrder []bucketKey
	buckets := map[bucketKey][]shortcutUnit{}
	for _, u := range units {
		k := bucketKey{u.selector, u.parent}
		if _, ok := buckets[k]; !ok {
			bucketOrder = append(bucketOrder, k)
		}
		buckets[k] = append(buckets[k], u)
	}

	var out []*StringifiedUtility
	for _, k := range bucketOrder {
		bucketUnits := buckets[k]
		minOrder := bucketUnits[0].order
		for _, u := range bucketUnits {
			if u.order < minOrder {
				minOrder = u.order
			}
		}

		type groupKey struct{ noMerge, marker bool }
		var groupOrder []groupKey
		groups := map[groupKey][]shortcutUnit{}
		for _, u := range bucketUnits {
			gk := groupKey{noMerge: u.noMerge, marker: hasNoMergeMarker(u.entries)}
			if _, ok := groups[gk]; !ok {
				groupOrder = append(groupOrder, gk)
			}
			groups[gk] = append(groups[gk], u)
		}

		for _, gk := range groupOrder {
			gunits := groups[gk]
			meta := Meta{Layer: layer, NoMerge: gk.noMerge}
			if gk.marker {
				for _, u := range gunits {
					if body := renderBody(u.entries); body != "" {
						out = append(out, &StringifiedUtility{Order: minOrder, Selector: k.selector, Body: body, Parent: k.parent, Meta: meta})
					}
				}
				continue
			}
			var merged DeclList
			for _, u := range gunits {
				merged = append(merged, u.entries...)
			}
			if body := renderBody(merged); body != "" {
				out = append(out, &StringifiedUtility{Order: minOrder, Selector: k.selector, Body: body, Parent: k.parent, Meta: meta})
			}
		}
	}

	return out, nil
}
