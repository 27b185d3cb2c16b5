package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Assemble groups a layer's stringified utilities by at-rule parent,
// sorts parents by the generator's recorded ordering weight (falling
// back to name), sorts each parent's utilities by registration order
// then selector, optionally merges selectors that share an identical
// body, and renders the final CSS text for that layer.
func Assemble(parentOrders map[string]int, utilities []*StringifiedUtility, layer, scope string, mergeSelectors bool) string {
	byParent := map[string][]*StringifiedUtility{}
	seenParent := map[string]bool{}
	var parents []string

	for _, u := range utilities {
		l := u.Meta.Layer
		if l == "" {
			l = "default"
		}
		if l != layer {
			continue
		}
		if !seenParent[u.Parent] {
			seenParent[u.Parent] = true
			parents = append(parents, u.Parent)
		}
		byParent[u.Parent] = append(byParent[u.Parent], u)
	}

	sort.SliceStable(parents, func(i, j int) bool {
		oi, oj := parentOrders[parents[i]], parentOrders[parents[j]]
		if oi != oj {
			return oi < oj
		}
		return parents[i] < parents[j]
	})

	var sb strings.Builder
	for _, p := range parents {
		list := append([]*StringifiedUtility{}, byParent[p]...)
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Order != list[j].Order {
				return list[i].Order < list[j].Order
			}
			return list[i].Selector < list[j].Selector
		})

		rendered := renderLayer(list, scope, mergeSelectors)
		if rendered == "" {
			continue
		}
		if p != "" {
			fmt.Fprintf(&sb, "%s{\n%s}\n", p, rendered)
		} else {
			sb.WriteString(rendered)
		}
	}
	return sb.String()
}

type renderUnit struct {
	selectors []string
	body      string
	noMerge   bool
	raw       bool
}

func renderLayer(list []*StringifiedUtility, scope string, mergeSelectors bool) string {
	units := make([]renderUnit, len(list))
	for i, u := range list {
		if u.Selector == "" {
			units[i] = renderUnit{body: u.Body, raw: true}
			continue
		}
		units[i] = renderUnit{selectors: []string{applyScope(u.Selector, scope)}, body: u.Body, noMerge: u.Meta.NoMerge}
	}

	if mergeSelectors {
		units = mergeSelectorGroups(units)
	}

	var sb strings.Builder
	for _, u := range units {
		if u.raw {
			sb.WriteString(u.body)
			if !strings.HasSuffix(u.body, "\n") {
				sb.WriteString("\n")
			}
			continue
		}
		fmt.Fprintf(&sb, "%s{%s}\n", strings.Join(dedupeSelectors(u.selectors), ","), u.body)
	}
	return sb.String()
}

// dedupeSelectors drops repeated selectors from a merged group, keeping
// the first occurrence's position so cascade order is unaffected.
func dedupeSelectors(selectors []string) []string {
	if len(selectors) < 2 {
		return selectors
	}
	seen := make(map[string]bool, len(selectors))
	out := make([]string, 0, len(selectors))
	for _, s := range selectors {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// applyScope substitutes ScopePlaceholder with scope (or collapses it to
// a single space when scope is empty), else prefixes the selector with
// "scope " when a scope is configured and the selector carries no
// explicit placeholder.
func applyScope(selector, scope string) string {
	if strings.Contains(selector, ScopePlaceholder) {
		if scope == "" {
			return strings.ReplaceAll(selector, ScopePlaceholder, " ")
		}
		return strings.ReplaceAll(selector, ScopePlaceholder, " "+scope+" ")
	}
	if scope == "" {
		return selector
	}
	return scope + " " + selector
}

// mergeSelectorGroups scans in reverse: for each non-noMerge unit, if a
// later unit (in original order — already visited, since we scan high
// to low) shares an identical body, that unit's selectors are prepended
// into the later one's selector list and it is dropped. Surviving units
// keep their original position so the merge never changes cascade
// order — only which selectors share a declaration block.
func mergeSelectorGroups(units []renderUnit) []renderUnit {
	n := len(units)
	dropped := make([]bool, n)
	targetForBody := map[string]int{}

	for i := n - 1; i >= 0; i-- {
		if units[i].raw || units[i].noMerge {
			continue
		}
		if j, ok := targetForBody[units[i].body]; ok {
			units[j].selectors = append(append([]string{}, units[i].selectors...), units[j].selectors...)
			dropped[i] = true
			continue
		}
		targetForBody[units[i].body] = i
	}

	out := make([]renderUnit, 0, n)
	for i, u := range units {
		if dropped[i] {
			continue
		}
		out = append(out, u)
	}
	return out
}
