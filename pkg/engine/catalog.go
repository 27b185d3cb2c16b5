package engine

import (
	"sort"
	"strings"
)

// CatalogEntry is one introspectable config entry — a rule, variant, or
// shortcut — reduced to the fields external tooling (editor
// autocomplete, hover docs) actually needs. Modeled on tokenctl's
// pkg/generators/catalog.go CatalogSchema and cmd/tokenctl/search.go's
// search-result shape, generalized from design tokens to engine rules.
type CatalogEntry struct {
	Kind     string // "rule" | "variant" | "shortcut"
	Name     string // static key, pattern source, or variant name
	Layer    string
	Internal bool
}

// Catalog is a JSON-serializable (every field is exported) summary of a
// resolved config, sorted for deterministic output.
type Catalog struct {
	Entries []CatalogEntry
}

// BuildCatalog reduces a ResolvedConfig into a sorted Catalog.
func BuildCatalog(cfg *ResolvedConfig) Catalog {
	var entries []CatalogEntry
	for _, r := range cfg.Rules {
		name := r.Key
		if name == "" && r.Pattern != nil {
			name = r.Pattern.String()
		}
		entries = append(entries, CatalogEntry{Kind: "rule", Name: name, Layer: r.Meta.Layer, Internal: r.Meta.Internal})
	}
	for _, v := range cfg.Variants {
		entries = append(entries, CatalogEntry{Kind: "variant", Name: v.Name})
	}
	for _, sc := range cfg.Shortcuts {
		name := sc.Key
		if name == "" && sc.Pattern != nil {
			name = sc.Pattern.String()
		}
		entries = append(entries, CatalogEntry{Kind: "shortcut", Name: name, Layer: sc.Meta.Layer, Internal: sc.Meta.Internal})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Kind != entries[j].Kind {
			return entries[i].Kind < entries[j].Kind
		}
		return entries[i].Name < entries[j].Name
	})

	return Catalog{Entries: entries}
}

// Search filters a Catalog's entries to those whose kind/name match the
// given (case-insensitive) query and/or kind filter — the same
// plural/singular-tolerant matching tokenctl's search command uses for
// token categories, simplified since engine entry kinds are a closed
// set (no plural forms to reconcile).
func (c Catalog) Search(query, kind string) []CatalogEntry {
	query = strings.ToLower(query)
	var out []CatalogEntry
	for _, e := range c.Entries {
		if kind != "" && e.Kind != kind {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(e.Name), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}
