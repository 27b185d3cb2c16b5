package engine

import (
	"regexp"
	"testing"
)

func catalogFixture() *ResolvedConfig {
	return Resolve(UserConfig{}, UserConfig{
		Rules: []Rule{
			StaticRule("m-2", DeclList{{Property: "margin", Value: "0.5rem"}}, Meta{Layer: "utilities"}),
			DynamicRule(regexp.MustCompile(`^p-(\d+)$`), func([]string, *RuleContext) RuleHandlerResult {
				return RuleNone()
			}, Meta{Layer: "utilities"}),
			StaticRule("debug-outline", DeclList{{Property: "outline", Value: "1px solid red"}}, Meta{Internal: true}),
		},
		Variants: []Variant{{Name: "hover", Match: func(string, *RuleContext) VariantMatchResult { return NoVariantMatch() }}},
		Shortcuts: []Shortcut{
			StaticShortcut("btn", ExpansionString("m-2"), Meta{Layer: "shortcuts"}),
		},
	})
}

func TestBuildCatalogIncludesAllKinds(t *testing.T) {
	cat := BuildCatalog(catalogFixture())
	if len(cat.Entries) != 5 {
		t.Fatalf("entries = %+v, want 5 (3 rules, 1 variant, 1 shortcut)", cat.Entries)
	}
}

func TestBuildCatalogDynamicRuleUsesPatternAsName(t *testing.T) {
	cat := BuildCatalog(catalogFixture())
	found := false
	for _, e := range cat.Entries {
		if e.Kind == "rule" && e.Name == `^p-(\d+)$` {
			found = true
		}
	}
	if !found {
		t.Errorf("entries = %+v, want a rule entry named after its pattern", cat.Entries)
	}
}

func TestBuildCatalogIsSortedByKindThenName(t *testing.T) {
	cat := BuildCatalog(catalogFixture())
	for i := 1; i < len(cat.Entries); i++ {
		prev, cur := cat.Entries[i-1], cat.Entries[i]
		if prev.Kind > cur.Kind {
			t.Fatalf("entries not sorted by kind: %+v before %+v", prev, cur)
		}
		if prev.Kind == cur.Kind && prev.Name > cur.Name {
			t.Fatalf("entries not sorted by name within kind: %+v before %+v", prev, cur)
		}
	}
}

func TestCatalogSearchFiltersByKind(t *testing.T) {
	cat := BuildCatalog(catalogFixture())
	results := cat.Search("", "variant")
	if len(results) != 1 || results[0].Name != "hover" {
		t.Fatalf("Search(kind=variant) = %+v, want [hover]", results)
	}
}

func TestCatalogSearchIsCaseInsensitiveSubstring(t *testing.T) {
	cat := BuildCatalog(catalogFixture())
	results := cat.Search("BTN", "")
	if len(results) != 1 || results[0].Name != "btn" {
		t.Fatalf("Search(query=BTN) = %+v, want [btn]", results)
	}
}

func TestCatalogSearchEmptyQueryAndKindReturnsEverything(t *testing.T) {
	cat := BuildCatalog(catalogFixture())
	results := cat.Search("", "")
	if len(results) != len(cat.Entries) {
		t.Errorf("Search(\"\",\"\") returned %d entries, want all %d", len(results), len(cat.Entries))
	}
}

func TestCatalogIncludesInternalRulesForIntrospection(t *testing.T) {
	cat := BuildCatalog(catalogFixture())
	found := false
	for _, e := range cat.Entries {
		if e.Name == "debug-outline" && e.Internal {
			found = true
		}
	}
	if !found {
		t.Error("expected the internal rule to still appear in the catalog, flagged Internal=true")
	}
}
