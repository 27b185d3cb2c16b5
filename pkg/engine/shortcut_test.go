package engine

import "testing"

func TestExpandVariantGroupsFlattensNestedParens(t *testing.T) {
	got := expandVariantGroups("hover:(m-2 p-2) dark:(hover:(text-red) opacity-50)")
	want := "hover:m-2 hover:p-2 dark:hover:text-red dark:opacity-50"
	if got != want {
		t.Errorf("expandVariantGroups = %q, want %q", got, want)
	}
}

func TestExpandShortcutStaticFlattensNestedShortcuts(t *testing.T) {
	cfg := Resolve(UserConfig{}, UserConfig{Shortcuts: []Shortcut{
		StaticShortcut("inner", ExpansionString("m-2 p-2"), Meta{}),
		StaticShortcut("outer", ExpansionString("inner btn-base"), Meta{}),
	}})

	tokens, _, ok := ExpandShortcut(cfg, "outer", &RuleContext{}, maxShortcutDepth)
	if !ok {
		t.Fatal("expected outer to expand")
	}
	want := []string{"m-2", "p-2", "btn-base"}
	if len(tokens) != len(want) {
		t.Fatalf("tokens = %v, want %v", tokens, want)
	}
	for i, w := range want {
		if tokens[i] != w {
			t.Errorf("tokens[%d] = %q, want %q", i, tokens[i], w)
		}
	}
}

func TestExpandShortcutDepthCapBreaksCycle(t *testing.T) {
	cfg := Resolve(UserConfig{}, UserConfig{Shortcuts: []Shortcut{
		StaticShortcut("a", ExpansionString("b"), Meta{}),
		StaticShortcut("b", ExpansionString("a"), Meta{}),
	}})

	// A genuine a<->b cycle never terminates via the "no match ->
	// literal" fallback on its own; the depth cap is what stops the
	// recursion, at which point the innermost call fails and its
	// caller keeps the unresolved token as a literal rather than
	// recursing forever.
	tokens, _, ok := ExpandShortcut(cfg, "a", &RuleContext{}, maxShortcutDepth)
	if !ok {
		t.Fatal("expected the depth-capped expansion to still return its last literal residual")
	}
	if len(tokens) != 1 || tokens[0] != "b" {
		t.Errorf("tokens = %v, want the unresolved [b] left over once depth ran out", tokens)
	}
}

func TestExpandShortcutUnmatchedSubTokenKeptLiteral(t *testing.T) {
	cfg := Resolve(UserConfig{}, UserConfig{Shortcuts: []Shortcut{
		StaticShortcut("card", ExpansionString("rounded not-a-shortcut"), Meta{}),
	}})
	tokens, _, ok := ExpandShortcut(cfg, "card", &RuleContext{}, maxShortcutDepth)
	if !ok || len(tokens) != 2 || tokens[1] != "not-a-shortcut" {
		t.Fatalf("tokens = %v, ok = %v, want [rounded not-a-shortcut]", tokens, ok)
	}
}

func TestStringifyShortcutDedupesRepeatedSubTokens(t *testing.T) {
	cfg := Resolve(UserConfig{}, UserConfig{Rules: []Rule{
		StaticRule("m-2", DeclList{{Property: "margin", Value: "0.5rem"}}, Meta{}),
	}})
	out, err := StringifyShortcut(cfg, "btn", nil, []string{"m-2", "m-2"}, Meta{}, &RuleContext{}, func(string) {})
	if err != nil {
		t.Fatalf("StringifyShortcut: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("out = %+v, want exactly one unit for a deduplicated sub-token", out)
	}
	if out[0].Body != "margin:0.5rem;" {
		t.Errorf("body = %q", out[0].Body)
	}
}

func TestStringifyShortcutMergesSameSelectorSameGroup(t *testing.T) {
	cfg := Resolve(UserConfig{}, UserConfig{Rules: []Rule{
		StaticRule("m-2", DeclList{{Property: "margin", Value: "0.5rem"}}, Meta{}),
		StaticRule("p-2", DeclList{{Property: "padding", Value: "0.5rem"}}, Meta{}),
	}})
	out, err := StringifyShortcut(cfg, "btn", nil, []string{"m-2", "p-2"}, Meta{}, &RuleContext{}, func(string) {})
	if err != nil {
		t.Fatalf("StringifyShortcut: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("out = %+v, want a single merged .btn unit", out)
	}
	if out[0].Body != "margin:0.5rem;padding:0.5rem;" {
		t.Errorf("body = %q", out[0].Body)
	}
}

func TestStringifyShortcutNoMergeMarkerSplitsBucket(t *testing.T) {
	cfg := Resolve(UserConfig{}, UserConfig{Rules: []Rule{
		StaticRule("m-2", DeclList{{Property: "margin", Value: "0.5rem"}}, Meta{}),
		StaticRule("p-4", DeclList{{Property: "padding", Value: "1rem"}, {Property: NoMergeMarker, Value: "1"}}, Meta{}),
	}})
	out, err := StringifyShortcut(cfg, "btn", nil, []string{"m-2", "p-4"}, Meta{}, &RuleContext{}, func(string) {})
	if err != nil {
		t.Fatalf("StringifyShortcut: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("out = %+v, want the marked sub-token split into its own unit", out)
	}
	bodies := map[string]bool{out[0].Body: true, out[1].Body: true}
	if !bodies["margin:0.5rem;"] || !bodies["padding:1rem;"] {
		t.Errorf("bodies = %v, want separate margin and padding units", bodies)
	}
}

func TestStringifyShortcutUnmatchedSubTokenWarnsAndIsSkipped(t *testing.T) {
	cfg := Resolve(UserConfig{}, UserConfig{Rules: []Rule{
		StaticRule("m-2", DeclList{{Property: "margin", Value: "0.5rem"}}, Meta{}),
	}})
	var warned []string
	out, err := StringifyShortcut(cfg, "btn", nil, []string{"m-2", "no-such-rule"}, Meta{}, &RuleContext{}, func(token string) {
		warned = append(warned, token)
	})
	if err != nil {
		t.Fatalf("StringifyShortcut: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("out = %+v, want only the matched sub-token rendered", out)
	}
	if len(warned) != 1 || warned[0] != "no-such-rule" {
		t.Errorf("warned = %v, want [no-such-rule]", warned)
	}
}
