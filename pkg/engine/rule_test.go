package engine

import (
	"regexp"
	"testing"
)

func TestMatchRuleStaticWinsOverDynamic(t *testing.T) {
	dynamic := DynamicRule(regexp.MustCompile(`^.+$`), func(m []string, _ *RuleContext) RuleHandlerResult {
		return RuleDecls(DeclList{{Property: "color", Value: "from-dynamic"}})
	}, Meta{})
	static := StaticRule("exact", DeclList{{Property: "color", Value: "from-static"}}, Meta{})

	cfg := Resolve(UserConfig{}, UserConfig{Rules: []Rule{dynamic, static}})

	parsed, raws, ok := MatchRule(cfg, "exact", "exact", nil, &RuleContext{}, false)
	if !ok || len(raws) != 0 || len(parsed) != 1 {
		t.Fatalf("MatchRule = %+v, %+v, %v", parsed, raws, ok)
	}
	if parsed[0].Entries[0].Value != "from-static" {
		t.Errorf("static rule did not win: got %q", parsed[0].Entries[0].Value)
	}
}

func TestMatchRuleDynamicReverseScanLastRegisteredWins(t *testing.T) {
	first := DynamicRule(regexp.MustCompile(`^x-(.+)$`), func(m []string, _ *RuleContext) RuleHandlerResult {
		return RuleDecls(DeclList{{Property: "color", Value: "first"}})
	}, Meta{})
	second := DynamicRule(regexp.MustCompile(`^x-(.+)$`), func(m []string, _ *RuleContext) RuleHandlerResult {
		return RuleDecls(DeclList{{Property: "color", Value: "second"}})
	}, Meta{})

	cfg := Resolve(UserConfig{}, UserConfig{Rules: []Rule{first, second}})
	parsed, _, ok := MatchRule(cfg, "x-foo", "x-foo", nil, &RuleContext{}, false)
	if !ok || len(parsed) != 1 {
		t.Fatalf("MatchRule failed: %+v ok=%v", parsed, ok)
	}
	if parsed[0].Entries[0].Value != "second" {
		t.Errorf("expected later-registered rule to win, got %q", parsed[0].Entries[0].Value)
	}
}

func TestMatchRuleSkipsEmptyProducingRuleContinuesScan(t *testing.T) {
	empty := DynamicRule(regexp.MustCompile(`^y-(.+)$`), func(m []string, _ *RuleContext) RuleHandlerResult {
		return RuleDecls(DeclList{{Property: "color", Value: ""}})
	}, Meta{})
	fallback := DynamicRule(regexp.MustCompile(`^y-(.+)$`), func(m []string, _ *RuleContext) RuleHandlerResult {
		return RuleDecls(DeclList{{Property: "color", Value: "fallback"}})
	}, Meta{})

	cfg := Resolve(UserConfig{}, UserConfig{Rules: []Rule{fallback, empty}})
	parsed, _, ok := MatchRule(cfg, "y-1", "y-1", nil, &RuleContext{}, false)
	if !ok || len(parsed) != 1 || parsed[0].Entries[0].Value != "fallback" {
		t.Fatalf("expected scan to continue past an empty-producing rule, got %+v ok=%v", parsed, ok)
	}
}

func TestMatchRuleInternalVisibility(t *testing.T) {
	internal := StaticRule("hidden-helper", DeclList{{Property: "color", Value: "internal"}}, Meta{Internal: true})
	cfg := Resolve(UserConfig{}, UserConfig{Rules: []Rule{internal}})

	if _, _, ok := MatchRule(cfg, "hidden-helper", "hidden-helper", nil, &RuleContext{}, false); ok {
		t.Errorf("internal rule matched a non-internal call")
	}
	if _, _, ok := MatchRule(cfg, "hidden-helper", "hidden-helper", nil, &RuleContext{}, true); !ok {
		t.Errorf("internal rule did not match an internal call")
	}
}

func TestMatchRuleRawUtility(t *testing.T) {
	raw := DynamicRule(regexp.MustCompile(`^\[(.+)\]$`), func(m []string, _ *RuleContext) RuleHandlerResult {
		return RuleString("." + m[1] + "{color:red}")
	}, Meta{})
	cfg := Resolve(UserConfig{}, UserConfig{Rules: []Rule{raw}})

	parsed, raws, ok := MatchRule(cfg, "[foo]", "[foo]", nil, &RuleContext{}, false)
	if !ok || parsed != nil || len(raws) != 1 {
		t.Fatalf("expected a single raw utility, got parsed=%+v raws=%+v ok=%v", parsed, raws, ok)
	}
	if raws[0].Body != ".foo{color:red}" {
		t.Errorf("raw body = %q", raws[0].Body)
	}
}
