package engine

import (
	"errors"
	"strings"
	"testing"
)

func prefixVariant(name, prefix string) Variant {
	return Variant{
		Name: name,
		Match: func(current string, _ *RuleContext) VariantMatchResult {
			if !strings.HasPrefix(current, prefix) {
				return NoVariantMatch()
			}
			return VariantMatchedString(strings.TrimPrefix(current, prefix))
		},
	}
}

func TestMatchVariantsPeelsInRegisteredOrder(t *testing.T) {
	cfg := Resolve(UserConfig{}, UserConfig{Variants: []Variant{
		prefixVariant("hover", "hover:"),
		prefixVariant("dark", "dark:"),
	}})

	res, err := MatchVariants(cfg, "hover:dark:m-2", "hover:dark:m-2", &RuleContext{})
	if err != nil {
		t.Fatalf("MatchVariants: %v", err)
	}
	if res.Residual != "m-2" {
		t.Errorf("residual = %q, want m-2", res.Residual)
	}
	if len(res.Handlers) != 2 {
		t.Fatalf("handlers = %d, want 2", len(res.Handlers))
	}
}

func TestMatchVariantsRestartsScanFromTopOnEachHit(t *testing.T) {
	// "hover" is registered before "dark" but must still apply to the
	// residual left behind once "dark:" is peeled, since the scan
	// restarts from index 0 after every hit rather than continuing from
	// where it matched.
	cfg := Resolve(UserConfig{}, UserConfig{Variants: []Variant{
		prefixVariant("hover", "hover:"),
		prefixVariant("dark", "dark:"),
	}})

	res, err := MatchVariants(cfg, "dark:hover:m-2", "dark:hover:m-2", &RuleContext{})
	if err != nil {
		t.Fatalf("MatchVariants: %v", err)
	}
	if res.Residual != "m-2" {
		t.Errorf("residual = %q, want m-2", res.Residual)
	}
}

func TestMatchVariantsNoMatchLeavesResidualUnchanged(t *testing.T) {
	cfg := Resolve(UserConfig{}, UserConfig{Variants: []Variant{prefixVariant("hover", "hover:")}})
	res, err := MatchVariants(cfg, "m-2", "m-2", &RuleContext{})
	if err != nil {
		t.Fatalf("MatchVariants: %v", err)
	}
	if res.Residual != "m-2" || len(res.Handlers) != 0 {
		t.Errorf("res = %+v, want an untouched residual and no handlers", res)
	}
}

func TestMatchVariantsSingleUseByDefault(t *testing.T) {
	// Without MultiPass, a variant that matched once is skipped on later
	// passes even if the residual would otherwise satisfy it again.
	calls := 0
	v := Variant{
		Name: "loop",
		Match: func(current string, _ *RuleContext) VariantMatchResult {
			if !strings.HasPrefix(current, "x") {
				return NoVariantMatch()
			}
			calls++
			return VariantMatchedString(strings.TrimPrefix(current, "x"))
		},
	}
	cfg := Resolve(UserConfig{}, UserConfig{Variants: []Variant{v}})
	if _, err := MatchVariants(cfg, "xxfoo", "xxfoo", &RuleContext{}); err != nil {
		t.Fatalf("MatchVariants: %v", err)
	}
	if calls != 1 {
		t.Errorf("single-use variant matched %d times, want 1", calls)
	}
}

func TestMatchVariantsMultiPassRepeats(t *testing.T) {
	v := Variant{
		Name:      "loop",
		MultiPass: true,
		Match: func(current string, _ *RuleContext) VariantMatchResult {
			if !strings.HasPrefix(current, "x") {
				return NoVariantMatch()
			}
			return VariantMatchedString(strings.TrimPrefix(current, "x"))
		},
	}
	cfg := Resolve(UserConfig{}, UserConfig{Variants: []Variant{v}})
	res, err := MatchVariants(cfg, "xxxfoo", "xxxfoo", &RuleContext{})
	if err != nil {
		t.Fatalf("MatchVariants: %v", err)
	}
	if res.Residual != "foo" || len(res.Handlers) != 3 {
		t.Errorf("res = %+v, want residual foo and 3 handlers", res)
	}
}

func TestMatchVariantsOverflow(t *testing.T) {
	v := Variant{
		Name:      "infinite",
		MultiPass: true,
		Match: func(current string, _ *RuleContext) VariantMatchResult {
			return VariantMatchedString(current)
		},
	}
	cfg := Resolve(UserConfig{}, UserConfig{Variants: []Variant{v}})
	_, err := MatchVariants(cfg, "anything", "anything", &RuleContext{})
	if err == nil {
		t.Fatal("expected a VariantOverflowError, got nil")
	}
	var overflow *VariantOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("error %v is not a VariantOverflowError", err)
	}
	if overflow.Raw != "anything" {
		t.Errorf("overflow.Raw = %q, want %q", overflow.Raw, "anything")
	}
}

func TestMatchVariantsRegistersParentOrder(t *testing.T) {
	v := Variant{
		Name: "media",
		Match: func(current string, _ *RuleContext) VariantMatchResult {
			if !strings.HasPrefix(current, "md:") {
				return NoVariantMatch()
			}
			return VariantMatched(VariantHandler{
				Matcher: strings.TrimPrefix(current, "md:"),
				Parent:  &ParentRef{Name: "@media (min-width: 768px)", Order: 2, HasOrder: true},
			})
		},
	}
	cfg := Resolve(UserConfig{}, UserConfig{Variants: []Variant{v}})
	g := NewGenerator(cfg)
	ctx := &RuleContext{generator: g}

	if _, err := MatchVariants(cfg, "md:m-2", "md:m-2", ctx); err != nil {
		t.Fatalf("MatchVariants: %v", err)
	}
	orders := g.snapshotParentOrders()
	if orders["@media (min-width: 768px)"] != 2 {
		t.Errorf("parentOrders = %v, want order 2 for the media parent", orders)
	}
}
