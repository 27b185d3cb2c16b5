package preset

import (
	"strings"

	"github.com/dmoose/atomicss/pkg/engine"
)

// pseudoClassVariant builds a Variant that strips a literal "name:"
// prefix and appends ":name" to the folded selector, so "hover:bg-
// primary" targets ".hover\:bg-primary:hover" rather than rewriting the
// base class — the scoping invariant the engine's shortcut/variant
// split exists to protect.
func pseudoClassVariant(name, pseudo string) engine.Variant {
	prefix := name + ":"
	return engine.Variant{
		Name: name,
		Match: func(current string, _ *engine.RuleContext) engine.VariantMatchResult {
			if !strings.HasPrefix(current, prefix) {
				return engine.NoVariantMatch()
			}
			return engine.VariantMatched(engine.VariantHandler{
				Matcher: strings.TrimPrefix(current, prefix),
				Selector: func(selector string, _ engine.DeclList) string {
					return selector + pseudo
				},
			})
		},
	}
}

// ancestorStateVariant builds a "group-hover:"/"peer-checked:"-style
// variant: the matched utility's selector is prefixed with an ancestor
// selector + state and a space, with any combinator carried in
// ancestorSelector itself (none, i.e. descendant, for group-hover; "~"
// for peer-checked), since the engine emits flat (non-nested) rules.
func ancestorStateVariant(name, ancestorSelector string) engine.Variant {
	prefix := name + ":"
	return engine.Variant{
		Name: name,
		Match: func(current string, _ *engine.RuleContext) engine.VariantMatchResult {
			if !strings.HasPrefix(current, prefix) {
				return engine.NoVariantMatch()
			}
			return engine.VariantMatched(engine.VariantHandler{
				Matcher: strings.TrimPrefix(current, prefix),
				Selector: func(selector string, _ engine.DeclList) string {
					return ancestorSelector + " " + selector
				},
			})
		},
	}
}

// darkVariant wraps the matched utility under a data-attribute
// ancestor, the same descendant-combinator trick as group-hover,
// generalized to a theme switch instead of an interaction state.
func darkVariant() engine.Variant {
	return engine.Variant{
		Name: "dark",
		Match: func(current string, _ *engine.RuleContext) engine.VariantMatchResult {
			if !strings.HasPrefix(current, "dark:") {
				return engine.NoVariantMatch()
			}
			return engine.VariantMatched(engine.VariantHandler{
				Matcher: strings.TrimPrefix(current, "dark:"),
				Selector: func(selector string, _ engine.DeclList) string {
					return `[data-theme="dark"] ` + selector
				},
			})
		},
	}
}

// breakpoint is one responsive cutoff; order is the mobile-first rank
// used both for the variant's own Order (so a stacked md:hover:x folds
// the media parent outside the pseudo-class) and the ParentRef.Order
// the sheet assembler sorts distinct @media parents by.
type breakpoint struct {
	name  string
	query string
	order int
}

// defaultBreakpoints mirrors tokenctl's pkg/tokens/responsive.go
// DefaultBreakpoints table, reused here as variant cutoffs instead of
// per-token value overrides.
var defaultBreakpoints = []breakpoint{
	{"sm", "(min-width: 640px)", 1},
	{"md", "(min-width: 768px)", 2},
	{"lg", "(min-width: 1024px)", 3},
	{"xl", "(min-width: 1280px)", 4},
}

func responsiveVariant(bp breakpoint) engine.Variant {
	prefix := bp.name + ":"
	parentName := "@media " + bp.query
	return engine.Variant{
		Name: bp.name,
		Match: func(current string, _ *engine.RuleContext) engine.VariantMatchResult {
			if !strings.HasPrefix(current, prefix) {
				return engine.NoVariantMatch()
			}
			return engine.VariantMatched(engine.VariantHandler{
				Matcher: strings.TrimPrefix(current, prefix),
				Order:   bp.order,
				Parent:  &engine.ParentRef{Name: parentName, Order: bp.order, HasOrder: true},
			})
		},
	}
}

// DefaultVariants is the preset's variant list: pseudo-classes, the
// dark theme switch, group/peer ancestor states, and the responsive
// breakpoint family.
func DefaultVariants() []engine.Variant {
	variants := []engine.Variant{
		pseudoClassVariant("hover", ":hover"),
		pseudoClassVariant("focus", ":focus"),
		pseudoClassVariant("focus-visible", ":focus-visible"),
		pseudoClassVariant("active", ":active"),
		pseudoClassVariant("disabled", ":disabled"),
		pseudoClassVariant("visited", ":visited"),
		pseudoClassVariant("first", ":first-child"),
		pseudoClassVariant("last", ":last-child"),
		darkVariant(),
		ancestorStateVariant("group-hover", ".group:hover"),
		ancestorStateVariant("peer-checked", ".peer:checked ~"),
	}
	for _, bp := range defaultBreakpoints {
		variants = append(variants, responsiveVariant(bp))
	}
	return variants
}
