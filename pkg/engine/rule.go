package engine

import "regexp"

// RuleHandlerFunc is a dynamic rule's body. It receives the full regex
// submatch slice (match[0] is the whole residual) and returns a
// RuleHandlerResult built with one of RuleString/RuleDecls/
// RuleDeclGroups/RuleNone.
type RuleHandlerFunc func(match []string, ctx *RuleContext) RuleHandlerResult

// RuleHandlerResult is the polymorphic return value a dynamic rule
// handler produces: either a literal CSS string (raw utility), one or
// more declaration groups (parsed utilities, one per non-empty group),
// or nothing (no match after all).
type RuleHandlerResult struct {
	raw     *string
	groups  []DeclList
	matched bool
}

// RuleString emits a single raw CSS body, bypassing the selector/variant
// machinery entirely.
func RuleString(body string) RuleHandlerResult {
	return RuleHandlerResult{raw: &body, matched: true}
}

// RuleDecls emits one parsed utility from a single declaration list.
func RuleDecls(entries DeclList) RuleHandlerResult {
	return RuleHandlerResult{groups: []DeclList{entries}, matched: true}
}

// RuleDeclGroups emits one parsed utility per non-empty group — used by
// rules that expand into more than one independent rule set (e.g. a
// shorthand that also defines a custom property).
func RuleDeclGroups(groups []DeclList) RuleHandlerResult {
	return RuleHandlerResult{groups: groups, matched: true}
}

// RuleNone signals the handler recognized the shape but rejected this
// particular value (e.g. a numeric capture outside a Constraint).
func RuleNone() RuleHandlerResult {
	return RuleHandlerResult{}
}

// Rule is either static (Key non-empty, Entries holds the literal
// declarations) or dynamic (Pattern non-nil, Handler produces the
// declarations at match time). Modeled as one struct with optional
// fields rather than an interface, mirroring tokenctl's preference for
// plain data over inheritance.
type Rule struct {
	Key     string
	Entries DeclList

	Pattern *regexp.Regexp
	Handler RuleHandlerFunc

	Meta Meta
}

// StaticRule builds a static key -> declarations rule.
func StaticRule(key string, entries DeclList, meta Meta) Rule {
	return Rule{Key: key, Entries: entries, Meta: meta}
}

// DynamicRule builds a regex-matched rule.
func DynamicRule(pattern *regexp.Regexp, handler RuleHandlerFunc, meta Meta) Rule {
	return Rule{Pattern: pattern, Handler: handler, Meta: meta}
}

// MatchRule resolves a residual selector (post-variant-stripping) into
// parsed or raw utilities. Static rules are tried first via the
// precomputed map; dynamic rules are then scanned from the
// highest-registered index down, so a later-registered rule overrides
// an earlier one with an overlapping pattern. internal allows shortcut
// sub-token expansion to reach rules flagged Meta.Internal, which are
// otherwise invisible to direct user input.
func MatchRule(cfg *ResolvedConfig, raw, residual string, handlers []VariantHandler, ctx *RuleContext, internal bool) ([]ParsedUtility, []RawUtility, bool) {
	if idx, ok := cfg.RulesStaticMap[residual]; ok {
		rule := cfg.Rules[idx]
		if !rule.Meta.Internal || internal {
			return []ParsedUtility{{
				Order:           idx,
				Raw:             raw,
				Entries:         rule.Entries,
				Meta:            rule.Meta,
				VariantHandlers: handlers,
			}}, nil, true
		}
	}

	for i := cfg.RulesSize; i >= 0; i-- {
		rule := cfg.Rules[i]
		if rule.Pattern == nil || rule.Handler == nil {
			continue
		}
		if rule.Meta.Internal && !internal {
			continue
		}
		m := rule.Pattern.FindStringSubmatch(residual)
		if m == nil {
			continue
		}
		res := rule.Handler(m, ctx)
		if !res.matched {
			continue
		}
		if res.raw != nil {
			return nil, []RawUtility{{Order: i, Body: *res.raw, Meta: rule.Meta}}, true
		}
		var parsed []ParsedUtility
		for _, group := range res.groups {
			filtered := filterEmpty(group)
			if !hasRealDecl(filtered) {
				continue
			}
			parsed = append(parsed, ParsedUtility{
				Order:           i,
				Raw:             raw,
				Entries:         filtered,
				Meta:            rule.Meta,
				VariantHandlers: handlers,
			})
		}
		if len(parsed) == 0 {
			// Matched the pattern but produced nothing usable: keep
			// scanning for an earlier-registered rule that does.
			continue
		}
		return parsed, nil, true
	}

	return nil, nil, false
}

func filterEmpty(entries DeclList) DeclList {
	out := make(DeclList, 0, len(entries))
	for _, d := range entries {
		if d.Property == NoMergeMarker || d.Value != "" {
			out = append(out, d)
		}
	}
	return out
}

func hasRealDecl(entries DeclList) bool {
	for _, d := range entries {
		if d.Property != NoMergeMarker {
			return true
		}
	}
	return false
}
