package engine

import "github.com/dmoose/atomicss/pkg/theme"

// RuleContext is threaded through variant and rule handlers. It carries
// the raw token, the theme store, and a back-reference to the Generator
// so handlers can record a parent's ordering weight.
type RuleContext struct {
	Raw       string
	Theme     *theme.Theme
	generator *Generator
}

func (c *RuleContext) registerParentOrder(ref *ParentRef) {
	if c.generator == nil || ref == nil || !ref.HasOrder {
		return
	}
	c.generator.recordParentOrder(ref.Name, ref.Order)
}

// VariantMatchResult is what a Variant's Match function returns.
type VariantMatchResult struct {
	ok      bool
	handler VariantHandler
}

// NoVariantMatch signals the variant did not recognize the input.
func NoVariantMatch() VariantMatchResult { return VariantMatchResult{} }

// VariantMatched wraps a fully-built handler.
func VariantMatched(h VariantHandler) VariantMatchResult {
	return VariantMatchResult{ok: true, handler: h}
}

// VariantMatchedString is the common-case shorthand: the variant only
// strips its own prefix and leaves the remainder for further matching,
// contributing no body/selector/parent transform of its own.
func VariantMatchedString(remainder string) VariantMatchResult {
	return VariantMatchResult{ok: true, handler: VariantHandler{Matcher: remainder}}
}

// Variant is a capability record rather than an interface: the engine
// only calls Match and reads whichever VariantHandler fields come back
// non-nil, tolerating the rest being absent. MultiPass allows the same
// variant to match more than once against a single token.
type Variant struct {
	Name      string
	MultiPass bool
	Match     func(current string, ctx *RuleContext) VariantMatchResult
}

// MatchVariantsResult is the outcome of peeling every applicable variant
// prefix off a token.
type MatchVariantsResult struct {
	Raw      string
	Residual string
	Handlers []VariantHandler
}

// MatchVariants repeatedly scans cfg.Variants in configured order,
// applying the first one that matches the current residual, until a
// full pass finds no match. Each hit restarts the scan from the top so
// that variant order reflects priority, not first-seen order. preprocessed
// seeds the initial residual (defaults to raw when there is no
// per-token preprocess chain); raw itself is only ever used as the
// cache key and as toEscapedSelector's input.
func MatchVariants(cfg *ResolvedConfig, raw, preprocessed string, ctx *RuleContext) (MatchVariantsResult, error) {
	processed := preprocessed
	used := make(map[int]bool)
	var handlers []VariantHandler

	for {
		hit := false
		for i, v := range cfg.Variants {
			if used[i] && !v.MultiPass {
				continue
			}
			res := v.Match(processed, ctx)
			if !res.ok {
				continue
			}
			processed = res.handler.Matcher
			ctx.registerParentOrder(res.handler.Parent)
			handlers = append(handlers, res.handler)
			used[i] = true
			hit = true
			if len(handlers) > maxVariantHandlers {
				return MatchVariantsResult{}, &VariantOverflowError{Raw: raw}
			}
			break
		}
		if !hit {
			break
		}
	}

	return MatchVariantsResult{Raw: raw, Residual: processed, Handlers: handlers}, nil
}
