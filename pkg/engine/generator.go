package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Generator is the engine's long-lived runtime: a resolved config, a
// token cache, and the parent-ordering weights variants register as
// they're matched. A single Generator is reused across many Generate
// calls, the way a build-tool integration would hold one instance for
// the lifetime of a dev server.
type Generator struct {
	mu  sync.RWMutex
	cfg *ResolvedConfig

	cache *Cache

	parentMu     sync.Mutex
	parentOrders map[string]int

	warner *warner
}

// NewGenerator builds a Generator around a resolved configuration.
func NewGenerator(cfg *ResolvedConfig) *Generator {
	return &Generator{
		cfg:          cfg,
		cache:        newCache(),
		parentOrders: make(map[string]int),
		warner:       newWarner(),
	}
}

// SetConfig swaps in a new resolved configuration and invalidates the
// token cache, since cached results were computed against the old
// rules/variants/shortcuts.
func (g *Generator) SetConfig(cfg *ResolvedConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cfg = cfg
	g.cache.Reset()
}

func (g *Generator) config() *ResolvedConfig {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cfg
}

func (g *Generator) recordParentOrder(name string, order int) {
	g.parentMu.Lock()
	defer g.parentMu.Unlock()
	// Last write wins if two variants disagree on the same parent's
	// weight — kept as the upstream behavior rather than erroring, since
	// a real config never registers conflicting weights for one parent.
	g.parentOrders[name] = order
}

func (g *Generator) snapshotParentOrders() map[string]int {
	g.parentMu.Lock()
	defer g.parentMu.Unlock()
	out := make(map[string]int, len(g.parentOrders))
	for k, v := range g.parentOrders {
		out[k] = v
	}
	return out
}

// ParseToken runs the full single-token pipeline: blocklist short
// circuit, variant matching, rule matching, and — if no rule matches —
// shortcut expansion. Results are memoized in the token cache keyed by
// the raw string, including unmatched tokens (matched=false), so a
// repeated miss costs a map lookup instead of a re-run.
func (g *Generator) ParseToken(raw string) ([]*StringifiedUtility, bool, error) {
	if g.cache.isBlocked(raw) {
		return nil, false, nil
	}
	if e, ok := g.cache.get(raw); ok {
		return e.utilities, e.matched, nil
	}

	cfg := g.config()
	if cfg.IsBlocked(raw) {
		g.cache.markBlocked(raw)
		return nil, false, nil
	}

	current := raw
	for _, p := range cfg.Preprocess {
		current = p(current)
	}
	if cfg.IsBlocked(current) {
		g.cache.markBlocked(raw)
		return nil, false, nil
	}

	ctx := &RuleContext{Raw: raw, Theme: cfg.Theme, generator: g}

	mv, err := MatchVariants(cfg, raw, current, ctx)
	if err != nil {
		return nil, false, err
	}

	if len(mv.Handlers) == 0 && cfg.IsBlocked(mv.Residual) {
		g.cache.markBlocked(raw)
		return nil, false, nil
	}

	if parsed, raws, ok := MatchRule(cfg, raw, mv.Residual, mv.Handlers, ctx, false); ok {
		var out []*StringifiedUtility
		for _, p := range parsed {
			if su := StringifyParsed(p, cfg); su != nil {
				out = append(out, su)
			}
		}
		for _, r := range raws {
			if su := StringifyRaw(r); su != nil {
				out = append(out, su)
			}
		}
		g.cache.put(raw, cacheEntry{utilities: out, matched: len(out) > 0})
		return out, len(out) > 0, nil
	}

	if expanded, scMeta, ok := ExpandShortcut(cfg, mv.Residual, ctx, maxShortcutDepth); ok {
		out, err := StringifyShortcut(cfg, raw, mv.Handlers, expanded, scMeta, ctx, func(token string) {
			g.warner.warnOnce("shortcut sub-token %q (expanded from %q) matched no rule", token, raw)
		})
		if err != nil {
			return nil, false, err
		}
		g.cache.put(raw, cacheEntry{utilities: out, matched: len(out) > 0})
		return out, len(out) > 0, nil
	}

	// UnmatchedToken: silent per design, unlike the shortcut sub-token
	// case above.
	g.cache.put(raw, cacheEntry{matched: false})
	return nil, false, nil
}

// GenerateOptions configures a single Generate call. Preflights and the
// safelist are additive by default, so — unlike the spec's
// preflights=true/safelist=true defaults — the Go zero value of this
// struct already means "include both"; set the Skip* fields to opt out
// instead of having to opt in.
type GenerateOptions struct {
	// ID identifies the source file for extractor diagnostics.
	ID string
	// Scope, when non-empty, is prefixed onto every non-raw selector
	// (or substituted for ScopePlaceholder where a variant used it).
	Scope string
	// SkipPreflights omits preflight blocks from the result.
	SkipPreflights bool
	// SkipSafelist excludes the configured safelist from this call's
	// candidate set, so only tokens actually found in code are matched.
	SkipSafelist bool
	// Minify suppresses the per-layer comment header and strips the
	// newlines between rules.
	Minify bool
}

// GenerateResult is the output of one Generate call.
type GenerateResult struct {
	CSS      string
	LayerCSS map[string]string
	Matched  map[string]struct{}
}

// Generate extracts candidate tokens from code, parses each one
// concurrently (fan out across goroutines, join with a WaitGroup — the
// engine's core loop is otherwise synchronous and CPU-bound, so this is
// the one place true parallelism pays for itself), assembles the
// resulting utilities into layered CSS, and prepends preflight blocks.
func (g *Generator) Generate(ctx context.Context, code string, opts GenerateOptions) (*GenerateResult, error) {
	cfg := g.config()

	candidates, err := RunExtractors(ctx, cfg, code, opts.ID)
	if err != nil {
		return nil, err
	}
	if !opts.SkipSafelist {
		for _, s := range cfg.Safelist {
			candidates[s] = struct{}{}
		}
	}

	type outcome struct {
		raw       string
		utilities []*StringifiedUtility
		matched   bool
		err       error
	}

	outcomes := make([]outcome, len(candidates))
	raws := make([]string, 0, len(candidates))
	for raw := range candidates {
		raws = append(raws, raw)
	}

	var wg sync.WaitGroup
	for i, raw := range raws {
		wg.Add(1)
		go func(i int, raw string) {
			defer wg.Done()
			utilities, matched, err := g.ParseToken(raw)
			outcomes[i] = outcome{raw: raw, utilities: utilities, matched: matched, err: err}
		}(i, raw)
	}
	wg.Wait()

	matched := make(map[string]struct{})
	var all []*StringifiedUtility
	for _, o := range outcomes {
		if o.err != nil {
			return nil, o.err
		}
		if o.matched {
			matched[o.raw] = struct{}{}
			all = append(all, o.utilities...)
		}
	}

	layerSet := map[string]bool{}
	for _, u := range all {
		l := u.Meta.Layer
		if l == "" {
			l = "default"
		}
		layerSet[l] = true
	}
	for name := range cfg.Layers {
		layerSet[name] = true
	}

	var preflightCSS map[string]string
	if !opts.SkipPreflights {
		var err error
		preflightCSS, err = g.renderPreflights(cfg)
		if err != nil {
			return nil, err
		}
		for l := range preflightCSS {
			layerSet[l] = true
		}
	}

	layerNames := make([]string, 0, len(layerSet))
	for l := range layerSet {
		layerNames = append(layerNames, l)
	}
	layerNames = cfg.SortLayers(layerNames)

	parentOrders := g.snapshotParentOrders()

	layerCSS := make(map[string]string)
	var sb strings.Builder

	for _, l := range layerNames {
		body := preflightCSS[l] + Assemble(parentOrders, all, l, opts.Scope, cfg.MergeSelectors)
		if body == "" {
			continue
		}
		if opts.Minify {
			body = strings.ReplaceAll(body, "\n", "")
		}
		if !opts.Minify {
			fmt.Fprintf(&sb, "/* layer: %s */\n", l)
		}
		layerCSS[l] = body
		sb.WriteString(body)
	}

	return &GenerateResult{CSS: sb.String(), LayerCSS: layerCSS, Matched: matched}, nil
}

// renderPreflights runs each preflight's GetCSS and groups the results by
// Preflight.Layer (defaulting to "default", the same fallback the assembler
// uses for utilities with no explicit layer), so each block lands in the
// layer it claims rather than one lump prepended ahead of the whole sheet.
func (g *Generator) renderPreflights(cfg *ResolvedConfig) (map[string]string, error) {
	out := make(map[string]string)
	for _, pf := range cfg.Preflights {
		l := pf.Layer
		if l == "" {
			l = "default"
		}
		rctx := &RuleContext{Theme: cfg.Theme, generator: g}
		css, err := pf.GetCSS(rctx)
		if err != nil {
			return nil, err
		}
		if css == "" {
			continue
		}
		if !strings.HasSuffix(css, "\n") {
			css += "\n"
		}
		out[l] += css
	}
	return out, nil
}
