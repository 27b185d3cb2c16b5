// Package theme gives the engine's opaque "theme" value (see the rule
// and variant handler signatures) a concrete shape: a flattened
// path -> value store with {path.to.value} reference interpolation and
// a small expression language (calc/darken/lighten/contrast/scale).
// Adapted from tokenctl's pkg/tokens/resolver.go and
// pkg/tokens/expressions.go, which do the same thing for design tokens
// loaded from JSON instead of for CSS-rule handler lookups.
package theme

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Theme is a read-through, cached store of named values. Construct one
// with New and share it across a single Generate call; it is not safe
// for concurrent writes but concurrent Resolve/Eval reads are fine once
// the store is fully populated, since resolution only ever reads Values
// and writes to a private cache guarded internally.
type Theme struct {
	Values map[string]string
	mu     sync.Mutex
	cache  map[string]string
}

var wholeRefRegex = regexp.MustCompile(`^\{([a-zA-Z0-9_.\-]+)\}$`)
var refRegex = regexp.MustCompile(`\{([a-zA-Z0-9_.\-]+)\}`)

// New builds a Theme over a flat path -> raw-value map. Raw values may
// themselves contain {other.path} references or expression forms; those
// are resolved lazily and cached on first use.
func New(values map[string]string) *Theme {
	return &Theme{Values: values, cache: make(map[string]string)}
}

// Set assigns a raw value at path, invalidating any cached resolution
// for it. Intended for preset setup, not for use mid-generation.
func (t *Theme) Set(path, rawValue string) {
	t.Values[path] = rawValue
	delete(t.cache, path)
}

// Paths returns the store's keys in sorted order.
func (t *Theme) Paths() []string {
	paths := make([]string, 0, len(t.Values))
	for p := range t.Values {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Resolve returns the fully-resolved value at path, following references
// and evaluating expressions, with cycle detection.
func (t *Theme) Resolve(path string) (string, error) {
	return t.resolvePath(path, nil)
}

func (t *Theme) resolvePath(path string, stack []string) (string, error) {
	t.mu.Lock()
	v, ok := t.cache[path]
	t.mu.Unlock()
	if ok {
		return v, nil
	}
	if slices.Contains(stack, path) {
		return "", fmt.Errorf("circular theme reference: %s -> %s", strings.Join(stack, " -> "), path)
	}
	raw, ok := t.Values[path]
	if !ok {
		return "", fmt.Errorf("unknown theme path %q", path)
	}
	resolved, err := t.resolveValue(raw, append(stack, path))
	if err != nil {
		return "", err
	}
	t.mu.Lock()
	t.cache[path] = resolved
	t.mu.Unlock()
	return resolved, nil
}

func (t *Theme) resolveValue(raw string, stack []string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if m := wholeRefRegex.FindStringSubmatch(trimmed); m != nil {
		return t.resolvePath(m[1], stack)
	}
	interpolated, err := t.interpolate(raw, stack)
	if err != nil {
		return "", err
	}
	return evaluate(interpolated)
}

// interpolate replaces every {path} substring in raw with its resolved
// value, recursing through resolvePath so nested references and cycles
// are caught the same way a whole-value reference is.
func (t *Theme) interpolate(raw string, stack []string) (string, error) {
	var firstErr error
	result := refRegex.ReplaceAllStringFunc(raw, func(m string) string {
		if firstErr != nil {
			return m
		}
		path := refRegex.FindStringSubmatch(m)[1]
		v, err := t.resolvePath(path, stack)
		if err != nil {
			firstErr = err
			return m
		}
		return v
	})
	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Eval resolves an ad hoc expression string (not stored in the theme)
// against this store — e.g. a rule handler computing
// "calc({spacing.4} * 2)" inline rather than via a named path.
func (t *Theme) Eval(expr string) (string, error) {
	interpolated, err := t.interpolate(expr, nil)
	if err != nil {
		return "", err
	}
	return evaluate(interpolated)
}
