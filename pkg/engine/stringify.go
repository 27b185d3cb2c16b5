package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// StringifyParsed folds a parsed utility's variant handlers into a final
// selector/body/parent/layer and renders the body. Returns nil if the
// body rendered empty (e.g. every declaration was filtered out).
func StringifyParsed(pu ParsedUtility, cfg *ResolvedConfig) *StringifiedUtility {
	selector, body, parent, layer := applyVariants(pu.Raw, pu.VariantHandlers, pu.Entries, cfg)
	bodyText := renderBody(body)
	if bodyText == "" {
		return nil
	}
	if layer == "" {
		layer = pu.Meta.Layer
	}
	meta := pu.Meta
	meta.Layer = layer
	return &StringifiedUtility{Order: pu.Order, Selector: selector, Body: bodyText, Parent: parent, Meta: meta}
}

// StringifyRaw wraps a raw utility's literal body verbatim.
func StringifyRaw(ru RawUtility) *StringifiedUtility {
	if ru.Body == "" {
		return nil
	}
	return &StringifiedUtility{Order: ru.Order, Selector: "", Body: ru.Body, Parent: "", Meta: ru.Meta}
}

// applyVariants folds a token's accumulated variant handlers, in
// ascending Order, into the selector (starting from its escaped raw
// form), the declaration body, the at-rule parent, and the layer — each
// field independently reduced across the handler list, then passed
// through any configured postprocess hooks.
func applyVariants(raw string, handlers []VariantHandler, entries DeclList, cfg *ResolvedConfig) (string, DeclList, string, string) {
	sorted := make([]VariantHandler, len(handlers))
	copy(sorted, handlers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	body := entries
	for _, h := range sorted {
		if h.Body != nil {
			body = h.Body(body)
		}
	}

	selector := toEscapedSelector(raw)
	for _, h := range sorted {
		if h.Selector != nil {
			selector = h.Selector(selector, body)
		}
	}

	var parent, layer string
	for _, h := range sorted {
		if h.Parent != nil {
			parent = h.Parent.Name
		}
		if h.Layer != "" {
			layer = h.Layer
		}
	}

	for _, pp := range cfg.Postprocess {
		in := &PostprocessInput{Selector: selector, Entries: body, Parent: parent, Layer: layer}
		pp(in)
		selector, body, parent, layer = in.Selector, in.Entries, in.Parent, in.Layer
	}

	return selector, body, parent, layer
}

func hasNoMergeMarker(entries DeclList) bool {
	for _, d := range entries {
		if d.Property == NoMergeMarker {
			return true
		}
	}
	return false
}

func renderBody(entries DeclList) string {
	var b strings.Builder
	for _, d := range entries {
		if d.Property == NoMergeMarker || d.Value == "" {
			continue
		}
		fmt.Fprintf(&b, "%s:%s;", d.Property, d.Value)
	}
	return b.String()
}

// attrSelectorRegex recognizes an already attribute-shaped raw token
// (e.g. `[data-foo="bar"]`) so it is escaped as an attribute selector
// rather than turned into a class selector.
var attrSelectorRegex = regexp.MustCompile(`^\[[^\]=~"]+~?="[^"]*"\]$`)

func toEscapedSelector(raw string) string {
	if attrSelectorRegex.MatchString(raw) {
		return escapeCSSIdentPreserveSyntax(raw)
	}
	return "." + escapeCSSIdent(raw)
}

// escapeCSSIdentPreserveSyntax escapes only the identifier-ish runs
// inside an attribute selector, leaving the bracket/quote/operator
// syntax untouched.
func escapeCSSIdentPreserveSyntax(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch r {
		case '[', ']', '=', '~', '"', '\'':
			b.WriteRune(r)
		default:
			if isCSSIdentSafe(r) {
				b.WriteRune(r)
			} else {
				b.WriteByte('\\')
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func escapeCSSIdent(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isCSSIdentSafe(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isCSSIdentSafe(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r > 127
}
