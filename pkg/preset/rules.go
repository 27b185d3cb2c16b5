package preset

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dmoose/atomicss/pkg/engine"
	"github.com/dmoose/atomicss/pkg/theme"
)

// spacingProps maps a spacing utility's prefix to the CSS properties it
// sets — two for the axis shorthands (mx/my/px/py), one for every
// other form. Grounded on the margin/padding
// shorthand table tokenctl's pkg/generators/css_utils.go expands for
// its own utility output.
var spacingProps = map[string][]string{
	"m": {"margin"}, "mx": {"margin-left", "margin-right"}, "my": {"margin-top", "margin-bottom"},
	"mt": {"margin-top"}, "mr": {"margin-right"}, "mb": {"margin-bottom"}, "ml": {"margin-left"},
	"p": {"padding"}, "px": {"padding-left", "padding-right"}, "py": {"padding-top", "padding-bottom"},
	"pt": {"padding-top"}, "pr": {"padding-right"}, "pb": {"padding-bottom"}, "pl": {"padding-left"},
	"gap": {"gap"}, "gap-x": {"column-gap"}, "gap-y": {"row-gap"},
	"w": {"width"}, "h": {"height"},
}

var spacingPattern = regexp.MustCompile(`^(-?)(m|mx|my|mt|mr|mb|ml|p|px|py|pt|pr|pb|pl|gap|gap-x|gap-y|w|h)-([0-9.]+)$`)

// spacingRule resolves a "-?<prefix>-<step>" token against the theme's
// numeric spacing scale, negating the resolved dimension for a leading
// "-" the way a negative-margin utility does.
func spacingRule() engine.Rule {
	return engine.DynamicRule(spacingPattern, func(m []string, ctx *engine.RuleContext) engine.RuleHandlerResult {
		neg, prefix, step := m[1], m[2], m[3]
		props, ok := spacingProps[prefix]
		if !ok {
			return engine.RuleNone()
		}
		value, err := ctx.Theme.Resolve("spacing." + step)
		if err != nil {
			return engine.RuleNone()
		}
		if neg == "-" && value != "0px" {
			value = fmt.Sprintf("calc(%s * -1)", value)
		}
		entries := make(engine.DeclList, 0, len(props))
		for _, p := range props {
			entries = append(entries, engine.Declaration{Property: p, Value: value})
		}
		return engine.RuleDecls(entries)
	}, engine.Meta{Layer: "utilities"})
}

// colorProps maps a color utility's prefix to the CSS property it sets.
var colorProps = map[string]string{"bg": "background-color", "text": "color", "border": "border-color", "fill": "fill", "stroke": "stroke"}

var colorPattern = regexp.MustCompile(`^(bg|text|border|fill|stroke)-([a-z0-9-]+?)(?:/(\d{1,3}))?$`)

// colorRule resolves "<prefix>-<name>" (optionally "/<opacity>") against
// the theme's color palette, using color-mix to apply the opacity
// modifier since the palette stores OKLCH strings rather than a
// color.Color the engine could blend itself. "<name>-content" resolves
// the contrast-paired entry DefaultTheme derives for every palette
// color, the same WCAG-first-then-fallback logic as tokenctl's
// pkg/colors/content.go ContentColor.
func colorRule() engine.Rule {
	return engine.DynamicRule(colorPattern, func(m []string, ctx *engine.RuleContext) engine.RuleHandlerResult {
		prop, ok := colorProps[m[1]]
		if !ok {
			return engine.RuleNone()
		}
		name := m[2]
		path := "color." + name
		if strings.HasSuffix(name, "-content") {
			path = "color." + strings.TrimSuffix(name, "-content") + ".content"
		}
		value, err := ctx.Theme.Resolve(path)
		if err != nil {
			return engine.RuleNone()
		}
		if m[3] != "" {
			pct, err := strconv.ParseFloat(m[3], 64)
			if err != nil || engine.Percent.Check(pct) != nil {
				return engine.RuleNone()
			}
			value = fmt.Sprintf("color-mix(in oklch, %s %s%%, transparent)", value, m[3])
		}
		return engine.RuleDecls(engine.DeclList{{Property: prop, Value: value}})
	}, engine.Meta{Layer: "utilities"})
}

var radiusPattern = regexp.MustCompile(`^rounded(?:-([a-z]+))?$`)

func radiusRule() engine.Rule {
	return engine.DynamicRule(radiusPattern, func(m []string, ctx *engine.RuleContext) engine.RuleHandlerResult {
		size := m[1]
		if size == "" {
			size = "md"
		}
		path := "radius." + size
		if size == "full" {
			path = "radius.full"
		}
		value, err := ctx.Theme.Resolve(path)
		if err != nil {
			return engine.RuleNone()
		}
		return engine.RuleDecls(engine.DeclList{{Property: "border-radius", Value: value}})
	}, engine.Meta{Layer: "utilities"})
}

var borderWidthPattern = regexp.MustCompile(`^border(?:-(\d+))?$`)

func borderWidthRule() engine.Rule {
	return engine.DynamicRule(borderWidthPattern, func(m []string, _ *engine.RuleContext) engine.RuleHandlerResult {
		width := "1"
		if m[1] != "" {
			width = m[1]
		}
		return engine.RuleDecls(engine.DeclList{
			{Property: "border-width", Value: width + "px"},
			{Property: "border-style", Value: "solid"},
		})
	}, engine.Meta{Layer: "utilities"})
}

var opacityPattern = regexp.MustCompile(`^opacity-(\d{1,3})$`)

func opacityRule() engine.Rule {
	return engine.DynamicRule(opacityPattern, func(m []string, _ *engine.RuleContext) engine.RuleHandlerResult {
		pct, err := strconv.ParseFloat(m[1], 64)
		if err != nil || engine.Percent.Check(pct) != nil {
			return engine.RuleNone()
		}
		return engine.RuleDecls(engine.DeclList{{Property: "opacity", Value: strconv.FormatFloat(pct/100, 'f', -1, 64)}})
	}, engine.Meta{Layer: "utilities"})
}

// arbitraryPattern matches "<prop-prefix>-[<value>]" tokens, e.g.
// "w-[37px]" or "z-[60]", the escape hatch every atomic-CSS
// engine needs for values outside its scale.
var arbitraryPattern = regexp.MustCompile(`^([a-z-]+)-\[([^\]]+)\]$`)

var arbitraryProps = map[string]string{
	"w": "width", "h": "height", "min-w": "min-width", "min-h": "min-height",
	"max-w": "max-width", "max-h": "max-height", "top": "top", "left": "left",
	"right": "right", "bottom": "bottom", "z": "z-index",
}

func arbitraryValueRule() engine.Rule {
	return engine.DynamicRule(arbitraryPattern, func(m []string, _ *engine.RuleContext) engine.RuleHandlerResult {
		prop, ok := arbitraryProps[m[1]]
		if !ok {
			return engine.RuleNone()
		}
		return engine.RuleDecls(engine.DeclList{{Property: prop, Value: m[2]}})
	}, engine.Meta{Layer: "utilities"})
}

// staticDisplayRules is the fixed set of keyword-only utilities: no
// regex, no theme lookup, just a literal key -> declarations mapping
// registered into the static rule map for an O(1) lookup.
func staticDisplayRules() []engine.Rule {
	meta := engine.Meta{Layer: "utilities"}
	entries := map[string]string{
		"block": "block", "inline-block": "inline-block", "inline": "inline",
		"flex": "flex", "inline-flex": "inline-flex", "grid": "grid", "inline-grid": "inline-grid",
		"hidden": "none", "contents": "contents",
	}
	rules := make([]engine.Rule, 0, len(entries)+20)
	for key, value := range entries {
		rules = append(rules, engine.StaticRule(key, engine.DeclList{{Property: "display", Value: value}}, meta))
	}

	flexDirection := map[string]string{"flex-row": "row", "flex-row-reverse": "row-reverse", "flex-col": "column", "flex-col-reverse": "column-reverse"}
	for key, value := range flexDirection {
		rules = append(rules, engine.StaticRule(key, engine.DeclList{{Property: "flex-direction", Value: value}}, meta))
	}

	flexWrap := map[string]string{"flex-wrap": "wrap", "flex-nowrap": "nowrap", "flex-wrap-reverse": "wrap-reverse"}
	for key, value := range flexWrap {
		rules = append(rules, engine.StaticRule(key, engine.DeclList{{Property: "flex-wrap", Value: value}}, meta))
	}

	alignItems := map[string]string{"items-start": "flex-start", "items-end": "flex-end", "items-center": "center", "items-baseline": "baseline", "items-stretch": "stretch"}
	for key, value := range alignItems {
		rules = append(rules, engine.StaticRule(key, engine.DeclList{{Property: "align-items", Value: value}}, meta))
	}

	justify := map[string]string{"justify-start": "flex-start", "justify-end": "flex-end", "justify-center": "center", "justify-between": "space-between", "justify-around": "space-around", "justify-evenly": "space-evenly"}
	for key, value := range justify {
		rules = append(rules, engine.StaticRule(key, engine.DeclList{{Property: "justify-content", Value: value}}, meta))
	}

	rules = append(rules,
		engine.StaticRule("w-full", engine.DeclList{{Property: "width", Value: "100%"}}, meta),
		engine.StaticRule("h-full", engine.DeclList{{Property: "height", Value: "100%"}}, meta),
		engine.StaticRule("w-screen", engine.DeclList{{Property: "width", Value: "100vw"}}, meta),
		engine.StaticRule("h-screen", engine.DeclList{{Property: "height", Value: "100vh"}}, meta),
		engine.StaticRule("rounded-full", engine.DeclList{{Property: "border-radius", Value: "9999px"}}, meta),
		engine.StaticRule("border-none", engine.DeclList{{Property: "border-style", Value: "none"}}, meta),
		engine.StaticRule("shadow-sm", engine.DeclList{{Property: "box-shadow", Value: "0 1px 2px 0 rgb(0 0 0 / 0.05)"}}, meta),
		engine.StaticRule("shadow-md", engine.DeclList{{Property: "box-shadow", Value: "0 4px 6px -1px rgb(0 0 0 / 0.1)"}}, meta),
		engine.StaticRule("shadow-lg", engine.DeclList{{Property: "box-shadow", Value: "0 10px 15px -3px rgb(0 0 0 / 0.1)"}}, meta),
		engine.StaticRule("cursor-pointer", engine.DeclList{{Property: "cursor", Value: "pointer"}}, meta),
		engine.StaticRule("select-none", engine.DeclList{{Property: "user-select", Value: "none"}}, meta),
		engine.StaticRule("truncate", engine.DeclList{
			{Property: "overflow", Value: "hidden"},
			{Property: "text-overflow", Value: "ellipsis"},
			{Property: "white-space", Value: "nowrap"},
		}, meta),
	)
	return rules
}

// fontWeights backs the static font-<weight> rules.
var fontWeights = map[string]string{"thin": "100", "light": "300", "normal": "400", "medium": "500", "semibold": "600", "bold": "700", "black": "900"}

// textSizeRules builds the static text-<size> rules from the theme's
// typography scale. Registered as static keys so they are matched
// before the dynamic text-<color> rule, resolving the classic
// ambiguity between "text-lg" (a size) and "text-primary" (a color)
// without either rule needing to know about the other.
func textSizeRules(t *theme.Theme) []engine.Rule {
	meta := engine.Meta{Layer: "utilities"}
	var rules []engine.Rule
	for _, size := range []string{"xs", "sm", "md", "lg", "xl", "2xl", "3xl"} {
		value, err := t.Resolve("text." + size)
		if err != nil {
			continue
		}
		rules = append(rules, engine.StaticRule("text-"+size, engine.DeclList{{Property: "font-size", Value: value}}, meta))
	}
	for weight, value := range fontWeights {
		rules = append(rules, engine.StaticRule("font-"+weight, engine.DeclList{{Property: "font-weight", Value: value}}, meta))
	}
	return rules
}

// DefaultRules is the preset's full rule set: the static keyword tables
// first (purely cosmetic ordering, since static lookups never race
// against dynamic ones), then the dynamic families.
func DefaultRules(t *theme.Theme) []engine.Rule {
	rules := staticDisplayRules()
	rules = append(rules, textSizeRules(t)...)
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Key < rules[j].Key })
	rules = append(rules,
		spacingRule(),
		colorRule(),
		radiusRule(),
		borderWidthRule(),
		opacityRule(),
		arbitraryValueRule(),
	)
	return rules
}
