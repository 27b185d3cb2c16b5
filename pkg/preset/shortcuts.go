package preset

import (
	"fmt"

	"github.com/dmoose/atomicss/pkg/engine"
)

// ComponentSpec describes a compound component in the same shape
// tokenctl's pkg/tokens/components.go ComponentDefinition does (a base
// class plus named variant/size/state buckets) — generalized here from
// a $type: "component" token definition into a compiler that emits
// plain engine.Shortcut values, since the engine has no first-class
// component concept of its own, only key -> expansion shortcuts.
type ComponentSpec struct {
	// Name is the shortcut family prefix, e.g. "btn".
	Name string
	// Base lists the utility tokens every variant of the component
	// shares.
	Base []string
	// Variants maps a variant name ("primary", "outline") to the
	// utility tokens it adds on top of Base.
	Variants map[string][]string
	// Sizes maps a size name ("sm", "lg") to the utility tokens it
	// adds on top of Base.
	Sizes map[string][]string
}

// Compile expands a ComponentSpec into one shortcut per (base, base+
// variant, base+size, base+variant+size) combination, mirroring the
// cross product tokenctl's component renderer produces when it resolves
// a ComponentDefinition's Variants and Sizes maps against its Base.
// Keys follow the "name", "name-variant", "name-size",
// "name-variant-size" convention.
func (c ComponentSpec) Compile() []engine.Shortcut {
	meta := engine.Meta{Layer: "shortcuts"}
	var shortcuts []engine.Shortcut

	shortcuts = append(shortcuts, engine.StaticShortcut(c.Name, engine.ExpansionList(c.Base), meta))

	for variantName, tokens := range c.Variants {
		key := fmt.Sprintf("%s-%s", c.Name, variantName)
		shortcuts = append(shortcuts, engine.StaticShortcut(key, engine.ExpansionList(append(append([]string{}, c.Base...), tokens...)), meta))
	}
	for sizeName, tokens := range c.Sizes {
		key := fmt.Sprintf("%s-%s", c.Name, sizeName)
		shortcuts = append(shortcuts, engine.StaticShortcut(key, engine.ExpansionList(append(append([]string{}, c.Base...), tokens...)), meta))
	}
	for variantName, vtokens := range c.Variants {
		for sizeName, stokens := range c.Sizes {
			key := fmt.Sprintf("%s-%s-%s", c.Name, variantName, sizeName)
			combined := append(append([]string{}, c.Base...), vtokens...)
			combined = append(combined, stokens...)
			shortcuts = append(shortcuts, engine.StaticShortcut(key, engine.ExpansionList(combined), meta))
		}
	}

	return shortcuts
}

// buttonSpec is the preset's flagship compound component: a base shape,
// four semantic color variants (each with its contrast-aware content
// color and a hover:bg-* entry of the same color), an outline variant,
// and a three-step size range.
var buttonSpec = ComponentSpec{
	Name: "btn",
	Base: []string{
		"inline-flex", "items-center", "justify-center", "rounded-md",
		"cursor-pointer", "select-none", "border-none",
	},
	Variants: map[string][]string{
		"primary":   {"bg-primary", "text-primary-content", "hover:bg-primary"},
		"secondary": {"bg-secondary", "text-secondary-content", "hover:bg-secondary"},
		"accent":    {"bg-accent", "text-accent-content", "hover:bg-accent"},
		"error":     {"bg-error", "text-error-content", "hover:bg-error"},
		"outline":   {"border-2", "border-primary", "text-primary"},
	},
	Sizes: map[string][]string{
		"sm": {"text-sm", "px-3", "py-1.5"},
		"md": {"text-md", "px-4", "py-2"},
		"lg": {"text-lg", "px-6", "py-3"},
	},
}

// cardSpec is a simpler compound component: one surface variant and one
// size axis, mainly to exercise the shortcut compiler against a second
// shape so buttonSpec's cross product isn't the only path tested.
var cardSpec = ComponentSpec{
	Name: "card",
	Base: []string{"rounded-lg", "shadow-md", "bg-base-100"},
	Variants: map[string][]string{
		"bordered": {"border", "border-base-300"},
	},
	Sizes: map[string][]string{
		"compact": {"p-2"},
		"normal":  {"p-4"},
	},
}

// badgeSpec compiles into a single-axis component (no size bucket),
// exercising Compile with an empty Sizes map.
var badgeSpec = ComponentSpec{
	Name: "badge",
	Base: []string{"inline-flex", "items-center", "rounded-full", "text-xs", "px-2", "py-0.5"},
	Variants: map[string][]string{
		"primary": {"bg-primary", "text-primary-content"},
		"success": {"bg-success", "text-success-content"},
		"warning": {"bg-warning", "text-warning-content"},
	},
	Sizes: map[string][]string{},
}

// DefaultShortcuts is the preset's shortcut set: the compiled components
// plus a handful of bare key -> expansion shortcuts exercising the
// nested variant-group syntax ("prefix:(a b c)") the shortcut expander
// rewrites before splitting on whitespace.
func DefaultShortcuts() []engine.Shortcut {
	meta := engine.Meta{Layer: "shortcuts"}
	var shortcuts []engine.Shortcut
	shortcuts = append(shortcuts, buttonSpec.Compile()...)
	shortcuts = append(shortcuts, cardSpec.Compile()...)
	shortcuts = append(shortcuts, badgeSpec.Compile()...)

	shortcuts = append(shortcuts,
		engine.StaticShortcut("center", engine.ExpansionString("flex items-center justify-center"), meta),
		engine.StaticShortcut("stack", engine.ExpansionString("flex flex-col gap-2"), meta),
		engine.StaticShortcut("link-muted", engine.ExpansionString("text-neutral hover:(text-primary cursor-pointer)"), meta),
	)
	return shortcuts
}
