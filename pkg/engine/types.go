// Package engine implements the on-demand atomic-CSS generator: token
// extraction, variant matching, rule matching, shortcut expansion,
// stringification, and sheet assembly.
package engine

// Declaration is a single CSS property/value pair. Declarations are kept
// as an ordered slice rather than a map so that iteration order is
// always deterministic — Go map iteration order is randomized, which
// would break the byte-stable output the sheet assembler guarantees.
type Declaration struct {
	Property string
	Value    string
}

// DeclList is an ordered list of declarations.
type DeclList []Declaration

// NoMergeMarker is the reserved declaration property that forces an
// entry to be emitted on its own during shortcut bucket splitting
// instead of being merged with siblings that share a selector/parent.
// The "--un-" prefix keeps it out of the way of real custom properties.
const NoMergeMarker = "--un-no-merge"

// ScopePlaceholder marks where the scope string is substituted into a
// variant-rewritten selector.
const ScopePlaceholder = " $$ "

// Meta carries per-rule/shortcut metadata.
type Meta struct {
	Layer    string
	Internal bool
	NoMerge  bool
}

// ParentRef is a variant's at-rule wrapper, optionally carrying an
// ordering weight for the sheet assembler's parent sort.
type ParentRef struct {
	Name     string
	Order    int
	HasOrder bool
}

// VariantHandler is the record a variant contributes once it matches.
type VariantHandler struct {
	Matcher  string
	Body     func(DeclList) DeclList
	Selector func(selector string, entries DeclList) string
	Parent   *ParentRef
	Layer    string
	Order    int
}

// ParsedUtility is produced by the rule matcher: declarations plus the
// variant handlers still to be folded in by the stringifier.
type ParsedUtility struct {
	Order           int
	Raw             string
	Entries         DeclList
	Meta            Meta
	VariantHandlers []VariantHandler
}

// RawUtility is a literal CSS body with no selector or variants.
type RawUtility struct {
	Order int
	Body  string
	Meta  Meta
}

// StringifiedUtility is the terminal form ready for sheet assembly. An
// empty Selector means the body is emitted verbatim at the top level.
type StringifiedUtility struct {
	Order    int
	Selector string
	Body     string
	Parent   string
	Meta     Meta
}

// Preflight is a layer-associated block of static CSS emitted before
// generated rules.
type Preflight struct {
	Layer  string
	GetCSS func(ctx *RuleContext) (string, error)
}
