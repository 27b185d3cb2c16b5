package engine

import "testing"

func su(order int, selector, body, parent string) *StringifiedUtility {
	return &StringifiedUtility{Order: order, Selector: selector, Body: body, Parent: parent}
}

func TestAssembleSortsUtilitiesByOrderThenSelector(t *testing.T) {
	units := []*StringifiedUtility{
		su(2, ".b", "color:red;", ""),
		su(1, ".a", "color:blue;", ""),
		su(1, ".c", "color:green;", ""),
	}
	css := Assemble(nil, units, "default", "", false)
	want := ".a{color:blue;}\n.c{color:green;}\n.b{color:red;}\n"
	if css != want {
		t.Errorf("css = %q, want %q", css, want)
	}
}

func TestAssembleFiltersByLayer(t *testing.T) {
	units := []*StringifiedUtility{
		su(1, ".a", "color:blue;", ""),
		{Order: 2, Selector: ".b", Body: "color:red;", Meta: Meta{Layer: "shortcuts"}},
	}
	css := Assemble(nil, units, "default", "", false)
	if css != ".a{color:blue;}\n" {
		t.Errorf("css = %q, want only the default-layer utility", css)
	}
}

func TestAssembleGroupsByParentAndOrdersByWeight(t *testing.T) {
	units := []*StringifiedUtility{
		{Order: 1, Selector: ".sm", Body: "color:blue;", Parent: "@media (min-width: 640px)"},
		{Order: 1, Selector: ".base", Body: "color:red;", Parent: ""},
	}
	parentOrders := map[string]int{"@media (min-width: 640px)": 1}
	css := Assemble(parentOrders, units, "default", "", false)
	want := ".base{color:red;}\n@media (min-width: 640px){\n.sm{color:blue;}\n}\n"
	if css != want {
		t.Errorf("css = %q, want %q", css, want)
	}
}

func TestMergeSelectorGroupsMergesIdenticalBodies(t *testing.T) {
	units := []renderUnit{
		{selectors: []string{".m-2"}, body: "margin:0.5rem;"},
		{selectors: []string{".btn"}, body: "margin:0.5rem;"},
	}
	out := mergeSelectorGroups(units)
	if len(out) != 1 {
		t.Fatalf("out = %+v, want one merged unit", out)
	}
	if len(out[0].selectors) != 2 || out[0].selectors[0] != ".m-2" || out[0].selectors[1] != ".btn" {
		t.Errorf("selectors = %v, want [.m-2 .btn] in original order", out[0].selectors)
	}
}

func TestMergeSelectorGroupsSkipsNoMergeUnits(t *testing.T) {
	units := []renderUnit{
		{selectors: []string{".m-2"}, body: "margin:0.5rem;", noMerge: true},
		{selectors: []string{".btn"}, body: "margin:0.5rem;"},
	}
	out := mergeSelectorGroups(units)
	if len(out) != 2 {
		t.Fatalf("out = %+v, want both units left unmerged since one is noMerge", out)
	}
}

func TestMergeSelectorGroupsLeavesDistinctBodiesUnmerged(t *testing.T) {
	units := []renderUnit{
		{selectors: []string{".m-2"}, body: "margin:0.5rem;"},
		{selectors: []string{".p-2"}, body: "padding:0.5rem;"},
	}
	out := mergeSelectorGroups(units)
	if len(out) != 2 {
		t.Fatalf("out = %+v, want two distinct-body units left as-is", out)
	}
}

func TestDedupeSelectorsDropsRepeats(t *testing.T) {
	got := dedupeSelectors([]string{".a", ".b", ".a", ".c", ".b"})
	want := []string{".a", ".b", ".c"}
	if len(got) != len(want) {
		t.Fatalf("got = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestRenderLayerDedupesMergedSelectors covers spec.md §4.6 step 6: two
// units that merge into the same body and already share a selector (e.g.
// two rules producing identical selector+body+parent) must not render
// that selector twice.
func TestRenderLayerDedupesMergedSelectors(t *testing.T) {
	list := []*StringifiedUtility{
		su(1, ".a", "color:red;", ""),
		su(1, ".a", "color:red;", ""),
	}
	css := renderLayer(list, "", true)
	if css != ".a{color:red;}\n" {
		t.Errorf("css = %q, want deduped selector list", css)
	}
}

func TestApplyScopeNoPlaceholderPrefixesWholeSelector(t *testing.T) {
	got := applyScope(".m-2", ".app")
	if got != ".app .m-2" {
		t.Errorf("applyScope = %q, want %q", got, ".app .m-2")
	}
}

func TestApplyScopeNoPlaceholderNoScopeIsUnchanged(t *testing.T) {
	got := applyScope(".m-2", "")
	if got != ".m-2" {
		t.Errorf("applyScope = %q, want unchanged selector", got)
	}
}
