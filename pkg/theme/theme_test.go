package theme

import "testing"

func TestResolveLiteral(t *testing.T) {
	th := New(map[string]string{"color.primary": "#3b82f6"})
	v, err := th.Resolve("color.primary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "#3b82f6" {
		t.Fatalf("got %q", v)
	}
}

func TestResolveWholeReference(t *testing.T) {
	th := New(map[string]string{
		"color.primary": "#3b82f6",
		"color.brand":   "{color.primary}",
	})
	v, err := th.Resolve("color.brand")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "#3b82f6" {
		t.Fatalf("got %q", v)
	}
}

func TestResolveInterpolation(t *testing.T) {
	th := New(map[string]string{
		"spacing.unit": "0.25rem",
		"spacing.4":    "calc({spacing.unit} * 4)",
	})
	v, err := th.Resolve("spacing.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "1rem" {
		t.Fatalf("got %q", v)
	}
}

func TestResolveCycleDetected(t *testing.T) {
	th := New(map[string]string{
		"a": "{b}",
		"b": "{a}",
	})
	if _, err := th.Resolve("a"); err == nil {
		t.Fatal("expected circular reference error")
	}
}

func TestResolveUnknownPath(t *testing.T) {
	th := New(map[string]string{})
	if _, err := th.Resolve("missing"); err == nil {
		t.Fatal("expected error for unknown path")
	}
}

func TestEvalDarkenLighten(t *testing.T) {
	th := New(map[string]string{"color.base": "#808080"})
	darker, err := th.Eval("darken({color.base}, 20%)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if darker == "" {
		t.Fatal("expected a non-empty color")
	}
	lighter, err := th.Eval("lighten({color.base}, 20%)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lighter == darker {
		t.Fatal("expected lighten and darken to diverge")
	}
}

func TestEvalContrast(t *testing.T) {
	th := New(map[string]string{"color.dark": "#111111"})
	v, err := th.Eval("contrast({color.dark})")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "#ffffff" {
		t.Fatalf("expected white content color on a near-black background, got %q", v)
	}
}

func TestNumericScale(t *testing.T) {
	th := New(map[string]string{"spacing.unit": "0.25rem"})
	NumericScale(th, "spacing", "spacing.unit", []float64{0, 1, 4})
	if v, _ := th.Resolve("spacing.0"); v != "0px" {
		t.Fatalf("spacing.0 = %q", v)
	}
	if v, _ := th.Resolve("spacing.1"); v != "0.25rem" {
		t.Fatalf("spacing.1 = %q", v)
	}
	if v, _ := th.Resolve("spacing.4"); v != "1rem" {
		t.Fatalf("spacing.4 = %q", v)
	}
}
