package engine

import (
	"regexp"
	"testing"
)

// TestIsBlockedEmptyRawIsAlwaysBlocked covers spec.md §4.7's blocklist
// check: raw is blocked if empty, regardless of what the blocklist itself
// contains (including an empty blocklist).
func TestIsBlockedEmptyRawIsAlwaysBlocked(t *testing.T) {
	cfg := Resolve(UserConfig{}, UserConfig{})
	if !cfg.IsBlocked("") {
		t.Error("expected empty raw to be blocked even with no blocklist entries")
	}
}

func TestIsBlockedExactMatch(t *testing.T) {
	cfg := Resolve(UserConfig{}, UserConfig{Blocklist: []BlockEntry{{Exact: "debug"}}})
	if !cfg.IsBlocked("debug") {
		t.Error("expected exact blocklist match to be blocked")
	}
	if cfg.IsBlocked("not-debug") {
		t.Error("expected non-matching raw to be unblocked")
	}
}

func TestIsBlockedPatternMatch(t *testing.T) {
	cfg := Resolve(UserConfig{}, UserConfig{Blocklist: []BlockEntry{{Pattern: regexp.MustCompile(`^hack-`)}}})
	if !cfg.IsBlocked("hack-123") {
		t.Error("expected pattern blocklist match to be blocked")
	}
	if cfg.IsBlocked("123-hack") {
		t.Error("expected non-matching raw to be unblocked")
	}
}
