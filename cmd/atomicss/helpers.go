package main

import (
	"fmt"
	"strings"

	"github.com/dmoose/atomicss/pkg/engine"
	"github.com/dmoose/atomicss/pkg/preset"
)

// buildGenerator resolves the default-preset configuration against an
// optional safelist and returns a Generator over it; walking the source
// directories is collectSource's job.
// There is deliberately no user-config file format here: a project that
// wants to extend the preset does so in Go, by building its own
// engine.UserConfig and calling engine.Resolve(preset.Default(), cfg)
// directly, the same way tokenctl has no config-file layer of its own
// either — composition happens in code.
func buildGenerator(safelist []string) *engine.Generator {
	user := engine.UserConfig{Safelist: safelist}
	cfg := engine.Resolve(preset.Default(), user)
	return engine.NewGenerator(cfg)
}

// collectSource walks every directory argument (defaulting to ".") with
// a SourceWalker and concatenates file contents, one newline after
// each file, so a single Generate call sees every candidate token across the
// whole tree in one pass — matching the engine's one-call-per-build
// contract rather than one call per file.
func collectSource(dirs []string) (string, error) {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	walker := engine.NewSourceWalker()
	var sb strings.Builder
	for _, dir := range dirs {
		files, err := walker.Walk(dir)
		if err != nil {
			return "", fmt.Errorf("failed to walk %s: %w", dir, err)
		}
		for _, f := range files {
			sb.WriteString(f.Content)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
