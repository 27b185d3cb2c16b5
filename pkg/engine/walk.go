package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SourceFile is one file the walker yields: its path and contents,
// ready to feed straight into RunExtractors/Generate as code.
type SourceFile struct {
	Path    string
	Content string
}

// SourceWalker walks a directory tree collecting files whose extension
// is in Extensions, skipping any directory named in SkipDirs. Adapted
// from tokenctl's pkg/tokens/loader.go Loader.LoadBase, which walks for
// *.tokens.json files and skips a themes/ directory the same way — here
// generalized to arbitrary source extensions and a configurable skip
// list, since the engine's Extractor Pipeline needs source text rather
// than design-token JSON.
type SourceWalker struct {
	Extensions []string
	SkipDirs   []string
}

// NewSourceWalker builds a walker with the extensions a typical
// front-end project's markup/templates/scripts use, skipping the
// directories that are never worth scanning.
func NewSourceWalker(extensions ...string) *SourceWalker {
	if len(extensions) == 0 {
		extensions = []string{".html", ".htm", ".js", ".jsx", ".ts", ".tsx", ".vue", ".svelte", ".go"}
	}
	return &SourceWalker{
		Extensions: extensions,
		SkipDirs:   []string{".git", "node_modules", "dist", "build", "vendor"},
	}
}

func (w *SourceWalker) shouldSkipDir(name string) bool {
	for _, skip := range w.SkipDirs {
		if name == skip {
			return true
		}
	}
	return false
}

func (w *SourceWalker) matchesExtension(path string) bool {
	for _, ext := range w.Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Walk collects every matching file under root, in lexical path order
// (filepath.WalkDir's own guarantee), and returns their contents.
func (w *SourceWalker) Walk(root string) ([]SourceFile, error) {
	var files []SourceFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if w.shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !w.matchesExtension(path) {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		files = append(files, SourceFile{Path: path, Content: string(content)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
