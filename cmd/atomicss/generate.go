package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dmoose/atomicss/pkg/engine"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [directory...]",
	Short: "Generate CSS for every utility token found in source files",
	Long: `Walk one or more directories, extract candidate utility tokens from
every matching source file, and emit the CSS those tokens require.

Examples:
  atomicss generate ./src
  atomicss generate ./src ./pages --scope=#app
  atomicss generate ./src --safelist=btn,btn-primary`,
	RunE: runGenerate,
}

var (
	genOutputDir  string
	genOutputFile string
	genScope      string
	genSafelist   []string
)

func init() {
	generateCmd.Flags().StringVarP(&genOutputDir, "output", "o", "dist", "Output directory")
	generateCmd.Flags().StringVar(&genOutputFile, "filename", "atomic.css", "Output CSS filename")
	generateCmd.Flags().StringVar(&genScope, "scope", "", "CSS selector prefix applied to every generated rule")
	generateCmd.Flags().StringSliceVar(&genSafelist, "safelist", nil, "Comma-separated tokens to always add to the candidate set")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dirs := args
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	fmt.Printf("Scanning %v...\n", dirs)

	code, err := collectSource(dirs)
	if err != nil {
		return err
	}

	g := buildGenerator(genSafelist)
	result, err := g.Generate(context.Background(), code, engine.GenerateOptions{ID: dirs[0], Scope: genScope})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(genOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	outfile := filepath.Join(genOutputDir, genOutputFile)
	if err := os.WriteFile(outfile, []byte(result.CSS), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	names := make([]string, 0, len(result.Matched))
	for raw := range result.Matched {
		names = append(names, raw)
	}
	sort.Strings(names)

	fmt.Printf("Matched %d token(s) across %d layer(s)\n", len(names), len(result.LayerCSS))
	fmt.Printf("Generated %s\n", outfile)
	return nil
}
