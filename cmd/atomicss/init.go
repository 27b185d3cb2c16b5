package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Scaffold a starter project wired against the default preset",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

const scaffoldIndexHTML = `<!doctype html>
<html>
<head><link rel="stylesheet" href="dist/atomic.css"></head>
<body class="stack p-4">
  <button class="btn btn-primary btn-md hover:opacity-90">Primary</button>
  <div class="card card-bordered card-normal">
    <span class="badge badge-success">Shipped</span>
  </div>
</body>
</html>
`

const scaffoldGoDoc = `This directory is wired against the default atomicss preset. Run:

  atomicss generate .

from here to regenerate dist/atomic.css after editing index.html.
`

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	fmt.Printf("Scaffolding a starter project in %s...\n", dir)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	files := map[string]string{
		"index.html": scaffoldIndexHTML,
		"README.md":  scaffoldGoDoc,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	fmt.Println("Done. Run `atomicss generate` from this directory to build dist/atomic.css.")
	return nil
}
