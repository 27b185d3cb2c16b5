package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time version info, injected via ldflags:
//
//	go build -ldflags "-X main.version=... -X main.commit=... -X main.buildTime=..."
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "atomicss",
	Short: "atomicss: on-demand atomic CSS generator",
	Long: `atomicss scans source files for utility-class-shaped tokens and
generates only the CSS those tokens require, the way an on-demand
atomic CSS engine does — no fixed utility sheet, no unused rules.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		c := commit
		if len(c) > 7 {
			c = c[:7]
		}
		fmt.Printf("atomicss version %s (%s) built %s\n", version, c, buildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
