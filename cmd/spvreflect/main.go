// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// spvreflect prints the pipeline layout and stage interface of compiled
// SPIR-V shaders.
//
// Usage:
//
//	spvreflect reflect [--compute] [--format text|json|msgpack] shader.spv...
//	spvreflect dis shader.spv
//	spvreflect manifest [shade.toml]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:           "spvreflect",
	Short:         "Reflect SPIR-V shaders into pipeline layouts",
	Long:          `spvreflect reads compiled SPIR-V modules and reports their descriptor sets, push constants and stage interface`,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: setupOutput,
}

var version = "0.1.0-dev"

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(reflectCmd)
	rootCmd.AddCommand(disCmd)
	rootCmd.AddCommand(manifestCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// setupOutput applies the persistent --color and --quiet flags.
func setupOutput(cmd *cobra.Command, _ []string) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	switch mode {
	case "auto":
		color.NoColor = !isTerminal(os.Stderr)
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("unknown color mode %q (want auto, on or off)", mode)
	}

	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

var (
	errorColor = color.New(color.FgRed, color.Bold)
	pathColor  = color.New(color.Bold)
)

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errorColor.Sprint("error:"), err)
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
