// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const defaultManifest = "shade.toml"

var manifestCmd = &cobra.Command{
	Use:   "manifest [flags] [shade.toml]",
	Short: "Reflect every shader listed in a TOML manifest",
	Long: `Reflect every shader listed in a TOML manifest.

The manifest lists one [[shader]] table per file:

  [[shader]]
  path = "shaders/blit.frag.spv"

  [[shader]]
  path = "shaders/cull.comp.spv"
  compute = true
  entry = "main"

Paths are relative to the manifest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runManifest,
}

func init() {
	addReflectFlags(manifestCmd)
}

type manifest struct {
	Shaders []manifestShader `toml:"shader"`
}

type manifestShader struct {
	Path    string `toml:"path"`
	Compute bool   `toml:"compute"`
	Entry   string `toml:"entry"`
}

// loadManifest reads the manifest at path and returns its shaders with
// paths resolved against the manifest's directory.
func loadManifest(path string) ([]shaderJob, error) {
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if len(m.Shaders) == 0 {
		return nil, fmt.Errorf("%s: no [[shader]] entries", path)
	}

	root := filepath.Dir(path)
	jobs := make([]shaderJob, 0, len(m.Shaders))
	for i, s := range m.Shaders {
		if s.Path == "" {
			return nil, fmt.Errorf("%s: shader %d has no path", path, i+1)
		}
		p := s.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		jobs = append(jobs, shaderJob{Path: p, Compute: s.Compute, Entry: s.Entry})
	}
	return jobs, nil
}

var errNoManifest = errors.New("no manifest given and no " + defaultManifest + " in the current directory")

func runManifest(cmd *cobra.Command, args []string) error {
	cfg, err := reflectConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	path := defaultManifest
	if len(args) == 1 {
		path = args[0]
	} else if !fileExists(path) {
		return errNoManifest
	}

	jobs, err := loadManifest(path)
	if err != nil {
		return err
	}
	return runJobs(cmd.Context(), cmd.OutOrStdout(), jobs, cfg)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
