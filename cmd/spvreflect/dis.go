// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/shade/spirv"
)

var disCmd = &cobra.Command{
	Use:   "dis <file.spv>",
	Short: "Disassemble a SPIR-V file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDis,
}

func runDis(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read shader: %w", err)
	}
	m, err := spirv.DecodeBytes(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	if err := spirv.Disassemble(w, m); err != nil {
		return err
	}
	return w.Flush()
}
