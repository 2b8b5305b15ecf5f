// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shade

import (
	"fmt"
	"slices"

	"github.com/gogpu/shade/format"
	"github.com/gogpu/shade/layout"
	"github.com/gogpu/shade/spirv"
)

// Range is a half-open range of interface locations.
type Range struct {
	Start uint32
	End   uint32
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Len returns the number of locations in r.
func (r Range) Len() uint32 {
	return r.End - r.Start
}

// InterfaceVariable is a user-defined input or output of a shader stage.
type InterfaceVariable struct {
	Location Range
	Format   format.Format

	// Name is empty when the binary carries no debug name.
	Name string
}

// InterfaceSet is an ordered set of interface variables, in the order the
// module lists them.
type InterfaceSet struct {
	Variables []InterfaceVariable
}

// Elements returns a copy of the variables.
func (s *InterfaceSet) Elements() []InterfaceVariable {
	if s == nil {
		return nil
	}
	return slices.Clone(s.Variables)
}

// Len returns the number of variables.
func (s *InterfaceSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Variables)
}

// Entry is the reflected description of one shader entry point.
type Entry struct {
	// Input and Output are nil for compute entries.
	Input  *InterfaceSet
	Output *InterfaceSet

	Layout *layout.Layout

	// EntryPoint and Stage identify the reflected entry point. EntryPoint is
	// empty, and Stage meaningless, for modules that declare none.
	EntryPoint string
	Stage      spirv.ExecutionModel

	// WorkgroupSize is the LocalSize execution mode of a compute entry point.
	WorkgroupSize [3]uint32
}
