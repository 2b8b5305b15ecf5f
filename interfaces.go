// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shade

import (
	"fmt"
	"math"

	"github.com/gogpu/shade/format"
	"github.com/gogpu/shade/spirv"
)

// extractInterfaces builds the input and output sets of ep. A nil ep means
// every module-scope Input and Output variable.
func extractInterfaces(m *spirv.Module, ep *spirv.EntryPoint) (*InterfaceSet, *InterfaceSet, error) {
	inputs, err := m.InputVariables(ep)
	if err != nil {
		return nil, nil, wrapError(ErrParseFailure, "input variables", err)
	}
	outputs, err := m.OutputVariables(ep)
	if err != nil {
		return nil, nil, wrapError(ErrParseFailure, "output variables", err)
	}

	in, err := interfaceSet(inputs, "input")
	if err != nil {
		return nil, nil, err
	}
	out, err := interfaceSet(outputs, "output")
	if err != nil {
		return nil, nil, err
	}
	return in, out, nil
}

func interfaceSet(vars []spirv.InterfaceVariable, direction string) (*InterfaceSet, error) {
	set := &InterfaceSet{Variables: make([]InterfaceVariable, 0, len(vars))}
	for _, v := range vars {
		if v.BuiltIn {
			continue
		}
		if !v.HasLocation {
			if v.Block {
				return nil, NewError(ErrParseFailure, fmt.Sprintf("%s interface block %s has no Location decoration; member locations are not supported", direction, describeVariable(v)))
			}
			return nil, NewError(ErrParseFailure, fmt.Sprintf("%s %s has no Location decoration", direction, describeVariable(v)))
		}
		if v.Location == math.MaxUint32 {
			return nil, NewError(ErrParseFailure, fmt.Sprintf("%s %s has location %d", direction, describeVariable(v), v.Location))
		}
		if v.Block {
			return nil, NewError(ErrUnknownFormat, fmt.Sprintf("%s interface block %s has no vertex format", direction, describeVariable(v)))
		}
		f, err := format.FormatOf(v.Numeric)
		if err != nil {
			return nil, wrapError(ErrUnknownFormat, fmt.Sprintf("%s %s", direction, describeVariable(v)), err)
		}
		set.Variables = append(set.Variables, InterfaceVariable{
			Location: Range{Start: v.Location, End: v.Location + 1},
			Format:   f,
			Name:     v.Name,
		})
	}
	return set, nil
}

func describeVariable(v spirv.InterfaceVariable) string {
	if v.Name != "" {
		return fmt.Sprintf("variable %q", v.Name)
	}
	return fmt.Sprintf("variable %%%d", v.ID)
}
