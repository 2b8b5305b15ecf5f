// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"strings"

	"github.com/gogpu/shade/spirv"
)

// ShaderStages is a set of pipeline stages. Bit values equal the
// VkShaderStageFlagBits values.
type ShaderStages uint32

const (
	ShaderStageVertex                 ShaderStages = 0x01
	ShaderStageTessellationControl    ShaderStages = 0x02
	ShaderStageTessellationEvaluation ShaderStages = 0x04
	ShaderStageGeometry               ShaderStages = 0x08
	ShaderStageFragment               ShaderStages = 0x10
	ShaderStageCompute                ShaderStages = 0x20

	ShaderStagesNone        ShaderStages = 0
	ShaderStagesAllGraphics ShaderStages = 0x1F
	ShaderStagesAll         ShaderStages = 0x3F
)

var stageNames = []struct {
	bit  ShaderStages
	name string
}{
	{ShaderStageVertex, "Vertex"},
	{ShaderStageTessellationControl, "TessellationControl"},
	{ShaderStageTessellationEvaluation, "TessellationEvaluation"},
	{ShaderStageGeometry, "Geometry"},
	{ShaderStageFragment, "Fragment"},
	{ShaderStageCompute, "Compute"},
}

// String joins the stage names with '|'.
func (s ShaderStages) String() string {
	if s == ShaderStagesNone {
		return "None"
	}
	var sb strings.Builder
	for _, n := range stageNames {
		if s&n.bit == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(n.name)
	}
	return sb.String()
}

// Contains reports whether every stage in other is in s.
func (s ShaderStages) Contains(other ShaderStages) bool {
	return s&other == other
}

// StagesOf returns the stage an execution model runs in, or
// ShaderStagesNone for models with no pipeline stage.
func StagesOf(model spirv.ExecutionModel) ShaderStages {
	switch model {
	case spirv.ExecutionModelVertex:
		return ShaderStageVertex
	case spirv.ExecutionModelTessellationControl:
		return ShaderStageTessellationControl
	case spirv.ExecutionModelTessellationEvaluation:
		return ShaderStageTessellationEvaluation
	case spirv.ExecutionModelGeometry:
		return ShaderStageGeometry
	case spirv.ExecutionModelFragment:
		return ShaderStageFragment
	case spirv.ExecutionModelGLCompute:
		return ShaderStageCompute
	default:
		return ShaderStagesNone
	}
}

// Stages are the masks a Layout reports for every descriptor and every
// push-constant range.
type Stages struct {
	Descriptors   ShaderStages
	PushConstants ShaderStages
}

// DefaultStages reports descriptors as fragment-only and push constants as
// visible to every stage.
func DefaultStages() Stages {
	return Stages{
		Descriptors:   ShaderStageFragment,
		PushConstants: ShaderStagesAll,
	}
}

// EntryPointStages reports every descriptor and push-constant range as
// visible to the stage of the given execution model only.
func EntryPointStages(model spirv.ExecutionModel) Stages {
	s := StagesOf(model)
	return Stages{Descriptors: s, PushConstants: s}
}
