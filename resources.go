// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shade

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"github.com/gogpu/shade/format"
	"github.com/gogpu/shade/layout"
	"github.com/gogpu/shade/spirv"
)

// extractResources collects the descriptor bindings and push-constant
// blocks of m. Stored stage masks come from stages.
func extractResources(m *spirv.Module, stages layout.Stages, deriveReadOnly bool) (*layout.Data, error) {
	bindings, err := m.DescriptorBindings()
	if err != nil {
		return nil, wrapError(ErrParseFailure, "descriptor bindings", err)
	}

	data := layout.NewData()
	for _, b := range bindings {
		kind, err := format.DescriptorKindOf(b.DescriptorType, b.Image)
		if err != nil {
			return nil, resourceError(b, err)
		}
		set, err := safecast.Conv[int](b.Set)
		if err != nil {
			return nil, wrapError(ErrParseFailure, fmt.Sprintf("descriptor set %d", b.Set), err)
		}
		binding, err := safecast.Conv[int](b.Binding)
		if err != nil {
			return nil, wrapError(ErrParseFailure, fmt.Sprintf("binding %d", b.Binding), err)
		}
		data.AddDescriptor(set, binding, layout.DescriptorDesc{
			Kind:       kind,
			ArrayCount: b.Count,
			Stages:     stages.Descriptors,
			ReadOnly:   readOnly(kind, b.NonWritable, deriveReadOnly),
		})
	}

	blocks, err := m.PushConstantBlocks()
	if err != nil {
		return nil, wrapError(ErrParseFailure, "push constants", err)
	}
	for _, pc := range blocks {
		data.AddPushConstantRange(layout.PushConstantRange{
			Offset: pc.Offset,
			Size:   pc.Size,
			Stages: stages.PushConstants,
		})
	}
	return data, nil
}

func resourceError(b spirv.DescriptorBinding, err error) *Error {
	where := fmt.Sprintf("set %d binding %d", b.Set, b.Binding)
	if b.Name != "" {
		where = fmt.Sprintf("%q (%s)", b.Name, where)
	}
	var fe *format.UnknownFormatError
	if errors.As(err, &fe) {
		return wrapError(ErrUnknownFormat, where, err)
	}
	return wrapError(ErrUnknownType, where, err)
}

// readOnly reports whether a descriptor is read-only. Without derive every
// descriptor is. With derive only writable kinds consult NonWritable.
func readOnly(kind format.DescriptorKind, nonWritable, derive bool) bool {
	if !derive {
		return true
	}
	switch k := kind.(type) {
	case format.Buffer:
		if k.Storage {
			return nonWritable
		}
	case format.Image:
		if !k.Image.Sampled {
			return nonWritable
		}
	case format.TexelBuffer:
		if k.Storage {
			return nonWritable
		}
	}
	return true
}
