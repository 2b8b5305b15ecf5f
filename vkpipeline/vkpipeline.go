// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vkpipeline converts reflected shader layouts into the Vulkan
// structures used to create descriptor set layouts, pipeline layouts and
// vertex input state.
//
// The functions only fill in plain structs; no Vulkan instance or device is
// needed to call them.
package vkpipeline

import (
	"fmt"

	vk "github.com/goki/vulkan"

	"github.com/gogpu/shade"
	"github.com/gogpu/shade/format"
	"github.com/gogpu/shade/layout"
)

// DescriptorType returns the Vulkan descriptor type for kind.
func DescriptorType(kind format.DescriptorKind) (vk.DescriptorType, error) {
	switch k := kind.(type) {
	case format.Sampler:
		return vk.DescriptorTypeSampler, nil
	case format.CombinedImageSampler:
		return vk.DescriptorTypeCombinedImageSampler, nil
	case format.Image:
		if k.Image.Sampled {
			return vk.DescriptorTypeSampledImage, nil
		}
		return vk.DescriptorTypeStorageImage, nil
	case format.TexelBuffer:
		if k.Storage {
			return vk.DescriptorTypeStorageTexelBuffer, nil
		}
		return vk.DescriptorTypeUniformTexelBuffer, nil
	case format.InputAttachment:
		return vk.DescriptorTypeInputAttachment, nil
	case format.Buffer:
		switch {
		case k.Storage && k.Dynamic:
			return vk.DescriptorTypeStorageBufferDynamic, nil
		case k.Storage:
			return vk.DescriptorTypeStorageBuffer, nil
		case k.Dynamic:
			return vk.DescriptorTypeUniformBufferDynamic, nil
		default:
			return vk.DescriptorTypeUniformBuffer, nil
		}
	}
	return 0, fmt.Errorf("vkpipeline: unsupported descriptor kind %v", kind)
}

// SetLayoutBindings returns the bindings of every descriptor set in l, keyed
// by set number and ordered by binding number.
func SetLayoutBindings(l *layout.Layout) (map[int][]vk.DescriptorSetLayoutBinding, error) {
	sets := make(map[int][]vk.DescriptorSetLayoutBinding, l.NumSets())
	for _, set := range l.Sets() {
		bindings := l.Bindings(set)
		out := make([]vk.DescriptorSetLayoutBinding, 0, len(bindings))
		for _, binding := range bindings {
			desc, _ := l.Descriptor(set, binding)
			typ, err := DescriptorType(desc.Kind)
			if err != nil {
				return nil, fmt.Errorf("set %d binding %d: %w", set, binding, err)
			}
			out = append(out, vk.DescriptorSetLayoutBinding{
				Binding:         uint32(binding),
				DescriptorType:  typ,
				DescriptorCount: desc.ArrayCount,
				StageFlags:      vk.ShaderStageFlags(desc.Stages),
			})
		}
		sets[set] = out
	}
	return sets, nil
}

// PushConstantRanges returns the push-constant ranges of l in order.
func PushConstantRanges(l *layout.Layout) []vk.PushConstantRange {
	n := l.NumPushConstantRanges()
	if n == 0 {
		return nil
	}
	out := make([]vk.PushConstantRange, 0, n)
	for i := range n {
		r, _ := l.PushConstantRange(i)
		out = append(out, vk.PushConstantRange{
			StageFlags: vk.ShaderStageFlags(r.Stages),
			Offset:     r.Offset,
			Size:       r.Size,
		})
	}
	return out
}

// VertexAttributes returns one attribute per variable in set, reading from a
// single interleaved vertex buffer at binding. Attributes are packed tightly
// in interface order. A matrix or array input is a single attribute at its
// base location, in the format of one column or element.
func VertexAttributes(set *shade.InterfaceSet, binding uint32) []vk.VertexInputAttributeDescription {
	var out []vk.VertexInputAttributeDescription
	var offset uint32
	for _, v := range set.Elements() {
		out = append(out, vk.VertexInputAttributeDescription{
			Location: v.Location.Start,
			Binding:  binding,
			Format:   vk.Format(v.Format),
			Offset:   offset,
		})
		offset += v.Format.Size()
	}
	return out
}

// VertexStride returns the size in bytes of one vertex laid out by
// VertexAttributes.
func VertexStride(set *shade.InterfaceSet) uint32 {
	var stride uint32
	for _, v := range set.Elements() {
		stride += v.Format.Size()
	}
	return stride
}
