// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package format defines the canonical pixel formats and descriptor kinds of
// a pipeline layout and the closed tables that map SPIR-V codes onto them.
//
// Format values equal the corresponding VkFormat values, so adapters for
// Vulkan bindings convert with a plain cast.
package format

import "fmt"

// Format is a canonical pixel or vertex-attribute format.
type Format uint32

// Formats reachable from SPIR-V interface types and image formats.
const (
	Undefined Format = 0

	R8Unorm       Format = 9
	R8Snorm       Format = 10
	R8Uint        Format = 13
	R8Sint        Format = 14
	R8G8Unorm     Format = 16
	R8G8Snorm     Format = 17
	R8G8Uint      Format = 20
	R8G8Sint      Format = 21
	R8G8B8Uint    Format = 27
	R8G8B8Sint    Format = 28
	R8G8B8A8Unorm Format = 37
	R8G8B8A8Snorm Format = 38
	R8G8B8A8Uint  Format = 41
	R8G8B8A8Sint  Format = 42

	A2B10G10R10UnormPack32 Format = 64
	A2B10G10R10UintPack32  Format = 68

	R16Unorm           Format = 70
	R16Snorm           Format = 71
	R16Uint            Format = 74
	R16Sint            Format = 75
	R16Sfloat          Format = 76
	R16G16Unorm        Format = 77
	R16G16Snorm        Format = 78
	R16G16Uint         Format = 81
	R16G16Sint         Format = 82
	R16G16Sfloat       Format = 83
	R16G16B16Uint      Format = 88
	R16G16B16Sint      Format = 89
	R16G16B16Sfloat    Format = 90
	R16G16B16A16Unorm  Format = 91
	R16G16B16A16Snorm  Format = 92
	R16G16B16A16Uint   Format = 95
	R16G16B16A16Sint   Format = 96
	R16G16B16A16Sfloat Format = 97

	R32Uint            Format = 98
	R32Sint            Format = 99
	R32Sfloat          Format = 100
	R32G32Uint         Format = 101
	R32G32Sint         Format = 102
	R32G32Sfloat       Format = 103
	R32G32B32Uint      Format = 104
	R32G32B32Sint      Format = 105
	R32G32B32Sfloat    Format = 106
	R32G32B32A32Uint   Format = 107
	R32G32B32A32Sint   Format = 108
	R32G32B32A32Sfloat Format = 109

	R64Uint            Format = 110
	R64Sint            Format = 111
	R64Sfloat          Format = 112
	R64G64Uint         Format = 113
	R64G64Sint         Format = 114
	R64G64Sfloat       Format = 115
	R64G64B64Uint      Format = 116
	R64G64B64Sint      Format = 117
	R64G64B64Sfloat    Format = 118
	R64G64B64A64Uint   Format = 119
	R64G64B64A64Sint   Format = 120
	R64G64B64A64Sfloat Format = 121

	B10G11R11UfloatPack32 Format = 122
)

type formatInfo struct {
	name string
	size uint32 // bytes per element
}

var formatInfos = map[Format]formatInfo{
	Undefined: {"Undefined", 0},

	R8Unorm: {"R8Unorm", 1}, R8Snorm: {"R8Snorm", 1},
	R8Uint: {"R8Uint", 1}, R8Sint: {"R8Sint", 1},
	R8G8Unorm: {"R8G8Unorm", 2}, R8G8Snorm: {"R8G8Snorm", 2},
	R8G8Uint: {"R8G8Uint", 2}, R8G8Sint: {"R8G8Sint", 2},
	R8G8B8Uint: {"R8G8B8Uint", 3}, R8G8B8Sint: {"R8G8B8Sint", 3},
	R8G8B8A8Unorm: {"R8G8B8A8Unorm", 4}, R8G8B8A8Snorm: {"R8G8B8A8Snorm", 4},
	R8G8B8A8Uint: {"R8G8B8A8Uint", 4}, R8G8B8A8Sint: {"R8G8B8A8Sint", 4},

	A2B10G10R10UnormPack32: {"A2B10G10R10UnormPack32", 4},
	A2B10G10R10UintPack32:  {"A2B10G10R10UintPack32", 4},

	R16Unorm: {"R16Unorm", 2}, R16Snorm: {"R16Snorm", 2},
	R16Uint: {"R16Uint", 2}, R16Sint: {"R16Sint", 2}, R16Sfloat: {"R16Sfloat", 2},
	R16G16Unorm: {"R16G16Unorm", 4}, R16G16Snorm: {"R16G16Snorm", 4},
	R16G16Uint: {"R16G16Uint", 4}, R16G16Sint: {"R16G16Sint", 4}, R16G16Sfloat: {"R16G16Sfloat", 4},
	R16G16B16Uint: {"R16G16B16Uint", 6}, R16G16B16Sint: {"R16G16B16Sint", 6},
	R16G16B16Sfloat: {"R16G16B16Sfloat", 6},
	R16G16B16A16Unorm: {"R16G16B16A16Unorm", 8}, R16G16B16A16Snorm: {"R16G16B16A16Snorm", 8},
	R16G16B16A16Uint: {"R16G16B16A16Uint", 8}, R16G16B16A16Sint: {"R16G16B16A16Sint", 8},
	R16G16B16A16Sfloat: {"R16G16B16A16Sfloat", 8},

	R32Uint: {"R32Uint", 4}, R32Sint: {"R32Sint", 4}, R32Sfloat: {"R32Sfloat", 4},
	R32G32Uint: {"R32G32Uint", 8}, R32G32Sint: {"R32G32Sint", 8}, R32G32Sfloat: {"R32G32Sfloat", 8},
	R32G32B32Uint: {"R32G32B32Uint", 12}, R32G32B32Sint: {"R32G32B32Sint", 12},
	R32G32B32Sfloat: {"R32G32B32Sfloat", 12},
	R32G32B32A32Uint: {"R32G32B32A32Uint", 16}, R32G32B32A32Sint: {"R32G32B32A32Sint", 16},
	R32G32B32A32Sfloat: {"R32G32B32A32Sfloat", 16},

	R64Uint: {"R64Uint", 8}, R64Sint: {"R64Sint", 8}, R64Sfloat: {"R64Sfloat", 8},
	R64G64Uint: {"R64G64Uint", 16}, R64G64Sint: {"R64G64Sint", 16}, R64G64Sfloat: {"R64G64Sfloat", 16},
	R64G64B64Uint: {"R64G64B64Uint", 24}, R64G64B64Sint: {"R64G64B64Sint", 24},
	R64G64B64Sfloat: {"R64G64B64Sfloat", 24},
	R64G64B64A64Uint: {"R64G64B64A64Uint", 32}, R64G64B64A64Sint: {"R64G64B64A64Sint", 32},
	R64G64B64A64Sfloat: {"R64G64B64A64Sfloat", 32},

	B10G11R11UfloatPack32: {"B10G11R11UfloatPack32", 4},
}

func (f Format) String() string {
	if info, ok := formatInfos[f]; ok {
		return info.name
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}

// Size returns the size of one element of f in bytes, or 0 for Undefined
// and formats this package does not know.
func (f Format) Size() uint32 {
	return formatInfos[f].size
}
