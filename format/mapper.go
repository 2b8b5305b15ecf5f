// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package format

import "github.com/gogpu/shade/spirv"

type numericKey struct {
	kind       spirv.ScalarKind
	width      uint32
	components uint32
}

// numericFormats is the closed table of interface types. Anything absent is
// rejected, including every bool and every struct.
var numericFormats = map[numericKey]Format{
	{spirv.ScalarKindFloat, 16, 1}: R16Sfloat,
	{spirv.ScalarKindFloat, 16, 2}: R16G16Sfloat,
	{spirv.ScalarKindFloat, 16, 3}: R16G16B16Sfloat,
	{spirv.ScalarKindFloat, 16, 4}: R16G16B16A16Sfloat,
	{spirv.ScalarKindFloat, 32, 1}: R32Sfloat,
	{spirv.ScalarKindFloat, 32, 2}: R32G32Sfloat,
	{spirv.ScalarKindFloat, 32, 3}: R32G32B32Sfloat,
	{spirv.ScalarKindFloat, 32, 4}: R32G32B32A32Sfloat,
	{spirv.ScalarKindFloat, 64, 1}: R64Sfloat,
	{spirv.ScalarKindFloat, 64, 2}: R64G64Sfloat,
	{spirv.ScalarKindFloat, 64, 3}: R64G64B64Sfloat,
	{spirv.ScalarKindFloat, 64, 4}: R64G64B64A64Sfloat,

	{spirv.ScalarKindSint, 8, 1}:  R8Sint,
	{spirv.ScalarKindSint, 8, 2}:  R8G8Sint,
	{spirv.ScalarKindSint, 8, 3}:  R8G8B8Sint,
	{spirv.ScalarKindSint, 8, 4}:  R8G8B8A8Sint,
	{spirv.ScalarKindSint, 16, 1}: R16Sint,
	{spirv.ScalarKindSint, 16, 2}: R16G16Sint,
	{spirv.ScalarKindSint, 16, 3}: R16G16B16Sint,
	{spirv.ScalarKindSint, 16, 4}: R16G16B16A16Sint,
	{spirv.ScalarKindSint, 32, 1}: R32Sint,
	{spirv.ScalarKindSint, 32, 2}: R32G32Sint,
	{spirv.ScalarKindSint, 32, 3}: R32G32B32Sint,
	{spirv.ScalarKindSint, 32, 4}: R32G32B32A32Sint,
	{spirv.ScalarKindSint, 64, 1}: R64Sint,
	{spirv.ScalarKindSint, 64, 2}: R64G64Sint,
	{spirv.ScalarKindSint, 64, 3}: R64G64B64Sint,
	{spirv.ScalarKindSint, 64, 4}: R64G64B64A64Sint,

	{spirv.ScalarKindUint, 8, 1}:  R8Uint,
	{spirv.ScalarKindUint, 8, 2}:  R8G8Uint,
	{spirv.ScalarKindUint, 8, 3}:  R8G8B8Uint,
	{spirv.ScalarKindUint, 8, 4}:  R8G8B8A8Uint,
	{spirv.ScalarKindUint, 16, 1}: R16Uint,
	{spirv.ScalarKindUint, 16, 2}: R16G16Uint,
	{spirv.ScalarKindUint, 16, 3}: R16G16B16Uint,
	{spirv.ScalarKindUint, 16, 4}: R16G16B16A16Uint,
	{spirv.ScalarKindUint, 32, 1}: R32Uint,
	{spirv.ScalarKindUint, 32, 2}: R32G32Uint,
	{spirv.ScalarKindUint, 32, 3}: R32G32B32Uint,
	{spirv.ScalarKindUint, 32, 4}: R32G32B32A32Uint,
	{spirv.ScalarKindUint, 64, 1}: R64Uint,
	{spirv.ScalarKindUint, 64, 2}: R64G64Uint,
	{spirv.ScalarKindUint, 64, 3}: R64G64B64Uint,
	{spirv.ScalarKindUint, 64, 4}: R64G64B64A64Uint,
}

// FormatOf returns the canonical format of an interface variable's numeric
// type. A matrix maps to the format of its column.
func FormatOf(n spirv.NumericTraits) (Format, error) {
	if f, ok := numericFormats[numericKey{n.Kind, n.Width, n.Components}]; ok {
		return f, nil
	}
	return Undefined, &UnknownFormatError{Numeric: n}
}

// imageFormats has one entry per SPIR-V image format code.
var imageFormats = [...]Format{
	spirv.ImageFormatUnknown:      Undefined,
	spirv.ImageFormatRgba32f:      R32G32B32A32Sfloat,
	spirv.ImageFormatRgba16f:      R16G16B16A16Sfloat,
	spirv.ImageFormatR32f:         R32Sfloat,
	spirv.ImageFormatRgba8:        R8G8B8A8Unorm,
	spirv.ImageFormatRgba8Snorm:   R8G8B8A8Snorm,
	spirv.ImageFormatRg32f:        R32G32Sfloat,
	spirv.ImageFormatRg16f:        R16G16Sfloat,
	spirv.ImageFormatR11fG11fB10f: B10G11R11UfloatPack32,
	spirv.ImageFormatR16f:         R16Sfloat,
	spirv.ImageFormatRgba16:       R16G16B16A16Unorm,
	spirv.ImageFormatRgb10A2:      A2B10G10R10UnormPack32,
	spirv.ImageFormatRg16:         R16G16Unorm,
	spirv.ImageFormatRg8:          R8G8Unorm,
	spirv.ImageFormatR16:          R16Unorm,
	spirv.ImageFormatR8:           R8Unorm,
	spirv.ImageFormatRgba16Snorm:  R16G16B16A16Snorm,
	spirv.ImageFormatRg16Snorm:    R16G16Snorm,
	spirv.ImageFormatRg8Snorm:     R8G8Snorm,
	spirv.ImageFormatR16Snorm:     R16Snorm,
	spirv.ImageFormatR8Snorm:      R8Snorm,
	spirv.ImageFormatRgba32i:      R32G32B32A32Sint,
	spirv.ImageFormatRgba16i:      R16G16B16A16Sint,
	spirv.ImageFormatRgba8i:       R8G8B8A8Sint,
	spirv.ImageFormatR32i:         R32Sint,
	spirv.ImageFormatRg32i:        R32G32Sint,
	spirv.ImageFormatRg16i:        R16G16Sint,
	spirv.ImageFormatRg8i:         R8G8Sint,
	spirv.ImageFormatR16i:         R16Sint,
	spirv.ImageFormatR8i:          R8Sint,
	spirv.ImageFormatRgba32ui:     R32G32B32A32Uint,
	spirv.ImageFormatRgba16ui:     R16G16B16A16Uint,
	spirv.ImageFormatRgba8ui:      R8G8B8A8Uint,
	spirv.ImageFormatR32ui:        R32Uint,
	spirv.ImageFormatRgb10a2ui:    A2B10G10R10UintPack32,
	spirv.ImageFormatRg32ui:       R32G32Uint,
	spirv.ImageFormatRg16ui:       R16G16Uint,
	spirv.ImageFormatRg8ui:        R8G8Uint,
	spirv.ImageFormatR16ui:        R16Uint,
	spirv.ImageFormatR8ui:         R8Uint,
	spirv.ImageFormatR64ui:        R64Uint,
	spirv.ImageFormatR64i:         R64Sint,
}

// ImageFormatOf returns the canonical format of an OpTypeImage format
// operand. ImageFormatUnknown maps to Undefined.
func ImageFormatOf(f spirv.ImageFormat) (Format, error) {
	if f < spirv.ImageFormat(len(imageFormats)) {
		return imageFormats[f], nil
	}
	return Undefined, &UnknownFormatError{ImageFormat: f, FromImage: true}
}

func imageDimensions(d spirv.Dim) (ImageDimensions, bool) {
	switch d {
	case spirv.Dim1D:
		return Dim1D, true
	case spirv.Dim2D:
		return Dim2D, true
	case spirv.Dim3D:
		return Dim3D, true
	case spirv.DimCube:
		return DimCube, true
	case spirv.DimRect, spirv.DimBuffer, spirv.DimSubpassData:
		return 0, false
	default:
		return 0, false
	}
}

func imageDesc(t spirv.DescriptorType, img spirv.ImageType, sampled bool) (ImageDesc, error) {
	dims, ok := imageDimensions(img.Dim)
	if !ok {
		return ImageDesc{}, &UnknownTypeError{Type: t, Reason: "image dimension " + img.Dim.String()}
	}
	f, err := ImageFormatOf(img.Format)
	if err != nil {
		return ImageDesc{}, err
	}
	return ImageDesc{
		Sampled:      sampled,
		Dimensions:   dims,
		Format:       f,
		Multisampled: img.Multisampled,
		Arrayed:      img.Arrayed,
	}, nil
}

// DescriptorKindOf returns the canonical kind of a descriptor. img carries
// the OpTypeImage operands for image-like descriptor types and is ignored
// otherwise.
func DescriptorKindOf(t spirv.DescriptorType, img spirv.ImageType) (DescriptorKind, error) {
	switch t {
	case spirv.DescriptorTypeSampler:
		return Sampler{}, nil

	case spirv.DescriptorTypeCombinedImageSampler:
		desc, err := imageDesc(t, img, true)
		if err != nil {
			return nil, err
		}
		return CombinedImageSampler{Image: desc}, nil

	case spirv.DescriptorTypeSampledImage, spirv.DescriptorTypeStorageImage:
		desc, err := imageDesc(t, img, t == spirv.DescriptorTypeSampledImage)
		if err != nil {
			return nil, err
		}
		return Image{Image: desc}, nil

	case spirv.DescriptorTypeUniformTexelBuffer, spirv.DescriptorTypeStorageTexelBuffer:
		f, err := ImageFormatOf(img.Format)
		if err != nil {
			return nil, err
		}
		return TexelBuffer{Storage: t == spirv.DescriptorTypeStorageTexelBuffer, Format: f}, nil

	case spirv.DescriptorTypeUniformBuffer:
		return Buffer{}, nil
	case spirv.DescriptorTypeStorageBuffer:
		return Buffer{Storage: true}, nil
	case spirv.DescriptorTypeUniformBufferDynamic:
		return Buffer{Dynamic: true}, nil
	case spirv.DescriptorTypeStorageBufferDynamic:
		return Buffer{Storage: true, Dynamic: true}, nil

	case spirv.DescriptorTypeInputAttachment:
		return InputAttachment{Multisampled: img.Multisampled, Arrayed: img.Arrayed}, nil

	case spirv.DescriptorTypeAccelerationStructure:
		return nil, &UnknownTypeError{Type: t, Reason: "acceleration structures have no descriptor kind"}

	default:
		return nil, &UnknownTypeError{Type: t}
	}
}
