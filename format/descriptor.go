// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package format

import "fmt"

// ImageDimensions is the dimensionality of an image resource.
type ImageDimensions uint8

const (
	Dim1D ImageDimensions = iota
	Dim2D
	Dim3D
	DimCube
)

func (d ImageDimensions) String() string {
	switch d {
	case Dim1D:
		return "1D"
	case Dim2D:
		return "2D"
	case Dim3D:
		return "3D"
	case DimCube:
		return "Cube"
	default:
		return fmt.Sprintf("ImageDimensions(%d)", uint8(d))
	}
}

// ImageDesc describes the image behind a sampled, storage or combined
// image descriptor.
type ImageDesc struct {
	// Sampled is false for storage images.
	Sampled      bool
	Dimensions   ImageDimensions
	Format       Format // Undefined unless the shader declares one
	Multisampled bool
	Arrayed      bool
}

func (d ImageDesc) String() string {
	s := d.Dimensions.String()
	if d.Arrayed {
		s += " array"
	}
	if d.Multisampled {
		s += " ms"
	}
	if d.Format != Undefined {
		s += " " + d.Format.String()
	}
	return s
}

// DescriptorKind is the canonical kind of a descriptor. The variants are
// Sampler, CombinedImageSampler, Image, TexelBuffer, InputAttachment and
// Buffer.
type DescriptorKind interface {
	fmt.Stringer
	descriptorKind()
}

// Sampler is a standalone sampler.
type Sampler struct{}

// CombinedImageSampler is an image and sampler bound together.
type CombinedImageSampler struct {
	Image ImageDesc
}

// Image is a sampled image without a sampler, or a storage image.
type Image struct {
	Image ImageDesc
}

// TexelBuffer is a buffer accessed through a format.
type TexelBuffer struct {
	Storage bool
	Format  Format
}

// InputAttachment is a framebuffer attachment read in a subpass.
type InputAttachment struct {
	Multisampled bool
	Arrayed      bool
}

// Buffer is a uniform or storage buffer.
type Buffer struct {
	Storage bool
	Dynamic bool
}

func (Sampler) descriptorKind()              {}
func (CombinedImageSampler) descriptorKind() {}
func (Image) descriptorKind()                {}
func (TexelBuffer) descriptorKind()          {}
func (InputAttachment) descriptorKind()      {}
func (Buffer) descriptorKind()               {}

func (Sampler) String() string { return "Sampler" }

func (k CombinedImageSampler) String() string {
	return "CombinedImageSampler(" + k.Image.String() + ")"
}

func (k Image) String() string {
	if k.Image.Sampled {
		return "SampledImage(" + k.Image.String() + ")"
	}
	return "StorageImage(" + k.Image.String() + ")"
}

func (k TexelBuffer) String() string {
	kind := "UniformTexelBuffer"
	if k.Storage {
		kind = "StorageTexelBuffer"
	}
	return kind + "(" + k.Format.String() + ")"
}

func (k InputAttachment) String() string {
	s := "InputAttachment"
	if k.Arrayed {
		s += "(array)"
	}
	if k.Multisampled {
		s += "(ms)"
	}
	return s
}

func (k Buffer) String() string {
	s := "UniformBuffer"
	if k.Storage {
		s = "StorageBuffer"
	}
	if k.Dynamic {
		s += "Dynamic"
	}
	return s
}
