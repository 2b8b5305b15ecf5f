// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package format

import (
	"fmt"

	"github.com/gogpu/shade/spirv"
)

// UnknownFormatError reports a numeric type or image format with no
// canonical format.
type UnknownFormatError struct {
	// Numeric is the rejected type when FromImage is false.
	Numeric spirv.NumericTraits

	// ImageFormat is the rejected OpTypeImage format when FromImage is true.
	ImageFormat spirv.ImageFormat
	FromImage   bool
}

// Error implements the error interface.
func (e *UnknownFormatError) Error() string {
	if e.FromImage {
		return fmt.Sprintf("format: no format for image format %v", e.ImageFormat)
	}
	return fmt.Sprintf("format: no format for %v", e.Numeric)
}

// UnknownTypeError reports a resource that has no canonical descriptor kind.
type UnknownTypeError struct {
	Type   spirv.DescriptorType
	Reason string
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("format: unsupported descriptor type %v", e.Type)
	}
	return fmt.Sprintf("format: unsupported descriptor type %v: %s", e.Type, e.Reason)
}
