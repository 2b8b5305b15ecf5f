// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shade reflects compiled SPIR-V shaders into the pipeline-layout
// model a pipeline builder consumes.
//
// Given the words of a SPIR-V module, Parse reports the entry point's
// user-defined inputs and outputs (location, format, name) and a Layout
// describing its descriptor sets, bindings and push-constant ranges:
//
//	entry, err := shade.Parse(words)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, v := range entry.Input.Elements() {
//	    fmt.Println(v.Location, v.Format, v.Name)
//	}
//	desc, ok := entry.Layout.Descriptor(0, 0)
//
// ParseCompute does the same for compute shaders and skips the interface.
//
// Reflection never modifies the caller's buffer, performs no logging and
// returns either a complete Entry or an *Error.
package shade

import (
	"github.com/gogpu/shade/layout"
	"github.com/gogpu/shade/spirv"
)

// Options configures reflection.
type Options struct {
	// EntryPoint selects an entry point by name. Empty selects the first
	// entry point of the module.
	EntryPoint string

	// Stages, when set, are the stage masks the layout reports.
	Stages *layout.Stages

	// StagesFromEntryPoint reports every descriptor and push-constant range
	// as visible to the selected entry point's stage only. Ignored when
	// Stages is set.
	StagesFromEntryPoint bool

	// DeriveReadOnly marks storage buffers, storage images and storage
	// texel buffers read-only only when they are decorated NonWritable.
	// Otherwise every descriptor is reported read-only.
	DeriveReadOnly bool
}

// DefaultOptions returns the options Parse and ParseCompute use: the first
// entry point, fragment-only descriptors, push constants visible to every
// stage and every descriptor read-only.
func DefaultOptions() Options {
	return Options{}
}

// Parse reflects a graphics shader module.
func Parse(words []uint32) (*Entry, error) {
	return ParseWithOptions(words, DefaultOptions())
}

// ParseCompute reflects a compute shader module. The returned Entry has no
// Input or Output.
func ParseCompute(words []uint32) (*Entry, error) {
	return ParseComputeWithOptions(words, DefaultOptions())
}

// ParseWithOptions reflects a graphics shader module with custom options.
func ParseWithOptions(words []uint32, opts Options) (*Entry, error) {
	m, err := decode(spirv.Decode(words))
	if err != nil {
		return nil, err
	}
	return reflectModule(m, opts, false)
}

// ParseComputeWithOptions reflects a compute shader module with custom
// options.
func ParseComputeWithOptions(words []uint32, opts Options) (*Entry, error) {
	m, err := decode(spirv.Decode(words))
	if err != nil {
		return nil, err
	}
	return reflectModule(m, opts, true)
}

// ParseBytes reflects a graphics shader from a little-endian SPIR-V binary.
func ParseBytes(data []byte, opts Options) (*Entry, error) {
	m, err := decode(spirv.DecodeBytes(data))
	if err != nil {
		return nil, err
	}
	return reflectModule(m, opts, false)
}

// ParseComputeBytes reflects a compute shader from a little-endian SPIR-V
// binary.
func ParseComputeBytes(data []byte, opts Options) (*Entry, error) {
	m, err := decode(spirv.DecodeBytes(data))
	if err != nil {
		return nil, err
	}
	return reflectModule(m, opts, true)
}

func decode(m *spirv.Module, err error) (*spirv.Module, error) {
	if err != nil {
		return nil, wrapError(ErrParseFailure, "", err)
	}
	return m, nil
}

func reflectModule(m *spirv.Module, opts Options, compute bool) (*Entry, error) {
	ep, err := selectEntryPoint(m, opts.EntryPoint)
	if err != nil {
		return nil, err
	}

	entry := &Entry{}
	if ep != nil {
		entry.EntryPoint = ep.Name
		entry.Stage = ep.Model
		entry.WorkgroupSize = ep.LocalSize
	}

	if !compute {
		if entry.Input, entry.Output, err = extractInterfaces(m, ep); err != nil {
			return nil, err
		}
	}

	stages := stageMasks(opts, ep)
	data, err := extractResources(m, stages, opts.DeriveReadOnly)
	if err != nil {
		return nil, err
	}
	entry.Layout = layout.New(data, stages)
	return entry, nil
}

func selectEntryPoint(m *spirv.Module, name string) (*spirv.EntryPoint, error) {
	if name != "" {
		ep, ok := m.FindEntryPoint(name)
		if !ok {
			return nil, NewError(ErrEntryPointNotFound, "no entry point named "+name)
		}
		return ep, nil
	}
	if len(m.EntryPoints) == 0 {
		return nil, nil
	}
	return &m.EntryPoints[0], nil
}

func stageMasks(opts Options, ep *spirv.EntryPoint) layout.Stages {
	switch {
	case opts.Stages != nil:
		return *opts.Stages
	case opts.StagesFromEntryPoint && ep != nil:
		return layout.EntryPointStages(ep.Model)
	default:
		return layout.DefaultStages()
	}
}
