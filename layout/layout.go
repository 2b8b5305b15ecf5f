// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package layout holds the pipeline-layout description of a shader: sparse
// descriptor sets and bindings plus ordered push-constant ranges, behind a
// read-only query object.
package layout

import (
	"maps"
	"slices"

	"github.com/gogpu/shade/format"
)

// DescriptorDesc describes one binding of a descriptor set.
type DescriptorDesc struct {
	Kind format.DescriptorKind

	// ArrayCount is 1 for a single resource, the product of the array
	// lengths for arrays and 0 for runtime arrays.
	ArrayCount uint32

	Stages   ShaderStages
	ReadOnly bool
}

// PushConstantRange is a byte range of push-constant memory.
type PushConstantRange struct {
	Offset uint32
	Size   uint32
	Stages ShaderStages
}

// Data is the raw aggregate behind a Layout. Set and binding keys are the
// module's own numbers and may be sparse.
//
// For every set s in Descriptions, NumBindings[s] == len(Descriptions[s]).
type Data struct {
	NumSets      int
	NumBindings  map[int]int
	Descriptions map[int]map[int]DescriptorDesc
	NumConstants int
	PCRanges     []PushConstantRange
}

// NewData returns an empty Data ready for AddDescriptor and
// AddPushConstantRange.
func NewData() *Data {
	return &Data{
		NumBindings:  make(map[int]int),
		Descriptions: make(map[int]map[int]DescriptorDesc),
	}
}

// AddDescriptor records desc at set/binding and reports whether it was
// added. A binding that is already present keeps its first description.
func (d *Data) AddDescriptor(set, binding int, desc DescriptorDesc) bool {
	bindings, ok := d.Descriptions[set]
	if !ok {
		bindings = make(map[int]DescriptorDesc)
		d.Descriptions[set] = bindings
		d.NumSets = len(d.Descriptions)
	}
	if _, dup := bindings[binding]; dup {
		return false
	}
	bindings[binding] = desc
	d.NumBindings[set] = len(bindings)
	return true
}

// AddPushConstantRange appends r.
func (d *Data) AddPushConstantRange(r PushConstantRange) {
	d.PCRanges = append(d.PCRanges, r)
	d.NumConstants = len(d.PCRanges)
}

func (d *Data) clone() Data {
	c := Data{
		NumSets:      d.NumSets,
		NumBindings:  maps.Clone(d.NumBindings),
		Descriptions: make(map[int]map[int]DescriptorDesc, len(d.Descriptions)),
		NumConstants: d.NumConstants,
		PCRanges:     slices.Clone(d.PCRanges),
	}
	if c.NumBindings == nil {
		c.NumBindings = make(map[int]int)
	}
	for set, bindings := range d.Descriptions {
		c.Descriptions[set] = maps.Clone(bindings)
	}
	return c
}

// PipelineLayoutDesc is the description a pipeline-layout builder consumes.
type PipelineLayoutDesc interface {
	NumSets() int
	NumBindingsInSet(set int) (int, bool)
	Descriptor(set, binding int) (DescriptorDesc, bool)
	NumPushConstantRanges() int
	PushConstantRange(i int) (PushConstantRange, bool)
}

// Layout is a read-only view of a Data. Every description it returns
// carries the stage masks of its Stages rather than the stored ones.
type Layout struct {
	data   Data
	stages Stages
}

var _ PipelineLayoutDesc = (*Layout)(nil)

// New returns a Layout over a private copy of data.
func New(data *Data, stages Stages) *Layout {
	if data == nil {
		data = NewData()
	}
	return &Layout{data: data.clone(), stages: stages}
}

// NumSets returns the number of distinct descriptor sets.
func (l *Layout) NumSets() int {
	return l.data.NumSets
}

// NumBindingsInSet returns the number of bindings in set.
func (l *Layout) NumBindingsInSet(set int) (int, bool) {
	n, ok := l.data.NumBindings[set]
	return n, ok
}

// Descriptor returns the description of set/binding.
func (l *Layout) Descriptor(set, binding int) (DescriptorDesc, bool) {
	desc, ok := l.data.Descriptions[set][binding]
	if !ok {
		return DescriptorDesc{}, false
	}
	desc.Stages = l.stages.Descriptors
	return desc, true
}

// NumPushConstantRanges returns the number of push-constant ranges.
func (l *Layout) NumPushConstantRanges() int {
	return l.data.NumConstants
}

// PushConstantRange returns the i-th push-constant range.
func (l *Layout) PushConstantRange(i int) (PushConstantRange, bool) {
	if i < 0 || i >= len(l.data.PCRanges) {
		return PushConstantRange{}, false
	}
	r := l.data.PCRanges[i]
	r.Stages = l.stages.PushConstants
	return r, true
}

// Sets returns the set numbers in ascending order.
func (l *Layout) Sets() []int {
	return slices.Sorted(maps.Keys(l.data.Descriptions))
}

// Bindings returns the binding numbers of set in ascending order.
func (l *Layout) Bindings(set int) []int {
	return slices.Sorted(maps.Keys(l.data.Descriptions[set]))
}

// Stages returns the masks the layout applies.
func (l *Layout) Stages() Stages {
	return l.stages
}

// Data returns a copy of the underlying data as stored.
func (l *Layout) Data() Data {
	return l.data.clone()
}
