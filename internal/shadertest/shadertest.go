// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shadertest synthesizes small SPIR-V modules for tests.
package shadertest

import (
	"encoding/binary"

	"github.com/gogpu/shade/spirv"
)

// Builder is a spirv.ModuleBuilder with the common scalar and vector types
// declared up front and the entry point interface tracked.
type Builder struct {
	*spirv.ModuleBuilder

	Void, Bool, F32, I32, U32 uint32
	Vec2, Vec3, Vec4          uint32

	iface []uint32
}

// New returns a Builder for a Vulkan-flavoured shader module.
func New() *Builder {
	b := &Builder{ModuleBuilder: spirv.NewModuleBuilder(spirv.Version1_3)}
	b.AddCapability(spirv.CapabilityShader)
	b.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
	b.Void = b.AddTypeVoid()
	b.Bool = b.AddTypeBool()
	b.F32 = b.AddTypeFloat(32)
	b.I32 = b.AddTypeInt(32, true)
	b.U32 = b.AddTypeInt(32, false)
	b.Vec2 = b.AddTypeVector(b.F32, 2)
	b.Vec3 = b.AddTypeVector(b.F32, 3)
	b.Vec4 = b.AddTypeVector(b.F32, 4)
	return b
}

// Variable declares a module-scope variable of typ in sc.
func (b *Builder) Variable(sc spirv.StorageClass, typ uint32, name string) uint32 {
	v := b.AddVariable(b.AddTypePointer(sc, typ), sc)
	if name != "" {
		b.AddName(v, name)
	}
	return v
}

// Input declares an Input variable at location and lists it in the entry
// point interface.
func (b *Builder) Input(name string, location, typ uint32) uint32 {
	return b.located(spirv.StorageClassInput, name, location, typ)
}

// Output declares an Output variable at location and lists it in the entry
// point interface.
func (b *Builder) Output(name string, location, typ uint32) uint32 {
	return b.located(spirv.StorageClassOutput, name, location, typ)
}

func (b *Builder) located(sc spirv.StorageClass, name string, location, typ uint32) uint32 {
	v := b.Variable(sc, typ, name)
	b.AddDecorate(v, spirv.DecorationLocation, location)
	b.iface = append(b.iface, v)
	return v
}

// BuiltIn declares a built-in variable and lists it in the interface.
func (b *Builder) BuiltIn(sc spirv.StorageClass, builtin spirv.BuiltIn, typ uint32) uint32 {
	v := b.Variable(sc, typ, "")
	b.AddDecorate(v, spirv.DecorationBuiltIn, uint32(builtin))
	b.iface = append(b.iface, v)
	return v
}

// Interface lists id in the entry point interface.
func (b *Builder) Interface(id uint32) {
	b.iface = append(b.iface, id)
}

// PerVertex declares the gl_PerVertex output block and lists it in the
// interface.
func (b *Builder) PerVertex() uint32 {
	block := b.AddTypeStruct(b.Vec4, b.F32)
	b.AddDecorate(block, spirv.DecorationBlock)
	b.AddMemberDecorate(block, 0, spirv.DecorationBuiltIn, uint32(spirv.BuiltInPosition))
	b.AddMemberDecorate(block, 1, spirv.DecorationBuiltIn, uint32(spirv.BuiltInPointSize))
	v := b.Variable(spirv.StorageClassOutput, block, "")
	b.iface = append(b.iface, v)
	return v
}

// Resource declares a descriptor-bound variable.
func (b *Builder) Resource(sc spirv.StorageClass, typ uint32, set, binding uint32, name string) uint32 {
	v := b.Variable(sc, typ, name)
	b.AddDecorate(v, spirv.DecorationDescriptorSet, set)
	b.AddDecorate(v, spirv.DecorationBinding, binding)
	return v
}

// Image2D declares a single-sampled, non-arrayed 2D float image.
func (b *Builder) Image2D() uint32 {
	return b.AddTypeImage(b.F32, spirv.ImageType{Dim: spirv.Dim2D, Sampled: 1})
}

// Array declares an array of n elements.
func (b *Builder) Array(elem, n uint32) uint32 {
	return b.AddTypeArray(elem, b.AddConstant(b.U32, n))
}

// Member is a block member at a byte offset.
type Member struct {
	Type   uint32
	Offset uint32
}

// Block declares a struct decorated Block with member offsets.
func (b *Builder) Block(name string, members ...Member) uint32 {
	types := make([]uint32, len(members))
	for i, m := range members {
		types[i] = m.Type
	}
	st := b.AddTypeStruct(types...)
	if name != "" {
		b.AddName(st, name)
	}
	b.AddDecorate(st, spirv.DecorationBlock)
	for i, m := range members {
		b.AddMemberDecorate(st, uint32(i), spirv.DecorationOffset, m.Offset)
	}
	return st
}

// Entry closes the module with an empty "main" function of model.
func (b *Builder) Entry(model spirv.ExecutionModel) uint32 {
	return b.NamedEntry(model, "main")
}

// NamedEntry adds an empty function as entry point name over the interface
// declared so far.
func (b *Builder) NamedEntry(model spirv.ExecutionModel, name string) uint32 {
	fn := b.AddFunction(b.AddTypeFunction(b.Void), b.Void, spirv.FunctionControlNone)
	b.AddLabel()
	b.AddReturn()
	b.AddFunctionEnd()
	b.AddEntryPoint(model, fn, name, b.iface)
	switch model {
	case spirv.ExecutionModelFragment:
		b.AddExecutionMode(fn, spirv.ExecutionModeOriginUpperLeft)
	case spirv.ExecutionModelGLCompute:
		b.AddExecutionMode(fn, spirv.ExecutionModeLocalSize, 64, 1, 1)
	}
	return fn
}

// VertexPosition is a vertex shader with one vec2 input "position" at
// location 0 and only built-in outputs.
func VertexPosition() []uint32 {
	b := New()
	b.Input("position", 0, b.Vec2)
	b.BuiltIn(spirv.StorageClassInput, spirv.BuiltInVertexIndex, b.I32)
	b.PerVertex()
	b.Entry(spirv.ExecutionModelVertex)
	return b.Words()
}

// FragmentColor is a fragment shader with one vec4 output "f_color" at
// location 0.
func FragmentColor() []uint32 {
	b := New()
	b.Output("f_color", 0, b.Vec4)
	b.Entry(spirv.ExecutionModelFragment)
	return b.Words()
}

// FragmentTexture is a fragment shader sampling a 2D combined image sampler
// "tex" at set 0, binding 0.
func FragmentTexture() []uint32 {
	b := New()
	b.Input("v_uv", 0, b.Vec2)
	b.Output("f_color", 0, b.Vec4)
	b.Resource(spirv.StorageClassUniformConstant, b.AddTypeSampledImage(b.Image2D()), 0, 0, "tex")
	b.Entry(spirv.ExecutionModelFragment)
	return b.Words()
}

// PushConstants is a fragment shader with a 16-byte push-constant block at
// offset 0.
func PushConstants() []uint32 {
	b := New()
	b.Output("f_color", 0, b.Vec4)
	b.Variable(spirv.StorageClassPushConstant, b.Block("PushConstants", Member{b.Vec4, 0}), "pc")
	b.Entry(spirv.ExecutionModelFragment)
	return b.Words()
}

// ComputeStorage is a compute shader with a read-only input buffer at
// binding 0 and a writable output buffer at binding 1 of set 0.
func ComputeStorage() []uint32 {
	b := New()
	b.BuiltIn(spirv.StorageClassInput, spirv.BuiltInGlobalInvocationID, b.AddTypeVector(b.U32, 3))

	data := b.AddTypeRuntimeArray(b.F32)
	b.AddDecorate(data, spirv.DecorationArrayStride, 4)

	src := b.Block("Src", Member{data, 0})
	b.AddMemberDecorate(src, 0, spirv.DecorationNonWritable)
	b.Resource(spirv.StorageClassStorageBuffer, src, 0, 0, "src")

	dst := b.Block("Dst", Member{data, 0})
	b.Resource(spirv.StorageClassStorageBuffer, dst, 0, 1, "dst")

	b.Entry(spirv.ExecutionModelGLCompute)
	return b.Words()
}

// Bytes encodes words as a little-endian binary.
func Bytes(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}
