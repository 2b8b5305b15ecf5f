package spirv

import (
	"encoding/binary"
	"math"
)

// Instruction represents a SPIR-V instruction.
type Instruction struct {
	Opcode OpCode
	Words  []uint32 // operands, without the opcode/word-count word
}

// Encode encodes the instruction to binary words.
func (i Instruction) Encode() []uint32 {
	wordCount := uint32(len(i.Words) + 1) // +1 for opcode word
	result := make([]uint32, 0, wordCount)
	result = append(result, (wordCount<<16)|uint32(i.Opcode))
	result = append(result, i.Words...)
	return result
}

// InstructionBuilder builds SPIR-V instructions.
type InstructionBuilder struct {
	words []uint32
}

// NewInstructionBuilder creates a new instruction builder.
func NewInstructionBuilder() *InstructionBuilder {
	return &InstructionBuilder{
		words: make([]uint32, 0, 8),
	}
}

// AddWord adds a word to the instruction.
func (b *InstructionBuilder) AddWord(word uint32) {
	b.words = append(b.words, word)
}

// AddString adds a null-terminated UTF-8 string padded to a word boundary.
func (b *InstructionBuilder) AddString(s string) {
	b.words = append(b.words, encodeString(s)...)
}

// Build builds the instruction with the given opcode.
func (b *InstructionBuilder) Build(opcode OpCode) Instruction {
	return Instruction{
		Opcode: opcode,
		Words:  b.words,
	}
}

func encodeString(s string) []uint32 {
	n := len(s)/4 + 1
	words := make([]uint32, n)
	for i := 0; i < len(s); i++ {
		words[i/4] |= uint32(s[i]) << (8 * (i % 4))
	}
	return words
}

// section is a logical layout section of a module, in emission order.
type section int

const (
	sectionCapability section = iota
	sectionExtension
	sectionExtInstImport
	sectionMemoryModel
	sectionEntryPoint
	sectionExecutionMode
	sectionDebugString
	sectionDebugName
	sectionAnnotation
	sectionType
	sectionGlobal
	sectionFunction
	sectionCount
)

// ModuleBuilder builds complete SPIR-V modules. Instructions may be added in
// any order; Words emits them in the section order SPIR-V requires.
type ModuleBuilder struct {
	version   Version
	generator uint32

	sections [sectionCount][]Instruction

	nextID uint32
}

// NewModuleBuilder creates a new SPIR-V module builder.
func NewModuleBuilder(version Version) *ModuleBuilder {
	return &ModuleBuilder{
		version:   version,
		generator: GeneratorID,
		nextID:    1,
	}
}

// AllocID allocates a new SPIR-V ID.
func (b *ModuleBuilder) AllocID() uint32 {
	id := b.nextID
	b.nextID++
	return id
}

func (b *ModuleBuilder) emit(s section, op OpCode, words ...uint32) {
	b.sections[s] = append(b.sections[s], Instruction{Opcode: op, Words: words})
}

// emitResult allocates an ID and emits op with it as the first operand.
func (b *ModuleBuilder) emitResult(s section, op OpCode, operands ...uint32) uint32 {
	id := b.AllocID()
	b.emit(s, op, append([]uint32{id}, operands...)...)
	return id
}

// emitTyped allocates an ID and emits op with a result type and the ID.
func (b *ModuleBuilder) emitTyped(s section, op OpCode, resultType uint32, operands ...uint32) uint32 {
	id := b.AllocID()
	b.emit(s, op, append([]uint32{resultType, id}, operands...)...)
	return id
}

// AddRaw appends an arbitrary instruction to the type section. It lets
// callers produce instructions the builder has no helper for.
func (b *ModuleBuilder) AddRaw(op OpCode, words ...uint32) {
	b.emit(sectionType, op, words...)
}

// AddCapability adds a capability.
func (b *ModuleBuilder) AddCapability(capability Capability) {
	b.emit(sectionCapability, OpCapability, uint32(capability))
}

// AddExtension adds an extension.
func (b *ModuleBuilder) AddExtension(name string) {
	b.emit(sectionExtension, OpExtension, encodeString(name)...)
}

// AddExtInstImport imports an extended instruction set.
func (b *ModuleBuilder) AddExtInstImport(name string) uint32 {
	return b.emitResult(sectionExtInstImport, OpExtInstImport, encodeString(name)...)
}

// SetMemoryModel sets the memory model.
func (b *ModuleBuilder) SetMemoryModel(addressing AddressingModel, memory MemoryModel) {
	b.sections[sectionMemoryModel] = nil
	b.emit(sectionMemoryModel, OpMemoryModel, uint32(addressing), uint32(memory))
}

// AddEntryPoint adds an entry point.
func (b *ModuleBuilder) AddEntryPoint(execModel ExecutionModel, funcID uint32, name string, interfaces []uint32) {
	words := []uint32{uint32(execModel), funcID}
	words = append(words, encodeString(name)...)
	words = append(words, interfaces...)
	b.emit(sectionEntryPoint, OpEntryPoint, words...)
}

// AddExecutionMode adds an execution mode.
func (b *ModuleBuilder) AddExecutionMode(entryPoint uint32, mode ExecutionMode, params ...uint32) {
	b.emit(sectionExecutionMode, OpExecutionMode, append([]uint32{entryPoint, uint32(mode)}, params...)...)
}

// AddString adds a debug string.
func (b *ModuleBuilder) AddString(text string) uint32 {
	return b.emitResult(sectionDebugString, OpString, encodeString(text)...)
}

// AddName adds a debug name.
func (b *ModuleBuilder) AddName(id uint32, name string) {
	b.emit(sectionDebugName, OpName, append([]uint32{id}, encodeString(name)...)...)
}

// AddMemberName adds a debug member name.
func (b *ModuleBuilder) AddMemberName(structID, member uint32, name string) {
	b.emit(sectionDebugName, OpMemberName, append([]uint32{structID, member}, encodeString(name)...)...)
}

// AddDecorate adds a decoration.
func (b *ModuleBuilder) AddDecorate(id uint32, decoration Decoration, params ...uint32) {
	b.emit(sectionAnnotation, OpDecorate, append([]uint32{id, uint32(decoration)}, params...)...)
}

// AddMemberDecorate adds a member decoration.
func (b *ModuleBuilder) AddMemberDecorate(structID, member uint32, decoration Decoration, params ...uint32) {
	b.emit(sectionAnnotation, OpMemberDecorate, append([]uint32{structID, member, uint32(decoration)}, params...)...)
}

// AddTypeVoid adds OpTypeVoid.
func (b *ModuleBuilder) AddTypeVoid() uint32 {
	return b.emitResult(sectionType, OpTypeVoid)
}

// AddTypeBool adds OpTypeBool.
func (b *ModuleBuilder) AddTypeBool() uint32 {
	return b.emitResult(sectionType, OpTypeBool)
}

// AddTypeFloat adds OpTypeFloat.
func (b *ModuleBuilder) AddTypeFloat(width uint32) uint32 {
	return b.emitResult(sectionType, OpTypeFloat, width)
}

// AddTypeInt adds OpTypeInt.
func (b *ModuleBuilder) AddTypeInt(width uint32, signed bool) uint32 {
	var signedness uint32
	if signed {
		signedness = 1
	}
	return b.emitResult(sectionType, OpTypeInt, width, signedness)
}

// AddTypeVector adds OpTypeVector.
func (b *ModuleBuilder) AddTypeVector(componentType uint32, count uint32) uint32 {
	return b.emitResult(sectionType, OpTypeVector, componentType, count)
}

// AddTypeMatrix adds OpTypeMatrix.
func (b *ModuleBuilder) AddTypeMatrix(columnType uint32, columnCount uint32) uint32 {
	return b.emitResult(sectionType, OpTypeMatrix, columnType, columnCount)
}

// AddTypeArray adds OpTypeArray. length is the ID of a constant.
func (b *ModuleBuilder) AddTypeArray(elementType uint32, length uint32) uint32 {
	return b.emitResult(sectionType, OpTypeArray, elementType, length)
}

// AddTypeRuntimeArray adds OpTypeRuntimeArray.
func (b *ModuleBuilder) AddTypeRuntimeArray(elementType uint32) uint32 {
	return b.emitResult(sectionType, OpTypeRuntimeArray, elementType)
}

// AddTypeStruct adds OpTypeStruct.
func (b *ModuleBuilder) AddTypeStruct(memberTypes ...uint32) uint32 {
	return b.emitResult(sectionType, OpTypeStruct, memberTypes...)
}

// AddTypePointer adds OpTypePointer.
func (b *ModuleBuilder) AddTypePointer(storageClass StorageClass, baseType uint32) uint32 {
	return b.emitResult(sectionType, OpTypePointer, uint32(storageClass), baseType)
}

// AddTypeFunction adds OpTypeFunction.
func (b *ModuleBuilder) AddTypeFunction(returnType uint32, paramTypes ...uint32) uint32 {
	return b.emitResult(sectionType, OpTypeFunction, append([]uint32{returnType}, paramTypes...)...)
}

// ImageType holds the operands of OpTypeImage after the sampled type.
type ImageType struct {
	Dim          Dim
	Depth        uint32 // 0 = not depth, 1 = depth, 2 = unknown
	Arrayed      bool
	Multisampled bool
	Sampled      uint32 // 1 = sampled, 2 = storage
	Format       ImageFormat
}

// AddTypeImage adds OpTypeImage.
func (b *ModuleBuilder) AddTypeImage(sampledType uint32, img ImageType) uint32 {
	return b.emitResult(sectionType, OpTypeImage,
		sampledType, uint32(img.Dim), img.Depth, boolWord(img.Arrayed),
		boolWord(img.Multisampled), img.Sampled, uint32(img.Format))
}

// AddTypeSampler adds OpTypeSampler.
func (b *ModuleBuilder) AddTypeSampler() uint32 {
	return b.emitResult(sectionType, OpTypeSampler)
}

// AddTypeSampledImage adds OpTypeSampledImage.
func (b *ModuleBuilder) AddTypeSampledImage(imageType uint32) uint32 {
	return b.emitResult(sectionType, OpTypeSampledImage, imageType)
}

// AddTypeAccelerationStructure adds OpTypeAccelerationStructureKHR.
func (b *ModuleBuilder) AddTypeAccelerationStructure() uint32 {
	return b.emitResult(sectionType, OpTypeAccelerationStructureKHR)
}

// AddConstant adds OpConstant.
func (b *ModuleBuilder) AddConstant(typeID uint32, values ...uint32) uint32 {
	return b.emitTyped(sectionType, OpConstant, typeID, values...)
}

// AddConstantFloat32 adds a 32-bit float constant.
func (b *ModuleBuilder) AddConstantFloat32(typeID uint32, value float32) uint32 {
	return b.AddConstant(typeID, math.Float32bits(value))
}

// AddSpecConstant adds OpSpecConstant with a default value.
func (b *ModuleBuilder) AddSpecConstant(typeID uint32, values ...uint32) uint32 {
	return b.emitTyped(sectionType, OpSpecConstant, typeID, values...)
}

// AddVariable adds a module-scope OpVariable.
func (b *ModuleBuilder) AddVariable(pointerType uint32, storageClass StorageClass) uint32 {
	return b.emitTyped(sectionGlobal, OpVariable, pointerType, uint32(storageClass))
}

// AddFunction adds a function definition.
func (b *ModuleBuilder) AddFunction(funcType uint32, returnType uint32, control FunctionControl) uint32 {
	return b.emitTyped(sectionFunction, OpFunction, returnType, uint32(control), funcType)
}

// AddFunctionVariable adds a Function storage class OpVariable inside the
// current function body.
func (b *ModuleBuilder) AddFunctionVariable(pointerType uint32) uint32 {
	return b.emitTyped(sectionFunction, OpVariable, pointerType, uint32(StorageClassFunction))
}

// AddLabel adds a label.
func (b *ModuleBuilder) AddLabel() uint32 {
	return b.emitResult(sectionFunction, OpLabel)
}

// AddLoad adds OpLoad.
func (b *ModuleBuilder) AddLoad(resultType uint32, pointer uint32) uint32 {
	return b.emitTyped(sectionFunction, OpLoad, resultType, pointer)
}

// AddStore adds OpStore.
func (b *ModuleBuilder) AddStore(pointer uint32, value uint32) {
	b.emit(sectionFunction, OpStore, pointer, value)
}

// AddReturn adds OpReturn.
func (b *ModuleBuilder) AddReturn() {
	b.emit(sectionFunction, OpReturn)
}

// AddFunctionEnd adds OpFunctionEnd.
func (b *ModuleBuilder) AddFunctionEnd() {
	b.emit(sectionFunction, OpFunctionEnd)
}

// Words generates the final SPIR-V module as a word stream.
func (b *ModuleBuilder) Words() []uint32 {
	total := HeaderWords
	for _, insts := range b.sections {
		for _, inst := range insts {
			total += len(inst.Words) + 1
		}
	}

	words := make([]uint32, 0, total)
	words = append(words, MagicNumber, versionToWord(b.version), b.generator, b.nextID, 0)
	for _, insts := range b.sections {
		for _, inst := range insts {
			words = append(words, inst.Encode()...)
		}
	}
	return words
}

// Build generates the final SPIR-V binary in little-endian byte order.
func (b *ModuleBuilder) Build() []byte {
	words := b.Words()
	buffer := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buffer[i*4:], w)
	}
	return buffer
}

func boolWord(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
