package spirv

// Version represents a SPIR-V version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions
var (
	Version1_0 = Version{1, 0}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// versionToWord converts Version to SPIR-V word format.
func versionToWord(v Version) uint32 {
	return (uint32(v.Major) << 16) | (uint32(v.Minor) << 8)
}

// versionFromWord is the inverse of versionToWord.
func versionFromWord(w uint32) Version {
	return Version{Major: uint8(w >> 16), Minor: uint8(w >> 8)}
}

// SPIR-V magic number and constants
const (
	MagicNumber = 0x07230203
	GeneratorID = 0x00000000 // Unregistered generator

	// HeaderWords is the number of words preceding the first instruction.
	HeaderWords = 5
)

// OpCode represents a SPIR-V opcode.
type OpCode uint16

// Opcodes understood by the decoder and the module builder.
const (
	OpNop                          OpCode = 0
	OpUndef                        OpCode = 1
	OpSourceContinued              OpCode = 2
	OpSource                       OpCode = 3
	OpSourceExtension              OpCode = 4
	OpName                         OpCode = 5
	OpMemberName                   OpCode = 6
	OpString                       OpCode = 7
	OpLine                         OpCode = 8
	OpExtension                    OpCode = 10
	OpExtInstImport                OpCode = 11
	OpExtInst                      OpCode = 12
	OpMemoryModel                  OpCode = 14
	OpEntryPoint                   OpCode = 15
	OpExecutionMode                OpCode = 16
	OpCapability                   OpCode = 17
	OpTypeVoid                     OpCode = 19
	OpTypeBool                     OpCode = 20
	OpTypeInt                      OpCode = 21
	OpTypeFloat                    OpCode = 22
	OpTypeVector                   OpCode = 23
	OpTypeMatrix                   OpCode = 24
	OpTypeImage                    OpCode = 25
	OpTypeSampler                  OpCode = 26
	OpTypeSampledImage             OpCode = 27
	OpTypeArray                    OpCode = 28
	OpTypeRuntimeArray             OpCode = 29
	OpTypeStruct                   OpCode = 30
	OpTypeOpaque                   OpCode = 31
	OpTypePointer                  OpCode = 32
	OpTypeFunction                 OpCode = 33
	OpTypeForwardPointer           OpCode = 39
	OpConstantTrue                 OpCode = 41
	OpConstantFalse                OpCode = 42
	OpConstant                     OpCode = 43
	OpConstantComposite            OpCode = 44
	OpConstantNull                 OpCode = 46
	OpSpecConstantTrue             OpCode = 48
	OpSpecConstantFalse            OpCode = 49
	OpSpecConstant                 OpCode = 50
	OpSpecConstantComposite        OpCode = 51
	OpFunction                     OpCode = 54
	OpFunctionParameter            OpCode = 55
	OpFunctionEnd                  OpCode = 56
	OpFunctionCall                 OpCode = 57
	OpVariable                     OpCode = 59
	OpLoad                         OpCode = 61
	OpStore                        OpCode = 62
	OpAccessChain                  OpCode = 65
	OpDecorate                     OpCode = 71
	OpMemberDecorate               OpCode = 72
	OpDecorationGroup              OpCode = 73
	OpGroupDecorate                OpCode = 74
	OpGroupMemberDecorate          OpCode = 75
	OpVectorShuffle                OpCode = 79
	OpCompositeConstruct           OpCode = 80
	OpCompositeExtract             OpCode = 81
	OpSampledImage                 OpCode = 86
	OpImageSampleImplicitLod       OpCode = 87
	OpLabel                        OpCode = 248
	OpBranch                       OpCode = 249
	OpReturn                       OpCode = 253
	OpReturnValue                  OpCode = 254
	OpModuleProcessed              OpCode = 330
	OpExecutionModeID              OpCode = 331
	OpDecorateID                   OpCode = 332
	OpTypeAccelerationStructureKHR OpCode = 5341
	OpDecorateString               OpCode = 5632
	OpMemberDecorateString         OpCode = 5633
)

// Decoration represents a SPIR-V decoration.
type Decoration uint32

// Decorations that affect reflection.
const (
	DecorationRelaxedPrecision     Decoration = 0
	DecorationSpecID               Decoration = 1
	DecorationBlock                Decoration = 2
	DecorationBufferBlock          Decoration = 3
	DecorationRowMajor             Decoration = 4
	DecorationColMajor             Decoration = 5
	DecorationArrayStride          Decoration = 6
	DecorationMatrixStride         Decoration = 7
	DecorationBuiltIn              Decoration = 11
	DecorationNoPerspective        Decoration = 13
	DecorationFlat                 Decoration = 14
	DecorationPatch                Decoration = 15
	DecorationCentroid             Decoration = 16
	DecorationNonWritable          Decoration = 24
	DecorationNonReadable          Decoration = 25
	DecorationLocation             Decoration = 30
	DecorationComponent            Decoration = 31
	DecorationIndex                Decoration = 32
	DecorationBinding              Decoration = 33
	DecorationDescriptorSet        Decoration = 34
	DecorationOffset               Decoration = 35
	DecorationInputAttachmentIndex Decoration = 43
)

// StorageClass represents a SPIR-V storage class.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassAtomicCounter   StorageClass = 10
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

// Dim is the dimensionality operand of OpTypeImage.
type Dim uint32

const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
)

// ImageFormat is the Image Format operand of OpTypeImage.
type ImageFormat uint32

const (
	ImageFormatUnknown      ImageFormat = 0
	ImageFormatRgba32f      ImageFormat = 1
	ImageFormatRgba16f      ImageFormat = 2
	ImageFormatR32f         ImageFormat = 3
	ImageFormatRgba8        ImageFormat = 4
	ImageFormatRgba8Snorm   ImageFormat = 5
	ImageFormatRg32f        ImageFormat = 6
	ImageFormatRg16f        ImageFormat = 7
	ImageFormatR11fG11fB10f ImageFormat = 8
	ImageFormatR16f         ImageFormat = 9
	ImageFormatRgba16       ImageFormat = 10
	ImageFormatRgb10A2      ImageFormat = 11
	ImageFormatRg16         ImageFormat = 12
	ImageFormatRg8          ImageFormat = 13
	ImageFormatR16          ImageFormat = 14
	ImageFormatR8           ImageFormat = 15
	ImageFormatRgba16Snorm  ImageFormat = 16
	ImageFormatRg16Snorm    ImageFormat = 17
	ImageFormatRg8Snorm     ImageFormat = 18
	ImageFormatR16Snorm     ImageFormat = 19
	ImageFormatR8Snorm      ImageFormat = 20
	ImageFormatRgba32i      ImageFormat = 21
	ImageFormatRgba16i      ImageFormat = 22
	ImageFormatRgba8i       ImageFormat = 23
	ImageFormatR32i         ImageFormat = 24
	ImageFormatRg32i        ImageFormat = 25
	ImageFormatRg16i        ImageFormat = 26
	ImageFormatRg8i         ImageFormat = 27
	ImageFormatR16i         ImageFormat = 28
	ImageFormatR8i          ImageFormat = 29
	ImageFormatRgba32ui     ImageFormat = 30
	ImageFormatRgba16ui     ImageFormat = 31
	ImageFormatRgba8ui      ImageFormat = 32
	ImageFormatR32ui        ImageFormat = 33
	ImageFormatRgb10a2ui    ImageFormat = 34
	ImageFormatRg32ui       ImageFormat = 35
	ImageFormatRg16ui       ImageFormat = 36
	ImageFormatRg8ui        ImageFormat = 37
	ImageFormatR16ui        ImageFormat = 38
	ImageFormatR8ui         ImageFormat = 39
	ImageFormatR64ui        ImageFormat = 40
	ImageFormatR64i         ImageFormat = 41
)

// ExecutionModel is the execution model of an entry point.
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

// ExecutionMode is an OpExecutionMode operand.
type ExecutionMode uint32

const (
	ExecutionModeOriginUpperLeft ExecutionMode = 7
	ExecutionModeLocalSize       ExecutionMode = 17
)

// BuiltIn is the operand of a BuiltIn decoration.
type BuiltIn uint32

const (
	BuiltInPosition             BuiltIn = 0
	BuiltInPointSize            BuiltIn = 1
	BuiltInClipDistance         BuiltIn = 3
	BuiltInCullDistance         BuiltIn = 4
	BuiltInVertexID             BuiltIn = 5
	BuiltInInstanceID           BuiltIn = 6
	BuiltInPrimitiveID          BuiltIn = 7
	BuiltInInvocationID         BuiltIn = 8
	BuiltInLayer                BuiltIn = 9
	BuiltInViewportIndex        BuiltIn = 10
	BuiltInTessLevelOuter       BuiltIn = 11
	BuiltInTessLevelInner       BuiltIn = 12
	BuiltInTessCoord            BuiltIn = 13
	BuiltInPatchVertices        BuiltIn = 14
	BuiltInFragCoord            BuiltIn = 15
	BuiltInPointCoord           BuiltIn = 16
	BuiltInFrontFacing          BuiltIn = 17
	BuiltInSampleID             BuiltIn = 18
	BuiltInSamplePosition       BuiltIn = 19
	BuiltInSampleMask           BuiltIn = 20
	BuiltInFragDepth            BuiltIn = 22
	BuiltInHelperInvocation     BuiltIn = 23
	BuiltInNumWorkgroups        BuiltIn = 24
	BuiltInWorkgroupSize        BuiltIn = 25
	BuiltInWorkgroupID          BuiltIn = 26
	BuiltInLocalInvocationID    BuiltIn = 27
	BuiltInGlobalInvocationID   BuiltIn = 28
	BuiltInLocalInvocationIndex BuiltIn = 29
	BuiltInVertexIndex          BuiltIn = 42
	BuiltInInstanceIndex        BuiltIn = 43
)

// AddressingModel is the first operand of OpMemoryModel.
type AddressingModel uint32

const (
	AddressingModelLogical    AddressingModel = 0
	AddressingModelPhysical32 AddressingModel = 1
	AddressingModelPhysical64 AddressingModel = 2
)

// MemoryModel is the second operand of OpMemoryModel.
type MemoryModel uint32

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)

// Capability represents a SPIR-V capability.
type Capability uint32

// Common capabilities
const (
	CapabilityMatrix          Capability = 0 // Implied by Shader
	CapabilityShader          Capability = 1
	CapabilityFloat16         Capability = 9
	CapabilityFloat64         Capability = 10
	CapabilityInt64           Capability = 11
	CapabilityInt16           Capability = 22
	CapabilityInt8            Capability = 39
	CapabilityInputAttachment Capability = 40
	CapabilitySampled1D       Capability = 43
	CapabilityImage1D         Capability = 44
	CapabilitySampledBuffer   Capability = 46
	CapabilityImageBuffer     Capability = 47
)

// FunctionControl is the control mask of OpFunction.
type FunctionControl uint32

const FunctionControlNone FunctionControl = 0

// DescriptorType classifies a resource variable. The numeric values are
// those of VkDescriptorType.
type DescriptorType uint32

const (
	DescriptorTypeSampler               DescriptorType = 0
	DescriptorTypeCombinedImageSampler  DescriptorType = 1
	DescriptorTypeSampledImage          DescriptorType = 2
	DescriptorTypeStorageImage          DescriptorType = 3
	DescriptorTypeUniformTexelBuffer    DescriptorType = 4
	DescriptorTypeStorageTexelBuffer    DescriptorType = 5
	DescriptorTypeUniformBuffer         DescriptorType = 6
	DescriptorTypeStorageBuffer         DescriptorType = 7
	DescriptorTypeUniformBufferDynamic  DescriptorType = 8
	DescriptorTypeStorageBufferDynamic  DescriptorType = 9
	DescriptorTypeInputAttachment       DescriptorType = 10
	DescriptorTypeAccelerationStructure DescriptorType = 1000150000

	// DescriptorTypeUnknown marks a resource variable whose type could not
	// be classified.
	DescriptorTypeUnknown DescriptorType = 0xFFFFFFFF
)
