package spirv

import "fmt"

var opcodeNames = map[OpCode]string{
	OpNop: "OpNop", OpUndef: "OpUndef", OpSourceContinued: "OpSourceContinued",
	OpSource: "OpSource", OpSourceExtension: "OpSourceExtension",
	OpName: "OpName", OpMemberName: "OpMemberName", OpString: "OpString",
	OpLine: "OpLine", OpExtension: "OpExtension",
	OpExtInstImport: "OpExtInstImport", OpExtInst: "OpExtInst",
	OpMemoryModel: "OpMemoryModel", OpEntryPoint: "OpEntryPoint",
	OpExecutionMode: "OpExecutionMode", OpCapability: "OpCapability",
	OpTypeVoid: "OpTypeVoid", OpTypeBool: "OpTypeBool", OpTypeInt: "OpTypeInt",
	OpTypeFloat: "OpTypeFloat", OpTypeVector: "OpTypeVector",
	OpTypeMatrix: "OpTypeMatrix", OpTypeImage: "OpTypeImage",
	OpTypeSampler: "OpTypeSampler", OpTypeSampledImage: "OpTypeSampledImage",
	OpTypeArray: "OpTypeArray", OpTypeRuntimeArray: "OpTypeRuntimeArray",
	OpTypeStruct: "OpTypeStruct", OpTypeOpaque: "OpTypeOpaque",
	OpTypePointer: "OpTypePointer", OpTypeFunction: "OpTypeFunction",
	OpTypeForwardPointer: "OpTypeForwardPointer",
	OpConstantTrue: "OpConstantTrue", OpConstantFalse: "OpConstantFalse",
	OpConstant: "OpConstant", OpConstantComposite: "OpConstantComposite",
	OpConstantNull: "OpConstantNull", OpSpecConstantTrue: "OpSpecConstantTrue",
	OpSpecConstantFalse: "OpSpecConstantFalse", OpSpecConstant: "OpSpecConstant",
	OpSpecConstantComposite: "OpSpecConstantComposite",
	OpFunction: "OpFunction", OpFunctionParameter: "OpFunctionParameter",
	OpFunctionEnd: "OpFunctionEnd", OpFunctionCall: "OpFunctionCall",
	OpVariable: "OpVariable", OpLoad: "OpLoad", OpStore: "OpStore",
	OpAccessChain: "OpAccessChain", OpDecorate: "OpDecorate",
	OpMemberDecorate: "OpMemberDecorate", OpDecorationGroup: "OpDecorationGroup",
	OpGroupDecorate: "OpGroupDecorate", OpGroupMemberDecorate: "OpGroupMemberDecorate",
	OpVectorShuffle: "OpVectorShuffle", OpCompositeConstruct: "OpCompositeConstruct",
	OpCompositeExtract: "OpCompositeExtract",
	OpSampledImage: "OpSampledImage", OpImageSampleImplicitLod: "OpImageSampleImplicitLod",
	OpLabel: "OpLabel", OpBranch: "OpBranch", OpReturn: "OpReturn",
	OpReturnValue: "OpReturnValue", OpModuleProcessed: "OpModuleProcessed",
	OpExecutionModeID: "OpExecutionModeId", OpDecorateID: "OpDecorateId",
	OpTypeAccelerationStructureKHR: "OpTypeAccelerationStructureKHR",
	OpDecorateString: "OpDecorateString",
	OpMemberDecorateString: "OpMemberDecorateString",
}

// String returns the assembly mnemonic of the opcode.
func (op OpCode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Op%d", uint16(op))
}

var decorationNames = map[Decoration]string{
	DecorationRelaxedPrecision: "RelaxedPrecision", DecorationSpecID: "SpecId",
	DecorationBlock: "Block", DecorationBufferBlock: "BufferBlock",
	DecorationRowMajor: "RowMajor", DecorationColMajor: "ColMajor",
	DecorationArrayStride: "ArrayStride", DecorationMatrixStride: "MatrixStride",
	DecorationBuiltIn: "BuiltIn", DecorationNoPerspective: "NoPerspective",
	DecorationFlat: "Flat", DecorationPatch: "Patch", DecorationCentroid: "Centroid",
	DecorationNonWritable: "NonWritable", DecorationNonReadable: "NonReadable",
	DecorationLocation: "Location", DecorationComponent: "Component",
	DecorationIndex: "Index", DecorationBinding: "Binding",
	DecorationDescriptorSet: "DescriptorSet", DecorationOffset: "Offset",
	DecorationInputAttachmentIndex: "InputAttachmentIndex",
}

func (d Decoration) String() string {
	if s, ok := decorationNames[d]; ok {
		return s
	}
	return fmt.Sprintf("%d", uint32(d))
}

var storageClassNames = [...]string{
	"UniformConstant", "Input", "Uniform", "Output", "Workgroup",
	"CrossWorkgroup", "Private", "Function", "Generic", "PushConstant",
	"AtomicCounter", "Image", "StorageBuffer",
}

func (s StorageClass) String() string {
	if s < StorageClass(len(storageClassNames)) {
		return storageClassNames[s]
	}
	return fmt.Sprintf("%d", uint32(s))
}

var dimNames = [...]string{"1D", "2D", "3D", "Cube", "Rect", "Buffer", "SubpassData"}

func (d Dim) String() string {
	if d < Dim(len(dimNames)) {
		return dimNames[d]
	}
	return fmt.Sprintf("%d", uint32(d))
}

var executionModelNames = [...]string{
	"Vertex", "TessellationControl", "TessellationEvaluation",
	"Geometry", "Fragment", "GLCompute", "Kernel",
}

func (m ExecutionModel) String() string {
	if m < ExecutionModel(len(executionModelNames)) {
		return executionModelNames[m]
	}
	return fmt.Sprintf("%d", uint32(m))
}

var builtInNames = map[BuiltIn]string{
	BuiltInPosition: "Position", BuiltInPointSize: "PointSize",
	BuiltInClipDistance: "ClipDistance", BuiltInCullDistance: "CullDistance",
	BuiltInVertexID: "VertexId", BuiltInInstanceID: "InstanceId",
	BuiltInPrimitiveID: "PrimitiveId", BuiltInInvocationID: "InvocationId",
	BuiltInLayer: "Layer", BuiltInViewportIndex: "ViewportIndex",
	BuiltInTessLevelOuter: "TessLevelOuter", BuiltInTessLevelInner: "TessLevelInner",
	BuiltInTessCoord: "TessCoord", BuiltInPatchVertices: "PatchVertices",
	BuiltInFragCoord: "FragCoord", BuiltInPointCoord: "PointCoord",
	BuiltInFrontFacing: "FrontFacing", BuiltInSampleID: "SampleId",
	BuiltInSamplePosition: "SamplePosition", BuiltInSampleMask: "SampleMask",
	BuiltInFragDepth: "FragDepth", BuiltInHelperInvocation: "HelperInvocation",
	BuiltInNumWorkgroups: "NumWorkgroups", BuiltInWorkgroupSize: "WorkgroupSize",
	BuiltInWorkgroupID: "WorkgroupId", BuiltInLocalInvocationID: "LocalInvocationId",
	BuiltInGlobalInvocationID: "GlobalInvocationId",
	BuiltInLocalInvocationIndex: "LocalInvocationIndex",
	BuiltInVertexIndex: "VertexIndex", BuiltInInstanceIndex: "InstanceIndex",
}

func (b BuiltIn) String() string {
	if s, ok := builtInNames[b]; ok {
		return s
	}
	return fmt.Sprintf("%d", uint32(b))
}

var descriptorTypeNames = [...]string{
	"Sampler", "CombinedImageSampler", "SampledImage", "StorageImage",
	"UniformTexelBuffer", "StorageTexelBuffer", "UniformBuffer",
	"StorageBuffer", "UniformBufferDynamic", "StorageBufferDynamic",
	"InputAttachment",
}

func (t DescriptorType) String() string {
	switch {
	case t < DescriptorType(len(descriptorTypeNames)):
		return descriptorTypeNames[t]
	case t == DescriptorTypeAccelerationStructure:
		return "AccelerationStructure"
	case t == DescriptorTypeUnknown:
		return "Unknown"
	}
	return fmt.Sprintf("DescriptorType(%d)", uint32(t))
}

var imageFormatNames = [...]string{
	"Unknown", "Rgba32f", "Rgba16f", "R32f", "Rgba8", "Rgba8Snorm", "Rg32f",
	"Rg16f", "R11fG11fB10f", "R16f", "Rgba16", "Rgb10A2", "Rg16", "Rg8", "R16",
	"R8", "Rgba16Snorm", "Rg16Snorm", "Rg8Snorm", "R16Snorm", "R8Snorm",
	"Rgba32i", "Rgba16i", "Rgba8i", "R32i", "Rg32i", "Rg16i", "Rg8i", "R16i",
	"R8i", "Rgba32ui", "Rgba16ui", "Rgba8ui", "R32ui", "Rgb10a2ui", "Rg32ui",
	"Rg16ui", "Rg8ui", "R16ui", "R8ui", "R64ui", "R64i",
}

func (f ImageFormat) String() string {
	if f < ImageFormat(len(imageFormatNames)) {
		return imageFormatNames[f]
	}
	return fmt.Sprintf("%d", uint32(f))
}

var capabilityNames = map[Capability]string{
	0: "Matrix", 1: "Shader", 2: "Geometry", 3: "Tessellation",
	4: "Addresses", 5: "Linkage", 6: "Kernel", 7: "Vector16",
	8: "Float16Buffer", 9: "Float16", 10: "Float64", 11: "Int64",
	12: "Int64Atomics", 13: "ImageBasic", 14: "ImageReadWrite", 15: "ImageMipmap",
	17: "Pipes", 18: "Groups", 19: "DeviceEnqueue", 20: "LiteralSampler",
	21: "AtomicStorage", 22: "Int16", 23: "TessellationPointSize",
	24: "GeometryPointSize", 25: "ImageGatherExtended", 27: "StorageImageMultisample",
	28: "UniformBufferArrayDynamicIndexing", 29: "SampledImageArrayDynamicIndexing",
	30: "StorageBufferArrayDynamicIndexing", 31: "StorageImageArrayDynamicIndexing",
	32: "ClipDistance", 33: "CullDistance", 34: "ImageCubeArray",
	35: "SampleRateShading", 36: "ImageRect", 37: "SampledRect",
	38: "GenericPointer", 39: "Int8", 40: "InputAttachment",
	41: "SparseResidency", 42: "MinLod", 43: "Sampled1D", 44: "Image1D",
	45: "SampledCubeArray", 46: "SampledBuffer", 47: "ImageBuffer",
	48: "ImageMSArray", 49: "StorageImageExtendedFormats",
	50: "ImageQuery", 51: "DerivativeControl", 52: "InterpolationFunction",
	53: "TransformFeedback", 54: "GeometryStreams", 55: "StorageImageReadWithoutFormat",
	56: "StorageImageWriteWithoutFormat", 57: "MultiViewport",
	61: "GroupNonUniform", 4427: "DrawParameters", 4439: "MultiView",
	4472: "RayQueryKHR", 4479: "RayTracingKHR",
	5301: "ShaderNonUniform", 5302: "RuntimeDescriptorArray",
}

func (c Capability) String() string {
	if s, ok := capabilityNames[c]; ok {
		return s
	}
	return fmt.Sprintf("%d", uint32(c))
}

var executionModeNames = map[ExecutionMode]string{
	0: "Invocations", 1: "SpacingEqual", 2: "SpacingFractionalEven",
	3: "SpacingFractionalOdd", 4: "VertexOrderCw", 5: "VertexOrderCcw",
	6: "PixelCenterInteger", 7: "OriginUpperLeft", 8: "OriginLowerLeft",
	9: "EarlyFragmentTests", 10: "PointMode", 11: "Xfb", 12: "DepthReplacing",
	14: "DepthGreater", 15: "DepthLess", 16: "DepthUnchanged",
	17: "LocalSize", 18: "LocalSizeHint", 19: "InputPoints", 20: "InputLines",
	21: "InputLinesAdjacency", 22: "Triangles", 23: "InputTrianglesAdjacency",
	24: "Quads", 25: "Isolines", 26: "OutputVertices", 27: "OutputPoints",
	28: "OutputLineStrip", 29: "OutputTriangleStrip", 30: "VecTypeHint",
	31: "ContractionOff",
}

func (m ExecutionMode) String() string {
	if s, ok := executionModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("%d", uint32(m))
}

func (a AddressingModel) String() string {
	switch a {
	case AddressingModelLogical:
		return "Logical"
	case AddressingModelPhysical32:
		return "Physical32"
	case AddressingModelPhysical64:
		return "Physical64"
	case 5348:
		return "PhysicalStorageBuffer64"
	}
	return fmt.Sprintf("%d", uint32(a))
}

func (m MemoryModel) String() string {
	switch m {
	case MemoryModelSimple:
		return "Simple"
	case MemoryModelGLSL450:
		return "GLSL450"
	case MemoryModelOpenCL:
		return "OpenCL"
	case MemoryModelVulkan:
		return "Vulkan"
	}
	return fmt.Sprintf("%d", uint32(m))
}
