// Package spirv decodes SPIR-V binaries and reflects the parts of a module
// that a pipeline layout depends on.
//
// SPIR-V is the standard intermediate language for GPU shaders,
// used by Vulkan, OpenCL, and other APIs.
//
// # Decoding
//
// Decode indexes a word stream in either byte order:
//
//	m, err := spirv.DecodeBytes(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, ep := range m.EntryPoints {
//		fmt.Println(ep.Model, ep.Name)
//	}
//
// Debug names, decorations, types, scalar constants and module-scope
// variables are indexed by ID. Function bodies are kept as raw
// instructions and are not interpreted.
//
// # Reflection
//
// Module exposes the entry point interface and the module's resources:
//   - InputVariables and OutputVariables (locations, built-ins, numeric traits)
//   - DescriptorBindings (set, binding, descriptor type, array count)
//   - PushConstantBlocks (byte offset and size)
//
// The results are raw SPIR-V facts. Mapping them to formats and descriptor
// kinds is left to the callers.
//
// # Binary Writer
//
// ModuleBuilder constructs modules programmatically. Instructions may be
// added in any order and are emitted in the section order SPIR-V requires:
//
//	builder := spirv.NewModuleBuilder(spirv.Version1_3)
//	builder.AddCapability(spirv.CapabilityShader)
//	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
//
//	floatType := builder.AddTypeFloat(32)
//	vec4Type := builder.AddTypeVector(floatType, 4)
//
//	binary := builder.Build()
//
// # SPIR-V Structure
//
// SPIR-V modules consist of:
//   - Header (magic, version, generator, bound, schema)
//   - Capabilities (required features)
//   - Extensions (optional extensions)
//   - Extended instruction imports (GLSL.std.450, etc.)
//   - Memory model (addressing and memory model)
//   - Entry points (shader entry functions)
//   - Execution modes (shader configuration)
//   - Debug information (names, source info)
//   - Annotations (decorations)
//   - Types and constants
//   - Global variables
//   - Functions (code)
//
// # References
//
// SPIR-V Specification: https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html
package spirv
