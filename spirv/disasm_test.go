package spirv

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestDisassemble(t *testing.T) {
	m, err := Decode(minimalFragment())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	var buf bytes.Buffer
	if err := Disassemble(&buf, m); err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"; Version: 1.0",
		"OpCapability Shader",
		"OpMemoryModel Logical GLSL450",
		`OpEntryPoint Fragment %7 "main" %5`,
		"OpExecutionMode %7 OriginUpperLeft",
		`OpName %5 "f_color"`,
		"OpDecorate %5 Location 0",
		"%3 = OpTypeVector %2 4",
		"%4 = OpTypePointer Output %3",
		"%5 = OpVariable %4 Output",
		"%7 = OpFunction %1 None %6",
		"OpFunctionEnd",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q\n%s", want, out)
		}
	}
}

func TestDisassemble_Images(t *testing.T) {
	b := newShaderBuilder()
	img := b.AddTypeImage(b.f32, ImageType{Dim: DimCube, Sampled: 2, Format: ImageFormatR32f})
	v := b.variable(StorageClassUniformConstant, img, "")
	b.AddDecorate(v, DecorationBuiltIn, uint32(BuiltInFragCoord))
	m := b.module(t)

	var buf bytes.Buffer
	if err := Disassemble(&buf, m); err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "OpTypeImage %2 Cube 0 0 0 2 R32f") {
		t.Errorf("image operands not rendered:\n%s", out)
	}
	if !strings.Contains(out, "BuiltIn FragCoord") {
		t.Errorf("BuiltIn operand not rendered:\n%s", out)
	}
}

func TestDisassemble_Statements(t *testing.T) {
	b := NewModuleBuilder(Version1_3)
	b.AddCapability(CapabilityShader)
	b.AddExtension("SPV_KHR_storage_buffer_storage_class")
	glsl := b.AddExtInstImport("GLSL.std.450")
	b.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)
	file := b.AddString("shader.frag")

	f32 := b.AddTypeFloat(32)
	boolType := b.AddTypeBool()
	half := b.AddConstantFloat32(f32, 0.5)
	one := b.AddSpecConstant(f32, math.Float32bits(1))
	yes := b.AllocID()
	b.AddRaw(OpConstantTrue, boolType, yes)

	void := b.AddTypeVoid()
	ptr := b.AddTypePointer(StorageClassFunction, f32)
	b.AddFunction(b.AddTypeFunction(void), void, FunctionControlNone)
	b.AddLabel()
	local := b.AddFunctionVariable(ptr)
	b.AddStore(local, half)
	loaded := b.AddLoad(f32, local)
	b.AddReturn()
	b.AddFunctionEnd()

	m, err := Decode(b.Words())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	var buf bytes.Buffer
	if err := Disassemble(&buf, m); err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`OpExtension "SPV_KHR_storage_buffer_storage_class"`,
		fmt.Sprintf(`%%%d = OpExtInstImport "GLSL.std.450"`, glsl),
		fmt.Sprintf(`%%%d = OpString "shader.frag"`, file),
		fmt.Sprintf("%%%d = OpConstant %%%d 1056964608", half, f32),
		fmt.Sprintf("%%%d = OpSpecConstant %%%d 1065353216", one, f32),
		fmt.Sprintf("%%%d = OpConstantTrue %%%d", yes, boolType),
		fmt.Sprintf("%%%d = OpVariable %%%d Function", local, ptr),
		fmt.Sprintf("OpStore %%%d %%%d", local, half),
		fmt.Sprintf("%%%d = OpLoad %%%d %%%d", loaded, f32, local),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q\n%s", want, out)
		}
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestDisassemble_WriteError(t *testing.T) {
	m, err := Decode(minimalFragment())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if err := Disassemble(failingWriter{}, m); !errors.Is(err, errWrite) {
		t.Errorf("got %v, want %v", err, errWrite)
	}
}
