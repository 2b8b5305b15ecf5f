package spirv

import (
	"encoding/binary"
	"errors"
	"math/bits"
	"testing"
)

// minimalFragment builds a fragment shader with one vec4 output.
func minimalFragment() []uint32 {
	b := NewModuleBuilder(Version1_0)
	b.AddCapability(CapabilityShader)
	b.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)

	void := b.AddTypeVoid()
	f32 := b.AddTypeFloat(32)
	vec4 := b.AddTypeVector(f32, 4)
	outPtr := b.AddTypePointer(StorageClassOutput, vec4)
	color := b.AddVariable(outPtr, StorageClassOutput)
	b.AddName(color, "f_color")
	b.AddDecorate(color, DecorationLocation, 0)

	fn := b.AddFunction(b.AddTypeFunction(void), void, FunctionControlNone)
	b.AddLabel()
	b.AddReturn()
	b.AddFunctionEnd()
	b.AddEntryPoint(ExecutionModelFragment, fn, "main", []uint32{color})
	b.AddExecutionMode(fn, ExecutionModeOriginUpperLeft)
	return b.Words()
}

func TestDecode_Header(t *testing.T) {
	m, err := Decode(minimalFragment())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.Header.Version != Version1_0 {
		t.Errorf("Version: got %v, want %v", m.Header.Version, Version1_0)
	}
	if m.Header.Bound == 0 {
		t.Error("Bound should be > 0")
	}
	if len(m.EntryPoints) != 1 {
		t.Fatalf("got %d entry points, want 1", len(m.EntryPoints))
	}
	ep := m.EntryPoints[0]
	if ep.Name != "main" || ep.Model != ExecutionModelFragment || len(ep.Interface) != 1 {
		t.Errorf("unexpected entry point %+v", ep)
	}
	if got := m.Name(ep.Interface[0]); got != "f_color" {
		t.Errorf("Name: got %q, want f_color", got)
	}
}

func TestDecode_ByteSwapped(t *testing.T) {
	words := minimalFragment()
	swapped := make([]uint32, len(words))
	for i, w := range words {
		swapped[i] = bits.ReverseBytes32(w)
	}

	m, err := Decode(swapped)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(m.EntryPoints) != 1 || m.EntryPoints[0].Name != "main" {
		t.Errorf("byte-swapped module decoded to %+v", m.EntryPoints)
	}
}

func TestDecode_DoesNotAliasInput(t *testing.T) {
	words := minimalFragment()
	m, err := Decode(words)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := HeaderWords; i < len(words); i++ {
		words[i] = 0
	}
	if m.EntryPoints[0].Name != "main" || len(m.EntryPoints[0].Interface) != 1 {
		t.Error("module changed after the input slice was cleared")
	}
}

func TestDecodeBytes(t *testing.T) {
	words := minimalFragment()
	data := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(data[i*4:], w)
	}

	if _, err := DecodeBytes(data); err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if _, err := DecodeBytes(data[:len(data)-1]); err == nil {
		t.Error("expected error for truncated byte stream")
	}
}

func TestDecode_Errors(t *testing.T) {
	valid := minimalFragment()

	truncated := append([]uint32(nil), valid...)
	// Claim one more word than the stream holds.
	last := len(truncated) - 1
	truncated[last] = truncated[last] + 1<<16

	zeroCount := append([]uint32(nil), valid[:HeaderWords]...)
	zeroCount = append(zeroCount, uint32(OpNop))

	shortDecorate := append([]uint32(nil), valid[:HeaderWords]...)
	shortDecorate = append(shortDecorate, 2<<16|uint32(OpDecorate), 7)

	tests := []struct {
		name   string
		words  []uint32
		offset int
	}{
		{"empty", nil, -1},
		{"header only partial", valid[:3], -1},
		{"bad magic", append([]uint32{0xDEADBEEF}, valid[1:]...), 0},
		{"word count zero", zeroCount, HeaderWords},
		{"runs past end", truncated, -2},
		{"too few operands", shortDecorate, HeaderWords},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.words)
			if err == nil {
				t.Fatal("expected error")
			}
			var se *Error
			if !errors.As(err, &se) {
				t.Fatalf("got %T, want *Error", err)
			}
			if tt.offset != -2 && se.Offset != tt.offset {
				t.Errorf("Offset: got %d, want %d", se.Offset, tt.offset)
			}
			if se.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestDecode_MalformedTypes(t *testing.T) {
	const undeclared = 999

	tests := []struct {
		name  string
		build func(b *ModuleBuilder, u32, f32 uint32)
	}{
		{"self array", func(b *ModuleBuilder, u32, _ uint32) {
			length := b.AddConstant(u32, 1)
			id := b.AllocID()
			b.AddRaw(OpTypeArray, id, id, length)
		}},
		{"self struct", func(b *ModuleBuilder, _, _ uint32) {
			id := b.AllocID()
			b.AddRaw(OpTypeStruct, id, id)
		}},
		{"self vector", func(b *ModuleBuilder, _, _ uint32) {
			id := b.AllocID()
			b.AddRaw(OpTypeVector, id, id, 4)
		}},
		{"undeclared element", func(b *ModuleBuilder, _, _ uint32) {
			b.AddRaw(OpTypeRuntimeArray, b.AllocID(), undeclared)
		}},
		{"undeclared member", func(b *ModuleBuilder, _, f32 uint32) {
			b.AddRaw(OpTypeStruct, b.AllocID(), f32, undeclared)
		}},
		{"undeclared pointee", func(b *ModuleBuilder, _, _ uint32) {
			b.AddRaw(OpTypePointer, b.AllocID(), uint32(StorageClassUniform), undeclared)
		}},
		{"length after use", func(b *ModuleBuilder, u32, f32 uint32) {
			arr, length := b.AllocID(), b.AllocID()
			b.AddRaw(OpTypeArray, arr, f32, length)
			b.AddRaw(OpConstant, u32, length, 2)
		}},
		{"redeclared type", func(b *ModuleBuilder, _, f32 uint32) {
			b.AddRaw(OpTypeFloat, f32, 64)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewModuleBuilder(Version1_0)
			b.AddCapability(CapabilityShader)
			b.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)
			u32 := b.AddTypeInt(32, false)
			f32 := b.AddTypeFloat(32)
			tt.build(b, u32, f32)

			_, err := Decode(b.Words())
			var se *Error
			if !errors.As(err, &se) {
				t.Fatalf("got %v, want *Error", err)
			}
			if se.Offset < HeaderWords {
				t.Errorf("Offset: got %d, want the offending instruction", se.Offset)
			}
		})
	}
}

func TestDecode_FunctionVariablesAreNotModuleScope(t *testing.T) {
	b := NewModuleBuilder(Version1_0)
	void := b.AddTypeVoid()
	f32 := b.AddTypeFloat(32)
	ptr := b.AddTypePointer(StorageClassFunction, f32)
	b.AddFunction(b.AddTypeFunction(void), void, FunctionControlNone)
	b.AddLabel()
	local := b.AddFunctionVariable(ptr)
	b.AddReturn()
	b.AddFunctionEnd()

	m, err := Decode(b.Words())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := m.Variable(local); ok {
		t.Error("function-local variable indexed as module scope")
	}
	if len(m.Variables) != 0 {
		t.Errorf("got %d module variables, want 0", len(m.Variables))
	}
}

func TestModule_Decorations(t *testing.T) {
	b := NewModuleBuilder(Version1_0)
	f32 := b.AddTypeFloat(32)
	block := b.AddTypeStruct(f32, f32)
	b.AddDecorate(block, DecorationBlock)
	b.AddMemberDecorate(block, 1, DecorationOffset, 4)
	b.AddMemberName(block, 1, "y")

	m, err := Decode(b.Words())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := m.Decoration(block, DecorationBlock); !ok {
		t.Error("Block decoration missing")
	}
	if _, ok := m.Decoration(block, DecorationBufferBlock); ok {
		t.Error("unexpected BufferBlock decoration")
	}
	if v, ok := m.memberDecorationValue(block, 1, DecorationOffset); !ok || v != 4 {
		t.Errorf("member Offset: got (%d, %v), want (4, true)", v, ok)
	}
	if got := m.MemberName(block, 1); got != "y" {
		t.Errorf("MemberName: got %q, want y", got)
	}
	st, ok := m.Type(block)
	if !ok || st.Op != OpTypeStruct || len(st.Members) != 2 {
		t.Errorf("struct type decoded as %+v", st)
	}
}

func TestModule_FindEntryPoint(t *testing.T) {
	m, err := Decode(minimalFragment())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if ep, ok := m.FindEntryPoint("main"); !ok || ep.Model != ExecutionModelFragment {
		t.Errorf("FindEntryPoint(main) = %+v, %v", ep, ok)
	}
	if _, ok := m.FindEntryPoint("missing"); ok {
		t.Error("FindEntryPoint(missing) should fail")
	}
}
