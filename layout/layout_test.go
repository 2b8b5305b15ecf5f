package layout

import (
	"slices"
	"testing"

	"github.com/gogpu/shade/format"
	"github.com/gogpu/shade/spirv"
)

func sparseData() *Data {
	d := NewData()
	d.AddDescriptor(0, 0, DescriptorDesc{Kind: format.Sampler{}, ArrayCount: 1, ReadOnly: true})
	d.AddDescriptor(2, 5, DescriptorDesc{Kind: format.Buffer{}, ArrayCount: 1, ReadOnly: true})
	d.AddDescriptor(2, 1, DescriptorDesc{Kind: format.Buffer{Storage: true}, ArrayCount: 4})
	d.AddPushConstantRange(PushConstantRange{Offset: 0, Size: 16})
	d.AddPushConstantRange(PushConstantRange{Offset: 16, Size: 8})
	return d
}

func TestLayout_SparseKeys(t *testing.T) {
	l := New(sparseData(), DefaultStages())

	if got := l.NumSets(); got != 2 {
		t.Errorf("NumSets() = %d, want 2", got)
	}
	if n, ok := l.NumBindingsInSet(2); !ok || n != 2 {
		t.Errorf("NumBindingsInSet(2) = (%d, %v), want (2, true)", n, ok)
	}
	if _, ok := l.NumBindingsInSet(1); ok {
		t.Error("NumBindingsInSet(1) should report absent")
	}
	if got := l.Sets(); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("Sets() = %v", got)
	}
	if got := l.Bindings(2); !slices.Equal(got, []int{1, 5}) {
		t.Errorf("Bindings(2) = %v", got)
	}
	if got := l.Bindings(7); len(got) != 0 {
		t.Errorf("Bindings(7) = %v, want empty", got)
	}

	desc, ok := l.Descriptor(2, 1)
	if !ok {
		t.Fatal("Descriptor(2, 1) missing")
	}
	if desc.Kind != (format.Buffer{Storage: true}) || desc.ArrayCount != 4 || desc.ReadOnly {
		t.Errorf("Descriptor(2, 1) = %+v", desc)
	}
}

func TestLayout_AbsentIndices(t *testing.T) {
	l := New(sparseData(), DefaultStages())

	for _, c := range [][2]int{{0, 1}, {1, 0}, {-1, 0}, {2, 2}} {
		if _, ok := l.Descriptor(c[0], c[1]); ok {
			t.Errorf("Descriptor(%d, %d) should be absent", c[0], c[1])
		}
	}
	for _, i := range []int{-1, 2, 100} {
		if _, ok := l.PushConstantRange(i); ok {
			t.Errorf("PushConstantRange(%d) should be absent", i)
		}
	}
}

func TestLayout_StageOverride(t *testing.T) {
	d := sparseData()
	// Stored masks are ignored.
	d.Descriptions[0][0] = DescriptorDesc{Kind: format.Sampler{}, ArrayCount: 1, Stages: ShaderStageCompute}
	d.PCRanges[0].Stages = ShaderStageVertex

	l := New(d, DefaultStages())
	desc, _ := l.Descriptor(0, 0)
	if desc.Stages != ShaderStageFragment {
		t.Errorf("descriptor stages = %v, want Fragment", desc.Stages)
	}
	r, _ := l.PushConstantRange(0)
	if r.Stages != ShaderStagesAll {
		t.Errorf("push constant stages = %v, want all", r.Stages)
	}

	l = New(d, EntryPointStages(spirv.ExecutionModelVertex))
	desc, _ = l.Descriptor(0, 0)
	r, _ = l.PushConstantRange(1)
	if desc.Stages != ShaderStageVertex || r.Stages != ShaderStageVertex {
		t.Errorf("entry point stages: descriptor %v, push constant %v", desc.Stages, r.Stages)
	}
}

func TestLayout_PushConstantOrder(t *testing.T) {
	l := New(sparseData(), DefaultStages())
	if got := l.NumPushConstantRanges(); got != 2 {
		t.Fatalf("NumPushConstantRanges() = %d, want 2", got)
	}
	r0, _ := l.PushConstantRange(0)
	r1, _ := l.PushConstantRange(1)
	if r0.Offset != 0 || r0.Size != 16 || r1.Offset != 16 || r1.Size != 8 {
		t.Errorf("ranges = %+v, %+v", r0, r1)
	}
}

func TestLayout_Isolation(t *testing.T) {
	d := sparseData()
	l := New(d, DefaultStages())

	d.AddDescriptor(9, 0, DescriptorDesc{Kind: format.Sampler{}})
	delete(d.Descriptions[2], 5)
	d.PCRanges[0].Size = 1

	if l.NumSets() != 2 {
		t.Error("layout observed a later change to its input")
	}
	if _, ok := l.Descriptor(2, 5); !ok {
		t.Error("layout lost a binding deleted from its input")
	}
	if r, _ := l.PushConstantRange(0); r.Size != 16 {
		t.Errorf("push constant size = %d, want 16", r.Size)
	}

	snapshot := l.Data()
	snapshot.Descriptions[0][0] = DescriptorDesc{}
	if desc, _ := l.Descriptor(0, 0); desc.Kind == nil {
		t.Error("Data() returned shared maps")
	}
}

func TestData_Invariant(t *testing.T) {
	d := sparseData()
	if !d.AddDescriptor(3, 0, DescriptorDesc{Kind: format.Sampler{}}) {
		t.Error("new binding rejected")
	}
	if d.AddDescriptor(2, 1, DescriptorDesc{Kind: format.Sampler{}}) {
		t.Error("duplicate binding accepted")
	}
	if d.Descriptions[2][1].Kind != (format.Buffer{Storage: true}) {
		t.Error("duplicate binding replaced the first description")
	}
	for set, bindings := range d.Descriptions {
		if d.NumBindings[set] != len(bindings) {
			t.Errorf("set %d: NumBindings = %d, len = %d", set, d.NumBindings[set], len(bindings))
		}
	}
	if d.NumSets != 3 || d.NumConstants != 2 {
		t.Errorf("NumSets = %d, NumConstants = %d", d.NumSets, d.NumConstants)
	}
}

func TestNew_NilData(t *testing.T) {
	l := New(nil, DefaultStages())
	if l.NumSets() != 0 || l.NumPushConstantRanges() != 0 {
		t.Error("empty layout reports content")
	}
	if _, ok := l.NumBindingsInSet(0); ok {
		t.Error("empty layout reports set 0")
	}
}

func TestShaderStages_String(t *testing.T) {
	tests := []struct {
		s    ShaderStages
		want string
	}{
		{ShaderStagesNone, "None"},
		{ShaderStageFragment, "Fragment"},
		{ShaderStageVertex | ShaderStageFragment, "Vertex|Fragment"},
		{ShaderStagesAll, "Vertex|TessellationControl|TessellationEvaluation|Geometry|Fragment|Compute"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%#x.String() = %q, want %q", uint32(tt.s), got, tt.want)
		}
	}
	if !ShaderStagesAll.Contains(ShaderStagesAllGraphics) || ShaderStagesAllGraphics.Contains(ShaderStageCompute) {
		t.Error("Contains is wrong")
	}
}

func TestStagesOf(t *testing.T) {
	tests := []struct {
		model spirv.ExecutionModel
		want  ShaderStages
	}{
		{spirv.ExecutionModelVertex, ShaderStageVertex},
		{spirv.ExecutionModelTessellationControl, ShaderStageTessellationControl},
		{spirv.ExecutionModelTessellationEvaluation, ShaderStageTessellationEvaluation},
		{spirv.ExecutionModelGeometry, ShaderStageGeometry},
		{spirv.ExecutionModelFragment, ShaderStageFragment},
		{spirv.ExecutionModelGLCompute, ShaderStageCompute},
		{spirv.ExecutionModelKernel, ShaderStagesNone},
	}
	for _, tt := range tests {
		if got := StagesOf(tt.model); got != tt.want {
			t.Errorf("StagesOf(%v) = %v, want %v", tt.model, got, tt.want)
		}
	}
}
