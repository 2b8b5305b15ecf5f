package spirv

// Type is a decoded OpType* instruction. Only the fields meaningful for Op
// are set.
type Type struct {
	ID uint32
	Op OpCode

	// Width and Signed describe OpTypeInt and OpTypeFloat.
	Width  uint32
	Signed bool

	// Elem is the component type of a vector, the column type of a matrix,
	// the element type of an array, the pointee of a pointer, the image of
	// a sampled image, and the sampled type of an image.
	Elem uint32

	// Count is the component count of a vector or the column count of a
	// matrix.
	Count uint32

	// LengthID is the ID of the constant holding an OpTypeArray's length.
	LengthID uint32

	Members      []uint32
	StorageClass StorageClass
	Image        ImageType
}

// Variable is a module-scope OpVariable.
type Variable struct {
	ID           uint32
	Type         uint32 // pointer type
	StorageClass StorageClass
}

// EntryPoint is a decoded OpEntryPoint with its execution modes applied.
type EntryPoint struct {
	Model     ExecutionModel
	Function  uint32
	Name      string
	Interface []uint32
	LocalSize [3]uint32
}

type decoration struct {
	kind     Decoration
	operands []uint32
}

type memberKey struct {
	id     uint32
	member uint32
}

// Module is a decoded SPIR-V module with its debug names, annotations,
// types, constants and module-scope variables indexed by ID.
type Module struct {
	Header       Header
	Instructions []Instruction
	EntryPoints  []EntryPoint
	Variables    []Variable

	names             map[uint32]string
	memberNames       map[memberKey]string
	decorations       map[uint32][]decoration
	memberDecorations map[memberKey][]decoration
	types             map[uint32]*Type
	constants         map[uint32][]uint32
	variables         map[uint32]int

	inFunction bool
}

func newModule(h Header) *Module {
	return &Module{
		Header:            h,
		names:             make(map[uint32]string),
		memberNames:       make(map[memberKey]string),
		decorations:       make(map[uint32][]decoration),
		memberDecorations: make(map[memberKey][]decoration),
		types:             make(map[uint32]*Type),
		constants:         make(map[uint32][]uint32),
		variables:         make(map[uint32]int),
	}
}

// minOperands is the operand count below which an indexed instruction is
// malformed.
var minOperands = map[OpCode]int{
	OpCapability:                   1,
	OpExtension:                    1,
	OpExtInstImport:                2,
	OpString:                       2,
	OpMemoryModel:                  2,
	OpName:                         2,
	OpMemberName:                   3,
	OpEntryPoint:                   3,
	OpExecutionMode:                2,
	OpDecorate:                     2,
	OpMemberDecorate:               3,
	OpGroupDecorate:                1,
	OpGroupMemberDecorate:          1,
	OpTypeVoid:                     1,
	OpTypeBool:                     1,
	OpTypeInt:                      3,
	OpTypeFloat:                    2,
	OpTypeVector:                   3,
	OpTypeMatrix:                   3,
	OpTypeImage:                    8,
	OpTypeSampler:                  1,
	OpTypeSampledImage:             2,
	OpTypeArray:                    3,
	OpTypeRuntimeArray:             2,
	OpTypeStruct:                   1,
	OpTypeOpaque:                   1,
	OpTypePointer:                  3,
	OpTypeFunction:                 2,
	OpTypeAccelerationStructureKHR: 1,
	OpConstant:                     3,
	OpSpecConstant:                 3,
	OpVariable:                     3,
	OpFunction:                     4,
	OpCompositeExtract:             3,
	OpVectorShuffle:                4,
	OpLabel:                        1,
	OpDecorationGroup:              1,
}

//nolint:gocyclo,cyclop // one case per indexed opcode
func (m *Module) index(offset int, inst Instruction) error {
	w := inst.Words
	if n, ok := minOperands[inst.Opcode]; ok && len(w) < n {
		return errorf(offset, "%v has %d operands, want at least %d", inst.Opcode, len(w), n)
	}

	switch inst.Opcode {
	case OpName:
		s, _, ok := decodeString(w[1:])
		if !ok {
			return errorf(offset, "OpName string is not terminated")
		}
		m.names[w[0]] = s

	case OpMemberName:
		s, _, ok := decodeString(w[2:])
		if !ok {
			return errorf(offset, "OpMemberName string is not terminated")
		}
		m.memberNames[memberKey{w[0], w[1]}] = s

	case OpEntryPoint:
		name, n, ok := decodeString(w[2:])
		if !ok {
			return errorf(offset, "OpEntryPoint name is not terminated")
		}
		m.EntryPoints = append(m.EntryPoints, EntryPoint{
			Model:     ExecutionModel(w[0]),
			Function:  w[1],
			Name:      name,
			Interface: w[2+n:],
		})

	case OpExecutionMode:
		if ExecutionMode(w[1]) != ExecutionModeLocalSize {
			break
		}
		if len(w) < 5 {
			return errorf(offset, "LocalSize execution mode has %d operands, want 5", len(w))
		}
		for i := range m.EntryPoints {
			if m.EntryPoints[i].Function == w[0] {
				m.EntryPoints[i].LocalSize = [3]uint32{w[2], w[3], w[4]}
			}
		}

	case OpDecorate:
		m.decorations[w[0]] = append(m.decorations[w[0]], decoration{Decoration(w[1]), w[2:]})

	case OpMemberDecorate:
		key := memberKey{w[0], w[1]}
		m.memberDecorations[key] = append(m.memberDecorations[key], decoration{Decoration(w[2]), w[3:]})

	case OpGroupDecorate:
		for _, target := range w[1:] {
			m.decorations[target] = append(m.decorations[target], m.decorations[w[0]]...)
		}

	case OpGroupMemberDecorate:
		if len(w)%2 != 1 {
			return errorf(offset, "OpGroupMemberDecorate has unpaired targets")
		}
		for i := 1; i < len(w); i += 2 {
			key := memberKey{w[i], w[i+1]}
			m.memberDecorations[key] = append(m.memberDecorations[key], m.decorations[w[0]]...)
		}

	case OpTypeVoid, OpTypeBool, OpTypeSampler, OpTypeOpaque, OpTypeAccelerationStructureKHR:
		return m.addType(offset, &Type{ID: w[0], Op: inst.Opcode})

	case OpTypeFunction:
		return m.addType(offset, &Type{ID: w[0], Op: inst.Opcode}, w[1:]...)

	case OpTypeInt:
		return m.addType(offset, &Type{ID: w[0], Op: inst.Opcode, Width: w[1], Signed: w[2] != 0})

	case OpTypeFloat:
		return m.addType(offset, &Type{ID: w[0], Op: inst.Opcode, Width: w[1]})

	case OpTypeVector, OpTypeMatrix:
		return m.addType(offset, &Type{ID: w[0], Op: inst.Opcode, Elem: w[1], Count: w[2]}, w[1])

	case OpTypeImage:
		return m.addType(offset, &Type{ID: w[0], Op: inst.Opcode, Elem: w[1], Image: ImageType{
			Dim:          Dim(w[2]),
			Depth:        w[3],
			Arrayed:      w[4] != 0,
			Multisampled: w[5] != 0,
			Sampled:      w[6],
			Format:       ImageFormat(w[7]),
		}}, w[1])

	case OpTypeSampledImage, OpTypeRuntimeArray:
		return m.addType(offset, &Type{ID: w[0], Op: inst.Opcode, Elem: w[1]}, w[1])

	case OpTypeArray:
		if _, ok := m.constants[w[2]]; !ok {
			return errorf(offset, "OpTypeArray %%%d has length %%%d, which is not a constant declared before it", w[0], w[2])
		}
		return m.addType(offset, &Type{ID: w[0], Op: inst.Opcode, Elem: w[1], LengthID: w[2]}, w[1])

	case OpTypeStruct:
		return m.addType(offset, &Type{ID: w[0], Op: inst.Opcode, Members: w[1:]}, w[1:]...)

	case OpTypePointer:
		return m.addType(offset, &Type{ID: w[0], Op: inst.Opcode, StorageClass: StorageClass(w[1]), Elem: w[2]}, w[2])

	case OpConstant, OpSpecConstant:
		m.constants[w[1]] = w[2:]

	case OpFunction:
		m.inFunction = true

	case OpVariable:
		if !m.inFunction {
			m.variables[w[1]] = len(m.Variables)
			m.Variables = append(m.Variables, Variable{ID: w[1], Type: w[0], StorageClass: StorageClass(w[2])})
		}
	}
	return nil
}

// addType records t. Every operand in refs must name a type declared
// earlier, which keeps the type graph acyclic.
func (m *Module) addType(offset int, t *Type, refs ...uint32) error {
	if _, ok := m.types[t.ID]; ok {
		return errorf(offset, "%v redeclares type %%%d", t.Op, t.ID)
	}
	for _, ref := range refs {
		if _, ok := m.types[ref]; !ok {
			return errorf(offset, "%v %%%d refers to %%%d, which is not a type declared before it", t.Op, t.ID, ref)
		}
	}
	m.types[t.ID] = t
	return nil
}

// Name returns the OpName of id, or "" when the module carries none.
func (m *Module) Name(id uint32) string {
	return m.names[id]
}

// MemberName returns the OpMemberName of a struct member.
func (m *Module) MemberName(structID, member uint32) string {
	return m.memberNames[memberKey{structID, member}]
}

// Type returns the type declared with id.
func (m *Module) Type(id uint32) (*Type, bool) {
	t, ok := m.types[id]
	return t, ok
}

// Variable returns the module-scope variable id.
func (m *Module) Variable(id uint32) (Variable, bool) {
	i, ok := m.variables[id]
	if !ok {
		return Variable{}, false
	}
	return m.Variables[i], true
}

// Constant returns the literal words of the scalar constant id.
func (m *Module) Constant(id uint32) ([]uint32, bool) {
	c, ok := m.constants[id]
	return c, ok
}

// Decoration returns the operands of the first decoration d applied to id.
func (m *Module) Decoration(id uint32, d Decoration) ([]uint32, bool) {
	return findDecoration(m.decorations[id], d)
}

// MemberDecoration returns the operands of the first decoration d applied
// to a struct member.
func (m *Module) MemberDecoration(structID, member uint32, d Decoration) ([]uint32, bool) {
	return findDecoration(m.memberDecorations[memberKey{structID, member}], d)
}

func (m *Module) decorationValue(id uint32, d Decoration) (uint32, bool) {
	ops, ok := m.Decoration(id, d)
	if !ok || len(ops) == 0 {
		return 0, false
	}
	return ops[0], true
}

func (m *Module) memberDecorationValue(structID, member uint32, d Decoration) (uint32, bool) {
	ops, ok := m.MemberDecoration(structID, member, d)
	if !ok || len(ops) == 0 {
		return 0, false
	}
	return ops[0], true
}

func findDecoration(decs []decoration, d Decoration) ([]uint32, bool) {
	for _, dec := range decs {
		if dec.kind == d {
			return dec.operands, true
		}
	}
	return nil, false
}

// FindEntryPoint returns the entry point called name.
func (m *Module) FindEntryPoint(name string) (*EntryPoint, bool) {
	for i := range m.EntryPoints {
		if m.EntryPoints[i].Name == name {
			return &m.EntryPoints[i], true
		}
	}
	return nil, false
}
