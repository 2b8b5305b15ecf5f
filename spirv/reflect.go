package spirv

import (
	"fmt"

	"fortio.org/safecast"
)

// ScalarKind is the component kind of a numeric type.
type ScalarKind uint8

const (
	// ScalarKindNone marks types with no numeric component (structs, images).
	ScalarKindNone ScalarKind = iota
	ScalarKindBool
	ScalarKindSint
	ScalarKindUint
	ScalarKindFloat
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarKindBool:
		return "bool"
	case ScalarKindSint:
		return "int"
	case ScalarKindUint:
		return "uint"
	case ScalarKindFloat:
		return "float"
	default:
		return "none"
	}
}

// NumericTraits are the numeric codes of an interface variable's type:
// arrays are unwrapped to their element, a matrix reports its column
// vector plus the column count.
type NumericTraits struct {
	Kind       ScalarKind
	Width      uint32 // bits per component
	Components uint32 // 1 for scalars
	Columns    uint32 // 0 unless the type is a matrix
}

func (t NumericTraits) String() string {
	s := fmt.Sprintf("%s%d", t.Kind, t.Width)
	if t.Components > 1 {
		s = fmt.Sprintf("vec%d<%s>", t.Components, s)
	}
	if t.Columns > 0 {
		s = fmt.Sprintf("mat%dx%d<%s%d>", t.Columns, t.Components, t.Kind, t.Width)
	}
	return s
}

// InterfaceVariable is an Input or Output variable of an entry point.
type InterfaceVariable struct {
	ID          uint32
	Name        string
	Location    uint32
	HasLocation bool

	// BuiltIn is set when the variable, or a member of its block, is
	// decorated BuiltIn.
	BuiltIn bool

	// Block is set when the variable's type, past any arrays, is a struct.
	Block bool

	Numeric NumericTraits
}

// DescriptorBinding is a resource variable bound through a descriptor set.
type DescriptorBinding struct {
	ID             uint32
	Name           string
	Set            uint32
	Binding        uint32
	DescriptorType DescriptorType

	// Image holds the OpTypeImage operands for image-like resources.
	Image ImageType

	// Count is the product of the array lengths around the resource, 1 for
	// a single resource and 0 when a runtime array is involved.
	Count uint32

	// NonWritable is set when the variable, or every member of its block,
	// is decorated NonWritable.
	NonWritable bool
}

// PushConstantBlock is a PushConstant variable.
type PushConstantBlock struct {
	ID     uint32
	Name   string
	Offset uint32
	Size   uint32
}

// InputVariables returns the Input variables of ep in interface order.
// With a nil ep every module-scope Input variable is returned.
func (m *Module) InputVariables(ep *EntryPoint) ([]InterfaceVariable, error) {
	return m.interfaceVariables(ep, StorageClassInput)
}

// OutputVariables returns the Output variables of ep in interface order.
// With a nil ep every module-scope Output variable is returned.
func (m *Module) OutputVariables(ep *EntryPoint) ([]InterfaceVariable, error) {
	return m.interfaceVariables(ep, StorageClassOutput)
}

func (m *Module) interfaceVariables(ep *EntryPoint, sc StorageClass) ([]InterfaceVariable, error) {
	var vars []Variable
	if ep == nil {
		vars = m.Variables
	} else {
		for _, id := range ep.Interface {
			v, ok := m.Variable(id)
			if !ok {
				return nil, errorf(-1, "entry point %q lists %%%d, which is not a module-scope variable", ep.Name, id)
			}
			vars = append(vars, v)
		}
	}

	result := make([]InterfaceVariable, 0, len(vars))
	for _, v := range vars {
		if v.StorageClass != sc {
			continue
		}
		pointee, err := m.pointee(v)
		if err != nil {
			return nil, err
		}
		iv := InterfaceVariable{
			ID:      v.ID,
			Name:    m.Name(v.ID),
			BuiltIn: m.isBuiltIn(v.ID, pointee),
		}
		if elem := m.unwrapArrays(pointee); elem != nil {
			iv.Block = elem.Op == OpTypeStruct
		}
		iv.Location, iv.HasLocation = m.decorationValue(v.ID, DecorationLocation)
		if iv.Numeric, err = m.numericTraits(pointee.ID); err != nil {
			return nil, err
		}
		result = append(result, iv)
	}
	return result, nil
}

func (m *Module) isBuiltIn(id uint32, t *Type) bool {
	if _, ok := m.Decoration(id, DecorationBuiltIn); ok {
		return true
	}
	t = m.unwrapArrays(t)
	if t == nil || t.Op != OpTypeStruct {
		return false
	}
	for i := range t.Members {
		if _, ok := m.MemberDecoration(t.ID, uint32(i), DecorationBuiltIn); ok {
			return true
		}
	}
	return false
}

func (m *Module) numericTraits(id uint32) (NumericTraits, error) {
	t, err := m.mustType(id)
	if err != nil {
		return NumericTraits{}, err
	}
	t = m.unwrapArrays(t)
	if t == nil {
		return NumericTraits{}, errorf(-1, "array element of %%%d is not a declared type", id)
	}

	switch t.Op {
	case OpTypeBool:
		return NumericTraits{Kind: ScalarKindBool, Components: 1}, nil
	case OpTypeInt:
		kind := ScalarKindUint
		if t.Signed {
			kind = ScalarKindSint
		}
		return NumericTraits{Kind: kind, Width: t.Width, Components: 1}, nil
	case OpTypeFloat:
		return NumericTraits{Kind: ScalarKindFloat, Width: t.Width, Components: 1}, nil
	case OpTypeVector:
		c, err := m.numericTraits(t.Elem)
		if err != nil {
			return NumericTraits{}, err
		}
		c.Components = t.Count
		return c, nil
	case OpTypeMatrix:
		c, err := m.numericTraits(t.Elem)
		if err != nil {
			return NumericTraits{}, err
		}
		c.Columns = t.Count
		return c, nil
	default:
		return NumericTraits{}, nil
	}
}

// DescriptorBindings returns the module's resource variables in declaration
// order.
func (m *Module) DescriptorBindings() ([]DescriptorBinding, error) {
	var result []DescriptorBinding
	for _, v := range m.Variables {
		switch v.StorageClass {
		case StorageClassUniformConstant, StorageClassUniform, StorageClassStorageBuffer:
		default:
			continue
		}
		pointee, err := m.pointee(v)
		if err != nil {
			return nil, err
		}
		binding, ok := m.decorationValue(v.ID, DecorationBinding)
		if !ok {
			return nil, errorf(-1, "resource variable %s has no Binding decoration", m.describe(v.ID))
		}
		set, _ := m.decorationValue(v.ID, DecorationDescriptorSet)

		count, elem, err := m.arrayCount(pointee)
		if err != nil {
			return nil, err
		}

		b := DescriptorBinding{
			ID:      v.ID,
			Name:    m.Name(v.ID),
			Set:     set,
			Binding: binding,
			Count:   count,
		}
		if b.Name == "" {
			b.Name = m.Name(elem.ID)
		}
		b.DescriptorType, b.Image = m.classify(elem, v.StorageClass)
		b.NonWritable = m.nonWritable(v.ID, elem)
		result = append(result, b)
	}
	return result, nil
}

func (m *Module) classify(t *Type, sc StorageClass) (DescriptorType, ImageType) {
	switch t.Op {
	case OpTypeSampler:
		return DescriptorTypeSampler, ImageType{}

	case OpTypeSampledImage:
		img, ok := m.Type(t.Elem)
		if !ok || img.Op != OpTypeImage {
			return DescriptorTypeUnknown, ImageType{}
		}
		if img.Image.Dim == DimBuffer {
			return DescriptorTypeUniformTexelBuffer, img.Image
		}
		return DescriptorTypeCombinedImageSampler, img.Image

	case OpTypeImage:
		switch {
		case t.Image.Dim == DimSubpassData:
			return DescriptorTypeInputAttachment, t.Image
		case t.Image.Dim == DimBuffer && t.Image.Sampled == 2:
			return DescriptorTypeStorageTexelBuffer, t.Image
		case t.Image.Dim == DimBuffer:
			return DescriptorTypeUniformTexelBuffer, t.Image
		case t.Image.Sampled == 2:
			return DescriptorTypeStorageImage, t.Image
		default:
			return DescriptorTypeSampledImage, t.Image
		}

	case OpTypeAccelerationStructureKHR:
		return DescriptorTypeAccelerationStructure, ImageType{}

	case OpTypeStruct:
		switch sc {
		case StorageClassStorageBuffer:
			return DescriptorTypeStorageBuffer, ImageType{}
		case StorageClassUniform:
			if _, ok := m.Decoration(t.ID, DecorationBufferBlock); ok {
				return DescriptorTypeStorageBuffer, ImageType{}
			}
			if _, ok := m.Decoration(t.ID, DecorationBlock); ok {
				return DescriptorTypeUniformBuffer, ImageType{}
			}
		}
	}
	return DescriptorTypeUnknown, ImageType{}
}

func (m *Module) nonWritable(id uint32, t *Type) bool {
	if _, ok := m.Decoration(id, DecorationNonWritable); ok {
		return true
	}
	if t.Op != OpTypeStruct || len(t.Members) == 0 {
		return false
	}
	for i := range t.Members {
		if _, ok := m.MemberDecoration(t.ID, uint32(i), DecorationNonWritable); !ok {
			return false
		}
	}
	return true
}

// PushConstantBlocks returns the module's PushConstant variables in
// declaration order. Offset is the smallest member offset and Size spans up
// to the end of the furthest member.
func (m *Module) PushConstantBlocks() ([]PushConstantBlock, error) {
	var result []PushConstantBlock
	for _, v := range m.Variables {
		if v.StorageClass != StorageClassPushConstant {
			continue
		}
		pointee, err := m.pointee(v)
		if err != nil {
			return nil, err
		}
		offset, end, err := m.extent(pointee)
		if err != nil {
			return nil, err
		}
		name := m.Name(v.ID)
		if name == "" {
			name = m.Name(pointee.ID)
		}
		result = append(result, PushConstantBlock{
			ID:     v.ID,
			Name:   name,
			Offset: offset,
			Size:   end - offset,
		})
	}
	return result, nil
}

// extent returns the first and one-past-last byte covered by t in a block.
func (m *Module) extent(t *Type) (uint32, uint32, error) {
	if t.Op != OpTypeStruct {
		size, err := m.sizeOf(t, memberLayout{})
		return 0, size, err
	}
	if len(t.Members) == 0 {
		return 0, 0, nil
	}

	first, end := ^uint32(0), uint32(0)
	for i, member := range t.Members {
		idx := uint32(i)
		offset, ok := m.memberDecorationValue(t.ID, idx, DecorationOffset)
		if !ok {
			return 0, 0, errorf(-1, "member %d of block %s has no Offset decoration", i, m.describe(t.ID))
		}
		mt, err := m.mustType(member)
		if err != nil {
			return 0, 0, err
		}
		size, err := m.sizeOf(mt, m.layoutOf(t.ID, idx))
		if err != nil {
			return 0, 0, err
		}
		memberEnd, err := safecast.Conv[uint32](uint64(offset) + uint64(size))
		if err != nil {
			return 0, 0, errorf(-1, "member %d of block %s ends past 4 GiB", i, m.describe(t.ID))
		}
		first = min(first, offset)
		end = max(end, memberEnd)
	}
	return first, end, nil
}

// memberLayout carries the member decorations that change a matrix's size.
type memberLayout struct {
	matrixStride uint32
	rowMajor     bool
}

func (m *Module) layoutOf(structID, member uint32) memberLayout {
	var l memberLayout
	l.matrixStride, _ = m.memberDecorationValue(structID, member, DecorationMatrixStride)
	_, l.rowMajor = m.MemberDecoration(structID, member, DecorationRowMajor)
	return l
}

func (m *Module) sizeOf(t *Type, l memberLayout) (uint32, error) {
	var size uint64
	switch t.Op {
	case OpTypeBool:
		size = 4
	case OpTypeInt, OpTypeFloat:
		size = uint64(t.Width / 8)
	case OpTypePointer:
		size = 8
	case OpTypeVector:
		c, err := m.mustType(t.Elem)
		if err != nil {
			return 0, err
		}
		cs, err := m.sizeOf(c, l)
		if err != nil {
			return 0, err
		}
		size = uint64(cs) * uint64(t.Count)
	case OpTypeMatrix:
		col, err := m.mustType(t.Elem)
		if err != nil {
			return 0, err
		}
		switch {
		case l.matrixStride != 0 && l.rowMajor:
			size = uint64(l.matrixStride) * uint64(col.Count)
		case l.matrixStride != 0:
			size = uint64(l.matrixStride) * uint64(t.Count)
		default:
			cs, err := m.sizeOf(col, l)
			if err != nil {
				return 0, err
			}
			size = uint64(cs) * uint64(t.Count)
		}
	case OpTypeArray:
		length, err := m.arrayLength(t)
		if err != nil {
			return 0, err
		}
		stride, ok := m.decorationValue(t.ID, DecorationArrayStride)
		if !ok {
			elem, err := m.mustType(t.Elem)
			if err != nil {
				return 0, err
			}
			if stride, err = m.sizeOf(elem, l); err != nil {
				return 0, err
			}
		}
		size = uint64(stride) * uint64(length)
	case OpTypeRuntimeArray:
		size = 0
	case OpTypeStruct:
		_, end, err := m.extent(t)
		if err != nil {
			return 0, err
		}
		size = uint64(end)
	default:
		return 0, errorf(-1, "%v %s has no size inside a block", t.Op, m.describe(t.ID))
	}
	s, err := safecast.Conv[uint32](size)
	if err != nil {
		return 0, errorf(-1, "size of %s overflows 32 bits", m.describe(t.ID))
	}
	return s, nil
}

// arrayCount unwraps arrays around t and returns the total element count
// and the innermost element type.
func (m *Module) arrayCount(t *Type) (uint32, *Type, error) {
	count := uint64(1)
	for {
		switch t.Op {
		case OpTypeArray:
			length, err := m.arrayLength(t)
			if err != nil {
				return 0, nil, err
			}
			count *= uint64(length)
			if count > uint64(^uint32(0)) {
				return 0, nil, errorf(-1, "array %s has more than 2^32 elements", m.describe(t.ID))
			}
		case OpTypeRuntimeArray:
			count = 0
		default:
			n, err := safecast.Conv[uint32](count)
			return n, t, err
		}
		next, err := m.mustType(t.Elem)
		if err != nil {
			return 0, nil, err
		}
		t = next
	}
}

func (m *Module) arrayLength(t *Type) (uint32, error) {
	c, ok := m.Constant(t.LengthID)
	if !ok || len(c) == 0 {
		return 0, errorf(-1, "length %%%d of array %s is not a scalar constant", t.LengthID, m.describe(t.ID))
	}
	return c[0], nil
}

func (m *Module) unwrapArrays(t *Type) *Type {
	for t != nil && (t.Op == OpTypeArray || t.Op == OpTypeRuntimeArray) {
		t = m.types[t.Elem]
	}
	return t
}

func (m *Module) pointee(v Variable) (*Type, error) {
	ptr, ok := m.Type(v.Type)
	if !ok || ptr.Op != OpTypePointer {
		return nil, errorf(-1, "variable %s has type %%%d, which is not a pointer", m.describe(v.ID), v.Type)
	}
	return m.mustType(ptr.Elem)
}

func (m *Module) mustType(id uint32) (*Type, error) {
	t, ok := m.Type(id)
	if !ok {
		return nil, errorf(-1, "%%%d is not a declared type", id)
	}
	return t, nil
}

// describe names id for error messages.
func (m *Module) describe(id uint32) string {
	if name := m.Name(id); name != "" {
		return fmt.Sprintf("%q (%%%d)", name, id)
	}
	return fmt.Sprintf("%%%d", id)
}
