package spirv

import (
	"fmt"
	"io"
	"strings"
)

// Disassemble writes a textual listing of m to w in the style of
// spirv-dis. Debug names are not substituted for IDs.
func Disassemble(w io.Writer, m *Module) error {
	d := &disassembler{w: w}
	h := m.Header
	d.printf("; SPIR-V\n")
	d.printf("; Version: %d.%d\n", h.Version.Major, h.Version.Minor)
	d.printf("; Generator: 0x%08X\n", h.Generator)
	d.printf("; Bound: %d\n", h.Bound)
	d.printf("; Schema: %d\n", h.Schema)
	for _, inst := range m.Instructions {
		d.instruction(inst)
	}
	return d.err
}

type disassembler struct {
	w   io.Writer
	err error
}

func (d *disassembler) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func id(n uint32) string {
	return fmt.Sprintf("%%%d", n)
}

func ids(ops []uint32) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = id(op)
	}
	return strings.Join(parts, " ")
}

func literals(ops []uint32) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = fmt.Sprintf("%d", op)
	}
	return strings.Join(parts, " ")
}

func quoted(ops []uint32) (string, []uint32) {
	s, n, ok := decodeString(ops)
	if !ok {
		return `"?"`, nil
	}
	return fmt.Sprintf("%q", s), ops[n:]
}

// line prints a statement without a result ID.
func (d *disassembler) line(op OpCode, operands ...string) {
	d.printf("%*s%s\n", 15, "", strings.TrimRight(op.String()+" "+strings.Join(operands, " "), " "))
}

// result prints a statement that defines result.
func (d *disassembler) result(result uint32, op OpCode, operands ...string) {
	d.printf("%14s = %s\n", id(result), strings.TrimRight(op.String()+" "+strings.Join(operands, " "), " "))
}

//nolint:gocyclo,cyclop,funlen // one case per opcode family
func (d *disassembler) instruction(inst Instruction) {
	op, ops := inst.Opcode, inst.Words

	switch op {
	case OpCapability:
		d.line(op, Capability(ops[0]).String())

	case OpExtension:
		s, _ := quoted(ops)
		d.line(op, s)

	case OpExtInstImport, OpString:
		s, _ := quoted(ops[1:])
		d.result(ops[0], op, s)

	case OpMemoryModel:
		d.line(op, AddressingModel(ops[0]).String(), MemoryModel(ops[1]).String())

	case OpEntryPoint:
		name, rest := quoted(ops[2:])
		d.line(op, ExecutionModel(ops[0]).String(), id(ops[1]), name, ids(rest))

	case OpExecutionMode:
		d.line(op, id(ops[0]), ExecutionMode(ops[1]).String(), literals(ops[2:]))

	case OpName:
		s, _ := quoted(ops[1:])
		d.line(op, id(ops[0]), s)

	case OpMemberName:
		s, _ := quoted(ops[2:])
		d.line(op, id(ops[0]), fmt.Sprint(ops[1]), s)

	case OpDecorate:
		d.line(op, id(ops[0]), decorationOperands(Decoration(ops[1]), ops[2:]))

	case OpMemberDecorate:
		d.line(op, id(ops[0]), fmt.Sprint(ops[1]), decorationOperands(Decoration(ops[2]), ops[3:]))

	case OpGroupDecorate, OpGroupMemberDecorate:
		d.line(op, ids(ops))

	case OpTypeVoid, OpTypeBool, OpTypeSampler, OpTypeAccelerationStructureKHR, OpLabel, OpDecorationGroup:
		d.result(ops[0], op)

	case OpTypeInt:
		d.result(ops[0], op, literals(ops[1:]))

	case OpTypeFloat:
		d.result(ops[0], op, literals(ops[1:2]))

	case OpTypeVector, OpTypeMatrix:
		d.result(ops[0], op, id(ops[1]), fmt.Sprint(ops[2]))

	case OpTypeImage:
		d.result(ops[0], op, id(ops[1]), Dim(ops[2]).String(), literals(ops[3:7]), ImageFormat(ops[7]).String(), literals(ops[8:]))

	case OpTypeSampledImage, OpTypeRuntimeArray, OpTypeArray, OpTypeStruct, OpTypeFunction:
		d.result(ops[0], op, ids(ops[1:]))

	case OpTypePointer:
		d.result(ops[0], op, StorageClass(ops[1]).String(), id(ops[2]))

	case OpConstant, OpSpecConstant:
		d.result(ops[1], op, id(ops[0]), literals(ops[2:]))

	case OpVariable:
		d.result(ops[1], op, id(ops[0]), StorageClass(ops[2]).String(), ids(ops[3:]))

	case OpFunction:
		d.result(ops[1], op, id(ops[0]), functionControl(ops[2]), id(ops[3]))

	case OpCompositeExtract:
		d.result(ops[1], op, id(ops[0]), id(ops[2]), literals(ops[3:]))

	case OpVectorShuffle:
		d.result(ops[1], op, id(ops[0]), id(ops[2]), id(ops[3]), literals(ops[4:]))

	case OpFunctionEnd, OpReturn, OpNop:
		d.line(op)

	default:
		switch {
		case hasResultType(op) && len(ops) >= 2:
			d.result(ops[1], op, id(ops[0]), ids(ops[2:]))
		default:
			d.line(op, ids(ops))
		}
	}
}

func decorationOperands(dec Decoration, ops []uint32) string {
	switch {
	case dec == DecorationBuiltIn && len(ops) > 0:
		return dec.String() + " " + BuiltIn(ops[0]).String()
	case len(ops) > 0:
		return dec.String() + " " + literals(ops)
	default:
		return dec.String()
	}
}

func functionControl(mask uint32) string {
	if mask == 0 {
		return "None"
	}
	names := []string{"Inline", "DontInline", "Pure", "Const"}
	var parts []string
	for i, n := range names {
		if mask&(1<<i) != 0 {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, "|")
}

// hasResultType reports whether op's first two operands are a result type
// and a result ID.
func hasResultType(op OpCode) bool {
	switch op {
	case OpUndef, OpExtInst, OpConstantTrue, OpConstantFalse, OpConstantComposite,
		OpConstantNull, OpSpecConstantTrue, OpSpecConstantFalse, OpSpecConstantComposite,
		OpFunctionParameter, OpFunctionCall, OpLoad, OpAccessChain,
		OpCompositeConstruct, OpSampledImage, OpImageSampleImplicitLod:
		return true
	}
	// Conversion, composite, arithmetic and logical instructions.
	return op >= 109 && op <= 205
}
