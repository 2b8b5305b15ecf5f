package spirv

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// Error reports a malformed or structurally unusable SPIR-V module.
type Error struct {
	// Offset is the word offset of the offending instruction, or -1.
	Offset int

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("spirv: word %d: %s", e.Offset, e.Message)
	}
	return "spirv: " + e.Message
}

func errorf(offset int, format string, args ...any) *Error {
	return &Error{Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// Header is the five-word SPIR-V module header.
type Header struct {
	Version   Version
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// DecodeBytes decodes a little-endian SPIR-V binary.
func DecodeBytes(data []byte) (*Module, error) {
	if len(data)%4 != 0 {
		return nil, errorf(-1, "binary size %d is not a multiple of 4", len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return Decode(words)
}

// Decode parses a SPIR-V word stream. The stream may use either byte order.
// The module works on a private copy; the caller's slice is neither modified
// nor retained.
func Decode(words []uint32) (*Module, error) {
	if len(words) < HeaderWords {
		return nil, errorf(-1, "module too small: %d words, want at least %d", len(words), HeaderWords)
	}
	switch words[0] {
	case MagicNumber:
		words = slices.Clone(words)
	case bits.ReverseBytes32(MagicNumber):
		swapped := make([]uint32, len(words))
		for i, w := range words {
			swapped[i] = bits.ReverseBytes32(w)
		}
		words = swapped
	default:
		return nil, errorf(0, "invalid magic number 0x%08X", words[0])
	}

	m := newModule(Header{
		Version:   versionFromWord(words[1]),
		Generator: words[2],
		Bound:     words[3],
		Schema:    words[4],
	})

	offset := HeaderWords
	for offset < len(words) {
		word := words[offset]
		opcode := OpCode(word & 0xFFFF)
		wordCount := int(word >> 16)
		if wordCount == 0 {
			return nil, errorf(offset, "%v has word count 0", opcode)
		}
		if offset+wordCount > len(words) {
			return nil, errorf(offset, "%v with %d words runs past the end of the module", opcode, wordCount)
		}
		inst := Instruction{Opcode: opcode, Words: words[offset+1 : offset+wordCount : offset+wordCount]}
		if err := m.index(offset, inst); err != nil {
			return nil, err
		}
		m.Instructions = append(m.Instructions, inst)
		offset += wordCount
	}
	return m, nil
}

// decodeString decodes a NUL-terminated literal string at the start of
// words, returning the string and the number of words it occupies.
func decodeString(words []uint32) (string, int, bool) {
	var sb strings.Builder
	for i, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			c := byte(w >> shift)
			if c == 0 {
				return sb.String(), i + 1, true
			}
			sb.WriteByte(c)
		}
	}
	return "", 0, false
}
