// Package program defines the instruction set of the tape machine and the
// compiler that turns source text into a Program.
package program

import (
	"fmt"
	"strings"
)

// Opcode identifies the operation an instruction performs.
type Opcode uint8

const (
	Increment Opcode = iota
	Decrement
	MoveRight
	MoveLeft
	Output
	Input
	JumpIfZero
	JumpIfNonZero
	DumpTape
)

var opcodeNames = map[Opcode]string{
	Increment:     "Increment",
	Decrement:     "Decrement",
	MoveRight:     "MoveRight",
	MoveLeft:      "MoveLeft",
	Output:        "Output",
	Input:         "Input",
	JumpIfZero:    "JumpIfZero",
	JumpIfNonZero: "JumpIfNonZero",
	DumpTape:      "DumpTape",
}

// String returns the name of the opcode.
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}

	return fmt.Sprintf("Opcode(%d)", uint8(o))
}

// IsJump reports whether the opcode carries a jump target.
func (o Opcode) IsJump() bool {
	return o == JumpIfZero || o == JumpIfNonZero
}

// Instruction is one compiled operation. Target is only meaningful for jumps,
// where it holds the index of the matching bracket instruction.
type Instruction struct {
	Op     Opcode
	Target int
}

func (i Instruction) String() string {
	if i.Op.IsJump() {
		return fmt.Sprintf("%s(%d)", i.Op, i.Target)
	}

	return i.Op.String()
}

// Program is an ordered instruction sequence. Execution starts at index 0.
type Program []Instruction

// String renders the program in its debug form, e.g.
// "[Increment, JumpIfZero(3), Decrement, JumpIfNonZero(1)]".
func (p Program) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for idx, inst := range p {
		if idx > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(inst.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

var charToOpcode = map[rune]Opcode{
	'+': Increment,
	'-': Decrement,
	'>': MoveRight,
	'<': MoveLeft,
	'.': Output,
	',': Input,
	'#': DumpTape,
}
