package program

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmatchedClose is reported for a ']' with no pending '['.
	ErrUnmatchedClose = errors.New("unmatched closing bracket")

	// ErrUnmatchedOpen is reported for a '[' that is never closed.
	ErrUnmatchedOpen = errors.New("unmatched opening bracket")
)

// Position locates a character in the source text. Offset counts runes from
// the start of the source; Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// CompileError describes a bracket that could not be matched.
type CompileError struct {
	Kind error
	Pos  Position
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v at %s", e.Kind, e.Pos)
}

func (e *CompileError) Unwrap() error {
	return e.Kind
}

type pendingBracket struct {
	index int
	pos   Position
}

// Compile translates source text into a Program. Characters outside the
// instruction set are skipped and do not occupy an instruction index. Every
// jump in a returned Program is resolved to the index of its partner bracket.
func Compile(source string) (Program, error) {
	var (
		prog    Program
		pending []pendingBracket
	)

	pos := Position{Line: 1, Column: 1}
	for _, c := range source {
		switch c {
		case '[':
			pending = append(pending, pendingBracket{index: len(prog), pos: pos})
			prog = append(prog, Instruction{Op: JumpIfZero})
		case ']':
			if len(pending) == 0 {
				return nil, &CompileError{Kind: ErrUnmatchedClose, Pos: pos}
			}

			open := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			prog[open.index].Target = len(prog)
			prog = append(prog, Instruction{Op: JumpIfNonZero, Target: open.index})
		default:
			if op, ok := charToOpcode[c]; ok {
				prog = append(prog, Instruction{Op: op})
			}
		}

		pos = advance(pos, c)
	}

	// The bottom of the stack is the earliest '[' left open.
	if len(pending) > 0 {
		return nil, &CompileError{Kind: ErrUnmatchedOpen, Pos: pending[0].pos}
	}

	return prog, nil
}

// MustCompile is like Compile but panics if the source does not compile.
func MustCompile(source string) Program {
	prog, err := Compile(source)
	if err != nil {
		panic(err)
	}

	return prog
}

func advance(pos Position, c rune) Position {
	pos.Offset++
	if c == '\n' {
		pos.Line++
		pos.Column = 1
		return pos
	}

	pos.Column++

	return pos
}
