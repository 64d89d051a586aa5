package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sarchlab/bfemu/program"
)

const (
	// TapeSize is the number of cells on the tape.
	TapeSize = 3000

	// DumpWindow is the number of cells shown by a DumpTape instruction.
	DumpWindow = 20
)

// ByteSource supplies the bytes consumed by Input instructions.
type ByteSource interface {
	ReadByte() (byte, error)
}

type flusher interface {
	Flush() error
}

type coreState struct {
	PC     int
	Cursor int
	Tape   [TapeSize]uint8
	Code   program.Program
	Steps  uint64

	In   ByteSource
	Out  io.Writer
	Diag io.Writer
}

func newState(in io.Reader, out, diag io.Writer) coreState {
	s := coreState{
		In:   asByteSource(in),
		Out:  out,
		Diag: diag,
	}

	if s.Out == nil {
		s.Out = io.Discard
	}

	if s.Diag == nil {
		s.Diag = io.Discard
	}

	return s
}

func asByteSource(in io.Reader) ByteSource {
	if in == nil {
		return strings.NewReader("")
	}

	if bs, ok := in.(ByteSource); ok {
		return bs
	}

	return bufio.NewReader(in)
}

// done reports whether the program counter has fallen off the program.
func (s *coreState) done() bool {
	return s.PC >= len(s.Code)
}

type instFunc func(instEmulator, program.Instruction, *coreState) error

var instFuncs = map[program.Opcode]instFunc{
	program.Increment:     instEmulator.runIncrement,
	program.Decrement:     instEmulator.runDecrement,
	program.MoveRight:     instEmulator.runMoveRight,
	program.MoveLeft:      instEmulator.runMoveLeft,
	program.Output:        instEmulator.runOutput,
	program.Input:         instEmulator.runInput,
	program.JumpIfZero:    instEmulator.runJumpIfZero,
	program.JumpIfNonZero: instEmulator.runJumpIfNonZero,
	program.DumpTape:      instEmulator.runDumpTape,
}

type instEmulator struct {
}

// RunInst executes one instruction and advances the program counter. A jump
// writes its target first, so the increment lands just past the partner
// bracket.
func (i instEmulator) RunInst(inst program.Instruction, state *coreState) error {
	run, ok := instFuncs[inst.Op]
	if !ok {
		return i.fault(inst, state, fmt.Errorf("unknown instruction %s", inst))
	}

	if err := run(i, inst, state); err != nil {
		return i.fault(inst, state, err)
	}

	state.PC++
	state.Steps++

	return nil
}

func (i instEmulator) fault(
	inst program.Instruction,
	state *coreState,
	err error,
) error {
	return &FaultError{
		PC:     state.PC,
		Inst:   inst,
		Cursor: state.Cursor,
		Err:    err,
	}
}

func (i instEmulator) runIncrement(_ program.Instruction, state *coreState) error {
	state.Tape[state.Cursor]++
	return nil
}

func (i instEmulator) runDecrement(_ program.Instruction, state *coreState) error {
	state.Tape[state.Cursor]--
	return nil
}

func (i instEmulator) runMoveRight(_ program.Instruction, state *coreState) error {
	return i.moveCursor(state, state.Cursor+1)
}

func (i instEmulator) runMoveLeft(_ program.Instruction, state *coreState) error {
	return i.moveCursor(state, state.Cursor-1)
}

func (i instEmulator) moveCursor(state *coreState, next int) error {
	if next < 0 || next >= TapeSize {
		return fmt.Errorf("%w: cannot move to cell %d of %d",
			ErrCursorOutOfRange, next, TapeSize)
	}

	state.Cursor = next

	return nil
}

func (i instEmulator) runOutput(_ program.Instruction, state *coreState) error {
	var buf [utf8.UTFMax]byte

	n := utf8.EncodeRune(buf[:], rune(state.Tape[state.Cursor]))
	if _, err := state.Out.Write(buf[:n]); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func (i instEmulator) runInput(_ program.Instruction, state *coreState) error {
	// A prompt written before the read must be visible while it blocks.
	if err := flushOutput(state); err != nil {
		return err
	}

	b, err := state.In.ReadByte()
	if errors.Is(err, io.EOF) {
		return ErrInputExhausted
	}

	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	state.Tape[state.Cursor] = b

	return nil
}

func (i instEmulator) runJumpIfZero(inst program.Instruction, state *coreState) error {
	if state.Tape[state.Cursor] == 0 {
		state.PC = inst.Target
	}

	return nil
}

func (i instEmulator) runJumpIfNonZero(inst program.Instruction, state *coreState) error {
	if state.Tape[state.Cursor] != 0 {
		state.PC = inst.Target
	}

	return nil
}

func (i instEmulator) runDumpTape(_ program.Instruction, state *coreState) error {
	window, err := tapeWindow(state)
	if err != nil {
		return err
	}

	if err := flushOutput(state); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(state.Diag, renderTape(state.Cursor, window)); err != nil {
		return fmt.Errorf("write diagnostics: %w", err)
	}

	return nil
}

func flushOutput(state *coreState) error {
	f, ok := state.Out.(flusher)
	if !ok {
		return nil
	}

	if err := f.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
