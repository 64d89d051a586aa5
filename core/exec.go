package core

import (
	"io"

	"github.com/sarchlab/bfemu/program"
)

// Result is the machine state left behind by Execute.
type Result struct {
	Steps  uint64
	Cursor int
	Tape   [TapeSize]uint8
}

// Execute runs prog on a fresh tape without an engine. It returns when the
// program counter falls off the end of the program, or with a *FaultError
// when an instruction cannot complete. Output produced before a fault has
// already been written.
func Execute(
	prog program.Program,
	in io.Reader,
	out io.Writer,
	diag io.Writer,
) (Result, error) {
	state := newState(in, out, diag)
	state.Code = prog

	var emu instEmulator
	for !state.done() {
		if err := emu.RunInst(state.Code[state.PC], &state); err != nil {
			_ = flushOutput(&state)
			return state.result(), err
		}
	}

	if err := flushOutput(&state); err != nil {
		return state.result(), err
	}

	return state.result(), nil
}

func (s *coreState) result() Result {
	return Result{
		Steps:  s.Steps,
		Cursor: s.Cursor,
		Tape:   s.Tape,
	}
}
