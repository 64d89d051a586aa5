package core

import (
	"errors"
	"fmt"

	"github.com/sarchlab/bfemu/program"
)

var (
	// ErrCursorOutOfRange is reported when the cursor, or the dump window
	// starting at it, would leave the tape.
	ErrCursorOutOfRange = errors.New("cursor out of range")

	// ErrInputExhausted is reported when an Input instruction finds the
	// input stream at its end.
	ErrInputExhausted = errors.New("input exhausted")
)

// FaultError stops a run. It records where the machine was when the
// instruction failed.
type FaultError struct {
	PC     int
	Inst   program.Instruction
	Cursor int
	Err    error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%s at PC %d (cursor %d): %v", e.Inst, e.PC, e.Cursor, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}
