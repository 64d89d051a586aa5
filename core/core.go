package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfemu/program"
)

// Core is a tape machine hosted on an akita engine. It executes one
// instruction per tick until the program counter falls off the program or an
// instruction faults.
type Core struct {
	*sim.TickingComponent

	state coreState
	emu   instEmulator

	halted bool
	err    error
}

// MapProgram sets the program that the core needs to run and rewinds the
// program counter. The tape and cursor are left as they are.
func (c *Core) MapProgram(prog program.Program) {
	c.state.Code = prog
	c.state.PC = 0
	c.halted = false
	c.err = nil
}

// Start schedules the first tick. TickingComponent does not tick on its own
// until something wakes it up.
func (c *Core) Start() {
	if c.halted {
		return
	}

	c.TickNow()
}

// Tick runs the program for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	if c.halted {
		return false
	}

	if c.state.done() {
		c.finish(nil)
		return false
	}

	inst := c.state.Code[c.state.PC]
	if TraceEnabled() {
		Trace("Inst",
			"Core", c.Name(),
			"PC", c.state.PC,
			"Inst", inst,
			"Cursor", c.state.Cursor,
			"Cell", c.state.Tape[c.state.Cursor],
		)
	}

	if err := c.emu.RunInst(inst, &c.state); err != nil {
		c.finish(err)
		return false
	}

	if c.state.done() {
		c.finish(nil)
		return false
	}

	return true
}

func (c *Core) finish(err error) {
	c.halted = true
	c.err = err

	if flushErr := flushOutput(&c.state); flushErr != nil && c.err == nil {
		c.err = flushErr
	}

	PrintState(&c.state)
	LogState(&c.state)
}

// Halted reports whether the core has stopped, normally or by a fault.
func (c *Core) Halted() bool {
	return c.halted
}

// Err returns the fault that stopped the core, if any.
func (c *Core) Err() error {
	return c.err
}

// PC returns the index of the next instruction.
func (c *Core) PC() int {
	return c.state.PC
}

// Cursor returns the current tape index.
func (c *Core) Cursor() int {
	return c.state.Cursor
}

// Cell returns the value stored at addr.
func (c *Core) Cell(addr int) uint8 {
	return c.state.Tape[addr]
}

// Steps returns the number of instructions executed so far.
func (c *Core) Steps() uint64 {
	return c.state.Steps
}
