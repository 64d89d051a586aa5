// Package api defines the driver that runs programs on a tape core.
package api

import (
	"fmt"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfemu/program"
)

// Driver provides the interface to control a tape machine.
type Driver interface {
	// MapProgram maps the provided program to the core.
	MapProgram(prog program.Program)

	// Run starts the core and runs the engine until the core stops. It
	// returns the fault that stopped the core, if any.
	Run() error
}

// TapeCore is the part of a core that the driver controls.
type TapeCore interface {
	Name() string
	MapProgram(prog program.Program)
	Start()
	Halted() bool
	Err() error
	Steps() uint64
}

type driverImpl struct {
	name   string
	engine sim.Engine
	core   TapeCore
}

func (d *driverImpl) MapProgram(prog program.Program) {
	d.core.MapProgram(prog)
}

// Run runs the mapped program to completion.
func (d *driverImpl) Run() error {
	d.core.Start()

	if err := d.engine.Run(); err != nil {
		return fmt.Errorf("%s: engine stopped: %w", d.name, err)
	}

	if err := d.core.Err(); err != nil {
		return err
	}

	if !d.core.Halted() {
		return fmt.Errorf("%s: %s went idle before the end of its program",
			d.name, d.core.Name())
	}

	slog.Debug("RunComplete",
		"Driver", d.name,
		"Core", d.core.Name(),
		"Steps", d.core.Steps(),
		"Time", d.engine.CurrentTime(),
	)

	return nil
}
