package api

import "github.com/sarchlab/akita/v4/sim"

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine sim.Engine
	core   TapeCore
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithCore sets the core that the driver controls.
func (b DriverBuilder) WithCore(core TapeCore) DriverBuilder {
	b.core = core
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	if b.engine == nil {
		panic("driver needs an engine")
	}

	if b.core == nil {
		panic("driver needs a core")
	}

	return &driverImpl{
		name:   name,
		engine: b.engine,
		core:   b.core,
	}
}
