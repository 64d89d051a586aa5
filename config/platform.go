// Package config provides a default configuration for the tape machine.
package config

import (
	"io"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfemu/api"
	"github.com/sarchlab/bfemu/core"
)

// Platform is a tape core and its driver sharing one engine.
type Platform struct {
	Engine sim.Engine
	Core   *core.Core
	Driver api.Driver
}

// PlatformBuilder can build platforms.
type PlatformBuilder struct {
	freq sim.Freq
	in   io.Reader
	out  io.Writer
	diag io.Writer
}

// WithFreq sets the frequency of the core.
func (b PlatformBuilder) WithFreq(freq sim.Freq) PlatformBuilder {
	b.freq = freq
	return b
}

// WithInput sets the stream read by Input instructions.
func (b PlatformBuilder) WithInput(in io.Reader) PlatformBuilder {
	b.in = in
	return b
}

// WithOutput sets the stream written by Output instructions.
func (b PlatformBuilder) WithOutput(out io.Writer) PlatformBuilder {
	b.out = out
	return b
}

// WithDiagnostics sets the stream that receives tape dumps.
func (b PlatformBuilder) WithDiagnostics(diag io.Writer) PlatformBuilder {
	b.diag = diag
	return b
}

// Build creates a platform on a new serial engine.
func (b PlatformBuilder) Build(name string) *Platform {
	engine := sim.NewSerialEngine()

	coreBuilder := core.NewBuilder().
		WithEngine(engine).
		WithInput(b.in).
		WithOutput(b.out).
		WithDiagnostics(b.diag)
	if b.freq > 0 {
		coreBuilder = coreBuilder.WithFreq(b.freq)
	}

	c := coreBuilder.Build(name + ".Core")

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithCore(c).
		Build(name + ".Driver")

	return &Platform{
		Engine: engine,
		Core:   c,
		Driver: driver,
	}
}
