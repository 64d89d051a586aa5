package core

import (
	"io"

	"github.com/sarchlab/akita/v4/sim"
)

// Builder can create new cores.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	in     io.Reader
	out    io.Writer
	diag   io.Writer
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	if freq <= 0 {
		panic("frequency must be positive")
	}
	b.freq = freq
	return b
}

// WithInput sets the stream read by Input instructions.
func (b Builder) WithInput(in io.Reader) Builder {
	b.in = in
	return b
}

// WithOutput sets the stream written by Output instructions. If it has a
// Flush method, the core flushes it before blocking on input, before a tape
// dump, and when the run ends.
func (b Builder) WithOutput(out io.Writer) Builder {
	b.out = out
	return b
}

// WithDiagnostics sets the stream that receives tape dumps.
func (b Builder) WithDiagnostics(diag io.Writer) Builder {
	b.diag = diag
	return b
}

func NewBuilder() Builder {
	return Builder{
		freq: 1 * sim.GHz,
	}
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	c := &Core{}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.state = newState(b.in, b.out, b.diag)

	return c
}
