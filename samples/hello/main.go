package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfemu/config"
	"github.com/sarchlab/bfemu/program"
	"github.com/tebeka/atexit"
)

//go:embed hello.bf
var helloKernel string

func hello(p *config.Platform) {
	p.Driver.MapProgram(program.MustCompile(helloKernel))

	if err := p.Driver.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	fmt.Printf("steps=%d time=%v\n", p.Core.Steps(), p.Engine.CurrentTime())
}

func main() {
	platform := config.PlatformBuilder{}.
		WithFreq(1 * sim.GHz).
		WithOutput(os.Stdout).
		WithDiagnostics(os.Stderr).
		Build("Hello")

	hello(platform)

	atexit.Exit(0)
}
