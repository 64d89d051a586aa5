package config_test

import (
	"bufio"
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfemu/config"
	"github.com/sarchlab/bfemu/core"
	"github.com/sarchlab/bfemu/program"
)

var _ = Describe("PlatformBuilder", func() {
	It("should name the core after the platform", func() {
		p := config.PlatformBuilder{}.Build("BF")

		Expect(p.Core.Name()).To(Equal("BF.Core"))
		Expect(p.Engine).NotTo(BeNil())
		Expect(p.Driver).NotTo(BeNil())
	})

	It("should run a program end to end", func() {
		out := gbytes.NewBuffer()
		p := config.PlatformBuilder{}.
			WithFreq(2 * sim.GHz).
			WithInput(strings.NewReader("bc")).
			WithOutput(out).
			Build("BF")

		p.Driver.MapProgram(program.MustCompile(",-.>,-."))
		Expect(p.Driver.Run()).To(Succeed())

		Expect(out).To(gbytes.Say("ab"))
		Expect(p.Core.Steps()).To(Equal(uint64(7)))
		Expect(p.Engine.CurrentTime()).To(BeNumerically(">", 0))
	})

	It("should flush buffered output when the run ends", func() {
		sink := new(bytes.Buffer)
		out := bufio.NewWriter(sink)
		p := config.PlatformBuilder{}.WithOutput(out).Build("BF")

		p.Driver.MapProgram(program.MustCompile("++++++++[>++++++++<-]>+."))
		Expect(p.Driver.Run()).To(Succeed())

		Expect(sink.String()).To(Equal("A"))
	})

	It("should surface a runtime fault", func() {
		diag := new(bytes.Buffer)
		p := config.PlatformBuilder{}.WithDiagnostics(diag).Build("BF")

		p.Driver.MapProgram(program.MustCompile("#<"))
		err := p.Driver.Run()

		Expect(err).To(MatchError(core.ErrCursorOutOfRange))
		Expect(diag.String()).To(ContainSubstring("Tape@0"))
		Expect(p.Core.Halted()).To(BeTrue())
	})
})
