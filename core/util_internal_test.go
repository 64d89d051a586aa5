package core

import (
	"bytes"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bfemu/program"
)

var _ = Describe("Trace", func() {
	var (
		prevLogger *slog.Logger
		logs       *bytes.Buffer
	)

	useLevel := func(level slog.Level) {
		slog.SetDefault(slog.New(slog.NewTextHandler(logs,
			&slog.HandlerOptions{Level: level})))
	}

	BeforeEach(func() {
		prevLogger = slog.Default()
		logs = new(bytes.Buffer)
	})

	AfterEach(func() {
		slog.SetDefault(prevLogger)
	})

	It("should stay quiet above LevelTrace", func() {
		useLevel(slog.LevelInfo)
		c := NewBuilder().Build("Core")
		c.MapProgram(program.MustCompile("++"))

		Expect(TraceEnabled()).To(BeFalse())
		Expect(c.Tick()).To(BeTrue())
		Expect(logs.String()).NotTo(ContainSubstring("msg=Inst"))
	})

	It("should record each instruction at LevelTrace", func() {
		useLevel(LevelTrace)
		c := NewBuilder().Build("Core")
		c.MapProgram(program.MustCompile("++"))

		Expect(TraceEnabled()).To(BeTrue())
		Expect(c.Tick()).To(BeTrue())
		Expect(logs.String()).To(ContainSubstring("msg=Inst"))
		Expect(logs.String()).To(ContainSubstring("Inst=Increment"))
	})
})
