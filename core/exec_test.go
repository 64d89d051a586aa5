package core_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bfemu/core"
	"github.com/sarchlab/bfemu/program"
)

var _ = Describe("Execute", func() {
	for _, pc := range loadProgramCases("testdata/programs.yaml") {
		pc := pc

		It("should run "+pc.Name, func() {
			prog := program.MustCompile(pc.Source)
			out := new(bytes.Buffer)

			result, err := core.Execute(
				prog, strings.NewReader(pc.Input), out, nil)

			if pc.Fault != "" {
				var fault *core.FaultError
				Expect(err).To(BeAssignableToTypeOf(fault))
				Expect(err.Error()).To(ContainSubstring(pc.Fault))
			} else {
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(out.String()).To(Equal(pc.Output))
			for addr, value := range pc.Cells {
				Expect(result.Tape[addr]).To(Equal(value), "cell %d", addr)
			}

			if pc.Steps != nil {
				Expect(result.Steps).To(Equal(*pc.Steps))
			}
		})
	}

	It("should write nothing for an empty program", func() {
		out := new(bytes.Buffer)
		diag := new(bytes.Buffer)

		result, err := core.Execute(nil, nil, out, diag)

		Expect(err).NotTo(HaveOccurred())
		Expect(out.Len()).To(BeZero())
		Expect(diag.Len()).To(BeZero())
		Expect(result.Steps).To(BeZero())
		Expect(result.Cursor).To(BeZero())
	})

	It("should dump the tape to the diagnostic stream only", func() {
		out := new(bytes.Buffer)
		diag := new(bytes.Buffer)

		_, err := core.Execute(program.MustCompile("+++>++<#"), nil, out, diag)

		Expect(err).NotTo(HaveOccurred())
		Expect(out.Len()).To(BeZero())
		Expect(diag.String()).To(ContainSubstring("Tape@0"))
	})

	It("should fault on a dump window past the tape end", func() {
		source := strings.Repeat(">", core.TapeSize-core.DumpWindow+1) + "#"

		result, err := core.Execute(program.MustCompile(source), nil, nil, nil)

		Expect(err).To(MatchError(core.ErrCursorOutOfRange))
		Expect(result.Cursor).To(Equal(core.TapeSize - core.DumpWindow + 1))
	})

	It("should keep output written before a fault", func() {
		out := new(bytes.Buffer)

		_, err := core.Execute(program.MustCompile("+++.<"), nil, out, nil)

		Expect(err).To(MatchError(core.ErrCursorOutOfRange))
		Expect(out.Bytes()).To(Equal([]byte{3}))
	})
})
