// Command bfemu compiles a tape program and runs it.
//
// Usage:
//
//	bfemu [source-file]
//
// Without a source file the program is read from standard input. The
// compiled program is printed before it runs. Program output goes to standard
// output and tape dumps to standard error.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/bfemu/config"
	"github.com/sarchlab/bfemu/program"
	"github.com/tebeka/atexit"
)

const (
	exitOK    = 0
	exitError = 1
	exitFault = 2
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [source-file]\n", os.Args[0])
	}
	flag.Parse()

	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		_ = out.Flush()
	})

	source, err := loadSource(flag.Arg(0), os.Stdin)
	if err != nil {
		slog.Error("Problem reading input", "err", err)
		atexit.Exit(exitError)
	}

	prog, err := program.Compile(source)
	if err != nil {
		slog.Error("Compilation failed", "err", err)
		atexit.Exit(exitError)
	}

	fmt.Fprintln(out, prog)

	platform := config.PlatformBuilder{}.
		WithInput(os.Stdin).
		WithOutput(out).
		WithDiagnostics(os.Stderr).
		Build("BF")

	platform.Driver.MapProgram(prog)
	if err := platform.Driver.Run(); err != nil {
		slog.Error("Execution aborted", "err", err)
		atexit.Exit(exitFault)
	}

	atexit.Exit(exitOK)
}
