package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	PrintToggle            = false
	LevelTrace  slog.Level = slog.LevelDebug - 4
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// TraceEnabled reports whether the default logger records LevelTrace.
// Callers on hot paths check it before building Trace arguments.
func TraceEnabled() bool {
	return slog.Default().Enabled(context.Background(), LevelTrace)
}

// tapeWindow returns the DumpWindow cells starting at the cursor.
func tapeWindow(state *coreState) ([]uint8, error) {
	end := state.Cursor + DumpWindow
	if end > TapeSize {
		return nil, fmt.Errorf("%w: dump window %d..%d exceeds %d cells",
			ErrCursorOutOfRange, state.Cursor, end-1, TapeSize)
	}

	return state.Tape[state.Cursor:end], nil
}

func renderTape(cursor int, window []uint8) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Tape@%d", cursor))

	header := table.Row{"Cell"}
	values := table.Row{"Value"}
	for offset, v := range window {
		header = append(header, cursor+offset)
		values = append(values, v)
	}

	t.AppendHeader(header)
	t.AppendRow(values)

	return t.Render()
}

func PrintState(state *coreState) {
	if !PrintToggle {
		return
	}

	fmt.Printf("==============State@PC %d==============\n", state.PC)

	t := table.NewWriter()
	t.SetTitle("Registers")
	t.AppendHeader(table.Row{"PC", "Cursor", "Cell", "Steps", "Next"})

	next := "-"
	if !state.done() {
		next = state.Code[state.PC].String()
	}

	t.AppendRow(table.Row{
		state.PC, state.Cursor, state.Tape[state.Cursor], state.Steps, next,
	})

	fmt.Println(t.Render())
	fmt.Println("========================================")
}

func LogState(state *coreState) {
	slog.Debug("StateCheckpoint",
		"PC", state.PC,
		"Cursor", state.Cursor,
		"Cell", state.Tape[state.Cursor],
		"Steps", state.Steps,
		"ProgramLen", len(state.Code),
	)
}
