package prover

import (
	"fmt"
	"io"

	"resolution/pkg/logic"
)

// Step describes one successful resolution step: the two parent clauses
// (with their store ids) and the inserted resolvent.
type Step struct {
	LeftID      int
	RightID     int
	Left        logic.Clause
	Right       logic.Clause
	ResolventID int
	Resolvent   logic.Clause
}

// Tracer receives one Step per resolvent inserted into the store.
type Tracer interface {
	Trace(step Step)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ Step) {
}

// LoggingTracer writes one line per step, with an explicit marker when the
// resolvent is the empty clause.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(step Step) {
	if step.Resolvent.Empty() {
		fmt.Fprintf(t.Writer, "[%d x %d] %v + %v => empty clause derived\n",
			step.LeftID, step.RightID, step.Left, step.Right)
		return
	}
	fmt.Fprintf(t.Writer, "[%d x %d] %v + %v => [%d] %v\n",
		step.LeftID, step.RightID, step.Left, step.Right, step.ResolventID, step.Resolvent)
}

// RecordingTracer collects steps for later inspection.
type RecordingTracer struct {
	Steps []Step
}

func (t *RecordingTracer) Trace(step Step) {
	t.Steps = append(t.Steps, step)
}
