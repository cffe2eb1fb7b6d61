package validation

import (
	"fmt"
	"time"
)

// Outcome is what a check reports about its subject.
type Outcome struct {
	Check   string
	Field   string
	Status  Status
	Message string
}

// Pass, Warn, Fail and Skip build outcomes. Run fills in Check and Field.
func Pass(msg string) Outcome { return Outcome{Status: StatusPass, Message: msg} }

// Warn builds a warning outcome.
func Warn(format string, args ...any) Outcome {
	return Outcome{Status: StatusWarning, Message: fmt.Sprintf(format, args...)}
}

// Fail builds an error outcome.
func Fail(format string, args ...any) Outcome {
	return Outcome{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

// Skip builds a skipped outcome; msg says why the check did not apply.
func Skip(msg string) Outcome { return Outcome{Status: StatusSkipped, Message: msg} }

// Check is a named predicate over a subject of type S. Name must be stable
// across releases because persisted results are keyed by it.
type Check[S any] struct {
	Name  string
	Field string
	Fn    func(subject S, now time.Time) Outcome
}

// Run evaluates every check in order and returns one outcome per check.
// A check that panics is recorded as an error rather than aborting the run.
func Run[S any](checks []Check[S], subject S, now time.Time) []Outcome {
	out := make([]Outcome, 0, len(checks))
	for _, c := range checks {
		o := evaluate(c, subject, now)
		o.Check = c.Name
		o.Field = c.Field
		out = append(out, o)
	}
	return out
}

func evaluate[S any](c Check[S], subject S, now time.Time) (o Outcome) {
	defer func() {
		if v := recover(); v != nil {
			o = Fail("check panicked: %v", v)
		}
	}()
	if c.Fn == nil {
		return Fail("check has no predicate")
	}
	o = c.Fn(subject, now)
	if !o.Status.IsValid() {
		return Fail("check returned invalid status %q", o.Status)
	}
	return o
}
