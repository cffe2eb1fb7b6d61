package validation_test

import (
	"testing"
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestRun_EvaluatesEveryCheckInOrder(t *testing.T) {
	t.Parallel()

	checks := []validation.Check[int]{
		{Name: "a", Field: "x", Fn: func(int, time.Time) validation.Outcome { return validation.Fail("boom") }},
		{Name: "b", Fn: func(n int, _ time.Time) validation.Outcome {
			if n > 0 {
				return validation.Pass("positive")
			}
			return validation.Warn("got %d", n)
		}},
		{Name: "c", Fn: func(int, time.Time) validation.Outcome { return validation.Skip("n/a") }},
	}

	got := validation.Run(checks, 5, testNow)
	if len(got) != 3 {
		t.Fatalf("len(Run()) = %d, want 3", len(got))
	}

	want := []struct {
		check  string
		field  string
		status validation.Status
	}{
		{"a", "x", validation.StatusError},
		{"b", "", validation.StatusPass},
		{"c", "", validation.StatusSkipped},
	}
	for i, w := range want {
		if got[i].Check != w.check || got[i].Field != w.field || got[i].Status != w.status {
			t.Errorf("Run()[%d] = %+v, want check=%s field=%s status=%s", i, got[i], w.check, w.field, w.status)
		}
	}
}

func TestRun_RecoversPanickingCheck(t *testing.T) {
	t.Parallel()

	checks := []validation.Check[*int]{
		{Name: "deref", Fn: func(p *int, _ time.Time) validation.Outcome {
			if *p > 0 {
				return validation.Pass("ok")
			}
			return validation.Fail("bad")
		}},
		{Name: "after", Fn: func(*int, time.Time) validation.Outcome { return validation.Pass("still ran") }},
	}

	got := validation.Run(checks, (*int)(nil), testNow)
	if got[0].Status != validation.StatusError {
		t.Errorf("panicking check status = %s, want error", got[0].Status)
	}
	if got[1].Status != validation.StatusPass {
		t.Errorf("check after panic status = %s, want pass", got[1].Status)
	}
}

func TestRun_NilPredicateAndBadStatus(t *testing.T) {
	t.Parallel()

	checks := []validation.Check[int]{
		{Name: "nil"},
		{Name: "bogus", Fn: func(int, time.Time) validation.Outcome { return validation.Outcome{Status: "maybe"} }},
	}

	for i, o := range validation.Run(checks, 0, testNow) {
		if o.Status != validation.StatusError {
			t.Errorf("Run()[%d].Status = %s, want error", i, o.Status)
		}
	}
}
