package errors

import (
	stderrs "errors"
	"fmt"
	"testing"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeInvalidArgument, 64},
		{ErrorCodeInvalidFilter, 64},
		{ErrorCodeValidation, 65},
		{ErrorCodeJSON, 65},
		{ErrorCodeNotFound, 66},
		{ErrorCodeUnknown, 70},
		{9999, 70}, // default branch
	}
	for _, c := range cases {
		if got := ExitCode(c.code); got != c.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
	if Exit(nil) != 0 {
		t.Fatalf("Exit(nil) should be 0")
	}
	if Exit(stderrs.New("x")) != 70 {
		t.Fatalf("Exit(foreign) should be 70")
	}
}

func TestCodeNames(t *testing.T) {
	names := map[ErrorCode]string{
		ErrorCodeUnknown:         "unknown",
		ErrorCodeInvalidArgument: "invalid_argument",
		ErrorCodeValidation:      "validation",
		ErrorCodeInvalidFilter:   "invalid_filter",
		ErrorCodeJSON:            "json",
		ErrorCodeNotFound:        "not_found",
	}
	for c, want := range names {
		if got := c.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", c, got, want)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeNotFound, "open failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	e4 := Wrapf(src, ErrorCodeInvalidArgument, "nope %s", "here")
	if want := "nope here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}

	if got, ok := As(e4); !ok || got.Code() != ErrorCodeInvalidArgument {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	e5 := Wrap(src, ErrorCodeValidation, "oops")
	e6 := WithField(e5, "sentiment")
	e7 := WithOp(e6, "ingest")
	if fe, ok := As(e6); !ok || fe.Field() != "sentiment" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(e7); !ok || oe.Op() != "ingest" {
		t.Fatalf("WithOp failed")
	}
	if fe0, _ := As(e5); fe0.Field() != "" || fe0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}
	if WithField(src, "x") != src {
		t.Fatalf("WithField on foreign error should pass through")
	}

	w := (&Error{code: ErrorCodeInvalidFilter, msg: "nope", field: "sentiment"}).ToWire()
	if w.Code != ErrorCodeInvalidFilter || w.Kind != "invalid_filter" || w.Message != "nope" || w.Field != "sentiment" {
		t.Fatalf("ToWire mismatch: %+v", w)
	}
	if wf := WireFrom(nil); wf != (Wire{}) {
		t.Fatalf("WireFrom(nil) expected zero, got %+v", wf)
	}
	if wf := WireFrom(src); wf.Code != ErrorCodeUnknown || wf.Message != "root" {
		t.Fatalf("WireFrom(foreign) mismatch: %+v", wf)
	}
	if wf := WireFrom(e4); wf.Message != "nope here" {
		t.Fatalf("WireFrom(ours) mismatch: %+v", wf)
	}

	if CodeOf(NotFoundf("x")) != ErrorCodeNotFound ||
		CodeOf(InvalidArgf("x")) != ErrorCodeInvalidArgument ||
		CodeOf(Validationf("x")) != ErrorCodeValidation ||
		CodeOf(InvalidFilterf("x")) != ErrorCodeInvalidFilter ||
		CodeOf(JSONErrf("x")) != ErrorCodeJSON ||
		CodeOf(Internalf("x")) != ErrorCodeUnknown {
		t.Fatalf("sugar helpers code mismatch")
	}

	deep := fmt.Errorf("level2: %w", fmt.Errorf("level1: %w", InvalidFilterf("bad")))
	if got := CodeOf(deep); got != ErrorCodeInvalidFilter {
		t.Fatalf("CodeOf(wrapped) = %v, want %v", got, ErrorCodeInvalidFilter)
	}
	if got := Exit(deep); got != 64 {
		t.Fatalf("Exit(wrapped) = %d, want 64", got)
	}
}
