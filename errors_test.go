package refill

import (
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	err := NewUnknownStandard("x")
	if !IsUnknownStandard(err) {
		t.Errorf("not an unknown-standard error: %v", err)
	}
	if IsDegenerateArea(err) || IsInvalidContentDimensions(err) {
		t.Errorf("error matches the wrong kind: %v", err)
	}

	err = NewDegenerateArea("0x0")
	if !IsDegenerateArea(err) {
		t.Errorf("not a degenerate-area error: %v", err)
	}

	err = NewInvalidContentDimensions("0x0")
	if !IsInvalidContentDimensions(err) {
		t.Errorf("not an invalid-dimensions error: %v", err)
	}

	if IsUnknownStandard(fmt.Errorf("some error")) {
		t.Errorf("plain error must not match")
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(fmt.Errorf("inner"), "outer %v", 1)
	if err.Error() != "outer 1: inner" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
