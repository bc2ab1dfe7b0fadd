package domain

import (
	"errors"
	"testing"
)

func TestNewFlowStartingSteps(t *testing.T) {
	pooja, err := NewFlow(KindPooja)
	if err != nil {
		t.Fatal(err)
	}
	if pooja.Step != StepDateTime {
		t.Errorf("pooja flow starts at %d, want StepDateTime", pooja.Step)
	}

	kit, err := NewFlow(KindKit)
	if err != nil {
		t.Fatal(err)
	}
	if kit.Step != StepAddress {
		t.Errorf("kit flow starts at %d, want StepAddress", kit.Step)
	}

	if _, err := NewFlow("subscription"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("unknown kind: got %v, want ErrInvalidKind", err)
	}
}

func TestForwardGatedOnStepCompletion(t *testing.T) {
	flow, _ := NewFlow(KindPooja)

	// An incomplete step holds the flow in place, quietly
	if got := flow.Forward(false); got != StepDateTime {
		t.Fatalf("incomplete forward moved to %d, want StepDateTime", got)
	}

	if got := flow.Forward(true); got != StepAddress {
		t.Errorf("step = %d, want StepAddress", got)
	}
	if got := flow.Forward(true); got != StepPayment {
		t.Errorf("step = %d, want StepPayment", got)
	}

	// Payment is the last step; forward from it stays put
	if got := flow.Forward(true); got != StepPayment {
		t.Errorf("forward past payment moved to %d, want StepPayment", got)
	}
}

func TestBackwardExitsAtFirstStep(t *testing.T) {
	flow, _ := NewFlow(KindPooja)
	if err := flow.Backward(); !errors.Is(err, ErrFlowExited) {
		t.Fatalf("backward at first step: got %v, want ErrFlowExited", err)
	}

	flow.Forward(true)
	if err := flow.Backward(); err != nil {
		t.Fatal(err)
	}
	if flow.Step != StepDateTime {
		t.Errorf("step = %d, want StepDateTime", flow.Step)
	}
}

func TestKitFlowNeverVisitsScheduling(t *testing.T) {
	flow, _ := NewFlow(KindKit)

	// Backward from the kit's first step exits rather than landing on DateTime
	if err := flow.Backward(); !errors.Is(err, ErrFlowExited) {
		t.Fatalf("got %v, want ErrFlowExited", err)
	}

	if got := flow.Forward(true); got != StepPayment {
		t.Errorf("step = %d, want StepPayment", got)
	}
}
