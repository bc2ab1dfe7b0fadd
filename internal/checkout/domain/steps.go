package domain

import "errors"

// Checkout steps. Pooja bookings walk DateTime, Address, Payment; kit
// purchases skip scheduling and start at Address.
const (
	StepDateTime = 1
	StepAddress  = 2
	StepPayment  = 3
)

// Booking kinds
const (
	KindPooja = "pooja"
	KindKit   = "kit"
)

// Sentinel errors
var (
	ErrInvalidKind = errors.New("booking kind must be pooja or kit")
	ErrFlowExited  = errors.New("checkout flow exited")
)

// Flow is the checkout step machine. Forward movement is gated on the
// current step being complete; stepping backward from the first step exits
// the flow instead of wrapping.
type Flow struct {
	Kind string
	Step int
}

// NewFlow starts a checkout flow for the given kind
func NewFlow(kind string) (*Flow, error) {
	switch kind {
	case KindPooja:
		return &Flow{Kind: kind, Step: StepDateTime}, nil
	case KindKit:
		return &Flow{Kind: kind, Step: StepAddress}, nil
	default:
		return nil, ErrInvalidKind
	}
}

// FirstStep returns the flow's entry step
func (f *Flow) FirstStep() int {
	if f.Kind == KindKit {
		return StepAddress
	}
	return StepDateTime
}

// Forward advances to the next step when the current one is complete. An
// ineligible move keeps the flow where it is rather than erroring; the UI
// disables the button, it never shows a failure. Returns the resulting step.
func (f *Flow) Forward(stepComplete bool) int {
	if f.Step < StepPayment && stepComplete {
		f.Step++
	}
	return f.Step
}

// Backward steps back. From the first step it reports ErrFlowExited: the
// caller abandons the checkout and returns to the catalog.
func (f *Flow) Backward() error {
	if f.Step <= f.FirstStep() {
		return ErrFlowExited
	}
	f.Step--
	return nil
}
