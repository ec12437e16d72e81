package wiring

import (
	"fmt"
	"strings"

	"github.com/c360/semwire/capability"
	"github.com/c360/semwire/component"
	"github.com/c360/semwire/errors"
)

// SlotState is a snapshot of one slot considered during matching.
type SlotState struct {
	Name        string
	Capability  capability.ID
	Cardinality capability.Cardinality
	State       string
}

func (s SlotState) String() string {
	if s.Cardinality == capability.List {
		return fmt.Sprintf("%s:[]%s, %s", s.Name, s.Capability, s.State)
	}
	return fmt.Sprintf("%s:%s, %s", s.Name, s.Capability, s.State)
}

func snapshot(slots []*component.Slot) []SlotState {
	out := make([]SlotState, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotState{
			Name:        s.Name(),
			Capability:  s.Capability(),
			Cardinality: s.Cardinality(),
			State:       s.State(),
		})
	}
	return out
}

// NoCandidateError reports that no slot on the source could accept the target.
type NoCandidateError struct {
	Source             component.Info
	Target             component.Info
	SlotHint           string
	Considered         []SlotState
	TargetCapabilities []capability.ID
}

func (e *NoCandidateError) Error() string {
	considered := make([]string, len(e.Considered))
	for i, s := range e.Considered {
		considered[i] = s.String()
	}
	caps := make([]string, len(e.TargetCapabilities))
	for i, c := range e.TargetCapabilities {
		caps[i] = string(c)
	}
	return fmt.Sprintf("%s: failed to wire %s.%q to %s. Considered slots of source [%s]. Capabilities of target [%s]",
		errors.ErrNoCandidateSlot, e.Source, e.SlotHint, e.Target,
		strings.Join(considered, "; "), strings.Join(caps, ", "))
}

// Unwrap makes the error match errors.ErrNoCandidateSlot.
func (e *NoCandidateError) Unwrap() error { return errors.ErrNoCandidateSlot }

// SlotWiredError reports that the named singular slot was already bound.
type SlotWiredError struct {
	Source   component.Info
	Target   component.Info
	Slot     string
	Existing component.Info
}

func (e *SlotWiredError) Error() string {
	return fmt.Sprintf("%s: %s.%s already wired to %s, cannot wire %s",
		errors.ErrSlotAlreadyWired, e.Source, e.Slot, e.Existing, e.Target)
}

// Unwrap makes the error match errors.ErrSlotAlreadyWired.
func (e *SlotWiredError) Unwrap() error { return errors.ErrSlotAlreadyWired }
