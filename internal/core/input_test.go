package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionLeft)
	if !f.Has(ActionUp) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionDown) {
		t.Error("unset action reported as active")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventPickup, EventCollision}}
	if !r.Has(EventCollision) {
		t.Error("expected collision event")
	}
	if r.Has(EventWon) {
		t.Error("unexpected won event")
	}
	if EventLevelUp.String() != "level-up" {
		t.Errorf("EventLevelUp.String() = %q", EventLevelUp.String())
	}
}
