package main

import "testing"

func TestInterruptController_HighestPicksGreatestLevelLowestIndexOnTie(t *testing.T) {
	ic := NewInterruptController()
	ic.Register(2, InterruptSource{Name: "a", Level: 4, Vector: 0x70})
	ic.Register(5, InterruptSource{Name: "b", Level: 4, Vector: 0x71})
	ic.Register(9, InterruptSource{Name: "c", Level: 9, Vector: 0x72})

	ic.Raise(2)
	ic.Raise(5)
	if src, idx, ok := ic.Highest(); !ok || idx != 2 || src.Name != "a" {
		t.Fatalf("Highest = (%+v, %d, %v), want (a, 2, true) on level tie", src, idx, ok)
	}

	ic.Raise(9)
	if src, idx, ok := ic.Highest(); !ok || idx != 9 || src.Name != "c" {
		t.Fatalf("Highest = (%+v, %d, %v), want (c, 9, true)", src, idx, ok)
	}
}

func TestInterruptController_DisabledSourceNotPicked(t *testing.T) {
	ic := NewInterruptController()
	ic.Register(1, InterruptSource{Name: "x", Level: 15, Vector: 0x40})
	ic.SetEnabled(1, false)
	ic.Raise(1)

	if _, _, ok := ic.Highest(); ok {
		t.Fatalf("disabled source should not be returned by Highest")
	}
}

func TestInterruptController_AcceptableRespectsSRMask(t *testing.T) {
	ic := NewInterruptController()
	ic.Register(3, InterruptSource{Name: "y", Level: 6, Vector: 0x50})
	ic.Raise(3)

	if _, _, ok := ic.Acceptable(6); ok {
		t.Fatalf("interrupt at level 6 should not be acceptable when SR mask is also 6")
	}
	if _, _, ok := ic.Acceptable(5); !ok {
		t.Fatalf("interrupt at level 6 should be acceptable when SR mask is 5")
	}
}

func TestInterruptController_ClearRemovesPending(t *testing.T) {
	ic := NewInterruptController()
	ic.Register(0, InterruptSource{Name: "z", Level: 1, Vector: 0x41})
	ic.Raise(0)
	ic.Clear(0)
	if _, _, ok := ic.Highest(); ok {
		t.Fatalf("cleared source should not remain pending")
	}
}
