package main

import "testing"

func testColumns() []Column {
	return []Column{
		{Key: "engine_rpm", Name: "Engine RPM", Index: 1},
		{Key: "accelerator_pedal", Name: "Accelerator pedal position", Index: 2},
		{Key: "boost", Name: "Boost", Index: 3},
	}
}

func TestNewChannelStatesDefaults(t *testing.T) {
	t.Parallel()

	states := newChannelStates(testColumns())
	if !states[0].Visible || !states[0].Shown || states[0].Axis != AxisL1 {
		t.Fatalf("engine rpm should default to visible on L1, got %+v", states[0])
	}
	if !states[1].Visible || states[1].Axis != AxisR1 {
		t.Fatalf("accelerator pedal should default to visible on R1, got %+v", states[1])
	}
	if states[2].Visible || states[2].Shown {
		t.Fatalf("other channels should start hidden, got %+v", states[2])
	}
}

func TestVisibleShownLockstep(t *testing.T) {
	t.Parallel()

	states := newChannelStates(testColumns())

	// from {visible:false, shown:false} a select turns both on
	toggleVisible(states, "boost")
	if !states[2].Visible || !states[2].Shown {
		t.Fatalf("toggleVisible must set both flags, got %+v", states[2])
	}

	// a shown-only toggle keeps the selection
	toggleShown(states, "boost")
	if !states[2].Visible || states[2].Shown {
		t.Fatalf("toggleShown must keep Visible, got %+v", states[2])
	}

	// deselect and reselect comes back drawn, not in the half state
	toggleVisible(states, "boost")
	toggleVisible(states, "boost")
	if !states[2].Visible || !states[2].Shown {
		t.Fatalf("reselected channel must be drawn again, got %+v", states[2])
	}
}

func TestDrawnAndLegendSets(t *testing.T) {
	t.Parallel()

	states := newChannelStates(testColumns())
	toggleShown(states, "engine_rpm") // selected but line hidden

	drawn := drawnChannels(states)
	if len(drawn) != 1 || drawn[0].Key != "accelerator_pedal" {
		t.Fatalf("unexpected drawn set: %+v", drawn)
	}

	legend := legendChannels(states)
	if len(legend) != 2 {
		t.Fatalf("legend must keep the shown-off channel, got %d entries", len(legend))
	}
}

func TestSetAllVisible(t *testing.T) {
	t.Parallel()

	states := newChannelStates(testColumns())
	setAllVisible(states, true)
	for _, s := range states {
		if !s.Visible || !s.Shown {
			t.Fatalf("expected all drawn after select-all, got %+v", s)
		}
	}
	setAllVisible(states, false)
	if len(legendChannels(states)) != 0 {
		t.Fatalf("expected empty legend after deselect-all")
	}
}

func TestNextAxisCycles(t *testing.T) {
	t.Parallel()

	order := []AxisID{AxisL1, AxisL2, AxisR1, AxisR2, AxisL1}
	for i := 0; i < len(order)-1; i++ {
		if got := nextAxis(order[i]); got != order[i+1] {
			t.Fatalf("nextAxis(%s) = %s, want %s", order[i], got, order[i+1])
		}
	}
	if got := nextAxis(AxisID("bogus")); got != AxisL1 {
		t.Fatalf("unknown axis should reset to L1, got %s", got)
	}
}

func TestSetAxis(t *testing.T) {
	t.Parallel()

	states := newChannelStates(testColumns())
	setAxis(states, "boost", AxisL2)
	if states[2].Axis != AxisL2 {
		t.Fatalf("expected boost on L2, got %s", states[2].Axis)
	}
	// axis sharing is allowed
	setAxis(states, "engine_rpm", AxisL2)
	if states[0].Axis != AxisL2 || states[2].Axis != AxisL2 {
		t.Fatalf("channels must be able to share a slot")
	}
}
