package tui

import "testing"

type latchTick struct {
	down, charging bool
}

func TestHoldLatchChargesThenHoldsThenReleases(t *testing.T) {
	l := NewHoldLatch(2, 4)

	if down, _ := l.Tick(); down {
		t.Fatal("latch should start released")
	}

	l.Press()
	expected := []latchTick{
		{true, true},
		{true, true},
		{true, false},
		{true, false},
		{false, false},
		{false, false},
	}
	for i, want := range expected {
		down, charging := l.Tick()
		if got := (latchTick{down, charging}); got != want {
			t.Errorf("tick %d: Tick() = %+v, expected %+v", i+1, got, want)
		}
	}
}

func TestHoldLatchRepeatKeepsCharging(t *testing.T) {
	l := NewHoldLatch(3, 30)

	// Key repeat every other tick keeps the hold charging
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			l.Press()
		}
		if down, charging := l.Tick(); !down || !charging {
			t.Fatalf("tick %d: Tick() = (%v, %v), expected a charging hold", i+1, down, charging)
		}
	}
}

func TestHoldLatchExplicitRelease(t *testing.T) {
	l := NewHoldLatch(3, 30)
	l.Press()
	l.Tick()

	l.Release()

	if down, _ := l.Tick(); down {
		t.Error("Tick() after Release() should not assert the hold")
	}
}

func TestHoldLatchWindowClamping(t *testing.T) {
	tests := []struct {
		charge, release int
		expected        []latchTick
	}{
		{0, 0, []latchTick{{true, true}, {false, false}}},
		{5, 2, []latchTick{{true, true}, {true, true}, {false, false}}},
		{1, 3, []latchTick{{true, true}, {true, false}, {true, false}, {false, false}}},
	}

	for _, tc := range tests {
		l := NewHoldLatch(tc.charge, tc.release)
		l.Press()
		for i, want := range tc.expected {
			down, charging := l.Tick()
			if got := (latchTick{down, charging}); got != want {
				t.Errorf("NewHoldLatch(%d, %d) tick %d: Tick() = %+v, expected %+v",
					tc.charge, tc.release, i+1, got, want)
			}
		}
	}
}
