package core

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, want Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		if got := tc.d.Opposite(); got != tc.want {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.d, got, tc.want)
		}
		if got := tc.d.Opposite().Opposite(); got != tc.d {
			t.Errorf("double Opposite of %v = %v", tc.d, got)
		}
	}
}

func TestDirectionDeltaSumsToZeroWithOpposite(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		if dr+or != 0 || dc+oc != 0 {
			t.Errorf("%v delta (%d,%d) does not cancel opposite (%d,%d)", d, dr, dc, or, oc)
		}
		if dr*dr+dc*dc != 1 {
			t.Errorf("%v delta (%d,%d) is not a unit step", d, dr, dc)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		s    Status
		want bool
	}{
		{StatusIdle, false},
		{StatusPlaying, false},
		{StatusWon, true},
		{StatusOver, true},
	}

	for _, tc := range tests {
		if got := tc.s.Terminal(); got != tc.want {
			t.Errorf("%v.Terminal() = %v, expected %v", tc.s, got, tc.want)
		}
	}
}
