package core

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name          string
		r             Rect
		right, bottom int
	}{
		{"origin", NewRect(0, 0, 4, 3), 4, 3},
		{"offset", NewRect(5, 10, 20, 15), 25, 25},
		{"negative origin", NewRect(-2, -1, 4, 3), 2, 2},
		{"empty", NewRect(7, 7, 0, 0), 7, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Right(); got != tc.right {
				t.Errorf("Right() = %d, want %d", got, tc.right)
			}
			if got := tc.r.Bottom(); got != tc.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tc.bottom)
			}
		})
	}
}
