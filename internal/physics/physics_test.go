package physics

import (
	"errors"
	"math"
	"testing"
)

func TestUpdateSpeedAccelerates(t *testing.T) {
	v, err := UpdateSpeed(Velocity{}, -1, 1, DefaultParams)
	if err != nil {
		t.Fatalf("UpdateSpeed failed: %v", err)
	}
	if v.Rows != -0.75 || v.Columns != 0.75 {
		t.Errorf("Expected (-0.75, 0.75), got (%v, %v)", v.Rows, v.Columns)
	}
}

func TestUpdateSpeedClampsToLimit(t *testing.T) {
	v := Velocity{}
	for i := 0; i < 20; i++ {
		var err error
		v, err = UpdateSpeed(v, 1, -1, DefaultParams)
		if err != nil {
			t.Fatalf("UpdateSpeed failed: %v", err)
		}
		if math.Abs(v.Rows) > DefaultParams.Limit || math.Abs(v.Columns) > DefaultParams.Limit {
			t.Fatalf("Speed exceeded limit at step %d: %+v", i, v)
		}
	}
	if v.Rows != DefaultParams.Limit || v.Columns != -DefaultParams.Limit {
		t.Errorf("Expected speed pinned at limit, got %+v", v)
	}
}

func TestUpdateSpeedInertiaFades(t *testing.T) {
	v := Velocity{Rows: 2, Columns: -1}
	next, err := UpdateSpeed(v, 0, 0, DefaultParams)
	if err != nil {
		t.Fatalf("UpdateSpeed failed: %v", err)
	}
	if next.Rows != 1.6 || next.Columns != -0.8 {
		t.Errorf("Expected faded (1.6, -0.8), got %+v", next)
	}

	// Keeps fading until it snaps to zero
	for i := 0; i < 50 && next != (Velocity{}); i++ {
		next, _ = UpdateSpeed(next, 0, 0, DefaultParams)
	}
	if next != (Velocity{}) {
		t.Errorf("Expected ship to come to rest, got %+v", next)
	}
}

func TestUpdateSpeedRejectsBadDirection(t *testing.T) {
	v := Velocity{Rows: 1}
	got, err := UpdateSpeed(v, 2, 0, DefaultParams)
	if !errors.Is(err, ErrDirection) {
		t.Errorf("Expected ErrDirection, got %v", err)
	}
	if got != v {
		t.Errorf("Expected velocity unchanged on error, got %+v", got)
	}
}

func TestBoxOverlaps(t *testing.T) {
	base := Box{Row: 5, Column: 10, Height: 3, Width: 5} // rows 5-7, cols 10-14
	tests := []struct {
		name string
		o    Box
		want bool
	}{
		{"same", base, true},
		{"touching corner", Box{Row: 7, Column: 14, Height: 2, Width: 2}, true},
		{"left of", Box{Row: 5, Column: 8, Height: 3, Width: 2}, false},
		{"below", Box{Row: 8, Column: 10, Height: 1, Width: 1}, false},
		{"contained", Point(6, 12), true},
		{"containing", Box{Row: 0, Column: 0, Height: 20, Width: 20}, true},
		{"empty", Box{Row: 6, Column: 12}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.o); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if got := tt.o.Overlaps(base); got != tt.want {
				t.Errorf("Expected symmetric %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBoxContainsAndInside(t *testing.T) {
	b := Box{Row: 1, Column: 1, Height: 2, Width: 3}
	if !b.Contains(2, 3) || b.Contains(3, 3) || b.Contains(1, 0) {
		t.Error("Contains boundaries are wrong")
	}
	if !b.Inside(1, 1, 2, 3) {
		t.Error("Expected box inside its own bounds")
	}
	if b.Inside(1, 1, 2, 2) {
		t.Error("Expected box to exceed right bound")
	}
}
