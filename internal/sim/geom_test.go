package sim

import (
	"math"
	"testing"
)

func TestVec2Ops(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{-0.5, 3}

	if got := a.Add(b); got != (Vec2{0.5, 5}) {
		t.Errorf("Add() = %+v, want {0.5 5}", got)
	}
	if got := a.Scale(2); got != (Vec2{2, 4}) {
		t.Errorf("Scale() = %+v, want {2 4}", got)
	}
	if got := (Vec2{3, 4}).Len(); got != 5 {
		t.Errorf("Len() = %v, want 5", got)
	}
}

func TestSideOpponent(t *testing.T) {
	if SideLeft.Opponent() != SideRight || SideRight.Opponent() != SideLeft {
		t.Error("left and right must be mutual opponents")
	}
	if SideNone.Opponent() != SideNone {
		t.Error("SideNone has no opponent")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-2, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}
	for _, tc := range tests {
		if got := clampF(tc.val, tc.min, tc.max); got != tc.want {
			t.Errorf("clampF(%v, %v, %v) = %v, want %v", tc.val, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestPointEntity(t *testing.T) {
	var e Entity = NewPoint(0.1, -0.2)
	if got := e.Position(); math.Abs(got.X-0.1) > 1e-12 || math.Abs(got.Y+0.2) > 1e-12 {
		t.Errorf("Position() = %+v", got)
	}
	e.SetPosition(Vec2{0.3, 0.4})
	if got := e.Position(); got != (Vec2{0.3, 0.4}) {
		t.Errorf("Position() after set = %+v", got)
	}
}
