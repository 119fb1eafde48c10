package core

import "testing"

func TestRectIntersects(t *testing.T) {
	// A collector hitbox near the bottom of a 720x900 world.
	hitbox := NewRect(300, 800, 66, 10)

	tests := []struct {
		name string
		item Rect
		want bool
	}{
		{"item on the hitbox", NewRect(310, 780, 36, 36), true},
		{"item still above", NewRect(310, 700, 36, 36), false},
		{"item resting on the top edge", NewRect(310, 764, 36, 36), false},
		{"item touching the left edge", NewRect(264, 790, 36, 36), false},
		{"item touching the right edge", NewRect(366, 790, 36, 36), false},
		{"corner contact", NewRect(366, 810, 36, 36), false},
		{"sub-pixel overlap", NewRect(365.5, 790, 36, 36), true},
		{"item wider than hitbox", NewRect(250, 798, 200, 5), true},
		{"hitbox inside item", NewRect(290, 790, 100, 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hitbox.Intersects(tt.item); got != tt.want {
				t.Errorf("Intersects() = %v, expected %v", got, tt.want)
			}
			if got := tt.item.Intersects(hitbox); got != tt.want {
				t.Errorf("reversed Intersects() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRectNegativeSpace(t *testing.T) {
	// Items spawn above the world with negative Y.
	a := NewRect(-20, -80, 15, 15)
	b := NewRect(-10, -70, 5, 5)
	if !a.Intersects(b) {
		t.Error("rects above the world should still collide")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("Right, Bottom = %v, %v, expected 25, 25", r.Right(), r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
		{0, 0, 600, 0},
		{600, 0, 600, 600},
		{3, 0, -1, 0}, // world narrower than the collector
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}
