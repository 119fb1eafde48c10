package reciclamack

import (
	"math"
	"testing"

	"github.com/vovakirdan/reciclamack/internal/config"
)

func TestCollectorHitbox(t *testing.T) {
	cfg := config.DefaultConfig()
	c := NewCollector(cfg.Collector, cfg.World)

	if c.X != 300 || c.Y != 820 {
		t.Fatalf("collector at (%v, %v), expected (300, 820)", c.X, c.Y)
	}

	hb := c.Hitbox()
	// width 0.55*120 = 66, height max(12, 0.48*22) = 12
	if !approx(hb.W, 66) || hb.H != 12 {
		t.Errorf("hitbox size = %vx%v, expected 66x12", hb.W, hb.H)
	}
	if !approx(hb.X, 327) {
		t.Errorf("hitbox x = %v, expected centered at 327", hb.X)
	}
	wantBottom := 820 + 22 - 22*0.04
	if !approx(hb.Bottom(), wantBottom) {
		t.Errorf("hitbox bottom = %v, expected %v", hb.Bottom(), wantBottom)
	}

	b := c.Bounds()
	if hb.X < b.X || hb.Right() > b.Right() || hb.Y < b.Y || hb.Bottom() > b.Bottom() {
		t.Errorf("hitbox %+v not inside bounds %+v", hb, b)
	}
}

func TestCollectorDirection(t *testing.T) {
	cfg := config.DefaultConfig()
	c := NewCollector(cfg.Collector, cfg.World)

	tests := []struct {
		left, right bool
		want        float64
	}{
		{false, false, 0},
		{true, false, -1},
		{false, true, 1},
		{true, true, 0},
	}
	for _, tc := range tests {
		c.SetLeft(tc.left)
		c.SetRight(tc.right)
		if got := c.Direction(); got != tc.want {
			t.Errorf("left=%v right=%v: Direction() = %v, expected %v", tc.left, tc.right, got, tc.want)
		}
	}

	c.Release()
	if c.Direction() != 0 {
		t.Error("Release should stop movement")
	}
}

func TestCollectorClamp(t *testing.T) {
	cfg := config.DefaultConfig()
	c := NewCollector(cfg.Collector, cfg.World)

	c.SetLeft(true)
	c.Move(100, cfg.World.Width)
	if c.X != 0 {
		t.Errorf("x = %v, expected 0", c.X)
	}

	c.SetLeft(false)
	c.SetRight(true)
	c.Move(100, cfg.World.Width)
	if c.X != cfg.World.Width-c.W {
		t.Errorf("x = %v, expected %v", c.X, cfg.World.Width-c.W)
	}
}

func TestItemTable(t *testing.T) {
	tests := []struct {
		typ    ItemType
		name   string
		score  int
		lives  int
		hazard bool
	}{
		{ItemMetal, "METAL", 2, 0, false},
		{ItemPlastic, "PLASTIC", 1, 0, false},
		{ItemReuse, "REUSE", 3, 0, false},
		{ItemBattery, "BATTERY", 0, -1, true},
	}

	for _, tc := range tests {
		eff := tc.typ.Effect()
		if tc.typ.String() != tc.name || eff.Score != tc.score || eff.Lives != tc.lives || tc.typ.Hazard() != tc.hazard {
			t.Errorf("%v: effect=%+v hazard=%v", tc.typ, eff, tc.typ.Hazard())
		}
	}

	if ItemType(99).String() != "?" {
		t.Error("unknown type should render as ?")
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
