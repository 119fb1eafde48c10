package reciclamack

import (
	"math"

	"github.com/vovakirdan/reciclamack/internal/config"
	"github.com/vovakirdan/reciclamack/internal/core"
)

// Collector is the player-controlled catcher at the bottom of the world.
type Collector struct {
	X, Y  float64
	W, H  float64
	Speed float64

	hitbox      config.HitboxConfig
	left, right bool // movement keys currently held
}

// NewCollector creates a collector centered horizontally.
func NewCollector(cfg config.CollectorConfig, world config.WorldConfig) *Collector {
	c := &Collector{
		W:      cfg.Width,
		H:      cfg.Height,
		Speed:  cfg.Speed,
		hitbox: cfg.Hitbox,
	}
	c.X = world.Width/2 - c.W/2
	c.Y = world.Height - cfg.BottomOffset
	c.clamp(world.Width)
	return c
}

// Bounds returns the full visual rectangle.
func (c *Collector) Bounds() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// Hitbox returns the inset rectangle used for catching: centered
// horizontally, with its bottom edge raised by a fraction of the height.
func (c *Collector) Hitbox() core.Rect {
	w := math.Max(c.hitbox.MinSide, c.W*c.hitbox.WidthFrac)
	h := math.Max(c.hitbox.MinSide, c.H*c.hitbox.HeightFrac)
	bottom := c.Y + c.H - c.H*c.hitbox.BottomFrac
	return core.NewRect(c.X+(c.W-w)/2, bottom-h, w, h)
}

// SetLeft records whether the move-left control is held.
func (c *Collector) SetLeft(held bool) { c.left = held }

// SetRight records whether the move-right control is held.
func (c *Collector) SetRight(held bool) { c.right = held }

// Release drops both movement controls.
func (c *Collector) Release() {
	c.left, c.right = false, false
}

// HoldFrom carries the held controls of prev over to c, so a key held
// across a restart keeps moving the new collector. A nil prev releases both.
func (c *Collector) HoldFrom(prev *Collector) {
	if prev == nil {
		c.Release()
		return
	}
	c.left, c.right = prev.left, prev.right
}

// Direction returns -1, 0 or 1. Holding both controls cancels out.
func (c *Collector) Direction() float64 {
	var dir float64
	if c.left {
		dir--
	}
	if c.right {
		dir++
	}
	return dir
}

// Move advances the collector by its input velocity and keeps it inside
// [0, worldW - W].
func (c *Collector) Move(dt, worldW float64) {
	c.X += c.Direction() * c.Speed * dt
	c.clamp(worldW)
}

func (c *Collector) clamp(worldW float64) {
	c.X = core.ClampF(c.X, 0, worldW-c.W)
}
