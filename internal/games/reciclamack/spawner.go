package reciclamack

import (
	"math/rand"

	"github.com/vovakirdan/reciclamack/internal/config"
)

// Spawner creates items above the visible world.
// It owns a seeded RNG so a seed always yields the same item sequence.
type Spawner struct {
	rng    *rand.Rand
	items  config.ItemsConfig
	worldW float64
}

// NewSpawner creates a spawner for a world of the given width.
func NewSpawner(seed int64, items config.ItemsConfig, worldW float64) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		items:  items,
		worldW: worldW,
	}
}

// Spawn returns a new item of a uniformly random type with
// 0 <= X and X+Size <= world width, and Y above the top edge.
func (s *Spawner) Spawn() Item {
	size := s.items.Size
	t := ItemType(s.rng.Intn(int(itemTypeCount)))

	lo, hi := s.items.SideMargin, s.worldW-size-s.items.SideMargin
	if hi < lo {
		// Margin does not fit, use the whole width
		lo, hi = 0, s.worldW-size
	}
	x := lo // also covers an item wider than the world
	if hi > lo {
		x = lo + s.rng.Float64()*(hi-lo)
	}

	offset := s.items.SpawnOffsetMin
	if span := s.items.SpawnOffsetMax - s.items.SpawnOffsetMin; span > 0 {
		offset += s.rng.Float64() * span
	}

	return Item{
		Type: t,
		X:    x,
		Y:    -size - offset,
		Size: size,
	}
}
