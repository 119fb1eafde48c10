package reciclamack

import (
	"testing"

	"github.com/vovakirdan/reciclamack/internal/config"
)

func TestSpawnStaysInsideWorld(t *testing.T) {
	items := config.ItemsConfig{Size: 40, SideMargin: 10, SpawnOffsetMin: 10, SpawnOffsetMax: 80}
	s := NewSpawner(7, items, 600)

	counts := make(map[ItemType]int)
	for i := 0; i < 10000; i++ {
		it := s.Spawn()
		if it.X < 0 || it.X+it.Size > 600 {
			t.Fatalf("trial %d: item out of bounds x=%v size=%v", i, it.X, it.Size)
		}
		if it.X < 10 || it.X > 600-40-10 {
			t.Fatalf("trial %d: item ignores side margin x=%v", i, it.X)
		}
		if it.Y > -40-10 || it.Y < -40-80 {
			t.Fatalf("trial %d: y=%v outside spawn band", i, it.Y)
		}
		counts[it.Type]++
	}

	// Uniform over four types: each near 2500
	for _, typ := range ItemTypes() {
		if n := counts[typ]; n < 2200 || n > 2800 {
			t.Errorf("%v spawned %d times out of 10000", typ, n)
		}
	}
}

func TestSpawnNarrowWorlds(t *testing.T) {
	tests := []struct {
		name   string
		worldW float64
		size   float64
		margin float64
	}{
		{"margin does not fit", 50, 40, 10},
		{"exact fit", 40, 40, 10},
		{"item wider than world", 30, 40, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpawner(1, config.ItemsConfig{Size: tc.size, SideMargin: tc.margin}, tc.worldW)
			for i := 0; i < 1000; i++ {
				it := s.Spawn()
				if it.X < 0 {
					t.Fatalf("x = %v < 0", it.X)
				}
				if tc.size <= tc.worldW && it.X+it.Size > tc.worldW {
					t.Fatalf("x + size = %v > %v", it.X+it.Size, tc.worldW)
				}
			}
		})
	}
}

func TestSpawnSeeded(t *testing.T) {
	items := config.DefaultConfig().Items
	a := NewSpawner(99, items, 720)
	b := NewSpawner(99, items, 720)
	c := NewSpawner(100, items, 720)

	same := true
	for i := 0; i < 50; i++ {
		x, y, z := a.Spawn(), b.Spawn(), c.Spawn()
		if x != y {
			t.Fatalf("spawn %d differs for equal seeds: %+v vs %+v", i, x, y)
		}
		if x != z {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical sequences")
	}
}

func TestSpawnFixedOffset(t *testing.T) {
	items := config.ItemsConfig{Size: 36, SpawnOffsetMin: 20, SpawnOffsetMax: 20}
	it := NewSpawner(1, items, 720).Spawn()
	if it.Y != -56 {
		t.Errorf("y = %v, expected -56", it.Y)
	}
}
