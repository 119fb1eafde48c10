package reciclamack

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a copy of the visible game state for spectators, replays and
// tests. It shares no memory with the game.
type Snapshot struct {
	Game      string `json:"game"`
	Phase     string `json:"phase"`
	Score     int    `json:"score"`
	Lives     int    `json:"lives"`
	HighScore int    `json:"high_score"`

	SpawnInterval float64 `json:"spawn_interval"`
	FallSpeed     float64 `json:"fall_speed"`
	Spawns        int     `json:"spawns"`
	Elapsed       float64 `json:"elapsed"`

	World     BoxSnapshot    `json:"world"`
	Collector BoxSnapshot    `json:"collector"`
	Hitbox    BoxSnapshot    `json:"hitbox"`
	Items     []ItemSnapshot `json:"items"`
}

// BoxSnapshot is a rectangle in world pixels.
type BoxSnapshot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// ItemSnapshot is one falling item.
type ItemSnapshot struct {
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Game:  g.variant,
		Phase: g.phase.String(),
		World: BoxSnapshot{W: g.cfg.World.Width, H: g.cfg.World.Height},
	}
	s := g.session
	if s == nil {
		return snap
	}

	snap.Score = s.Score
	snap.Lives = s.Lives
	snap.HighScore = s.HighScore
	snap.SpawnInterval = s.SpawnInterval
	snap.FallSpeed = s.FallSpeed
	snap.Spawns = s.Spawns
	snap.Elapsed = s.Elapsed

	b := s.Collector.Bounds()
	snap.Collector = BoxSnapshot{X: b.X, Y: b.Y, W: b.W, H: b.H}
	hb := s.Collector.Hitbox()
	snap.Hitbox = BoxSnapshot{X: hb.X, Y: hb.Y, W: hb.W, H: hb.H}

	snap.Items = make([]ItemSnapshot, len(s.Items))
	for i, it := range s.Items {
		snap.Items[i] = ItemSnapshot{
			Type:  it.Type.String(),
			X:     it.X,
			Y:     it.Y,
			Size:  it.Size,
			Color: it.Type.Color().String(),
		}
	}
	return snap
}

// Hash returns a fingerprint of the simulation-relevant fields.
// Two runs with the same seed and inputs produce the same hash.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}

	h.Write([]byte(s.Phase))
	putInt(s.Score)
	putInt(s.Lives)
	putInt(s.Spawns)
	putFloat(s.SpawnInterval)
	putFloat(s.FallSpeed)
	putFloat(s.Collector.X)
	for _, it := range s.Items {
		h.Write([]byte(it.Type))
		putFloat(it.X)
		putFloat(it.Y)
	}
	return h.Sum64()
}
