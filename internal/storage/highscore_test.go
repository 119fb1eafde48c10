package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHighScoreRoundTrip(t *testing.T) {
	f := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore.txt"))

	for _, v := range []int{0, 1, 42, 999999} {
		if err := f.Save(v); err != nil {
			t.Fatalf("Save(%d) failed: %v", v, err)
		}
		if got := f.Load(); got != v {
			t.Errorf("Load() = %d after Save(%d)", got, v)
		}
	}
}

func TestHighScoreMissingOrCorrupt(t *testing.T) {
	dir := t.TempDir()

	missing := NewHighScoreFile(filepath.Join(dir, "nope.txt"))
	if got := missing.Load(); got != 0 {
		t.Errorf("missing file Load() = %d, expected 0", got)
	}

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"garbage", "not a number", 0},
		{"empty", "", 0},
		{"negative", "-5", 0},
		{"float", "3.5", 0},
		{"whitespace", "  17\n", 17},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			f := NewHighScoreFile(path)
			// Repeated loads never depend on earlier state
			for i := 0; i < 2; i++ {
				if got := f.Load(); got != tc.want {
					t.Errorf("Load() = %d, expected %d", got, tc.want)
				}
			}
		})
	}
}

func TestHighScoreSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "highscore.txt")
	f := NewHighScoreFile(path)

	if err := f.Save(12); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(data) != "12" {
		t.Errorf("file content = %q, expected \"12\"", data)
	}
}

func TestHighScoreSaveError(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes the write fail
	path := filepath.Join(dir, "taken")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := NewHighScoreFile(path).Save(1); err == nil {
		t.Error("Save() onto a directory should fail")
	}
}

func TestHighScoreSaveIfHigher(t *testing.T) {
	f := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore.txt"))

	tests := []struct {
		score     int
		wantBest  int
		wantSaved bool
	}{
		{10, 10, true},
		{50, 50, true},
		{20, 50, false}, // lower score never overwrites
		{50, 50, false}, // a tie is not a new high
		{51, 51, true},
	}

	for _, tc := range tests {
		best, saved, err := f.SaveIfHigher(tc.score)
		if err != nil {
			t.Fatalf("SaveIfHigher(%d) failed: %v", tc.score, err)
		}
		if best != tc.wantBest || saved != tc.wantSaved {
			t.Errorf("SaveIfHigher(%d) = %d, %v, expected %d, %v", tc.score, best, saved, tc.wantBest, tc.wantSaved)
		}
	}
	if got := f.Load(); got != 51 {
		t.Errorf("Load() = %d, expected 51", got)
	}
}

func TestHighScoreSaveIfHigherSeesOtherWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	a := NewHighScoreFile(path)
	b := NewHighScoreFile(path)

	if _, _, err := b.SaveIfHigher(50); err != nil {
		t.Fatal(err)
	}
	best, saved, err := a.SaveIfHigher(20)
	if err != nil {
		t.Fatal(err)
	}
	if saved || best != 50 {
		t.Errorf("SaveIfHigher(20) = %d, %v after another writer stored 50", best, saved)
	}
	if got := a.Load(); got != 50 {
		t.Errorf("stored high score = %d, expected 50", got)
	}
}

func TestHighScoreFilesPerMode(t *testing.T) {
	dir := t.TempDir()
	files := NewHighScoreFiles(filepath.Join(dir, "highscore.txt"), "reciclamack")

	if got, want := files.Path("reciclamack"), filepath.Join(dir, "highscore.txt"); got != want {
		t.Errorf("Path(primary) = %q, expected %q", got, want)
	}
	if got, want := files.Path("reciclamack_rush"), filepath.Join(dir, "highscore_reciclamack_rush.txt"); got != want {
		t.Errorf("Path(rush) = %q, expected %q", got, want)
	}
	if files.For("reciclamack") != files.For("reciclamack") {
		t.Error("For should reuse the instance of a mode")
	}

	files.For("reciclamack").Save(300)
	files.For("reciclamack_rush").Save(7)
	if got := files.For("reciclamack").Load(); got != 300 {
		t.Errorf("classic = %d, expected 300", got)
	}
	if got := files.For("reciclamack_rush").Load(); got != 7 {
		t.Errorf("rush = %d, expected 7", got)
	}
}
