package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// HighScoreFile keeps the best score as one decimal integer in a text file.
// It is safe for concurrent use within one process.
type HighScoreFile struct {
	path string
	mu   sync.Mutex
}

// NewHighScoreFile returns a store backed by path. A leading ~ is expanded;
// if expansion fails the path is used as given.
func NewHighScoreFile(path string) *HighScoreFile {
	if expanded, err := ExpandHome(path); err == nil {
		path = expanded
	}
	return &HighScoreFile{path: path}
}

// Path returns the file location.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load returns the stored score. A missing, unreadable or malformed file
// reads as 0, as does a negative value.
func (f *HighScoreFile) Load() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

// Save overwrites the file with score.
func (f *HighScoreFile) Save(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(score)
}

// SaveIfHigher re-reads the file and writes score only when it beats the
// stored value. best is the stored score after the call.
func (f *HighScoreFile) SaveIfHigher(score int) (best int, saved bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := f.read()
	if score <= current {
		return current, false, nil
	}
	if err := f.write(score); err != nil {
		return current, false, err
	}
	return score, true, nil
}

func (f *HighScoreFile) read() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func (f *HighScoreFile) write(score int) error {
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}

// HighScoreFiles hands out one HighScoreFile per mode. The primary mode
// uses the base path; any other mode gets _<mode> before the extension,
// so highscore.txt becomes highscore_reciclamack_rush.txt.
type HighScoreFiles struct {
	base    string
	primary string

	mu    sync.Mutex
	files map[string]*HighScoreFile
}

// NewHighScoreFiles returns a file set rooted at base.
func NewHighScoreFiles(base, primary string) *HighScoreFiles {
	if expanded, err := ExpandHome(base); err == nil {
		base = expanded
	}
	return &HighScoreFiles{base: base, primary: primary, files: map[string]*HighScoreFile{}}
}

// Path returns the file location for mode.
func (h *HighScoreFiles) Path(mode string) string {
	if mode == h.primary {
		return h.base
	}
	ext := filepath.Ext(h.base)
	return strings.TrimSuffix(h.base, ext) + "_" + mode + ext
}

// For returns the file of mode. Repeated calls share one instance, so
// every game of a mode serializes on the same lock.
func (h *HighScoreFiles) For(mode string) *HighScoreFile {
	h.mu.Lock()
	defer h.mu.Unlock()

	if f, ok := h.files[mode]; ok {
		return f
	}
	f := &HighScoreFile{path: h.Path(mode)}
	h.files[mode] = f
	return f
}
