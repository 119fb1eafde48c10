// Package replay records the inputs of a play session to a compressed
// JSON-lines file and re-simulates them headlessly.
//
// A replay file is a zstd stream. The first line is a Header, each
// following line is one Frame passed to Game.Step.
package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/reciclamack/internal/config"
	"github.com/vovakirdan/reciclamack/internal/core"
)

// FormatVersion is written into every header.
const FormatVersion = 1

// Header describes the recorded session.
type Header struct {
	Version   int           `json:"version"`
	ID        string        `json:"id"`
	Game      string        `json:"game"`
	Seed      int64         `json:"seed"`
	Config    config.Config `json:"config"`
	CreatedAt time.Time     `json:"created_at"`
}

// Frame is one host frame: the actions seen and the elapsed seconds.
type Frame struct {
	DT      float64  `json:"dt"`
	Actions []string `json:"actions,omitempty"`
}

// Input converts the frame back to an InputFrame.
// Unknown action names are ignored.
func (f Frame) Input() core.InputFrame {
	in := core.NewInputFrame()
	for _, name := range f.Actions {
		if a, ok := core.ParseAction(name); ok {
			in.Set(a)
		}
	}
	return in
}

// Recorder writes frames to a replay file.
type Recorder struct {
	f      *os.File
	zw     *zstd.Encoder
	bw     *bufio.Writer
	enc    *json.Encoder
	header Header
	frames int
}

// Create opens path for writing and writes the header.
// An empty header ID is filled with a random UUID.
func Create(path string, header Header) (*Recorder, error) {
	if header.ID == "" {
		header.ID = uuid.NewString()
	}
	if header.CreatedAt.IsZero() {
		header.CreatedAt = time.Now().UTC()
	}
	header.Version = FormatVersion

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("replay: cannot create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot create file: %w", err)
	}
	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("replay: cannot create encoder: %w", err)
	}

	r := &Recorder{f: f, zw: zw, header: header}
	r.bw = bufio.NewWriter(zw)
	r.enc = json.NewEncoder(r.bw)

	if err := r.enc.Encode(header); err != nil {
		r.Close()
		return nil, fmt.Errorf("replay: cannot write header: %w", err)
	}
	return r, nil
}

// Header returns the header that was written.
func (r *Recorder) Header() Header {
	return r.header
}

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// Record appends one frame.
func (r *Recorder) Record(in core.InputFrame, dt float64) error {
	fr := Frame{DT: dt}
	for _, a := range in.List() {
		fr.Actions = append(fr.Actions, a.String())
	}
	if err := r.enc.Encode(fr); err != nil {
		return fmt.Errorf("replay: cannot write frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Close flushes and closes the file.
func (r *Recorder) Close() error {
	var errs []error
	if err := r.bw.Flush(); err != nil {
		errs = append(errs, err)
	}
	if err := r.zw.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := r.f.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("replay: cannot close: %w", err)
	}
	return nil
}

// Reader reads a replay file frame by frame.
type Reader struct {
	f      *os.File
	zr     *zstd.Decoder
	dec    *json.Decoder
	header Header
}

// Open opens a replay file and reads its header.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open file: %w", err)
	}
	zr, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("replay: cannot create decoder: %w", err)
	}

	r := &Reader{f: f, zr: zr, dec: json.NewDecoder(zr)}
	if err := r.dec.Decode(&r.header); err != nil {
		r.Close()
		return nil, fmt.Errorf("replay: cannot read header: %w", err)
	}
	if r.header.Version != FormatVersion {
		r.Close()
		return nil, fmt.Errorf("replay: unsupported version %d", r.header.Version)
	}
	return r, nil
}

// Header returns the replay header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next frame or io.EOF at the end of the file.
func (r *Reader) Next() (Frame, error) {
	var fr Frame
	if err := r.dec.Decode(&fr); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("replay: cannot read frame: %w", err)
	}
	return fr, nil
}

// Close releases the file.
func (r *Reader) Close() error {
	r.zr.Close()
	return r.f.Close()
}
