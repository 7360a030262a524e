// Package flightlog saves and loads the ship's recorded history as a
// msgpack file.
package flightlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/relhell/internal/spacetime"
)

// Version of the file layout.
const Version = 1

// ErrVersion is returned for files written by an unknown layout version.
var ErrVersion = errors.New("flightlog: unsupported version")

// Entry is one recorded tick of the ship's worldline.
type Entry struct {
	T        [16]float64 `msgpack:"t"`
	Shift    float64     `msgpack:"shift"`
	Start    float64     `msgpack:"start"`
	Duration float64     `msgpack:"duration"`
	Ang      float64     `msgpack:"ang"`
}

// NewEntry records an anchor pose with its time window and heading.
func NewEntry(at spacetime.Pose, start, duration, ang float64) Entry {
	return Entry{T: at.T, Shift: at.Shift, Start: start, Duration: duration, Ang: ang}
}

// Pose returns the recorded anchor.
func (e Entry) Pose() spacetime.Pose {
	return spacetime.NewPose(mgl64.Mat4(e.T), e.Shift)
}

// Log is a whole recorded run.
type Log struct {
	Version int     `msgpack:"version"`
	Variant string  `msgpack:"variant"`
	Seed    int64   `msgpack:"seed"`
	Mode    string  `msgpack:"mode"`
	Score   float64 `msgpack:"score"`
	Reason  string  `msgpack:"reason"`
	Entries []Entry `msgpack:"entries"`
}

// ProperTime returns the ship proper time covered by the log.
func (l Log) ProperTime() float64 {
	if len(l.Entries) == 0 {
		return 0
	}
	last := l.Entries[len(l.Entries)-1]
	return last.Start + last.Duration
}

// Save writes l to path, creating parent directories.
func Save(path string, l Log) error {
	l.Version = Version
	data, err := msgpack.Marshal(&l)
	if err != nil {
		return fmt.Errorf("flightlog: cannot encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("flightlog: cannot create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("flightlog: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a log written by Save.
func Load(path string) (Log, error) {
	var l Log
	data, err := os.ReadFile(path)
	if err != nil {
		return l, fmt.Errorf("flightlog: cannot read %s: %w", path, err)
	}
	if err := msgpack.Unmarshal(data, &l); err != nil {
		return l, fmt.Errorf("flightlog: cannot decode %s: %w", path, err)
	}
	if l.Version != Version {
		return l, fmt.Errorf("%w: %d", ErrVersion, l.Version)
	}
	return l, nil
}
