package flightlog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/relhell/internal/spacetime"
)

func TestSaveLoad(t *testing.T) {
	pose := spacetime.NewPose(spacetime.Mul(spacetime.Spin(0.3), spacetime.Lorentz(0, 3, 1.2)), 4.5)
	l := Log{
		Variant: "relhell",
		Seed:    42,
		Mode:    "sim",
		Score:   12.5,
		Reason:  "suffocated",
		Entries: []Entry{
			NewEntry(pose, 0, 0.01, 90),
			NewEntry(pose, 0.01, 0.01, 91),
		},
	}

	path := filepath.Join(t.TempDir(), "runs", "flight.msgpack")
	if err := Save(path, l); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Version != Version || got.Seed != 42 || got.Reason != "suffocated" || len(got.Entries) != 2 {
		t.Fatalf("unexpected log: %+v", got)
	}
	if got.Entries[1].Pose() != pose {
		t.Error("pose did not survive the round trip")
	}
	if pt := got.ProperTime(); pt != 0.02 {
		t.Errorf("ProperTime = %f, expected 0.02", pt)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected an error for a missing file")
	}

	garbage := filepath.Join(dir, "garbage")
	if err := os.WriteFile(garbage, []byte{0xc1, 0xc1}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(garbage); err == nil {
		t.Error("expected an error for garbage input")
	}

	future := filepath.Join(dir, "future")
	data, err := msgpack.Marshal(&Log{Version: Version + 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(future, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(future); !errors.Is(err, ErrVersion) {
		t.Errorf("expected ErrVersion, got %v", err)
	}
}
