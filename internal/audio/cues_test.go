package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestCueLengths(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		want time.Duration
	}{
		{"fire", 80 * time.Millisecond},
		{"hit-crush", 200 * time.Millisecond},
		{"explosion", 600 * time.Millisecond},
		{"pickup", 150 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Cue(tt.name, rate)
			if s == nil {
				t.Fatal("Expected a streamer")
			}
			total, peak := drain(s)
			if total != rate.N(tt.want) {
				t.Errorf("Expected %d samples, got %d", rate.N(tt.want), total)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("Peak %f outside (0, 1]", peak)
			}
		})
	}
}

func TestUnknownCue(t *testing.T) {
	if Cue("nope", beep.SampleRate(44100)) != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

func TestNoiseDeterministic(t *testing.T) {
	rate := beep.SampleRate(8000)
	a := make([][2]float64, 64)
	b := make([][2]float64, 64)
	NewNoise(rate, time.Second, .5, 9).Stream(a)
	NewNoise(rate, time.Second, .5, 9).Stream(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Sample %d differs", i)
		}
	}
}

func TestMutedManagerIsSilent(t *testing.T) {
	sm := NewManager(Muted(true))
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	sm.Play("fire")
	sm.Close()
}
