package core

import (
	"math"
	"testing"
)

func square(cx, cy, r float64) []Point {
	// clockwise
	return []Point{
		{cx - r, cy + r},
		{cx + r, cy + r},
		{cx + r, cy - r},
		{cx - r, cy - r},
	}
}

func TestSignedArea(t *testing.T) {
	cw := square(0, 0, 1)
	if a := SignedArea(cw); a >= 0 {
		t.Errorf("clockwise square area = %f, expected negative", a)
	}

	ccw := make([]Point, len(cw))
	for i := range cw {
		ccw[i] = cw[len(cw)-1-i]
	}
	if a := SignedArea(ccw); math.Abs(a-8) > 1e-12 {
		t.Errorf("counter-clockwise square area = %f, expected 8", a)
	}

	if SignedArea(nil) != 0 {
		t.Error("empty polygon should have zero area")
	}
}

func TestPointInPolygon(t *testing.T) {
	poly := square(1, 1, 0.5)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"center", Point{1, 1}, true},
		{"near edge inside", Point{1.45, 0.6}, true},
		{"left outside", Point{0.2, 1}, false},
		{"right outside", Point{2, 1}, false},
		{"above", Point{1, 2}, false},
		{"origin", Point{0, 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointInPolygon(tc.p, poly); got != tc.expected {
				t.Errorf("PointInPolygon(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestPointInPolygonStartVertexInvariant(t *testing.T) {
	// 25-vertex disk, closed like the rock outlines
	var disk []Point
	for d := 0; d <= 360; d += 15 {
		rad := float64(d) * math.Pi / 180
		disk = append(disk, Point{math.Sin(rad) * 0.1, math.Cos(rad) * 0.1})
	}

	samples := []Point{{0, 0}, {0.05, 0.05}, {0.09, 0}, {0.2, 0}, {-0.08, -0.08}, {0, 0.11}}
	for _, p := range samples {
		want := PointInPolygon(p, disk)
		for shift := 1; shift < len(disk); shift++ {
			rotated := append(append([]Point{}, disk[shift:]...), disk[:shift]...)
			if got := PointInPolygon(p, rotated); got != want {
				t.Errorf("point %v, shift %d: got %v, expected %v", p, shift, got, want)
			}
		}
	}
}

func TestInputMove(t *testing.T) {
	f := NewInputFrame()
	if mag, _ := f.Move(); mag != 0 {
		t.Errorf("empty frame magnitude = %f, expected 0", mag)
	}

	f.SetMove(3, 4)
	mag, heading := f.Move()
	if math.Abs(mag-1) > 1e-12 {
		t.Errorf("clamped magnitude = %f, expected 1", mag)
	}
	if want := math.Atan2(4, 3) * 180 / math.Pi; math.Abs(heading-want) > 1e-9 {
		t.Errorf("heading = %f, expected %f", heading, want)
	}

	f.Set(ActionFire)
	c := f.Clone()
	f.Clear()
	if !c.Has(ActionFire) || c.MoveX == 0 {
		t.Error("Clone should be independent of Clear")
	}
	if f.Has(ActionFire) || f.MoveX != 0 {
		t.Error("Clear should reset actions and movement")
	}
}
