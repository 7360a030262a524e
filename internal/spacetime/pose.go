package spacetime

import "github.com/go-gl/mathgl/mgl64"

// Pose anchors a worldline: a Lorentz transform plus a time shift along the
// anchor's own time axis. The transform only ever holds products of
// rotations and boosts.
type Pose struct {
	T     mgl64.Mat4
	Shift float64
}

// NewPose returns a pose with transform t and shift s.
func NewPose(t mgl64.Mat4, s float64) Pose {
	return Pose{T: t, Shift: s}
}

// IdentityPose is the pose at the origin with zero shift.
func IdentityPose() Pose {
	return Pose{T: mgl64.Ident4()}
}

// Relative expresses the worldline anchored at p in the frame of observer o:
// o.T · Lorentz(2,3, p.Shift - o.Shift) · p.T.
func (o Pose) Relative(p Pose) mgl64.Mat4 {
	return o.T.Mul4(Lorentz(2, 3, p.Shift-o.Shift)).Mul4(p.T)
}

// Anchor returns the world transform of an object sitting at the observer's
// place and facing angle deg, i.e. inverse(o.T)·Spin(deg).
func (o Pose) Anchor(deg float64) mgl64.Mat4 {
	return Inverse(o.T).Mul4(Spin(Degrees(deg)))
}
