package world

import "github.com/vovakirdan/relhell/internal/core"

// Hit is a missile striking a rock.
type Hit struct {
	Missile *Object
	Rock    *Object
}

// Collisions is what the collision filter found among the displayed objects.
type Collisions struct {
	// Hits holds at most one rock per missile, the first one in
	// registry order.
	Hits []Hit
	// Crashes lists the rocks touched by the ship outline, once per
	// touching vertex.
	Crashes []*Object
	// Pickups lists each resource touched by the ship outline once.
	Pickups []*Object
}

// Classify splits displayed objects into rocks (main rocks included),
// missiles and resources.
func Classify(displayed []*Object) (rocks, missiles, resources []*Object) {
	for _, o := range displayed {
		switch o.Kind {
		case KindRock, KindMainRock:
			rocks = append(rocks, o)
		case KindMissile:
			missiles = append(missiles, o)
		case KindResource:
			resources = append(resources, o)
		}
	}
	return rocks, missiles, resources
}

// Collide tests missiles against rocks and, when ship is non-nil, every
// vertex of the ship outline against rocks and resources. It does not
// modify any object.
func Collide(displayed []*Object, ship []core.Point) Collisions {
	var c Collisions
	rocks, missiles, resources := Classify(displayed)

	for _, m := range missiles {
		p := m.Main.Klein()
		for _, r := range rocks {
			if r.Contains(p) {
				c.Hits = append(c.Hits, Hit{Missile: m, Rock: r})
				break
			}
		}
	}

	picked := make(map[*Object]bool)
	for _, h := range ship {
		for _, r := range rocks {
			if r.Contains(h) {
				c.Crashes = append(c.Crashes, r)
			}
		}
		for _, r := range resources {
			if !picked[r] && r.Contains(h) {
				picked[r] = true
				c.Pickups = append(c.Pickups, r)
			}
		}
	}
	return c
}
