package world

// Objects owns every object of a session. Objects are never removed during
// play; Clear drops them all on restart.
type Objects struct {
	list []*Object
}

// NewObjects creates an empty registry.
func NewObjects() *Objects {
	return &Objects{}
}

// Add appends o and returns it.
func (r *Objects) Add(o *Object) *Object {
	r.list = append(r.list, o)
	return o
}

// All returns the objects in creation order.
func (r *Objects) All() []*Object {
	return r.list
}

// Len returns the number of objects.
func (r *Objects) Len() int {
	return len(r.list)
}

// Clear removes every object.
func (r *Objects) Clear() {
	r.list = nil
}

// Count returns how many objects have the given kind.
func (r *Objects) Count(kind Kind) int {
	n := 0
	for _, o := range r.list {
		if o.Kind == kind {
			n++
		}
	}
	return n
}
