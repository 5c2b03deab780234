package floatinglabel

// Focuser moves keyboard focus into a mounted field.
type Focuser interface {
	Focus()
}

// Ref is a slot through which the owner of a field reaches the mounted field.
// The zero value is an empty slot.
type Ref struct {
	current Focuser
}

// Focus delegates focus to the mounted field. It is a no-op when nothing is
// attached.
func (r *Ref) Focus() {
	if r == nil || r.current == nil {
		return
	}
	r.current.Focus()
}

// Current returns the attached field, or nil.
func (r *Ref) Current() Focuser {
	if r == nil {
		return nil
	}
	return r.current
}

// Attach publishes f to the owner. Widgets call it when they mount.
func (r *Ref) Attach(f Focuser) {
	if r != nil {
		r.current = f
	}
}

// Detach clears the slot if it still holds f. Widgets call it on dispose.
func (r *Ref) Detach(f Focuser) {
	if r != nil && r.current == f {
		r.current = nil
	}
}
