// Package observable holds values that notify subscribers on change.
//
// Two values can be linked so that a write to one updates the other while the
// other's notifications are suspended, which keeps the pair consistent without
// feedback loops.
package observable

// Value is not safe for concurrent use; it lives on the UI thread.
type Value[T comparable] struct {
	v         T
	subs      []func(T)
	suspended int
}

func New[T comparable](v T) *Value[T] {
	return &Value[T]{v: v}
}

func (o *Value[T]) Get() T {
	return o.v
}

// Subscribe registers fn for future changes.
func (o *Value[T]) Subscribe(fn func(T)) {
	if fn == nil {
		return
	}
	o.subs = append(o.subs, fn)
}

// Set stores v and notifies subscribers when the value changed and
// notifications are not suspended.
func (o *Value[T]) Set(v T) {
	if o.v == v {
		return
	}
	o.v = v
	if o.suspended > 0 {
		return
	}
	for _, fn := range o.subs {
		fn(v)
	}
}

// Publish stores v and notifies subscribers even when v is unchanged.
func (o *Value[T]) Publish(v T) {
	o.v = v
	if o.suspended > 0 {
		return
	}
	for _, fn := range o.subs {
		fn(v)
	}
}

// Quietly runs fn with notifications suspended.
func (o *Value[T]) Quietly(fn func()) {
	o.suspended++
	defer func() { o.suspended-- }()
	fn()
}

// SetQuiet stores v without notifying anyone.
func (o *Value[T]) SetQuiet(v T) {
	o.Quietly(func() { o.Set(v) })
}

// Link keeps b derived from a (and a derived from b) through the given
// conversions. Each propagation writes the other side quietly.
func Link[A, B comparable](a *Value[A], b *Value[B], aToB func(A) B, bToA func(B) A) {
	a.Subscribe(func(v A) {
		if aToB == nil {
			return
		}
		b.SetQuiet(aToB(v))
	})
	b.Subscribe(func(v B) {
		if bToA == nil {
			return
		}
		a.SetQuiet(bToA(v))
	})
}
