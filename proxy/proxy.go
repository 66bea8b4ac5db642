// Package proxy wraps a single value behind explicit accessors. Where a
// dynamic language would forward attribute access to the wrapped value
// transparently, this wrapper keeps the boundary visible: callers reach the
// value through Inner and replace it through SetInner.
package proxy

import "github.com/mitchellh/copystructure"

// Proxy holds one wrapped value and tracks whether one has been set, so a
// stored zero value is distinguishable from an empty proxy.
type Proxy[T any] struct {
	inner T
	set   bool
}

// New returns an empty Proxy.
func New[T any]() *Proxy[T] { return &Proxy[T]{} }

// Wrap returns a Proxy holding value.
func Wrap[T any](value T) *Proxy[T] {
	return &Proxy[T]{inner: value, set: true}
}

// Inner returns the wrapped value; the zero value when nothing is wrapped.
func (p *Proxy[T]) Inner() T { return p.inner }

// SetInner replaces the wrapped value.
func (p *Proxy[T]) SetInner(value T) {
	p.inner = value
	p.set = true
}

// Swap replaces the wrapped value and returns the previous one.
func (p *Proxy[T]) Swap(value T) T {
	old := p.inner
	p.SetInner(value)
	return old
}

// IsZero reports whether the proxy has never held a value.
func (p *Proxy[T]) IsZero() bool { return !p.set }

// Clear drops the wrapped value.
func (p *Proxy[T]) Clear() {
	var zero T
	p.inner = zero
	p.set = false
}

// Clone returns a Proxy holding a deep copy of the wrapped value.
func (p *Proxy[T]) Clone() (*Proxy[T], error) {
	if !p.set {
		return New[T](), nil
	}
	copied, err := copystructure.Copy(p.inner)
	if err != nil {
		return nil, err
	}
	inner, ok := copied.(T)
	if !ok {
		var zero T
		inner = zero
	}
	return Wrap(inner), nil
}

// Contains reports whether the proxy holds a value equal to item.
func Contains[T comparable](p *Proxy[T], item T) bool {
	return p.set && p.inner == item
}
