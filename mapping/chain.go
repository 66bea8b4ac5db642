package mapping

import (
	"fmt"
	"iter"
	"slices"

	"github.com/WithPrecedent/camina/bunch"
)

// Chain layers Dictionaries and searches them in priority order, layer 0
// first. Layers stay independently valid; reads never merge or copy layer
// contents.
type Chain[K comparable, V any] struct {
	layers      []*Dictionary[K, V]
	factory     func() V
	returnFirst bool
}

// ChainOption configures a Chain at construction time.
type ChainOption[K comparable, V any] func(*Chain[K, V])

// WithReturnAll makes Resolve collect matches from every layer instead of
// stopping at the first.
func WithReturnAll[K comparable, V any]() ChainOption[K, V] {
	return func(c *Chain[K, V]) { c.returnFirst = false }
}

// WithChainDefault makes missed Get calls return value instead of failing.
func WithChainDefault[K comparable, V any](value V) ChainOption[K, V] {
	return func(c *Chain[K, V]) { c.factory = func() V { return value } }
}

// NewChain returns a Chain with no layers and the first-match policy.
func NewChain[K comparable, V any](opts ...ChainOption[K, V]) *Chain[K, V] {
	c := &Chain[K, V]{returnFirst: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChainFromKeys builds a Chain with a single layer where every key maps to
// the same shared value.
func ChainFromKeys[K comparable, V any](keys []K, value V, opts ...ChainOption[K, V]) *Chain[K, V] {
	c := NewChain(opts...)
	c.NewChild(FromKeys(keys, value))
	return c
}

// Len reports the number of layers, not the number of stored keys.
func (c *Chain[K, V]) Len() int { return len(c.layers) }

// Layers returns a snapshot of the layer list. The layers themselves are
// shared, not copied.
func (c *Chain[K, V]) Layers() []*Dictionary[K, V] { return slices.Clone(c.layers) }

// Get returns the first match for key across layers. On a miss it returns
// the chain's default value when one is configured and bunch.ErrKeyNotFound
// otherwise.
func (c *Chain[K, V]) Get(key K) (V, error) {
	for _, layer := range c.layers {
		if v, ok := layer.Lookup(key); ok {
			return v, nil
		}
	}
	if c.factory != nil {
		return c.factory(), nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", bunch.ErrKeyNotFound, key)
}

// Resolve returns the matches for key. Under the first-match policy the scan
// stops at the first layer that holds the key and the result has one
// element; under WithReturnAll every layer is consulted and all matches come
// back in layer order. Zero matches is bunch.ErrKeyNotFound.
func (c *Chain[K, V]) Resolve(key K) ([]V, error) {
	var matches []V
	for _, layer := range c.layers {
		if v, ok := layer.Lookup(key); ok {
			matches = append(matches, v)
			if c.returnFirst {
				break
			}
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %v", bunch.ErrKeyNotFound, key)
	}
	return matches, nil
}

// Contains reports whether any layer holds key.
func (c *Chain[K, V]) Contains(key K) bool {
	for _, layer := range c.layers {
		if layer.Contains(key) {
			return true
		}
	}
	return false
}

// Set writes into the highest-priority layer, creating one when the chain
// has no layers yet.
func (c *Chain[K, V]) Set(key K, value V) {
	if len(c.layers) == 0 {
		c.layers = []*Dictionary[K, V]{New[K, V]()}
	}
	c.layers[0].Set(key, value)
}

// Delete removes key from every layer holding it. A chained mapping can
// hold the same key in several layers, so this is best-effort and absence
// anywhere is not an error.
func (c *Chain[K, V]) Delete(key K) {
	for _, layer := range c.layers {
		_ = layer.Delete(key)
	}
}

// Add appends layer with the lowest priority. A nil layer is replaced with
// an empty one.
func (c *Chain[K, V]) Add(layer *Dictionary[K, V]) {
	if layer == nil {
		layer = New[K, V]()
	}
	c.layers = append(c.layers, layer)
}

// Combine is Add under the name the container contract uses for "+"
// composition.
func (c *Chain[K, V]) Combine(layer *Dictionary[K, V]) { c.Add(layer) }

// NewChild inserts layer with the highest priority. A nil layer is replaced
// with an empty one.
func (c *Chain[K, V]) NewChild(layer *Dictionary[K, V]) {
	if layer == nil {
		layer = New[K, V]()
	}
	c.layers = append([]*Dictionary[K, V]{layer}, c.layers...)
}

// Parents returns a new Chain over every layer except the first, with the
// same configuration. Layers are deep-copied, so the result shares no
// mutable state with the original.
func (c *Chain[K, V]) Parents() (*Chain[K, V], error) {
	out := &Chain[K, V]{factory: c.factory, returnFirst: c.returnFirst}
	if len(c.layers) == 0 {
		return out, nil
	}
	for _, layer := range c.layers[1:] {
		cloned, err := layer.clone()
		if err != nil {
			return nil, err
		}
		out.layers = append(out.layers, cloned)
	}
	return out, nil
}

// Keys concatenates every layer's keys in layer order. Duplicate keys across
// layers are kept.
func (c *Chain[K, V]) Keys() []K {
	var out []K
	for _, layer := range c.layers {
		out = append(out, layer.Keys()...)
	}
	return out
}

// Values concatenates every layer's values in layer order.
func (c *Chain[K, V]) Values() []V {
	var out []V
	for _, layer := range c.layers {
		out = append(out, layer.Values()...)
	}
	return out
}

// Iterate yields every layer's entries in layer order.
func (c *Chain[K, V]) Iterate() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, layer := range c.layers {
			for k, v := range layer.Iterate() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Items concatenates every layer's entries in layer order.
func (c *Chain[K, V]) Items() []bunch.Pair[K, V] {
	var out []bunch.Pair[K, V]
	for _, layer := range c.layers {
		out = append(out, layer.Items()...)
	}
	return out
}

// Subset applies Dictionary.Subset to every layer independently, producing a
// new Chain of equally many subset layers with the same configuration.
func (c *Chain[K, V]) Subset(include, exclude []K) (*Chain[K, V], error) {
	if include == nil && exclude == nil {
		return nil, fmt.Errorf("%w: subset requires include or exclude", bunch.ErrInvalidArgument)
	}
	out := &Chain[K, V]{factory: c.factory, returnFirst: c.returnFirst}
	for _, layer := range c.layers {
		sub, err := layer.Subset(include, exclude)
		if err != nil {
			return nil, err
		}
		out.layers = append(out.layers, sub)
	}
	return out, nil
}
