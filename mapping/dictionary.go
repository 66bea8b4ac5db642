package mapping

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/mitchellh/copystructure"

	"github.com/WithPrecedent/camina/bunch"
)

// Dictionary is an ordered generic map with an optional default-value
// fallback for missed lookups. Keys are unique; iteration follows insertion
// order.
type Dictionary[K comparable, V any] struct {
	items   map[K]V
	order   []K
	factory func() V
}

// Option configures a Dictionary at construction time.
type Option[K comparable, V any] func(*Dictionary[K, V])

// WithDefault makes missed Get calls return value instead of failing.
func WithDefault[K comparable, V any](value V) Option[K, V] {
	return func(d *Dictionary[K, V]) { d.factory = func() V { return value } }
}

// WithDefaultFunc makes missed Get calls return a freshly produced value
// instead of failing.
func WithDefaultFunc[K comparable, V any](fn func() V) Option[K, V] {
	return func(d *Dictionary[K, V]) { d.factory = fn }
}

// New returns an empty Dictionary.
func New[K comparable, V any](opts ...Option[K, V]) *Dictionary[K, V] {
	d := &Dictionary[K, V]{items: make(map[K]V)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FromPairs builds a Dictionary holding every given pair, in order. Later
// duplicates of a key overwrite earlier ones.
func FromPairs[K comparable, V any](pairs []bunch.Pair[K, V], opts ...Option[K, V]) *Dictionary[K, V] {
	d := New(opts...)
	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}
	return d
}

// FromKeys builds a Dictionary where every key maps to the same value. The
// value is shared between keys, not copied per key.
func FromKeys[K comparable, V any](keys []K, value V, opts ...Option[K, V]) *Dictionary[K, V] {
	d := New(opts...)
	for _, k := range keys {
		d.Set(k, value)
	}
	return d
}

// Set stores value under key, appending the key to the iteration order if it
// is new.
func (d *Dictionary[K, V]) Set(key K, value V) {
	if _, ok := d.items[key]; !ok {
		d.order = append(d.order, key)
	}
	d.items[key] = value
}

// Get returns the value stored under key. On a miss it returns the default
// factory's value when one is configured and bunch.ErrKeyNotFound otherwise.
func (d *Dictionary[K, V]) Get(key K) (V, error) {
	if v, ok := d.items[key]; ok {
		return v, nil
	}
	if d.factory != nil {
		return d.factory(), nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", bunch.ErrKeyNotFound, key)
}

// GetOr returns the value stored under key, or fallback on a miss. The
// fallback argument takes precedence over the default factory.
func (d *Dictionary[K, V]) GetOr(key K, fallback V) V {
	if v, ok := d.items[key]; ok {
		return v
	}
	return fallback
}

// Lookup returns the value stored under key and whether it was present,
// without consulting the default factory.
func (d *Dictionary[K, V]) Lookup(key K) (V, bool) {
	v, ok := d.items[key]
	return v, ok
}

// Contains reports whether key is stored.
func (d *Dictionary[K, V]) Contains(key K) bool {
	_, ok := d.items[key]
	return ok
}

// Len reports the number of stored entries.
func (d *Dictionary[K, V]) Len() int { return len(d.items) }

// Add merges every entry of other into the dictionary; later keys win on
// conflict.
func (d *Dictionary[K, V]) Add(other bunch.Store[K, V]) {
	for _, p := range other.Items() {
		d.Set(p.Key, p.Value)
	}
}

// Combine is Add under the name the container contract uses for "+"
// composition.
func (d *Dictionary[K, V]) Combine(other bunch.Store[K, V]) { d.Add(other) }

// Delete removes key. A miss is bunch.ErrKeyNotFound.
func (d *Dictionary[K, V]) Delete(key K) error {
	if _, ok := d.items[key]; !ok {
		return fmt.Errorf("%w: %v", bunch.ErrKeyNotFound, key)
	}
	delete(d.items, key)
	d.order = slices.DeleteFunc(d.order, func(k K) bool { return k == key })
	return nil
}

// Keys returns a snapshot of the keys in insertion order.
func (d *Dictionary[K, V]) Keys() []K { return slices.Clone(d.order) }

// Values returns a snapshot of the values in insertion order.
func (d *Dictionary[K, V]) Values() []V {
	out := make([]V, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.items[k])
	}
	return out
}

// Items returns a snapshot of the entries in insertion order.
func (d *Dictionary[K, V]) Items() []bunch.Pair[K, V] {
	out := make([]bunch.Pair[K, V], 0, len(d.order))
	for _, k := range d.order {
		out = append(out, bunch.Pair[K, V]{Key: k, Value: d.items[k]})
	}
	return out
}

// Iterate yields entries in insertion order.
func (d *Dictionary[K, V]) Iterate() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range d.order {
			if !yield(k, d.items[k]) {
				return
			}
		}
	}
}

// SetDefault sets the value missed Get calls return from now on.
func (d *Dictionary[K, V]) SetDefault(value V) {
	d.factory = func() V { return value }
}

// SetDefaultFunc sets the producer missed Get calls invoke from now on.
func (d *Dictionary[K, V]) SetDefaultFunc(fn func() V) { d.factory = fn }

// Subset returns a new Dictionary restricted to include minus exclude. A nil
// include selects every current key; both nil is bunch.ErrInvalidArgument.
// Include keys absent from the dictionary are skipped. Values are
// deep-copied, so the result shares no mutable state with the original, and
// the default factory carries over.
func (d *Dictionary[K, V]) Subset(include, exclude []K) (*Dictionary[K, V], error) {
	keep, err := subsetKeys(d.order, d.Contains, include, exclude)
	if err != nil {
		return nil, err
	}
	out := New[K, V]()
	out.factory = d.factory
	for _, k := range keep {
		v, err := deepCopy(d.items[k])
		if err != nil {
			return nil, fmt.Errorf("subset: copy value for %v: %w", k, err)
		}
		out.Set(k, v)
	}
	return out, nil
}

// Equal reports whether both dictionaries hold the same entries, compared
// with reflect.DeepEqual, and agree on whether a default factory is
// configured. Insertion order does not participate in equality.
func (d *Dictionary[K, V]) Equal(other *Dictionary[K, V]) bool {
	if other == nil || len(d.items) != len(other.items) {
		return false
	}
	if (d.factory == nil) != (other.factory == nil) {
		return false
	}
	for k, v := range d.items {
		ov, ok := other.items[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// clone deep-copies the dictionary, configuration included.
func (d *Dictionary[K, V]) clone() (*Dictionary[K, V], error) {
	out := New[K, V]()
	out.factory = d.factory
	for _, k := range d.order {
		v, err := deepCopy(d.items[k])
		if err != nil {
			return nil, fmt.Errorf("clone: copy value for %v: %w", k, err)
		}
		out.Set(k, v)
	}
	return out, nil
}

// subsetKeys resolves the include/exclude arguments of Subset against the
// current key order. Include order is preserved in the result.
func subsetKeys[K comparable](order []K, has func(K) bool, include, exclude []K) ([]K, error) {
	if include == nil && exclude == nil {
		return nil, fmt.Errorf("%w: subset requires include or exclude", bunch.ErrInvalidArgument)
	}
	var keep []K
	if include == nil {
		keep = slices.Clone(order)
	} else {
		for _, k := range include {
			if has(k) {
				keep = append(keep, k)
			}
		}
	}
	if len(exclude) > 0 {
		drop := make(map[K]struct{}, len(exclude))
		for _, k := range exclude {
			drop[k] = struct{}{}
		}
		keep = slices.DeleteFunc(keep, func(k K) bool {
			_, out := drop[k]
			return out
		})
	}
	return keep, nil
}

// deepCopy clones a stored value so derived containers share no mutable
// state with their origin.
func deepCopy[V any](value V) (V, error) {
	copied, err := copystructure.Copy(value)
	if err != nil {
		var zero V
		return zero, err
	}
	out, ok := copied.(V)
	if !ok {
		// copystructure reports untyped nil for nil maps, slices and
		// pointers; the zero value is the right rendering of those.
		var zero V
		return zero, nil
	}
	return out, nil
}
