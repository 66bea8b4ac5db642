package mapping

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/WithPrecedent/camina/bunch"
)

// Catalog is a Dictionary with wildcard resolution, intended for storing
// named options and strategies. Lookups go through Resolve with a tagged
// Key; plain scalar access stays available through the embedded Dictionary.
type Catalog[K comparable, V any] struct {
	*Dictionary[K, V]

	defaultKey Key[K]
	returnList bool
}

// CatalogOption configures a Catalog at construction time.
type CatalogOption[K comparable, V any] func(*Catalog[K, V])

// WithDefaultKey designates what the Default wildcard resolves to. Unset, it
// is All.
func WithDefaultKey[K comparable, V any](key Key[K]) CatalogOption[K, V] {
	return func(c *Catalog[K, V]) { c.defaultKey = key }
}

// WithAlwaysList makes the None wildcard resolve to an empty, non-nil slice
// instead of nil, for callers that iterate the result unconditionally.
func WithAlwaysList[K comparable, V any]() CatalogOption[K, V] {
	return func(c *Catalog[K, V]) { c.returnList = true }
}

// NewCatalog returns an empty Catalog whose Default wildcard resolves to
// All.
func NewCatalog[K comparable, V any](opts ...CatalogOption[K, V]) *Catalog[K, V] {
	c := &Catalog[K, V]{
		Dictionary: New[K, V](),
		defaultKey: All[K](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CatalogFromPairs builds a Catalog holding every given pair, in order.
func CatalogFromPairs[K comparable, V any](pairs []bunch.Pair[K, V], opts ...CatalogOption[K, V]) *Catalog[K, V] {
	c := NewCatalog(opts...)
	for _, p := range pairs {
		c.Set(p.Key, p.Value)
	}
	return c
}

// Resolve returns the values key selects, applying wildcard precedence:
//
//  1. All: every stored value in insertion order.
//  2. Default: the catalog's default key, resolved recursively.
//  3. None: the default factory's value if configured; otherwise an empty
//     result (non-nil only under WithAlwaysList).
//  4. Batch: the values of every listed key present, absent keys skipped.
//  5. Scalar: the stored value, or bunch.ErrKeyNotFound.
func (c *Catalog[K, V]) Resolve(key Key[K]) ([]V, error) {
	return c.resolve(key, false)
}

func (c *Catalog[K, V]) resolve(key Key[K], nested bool) ([]V, error) {
	switch key.Kind() {
	case KindAll:
		return c.Values(), nil
	case KindDefault:
		if nested || c.defaultKey.Kind() == KindDefault {
			return nil, fmt.Errorf("%w: default key resolves to itself", bunch.ErrInvalidArgument)
		}
		return c.resolve(c.defaultKey, true)
	case KindNone:
		if c.factory != nil {
			return []V{c.factory()}, nil
		}
		if c.returnList {
			return []V{}, nil
		}
		return nil, nil
	case KindBatch:
		out := make([]V, 0, len(key.batch))
		for _, k := range key.batch {
			if v, ok := c.items[k]; ok {
				out = append(out, v)
			}
		}
		return out, nil
	case KindScalar:
		v, ok := c.items[key.scalar]
		if !ok {
			return nil, fmt.Errorf("%w: %v", bunch.ErrKeyNotFound, key.scalar)
		}
		return []V{v}, nil
	default:
		return nil, fmt.Errorf("%w: key has no kind", bunch.ErrInvalidArgument)
	}
}

// SetDefaultKey redirects the Default wildcard. A scalar, batch or All key
// is expected; a Default key is rejected at resolution time.
func (c *Catalog[K, V]) SetDefaultKey(key Key[K]) { c.defaultKey = key }

// DefaultKey reports what the Default wildcard currently resolves to.
func (c *Catalog[K, V]) DefaultKey() Key[K] { return c.defaultKey }

// SetBatch zips keys with values pairwise and assigns every pair. Nothing is
// assigned when the lengths differ.
func (c *Catalog[K, V]) SetBatch(keys []K, values []V) error {
	if len(keys) != len(values) {
		return fmt.Errorf(
			"%w: %d keys zipped with %d values",
			bunch.ErrInvalidArgument, len(keys), len(values))
	}
	for i, k := range keys {
		c.Set(k, values[i])
	}
	return nil
}

// Delete removes every given key. The check is all-or-nothing: when any key
// is absent, nothing is removed and every missing key is reported.
func (c *Catalog[K, V]) Delete(keys ...K) error {
	var missing error
	for _, k := range keys {
		if !c.Contains(k) {
			missing = multierr.Append(missing, fmt.Errorf("%w: %v", bunch.ErrKeyNotFound, k))
		}
	}
	if missing != nil {
		return missing
	}
	for _, k := range keys {
		_ = c.Dictionary.Delete(k)
	}
	return nil
}

// Subset returns a new Catalog restricted to include minus exclude,
// carrying the default key and list behavior of the original. See
// Dictionary.Subset for the argument contract.
func (c *Catalog[K, V]) Subset(include, exclude []K) (*Catalog[K, V], error) {
	d, err := c.Dictionary.Subset(include, exclude)
	if err != nil {
		return nil, err
	}
	return &Catalog[K, V]{
		Dictionary: d,
		defaultKey: c.defaultKey,
		returnList: c.returnList,
	}, nil
}
