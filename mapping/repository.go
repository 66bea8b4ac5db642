package mapping

import (
	"fmt"

	"github.com/WithPrecedent/camina/bunch"
	"github.com/WithPrecedent/camina/label"
)

// Repository stores items under string keys derived from the items
// themselves. The naming strategy is injected at construction; label.Namify
// is the fallback.
type Repository[V any] struct {
	*Dictionary[string, V]

	namer     label.Namer[V]
	overwrite bool
}

// RepositoryOption configures a Repository at construction time.
type RepositoryOption[V any] func(*Repository[V])

// WithNamer injects the naming strategy used to derive keys. The namer must
// be deterministic for reproducible keys. A nil namer is ignored.
func WithNamer[V any](namer label.Namer[V]) RepositoryOption[V] {
	return func(r *Repository[V]) {
		if namer != nil {
			r.namer = namer
		}
	}
}

// WithOverwrite makes colliding keys replace the stored item instead of
// being suffixed into a fresh key.
func WithOverwrite[V any]() RepositoryOption[V] {
	return func(r *Repository[V]) { r.overwrite = true }
}

// NewRepository returns an empty Repository naming items with label.Namify.
func NewRepository[V any](opts ...RepositoryOption[V]) *Repository[V] {
	r := &Repository[V]{
		Dictionary: New[string, V](),
		namer:      func(item V) string { return label.Namify(item) },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add stores item under a key derived by the repository's namer and returns
// the key actually used.
func (r *Repository[V]) Add(item V) string {
	return r.AddKeyed(r.namer(item), item)
}

// AddKeyed stores item under key. Unless overwrite is enabled, a taken key
// is suffixed with an increasing counter until a free one is found. The key
// actually used is returned. Other stored entries are never disturbed.
func (r *Repository[V]) AddKeyed(key string, item V) string {
	if !r.overwrite {
		key = r.uniquify(key)
	}
	r.Set(key, item)
	return key
}

// Combine merges another store's entries, re-applying the repository's
// collision policy to each incoming key.
func (r *Repository[V]) Combine(other bunch.Store[string, V]) {
	for _, p := range other.Items() {
		r.AddKeyed(p.Key, p.Value)
	}
}

// Subset returns a new Repository restricted to include minus exclude,
// carrying the namer and overwrite policy of the original. See
// Dictionary.Subset for the argument contract.
func (r *Repository[V]) Subset(include, exclude []string) (*Repository[V], error) {
	d, err := r.Dictionary.Subset(include, exclude)
	if err != nil {
		return nil, err
	}
	return &Repository[V]{
		Dictionary: d,
		namer:      r.namer,
		overwrite:  r.overwrite,
	}, nil
}

// uniquify probes key, key_2, key_3, ... against the stored keys and returns
// the first free candidate.
func (r *Repository[V]) uniquify(key string) string {
	if !r.Contains(key) {
		return key
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d", key, n)
		if !r.Contains(candidate) {
			return candidate
		}
	}
}
