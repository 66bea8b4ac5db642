package mapping

import "slices"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind discriminates the variants of a Key.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindScalar
	KindAll
	KindDefault
	KindNone
	KindBatch

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Key is a closed tagged lookup key for a Catalog: a single scalar key, a
// batch of scalar keys, or one of the three wildcards All, Default and None.
// The zero Key has an invalid kind and resolves to nothing.
type Key[K comparable] struct {
	kind   Kind
	scalar K
	batch  []K
}

// Scalar builds a direct lookup key.
func Scalar[K comparable](key K) Key[K] {
	return Key[K]{kind: KindScalar, scalar: key}
}

// Batch builds a key that resolves every listed key present in the catalog,
// silently skipping absent ones.
func Batch[K comparable](keys ...K) Key[K] {
	return Key[K]{kind: KindBatch, batch: slices.Clone(keys)}
}

// All builds the wildcard that resolves to every stored value.
func All[K comparable]() Key[K] { return Key[K]{kind: KindAll} }

// Default builds the wildcard that resolves the catalog's default key.
func Default[K comparable]() Key[K] { return Key[K]{kind: KindDefault} }

// None builds the wildcard that resolves to an empty result, or the default
// factory value when one is configured.
func None[K comparable]() Key[K] { return Key[K]{kind: KindNone} }

// Kind reports which variant the key is.
func (k Key[K]) Kind() Kind { return k.kind }

// Scalar returns the scalar key and reports whether the key is a scalar.
func (k Key[K]) Scalar() (K, bool) { return k.scalar, k.kind == KindScalar }

// Keys returns a copy of the batch keys; nil unless the key is a batch.
func (k Key[K]) Keys() []K { return slices.Clone(k.batch) }
