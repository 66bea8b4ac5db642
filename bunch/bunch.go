package bunch

// Pair is a single key/value entry in a container snapshot.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Store is the read side every keyed container implements. Keys, Values and
// Items return snapshots: mutating the container afterwards does not change
// a slice already handed out.
type Store[K comparable, V any] interface {
	Len() int
	Keys() []K
	Values() []V
	Items() []Pair[K, V]
	Contains(key K) bool
}

// Bunch is a mutable keyed container whose Delete reports a miss. Catalog
// and Chain deviate from this signature on purpose (batch all-or-nothing
// delete and best-effort layered delete) and so satisfy only Store.
type Bunch[K comparable, V any] interface {
	Store[K, V]
	Delete(key K) error
}
