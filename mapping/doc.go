// Package mapping provides the camina dictionary family: four keyed
// containers that share one ordered store and differ only in lookup and
// insertion policy.
//
//   - Dictionary: ordered generic map with a configurable default-value
//     fallback, snapshot views and include/exclude subsetting.
//   - Catalog: Dictionary plus wildcard resolution. Lookup goes through a
//     closed tagged Key (Scalar, All, Default, None, Batch) instead of
//     reserved string keys.
//   - Chain: ordered layers of Dictionaries searched in priority order,
//     with a first-match or all-matches policy.
//   - Repository: Dictionary keyed by names derived from the inserted
//     values via an injected label.Namer, with numeric-suffix collision
//     handling.
//
// # Ordering
//
// Every container preserves insertion order for Keys, Values, Items and
// Iterate. The order carries no meaning; it exists so snapshots and tests
// are deterministic.
//
// # Errors
//
// Misses are bunch.ErrKeyNotFound and malformed requests are
// bunch.ErrInvalidArgument, both wrapped with context; test with errors.Is.
// Mutations either fully succeed or leave the container unchanged, except
// Chain.Delete which is best-effort per layer by design.
package mapping
