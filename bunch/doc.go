// Package bunch defines the contract shared by every camina container.
//
// A bunch differs from a plain Go map in three ways:
//
//   - Add is the single sanctioned way to merge items in, which lets each
//     container apply its own policy (uniquified keys, layered writes)
//     without growing extra access methods.
//   - Delete reports a miss with ErrKeyNotFound instead of silently doing
//     nothing.
//   - Subset produces a new container of the same concrete type, carrying
//     the same configuration and sharing no mutable state with the original.
//
// Subset is intentionally absent from the interfaces here: it returns the
// concrete container type, which an interface method cannot express. Every
// container in the mapping package implements it with the same shape:
//
//	Subset(include, exclude []K) (*T, error)
//
// where a nil include selects every current key, both arguments nil is an
// ErrInvalidArgument, and matched values are deep-copied into the result.
//
// Combine on each concrete type is an alias for Add; it is the "+"
// composition of the contract, merging another store of compatible shape.
package bunch
