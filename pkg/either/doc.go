// Package either contains Either[L, R], a value that holds exactly one of a
// Left (by convention the failure) or a Right (the success), and the
// synchronous primitives that compose it.
//
// Highlights:
// - Left/Right/Conditionally: construct an Either
// - FromOption/FromPtr/RightIfNone/LeftIfNone: convert from optional values
// - Map/MapLeft/Bimap/FlatMap/Swap: transform, always into a new value
// - Fold: the eliminator, every read can be written with it
// - GetOrElse/GetOrHandle: safe extraction with lazy fallbacks
// - Try/FromResult/Unwrap: bridge to and from (value, error) pairs
// - Traverse/Sequence: work over slices, stopping at the first Left
// - Partition: split a slice into its Left and Right payloads
//
// Functions that introduce a new type parameter are package-level, since Go
// methods cannot declare their own. For bound-name sequential composition see
// package chain.
package either
