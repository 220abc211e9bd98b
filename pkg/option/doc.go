// Package option provides Option[T], an explicit optional value used instead of
// nil wherever a payload may be absent.
//
// Highlights:
// - Some/None: construct an Option
// - FromPtr/FromNillable: lift Go's nil conventions into an Option
// - Get/GetOrElse/ToPtr: read the value back out
// - Map/FlatMap/Fold: transform without unwrapping
//
// Conversions between Option and Either live in package either, so this
// package stays a leaf.
package option
