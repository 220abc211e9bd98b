package chain

import "github.com/ib-77/either3/pkg/either"

// Chain wraps an either.Either to enable fluent chaining
type Chain[L, R any] struct {
	result either.Either[L, R]
}

// Start creates a new chain from an either.Either
func Start[L, R any](e either.Either[L, R]) Chain[L, R] {
	return Chain[L, R]{result: e}
}

// FromValue creates a new chain from a Right value
func FromValue[L, R any](v R) Chain[L, R] {
	return Start(either.Right[L](v))
}

func (c Chain[L, R]) Result() either.Either[L, R] {
	return c.result
}

// Then chains a step that may fail
func Then[L, R, R2 any](c Chain[L, R], step func(R) either.Either[L, R2]) Chain[L, R2] {
	return Chain[L, R2]{result: either.FlatMap(c.result, step)}
}

// Map chains a pure transformation
func Map[L, R, R2 any](c Chain[L, R], f func(R) R2) Chain[L, R2] {
	return Chain[L, R2]{result: either.Map(c.result, f)}
}

// Ensure runs a side effect on success without changing the result
func (c Chain[L, R]) Ensure(onRight func(R)) Chain[L, R] {
	return Chain[L, R]{result: c.result.Tap(onRight)}
}

// Recover replaces a Left with an alternative computed from it
func (c Chain[L, R]) Recover(alt func(L) either.Either[L, R]) Chain[L, R] {
	return Chain[L, R]{result: c.result.OrElse(alt)}
}

// Finally collapses the chain into a final value
func Finally[L, R, T any](c Chain[L, R], onLeft func(L) T, onRight func(R) T) T {
	return either.Fold(c.result, onLeft, onRight)
}
