package either

import "fmt"

// Either holds a Left or a Right, never both. The zero value is Left with the
// zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Conditionally calls ifTrue when cond holds and ifFalse otherwise. The other
// producer is never invoked.
func Conditionally[L, R any](cond bool, ifFalse func() L, ifTrue func() R) Either[L, R] {
	if cond {
		return Right[L](ifTrue())
	}
	return Left[L, R](ifFalse())
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// Right returns the Right payload and true, or the zero R and false.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Left returns the Left payload and true, or the zero L and false.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// GetOrElse returns the Right payload. orElse runs only for a Left.
func (e Either[L, R]) GetOrElse(orElse func() R) R {
	if e.isRight {
		return e.right
	}
	return orElse()
}

// GetOrHandle returns the Right payload, or computes one from the Left.
func (e Either[L, R]) GetOrHandle(handle func(L) R) R {
	if e.isRight {
		return e.right
	}
	return handle(e.left)
}

// OrElse replaces a Left with whatever alt returns. Rights pass through.
func (e Either[L, R]) OrElse(alt func(L) Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}
	return alt(e.left)
}

// Exists reports whether e is Right and its payload satisfies pred.
func (e Either[L, R]) Exists(pred func(R) bool) bool {
	return e.isRight && pred(e.right)
}

func (e Either[L, R]) Tap(onRight func(R)) Either[L, R] {
	if e.isRight {
		onRight(e.right)
	}
	return e
}

func (e Either[L, R]) TapLeft(onLeft func(L)) Either[L, R] {
	if !e.isRight {
		onLeft(e.left)
	}
	return e
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Either.Right(%v)", e.right)
	}
	return fmt.Sprintf("Either.Left(%v)", e.left)
}
