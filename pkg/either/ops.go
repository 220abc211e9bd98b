package either

func Map[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, R2](e.left)
}

func MapLeft[L, R, L2 any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if e.isRight {
		return Right[L2](e.right)
	}
	return Left[L2, R](f(e.left))
}

// Bimap applies fl to a Left or fr to a Right.
func Bimap[L, R, L2, R2 any](e Either[L, R], fl func(L) L2, fr func(R) R2) Either[L2, R2] {
	if e.isRight {
		return Right[L2](fr(e.right))
	}
	return Left[L2, R2](fl(e.left))
}

// FlatMap hands a Right payload to f and returns f's result as is. A Left is
// returned unchanged and f is not called, so a chain of FlatMap calls stops at
// the first Left.
func FlatMap[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, R2](e.left)
}

func Flatten[L, R any](e Either[L, Either[L, R]]) Either[L, R] {
	if e.isRight {
		return e.right
	}
	return Left[L, R](e.left)
}

// Fold calls exactly one of onLeft or onRight.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// FilterOrElse turns a Right whose payload fails pred into Left(onFalse(payload)).
func FilterOrElse[L, R any](e Either[L, R], pred func(R) bool, onFalse func(R) L) Either[L, R] {
	if !e.isRight || pred(e.right) {
		return e
	}
	return Left[L, R](onFalse(e.right))
}

// Contains reports whether e is Right(v). It is always false for a Left.
// When R is an interface type, comparing two payloads whose dynamic type is
// not comparable (a slice, map or func) panics, as == does.
func Contains[L any, R comparable](e Either[L, R], v R) bool {
	return e.isRight && e.right == v
}

// Equal reports whether a and b are on the same side with equal payloads.
// Like Contains, it panics on interface payloads of an uncomparable dynamic type.
func Equal[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}
