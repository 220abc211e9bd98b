package either

import "github.com/ib-77/either3/pkg/option"

// FromOption is Right(value) when o is Some, otherwise Left(whenNone()).
func FromOption[L, R any](o option.Option[R], whenNone func() L) Either[L, R] {
	if v, ok := o.Get(); ok {
		return Right[L](v)
	}
	return Left[L, R](whenNone())
}

func FromPtr[L, R any](p *R, whenNil func() L) Either[L, R] {
	return FromOption(option.FromPtr(p), whenNil)
}

// RightIfNone mirrors FromOption: an absent value is the success and yields
// Right(fallback()), a present one becomes Left(value).
func RightIfNone[A, R any](o option.Option[A], fallback func() R) Either[A, R] {
	if v, ok := o.Get(); ok {
		return Left[A, R](v)
	}
	return Right[A](fallback())
}

// LeftIfNone unwraps an optional Right payload. Right(None) becomes
// Left(whenNone()), Right(Some(v)) becomes Right(v) and a Left passes through.
func LeftIfNone[L, R any](e Either[L, option.Option[R]], whenNone func() L) Either[L, R] {
	return FlatMap(e, func(o option.Option[R]) Either[L, R] {
		return FromOption(o, whenNone)
	})
}

func ToOption[L, R any](e Either[L, R]) option.Option[R] {
	if e.isRight {
		return option.Some(e.right)
	}
	return option.None[R]()
}

func LeftToOption[L, R any](e Either[L, R]) option.Option[L] {
	return ToOption(e.Swap())
}
