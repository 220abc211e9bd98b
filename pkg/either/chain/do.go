package chain

import "github.com/ib-77/either3/pkg/either"

// Do2 runs first, then second with first's payload, then yield with both.
// It is exactly
//
//	either.FlatMap(first(), func(a A) either.Either[L, R] {
//		return either.Map(second(a), func(b B) R { return yield(a, b) })
//	})
func Do2[L, A, B, R any](
	first func() either.Either[L, A],
	second func(a A) either.Either[L, B],
	yield func(a A, b B) R) either.Either[L, R] {

	return either.FlatMap(first(), func(a A) either.Either[L, R] {
		return either.Map(second(a), func(b B) R {
			return yield(a, b)
		})
	})
}

func Do3[L, A, B, C, R any](
	first func() either.Either[L, A],
	second func(a A) either.Either[L, B],
	third func(a A, b B) either.Either[L, C],
	yield func(a A, b B, c C) R) either.Either[L, R] {

	return either.FlatMap(first(), func(a A) either.Either[L, R] {
		return either.FlatMap(second(a), func(b B) either.Either[L, R] {
			return either.Map(third(a, b), func(c C) R {
				return yield(a, b, c)
			})
		})
	})
}

func Do4[L, A, B, C, D, R any](
	first func() either.Either[L, A],
	second func(a A) either.Either[L, B],
	third func(a A, b B) either.Either[L, C],
	fourth func(a A, b B, c C) either.Either[L, D],
	yield func(a A, b B, c C, d D) R) either.Either[L, R] {

	return either.FlatMap(first(), func(a A) either.Either[L, R] {
		return either.FlatMap(second(a), func(b B) either.Either[L, R] {
			return either.FlatMap(third(a, b), func(c C) either.Either[L, R] {
				return either.Map(fourth(a, b, c), func(d D) R {
					return yield(a, b, c, d)
				})
			})
		})
	})
}
