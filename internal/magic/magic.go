// Package magic is the reference pipeline built on package either: parse a
// string, take its reciprocal, render it.
package magic

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/either/chain"
)

var intPattern = regexp.MustCompile(`^-?[0-9]+$`)

func Parse(s string) either.Either[Failure, int] {
	if !intPattern.MatchString(s) {
		return either.Left[Failure, int](NotANumber)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// out of range for int
		return either.Left[Failure, int](NotANumber)
	}
	return either.Right[Failure](n)
}

// ParseErr is Parse with strconv's error kept as the Left.
func ParseErr(s string) either.Either[error, int] {
	return either.Try(func() (int, error) {
		return strconv.Atoi(s)
	})
}

func Reciprocal(i int) either.Either[Failure, float64] {
	return either.Conditionally(i != 0,
		func() Failure { return NoZeroReciprocal },
		func() float64 { return 1.0 / float64(i) })
}

// Stringify renders f with the shortest exact decimal, always with a fraction
// part: 1 -> "1.0", 0.5 -> "0.5".
func Stringify(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}

func Magic(s string) either.Either[Failure, string] {
	return either.Map(either.FlatMap(Parse(s), Reciprocal), Stringify)
}

// MagicDo is Magic written as a comprehension block.
func MagicDo(s string) either.Either[Failure, string] {
	return chain.Do2(
		func() either.Either[Failure, int] { return Parse(s) },
		func(i int) either.Either[Failure, float64] { return Reciprocal(i) },
		func(_ int, r float64) string { return Stringify(r) })
}

// MagicChain is Magic written with the fluent chain.
func MagicChain(s string) either.Either[Failure, string] {
	c := chain.Then(chain.Start(Parse(s)), Reciprocal)
	return chain.Map(c, Stringify).Result()
}

// StatusCode maps the outcome of Magic(s) onto an HTTP status.
func StatusCode(s string) int {
	return Status(Magic(s))
}

// Status maps an already computed outcome onto an HTTP status.
func Status(e either.Either[Failure, string]) int {
	return either.Map(e, func(string) int { return http.StatusOK }).
		GetOrHandle(func(f Failure) int {
			return MatchFailure(f,
				func() int { return http.StatusBadRequest },
				func() int { return http.StatusUnprocessableEntity })
		})
}

// Describe folds an outcome into a line of text.
func Describe(e either.Either[Failure, string]) string {
	return either.Fold(e,
		func(f Failure) string {
			return MatchFailure(f,
				func() string { return "not a number!" },
				func() string { return "can't take reciprocal of 0!" })
		},
		func(v string) string { return "got " + v })
}
