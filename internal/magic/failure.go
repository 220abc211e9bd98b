package magic

type failureKind uint8

const (
	notANumber failureKind = iota
	noZeroReciprocal
)

// Failure is the closed set of ways the pipeline can fail. Its only values are
// NotANumber and NoZeroReciprocal; the zero Failure is NotANumber.
type Failure struct {
	kind failureKind
}

var (
	NotANumber       = Failure{kind: notANumber}
	NoZeroReciprocal = Failure{kind: noZeroReciprocal}
)

// MatchFailure requires a handler for every Failure and calls the matching one.
func MatchFailure[T any](f Failure, onNotANumber func() T, onNoZeroReciprocal func() T) T {
	if f.kind == noZeroReciprocal {
		return onNoZeroReciprocal()
	}
	return onNotANumber()
}

func (f Failure) String() string {
	return MatchFailure(f,
		func() string { return "NotANumber" },
		func() string { return "NoZeroReciprocal" })
}
