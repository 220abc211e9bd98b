package either

import "errors"

// ErrNilLeft stands in for the error of a Left that holds nil, so such a Left
// never reads as success.
var ErrNilLeft = errors.New("either: Left holding a nil error")

// Try runs f and keeps its error as the Left.
func Try[R any](f func() (R, error)) Either[error, R] {
	v, err := f()
	return FromResult(v, err)
}

func FromResult[R any](v R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](v)
}

func Unwrap[R any](e Either[error, R]) (R, error) {
	if e.isRight {
		return e.right, nil
	}
	var zero R
	if e.left == nil {
		return zero, ErrNilLeft
	}
	return zero, e.left
}

// CollectLefts joins the error of every Left in es, in order. It returns nil
// when all of es are Right. A Left holding nil contributes ErrNilLeft.
func CollectLefts[R any](es []Either[error, R]) error {
	var errs []error
	for _, e := range es {
		if e.isRight {
			continue
		}
		if e.left == nil {
			errs = append(errs, ErrNilLeft)
		} else {
			errs = append(errs, e.left)
		}
	}
	return errors.Join(errs...)
}

// Errors returns the parts of the first multi-error found in err's chain,
// such as one built by CollectLefts, or err alone when there is none.
func Errors(err error) []error {
	var joined interface{ Unwrap() []error }
	switch {
	case err == nil:
		return []error{}
	case errors.As(err, &joined):
		return joined.Unwrap()
	default:
		return []error{err}
	}
}
