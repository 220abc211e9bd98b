package either

// Traverse applies f to each element in order and stops at the first Left,
// which is returned unchanged. Elements after it are not visited.
func Traverse[L, A, R any](xs []A, f func(A) Either[L, R]) Either[L, []R] {
	out := make([]R, 0, len(xs))
	for _, x := range xs {
		e := f(x)
		if !e.isRight {
			return Left[L, []R](e.left)
		}
		out = append(out, e.right)
	}
	return Right[L](out)
}

func Sequence[L, R any](es []Either[L, R]) Either[L, []R] {
	return Traverse(es, func(e Either[L, R]) Either[L, R] { return e })
}

// Partition splits es into its Left and Right payloads, keeping relative order.
func Partition[L, R any](es []Either[L, R]) (lefts []L, rights []R) {
	for _, e := range es {
		if e.isRight {
			rights = append(rights, e.right)
		} else {
			lefts = append(lefts, e.left)
		}
	}
	return lefts, rights
}
