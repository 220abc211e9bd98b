package either

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func nonNegative(i int) Either[string, int] {
	if i < 0 {
		return Left[string, int]("negative")
	}
	return Right[string](i)
}

func TestTraverse(t *testing.T) {
	t.Parallel()

	got := Traverse([]int{1, 2, 3}, nonNegative)
	v, ok := got.Right()
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, v)
}

func TestTraverse_StopsAtFirstLeft(t *testing.T) {
	t.Parallel()

	visited := []int{}
	got := Traverse([]int{1, -2, -3, 4}, func(i int) Either[string, int] {
		visited = append(visited, i)
		if i < 0 {
			return Left[string, int]("negative " + string(rune('0'-i)))
		}
		return Right[string](i)
	})

	l, ok := got.Left()
	assert.True(t, ok)
	assert.Equal(t, "negative 2", l)
	assert.Equal(t, []int{1, -2}, visited)
}

func TestTraverse_Empty(t *testing.T) {
	t.Parallel()

	v, ok := Traverse([]int{}, nonNegative).Right()
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestSequence(t *testing.T) {
	t.Parallel()

	ok := Sequence([]Either[string, int]{Right[string](1), Right[string](2)})
	v, isRight := ok.Right()
	assert.True(t, isRight)
	assert.Equal(t, []int{1, 2}, v)

	bad := Sequence([]Either[string, int]{Right[string](1), Left[string, int]("a"), Left[string, int]("b")})
	l, isLeft := bad.Left()
	assert.True(t, isLeft)
	assert.Equal(t, "a", l)
}

func TestPartition(t *testing.T) {
	t.Parallel()

	lefts, rights := Partition([]Either[string, int]{
		Left[string, int]("a"),
		Right[string](1),
		Left[string, int]("b"),
		Right[string](2),
	})
	assert.Equal(t, []string{"a", "b"}, lefts)
	assert.Equal(t, []int{1, 2}, rights)
}
