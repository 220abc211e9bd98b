package chain

import (
	"strconv"
	"testing"

	"github.com/ib-77/either3/pkg/either"
)

func TestStart_Result(t *testing.T) {
	t.Parallel()
	base := either.Right[string](10)
	out := Start(base).Result()
	if out != base {
		t.Fatalf("expected %v, got %v", base, out)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue[string](7).Result()
	if v, ok := out.Right(); !ok || v != 7 {
		t.Fatalf("expected Right(7), got %v", out)
	}
}

func TestThen_ShortCircuitOnLeft(t *testing.T) {
	t.Parallel()
	called := false
	c := Then(Start(either.Left[string, int]("boom")), func(v int) either.Either[string, string] {
		called = true
		return either.Right[string]("ok")
	})
	out := c.Result()
	if l, ok := out.Left(); !ok || l != "boom" {
		t.Fatalf("expected Left(boom), got %v", out)
	}
	if called {
		t.Fatalf("Then step must not be called on a Left")
	}
}

func TestThen_ChangesType(t *testing.T) {
	t.Parallel()
	c := Then(FromValue[string](3), func(v int) either.Either[string, string] {
		return either.Right[string]("val_" + strconv.Itoa(v))
	})
	if v, ok := c.Result().Right(); !ok || v != "val_3" {
		t.Fatalf("expected Right(val_3), got %v", c.Result())
	}
}

func TestMap_SuccessAndLeft(t *testing.T) {
	t.Parallel()

	c := Map(FromValue[string](5), func(v int) string { return "n:" + strconv.Itoa(v) })
	if v, ok := c.Result().Right(); !ok || v != "n:5" {
		t.Fatalf("expected Right(n:5), got %v", c.Result())
	}

	c2 := Map(Start(either.Left[string, int]("oops")), func(v int) string { return "ignored" })
	if l, ok := c2.Result().Left(); !ok || l != "oops" {
		t.Fatalf("expected Left(oops), got %v", c2.Result())
	}
}

func TestEnsure_SideEffectOnlyOnRight(t *testing.T) {
	t.Parallel()

	called := false
	out := FromValue[string](11).Ensure(func(v int) { called = true }).Result()
	if v, ok := out.Right(); !ok || v != 11 {
		t.Fatalf("expected Right(11), got %v", out)
	}
	if !called {
		t.Fatalf("expected Ensure to run on Right")
	}

	called = false
	Start(either.Left[string, int]("x")).Ensure(func(v int) { called = true })
	if called {
		t.Fatalf("Ensure must not run on Left")
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()

	out := Start(either.Left[string, int]("abc")).
		Recover(func(l string) either.Either[string, int] { return either.Right[string](len(l)) }).
		Result()
	if v, ok := out.Right(); !ok || v != 3 {
		t.Fatalf("expected Right(3), got %v", out)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	onLeft := func(string) string { return "fail" }
	onRight := func(int) string { return "ok" }

	if s := Finally(FromValue[string](2), onLeft, onRight); s != "ok" {
		t.Fatalf("expected ok, got %q", s)
	}
	if s := Finally(Start(either.Left[string, int]("e")), onLeft, onRight); s != "fail" {
		t.Fatalf("expected fail, got %q", s)
	}
}
