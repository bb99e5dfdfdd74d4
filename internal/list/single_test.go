package list_test

import (
	"slices"
	"testing"

	"deedles.dev/jumpq/internal/list"
)

func TestAppendPop(t *testing.T) {
	var ls list.Single[string]
	ls.Append("a", "b", "c")
	if ls.Len() != 3 {
		t.Fatal(ls.Len())
	}
	if n := ls.Head(); n == nil || n.Val != "a" {
		t.Fatalf("unexpected head: %v", n)
	}

	for _, want := range []string{"a", "b", "c"} {
		n := ls.Pop()
		if n == nil || n.Val != want {
			t.Fatalf("expected %q but got %v", want, n)
		}
	}
	if ls.Pop() != nil || ls.Head() != nil || ls.Len() != 0 {
		t.Fatal("list not empty after draining")
	}
}

func TestPrepend(t *testing.T) {
	var ls list.Single[int]
	ls.Prepend(2)
	ls.Append(3)
	ls.Prepend(1)
	if got := ls.Slice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatal(got)
	}
}

func TestRemoveAll(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	var ls list.Single[int]
	ls.Append(7, 1, 7, 7, 2, 7)
	if !ls.RemoveAll(7, eq) {
		t.Fatal("expected a removal")
	}
	if got := ls.Slice(); !slices.Equal(got, []int{1, 2}) {
		t.Fatal(got)
	}
	if ls.Len() != 2 {
		t.Fatal(ls.Len())
	}
	if ls.RemoveAll(9, eq) {
		t.Fatal("unexpected removal")
	}

	// Removing the tail must repair the tail reference so that
	// appends keep working.
	ls.RemoveAll(2, eq)
	ls.Append(3)
	if got := ls.Slice(); !slices.Equal(got, []int{1, 3}) {
		t.Fatal(got)
	}

	ls.RemoveAll(1, eq)
	ls.RemoveAll(3, eq)
	if ls.Len() != 0 || ls.Head() != nil {
		t.Fatal("list not empty after removing everything")
	}
	ls.Append(4)
	if got := ls.Slice(); !slices.Equal(got, []int{4}) {
		t.Fatal(got)
	}
}

func TestAll(t *testing.T) {
	var ls list.Single[int]
	ls.Append(1, 2, 3)
	if got := slices.Collect(ls.All()); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatal(got)
	}
}
