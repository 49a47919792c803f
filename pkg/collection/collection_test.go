package collection_test

import (
	"reflect"
	"testing"

	"github.com/foodipy/foodipy/pkg/collection"
)

func TestMap(t *testing.T) {
	got := collection.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	if !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Fatalf("got %v", got)
	}
}

func TestFilterAndReject(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	if got := collection.Filter([]int{1, 2, 3, 4}, even); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Fatalf("Filter got %v", got)
	}
	if got := collection.Reject([]int{1, 2, 3, 4}, even); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("Reject got %v", got)
	}
}

func TestFirst(t *testing.T) {
	v, ok := collection.First([]string{"a", "bb", "ccc"}, func(s string) bool { return len(s) == 2 })
	if !ok || v != "bb" {
		t.Fatalf("got %q ok=%v", v, ok)
	}

	_, ok = collection.First([]string{"a"}, func(s string) bool { return s == "z" })
	if ok {
		t.Fatal("expected no match")
	}
}

func TestIndexOf(t *testing.T) {
	if got := collection.IndexOf([]int{5, 6, 7}, func(n int) bool { return n == 6 }); got != 1 {
		t.Fatalf("got %d", got)
	}
	if got := collection.IndexOf([]int{5, 6, 7}, func(n int) bool { return n == 9 }); got != -1 {
		t.Fatalf("got %d", got)
	}
}

func TestContains(t *testing.T) {
	if !collection.Contains([]int{1, 2}, func(n int) bool { return n == 2 }) {
		t.Fatal("expected true")
	}
	if collection.Contains(nil, func(n int) bool { return true }) {
		t.Fatal("expected false for empty slice")
	}
}

func TestReduce(t *testing.T) {
	sum := collection.Reduce([]int{1, 2, 3}, 0, func(acc, n int) int { return acc + n })
	if sum != 6 {
		t.Fatalf("got %d", sum)
	}

	joined := collection.Reduce([]string{"a", "b"}, "", func(acc, s string) string { return acc + s })
	if joined != "ab" {
		t.Fatalf("got %q", joined)
	}
}
