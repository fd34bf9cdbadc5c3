package avl

import (
	"errors"
	"slices"
	"testing"
)

func TestIteratorWalksAscending(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(k, "", false)
	}
	var got []int
	for it := tree.Min(); !it.AtEnd(); {
		k, err := it.Key()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, k)
		it, err = it.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if want := []int{1, 3, 4, 5, 7, 8, 9}; !slices.Equal(got, want) {
		t.Fatalf("forward walk = %v, want %v", got, want)
	}
}

func TestIteratorWalksDescending(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range []int{2, 4, 6, 8} {
		tree.Insert(k, "", false)
	}
	var got []int
	for it := tree.Max(); !it.AtEnd(); {
		k, err := it.Key()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, k)
		it, err = it.Prev()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if want := []int{8, 6, 4, 2}; !slices.Equal(got, want) {
		t.Fatalf("backward walk = %v, want %v", got, want)
	}
}

func TestEndIteratorDereference(t *testing.T) {
	tree := newIntTree(t)
	tree.Insert(1, "", false)
	end := tree.End()
	if _, err := end.Key(); !errors.Is(err, ErrIteratorAtEnd) {
		t.Fatalf("Key at end: got %v, want ErrIteratorAtEnd", err)
	}
	if _, err := end.Value(); !errors.Is(err, ErrIteratorAtEnd) {
		t.Fatalf("Value at end: got %v, want ErrIteratorAtEnd", err)
	}
	if _, err := end.Next(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("Next at end: got %v, want ErrInvalidIterator", err)
	}
}

func TestPrevFromEndReachesMaximum(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range []int{1, 2, 3} {
		tree.Insert(k, "", false)
	}
	it, err := tree.End().Prev()
	if err != nil {
		t.Fatalf("Prev from end failed: %v", err)
	}
	if k, _ := it.Key(); k != 3 {
		t.Fatalf("Prev from end denotes %d, want 3", k)
	}
	min := tree.Min()
	before, err := min.Prev()
	if err != nil {
		t.Fatalf("Prev from minimum failed: %v", err)
	}
	if !before.AtEnd() {
		t.Fatalf("Prev from minimum must be the end iterator")
	}
}

func TestIteratorEquality(t *testing.T) {
	tree := newIntTree(t)
	tree.Insert(1, "", false)
	tree.Insert(2, "", false)
	a, _ := tree.Find(1)
	b := tree.Min()
	if a != b {
		t.Fatalf("iterators on the same node must compare equal")
	}
	next, _ := a.Next()
	if next == a {
		t.Fatalf("iterators on different nodes must compare unequal")
	}
	if tree.End() != tree.End() {
		t.Fatalf("end iterators of the same tree must compare equal")
	}
}

func TestStaleIteratorAfterErase(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k, "", false)
	}
	stale, _ := tree.Find(1) // leaf, physically removed by Erase
	if err := tree.Erase(stale); err != nil {
		t.Fatalf("erase failed: %v", err)
	}
	if _, err := stale.Key(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("Key on stale iterator: got %v, want ErrInvalidIterator", err)
	}
	if _, err := stale.Next(); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("Next on stale iterator: got %v, want ErrInvalidIterator", err)
	}
	if err := tree.Erase(stale); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("double erase: got %v, want ErrInvalidIterator", err)
	}
}

func TestEraseRejectsForeignIterator(t *testing.T) {
	a := newIntTree(t)
	b := newIntTree(t)
	a.Insert(1, "", false)
	b.Insert(1, "", false)
	it, _ := a.Find(1)
	if err := b.Erase(it); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("erase with foreign iterator: got %v, want ErrInvalidIterator", err)
	}
	if err := b.Erase(b.End()); !errors.Is(err, ErrInvalidIterator) {
		t.Fatalf("erase with end iterator: got %v, want ErrInvalidIterator", err)
	}
}

func TestIteratorSurvivesRebalancing(t *testing.T) {
	tree := newIntTree(t)
	tree.Insert(10, "", false)
	it, _ := tree.Find(10)
	// ascending inserts force rotations all over the path above node 10
	for k := 11; k <= 40; k++ {
		tree.Insert(k, "", false)
	}
	mustCheck(t, tree)
	if k, err := it.Key(); err != nil || k != 10 {
		t.Fatalf("iterator broken by rebalancing: key=%d err=%v", k, err)
	}
	next, err := it.Next()
	if err != nil {
		t.Fatalf("Next after rebalancing failed: %v", err)
	}
	if k, _ := next.Key(); k != 11 {
		t.Fatalf("successor after rebalancing = %d, want 11", k)
	}
}

func TestRefMutatesLiveValue(t *testing.T) {
	tree := newIntTree(t)
	it, _ := tree.Insert(1, "old", false)
	ref, err := it.Ref()
	if err != nil {
		t.Fatalf("Ref failed: %v", err)
	}
	*ref = "new"
	if v, _ := it.Value(); v != "new" {
		t.Fatalf("value not updated through Ref, got %q", v)
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := newIntTree(t)
	for k := 0; k < 10; k++ {
		tree.Insert(k, "", false)
	}
	seen := 0
	for range tree.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Fatalf("range did not stop early, saw %d", seen)
	}
}
