package containers

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMapInsertAndGet(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := NewMap[string, int]()
	if !m.Insert("one", 1) {
		t.Errorf("first insert must succeed")
	}
	if m.Insert("one", 11) {
		t.Errorf("insert of present key must report false")
	}
	if v, ok := m.Get("one"); !ok || v != 1 {
		t.Errorf("Get(one) = (%d,%v), want (1,true); rejected insert must not assign", v, ok)
	}
	if _, ok := m.Get("two"); ok {
		t.Errorf("Get of absent key must report false")
	}
	if err := m.Check(); err != nil {
		t.Errorf("invariants violated: %v", err)
	}
}

func TestMapInsertOrAssign(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := NewMap[int, string]()
	if !m.InsertOrAssign(10, "a") {
		t.Errorf("first InsertOrAssign must report inserted=true")
	}
	if m.InsertOrAssign(10, "b") {
		t.Errorf("second InsertOrAssign must report inserted=false")
	}
	if v, _ := m.Get(10); v != "b" {
		t.Errorf("lookup(10) = %q, want overwritten value \"b\"", v)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestMapEntryInsertsDefault(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := NewMap[string, int]()
	// absent key: a zero-valued entry appears
	counter := m.Entry("hits")
	if *counter != 0 || m.Len() != 1 {
		t.Fatalf("Entry on absent key must insert a zero value")
	}
	*counter++
	*counter++
	// present key: the same live value is returned
	if again := m.Entry("hits"); *again != 2 {
		t.Errorf("Entry returned %d, want 2", *again)
	}
	if v, _ := m.Get("hits"); v != 2 {
		t.Errorf("Get(hits) = %d, want 2", v)
	}
}

func TestMapAtReportsMissingKey(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := NewMapOf(MapEntry[string, int]{Key: "a", Value: 1})
	if v, err := m.At("a"); err != nil || v != 1 {
		t.Errorf("At(a) = (%d,%v), want (1,nil)", v, err)
	}
	if _, err := m.At("b"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("At(b): got %v, want ErrKeyNotFound", err)
	}
	if m.Len() != 1 {
		t.Errorf("At must never insert")
	}
}

func TestMapTraversalOrder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := NewMap[int, string]()
	for _, k := range []int{5, 3, 8, 1} {
		m.Insert(k, "")
	}
	var keys []int
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	if !slices.Equal(keys, []int{1, 3, 5, 8}) {
		t.Errorf("Keys() = %v", keys)
	}
	count := 0
	for range m.All() {
		count++
	}
	if count != m.Len() {
		t.Errorf("All() yielded %d pairs, Len() = %d", count, m.Len())
	}
}

func TestMapRemoveAndClear(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := NewMapOf(
		MapEntry[int, string]{Key: 1, Value: "a"},
		MapEntry[int, string]{Key: 2, Value: "b"},
	)
	if !m.Remove(1) || m.Remove(1) {
		t.Errorf("Remove must report true once, then false")
	}
	m.Clear()
	if !m.IsEmpty() {
		t.Errorf("map not empty after Clear")
	}
	m.Insert(3, "c") // stays usable
	if v, _ := m.Get(3); v != "c" {
		t.Errorf("map unusable after Clear")
	}
}

func TestMapCloneIndependence(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := NewMapOf(MapEntry[int, string]{Key: 1, Value: "a"})
	clone := m.Clone()
	clone.InsertOrAssign(1, "changed")
	clone.Insert(2, "b")
	if v, _ := m.Get(1); v != "a" {
		t.Errorf("original value changed by mutating clone: %q", v)
	}
	if m.Len() != 1 {
		t.Errorf("original size changed by mutating clone")
	}
}

func TestMapMerge(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	dst := NewMapOf(MapEntry[int, string]{Key: 1, Value: "dst"})
	src := NewMapOf(
		MapEntry[int, string]{Key: 1, Value: "src"},
		MapEntry[int, string]{Key: 2, Value: "src"},
	)
	moved := dst.Merge(src)
	if moved != 1 {
		t.Errorf("moved = %d, want 1", moved)
	}
	if v, _ := dst.Get(1); v != "dst" {
		t.Errorf("blocked entry must not overwrite destination, got %q", v)
	}
	if v, ok := src.Get(1); !ok || v != "src" {
		t.Errorf("blocked entry must remain in source, got (%q,%v)", v, ok)
	}
	if _, ok := src.Get(2); ok {
		t.Errorf("moved entry must leave the source")
	}
}

func TestMapFuncCustomOrdering(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	type point struct{ x, y int }
	m := NewMapFunc[point, string](func(a, b point) int {
		if a.x != b.x {
			return a.x - b.x
		}
		return a.y - b.y
	})
	m.Insert(point{2, 1}, "late")
	m.Insert(point{1, 9}, "early")
	var order []string
	for _, v := range m.All() {
		order = append(order, v)
	}
	if !slices.Equal(order, []string{"early", "late"}) {
		t.Errorf("custom ordering not honored: %v", order)
	}
}
