package cache

import "testing"

func TestPutEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := NewLRUCache(2)
	c.Put("a", "1")
	c.Put("b", "2")

	// Touch "a" so "b" becomes the eviction candidate.
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected a to be cached")
	}

	c.Put("c", "3")

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if v, ok := c.Get("a"); !ok || v != "1" {
		t.Errorf("a: got (%q, %v), want (1, true)", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("len: got %d, want 2", c.Len())
	}
}

func TestPutUpdatesExistingEntryWithoutGrowing(t *testing.T) {
	t.Parallel()

	c := NewLRUCache(2)
	c.Put("a", "1")
	c.Put("a", "updated")

	if c.Len() != 1 {
		t.Fatalf("len: got %d, want 1", c.Len())
	}
	if v, _ := c.Get("a"); v != "updated" {
		t.Errorf("a: got %q, want %q", v, "updated")
	}
}

func TestGetMissingKey(t *testing.T) {
	t.Parallel()

	c := NewLRUCache(1)
	if v, ok := c.Get("missing"); ok || v != "" {
		t.Errorf("got (%q, %v), want empty miss", v, ok)
	}
}
