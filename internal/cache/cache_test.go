package cache

import (
	"testing"

	"github.com/google/uuid"
)

func TestCacheSetGet(t *testing.T) {
	c := New()
	owner := uuid.New()

	key := Key("field_mappings.list", owner)
	c.Set(key, owner, []string{"vendor_name"})

	v, ok := c.Get(key)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got := v.([]string); len(got) != 1 || got[0] != "vendor_name" {
		t.Errorf("unexpected cached value: %v", got)
	}

	if _, ok := c.Get(Key("field_mappings.list", uuid.New())); ok {
		t.Error("expected miss for different owner key")
	}
}

func TestCacheInvalidateOwner(t *testing.T) {
	c := New()
	ownerA := uuid.New()
	ownerB := uuid.New()

	c.Set(Key("field_mappings.list", ownerA), ownerA, 1)
	c.Set(Key("export_history.list", ownerA, "page=1"), ownerA, 2)
	c.Set(Key("field_mappings.list", ownerB), ownerB, 3)

	c.InvalidateOwner(ownerA)

	if _, ok := c.Get(Key("field_mappings.list", ownerA)); ok {
		t.Error("owner A listing should be invalidated")
	}
	if _, ok := c.Get(Key("export_history.list", ownerA, "page=1")); ok {
		t.Error("owner A history should be invalidated")
	}
	if _, ok := c.Get(Key("field_mappings.list", ownerB)); !ok {
		t.Error("owner B entry should survive")
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry left, got %d", c.Len())
	}
}
