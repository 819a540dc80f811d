package cart

import (
	"context"
	"testing"

	"go-restaurant-ordering/models"
)

func TestManager_CreateMintsDistinctKeys(t *testing.T) {
	m := NewManager(NewMemoryPersister())

	a := m.Create()
	b := m.Create()

	if a.Key() == b.Key() {
		t.Fatalf("two created carts share the key %q", a.Key())
	}
	if a.ItemCount() != 0 || b.ItemCount() != 0 {
		t.Error("new carts must start empty")
	}
}

func TestManager_GetReturnsSameStore(t *testing.T) {
	m := NewManager(NewMemoryPersister())
	created := m.Create()

	got, err := m.Get(context.Background(), created.Key())
	if err != nil {
		t.Fatal(err)
	}
	if got != created {
		t.Error("Get must return the live store for a known key")
	}
}

func TestManager_UnknownKeyStartsEmpty(t *testing.T) {
	m := NewManager(NewMemoryPersister())

	store, err := m.Get(context.Background(), "never-seen")
	if err != nil {
		t.Fatal(err)
	}
	if store.ItemCount() != 0 || store.IsOpen() {
		t.Error("unknown key must yield a fresh empty cart")
	}
}

func TestManager_PersistenceRoundTrip(t *testing.T) {
	persister := NewMemoryPersister()

	m1 := NewManager(persister)
	store := m1.Create()
	note := "ring the bell"
	store.AddItemWithOptions(menuItem("A", 10), 2, []models.AddOn{{Name: "extra", Price: 1.25}}, &note)
	store.AddItem(menuItem("B", 4), 1)
	store.SetCartOpen(true)

	// A new manager over the same persister simulates a process restart.
	m2 := NewManager(persister)
	restored, err := m2.Get(context.Background(), store.Key())
	if err != nil {
		t.Fatal(err)
	}

	if got, want := restored.Total(), store.Total(); got != want {
		t.Errorf("restored Total() = %v, want %v", got, want)
	}
	if got, want := restored.ItemCount(), store.ItemCount(); got != want {
		t.Errorf("restored ItemCount() = %d, want %d", got, want)
	}
	if !restored.IsOpen() {
		t.Error("restored cart lost the open flag")
	}

	items := restored.Items()
	if len(items) != 2 {
		t.Fatalf("restored %d lines, want 2", len(items))
	}
	if items[0].Item_id != "A" || items[1].Item_id != "B" {
		t.Errorf("restored order = %s,%s, want A,B", items[0].Item_id, items[1].Item_id)
	}
	if len(items[0].Add_ons) != 1 || items[0].Add_ons[0].Price != 1.25 {
		t.Errorf("restored add-ons = %+v", items[0].Add_ons)
	}
	if items[0].Special_instructions == nil || *items[0].Special_instructions != note {
		t.Error("restored cart lost special instructions")
	}
}

func TestMemoryPersister_LoadMissing(t *testing.T) {
	p := NewMemoryPersister()

	_, found, err := p.Load(context.Background(), "missing")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("Load of an unwritten key reported found")
	}
}
