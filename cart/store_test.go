package cart

import (
	"testing"

	"go-restaurant-ordering/models"
)

func menuItem(id string, price float64) models.MenuItem {
	name := "item-" + id
	return models.MenuItem{Item_id: id, Name: &name, Price: &price}
}

func TestStore_AddItem(t *testing.T) {
	tests := []struct {
		name      string
		add       func(s *Store)
		wantLines int
		wantQty   int
		wantTotal float64
	}{
		{
			name: "simple add",
			add: func(s *Store) {
				s.AddItem(menuItem("A", 10), 2)
			},
			wantLines: 1,
			wantQty:   2,
			wantTotal: 20.00,
		},
		{
			name: "merge same item",
			add: func(s *Store) {
				s.AddItem(menuItem("A", 10), 1)
				s.AddItem(menuItem("A", 10), 2)
			},
			wantLines: 1,
			wantQty:   3,
			wantTotal: 30.00,
		},
		{
			name: "distinct items stay distinct",
			add: func(s *Store) {
				s.AddItem(menuItem("A", 10), 1)
				s.AddItem(menuItem("B", 5), 2)
			},
			wantLines: 2,
			wantQty:   3,
			wantTotal: 20.00,
		},
		{
			name: "zero quantity defaults to one",
			add: func(s *Store) {
				s.AddItem(menuItem("A", 10), 0)
			},
			wantLines: 1,
			wantQty:   1,
			wantTotal: 10.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore("test", Snapshot{}, nil)
			tt.add(s)

			if got := len(s.Items()); got != tt.wantLines {
				t.Errorf("lines = %d, want %d", got, tt.wantLines)
			}
			if got := s.ItemCount(); got != tt.wantQty {
				t.Errorf("ItemCount() = %d, want %d", got, tt.wantQty)
			}
			if got := s.Total(); got != tt.wantTotal {
				t.Errorf("Total() = %v, want %v", got, tt.wantTotal)
			}
		})
	}
}

func TestStore_MergeInvariant(t *testing.T) {
	s := NewStore("test", Snapshot{}, nil)
	quantities := []int{1, 4, 2, 3}
	want := 0
	for _, q := range quantities {
		s.AddItem(menuItem("A", 7.5), q)
		want += q
	}

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected exactly one line for repeated id, got %d", len(items))
	}
	if items[0].Quantity != want {
		t.Errorf("quantity = %d, want %d", items[0].Quantity, want)
	}
}

func TestStore_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantGone bool
		wantQty  int
	}{
		{name: "absolute set", quantity: 5, wantQty: 5},
		{name: "zero removes", quantity: 0, wantGone: true},
		{name: "negative removes", quantity: -3, wantGone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore("test", Snapshot{}, nil)
			s.AddItem(menuItem("A", 10), 3)
			s.UpdateQuantity("A", tt.quantity)

			items := s.Items()
			if tt.wantGone {
				if len(items) != 0 {
					t.Fatalf("expected line removed, got %d lines", len(items))
				}
				return
			}
			if len(items) != 1 {
				t.Fatalf("expected one line, got %d", len(items))
			}
			if items[0].Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", items[0].Quantity, tt.wantQty)
			}
		})
	}
}

func TestStore_UpdateQuantityAbsentIsNoop(t *testing.T) {
	s := NewStore("test", Snapshot{}, nil)
	s.AddItem(menuItem("A", 10), 1)

	s.UpdateQuantity("missing", 5)
	s.RemoveItem("missing")

	if got := s.ItemCount(); got != 1 {
		t.Errorf("ItemCount() = %d, want 1", got)
	}
}

func TestStore_RemoveItem(t *testing.T) {
	s := NewStore("test", Snapshot{}, nil)
	s.AddItem(menuItem("A", 10), 1)
	s.AddItem(menuItem("B", 5), 1)

	s.RemoveItem("A")

	items := s.Items()
	if len(items) != 1 || items[0].Item_id != "B" {
		t.Fatalf("expected only line B to remain, got %+v", items)
	}
}

func TestStore_TotalWithAddOns(t *testing.T) {
	s := NewStore("test", Snapshot{}, nil)
	s.AddItemWithOptions(menuItem("A", 10), 2, []models.AddOn{
		{Name: "extra cheese", Price: 1.5},
		{Name: "bacon", Price: 2},
	}, nil)
	s.AddItem(menuItem("B", 5), 1)

	// (10 + 1.5 + 2) x 2 + 5 x 1
	if got, want := s.Total(), 32.00; got != want {
		t.Errorf("Total() = %v, want %v", got, want)
	}
}

func TestStore_ClearCartIdempotent(t *testing.T) {
	s := NewStore("test", Snapshot{}, nil)
	s.AddItem(menuItem("A", 10), 2)
	s.SetCartOpen(true)

	s.ClearCart()
	s.ClearCart()

	if got := len(s.Items()); got != 0 {
		t.Errorf("items after clear = %d, want 0", got)
	}
	if got := s.Total(); got != 0 {
		t.Errorf("Total() after clear = %v, want 0", got)
	}
	if got := s.ItemCount(); got != 0 {
		t.Errorf("ItemCount() after clear = %v, want 0", got)
	}
	if !s.IsOpen() {
		t.Error("ClearCart must leave the open flag untouched")
	}
}

func TestStore_ToggleAndSetOpen(t *testing.T) {
	s := NewStore("test", Snapshot{}, nil)

	s.ToggleCart()
	if !s.IsOpen() {
		t.Error("ToggleCart from closed should open")
	}
	s.ToggleCart()
	if s.IsOpen() {
		t.Error("ToggleCart from open should close")
	}
	s.SetCartOpen(true)
	if !s.IsOpen() {
		t.Error("SetCartOpen(true) should open")
	}
}

func TestStore_InsertionOrderStable(t *testing.T) {
	s := NewStore("test", Snapshot{}, nil)
	s.AddItem(menuItem("C", 1), 1)
	s.AddItem(menuItem("A", 1), 1)
	s.AddItem(menuItem("B", 1), 1)
	s.AddItem(menuItem("A", 1), 1) // merge must not reorder

	var got []string
	for _, line := range s.Items() {
		got = append(got, line.Item_id)
	}
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestStore_ChangeHookFiresPerMutation(t *testing.T) {
	var calls int
	var last Snapshot
	s := NewStore("test", Snapshot{}, func(snap Snapshot) {
		calls++
		last = snap
	})

	s.AddItem(menuItem("A", 10), 1) // 1
	s.UpdateQuantity("A", 4)        // 2
	s.ToggleCart()                  // 3
	s.RemoveItem("A")               // 4
	s.RemoveItem("A")               // absent: no mutation, no hook

	if calls != 4 {
		t.Errorf("hook fired %d times, want 4", calls)
	}
	if len(last.Items) != 0 || !last.Is_open {
		t.Errorf("last snapshot = %+v, want empty open cart", last)
	}
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	s := NewStore("test", Snapshot{}, nil)
	s.AddItemWithOptions(menuItem("A", 10), 1, []models.AddOn{{Name: "x", Price: 1}}, nil)

	snap := s.Snapshot()
	snap.Items[0].Quantity = 99
	snap.Items[0].Add_ons[0].Price = 50

	if got := s.ItemCount(); got != 1 {
		t.Errorf("mutating a snapshot leaked into the store: ItemCount() = %d", got)
	}
	if got := s.Total(); got != 11.00 {
		t.Errorf("mutating a snapshot leaked into the store: Total() = %v", got)
	}
}

func TestStore_RehydrateFromSnapshot(t *testing.T) {
	s := NewStore("test", Snapshot{}, nil)
	note := "no onions"
	s.AddItemWithOptions(menuItem("A", 12.5), 2, []models.AddOn{{Name: "extra", Price: 0.75}}, &note)
	s.SetCartOpen(true)

	restored := NewStore("test", s.Snapshot(), nil)

	if got, want := restored.Total(), s.Total(); got != want {
		t.Errorf("restored Total() = %v, want %v", got, want)
	}
	if got, want := restored.ItemCount(), s.ItemCount(); got != want {
		t.Errorf("restored ItemCount() = %d, want %d", got, want)
	}
	if restored.IsOpen() != s.IsOpen() {
		t.Error("restored open flag differs")
	}
	items := restored.Items()
	if len(items) != 1 || items[0].Special_instructions == nil || *items[0].Special_instructions != note {
		t.Errorf("restored items = %+v, want special instructions preserved", items)
	}
}
