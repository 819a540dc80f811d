// Package cart holds the customer's in-progress selection: a mutex-guarded
// state container with merge-on-add line items, derived totals, and a
// change hook that a persistence adapter subscribes to.
package cart

import (
	"sync"

	"go-restaurant-ordering/models"
)

// Snapshot is a point-in-time copy of the cart state. It is what the change
// hook receives and what a Persister stores and restores.
type Snapshot struct {
	Items   []models.CartItem `json:"items"`
	Is_open bool              `json:"is_open"`
}

// ChangeFunc is invoked after every mutation with a snapshot of the new
// state. The snapshot is a deep copy, safe to retain past the call.
type ChangeFunc func(Snapshot)

// Store is the single source of truth for one cart. All mutations are
// serialized by an internal mutex, so derived values always reflect the
// most recently applied mutation.
type Store struct {
	mu       sync.Mutex
	key      string
	items    []models.CartItem
	isOpen   bool
	onChange ChangeFunc
}

// NewStore builds a store seeded from snap. onChange may be nil.
func NewStore(key string, snap Snapshot, onChange ChangeFunc) *Store {
	return &Store{
		key:      key,
		items:    copyItems(snap.Items),
		isOpen:   snap.Is_open,
		onChange: onChange,
	}
}

// Key returns the cart key the store was created under.
func (s *Store) Key() string {
	return s.key
}

// AddItem adds quantity units of a menu item to the cart. If a line for the
// same item id already exists its quantity is incremented; a new line is
// appended otherwise. Quantities below 1 are treated as 1.
func (s *Store) AddItem(item models.MenuItem, quantity int) {
	s.AddItemWithOptions(item, quantity, nil, nil)
}

// AddItemWithOptions is AddItem plus optional add-ons and special
// instructions for a newly created line. When the line already exists only
// the quantity is merged; the existing line's options are kept.
func (s *Store) AddItemWithOptions(item models.MenuItem, quantity int, addOns []models.AddOn, instructions *string) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Item_id == item.Item_id {
			s.items[i].Quantity += quantity
			s.notify()
			return
		}
	}

	line := models.CartItem{
		Item_id:              item.Item_id,
		Quantity:             quantity,
		Add_ons:              append([]models.AddOn(nil), addOns...),
		Special_instructions: instructions,
	}
	if item.Name != nil {
		line.Name = *item.Name
	}
	if item.Price != nil {
		line.Price = *item.Price
	}
	if item.Image_url != nil {
		line.Image_url = *item.Image_url
	}
	s.items = append(s.items, line)
	s.notify()
}

// RemoveItem deletes the line matching id. Removing an absent id is a no-op.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

// UpdateQuantity sets the quantity of the line matching id to exactly
// quantity. A quantity of zero or less removes the line. Updating an absent
// id is a no-op.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(id)
		return
	}
	for i := range s.items {
		if s.items[i].Item_id == id {
			s.items[i].Quantity = quantity
			s.notify()
			return
		}
	}
}

// ClearCart empties the line items. The open flag is untouched.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.notify()
}

// ToggleCart flips the drawer open flag.
func (s *Store) ToggleCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
	s.notify()
}

// SetCartOpen sets the drawer open flag.
func (s *Store) SetCartOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = open
	s.notify()
}

// Total returns the sum over all lines of (unit price + add-on prices) x
// quantity. It is recomputed on every call.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum float64
	for _, line := range s.items {
		unit := line.Price
		for _, a := range line.Add_ons {
			unit += a.Price
		}
		sum += unit * float64(line.Quantity)
	}
	return sum
}

// ItemCount returns the sum of quantities across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, line := range s.items {
		count += line.Quantity
	}
	return count
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.items)
}

// IsOpen reports the drawer open flag.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Snapshot returns a copy of the full cart state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) removeLocked(id string) {
	for i := range s.items {
		if s.items[i].Item_id == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.notify()
			return
		}
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{Items: copyItems(s.items), Is_open: s.isOpen}
}

// notify runs with the mutex held, so hooks observe mutations in call order.
func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange(s.snapshotLocked())
	}
}

func copyItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	for i, line := range items {
		line.Add_ons = append([]models.AddOn(nil), line.Add_ons...)
		out[i] = line
	}
	return out
}
