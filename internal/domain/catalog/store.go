package catalog

import (
	"sync"
	"time"
)

// Store is the in-memory catalog. It is the single owner of item state;
// every view reads snapshots and every mutation goes through its methods.
type Store struct {
	mu    sync.RWMutex
	items []Item
	now   func() time.Time
}

// NewStore creates a Store seeded with the given items.
func NewStore(seed ...Item) *Store {
	items := make([]Item, 0, len(seed))
	for _, it := range seed {
		items = append(items, it.clone())
	}
	return &Store{items: items, now: time.Now}
}

// List returns a snapshot of all items in insertion order.
func (s *Store) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it.clone())
	}
	return out
}

// Get returns the item with the given id, or ErrNotFound.
func (s *Store) Get(id int64) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			cp := it.clone()
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a new item built from the draft. The id is derived from the
// current time in milliseconds, bumped on collision so ids stay unique.
// The review list starts empty.
func (s *Store) Add(d Draft) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	for s.hasID(id) {
		id++
	}

	it := Item{
		ID:          id,
		Name:        d.Name,
		Price:       d.Price,
		Image:       d.Image,
		Weight:      d.Weight,
		Ingredients: append([]string(nil), d.Ingredients...),
		Reviews:     []Review{},
	}
	s.items = append(s.items, it)
	return it.clone()
}

// Update replaces the item with a matching id. The caller supplies the full
// item, including the reviews to keep.
func (s *Store) Update(it Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == it.ID {
			s.items[i] = it.clone()
			return nil
		}
	}
	return &ItemNotFoundError{ID: it.ID}
}

// Delete removes the item with the given id. Purging cart entries that
// reference the id is the controller's job.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return &ItemNotFoundError{ID: id}
}

// Len returns the number of items in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) hasID(id int64) bool {
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}
