package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an item id does not resolve.
var ErrNotFound = errors.New("inventory item not found")

// Repository resolves inventory items for rendering.
type Repository interface {
	Get(id uuid.UUID) (Item, error)
	List() []Item
}

// MemoryRepo is an in-memory Repository seeded from a JSON file or code.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]Item
	order []uuid.UUID
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: map[uuid.UUID]Item{}}
}

// LoadFile merges items from a JSON seed file (best-effort format: an array
// of Item objects).
func (r *MemoryRepo) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, item := range items {
		r.Put(item)
	}
	return nil
}

func (r *MemoryRepo) Put(item Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, seen := r.items[item.ID]; !seen {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = item
}

func (r *MemoryRepo) Get(id uuid.UUID) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return item, nil
}

// List returns items in insertion order.
func (r *MemoryRepo) List() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}
