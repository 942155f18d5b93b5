package repository

import (
	"sync"

	"github.com/google/uuid"
)

// entity is satisfied by pointers to model types embedding model.BaseModel.
type entity[T any] interface {
	*T
	GetID() uuid.UUID
	SetID(uuid.UUID)
}

// cloner is implemented by entities with pointer fields so that values
// handed in and out of the store never share memory with it.
type cloner[T any] interface {
	Clone() T
}

func cloneOf[T any](item T) T {
	if c, ok := any(&item).(cloner[T]); ok {
		return c.Clone()
	}
	return item
}

// uniqueCheck returns an error when candidate conflicts with existing.
type uniqueCheck[T any] func(candidate, existing *T) error

// collection is an insertion-ordered map of entities keyed by id. Readers
// share the lock; writers hold it exclusively.
type collection[T any, PT entity[T]] struct {
	mu     sync.RWMutex
	items  map[uuid.UUID]T
	order  []uuid.UUID
	unique uniqueCheck[T]
	newID  func() uuid.UUID
}

func newCollection[T any, PT entity[T]](unique uniqueCheck[T]) *collection[T, PT] {
	return &collection[T, PT]{
		items:  make(map[uuid.UUID]T),
		unique: unique,
		newID:  uuid.New,
	}
}

func (c *collection[T, PT]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, cloneOf(c.items[id]))
	}
	return out
}

func (c *collection[T, PT]) get(id uuid.UUID) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return nil, false
	}
	item = cloneOf(item)
	return &item, true
}

func (c *collection[T, PT]) find(match func(*T) bool) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		item := c.items[id]
		if match(&item) {
			item = cloneOf(item)
			return &item, true
		}
	}
	return nil, false
}

// insert stores item under a fresh id and writes the id back into item.
func (c *collection[T, PT]) insert(item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkUnique(item, uuid.Nil); err != nil {
		return err
	}

	id := c.freshID()
	PT(item).SetID(id)
	c.items[id] = cloneOf(*item)
	c.order = append(c.order, id)
	return nil
}

// update applies mutate to a copy of the stored entity and commits it only
// if the result still satisfies the uniqueness constraints.
func (c *collection[T, PT]) update(id uuid.UUID, mutate func(*T)) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	mutate(&current)
	// The id is owned by the store, not by the patch.
	PT(&current).SetID(id)

	if err := c.checkUnique(&current, id); err != nil {
		return nil, err
	}

	c.items[id] = cloneOf(current)
	return &current, nil
}

func (c *collection[T, PT]) checkUnique(candidate *T, self uuid.UUID) error {
	if c.unique == nil {
		return nil
	}
	for _, id := range c.order {
		if id == self {
			continue
		}
		existing := c.items[id]
		if err := c.unique(candidate, &existing); err != nil {
			return err
		}
	}
	return nil
}

// freshID must be called with the write lock held.
func (c *collection[T, PT]) freshID() uuid.UUID {
	for {
		id := c.newID()
		if id == uuid.Nil {
			continue
		}
		if _, taken := c.items[id]; !taken {
			return id
		}
	}
}
