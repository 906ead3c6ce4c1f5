package database

import (
	"maps"
	"slices"
)

// collection is a single in-memory table keyed by an auto-incremented id.
// It is not safe for concurrent use; MemCreatorHubRepository serializes access.
type collection[T any] struct {
	rows   map[int]T
	nextId int
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{
		rows:   make(map[int]T),
		nextId: 1,
	}
}

// insert reserves the next id, builds the row for it and stores it. Ids are
// never handed out twice.
func (c *collection[T]) insert(build func(id int) T) T {
	id := c.nextId
	c.nextId++

	row := build(id)
	c.rows[id] = row
	return row
}

func (c *collection[T]) get(id int) (T, bool) {
	row, ok := c.rows[id]
	return row, ok
}

func (c *collection[T]) put(id int, row T) {
	c.rows[id] = row
}

// ids returns the stored ids in ascending order.
func (c *collection[T]) ids() []int {
	return slices.Sorted(maps.Keys(c.rows))
}

// find returns the first row, in id order, matching pred.
func (c *collection[T]) find(pred func(T) bool) (T, bool) {
	for _, id := range c.ids() {
		if row := c.rows[id]; pred(row) {
			return row, true
		}
	}

	var zero T
	return zero, false
}

// filter returns every row matching pred in id order. The result is never nil.
func (c *collection[T]) filter(pred func(T) bool) []T {
	out := make([]T, 0)
	for _, id := range c.ids() {
		if row := c.rows[id]; pred(row) {
			out = append(out, row)
		}
	}
	return out
}

func (c *collection[T]) values() []T {
	return c.filter(func(T) bool { return true })
}
