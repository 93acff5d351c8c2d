package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a fixed-capacity LRU sitting in front of a store's
// lookup-by-id. Services refresh an entry on create/update and drop it on
// delete, so the cache never serves a record the store no longer holds.
type Cache[T any] struct {
	size int
	lru  *lru.Cache[string, T]
}

func New[T any](size int) (*Cache[T], error) {
	c, err := lru.New[string, T](size)
	if err != nil {
		return nil, err
	}
	return &Cache[T]{
		size: size,
		lru:  c,
	}, nil
}

func (c *Cache[T]) Get(id string) (T, bool) {
	return c.lru.Get(id)
}

func (c *Cache[T]) Set(id string, item T) {
	c.lru.Add(id, item)
}

func (c *Cache[T]) Remove(id string) {
	c.lru.Remove(id)
}
