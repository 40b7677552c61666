// Package memory is the in-process LRU tier of the WKT result cache.
package memory

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

type Cache struct {
	lru *lru.Cache[string, string]
}

func New(size int) (*Cache, error) {
	if size <= 0 {
		size = 1024
	}
	l, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

func (c *Cache) Get(_ context.Context, key string) (string, bool) {
	return c.lru.Get(key)
}

func (c *Cache) Set(_ context.Context, key, wkt string) {
	c.lru.Add(key, wkt)
}

func (c *Cache) Len() int { return c.lru.Len() }
