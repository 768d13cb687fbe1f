// Copyright 2018 The go-klaytn Authors
// This file is part of the go-klaytn library.
//
// The go-klaytn library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-klaytn library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-klaytn library. If not, see <http://www.gnu.org/licenses/>.

// Package cache is klaytn's common.Cache (LRUConfig/newCache) trimmed to the
// single LRU case: BBA has no sharding key and no need for the ARC variant,
// since the only thing it ever bounds is the future-epoch message queue
// (consensus/bba/queue.go). The CacheScale knob is kept, for the same
// "preset size * CacheScale / 100" reason klaytn keeps it: letting an
// operator scale every cache in the process up or down with one flag
// without touching call sites.
package cache

import (
	lru "github.com/hashicorp/golang-lru"
)

// CacheScale lets call sites be written against a nominal size while an
// operator tunes actual memory use process-wide; size = nominal * CacheScale / 100.
var CacheScale = 100

// Config describes the nominal size of an LRU cache.
type Config struct {
	Size int
}

// Cache is a bounded key-value store evicting least-recently-used entries.
type Cache struct {
	lru *lru.Cache
}

// New builds a Cache sized by cfg.Size, scaled by CacheScale.
func New(cfg Config) (*Cache, error) {
	size := cfg.Size * CacheScale / 100
	if size < 1 {
		size = 1
	}
	l, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Add inserts or updates key, reporting whether an entry was evicted.
func (c *Cache) Add(key, value interface{}) (evicted bool) {
	return c.lru.Add(key, value)
}

// Get retrieves key's value, refreshing its recency.
func (c *Cache) Get(key interface{}) (value interface{}, ok bool) {
	return c.lru.Get(key)
}

// Peek retrieves key's value without refreshing its recency.
func (c *Cache) Peek(key interface{}) (value interface{}, ok bool) {
	return c.lru.Peek(key)
}

// Contains reports whether key has an entry.
func (c *Cache) Contains(key interface{}) bool {
	return c.lru.Contains(key)
}

// Remove deletes key's entry, if any.
func (c *Cache) Remove(key interface{}) {
	c.lru.Remove(key)
}

// Keys returns every key, least-recently-used first.
func (c *Cache) Keys() []interface{} {
	return c.lru.Keys()
}

// Purge removes every entry.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}
