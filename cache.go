package lrucache

import (
	"sync"

	"github.com/jiaxwu/lrucache/lru"
)

// 并发安全的缓存操作：整个引擎由一把粗粒度锁保护，
// 引擎自身是单线程的，不做内部同步
type cache struct {
	mu       sync.Mutex
	lru      *lru.Cache[string, ByteView]
	capacity int
}

func (c *cache) put(key string, value ByteView) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru == nil {
		c.lru = lru.New[string, ByteView](c.capacity)
	}
	return c.lru.Put(key, value)
}

func (c *cache) get(key string) (ByteView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru == nil {
		return ByteView{}, false
	}
	return c.lru.Get(key)
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}
