package lru

import (
	"fmt"
)

// 实现说明：
// 条目保存在一个以下标作为稳定句柄的数组里，prev/next存句柄而不是指针，
// 数组扩容时句柄不会失效。0号条目是哨兵，和其他条目构成循环双向链表，
// 链表操作不需要判空。
// 方向约定（全文件一致）：sentinel.prev是最近使用端（MRU），
// sentinel.next是最久未使用端（LRU）。

// Cache LRU缓存，容量固定，满了之后新键复用最久未使用条目的槽位
// 非并发安全，并发访问需要调用方加一把粗粒度锁或者按键分片
type Cache[K comparable, V any] struct {
	// 最大条目数，构造后不变
	capacity int
	// 条目数组，0号是哨兵
	entries []entry[K, V]
	// 键到句柄的索引
	index KeyIndex[K]
	// 可选，在条目被淘汰复用的时候执行
	onEvicted func(key K, value V)
}

type entry[K comparable, V any] struct {
	next  int
	prev  int
	key   K
	value V
}

// 构造时一次性预留的条目数上限
const maxInitialReserve = 1 << 12

// Option 配置Cache
type Option[K comparable, V any] func(*Cache[K, V])

// WithKeyIndex 指定键索引的实现，默认是MapIndex
func WithKeyIndex[K comparable, V any](index KeyIndex[K]) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.index = index
	}
}

// WithOnEvicted 指定条目被淘汰时的回调
func WithOnEvicted[K comparable, V any](onEvicted func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvicted = onEvicted
	}
}

// New 创建一个容量为capacity的Cache
// capacity为0合法，等价于所有键放入后立刻被淘汰
// capacity为负数或者索引装不下capacity个键属于配置错误
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	if capacity < 0 {
		panic("negative capacity")
	}
	// 超大容量时不一次性预留，句柄是下标，数组增长不会让句柄失效
	reserve := capacity
	if reserve > maxInitialReserve {
		reserve = maxInitialReserve
	}
	c := &Cache[K, V]{
		capacity: capacity,
		entries:  make([]entry[K, V], 1, reserve+1),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.index == nil {
		c.index = NewMapIndex[K](reserve)
	}
	if checker, ok := c.index.(interface{ CanHold(n int) bool }); ok && !checker.CanHold(capacity) {
		panic(fmt.Sprintf("key index cannot hold %d entries", capacity))
	}
	return c
}

// Get 获取缓存的值，命中的条目提升为最近使用
func (c *Cache[K, V]) Get(key K) (V, bool) {
	h, ok := c.index.Find(key)
	if !ok {
		var zero V
		return zero, false
	}
	c.pushToMRUEnd(h)
	return c.entries[h].value, true
}

// Put 添加数据到缓存，返回是否引入了新键
// 键已经存在时只原地覆盖值并提升为最近使用，结构不变
func (c *Cache[K, V]) Put(key K, value V) bool {
	if h, ok := c.index.Find(key); ok {
		c.entries[h].value = value
		c.pushToMRUEnd(h)
		return false
	}
	if c.capacity == 0 {
		if c.onEvicted != nil {
			c.onEvicted(key, value)
		}
		return true
	}
	if c.Len() < c.capacity {
		// 新条目自环，pushToMRUEnd里的摘链是无副作用的
		h := len(c.entries)
		c.entries = append(c.entries, entry[K, V]{next: h, prev: h, key: key, value: value})
		c.index.Insert(key, h)
		c.pushToMRUEnd(h)
		return true
	}
	// 复用最久未使用条目的槽位：旧键从索引删除，原地覆盖键值，
	// 新键指向同一个句柄，再提升为最近使用
	h := c.lruEntry()
	e := &c.entries[h]
	c.index.Erase(e.key)
	if c.onEvicted != nil {
		c.onEvicted(e.key, e.value)
	}
	e.key = key
	e.value = value
	c.index.Insert(key, h)
	c.pushToMRUEnd(h)
	return true
}

// Len 返回当前条目数量
func (c *Cache[K, V]) Len() int {
	return len(c.entries) - 1
}

// Cap 返回缓存容量
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Description 返回缓存后端的描述，只用于标识
func (c *Cache[K, V]) Description() string {
	return fmt.Sprintf("LRUCache(%s + custom list over slice)", c.index.Description())
}

// unlink 把条目从链表当前位置摘下，自环条目摘链无副作用
func (c *Cache[K, V]) unlink(h int) {
	e := c.entries[h]
	c.entries[e.prev].next = e.next
	c.entries[e.next].prev = e.prev
}

// pushToMRUEnd 把条目摘下并重新接到哨兵之前，使它成为最近使用的条目
func (c *Cache[K, V]) pushToMRUEnd(h int) {
	c.unlink(h)
	e := &c.entries[h]
	e.prev = c.entries[0].prev
	e.next = 0
	c.entries[e.prev].next = h
	c.entries[0].prev = h
}

// lruEntry 返回最久未使用条目的句柄，缓存为空时是哨兵自己
func (c *Cache[K, V]) lruEntry() int {
	return c.entries[0].next
}
