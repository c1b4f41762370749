package lrucache

import (
	"github.com/jiaxwu/lrucache/consistenthash"
)

const (
	// 虚拟节点倍数
	defaultReplicas = 50
)

// Sharded 分片缓存：每个分片拥有独立的条目数组、链表和索引，
// 由各自的锁保护，键通过一致性哈希环路由到固定的分片
type Sharded struct {
	shards []*cache
	ring   *consistenthash.Ring
}

// NewSharded 创建一个有shards个分片的缓存，每个分片容量为shardCapacity
func NewSharded(shards, shardCapacity int) *Sharded {
	s := &Sharded{
		shards: make([]*cache, shards),
		ring:   consistenthash.New(shards, defaultReplicas, nil),
	}
	for i := range s.shards {
		s.shards[i] = &cache{
			capacity: shardCapacity,
		}
	}
	return s
}

// Get 从键所在的分片获取value
func (s *Sharded) Get(key string) (ByteView, bool) {
	return s.shards[s.ring.Get(key)].get(key)
}

// Put 把键值对放入键所在的分片，返回是否引入了新键
func (s *Sharded) Put(key string, value ByteView) bool {
	return s.shards[s.ring.Get(key)].put(key, value)
}

// Len 所有分片的条目总数
func (s *Sharded) Len() int {
	n := 0
	for _, shard := range s.shards {
		n += shard.len()
	}
	return n
}
