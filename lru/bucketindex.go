package lru

import (
	"hash/crc32"
)

// BucketIndex 桶数量固定的链式散列KeyIndex
// 桶数量取2的幂，用掩码定位桶，桶内是键句柄对的切片
// 桶数量构造后不变，所以装载因子超过1之前必须检查CanHold
type BucketIndex[K comparable] struct {
	buckets [][]bucketEntry[K]
	mask    uint32
	hash    func(K) uint32
	size    int
}

type bucketEntry[K comparable] struct {
	key    K
	handle int
}

// NewBucketIndex 创建一个BucketIndex，bucketCount向上取整到2的幂
func NewBucketIndex[K comparable](bucketCount int, hash func(K) uint32) *BucketIndex[K] {
	if bucketCount <= 0 {
		panic("bucket count must be greater than 0")
	}
	if hash == nil {
		panic("nil hash")
	}
	n := 1
	for n < bucketCount {
		n <<= 1
	}
	return &BucketIndex[K]{
		buckets: make([][]bucketEntry[K], n),
		mask:    uint32(n - 1),
		hash:    hash,
	}
}

// NewStringBucketIndex 创建一个以crc32散列字符串键的BucketIndex
func NewStringBucketIndex(bucketCount int) *BucketIndex[string] {
	return NewBucketIndex(bucketCount, func(key string) uint32 {
		return crc32.ChecksumIEEE([]byte(key))
	})
}

// Find 查找键对应的句柄
func (i *BucketIndex[K]) Find(key K) (int, bool) {
	for _, e := range i.buckets[i.hash(key)&i.mask] {
		if e.key == key {
			return e.handle, true
		}
	}
	return 0, false
}

// Insert 键不存在时才插入
func (i *BucketIndex[K]) Insert(key K, handle int) (int, bool) {
	slot := i.hash(key) & i.mask
	for _, e := range i.buckets[slot] {
		if e.key == key {
			return e.handle, false
		}
	}
	i.buckets[slot] = append(i.buckets[slot], bucketEntry[K]{key: key, handle: handle})
	i.size++
	return handle, true
}

// Erase 删除键的映射，桶内用尾部交换删除
func (i *BucketIndex[K]) Erase(key K) {
	slot := i.hash(key) & i.mask
	b := i.buckets[slot]
	for n, e := range b {
		if e.key == key {
			b[n] = b[len(b)-1]
			i.buckets[slot] = b[:len(b)-1]
			i.size--
			return
		}
	}
}

// Len 键的数量
func (i *BucketIndex[K]) Len() int {
	return i.size
}

// CanHold 桶数量固定，要求平均装载因子不超过1
func (i *BucketIndex[K]) CanHold(n int) bool {
	return n <= len(i.buckets)
}

func (i *BucketIndex[K]) Description() string {
	return "chained hash buckets"
}
