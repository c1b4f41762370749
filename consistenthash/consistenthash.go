package consistenthash

import (
	"hash/crc32"
	"sort"
	"strconv"
)

// Hash 映射bytes到uint32，用于散列键
type Hash func(data []byte) uint32

// Ring 把键映射到固定数量的分片序号
// 分片集合在构造后不变，所以没有增删节点的操作
type Ring struct {
	hash Hash
	// 哈希环，存的都是虚拟节点的hash
	keys []int
	// 虚拟节点hash到分片序号的映射
	hashMap map[int]int
}

// New 创建一个一致性哈希环，shards个分片，每个分片replicas个虚拟节点
func New(shards, replicas int, fn Hash) *Ring {
	if shards <= 0 {
		panic("shards must be greater than 0")
	}
	if replicas <= 0 {
		panic("replicas must be greater than 0")
	}
	r := &Ring{
		hash:    fn,
		hashMap: make(map[int]int, shards*replicas),
	}
	if r.hash == nil {
		r.hash = crc32.ChecksumIEEE
	}
	for shard := 0; shard < shards; shard++ {
		for i := 0; i < replicas; i++ {
			hash := int(r.hash([]byte(strconv.Itoa(i) + "-" + strconv.Itoa(shard))))
			// 虚拟节点hash冲突时保留先到的分片
			if _, ok := r.hashMap[hash]; !ok {
				r.hashMap[hash] = shard
			}
		}
	}
	r.keys = make([]int, 0, len(r.hashMap))
	for hash := range r.hashMap {
		r.keys = append(r.keys, hash)
	}
	sort.Ints(r.keys)
	return r
}

// Get 获取第一个哈希值大于等于键的分片序号
func (r *Ring) Get(key string) int {
	hash := int(r.hash([]byte(key)))
	idx := sort.Search(len(r.keys), func(i int) bool {
		return r.keys[i] >= hash
	})
	return r.hashMap[r.keys[idx%len(r.keys)]]
}
