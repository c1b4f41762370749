package lru

// KeyIndex 键到条目句柄的索引，平均O(1)的查找/插入/删除
// 只维护键的映射，不触碰条目数组和链表；具体实现可以互换
type KeyIndex[K comparable] interface {
	// Find 查找键对应的句柄
	Find(key K) (handle int, ok bool)
	// Insert 键不存在时才插入；返回现有或者新插入的句柄，以及是否发生了插入
	Insert(key K, handle int) (int, bool)
	// Erase 删除键的映射，键不存在时无副作用
	Erase(key K)
	// Len 键的数量
	Len() int
	// Description 索引后端的描述，只用于标识
	Description() string
}

// MapIndex 基于内置map的KeyIndex，默认实现
type MapIndex[K comparable] struct {
	m map[K]int
}

// NewMapIndex 创建一个MapIndex，sizeHint是预估的键数量
func NewMapIndex[K comparable](sizeHint int) *MapIndex[K] {
	return &MapIndex[K]{
		m: make(map[K]int, sizeHint),
	}
}

// Find 查找键对应的句柄
func (i *MapIndex[K]) Find(key K) (int, bool) {
	h, ok := i.m[key]
	return h, ok
}

// Insert 键不存在时才插入
func (i *MapIndex[K]) Insert(key K, handle int) (int, bool) {
	if h, ok := i.m[key]; ok {
		return h, false
	}
	i.m[key] = handle
	return handle, true
}

// Erase 删除键的映射
func (i *MapIndex[K]) Erase(key K) {
	delete(i.m, key)
}

// Len 键的数量
func (i *MapIndex[K]) Len() int {
	return len(i.m)
}

func (i *MapIndex[K]) Description() string {
	return "builtin map"
}
