package lrucache

import (
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Getter 用于在缓存未命中时加载数据
type Getter interface {
	Get(key string) (ByteView, error)
}

type GetterFunc func(key string) (ByteView, error)

func (f GetterFunc) Get(key string) (ByteView, error) {
	return f(key)
}

// Group 一个缓存命名空间
type Group struct {
	name      string
	getter    Getter
	mainCache *cache
	// 避免对同一个key多次加载
	loadGroup *singleflight.Group
}

var (
	// 对全局group操作的锁
	mu sync.RWMutex
	// 缓存全局的group
	groups = make(map[string]*Group)
)

// NewGroup 创建一个Group，capacity是缓存的最大条目数
func NewGroup(name string, capacity int, getter Getter) *Group {
	if getter == nil {
		panic("nil Getter")
	}
	mu.Lock()
	defer mu.Unlock()
	g := &Group{
		name:   name,
		getter: getter,
		mainCache: &cache{
			capacity: capacity,
		},
		loadGroup: &singleflight.Group{},
	}
	groups[name] = g
	return g
}

// GetGroup 从全局缓存获取Group
func GetGroup(name string) *Group {
	mu.RLock()
	defer mu.RUnlock()
	return groups[name]
}

// Get 从缓存获取key对应的value，未命中时通过getter加载
func (g *Group) Get(key string) (ByteView, error) {
	if key == "" {
		return ByteView{}, fmt.Errorf("key is required")
	}

	if v, ok := g.mainCache.get(key); ok {
		log.Println("[Cache] main cache hit")
		return v, nil
	}
	return g.load(key)
}

// 加载缓存，singleflight保证同一个key同时只加载一次
func (g *Group) load(key string) (ByteView, error) {
	view, err, _ := g.loadGroup.Do(key, func() (any, error) {
		value, err := g.getter.Get(key)
		if err != nil {
			return ByteView{}, err
		}
		g.populateCache(key, value)
		return value, nil
	})
	if err != nil {
		return ByteView{}, err
	}
	return view.(ByteView), nil
}

// 发布到缓存
func (g *Group) populateCache(key string, value ByteView) {
	g.mainCache.put(key, value)
}
