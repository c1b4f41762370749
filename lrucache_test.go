package lrucache

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
)

func TestGetter(t *testing.T) {
	var f Getter = GetterFunc(func(key string) (ByteView, error) {
		return NewByteView([]byte(key)), nil
	})
	key1 := "key1"
	if value, err := f.Get(key1); err != nil || value.String() != key1 {
		t.Errorf("getter expect %s but %s\n", key1, value)
	}
}

func TestGroup_Get(t *testing.T) {
	var db = map[string]string{
		"Tom":  "630",
		"Jack": "589",
		"Sam":  "567",
	}
	loadCounts := make(map[string]int, len(db))
	g := NewGroup("scores", 1<<10, GetterFunc(func(key string) (ByteView, error) {
		log.Printf("[SlowDB] search key %s\n", key)
		if v, ok := db[key]; ok {
			loadCounts[key]++
			return NewByteView([]byte(v)), nil
		}
		return ByteView{}, fmt.Errorf("%s does not exists", key)
	}))

	for k, v := range db {
		if view, err := g.Get(k); err != nil || view.String() != v {
			t.Fatalf("failed to get value of key %s\n", k)
		}
		if _, err := g.Get(k); err != nil || loadCounts[k] > 1 {
			t.Fatalf("cache key %s miss key\n", k)
		}
	}

	if view, err := g.Get("unknown"); err == nil {
		t.Fatalf("the value of key unknown should be empty, but %s got\n", view.String())
	}

	if _, err := g.Get(""); err == nil {
		t.Fatalf("empty key should be rejected\n")
	}
}

func TestGetGroup(t *testing.T) {
	g := NewGroup("group1", 16, GetterFunc(func(key string) (ByteView, error) {
		return NewByteView([]byte(key)), nil
	}))
	if got := GetGroup("group1"); got != g {
		t.Fatalf("get group group1 failed\n")
	}
	if got := GetGroup("no-such-group"); got != nil {
		t.Fatalf("get group no-such-group should be nil\n")
	}
}

// 并发读同一个冷key，getter只能被调用一次
func TestGroup_SingleFlight(t *testing.T) {
	var loads int64
	start := make(chan struct{})
	g := NewGroup("flights", 16, GetterFunc(func(key string) (ByteView, error) {
		<-start
		atomic.AddInt64(&loads, 1)
		return NewByteView([]byte(key)), nil
	}))

	const workers = 16
	var wg sync.WaitGroup
	ready := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ready <- struct{}{}
			if view, err := g.Get("key1"); err != nil || view.String() != "key1" {
				t.Errorf("failed to get value of key1: %v\n", err)
			}
		}()
	}
	for i := 0; i < workers; i++ {
		<-ready
	}
	close(start)
	wg.Wait()
	if n := atomic.LoadInt64(&loads); n >= workers/2 {
		t.Fatalf("getter called %d times, concurrent loads were not deduplicated\n", n)
	}
}

func BenchmarkGet(b *testing.B) {
	b.ReportAllocs()
	g := NewGroup("scores", math.MaxInt, GetterFunc(func(key string) (ByteView, error) {
		return NewByteView([]byte(key)), nil
	}))
	for i := 0; i < b.N; i++ {
		g.Get(strconv.Itoa(i))
	}
}
