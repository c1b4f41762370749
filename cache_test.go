package lrucache

import (
	"strconv"
	"sync"
	"testing"
)

func TestCache_PutGet(t *testing.T) {
	c := &cache{capacity: 2}
	if _, ok := c.get("key1"); ok {
		t.Fatalf("empty cache should miss\n")
	}
	if inserted := c.put("key1", NewByteView([]byte("value1"))); !inserted {
		t.Fatalf("first put of key1 should insert\n")
	}
	c.put("key2", NewByteView([]byte("value2")))
	if v, ok := c.get("key1"); !ok || v.String() != "value1" {
		t.Fatalf("cache hit key1:value1 failed, got %v\n", v)
	}
	c.put("key3", NewByteView([]byte("value3")))
	if _, ok := c.get("key2"); ok {
		t.Fatalf("key2 should have been evicted, key1 was touched\n")
	}
	if c.len() != 2 {
		t.Fatalf("cache len=%d, want 2\n", c.len())
	}
}

// 粗粒度锁保护下的并发读写，go test -race 验证
func TestCache_Concurrent(t *testing.T) {
	c := &cache{capacity: 128}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for n := 0; n < 1000; n++ {
				key := strconv.Itoa(n % 256)
				c.put(key, NewByteView([]byte(key)))
				if v, ok := c.get(key); ok && v.String() != key {
					t.Errorf("invalid value for key %s: %s\n", key, v.String())
				}
			}
		}(i)
	}
	wg.Wait()
	if c.len() > 128 {
		t.Fatalf("cache len=%d exceeds capacity 128\n", c.len())
	}
}
