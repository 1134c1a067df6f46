package lib

import "sync"

// BoundStackMap is a fixed-capacity insertion-ordered map. When full, a push
// evicts the oldest entry. Safe for concurrent use.
type BoundStackMap[T any] struct {
	capacity int
	keys     []string
	dataMap  map[string]T
	mutex    sync.RWMutex
}

func NewBoundStackMap[T any](size int) *BoundStackMap[T] {
	return &BoundStackMap[T]{
		capacity: size,
		keys:     make([]string, 0, size),
		dataMap:  make(map[string]T, size),
	}
}

func (bs *BoundStackMap[T]) Push(key string, item T) {
	bs.mutex.Lock()
	defer bs.mutex.Unlock()

	if _, ok := bs.dataMap[key]; !ok {
		if len(bs.keys) == bs.capacity {
			delete(bs.dataMap, bs.keys[0])
			bs.keys = bs.keys[1:]
		}
		bs.keys = append(bs.keys, key)
	}
	bs.dataMap[key] = item
}

func (bs *BoundStackMap[T]) Get(key string) (T, bool) {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()

	item, ok := bs.dataMap[key]
	return item, ok
}

func (bs *BoundStackMap[T]) Count() int {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()

	return len(bs.keys)
}

func (bs *BoundStackMap[T]) Capacity() int {
	return bs.capacity
}

// Keys returns the keys from oldest to newest.
func (bs *BoundStackMap[T]) Keys() []string {
	bs.mutex.RLock()
	defer bs.mutex.RUnlock()

	keys := make([]string, len(bs.keys))
	copy(keys, bs.keys)
	return keys
}
