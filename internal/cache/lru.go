package cache

import "sync"

// lru cache
//   - a map gives O(1) lookup from key to list node
//   - the list keeps nodes in access order, head is the hottest
//   - when full, the tail node is dropped before the new key goes in

type EvictedCallback = func(string, interface{})

type node struct {
	key        string
	value      interface{}
	prev, next *node
}

type LruCache struct {
	mu       sync.Mutex
	capacity int
	onEvict  EvictedCallback
	items    map[string]*node
	// sentinels
	head, tail *node
}

func Default(capacity int) *LruCache {
	return NewLruCache(capacity, nil)
}

func NewLruCache(capacity int, onEvict EvictedCallback) *LruCache {
	if capacity < 1 {
		capacity = 1
	}
	l := &LruCache{
		capacity: capacity,
		onEvict:  onEvict,
		items:    make(map[string]*node, capacity),
		head:     &node{},
		tail:     &node{},
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

func (l *LruCache) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

func (l *LruCache) Get(key string) (interface{}, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	n, ok := l.items[key]
	if !ok {
		return nil, false
	}
	l.toHead(n)
	return n.value, true
}

func (l *LruCache) Put(key string, value interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n, ok := l.items[key]; ok {
		n.value = value
		l.toHead(n)
		return
	}
	if len(l.items) == l.capacity {
		l.evict()
	}
	n := &node{key: key, value: value}
	l.items[key] = n
	l.link(n)
}

func (l *LruCache) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.onEvict != nil {
		for k, n := range l.items {
			l.onEvict(k, n.value)
		}
	}
	l.items = make(map[string]*node, l.capacity)
	l.head.next = l.tail
	l.tail.prev = l.head
}

func (l *LruCache) evict() {
	n := l.tail.prev
	if n == l.head {
		return
	}
	l.unlink(n)
	delete(l.items, n.key)
	if l.onEvict != nil {
		l.onEvict(n.key, n.value)
	}
}

func (l *LruCache) toHead(n *node) {
	if l.head.next == n {
		return
	}
	l.unlink(n)
	l.link(n)
}

func (l *LruCache) link(n *node) {
	n.prev = l.head
	n.next = l.head.next
	l.head.next.prev = n
	l.head.next = n
}

func (l *LruCache) unlink(n *node) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
}
