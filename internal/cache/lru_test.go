package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLruEvictsLeastRecent(t *testing.T) {
	evicted := []string{}
	l := NewLruCache(2, func(k string, _ interface{}) {
		evicted = append(evicted, k)
	})
	l.Put("a", 1)
	l.Put("b", 2)
	v, ok := l.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	l.Put("c", 3)
	_, ok = l.Get("b")
	assert.False(t, ok)
	assert.Equal(t, []string{"b"}, evicted)
	assert.Equal(t, 2, l.Len())
}

func TestLruUpdate(t *testing.T) {
	l := Default(2)
	l.Put("a", 1)
	l.Put("a", 2)
	assert.Equal(t, 1, l.Len())
	v, _ := l.Get("a")
	assert.Equal(t, 2, v)
}

func TestLruClear(t *testing.T) {
	n := 0
	l := NewLruCache(4, func(string, interface{}) { n++ })
	l.Put("a", 1)
	l.Put("b", 2)
	l.Clear()
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, l.Len())
	l.Put("c", 3)
	v, ok := l.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestLruParallel(t *testing.T) {
	l := Default(16)
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				k := fmt.Sprint(i*j%40)
				l.Put(k, j)
				l.Get(k)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, l.Len(), 16)
}
