package collection

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[string, int]()
	_, ok := m.Get("a")
	assert.False(t, ok)

	m.Put("a", 1)
	assert.True(t, m.PutIfAbsent("b", 2))
	assert.False(t, m.PutIfAbsent("b", 3))
	v, _ := m.Get("b")
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, m.Len())

	values := m.Values()
	sort.Ints(values)
	assert.Equal(t, []int{1, 2}, values)

	visited := 0
	m.Range(func(key string, value int) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)

	m.Delete("a")
	assert.Equal(t, 1, m.Len())
}

func TestSyncMap_Update(t *testing.T) {
	m := NewSyncMap[string, int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Update("hits", func(v int, _ bool) int { return v + 1 })
		}()
	}
	wg.Wait()
	v, _ := m.Get("hits")
	assert.Equal(t, 50, v)
}
