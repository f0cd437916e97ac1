package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryTableStore(t *testing.T) {
	store := NewInMemoryTableStore()

	assert.False(t, store.IsProvisioned("chess"))
	store.MarkProvisioned("chess")
	assert.True(t, store.IsProvisioned("chess"))
	assert.False(t, store.IsProvisioned("Chess"))

	store.MarkProvisioned("chess")
	assert.True(t, store.IsProvisioned("chess"))
}

func TestInMemoryTableStoreConcurrentAccess(t *testing.T) {
	store := NewInMemoryTableStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			game := fmt.Sprintf("game%d", i%5)
			store.MarkProvisioned(game)
			store.IsProvisioned(game)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		assert.True(t, store.IsProvisioned(fmt.Sprintf("game%d", i)))
	}
}

func TestNoopTableStore(t *testing.T) {
	var store TableStore = NoopTableStore{}
	store.MarkProvisioned("chess")
	assert.False(t, store.IsProvisioned("chess"))
}
