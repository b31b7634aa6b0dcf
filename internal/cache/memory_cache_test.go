package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	mc := NewMemoryCache[[]byte]()
	defer mc.Stop()
	ctx := context.Background()

	_, err := mc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, mc.Set(ctx, "k", []byte("v"), 0))
	v, err := mc.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	assert.NoError(t, mc.Delete(ctx, "k"))
	_, err = mc.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Overwrite(t *testing.T) {
	mc := NewMemoryCache[[]byte]()
	defer mc.Stop()
	ctx := context.Background()

	assert.NoError(t, mc.Set(ctx, "slot", []byte("first"), 0))
	assert.NoError(t, mc.Set(ctx, "slot", []byte("second"), 0))

	v, err := mc.Get(ctx, "slot")
	assert.NoError(t, err)
	assert.Equal(t, []byte("second"), v)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	mc := NewMemoryCacheWithOptions[string](8, 5*time.Millisecond)
	defer mc.Stop()
	ctx := context.Background()

	assert.NoError(t, mc.Set(ctx, "ephemeral", "v", 10*time.Millisecond))

	time.Sleep(30 * time.Millisecond)
	_, err := mc.Get(ctx, "ephemeral")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	mc := NewMemoryCache[int]()
	defer mc.Stop()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = mc.Set(ctx, "shared", n, 0)
			_, _ = mc.Get(ctx, "shared")
		}(i)
	}
	wg.Wait()

	_, err := mc.Get(ctx, "shared")
	assert.NoError(t, err)
}

func TestMemoryCache_StopIsIdempotent(t *testing.T) {
	mc := NewMemoryCache[string]()
	mc.Stop()
	mc.Stop()
}
