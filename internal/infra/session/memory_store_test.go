package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akashi23/anime-quote/internal/domain/service"
)

func TestMemoryStore_NewAndFind(t *testing.T) {
	store := NewMemoryStore()

	sess := store.New()
	assert.NotEmpty(t, sess.ID())

	found, ok := store.Find(sess.ID())
	require.True(t, ok)
	assert.Equal(t, sess.ID(), found.ID())

	_, ok = store.Find("no-such-session")
	assert.False(t, ok)
}

func TestMemoryStore_DistinctIDs(t *testing.T) {
	store := NewMemoryStore()

	first := store.New()
	second := store.New()
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestMemorySession_Attributes(t *testing.T) {
	store := NewMemoryStore()
	sess := store.New()

	_, ok := sess.Get(service.SessionKeyUserID)
	assert.False(t, ok)

	sess.Set(service.SessionKeyUserID, int64(42))

	value, ok := sess.Get(service.SessionKeyUserID)
	require.True(t, ok)
	assert.Equal(t, int64(42), value)

	// Attributes are visible through any handle onto the same session.
	other, ok := store.Find(sess.ID())
	require.True(t, ok)
	value, ok = other.Get(service.SessionKeyUserID)
	require.True(t, ok)
	assert.Equal(t, int64(42), value)
}

func TestMemorySession_Destroy(t *testing.T) {
	store := NewMemoryStore()
	sess := store.New()
	sess.Set(service.SessionKeyUserID, int64(7))

	sess.Destroy()

	_, ok := store.Find(sess.ID())
	assert.False(t, ok)

	_, ok = sess.Get(service.SessionKeyUserID)
	assert.False(t, ok)

	// Destroy is idempotent.
	assert.NotPanics(t, func() { sess.Destroy() })

	// A write after destroy must not resurrect the session.
	sess.Set(service.SessionKeyUserID, int64(8))
	_, ok = store.Find(sess.ID())
	assert.False(t, ok)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	sess := store.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			sess.Set(service.SessionKeyUserID, int64(i))
		}()
		go func() {
			defer wg.Done()
			if value, ok := sess.Get(service.SessionKeyUserID); ok {
				// Readers only ever observe fully written values.
				assert.IsType(t, int64(0), value)
			}
		}()
	}
	wg.Wait()
}
