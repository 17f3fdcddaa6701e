package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManager_InitialStateIsUnknown(t *testing.T) {
	m := NewManager()
	require.Equal(t, StateUnknown, m.State())
	require.False(t, m.Verified())
}

func TestManager_InvalidateFiresHookOnce(t *testing.T) {
	m := NewManager()
	m.SetAuthenticated()

	calls := 0
	m.OnInvalidate(func() { calls++ })

	require.True(t, m.Invalidate(nil))
	require.False(t, m.Invalidate(nil))
	require.Equal(t, 1, calls)
	require.Equal(t, StateUnauthenticated, m.State())
}

func TestManager_InvalidateConcurrently(t *testing.T) {
	m := NewManager()
	m.SetAuthenticated()

	var mu sync.Mutex
	calls := 0
	m.OnInvalidate(func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Invalidate(nil)
		}()
	}
	wg.Wait()

	require.Equal(t, 1, calls)
}

func TestManager_LoginReArmsInvalidation(t *testing.T) {
	m := NewManager()
	m.SetAuthenticated()

	calls := 0
	m.OnInvalidate(func() { calls++ })

	require.True(t, m.Invalidate(nil))
	m.SetAuthenticated()
	require.True(t, m.Invalidate(nil))
	require.Equal(t, 2, calls)
}

func TestManager_InvalidateFromUnknown(t *testing.T) {
	// A failed verification moves unknown straight to unauthenticated.
	m := NewManager()
	require.True(t, m.Invalidate(nil))
	require.Equal(t, StateUnauthenticated, m.State())
}

func TestManager_LogoutDoesNotFireHook(t *testing.T) {
	m := NewManager()
	m.SetAuthenticated()

	calls := 0
	m.OnInvalidate(func() { calls++ })

	m.SetUnauthenticated()
	require.Equal(t, 0, calls)

	// After an explicit logout there is nothing left to invalidate.
	require.False(t, m.Invalidate(nil))
}
