// Package core_test verifies thread-safety of core.Object under concurrent
// readers and writers.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nv4dll-git/OpenPNM/core"
)

// TestConcurrentSetGet mixes writers on distinct keys with readers of a
// shared key; run with -race to detect unsynchronized access.
func TestConcurrentSetGet(t *testing.T) {
	o, err := core.NewObject("shared", 64, 0)
	require.NoError(t, err)
	require.NoError(t, o.SetScalar("pore.base", 1))

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(2 * workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("pore.w%d", id)
			require.NoError(t, o.SetAt(key, []int{id}, []float64{float64(id)}))
		}(i)
		go func() {
			defer wg.Done()
			vals, err := o.Get("pore.base")
			require.NoError(t, err)
			require.Len(t, vals, 64)
		}()
	}
	wg.Wait()

	require.Len(t, o.Keys(), workers+1)
}
