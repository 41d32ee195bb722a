package tree

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"

	antsv2 "github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xset/xlog"
)

func TestSyncRBSet_AntsPool(t *testing.T) {
	total := 1000
	inner := NewOrderedRBSet[int]()
	set := NewSyncRBSet[int](inner)

	logger := xlog.NewXLogger(
		xlog.WithXLoggerLevel(xlog.LogLevelInfo),
		xlog.WithXLoggerWriter(&bytes.Buffer{}),
	)
	p, err := antsv2.NewPool(16, antsv2.WithLogger(xlog.NewAntsXLogger(logger)))
	require.NoError(t, err)
	defer p.Release()

	wg := sync.WaitGroup{}
	wg.Add(total)
	for i := 0; i < total; i++ {
		v := i
		require.NoError(t, p.Submit(func() {
			defer wg.Done()
			set.Insert(v)
			set.Contains(v)
			set.Len()
		}))
	}
	wg.Wait()
	require.Equal(t, int64(total), set.Len())
	require.Equal(t, lo.Range(total), set.Values())
	require.NoError(t, Validate[int](inner))

	failures := atomic.Int64{}
	wg.Add(total)
	for i := 0; i < total; i++ {
		v := i
		require.NoError(t, p.Submit(func() {
			defer wg.Done()
			if v%2 == 0 {
				if !set.Erase(v) {
					failures.Add(1)
				}
				return
			}
			if found, ok := set.Find(v); !ok || found != v {
				failures.Add(1)
			}
		}))
	}
	wg.Wait()
	require.Equal(t, int64(0), failures.Load())
	require.Equal(t, int64(total/2), set.Len())
	require.NoError(t, Validate[int](inner))

	minVal, ok := set.Min()
	require.True(t, ok)
	require.Equal(t, 1, minVal)
	maxVal, ok := set.Max()
	require.True(t, ok)
	require.Equal(t, total-1, maxVal)

	_, ok = set.Find(0)
	require.False(t, ok)

	count := 0
	set.Foreach(func(idx int64, color RBColor, val int) bool {
		count++
		return true
	})
	require.Equal(t, total/2, count)

	set.Release()
	require.Equal(t, int64(0), set.Len())
	require.Empty(t, set.Values())
}
