package enrich

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanOut_PartialFailure(t *testing.T) {
	lookup := func(ctx context.Context, key string) (string, error) {
		if key == "bad" {
			return "", errors.New("lookup failed")
		}
		return "value-" + key, nil
	}

	results, failed := FanOut(context.Background(), []string{"a", "bad", "b"}, 4, lookup)

	// one failure does not abort the batch
	require.Len(t, results, 2)
	assert.Equal(t, "value-a", results["a"])
	assert.Equal(t, "value-b", results["b"])
	assert.Equal(t, []string{"bad"}, failed)
}

func TestFanOut_DeduplicatesKeys(t *testing.T) {
	var calls int64
	lookup := func(ctx context.Context, key string) (int, error) {
		atomic.AddInt64(&calls, 1)
		return 1, nil
	}

	results, failed := FanOut(context.Background(), []string{"x", "x", "x", "y"}, 2, lookup)
	assert.Len(t, results, 2)
	assert.Empty(t, failed)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestFanOut_BoundsConcurrency(t *testing.T) {
	const workers = 3
	var (
		mu      sync.Mutex
		current int
		peak    int
	)

	lookup := func(ctx context.Context, key string) (struct{}, error) {
		mu.Lock()
		current++
		if current > peak {
			peak = current
		}
		mu.Unlock()

		mu.Lock()
		current--
		mu.Unlock()
		return struct{}{}, nil
	}

	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	results, failed := FanOut(context.Background(), keys, workers, lookup)

	assert.Len(t, results, len(keys))
	assert.Empty(t, failed)
	assert.LessOrEqual(t, peak, workers)
}

func TestFanOut_EmptyKeys(t *testing.T) {
	lookup := func(ctx context.Context, key string) (string, error) {
		t.Fatal("lookup must not be called")
		return "", nil
	}
	results, failed := FanOut(context.Background(), nil, 4, lookup)
	assert.Empty(t, results)
	assert.Empty(t, failed)
}

func TestFanOut_ZeroWorkersStillRuns(t *testing.T) {
	lookup := func(ctx context.Context, key string) (string, error) {
		return key, nil
	}
	results, failed := FanOut(context.Background(), []string{"a"}, 0, lookup)
	assert.Len(t, results, 1)
	assert.Empty(t, failed)
}
