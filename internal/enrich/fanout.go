package enrich

import (
	"context"
	"log/slog"
	"sync"
)

// FanOut runs lookup concurrently for every unique key in the batch, bounded
// by workers. Each lookup may fail independently; failures are logged and
// collected, never propagated, so one bad identifier cannot abort the batch.
// The returned map holds only the successful lookups.
func FanOut[V any](ctx context.Context, keys []string, workers int, lookup func(context.Context, string) (V, error)) (map[string]V, []string) {
	if workers < 1 {
		workers = 1
	}

	unique := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]V, len(unique))
		failed  []string
	)

	sem := make(chan struct{}, workers)
	for _, key := range unique {
		wg.Add(1)
		sem <- struct{}{}
		go func(key string) {
			defer wg.Done()
			defer func() { <-sem }()

			value, err := lookup(ctx, key)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Warn("enrichment lookup failed, using fallback",
					"key", key,
					"error", err)
				failed = append(failed, key)
				return
			}
			results[key] = value
		}(key)
	}
	wg.Wait()

	return results, failed
}
