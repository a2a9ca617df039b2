package identity

import (
	"sync"
	"testing"
)

func TestNextIsUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		key := Next()
		if key == "" {
			t.Fatal("empty key")
		}
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate key %q", key)
		}
		seen[key] = struct{}{}
	}
}

func TestNextIsUniqueAcrossGoroutines(t *testing.T) {
	const workers = 8
	const perWorker = 500

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, key := range local {
				if _, dup := seen[key]; dup {
					t.Errorf("duplicate key %q", key)
				}
				seen[key] = struct{}{}
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d distinct keys, got %d", workers*perWorker, len(seen))
	}
}
