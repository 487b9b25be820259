package collect_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"dearchive/internal/collect"
)

func TestGatherPreservesBuilderOrder(t *testing.T) {
	var builders []collect.Builder[int]
	for i := range 8 {
		builders = append(builders, func(ctx context.Context) (int, error) {
			time.Sleep(time.Duration(8-i) * time.Millisecond)
			return i * i, nil
		})
	}

	got, err := collect.Gather(context.Background(), 3, builders)
	if err != nil {
		t.Fatalf("Gather returned error: %v", err)
	}
	for i, v := range got {
		if v != i*i {
			t.Fatalf("result %d = %d, want %d", i, v, i*i)
		}
	}
}

func TestGatherRespectsLimit(t *testing.T) {
	var running, peak atomic.Int32
	var builders []collect.Builder[struct{}]
	for range 10 {
		builders = append(builders, func(ctx context.Context) (struct{}, error) {
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			running.Add(-1)
			return struct{}{}, nil
		})
	}

	if _, err := collect.Gather(context.Background(), 2, builders); err != nil {
		t.Fatalf("Gather returned error: %v", err)
	}
	if peak.Load() > 2 {
		t.Fatalf("expected at most 2 concurrent builders, saw %d", peak.Load())
	}
}

func TestGatherReturnsFirstErrorAndCancels(t *testing.T) {
	boom := errors.New("boom")
	builders := []collect.Builder[string]{
		func(ctx context.Context) (string, error) { return "", boom },
		func(ctx context.Context) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(5 * time.Second):
				return "late", nil
			}
		},
	}

	got, err := collect.Gather(context.Background(), 0, builders)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil results on error, got %v", got)
	}
}

func TestGatherEmpty(t *testing.T) {
	got, err := collect.Gather[int](context.Background(), 4, nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("Gather(nil) = %v, %v", got, err)
	}
}
