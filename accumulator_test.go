package tfengine

import (
	"sync"
	"testing"
)

func TestShardedAccumulator_AddAccumulates(t *testing.T) {
	acc := newShardedAccumulator(4)
	acc.add(1, 0.5)
	acc.add(1, 0.25)
	acc.add(2, 1.0)

	merged := acc.drain()
	if got, want := merged[1], 0.75; abs(got-want) > FloatEpsilon {
		t.Errorf("merged[1] = %f, want %f", got, want)
	}
	if got, want := merged[2], 1.0; abs(got-want) > FloatEpsilon {
		t.Errorf("merged[2] = %f, want %f", got, want)
	}
}

func TestShardedAccumulator_Erase(t *testing.T) {
	acc := newShardedAccumulator(4)
	acc.add(1, 0.5)
	acc.erase(1)

	merged := acc.drain()
	if _, ok := merged[1]; ok {
		t.Error("erase() should remove the key regardless of its score")
	}
}

func TestShardedAccumulator_DefaultShardCount(t *testing.T) {
	acc := newShardedAccumulator(0)
	if len(acc.shards) != ShardCount {
		t.Errorf("shard count = %d, want default %d", len(acc.shards), ShardCount)
	}
}

func TestShardedAccumulator_NegativeIDsStayInBounds(t *testing.T) {
	acc := newShardedAccumulator(8)
	acc.add(-3, 1.0)
	merged := acc.drain()
	if got, want := merged[-3], 1.0; abs(got-want) > FloatEpsilon {
		t.Errorf("merged[-3] = %f, want %f", got, want)
	}
}

func TestShardedAccumulator_ConcurrentAddsAreRaceFree(t *testing.T) {
	acc := newShardedAccumulator(16)
	var wg sync.WaitGroup
	for g := 0; g < 50; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				acc.add(i%10, 1.0)
			}
		}()
	}
	wg.Wait()

	merged := acc.drain()
	for id, score := range merged {
		if got, want := score, 500.0; abs(got-want) > FloatEpsilon {
			t.Errorf("merged[%d] = %f, want %f", id, got, want)
		}
	}
}
