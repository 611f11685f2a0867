// ═══════════════════════════════════════════════════════════════════════════════
// SHARDED CONCURRENT ACCUMULATOR
// ═══════════════════════════════════════════════════════════════════════════════
// The parallel query engine needs one mutable shared structure: a
// docID -> score accumulator that many goroutines update concurrently
// without serializing on a single global lock. It is split into
// SHARD_COUNT independent buckets, each guarded by its own mutex; a key k
// always lives in bucket k mod N, so the same id is never touched by two
// buckets and "add" never needs cross-bucket coordination. drain() acquires
// every bucket in index order (so no two operations ever hold two bucket
// locks out of order, which would risk deadlock) and merges into one
// ordinary map.
// ═══════════════════════════════════════════════════════════════════════════════

package tfengine

import "sync"

// ShardCount is the default bucket count for the concurrent accumulator.
const ShardCount = 500

type accumulatorShard struct {
	mu sync.Mutex
	m  map[int]float64
}

// shardedAccumulator is a lock-striped docID -> float64 accumulator.
type shardedAccumulator struct {
	shards []*accumulatorShard
}

func newShardedAccumulator(shardCount int) *shardedAccumulator {
	if shardCount <= 0 {
		shardCount = ShardCount
	}
	shards := make([]*accumulatorShard, shardCount)
	for i := range shards {
		shards[i] = &accumulatorShard{m: make(map[int]float64)}
	}
	return &shardedAccumulator{shards: shards}
}

func (s *shardedAccumulator) shardFor(id int) *accumulatorShard {
	n := len(s.shards)
	return s.shards[((id%n)+n)%n]
}

// add accumulates delta into the score for id.
func (s *shardedAccumulator) add(id int, delta float64) {
	shard := s.shardFor(id)
	shard.mu.Lock()
	shard.m[id] += delta
	shard.mu.Unlock()
}

// erase removes id from the accumulator, regardless of its current score.
func (s *shardedAccumulator) erase(id int) {
	shard := s.shardFor(id)
	shard.mu.Lock()
	delete(shard.m, id)
	shard.mu.Unlock()
}

// drain acquires every bucket in index order and merges them into one
// ordinary map. Must be called only after all fan-out work has joined.
func (s *shardedAccumulator) drain() map[int]float64 {
	merged := make(map[int]float64)
	for _, shard := range s.shards {
		shard.mu.Lock()
		for id, score := range shard.m {
			merged[id] = score
		}
		shard.mu.Unlock()
	}
	return merged
}
