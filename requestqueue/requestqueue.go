// ═══════════════════════════════════════════════════════════════════════════════
// REQUEST QUEUE: sliding-window request counters
// ═══════════════════════════════════════════════════════════════════════════════
// RequestQueue wraps an Engine and counts how many of the last windowSize
// find-requests returned zero results. Every call to AddFindRequest ticks
// the logical clock forward by one; once more than windowSize ticks have
// elapsed, the oldest recorded request falls out of the window. This is an
// external collaborator: it depends on tfengine.Engine, never the reverse.
// ═══════════════════════════════════════════════════════════════════════════════

package requestqueue

import (
	"container/list"

	"github.com/halvard/tfengine"
)

// DefaultWindowSize is the window width used when a non-positive size is
// given to NewRequestQueue, matching the day-long (1440-tick) window of the
// original request counter.
const DefaultWindowSize = 1440

type queryResult struct {
	tick        int
	resultCount int
}

// RequestQueue counts empty-result find requests over a trailing window of
// ticks.
type RequestQueue struct {
	engine       *tfengine.Engine
	windowSize   int
	requests     *list.List
	emptyQueries int
	currentTick  int
}

// NewRequestQueue wraps engine with a sliding window of windowSize ticks.
// windowSize <= 0 uses DefaultWindowSize.
func NewRequestQueue(engine *tfengine.Engine, windowSize int) *RequestQueue {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &RequestQueue{
		engine:     engine,
		windowSize: windowSize,
		requests:   list.New(),
	}
}

// AddFindRequest ticks the queue forward, runs the query, records whether
// it was empty, and returns its results.
func (q *RequestQueue) AddFindRequest(rawQuery string, status tfengine.Status) ([]tfengine.Result, error) {
	q.currentTick++

	results, err := q.engine.FindTop(rawQuery, status)
	if err != nil {
		return nil, err
	}

	q.evictStale()
	q.push(len(results))

	return results, nil
}

// evictStale drops entries older than the trailing window, decrementing
// emptyQueries for each evicted entry that had zero results.
func (q *RequestQueue) evictStale() {
	for front := q.requests.Front(); front != nil; front = q.requests.Front() {
		entry := front.Value.(queryResult)
		if q.currentTick-entry.tick < q.windowSize {
			break
		}
		if entry.resultCount == 0 {
			q.emptyQueries--
		}
		q.requests.Remove(front)
	}
}

func (q *RequestQueue) push(resultCount int) {
	q.requests.PushBack(queryResult{tick: q.currentTick, resultCount: resultCount})
	if resultCount == 0 {
		q.emptyQueries++
	}
}

// EmptyRequestCount returns how many requests within the trailing window
// returned zero results.
func (q *RequestQueue) EmptyRequestCount() int {
	return q.emptyQueries
}
