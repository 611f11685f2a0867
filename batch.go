// ═══════════════════════════════════════════════════════════════════════════════
// BATCH QUERY PROCESSING
// ═══════════════════════════════════════════════════════════════════════════════
// ProcessQueries runs a batch of independent queries concurrently — one
// goroutine per query, each doing its own single-threaded FindTop — and
// returns their result sets in the same order the queries were given.
// Parallelism is across queries here, not within a query; within-query
// parallelism is FindTopParallel's job. ProcessQueriesJoined additionally
// flattens the per-query result sets into one list, query order preserved
// and each query's hits kept contiguous.
// ═══════════════════════════════════════════════════════════════════════════════

package tfengine

import "golang.org/x/sync/errgroup"

// ProcessQueries runs queries against e concurrently, one goroutine per
// query, and returns one result slice per query in input order. A query
// that fails to parse yields a nil result slice at its position; the error
// is not otherwise surfaced, matching the batch-oriented, best-effort
// nature of the operation.
func ProcessQueries(e *Engine, queries []string, status Status) [][]Result {
	results := make([][]Result, len(queries))

	var g errgroup.Group
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			res, err := e.FindTop(q, status)
			if err != nil {
				results[i] = nil
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// ProcessQueriesJoined is ProcessQueries with every query's results
// flattened into a single list, queries kept in input order and each
// query's hits kept contiguous within that order.
func ProcessQueriesJoined(e *Engine, queries []string, status Status) []Result {
	perQuery := ProcessQueries(e, queries, status)

	total := 0
	for _, res := range perQuery {
		total += len(res)
	}

	joined := make([]Result, 0, total)
	for _, res := range perQuery {
		joined = append(joined, res...)
	}
	return joined
}
