// ═══════════════════════════════════════════════════════════════════════════════
// DUPLICATE DETECTION
// ═══════════════════════════════════════════════════════════════════════════════
// Two documents are duplicates if they contain exactly the same set of
// terms (frequencies and order don't matter). Grouping by term-set equality
// is done via each document's interned-term-id bitmap (index.go's
// termSetBitmap): equal bitmaps mean equal term sets, and bitmap equality
// is a cheap comparison regardless of document length. Within a group, the
// earliest-ingested id is kept and every later id is removed.
// ═══════════════════════════════════════════════════════════════════════════════

package tfengine

// RemoveDuplicates finds every group of documents sharing an identical term
// set, keeps the earliest-ingested id in each group, and removes the rest.
// sink, if non-nil, is invoked once per removed id before it is removed
// (mirroring the original's log-as-you-go behavior, but left to the caller
// rather than printing). Returns the removed ids in ingestion order.
func (e *Engine) RemoveDuplicates(sink func(id int)) []int {
	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[string]int) // bitmap serialization -> kept id
	var removed []int

	for _, id := range e.docs.order {
		key := string(e.idx.termSetBitmap(id).ToBytes())
		if _, exists := seen[key]; exists {
			removed = append(removed, id)
			continue
		}
		seen[key] = id
	}

	for _, id := range removed {
		if sink != nil {
			sink(id)
		}
		e.idx.remove(id)
		e.docs.remove(id)
	}

	return removed
}
