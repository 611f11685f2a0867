// ═══════════════════════════════════════════════════════════════════════════════
// QUERY ENGINE: TF-IDF ranking, match introspection, removal
// ═══════════════════════════════════════════════════════════════════════════════
// Relevance score for a document is the sum, over every plus term the
// document contains, of tf(term, doc) * idf(term):
//
//	idf(term) = ln(totalDocs / documentFrequency(term))
//
// Any document hit by a minus term is excluded outright, regardless of its
// accumulated score. Results are sorted by descending relevance, ties
// (|delta| < FloatEpsilon) broken by descending rating, truncated to the
// top MaxResults.
//
// Every operation here has a sequential and a parallel entry point
// (FindTop/FindTopParallel, MatchDocument/MatchDocumentParallel,
// RemoveDocument/RemoveDocumentParallel). The parallel paths fan work out
// across goroutines with errgroup and use the sharded accumulator
// (accumulator.go) in place of a single lock; per spec.md §4.6 they produce
// results within FloatEpsilon of the sequential path when the predicate is
// pure, because each document id's score is owned by exactly one shard.
// ═══════════════════════════════════════════════════════════════════════════════

package tfengine

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// MaxResults is the maximum number of results FindTop/FindTopParallel ever
// return.
const MaxResults = 5

// FloatEpsilon is the tolerance used to treat two relevance scores as tied
// for the purpose of the rating tiebreak.
const FloatEpsilon = 1e-6

// Predicate decides whether a document should be considered for a query's
// results, given its id, status, and average rating.
type Predicate func(id int, status Status, rating int) bool

// Result is one ranked hit from a query.
type Result struct {
	ID        int
	Relevance float64
	Rating    int
}

// Engine is the in-memory full-text search engine. Reads (queries, match,
// word-frequency lookups) take a shared lock and may run concurrently with
// each other; writes (AddDocument, RemoveDocument, RemoveDuplicates) take
// the exclusive lock, so they are serialized against reads and against
// each other.
type Engine struct {
	mu sync.RWMutex

	stop       *stopWordSet
	docs       *documentStore
	idx        *index
	shardCount int
	logger     *slog.Logger
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithShardCount overrides the concurrent accumulator's bucket count
// (default ShardCount).
func WithShardCount(n int) EngineOption {
	return func(e *Engine) { e.shardCount = n }
}

// WithLogger overrides the engine's structured logger (default
// slog.Default()).
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine constructs an Engine whose stop words are the whitespace-split
// tokens of stopWordsText.
func NewEngine(stopWordsText string, opts ...EngineOption) (*Engine, error) {
	return NewEngineFromWords(tokenize(stopWordsText), opts...)
}

// NewEngineFromWords constructs an Engine from an explicit stop-word list.
func NewEngineFromWords(stopWords []string, opts ...EngineOption) (*Engine, error) {
	stop, err := newStopWordSet(stopWords)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		stop:       stop,
		docs:       newDocumentStore(),
		idx:        newIndex(),
		shardCount: ShardCount,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// AddDocument ingests a document. Preconditions are validated in order
// (InvalidID, DuplicateID, InvalidText); on any failure no table is
// mutated.
func (e *Engine) AddDocument(id int, text string, status Status, ratings []int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id < 0 {
		return fmt.Errorf("%w: id %d", ErrInvalidID, id)
	}
	if _, exists := e.docs.get(id); exists {
		return fmt.Errorf("%w: id %d", ErrDuplicateID, id)
	}
	if hasControlByte(text) {
		return fmt.Errorf("%w: document %d", ErrInvalidText, id)
	}

	tokens := e.stop.filter(tokenize(text))
	e.idx.addDocument(id, tokens)
	e.docs.add(id, status, averageRating(ratings))

	e.logger.Info("document indexed", slog.Int("id", id), slog.Int("terms", len(tokens)), slog.String("status", status.String()))
	return nil
}

// averageRating is the arithmetic integer mean (truncated toward zero) of
// ratings, or 0 for an empty vector.
func averageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

// FindTop returns up to MaxResults documents in the given status matching
// rawQuery, ranked by TF-IDF relevance.
func (e *Engine) FindTop(rawQuery string, status Status) ([]Result, error) {
	return e.FindTopFunc(rawQuery, func(_ int, docStatus Status, _ int) bool {
		return docStatus == status
	})
}

// FindTopFunc is FindTop with an arbitrary predicate in place of a status
// filter.
func (e *Engine) FindTopFunc(rawQuery string, predicate Predicate) ([]Result, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	query, err := parseQuery(rawQuery, e.stop)
	if err != nil {
		return nil, err
	}

	scores := make(map[int]float64)
	totalDocs := e.docs.count()

	for term := range query.plus {
		postings := e.idx.postings(term)
		if postings == nil {
			continue
		}
		idf := e.idf(term, totalDocs)
		for id, tf := range postings {
			rec, ok := e.docs.get(id)
			if !ok || !predicate(id, rec.status, rec.averageRating) {
				continue
			}
			scores[id] += tf * idf
		}
	}

	for term := range query.minus {
		postings := e.idx.postings(term)
		for id := range postings {
			delete(scores, id)
		}
	}

	return e.rankAndTruncate(scores), nil
}

// idf computes ln(totalDocs / documentFrequency(term)).
func (e *Engine) idf(term string, totalDocs int) float64 {
	df := e.idx.documentFrequency(term)
	if df == 0 {
		return 0
	}
	return math.Log(float64(totalDocs) / float64(df))
}

// rankAndTruncate materializes scored ids into Results, sorts them, and
// truncates to MaxResults. The id as a final tiebreak is not required by
// the spec's epsilon rule but makes the order a true total order whenever
// two documents share both relevance (within FloatEpsilon) and rating.
func (e *Engine) rankAndTruncate(scores map[int]float64) []Result {
	results := make([]Result, 0, len(scores))
	for id, score := range scores {
		rec, _ := e.docs.get(id)
		results = append(results, Result{ID: id, Relevance: score, Rating: rec.averageRating})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if math.Abs(a.Relevance-b.Relevance) < FloatEpsilon {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return a.ID < b.ID
		}
		return a.Relevance > b.Relevance
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// FindTopParallel is FindTop executed with a work-stealing parallel-for
// over the plus/minus term sets and a sharded accumulator in place of a
// single scores map. Its result set is identical (within FloatEpsilon) to
// FindTop's for a pure, deterministic predicate.
func (e *Engine) FindTopParallel(rawQuery string, status Status) ([]Result, error) {
	return e.FindTopParallelFunc(rawQuery, func(_ int, docStatus Status, _ int) bool {
		return docStatus == status
	})
}

// FindTopParallelFunc is FindTopParallel with an arbitrary predicate.
func (e *Engine) FindTopParallelFunc(rawQuery string, predicate Predicate) ([]Result, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	query, err := parseQueryParallel(rawQuery, e.stop)
	if err != nil {
		return nil, err
	}

	totalDocs := e.docs.count()
	acc := newShardedAccumulator(e.shardCount)

	var g errgroup.Group
	for _, term := range query.plus {
		term := term
		g.Go(func() error {
			postings := e.idx.postings(term)
			if postings == nil {
				return nil
			}
			idf := e.idf(term, totalDocs)
			for id, tf := range postings {
				rec, ok := e.docs.get(id)
				if !ok || !predicate(id, rec.status, rec.averageRating) {
					continue
				}
				acc.add(id, tf*idf)
			}
			return nil
		})
	}
	// Errors are never produced by the inner funcs above; Wait only joins.
	_ = g.Wait()

	// Minus exclusion is a second parallel pass, run only after the
	// accumulation pass has fully completed — no interleaving.
	var g2 errgroup.Group
	for _, term := range query.minus {
		term := term
		g2.Go(func() error {
			for id := range e.idx.postings(term) {
				acc.erase(id)
			}
			return nil
		})
	}
	_ = g2.Wait()

	scores := acc.drain()
	return e.rankAndTruncate(scores), nil
}

// MatchDocument parses rawQuery and returns the intersection of id's terms
// with the plus set, or an empty slice and the document's status if any of
// id's terms is a minus term.
func (e *Engine) MatchDocument(rawQuery string, id int) ([]string, Status, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rec, err := e.checkMatchTarget(id)
	if err != nil {
		return nil, 0, err
	}

	query, err := parseQuery(rawQuery, e.stop)
	if err != nil {
		return nil, 0, err
	}

	docTerms := e.idx.wordFrequencies(id)
	for term := range docTerms {
		if _, excluded := query.minus[term]; excluded {
			return []string{}, rec.status, nil
		}
	}

	matched := make([]string, 0, len(docTerms))
	for term := range docTerms {
		if _, ok := query.plus[term]; ok {
			matched = append(matched, term)
		}
	}
	sort.Strings(matched)
	return matched, rec.status, nil
}

// MatchDocumentParallel is MatchDocument with the exclusion check and the
// intersection both computed over parallel-for passes, sorting and
// deduplicating the result at the end (matching spec.md §4.7's parallel
// variant).
func (e *Engine) MatchDocumentParallel(rawQuery string, id int) ([]string, Status, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rec, err := e.checkMatchTarget(id)
	if err != nil {
		return nil, 0, err
	}

	query, err := parseQueryParallel(rawQuery, e.stop)
	if err != nil {
		return nil, 0, err
	}

	docTerms := e.idx.wordFrequencies(id)
	minusSet := make(map[string]struct{}, len(query.minus))
	for _, term := range query.minus {
		minusSet[term] = struct{}{}
	}

	var mu sync.Mutex
	isExcluded := false
	var g errgroup.Group
	for term := range docTerms {
		term := term
		g.Go(func() error {
			if _, hit := minusSet[term]; hit {
				mu.Lock()
				isExcluded = true
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if isExcluded {
		return []string{}, rec.status, nil
	}

	var matchMu sync.Mutex
	matched := make([]string, 0, len(query.plus))
	var g2 errgroup.Group
	for _, term := range query.plus {
		term := term
		g2.Go(func() error {
			if _, ok := docTerms[term]; ok {
				matchMu.Lock()
				matched = append(matched, term)
				matchMu.Unlock()
			}
			return nil
		})
	}
	_ = g2.Wait()

	sort.Strings(matched)
	matched = dedupSorted(matched)
	return matched, rec.status, nil
}

func (e *Engine) checkMatchTarget(id int) (documentRecord, error) {
	if id < 0 {
		return documentRecord{}, fmt.Errorf("%w: id %d", ErrInvalidID, id)
	}
	rec, ok := e.docs.get(id)
	if !ok {
		return documentRecord{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return rec, nil
}

// dedupSorted removes adjacent duplicates from a sorted slice in place.
func dedupSorted(sorted []string) []string {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}

// RemoveDocument removes id from every table. Unknown ids are a no-op, not
// an error.
func (e *Engine) RemoveDocument(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.docs.get(id); !ok {
		return
	}
	e.idx.remove(id)
	e.docs.remove(id)
	e.logger.Info("document removed", slog.Int("id", id))
}

// RemoveDocumentParallel snapshots id's term list first, then erases doc
// bookkeeping, then parallel-for's the posting erasures. Final state is
// identical to RemoveDocument.
func (e *Engine) RemoveDocumentParallel(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.docs.get(id); !ok {
		return
	}
	terms := e.idx.termsOf(id)

	delete(e.idx.perDoc, id)
	delete(e.idx.docTermIDs, id)
	e.docs.remove(id)

	var g errgroup.Group
	chunks := splitIntoChunks(terms, e.parallelChunkCount())
	for _, chunk := range chunks {
		chunk := chunk
		g.Go(func() error {
			e.idx.erasePostings(id, chunk)
			return nil
		})
	}
	_ = g.Wait()

	e.logger.Info("document removed (parallel)", slog.Int("id", id))
}

// parallelChunkCount bounds the fan-out width for per-id parallel-for loops
// so a document with thousands of terms doesn't spawn thousands of
// goroutines each doing one map delete.
func (e *Engine) parallelChunkCount() int {
	return 8
}

// splitIntoChunks partitions items into at most n roughly-equal chunks.
func splitIntoChunks(items []string, n int) [][]string {
	if len(items) == 0 {
		return nil
	}
	if n <= 0 || n > len(items) {
		n = len(items)
	}
	chunks := make([][]string, 0, n)
	chunkSize := (len(items) + n - 1) / n
	for i := 0; i < len(items); i += chunkSize {
		end := i + chunkSize
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[i:end])
	}
	return chunks
}

// DocumentCount returns the number of currently indexed documents.
func (e *Engine) DocumentCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.docs.count()
}

// WordFrequencies returns a copy of id's term->frequency map, or an empty
// map if id is unknown.
func (e *Engine) WordFrequencies(id int) map[string]float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	freqs := e.idx.wordFrequencies(id)
	out := make(map[string]float64, len(freqs))
	for term, freq := range freqs {
		out[term] = freq
	}
	return out
}

// DocumentIDs returns every indexed document id, in ingestion order.
func (e *Engine) DocumentIDs() []int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]int, len(e.docs.order))
	copy(out, e.docs.order)
	return out
}

// DocumentsWithStatus returns, in ingestion order, every id currently
// bearing the given status.
func (e *Engine) DocumentsWithStatus(status Status) []int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.docs.idsWithStatus(status)
}
