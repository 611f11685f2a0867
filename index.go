// ═══════════════════════════════════════════════════════════════════════════════
// INVERTED INDEX + PER-DOCUMENT TERM MAP
// ═══════════════════════════════════════════════════════════════════════════════
// Two views of the same data are kept, deliberately redundant:
//
//	inverted: term -> docID -> termFrequency   (owning authority for terms)
//	perDoc:   docID -> term -> termFrequency   (same values, doc-keyed)
//
// The dual index costs 2x memory but gives O(degree) match and remove: a
// removal only has to walk the one document's terms (perDoc) to know which
// postings in `inverted` to touch, instead of scanning every posting list.
// ═══════════════════════════════════════════════════════════════════════════════

package tfengine

import "github.com/RoaringBitmap/roaring"

// termArena interns term strings so each unique term is stored once, and
// assigns a stable integer id to each term for the duplicate detector's
// bitmap representation.
type termArena struct {
	strings map[string]string
	ids     map[string]uint32
	nextID  uint32
}

func newTermArena() *termArena {
	return &termArena{
		strings: make(map[string]string),
		ids:     make(map[string]uint32),
	}
}

// intern returns the canonical stored string for term, allocating a new
// arena entry (and a new term id) on first sight.
func (a *termArena) intern(term string) string {
	if canonical, ok := a.strings[term]; ok {
		return canonical
	}
	a.strings[term] = term
	a.ids[term] = a.nextID
	a.nextID++
	return term
}

// idFor returns the interned term's integer id. The term must already be
// interned.
func (a *termArena) idFor(term string) uint32 {
	return a.ids[term]
}

// invertedIndex is term -> docID -> term frequency.
type invertedIndex map[string]map[int]float64

// perDocumentTerms is docID -> term -> term frequency.
type perDocumentTerms map[int]map[string]float64

// index bundles the arena, the two term tables, and the term-id bitmaps
// used by the duplicate detector.
type index struct {
	arena      *termArena
	inverted   invertedIndex
	perDoc     perDocumentTerms
	docTermIDs map[int]*roaring.Bitmap // docID -> bitmap of interned term ids
}

func newIndex() *index {
	return &index{
		arena:      newTermArena(),
		inverted:   make(invertedIndex),
		perDoc:     make(perDocumentTerms),
		docTermIDs: make(map[int]*roaring.Bitmap),
	}
}

// addDocument records the non-stop tokens of a newly ingested document. n is
// the count of non-stop tokens; inv is 1/n (0 when n == 0, in which case no
// term entries are created).
func (ix *index) addDocument(id int, tokens []string) {
	n := len(tokens)
	if n == 0 {
		ix.perDoc[id] = make(map[string]float64)
		return
	}
	inv := 1.0 / float64(n)

	perDoc := make(map[string]float64, n)
	bitmap := roaring.NewBitmap()

	for _, raw := range tokens {
		term := ix.arena.intern(raw)

		postings, ok := ix.inverted[term]
		if !ok {
			postings = make(map[int]float64)
			ix.inverted[term] = postings
		}
		postings[id] += inv
		perDoc[term] += inv

		bitmap.Add(ix.arena.idFor(term))
	}

	ix.perDoc[id] = perDoc
	ix.docTermIDs[id] = bitmap
}

// documentFrequency returns the number of postings for a term (the count of
// documents containing it), or 0 if the term was never indexed.
func (ix *index) documentFrequency(term string) int {
	return len(ix.inverted[term])
}

// postings returns the term's posting list, or nil if the term is unknown.
func (ix *index) postings(term string) map[int]float64 {
	return ix.inverted[term]
}

// wordFrequencies returns the per-document term->frequency map, or an empty
// map if the id is unknown.
func (ix *index) wordFrequencies(id int) map[string]float64 {
	freqs, ok := ix.perDoc[id]
	if !ok {
		return map[string]float64{}
	}
	return freqs
}

// remove erases id from every posting it appears in (leaving the term in
// the arena even if its posting list becomes empty), then from perDoc and
// the term-id bitmap table.
func (ix *index) remove(id int) {
	terms, ok := ix.perDoc[id]
	if !ok {
		return
	}
	for term := range terms {
		delete(ix.inverted[term], id)
	}
	delete(ix.perDoc, id)
	delete(ix.docTermIDs, id)
}

// termSetBitmap returns the bitmap of interned term ids present in the
// document (ignoring frequencies), used for duplicate-set comparison.
func (ix *index) termSetBitmap(id int) *roaring.Bitmap {
	if b, ok := ix.docTermIDs[id]; ok {
		return b
	}
	return roaring.NewBitmap()
}

// termsOf snapshots the term list for id, used by the parallel remove path
// to capture the posting set before any bookkeeping table is mutated.
func (ix *index) termsOf(id int) []string {
	freqs, ok := ix.perDoc[id]
	if !ok {
		return nil
	}
	terms := make([]string, 0, len(freqs))
	for term := range freqs {
		terms = append(terms, term)
	}
	return terms
}

// erasePostings removes id from the posting list of each given term,
// without touching perDoc/docTermIDs (the caller has already snapshotted
// and erased those separately — used by the parallel remove path so the
// posting erasures can run concurrently after doc bookkeeping is done).
func (ix *index) erasePostings(id int, terms []string) {
	for _, term := range terms {
		delete(ix.inverted[term], id)
	}
}
