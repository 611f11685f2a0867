// ═══════════════════════════════════════════════════════════════════════════════
// TEXT ANALYSIS OVERVIEW
// ═══════════════════════════════════════════════════════════════════════════════
// Text analysis here is deliberately thin: split on spaces, drop stop words.
// There is no lowercasing and no stemming — terms are canonical byte
// sequences and analysis never normalizes across case or language. This is
// what lets the same engine index English and non-English text (see the
// package's test fixtures) without a stemmer mangling either.
//
// PIPELINE:
// ---------
//  1. Tokenization      → split text into space-delimited tokens
//  2. Stop word removal → drop tokens present in the stop-word set
//
// ═══════════════════════════════════════════════════════════════════════════════

package tfengine

// tokenize splits text into term views on runs of ASCII space (0x20).
// Leading, trailing, and consecutive spaces produce no empty tokens. The
// returned strings alias the input's backing array via Go's string slicing,
// so no allocation happens beyond the returned slice header.
func tokenize(text string) []string {
	tokens := make([]string, 0, 8)
	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			if start >= 0 {
				tokens = append(tokens, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// hasControlByte reports whether s contains a byte in 0-31.
func hasControlByte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] <= 31 {
			return true
		}
	}
	return false
}

// stopWordSet holds a normalized, immutable set of stop terms.
type stopWordSet struct {
	words map[string]struct{}
}

// newStopWordSet builds a stopWordSet from a list of terms, rejecting empty
// terms or terms containing control characters.
func newStopWordSet(terms []string) (*stopWordSet, error) {
	set := &stopWordSet{words: make(map[string]struct{}, len(terms))}
	for _, term := range terms {
		if term == "" {
			return nil, ErrInvalidText
		}
		if hasControlByte(term) {
			return nil, ErrInvalidText
		}
		set.words[term] = struct{}{}
	}
	return set, nil
}

// isStop reports whether term is a member of the stop-word set.
func (s *stopWordSet) isStop(term string) bool {
	_, ok := s.words[term]
	return ok
}

// filter yields the subset of tokens that are not stop words, preserving
// order. It filters in place, reusing (and overwriting) the backing array
// of tokens.
func (s *stopWordSet) filter(tokens []string) []string {
	out := tokens[:0]
	for _, token := range tokens {
		if !s.isStop(token) {
			out = append(out, token)
		}
	}
	return out
}
