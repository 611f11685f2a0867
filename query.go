// ═══════════════════════════════════════════════════════════════════════════════
// QUERY PARSING: plus/minus term sets
// ═══════════════════════════════════════════════════════════════════════════════
// A raw query is whitespace-split into tokens. Each token is either a plus
// term or, prefixed with '-', a minus term. Minus terms exclude every
// document that contains them, applied after all plus-term scores have
// accumulated (see engine.go). Malformed minus tokens (bare "-", "--foo",
// "-foo-") are a hard parse error; stop words are silently discarded from
// either set.
// ═══════════════════════════════════════════════════════════════════════════════

package tfengine

import (
	"fmt"
	"sort"
)

// parsedQuery holds the deduplicated plus/minus term sets in the canonical
// set representation used by the sequential engine.
type parsedQuery struct {
	plus  map[string]struct{}
	minus map[string]struct{}
}

// parsedQueryVec holds the same terms as deduplicated slices, the
// representation used by the parallel engine for work-stealing fan-out.
type parsedQueryVec struct {
	plus  []string
	minus []string
}

// queryWord is one token's parse result: its stripped term, whether it was
// minus-prefixed, and whether it is a stop word.
type queryWord struct {
	term    string
	isMinus bool
	isStop  bool
}

func parseQueryWord(token string, stop *stopWordSet) (queryWord, error) {
	isMinus := false
	if len(token) > 0 && token[0] == '-' {
		isMinus = true
		token = token[1:]
		if token == "" || token[0] == '-' || token[len(token)-1] == '-' {
			return queryWord{}, fmt.Errorf("%w: malformed minus term", ErrInvalidQuery)
		}
	}
	if hasControlByte(token) {
		return queryWord{}, fmt.Errorf("%w: control byte in query term", ErrInvalidText)
	}
	return queryWord{term: token, isMinus: isMinus, isStop: stop.isStop(token)}, nil
}

// parseQuery parses raw query text into the set representation.
func parseQuery(raw string, stop *stopWordSet) (parsedQuery, error) {
	q := parsedQuery{plus: make(map[string]struct{}), minus: make(map[string]struct{})}
	for _, token := range tokenize(raw) {
		word, err := parseQueryWord(token, stop)
		if err != nil {
			return parsedQuery{}, err
		}
		if word.isStop {
			continue
		}
		if word.isMinus {
			q.minus[word.term] = struct{}{}
			delete(q.plus, word.term)
		} else if _, isMinus := q.minus[word.term]; !isMinus {
			q.plus[word.term] = struct{}{}
		}
	}
	return q, nil
}

// parseQueryParallel parses raw query text into the deduplicated-vector
// representation: the terms come from parseQuery's sets (so they are
// already unique) and each slice is then sorted.
func parseQueryParallel(raw string, stop *stopWordSet) (parsedQueryVec, error) {
	q, err := parseQuery(raw, stop)
	if err != nil {
		return parsedQueryVec{}, err
	}
	vec := parsedQueryVec{
		plus:  make([]string, 0, len(q.plus)),
		minus: make([]string, 0, len(q.minus)),
	}
	for term := range q.plus {
		vec.plus = append(vec.plus, term)
	}
	for term := range q.minus {
		vec.minus = append(vec.minus, term)
	}
	sort.Strings(vec.plus)
	sort.Strings(vec.minus)
	return vec, nil
}
