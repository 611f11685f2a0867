package tfengine

import "testing"

func newTestStopWords(t *testing.T, words ...string) *stopWordSet {
	t.Helper()
	set, err := newStopWordSet(words)
	if err != nil {
		t.Fatalf("newStopWordSet() error = %v", err)
	}
	return set
}

func TestParseQuery_PlusAndMinus(t *testing.T) {
	stop := newTestStopWords(t, "the")
	q, err := parseQuery("dancing -table the", stop)
	if err != nil {
		t.Fatalf("parseQuery() error = %v", err)
	}
	if _, ok := q.plus["dancing"]; !ok {
		t.Error("expected \"dancing\" in plus set")
	}
	if _, ok := q.minus["table"]; !ok {
		t.Error("expected \"table\" in minus set")
	}
	if len(q.plus) != 1 || len(q.minus) != 1 {
		t.Errorf("plus=%v minus=%v, want exactly one term each", q.plus, q.minus)
	}
}

func TestParseQuery_MinusPriorityOverPlus(t *testing.T) {
	stop := newTestStopWords(t)
	q, err := parseQuery("cat -cat", stop)
	if err != nil {
		t.Fatalf("parseQuery() error = %v", err)
	}
	if _, ok := q.plus["cat"]; ok {
		t.Error("\"cat\" should not appear in plus set when also minus")
	}
	if _, ok := q.minus["cat"]; !ok {
		t.Error("\"cat\" should appear in minus set")
	}
}

func TestParseQuery_StopWordDiscardedEntirely(t *testing.T) {
	stop := newTestStopWords(t, "the")
	q, err := parseQuery("-the cat", stop)
	if err != nil {
		t.Fatalf("parseQuery() error = %v", err)
	}
	if _, ok := q.minus["the"]; ok {
		t.Error("stop word should not appear in minus set even with '-' prefix")
	}
	if len(q.minus) != 0 {
		t.Errorf("minus = %v, want empty", q.minus)
	}
}

func TestParseQuery_MalformedMinus(t *testing.T) {
	stop := newTestStopWords(t)
	cases := []string{"-", "--foo", "-foo-"}
	for _, raw := range cases {
		if _, err := parseQuery(raw, stop); err == nil {
			t.Errorf("parseQuery(%q) should fail", raw)
		}
	}
}

func TestParseQuery_ControlByteIsInvalidText(t *testing.T) {
	stop := newTestStopWords(t)
	if _, err := parseQuery("cat\x01dog", stop); err == nil {
		t.Error("parseQuery() with control byte should fail")
	}
}

func TestParseQuery_Deduplication(t *testing.T) {
	stop := newTestStopWords(t)
	q, err := parseQuery("cat cat dog", stop)
	if err != nil {
		t.Fatalf("parseQuery() error = %v", err)
	}
	if len(q.plus) != 2 {
		t.Errorf("plus = %v, want exactly 2 unique terms", q.plus)
	}
}

func TestParseQueryParallel_SortedDeduplicated(t *testing.T) {
	stop := newTestStopWords(t)
	vec, err := parseQueryParallel("dog cat -fox -ant cat", stop)
	if err != nil {
		t.Fatalf("parseQueryParallel() error = %v", err)
	}
	wantPlus := []string{"cat", "dog"}
	wantMinus := []string{"ant", "fox"}
	if len(vec.plus) != len(wantPlus) {
		t.Fatalf("plus = %v, want %v", vec.plus, wantPlus)
	}
	for i := range wantPlus {
		if vec.plus[i] != wantPlus[i] {
			t.Errorf("plus[%d] = %q, want %q", i, vec.plus[i], wantPlus[i])
		}
	}
	if len(vec.minus) != len(wantMinus) {
		t.Fatalf("minus = %v, want %v", vec.minus, wantMinus)
	}
	for i := range wantMinus {
		if vec.minus[i] != wantMinus[i] {
			t.Errorf("minus[%d] = %q, want %q", i, vec.minus[i], wantMinus[i])
		}
	}
}
