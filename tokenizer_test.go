package tfengine

import "testing"

func TestTokenize_Simple(t *testing.T) {
	got := tokenize("the quick brown fox")
	want := []string{"the", "quick", "brown", "fox"}
	if len(got) != len(want) {
		t.Fatalf("tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenize_LeadingTrailingConsecutiveSpaces(t *testing.T) {
	got := tokenize("  cat   in the  city ")
	want := []string{"cat", "in", "the", "city"}
	if len(got) != len(want) {
		t.Fatalf("tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := tokenize(""); len(got) != 0 {
		t.Errorf("tokenize(\"\") = %v, want empty", got)
	}
	if got := tokenize("   "); len(got) != 0 {
		t.Errorf("tokenize(spaces) = %v, want empty", got)
	}
}

func TestHasControlByte(t *testing.T) {
	if hasControlByte("clean text") {
		t.Error("hasControlByte() = true for clean text")
	}
	if !hasControlByte("dirty\ttext") {
		t.Error("hasControlByte() = false, want true for tab byte")
	}
	if !hasControlByte("dirty\x00text") {
		t.Error("hasControlByte() = false, want true for NUL byte")
	}
}

func TestNewStopWordSet_RejectsEmptyTerm(t *testing.T) {
	if _, err := newStopWordSet([]string{"the", ""}); err == nil {
		t.Error("newStopWordSet() with empty term should fail")
	}
}

func TestNewStopWordSet_RejectsControlByte(t *testing.T) {
	if _, err := newStopWordSet([]string{"the\x01"}); err == nil {
		t.Error("newStopWordSet() with control byte should fail")
	}
}

func TestStopWordSet_IsStop(t *testing.T) {
	set, err := newStopWordSet([]string{"in", "the"})
	if err != nil {
		t.Fatalf("newStopWordSet() error = %v", err)
	}
	if !set.isStop("in") || !set.isStop("the") {
		t.Error("isStop() should be true for stop words")
	}
	if set.isStop("cat") {
		t.Error("isStop(\"cat\") should be false")
	}
}

func TestStopWordSet_Filter(t *testing.T) {
	set, err := newStopWordSet([]string{"in", "the"})
	if err != nil {
		t.Fatalf("newStopWordSet() error = %v", err)
	}
	got := set.filter(tokenize("cat in the city"))
	want := []string{"cat", "city"}
	if len(got) != len(want) {
		t.Fatalf("filter() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("filter()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
