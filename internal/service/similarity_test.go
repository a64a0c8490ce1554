package service

import (
	"math"
	"testing"
)

func TestTrigramVector_EmptyAndWhitespace(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n  "} {
		if vec := trigramVector(input); len(vec) != 0 {
			t.Fatalf("expected empty vector for %q, got %d trigrams", input, len(vec))
		}
	}
}

func TestTrigramVector_NormalizesCaseAndWhitespace(t *testing.T) {
	a := trigramVector("Botox   Results")
	b := trigramVector("botox results")

	if len(a) != len(b) {
		t.Fatalf("vectors differ in size: %d vs %d", len(a), len(b))
	}
	for k, v := range a {
		if b[k] != v {
			t.Fatalf("trigram %q: count %d vs %d", k, v, b[k])
		}
	}
}

func TestTrigramVector_PadsBoundaries(t *testing.T) {
	vec := trigramVector("ab")
	// "  ab  " yields "  a", " ab", "ab ", "b  "
	for _, want := range []string{"  a", " ab", "ab ", "b  "} {
		if vec[want] == 0 {
			t.Fatalf("expected boundary trigram %q in vector %v", want, vec)
		}
	}
}

func TestCosineSimilarity_SelfIsOne(t *testing.T) {
	vec := trigramVector("swelling after lip filler")
	got := cosineSimilarity(vec, vec)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("self similarity = %v, want 1.0", got)
	}
}

func TestCosineSimilarity_EmptySideIsZero(t *testing.T) {
	vec := trigramVector("botox")
	if got := cosineSimilarity(nil, vec); got != 0 {
		t.Fatalf("empty vs non-empty = %v, want 0", got)
	}
	if got := cosineSimilarity(vec, trigramVector("")); got != 0 {
		t.Fatalf("non-empty vs empty = %v, want 0", got)
	}
	if got := cosineSimilarity(nil, nil); got != 0 {
		t.Fatalf("empty vs empty = %v, want 0", got)
	}
}

func TestCosineSimilarity_DisjointIsZero(t *testing.T) {
	if got := cosineSimilarity(trigramVector("abc"), trigramVector("xyz")); got != 0 {
		t.Fatalf("disjoint texts = %v, want 0", got)
	}
}

func TestCosineSimilarity_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"botox forehead lines", "botox for forehead wrinkles"},
		{"lip filler swelling", "is swelling after filler normal"},
		{"hair thinning", "weight loss injections"},
		{"a", "a b c d e f"},
	}
	for _, p := range pairs {
		got := cosineSimilarity(trigramVector(p[0]), trigramVector(p[1]))
		if got < 0 || got > 1 {
			t.Fatalf("similarity(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestCosineSimilarity_ToleratesTypos(t *testing.T) {
	clean := cosineSimilarity(trigramVector("botox results"), trigramVector("botox results"))
	typo := cosineSimilarity(trigramVector("botox results"), trigramVector("botx reslts"))

	if typo <= 0.3 {
		t.Fatalf("typo similarity = %v, expected substantial overlap", typo)
	}
	if typo >= clean {
		t.Fatalf("typo similarity %v should be below exact match %v", typo, clean)
	}
}
