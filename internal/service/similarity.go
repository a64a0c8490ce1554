package service

import (
	"math"
	"strings"
)

// trigramVector turns free text into a sparse frequency vector of character
// trigrams. The text is lowercased, whitespace-collapsed, and padded with two
// spaces on each side so prefixes and suffixes produce their own shingles;
// that padding is what makes short, misspelled queries still overlap.
func trigramVector(text string) map[string]int {
	norm := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	if norm == "" {
		return nil
	}

	padded := []rune("  " + norm + "  ")
	vec := make(map[string]int, len(padded))
	for i := 0; i+3 <= len(padded); i++ {
		vec[string(padded[i:i+3])]++
	}
	return vec
}

// cosineSimilarity computes the cosine of the angle between two trigram
// frequency vectors. An empty vector on either side yields 0, never NaN.
func cosineSimilarity(a, b map[string]int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Iterate the smaller map for the dot product.
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot, normA, normB float64
	for k, av := range a {
		normA += float64(av) * float64(av)
		if bv, ok := b[k]; ok {
			dot += float64(av) * float64(bv)
		}
	}
	for _, bv := range b {
		normB += float64(bv) * float64(bv)
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
