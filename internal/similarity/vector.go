// Package similarity ranks prompts by lexical closeness using normalised
// term-frequency vectors and cosine similarity.
package similarity

import "math"

// Vector maps a token to its share of the text's tokens. Values sum to 1
// for any non-empty vector.
type Vector map[string]float64

// TermFrequency counts tokens and normalises the counts by the token total.
func TermFrequency(tokens []string) Vector {
	v := make(Vector, len(tokens))
	if len(tokens) == 0 {
		return v
	}
	for _, t := range tokens {
		v[t]++
	}
	total := float64(len(tokens))
	for t := range v {
		v[t] /= total
	}
	return v
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Cosine returns the cosine similarity of a and b in [0, 1]. It is 0 when
// either vector is empty.
func Cosine(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	// Only shared tokens contribute to the dot product.
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	var dot float64
	for t, x := range small {
		dot += x * large[t]
	}
	sim := dot / (na * nb)
	switch {
	case sim < 0:
		return 0
	case sim > 1:
		return 1
	}
	return sim
}
