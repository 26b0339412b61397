package omdb

import (
	"math/rand/v2"
)

// PopularKeywords is the fixed vocabulary searched to simulate a trending feed
var PopularKeywords = []string{
	"love", "hero", "war", "future", "king",
	"world", "space", "dragon", "night", "mission",
	"family", "adventure", "crime", "dream",
}

// KeywordPicker selects the keyword used for a popular listing
type KeywordPicker interface {
	Pick() string
}

// RandomPicker picks uniformly from a vocabulary
type RandomPicker struct {
	Words []string
}

// NewRandomPicker returns a picker over PopularKeywords
func NewRandomPicker() *RandomPicker {
	return &RandomPicker{Words: PopularKeywords}
}

func (p *RandomPicker) Pick() string {
	if len(p.Words) == 0 {
		return PopularKeywords[0]
	}
	return p.Words[rand.IntN(len(p.Words))]
}

// FixedPicker always returns the same keyword
type FixedPicker string

func (p FixedPicker) Pick() string { return string(p) }
