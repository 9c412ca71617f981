package word2vec

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// sampleScale is the fixed-point domain used for subsampling probabilities.
// Probabilities are stored scaled by 2^32 so retention is a single integer
// comparison against a random draw.
const sampleScale = 1 << 32

var tokenCleanRegex = regexp.MustCompile(`[^a-z0-9\s]`)

/*
VocabEntry holds one retained unique word of the vocabulary.

Index values are assigned exactly once after the descending-frequency sort and
must not change afterwards. Code and Points are only populated when training
with hierarchical softmax.
*/
type VocabEntry struct {
	Word       string `json:"word"`
	Count      int    `json:"count"`
	Index      int    `json:"index"`
	SampleProb uint64 `json:"sample_prob"`
	// root-to-leaf branch bits in the binary tree (hierarchical softmax only)
	Code []byte `json:"code,omitempty"`
	// internal-node indices on the root-to-leaf path (hierarchical softmax only)
	Points []int `json:"points,omitempty"`
}

/*
Vocabulary is the pruned word table sorted by descending frequency.
*/
type Vocabulary struct {
	Entries map[string]*VocabEntry
	// index -> word lookup, matching the sorted order
	Words []string
	// sum of the counts of all retained words
	TotalCount int
}

/*
CleanTokens cleans a raw sentence and splits it into tokens.

Sentences are lowercased, punctuation is stripped and whitespace is collapsed.
Empty tokens are dropped, so an empty sentence yields an empty token list.
*/
func CleanTokens(sentence string) []string {
	lower := strings.ToLower(sentence)
	cleaned := tokenCleanRegex.ReplaceAllString(lower, "")
	return strings.Fields(cleaned)
}

/*
BuildVocabulary tokenizes the raw sentences and builds the pruned vocabulary.

Words occurring fewer than minCount times are discarded. The retained words
are sorted by descending count and their indices reassigned to the sorted
positions. Returns the vocabulary and the tokenized corpus.
*/
func BuildVocabulary(sentences []string, minCount int, sampleRate float64) (*Vocabulary, [][]string) {
	corpus := make([][]string, len(sentences))
	counts := make(map[string]int)

	for i, sentence := range sentences {
		tokens := CleanTokens(sentence)
		corpus[i] = tokens
		for _, token := range tokens {
			counts[token]++
		}
	}

	// Prune rare words and total up the retained counts
	entries := make([]*VocabEntry, 0, len(counts))
	total := 0
	for word, count := range counts {
		if count < minCount {
			continue
		}
		entries = append(entries, &VocabEntry{
			Word:  word,
			Count: count,
		})
		total += count
	}

	// Subsampling threshold
	var threshold float64
	switch {
	case sampleRate == 0:
		threshold = float64(total)
	case sampleRate < 1:
		threshold = sampleRate * float64(total)
	default:
		// absolute threshold request
		threshold = sampleRate * (3 + math.Sqrt(5)) / 2
	}

	for _, entry := range entries {
		v := float64(entry.Count)
		p := (math.Sqrt(v/threshold) + 1) * (threshold / v)
		if p > 1 {
			p = 1
		}
		entry.SampleProb = uint64(math.Round(p * sampleScale))
	}

	// Sort by descending count and reassign indices to the sorted positions.
	// Ties are broken alphabetically to keep the index assignment stable
	// across runs over the same corpus.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	vocab := &Vocabulary{
		Entries:    make(map[string]*VocabEntry, len(entries)),
		Words:      make([]string, len(entries)),
		TotalCount: total,
	}
	for i, entry := range entries {
		entry.Index = i
		vocab.Entries[entry.Word] = entry
		vocab.Words[i] = entry.Word
	}

	return vocab, corpus
}

/*
Count returns the number of retained words in the vocabulary
*/
func (v *Vocabulary) Count() int {
	return len(v.Words)
}

/*
Entry returns the vocabulary entry for a word, or nil if the word was pruned
or never seen
*/
func (v *Vocabulary) Entry(word string) *VocabEntry {
	return v.Entries[word]
}
