package word2vec

import (
	"math"
	"math/rand"
	"sort"
)

// distortion applied to word counts when building the sampling distribution,
// per the word2vec unigram table
const samplingPower = 0.75

// fixed integer domain the cumulative distribution is scaled to
const maxCumulativeValue = math.MaxInt32

/*
NegativeSampling approximates the softmax by contrasting the target word
against a small number of randomly drawn negative words.

Negatives are drawn from a frequency-biased cumulative distribution table:
word counts raised to the 0.75 power, normalized and scaled to a fixed
integer domain.
*/
type NegativeSampling struct {
	// negatives drawn per training pair
	k int
	// monotonically increasing cumulative mass per vocabulary index
	table []int64
	rng   *rand.Rand
}

/*
NewNegativeSampling creates a negative sampler drawing k negatives per pair
*/
func NewNegativeSampling(k int, rng *rand.Rand) *NegativeSampling {
	if k < 1 {
		k = 1
	}
	return &NegativeSampling{
		k:   k,
		rng: rng,
	}
}

/*
StructureSampling builds the cumulative distribution table from the
vocabulary counts
*/
func (n *NegativeSampling) StructureSampling(vocab *Vocabulary) {
	n.table = make([]int64, vocab.Count())

	var totalMass float64
	for _, word := range vocab.Words {
		totalMass += math.Pow(float64(vocab.Entries[word].Count), samplingPower)
	}

	var cumulative float64
	for i, word := range vocab.Words {
		cumulative += math.Pow(float64(vocab.Entries[word].Count), samplingPower)
		n.table[i] = int64(math.Round(cumulative / totalMass * maxCumulativeValue))
	}
}

/*
OutputUnits returns one output row per vocabulary entry
*/
func (n *NegativeSampling) OutputUnits(vocabCount int) int {
	return vocabCount
}

/*
OutputIndices returns the target's own index followed by k drawn negative
indices, redrawing any candidate that collides with the target
*/
func (n *NegativeSampling) OutputIndices(target *VocabEntry) []int {
	indices := make([]int, 0, n.k+1)
	indices = append(indices, target.Index)

	// a single-word vocabulary has no negatives to draw
	if len(n.table) < 2 {
		return indices
	}

	for len(indices) < n.k+1 {
		candidate := n.draw()
		if candidate == target.Index {
			continue
		}
		indices = append(indices, candidate)
	}

	return indices
}

/*
Gradient returns (label - activation) * alpha per output unit, with label 1
for the target and 0 for every negative sample
*/
func (n *NegativeSampling) Gradient(activations []float64, _ *VocabEntry, alpha float64) []float64 {
	gradient := make([]float64, len(activations))
	for u, activation := range activations {
		label := 0.0
		if u == 0 {
			label = 1.0
		}
		gradient[u] = (label - activation) * alpha
	}
	return gradient
}

// draw samples one vocabulary index from the cumulative table
func (n *NegativeSampling) draw() int {
	r := n.rng.Int63n(n.table[len(n.table)-1] + 1)
	return sort.Search(len(n.table), func(i int) bool {
		return n.table[i] >= r
	})
}
