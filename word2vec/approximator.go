package word2vec

import (
	"math/rand"

	"word2vec-db/config"
)

/*
Approximator approximates a full softmax over the vocabulary during training.

An approximator is structured once against the finalized vocabulary and then
answers, per training pair, which output-layer rows to update and what the
per-unit gradient factor is for the forward-propagated activations.
*/
type Approximator interface {
	// StructureSampling performs the one-time setup against the finalized
	// vocabulary. Must be called exactly once before training.
	StructureSampling(vocab *Vocabulary)

	// OutputUnits returns the number of output-layer rows the trainer must
	// allocate for a vocabulary of the given size.
	OutputUnits(vocabCount int) int

	// OutputIndices returns the output-layer row indices to read and update
	// for one training pair with the given target word.
	OutputIndices(target *VocabEntry) []int

	// Gradient returns the per-output-unit scalar gradient factor for the
	// given sigmoid activations, target word and learning rate.
	Gradient(activations []float64, target *VocabEntry, alpha float64) []float64
}

/*
NewApproximator creates the approximator for the configured strategy
*/
func NewApproximator(cfg config.Word2VecConfig, rng *rand.Rand) Approximator {
	switch cfg.Approximation {
	case config.ApproximationHierarchicalSoftmax:
		return NewHierarchicalSoftmax()
	default:
		return NewNegativeSampling(cfg.NegativeCount, rng)
	}
}
