package word2vec

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"word2vec-db/config"
)

// minAlpha is the floor of the linear learning-rate decay
const minAlpha = 0.0001

/*
Word2Vec trains skip-gram word embeddings over a corpus of raw sentences.

Training is single-threaded and synchronous: a tight loop over epochs,
sentences, positions and context positions, mutating the embedding and output
matrices in place. The model must not be queried until Fitted returns true.
*/
type Word2Vec struct {
	cfg    config.Word2VecConfig
	rng    *rand.Rand
	approx Approximator

	vocab  *Vocabulary
	corpus [][]string

	// one embedding row per vocabulary index
	vectors [][]float64
	// L2-normalized copy of vectors, derived after training
	vectorsNorm [][]float64
	// output layer, one row per approximator output unit
	syn1 [][]float64
	// per-word scale on embedding updates, 1 for all words by default
	lockFactor []float64

	fitted bool
}

/*
NewWord2Vec creates a new trainer with the given configuration.

Fails with ErrInvalidParameter when any hyperparameter violates its bounds.
*/
func NewWord2Vec(cfg config.Word2VecConfig) (*Word2Vec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Word2Vec{
		cfg:    cfg,
		rng:    rng,
		approx: NewApproximator(cfg, rng),
	}, nil
}

/*
Seed reseeds the random source used for subsampling, window-shrink and
negative-sample draws, making training reproducible
*/
func (w *Word2Vec) Seed(seed int64) {
	w.rng.Seed(seed)
}

/*
Fitted reports whether training has completed normally
*/
func (w *Word2Vec) Fitted() bool {
	return w.fitted
}

/*
Config returns the trainer's configuration
*/
func (w *Word2Vec) Config() config.Word2VecConfig {
	return w.cfg
}

/*
Vocabulary returns the trained vocabulary, or nil before fitting
*/
func (w *Word2Vec) Vocabulary() *Vocabulary {
	return w.vocab
}

/*
VocabCount returns the number of words in the trained vocabulary
*/
func (w *Word2Vec) VocabCount() int {
	if w.vocab == nil {
		return 0
	}
	return w.vocab.Count()
}

/*
IndexToWord returns the index -> word table of the trained vocabulary
*/
func (w *Word2Vec) IndexToWord() []string {
	if w.vocab == nil {
		return nil
	}
	return w.vocab.Words
}

/*
Fit trains the embedding on a single-column dataset of raw sentences.

The dataset is validated before any state mutation. A failed Fit leaves the
model unfitted; the instance must be discarded rather than reused.
*/
func (w *Word2Vec) Fit(dataset *Dataset) error {
	if dataset == nil || dataset.Rows() == 0 {
		return ErrEmptyDataset
	}
	if dataset.Columns() != 1 {
		return ErrInvalidColumns
	}

	w.fitted = false
	w.vocab, w.corpus = BuildVocabulary(dataset.Column(0), w.cfg.MinCount, w.cfg.SampleRate)

	log.Infof("Built vocabulary: %d words retained, %d total occurrences",
		w.vocab.Count(), w.vocab.TotalCount)

	w.initWeights()
	w.approx.StructureSampling(w.vocab)

	for epoch := 0; epoch < w.cfg.Epochs; epoch++ {
		alpha := w.cfg.Alpha - (w.cfg.Alpha-minAlpha)*float64(epoch)/float64(w.cfg.Epochs)
		pairs := w.trainEpoch(alpha)
		log.Debugf("Epoch %d/%d: alpha=%.6f, %d pairs trained",
			epoch+1, w.cfg.Epochs, alpha, pairs)
	}

	w.normalize()
	w.fitted = true
	return nil
}

// initWeights initializes the embedding rows to small uniform random values
// centered at zero and the output layer to zero vectors.
func (w *Word2Vec) initWeights() {
	dims := w.cfg.Dimensions
	count := w.vocab.Count()

	w.vectors = make([][]float64, count)
	w.lockFactor = make([]float64, count)
	for i := range w.vectors {
		row := make([]float64, dims)
		for j := range row {
			row[j] = (w.rng.Float64() - 0.5) / float64(dims)
		}
		w.vectors[i] = row
		w.lockFactor[i] = 1
	}

	w.syn1 = make([][]float64, w.approx.OutputUnits(count))
	for i := range w.syn1 {
		w.syn1[i] = make([]float64, dims)
	}
}

// trainEpoch runs one pass over the corpus and returns the number of
// training pairs processed.
func (w *Word2Vec) trainEpoch(alpha float64) int {
	window := w.cfg.Window
	pairs := 0

	for _, sentence := range w.corpus {
		// Subsample the sentence down to its retained occurrences.
		// Out-of-vocabulary tokens are silently dropped.
		retained := make([]*VocabEntry, 0, len(sentence))
		for _, token := range sentence {
			entry := w.vocab.Entries[token]
			if entry == nil {
				continue
			}
			if entry.SampleProb > uint64(w.rng.Float64()*sampleScale) {
				retained = append(retained, entry)
			}
		}

		for pos, target := range retained {
			// Random window shrink decorrelates far and near context
			// pairs across epochs.
			reduced := w.rng.Intn(window)
			start := pos - window + reduced
			if start < 0 {
				start = 0
			}
			end := pos + window + 1 - reduced
			if end > len(retained) {
				end = len(retained)
			}

			for pos2 := start; pos2 < end; pos2++ {
				if pos2 == pos {
					continue
				}
				w.trainPair(retained[pos2].Index, target, alpha)
				pairs++
			}
		}
	}

	return pairs
}

// trainPair performs one stochastic gradient step for a (target, context)
// pair: forward sigmoid over the approximator's output rows, output-layer
// update, and accumulated delta back to the context embedding row.
func (w *Word2Vec) trainPair(contextIndex int, target *VocabEntry, alpha float64) {
	l1 := w.vectors[contextIndex]
	indices := w.approx.OutputIndices(target)
	if len(indices) == 0 {
		return
	}

	activations := make([]float64, len(indices))
	for u, idx := range indices {
		var dot float64
		row := w.syn1[idx]
		for j := range l1 {
			dot += l1[j] * row[j]
		}
		activations[u] = Sigmoid(dot)
	}

	gradient := w.approx.Gradient(activations, target, alpha)

	// The delta for l1 must be accumulated from the output rows before
	// they are updated.
	delta := make([]float64, len(l1))
	for u, idx := range indices {
		row := w.syn1[idx]
		g := gradient[u]
		for j := range row {
			delta[j] += g * row[j]
			row[j] += g * l1[j]
		}
	}

	lock := w.lockFactor[contextIndex]
	for j := range l1 {
		l1[j] += delta[j] * lock
	}
}

// normalize derives the L2-normalized copy of the embedding matrix used for
// similarity queries.
func (w *Word2Vec) normalize() {
	w.vectorsNorm = make([][]float64, len(w.vectors))
	for i, row := range w.vectors {
		norm := make([]float64, len(row))
		copy(norm, row)
		NormalizeVector(norm)
		w.vectorsNorm[i] = norm
	}
}

/*
Transform embeds a batch of raw sentences, returning one embedding vector per
sentence.

Fails with ErrNotFitted when invoked before training completes.
*/
func (w *Word2Vec) Transform(samples []string) ([][]float64, error) {
	if !w.fitted {
		return nil, ErrNotFitted
	}

	embeddings := make([][]float64, len(samples))
	for i, sample := range samples {
		embedding, err := w.EmbedSentence(sample)
		if err != nil {
			return nil, err
		}
		embeddings[i] = embedding
	}
	return embeddings, nil
}
