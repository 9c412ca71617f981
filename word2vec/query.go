package word2vec

import "sort"

// defaultTopK is the number of results returned by MostSimilar when no
// positive count is requested
const defaultTopK = 20

/*
WordSimilarity represents a word and its similarity score to the query
*/
type WordSimilarity struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

/*
WordVector returns a copy of the embedding for a word.

The second return value is false when the word is not in the vocabulary;
an absent word is not an error. With useNorm the L2-normalized vector is
returned, otherwise the raw trained vector.
*/
func (w *Word2Vec) WordVector(word string, useNorm bool) ([]float64, bool, error) {
	if !w.fitted {
		return nil, false, ErrNotFitted
	}

	entry := w.vocab.Entries[word]
	if entry == nil {
		return nil, false, nil
	}

	src := w.vectors[entry.Index]
	if useNorm {
		src = w.vectorsNorm[entry.Index]
	}

	vector := make([]float64, len(src))
	copy(vector, src)
	return vector, true, nil
}

/*
EmbedWord returns the embedding for a word, or a zero vector of the
configured dimension when the word is out of vocabulary
*/
func (w *Word2Vec) EmbedWord(word string, useNorm bool) ([]float64, error) {
	vector, found, err := w.WordVector(word, useNorm)
	if err != nil {
		return nil, err
	}
	if !found {
		return make([]float64, w.cfg.Dimensions), nil
	}
	return vector, nil
}

/*
EmbedSentence cleans and tokenizes a sentence with the training procedure,
maps every token through EmbedWord and returns the mean over the token axis.

A sentence with no recognized tokens returns the zero vector.
*/
func (w *Word2Vec) EmbedSentence(sentence string) ([]float64, error) {
	if !w.fitted {
		return nil, ErrNotFitted
	}

	tokens := CleanTokens(sentence)
	vectors := make([][]float64, len(tokens))
	for i, token := range tokens {
		vector, err := w.EmbedWord(token, true)
		if err != nil {
			return nil, err
		}
		vectors[i] = vector
	}

	return MeanVector(vectors, w.cfg.Dimensions), nil
}

/*
MostSimilar ranks the vocabulary against a weighted mean of the normalized
vectors for the positive (weight +1) and negative (weight -1) words.

Input words absent from the vocabulary are skipped; fails with
ErrNoKnownWords when none is found. The input words themselves are excluded
from the ranking. Results are ordered by descending score.
*/
func (w *Word2Vec) MostSimilar(positive, negative []string, topK int) ([]WordSimilarity, error) {
	if !w.fitted {
		return nil, ErrNotFitted
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	dims := w.cfg.Dimensions
	mean := make([]float64, dims)
	exclude := make(map[string]bool, len(positive)+len(negative))
	found := 0

	for _, word := range positive {
		exclude[word] = true
		if vector, ok, _ := w.WordVector(word, true); ok {
			for j := range mean {
				mean[j] += vector[j]
			}
			found++
		}
	}
	for _, word := range negative {
		exclude[word] = true
		if vector, ok, _ := w.WordVector(word, true); ok {
			for j := range mean {
				mean[j] -= vector[j]
			}
			found++
		}
	}

	if found == 0 {
		return nil, ErrNoKnownWords
	}

	for j := range mean {
		mean[j] /= float64(found)
	}

	results := make([]WordSimilarity, 0, w.vocab.Count())
	for i, word := range w.vocab.Words {
		if exclude[word] {
			continue
		}
		var score float64
		for j, v := range w.vectorsNorm[i] {
			score += v * mean[j]
		}
		results = append(results, WordSimilarity{Word: word, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}
