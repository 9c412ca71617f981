package word2vec

import (
	"errors"
	"testing"
)

func TestWordVectorUnknown(t *testing.T) {
	w2v := trainTestModel(t, testConfig())

	vector, found, err := w2v.WordVector("zeppelin", true)
	if err != nil {
		t.Fatalf("WordVector failed: %v", err)
	}
	if found {
		t.Error("Expected unknown word to be reported absent")
	}
	if vector != nil {
		t.Error("Expected nil vector for unknown word")
	}
}

func TestWordVectorIdempotent(t *testing.T) {
	w2v := trainTestModel(t, testConfig())

	first, _, err := w2v.WordVector("dog", true)
	if err != nil {
		t.Fatalf("WordVector failed: %v", err)
	}
	second, _, err := w2v.WordVector("dog", true)
	if err != nil {
		t.Fatalf("WordVector failed: %v", err)
	}

	for j := range first {
		if first[j] != second[j] {
			t.Fatalf("Repeated reads differ at dimension %d", j)
		}
	}

	// Mutating the returned vector must not affect the model
	first[0] = 999
	third, _, _ := w2v.WordVector("dog", true)
	if third[0] == 999 {
		t.Error("Returned vector aliases internal state")
	}
}

func TestEmbedWordUnknown(t *testing.T) {
	w2v := trainTestModel(t, testConfig())

	vector, err := w2v.EmbedWord("zeppelin", true)
	if err != nil {
		t.Fatalf("EmbedWord must never fail on unknown words: %v", err)
	}
	if len(vector) != w2v.Config().Dimensions {
		t.Fatalf("Expected dimension %d, got %d", w2v.Config().Dimensions, len(vector))
	}
	for _, v := range vector {
		if v != 0 {
			t.Error("Expected zero vector for unknown word")
			break
		}
	}
}

func TestEmbedSentence(t *testing.T) {
	w2v := trainTestModel(t, testConfig())

	embedding, err := w2v.EmbedSentence("The quick dog!")
	if err != nil {
		t.Fatalf("EmbedSentence failed: %v", err)
	}
	if len(embedding) != w2v.Config().Dimensions {
		t.Fatalf("Expected dimension %d, got %d", w2v.Config().Dimensions, len(embedding))
	}

	// At least one component differs from zero for a known sentence
	allZero := true
	for _, v := range embedding {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Error("Expected non-zero embedding for known sentence")
	}

	// An empty sentence degenerates to the zero vector
	empty, err := w2v.EmbedSentence("")
	if err != nil {
		t.Fatalf("EmbedSentence failed on empty input: %v", err)
	}
	for _, v := range empty {
		if v != 0 {
			t.Error("Expected zero vector for empty sentence")
			break
		}
	}
}

func TestMostSimilarNoKnownWords(t *testing.T) {
	w2v := trainTestModel(t, testConfig())

	if _, err := w2v.MostSimilar([]string{"zeppelin", "dirigible"}, nil, 10); !errors.Is(err, ErrNoKnownWords) {
		t.Errorf("Expected ErrNoKnownWords, got %v", err)
	}
}

func TestMostSimilarExcludesInputs(t *testing.T) {
	w2v := trainTestModel(t, testConfig())

	results, err := w2v.MostSimilar([]string{"quick", "dog"}, []string{"lazy"}, 20)
	if err != nil {
		t.Fatalf("MostSimilar failed: %v", err)
	}

	for _, result := range results {
		switch result.Word {
		case "quick", "dog", "lazy":
			t.Errorf("Input word %q must not appear in the ranking", result.Word)
		}
	}
}

func TestMostSimilarTopK(t *testing.T) {
	w2v := trainTestModel(t, testConfig())

	results, err := w2v.MostSimilar([]string{"dog"}, nil, 3)
	if err != nil {
		t.Fatalf("MostSimilar failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Expected 3 results, got %d", len(results))
	}
}

func TestMostSimilarSkipsUnknownInputs(t *testing.T) {
	w2v := trainTestModel(t, testConfig())

	// Unknown input words are skipped, not fatal
	results, err := w2v.MostSimilar([]string{"dog", "zeppelin"}, nil, 5)
	if err != nil {
		t.Fatalf("MostSimilar failed: %v", err)
	}
	if len(results) == 0 {
		t.Error("Expected results when at least one input word is known")
	}
}

func TestQueriesBeforeFit(t *testing.T) {
	w2v, err := NewWord2Vec(testConfig())
	if err != nil {
		t.Fatalf("Failed to create trainer: %v", err)
	}

	if _, _, err := w2v.WordVector("dog", true); !errors.Is(err, ErrNotFitted) {
		t.Errorf("WordVector: expected ErrNotFitted, got %v", err)
	}
	if _, err := w2v.EmbedWord("dog", true); !errors.Is(err, ErrNotFitted) {
		t.Errorf("EmbedWord: expected ErrNotFitted, got %v", err)
	}
	if _, err := w2v.EmbedSentence("the quick dog"); !errors.Is(err, ErrNotFitted) {
		t.Errorf("EmbedSentence: expected ErrNotFitted, got %v", err)
	}
	if _, err := w2v.MostSimilar([]string{"dog"}, nil, 5); !errors.Is(err, ErrNotFitted) {
		t.Errorf("MostSimilar: expected ErrNotFitted, got %v", err)
	}
}

func TestAnalogyQuery(t *testing.T) {
	w2v := trainTestModel(t, testConfig())

	// king - man + woman style query shape: positives and negatives combine
	// into one weighted mean
	results, err := w2v.MostSimilar([]string{"quick", "fast"}, []string{"lazy"}, 5)
	if err != nil {
		t.Fatalf("Analogy query failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("Expected analogy results")
	}
	for _, result := range results {
		switch result.Word {
		case "quick", "fast", "lazy":
			t.Errorf("Input word %q must not appear in the analogy ranking", result.Word)
		}
	}
}
