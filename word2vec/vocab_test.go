package word2vec

import (
	"testing"
)

func TestCleanTokens(t *testing.T) {
	tests := []struct {
		input  string
		expect []string
	}{
		{"The quick brown fox!", []string{"the", "quick", "brown", "fox"}},
		{"Hello,   World...", []string{"hello", "world"}},
		{"it's a test", []string{"its", "a", "test"}},
		{"", nil},
		{"   ", nil},
		{"!!!", nil},
	}

	for _, test := range tests {
		got := CleanTokens(test.input)
		if len(got) != len(test.expect) {
			t.Errorf("CleanTokens(%q) = %v, expected %v", test.input, got, test.expect)
			continue
		}
		for i := range got {
			if got[i] != test.expect[i] {
				t.Errorf("CleanTokens(%q)[%d] = %q, expected %q", test.input, i, got[i], test.expect[i])
			}
		}
	}
}

func TestBuildVocabulary(t *testing.T) {
	sentences := []string{
		"the quick brown fox jumped over the lazy dog",
		"the quick dog runs fast",
	}

	vocab, corpus := BuildVocabulary(sentences, 1, 0)

	if len(corpus) != 2 {
		t.Fatalf("Expected 2 tokenized sentences, got %d", len(corpus))
	}
	if len(corpus[0]) != 9 {
		t.Errorf("Expected 9 tokens in first sentence, got %d", len(corpus[0]))
	}

	// 10 distinct words in the corpus
	if vocab.Count() != 10 {
		t.Errorf("Expected 10 vocabulary words, got %d", vocab.Count())
	}

	// "the" occurs 3 times and must hold index 0 after the frequency sort
	entry := vocab.Entry("the")
	if entry == nil {
		t.Fatal("Expected 'the' in vocabulary")
	}
	if entry.Count != 3 {
		t.Errorf("Expected count 3 for 'the', got %d", entry.Count)
	}
	if entry.Index != 0 {
		t.Errorf("Expected index 0 for 'the', got %d", entry.Index)
	}

	// Counts must be non-increasing along the index order
	for i := 1; i < vocab.Count(); i++ {
		prev := vocab.Entries[vocab.Words[i-1]]
		curr := vocab.Entries[vocab.Words[i]]
		if prev.Count < curr.Count {
			t.Errorf("Counts not sorted descending at index %d: %d < %d", i, prev.Count, curr.Count)
		}
	}

	// Index -> word table must agree with the entries
	for word, entry := range vocab.Entries {
		if vocab.Words[entry.Index] != word {
			t.Errorf("Words[%d] = %q, expected %q", entry.Index, vocab.Words[entry.Index], word)
		}
	}

	// Total count is the sum of retained counts
	total := 0
	for _, entry := range vocab.Entries {
		total += entry.Count
	}
	if vocab.TotalCount != total {
		t.Errorf("Expected total count %d, got %d", total, vocab.TotalCount)
	}
}

func TestBuildVocabularyMinCount(t *testing.T) {
	sentences := []string{
		"the quick brown fox jumped over the lazy dog",
		"the quick dog runs fast",
	}

	vocab, _ := BuildVocabulary(sentences, 2, 0)

	// Only "the" (3), "quick" (2) and "dog" (2) survive the prune
	if vocab.Count() != 3 {
		t.Fatalf("Expected 3 vocabulary words with minCount=2, got %d", vocab.Count())
	}
	for _, word := range []string{"the", "quick", "dog"} {
		if vocab.Entry(word) == nil {
			t.Errorf("Expected %q to survive the prune", word)
		}
	}
	if vocab.Entry("fox") != nil {
		t.Error("Expected 'fox' to be pruned")
	}
}

func TestSubsamplingDisabled(t *testing.T) {
	sentences := []string{"the quick brown fox", "the quick dog"}

	// sampleRate 0 means no downsampling: every retention probability
	// clamps to 1
	vocab, _ := BuildVocabulary(sentences, 1, 0)

	full := uint64(1) << 32
	for word, entry := range vocab.Entries {
		if entry.SampleProb != full {
			t.Errorf("Expected full retention for %q, got %d", word, entry.SampleProb)
		}
	}
}

func TestSubsamplingProbabilities(t *testing.T) {
	sentences := []string{
		"the the the the the the the the the the cat sat",
	}

	vocab, _ := BuildVocabulary(sentences, 1, 0.1)

	full := uint64(1) << 32
	frequent := vocab.Entry("the")
	rare := vocab.Entry("cat")

	if frequent.SampleProb >= full {
		t.Errorf("Expected frequent word to be downsampled, got %d", frequent.SampleProb)
	}
	if rare.SampleProb != full {
		t.Errorf("Expected rare word to be fully retained, got %d", rare.SampleProb)
	}
	if frequent.SampleProb == 0 {
		t.Error("Retention probability must stay positive")
	}
}
