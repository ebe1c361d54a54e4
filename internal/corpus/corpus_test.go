package corpus

import (
	"testing"

	"github.com/wizenheimer/freqidx"
)

func TestCorpusBuildProducesSearchableIndex(t *testing.T) {
	c := NewCorpus(1)
	c.AddDocument("The quick brown fox jumps over the lazy dog")
	c.AddDocument("A quick brown dog outpaces a quick fox")
	c.AddDocument("Completely unrelated text about gardening")

	idx, vocabulary, err := c.Build(freqidx.DefaultGlobalParameters())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if idx.NumDocs() != 3 {
		t.Fatalf("NumDocs() = %d, want 3", idx.NumDocs())
	}
	if idx.Size() != len(vocabulary) {
		t.Fatalf("Size() = %d, want len(vocabulary) = %d", idx.Size(), len(vocabulary))
	}

	termID := -1
	for i, term := range vocabulary {
		if term == "quick" {
			termID = i
			break
		}
	}
	if termID == -1 {
		t.Fatal("expected \"quick\" in vocabulary after stemming/stopwording")
	}

	bm := freqidx.TermBitmap(idx, termID)
	if !bm.Contains(0) || !bm.Contains(1) {
		t.Fatalf("expected docs 0 and 1 to contain \"quick\", bitmap = %v", bm.ToArray())
	}
	if bm.Contains(2) {
		t.Fatal("doc 2 should not contain \"quick\"")
	}
}

func TestCorpusVocabularyIsSorted(t *testing.T) {
	c := NewCorpus(7)
	c.AddDocument("zebra yak apple mango")
	_, vocabulary, err := c.Build(freqidx.DefaultGlobalParameters())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 1; i < len(vocabulary); i++ {
		if vocabulary[i-1] >= vocabulary[i] {
			t.Fatalf("vocabulary not sorted: %v", vocabulary)
		}
	}
}

func TestCorpusBuildsEmptyIndexFromEmptyDocumentSet(t *testing.T) {
	c := NewCorpus(3)
	idx, vocabulary, err := c.Build(freqidx.DefaultGlobalParameters())
	if err != nil {
		t.Fatalf("Build on empty corpus: %v", err)
	}
	if idx.Size() != 0 || len(vocabulary) != 0 {
		t.Fatalf("expected empty index/vocabulary, got size=%d vocabulary=%v", idx.Size(), vocabulary)
	}
}
