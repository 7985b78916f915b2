package query

import (
	"math"

	"github.com/hupe1980/lexgo/fastfield"
	"github.com/hupe1980/lexgo/model"
	"github.com/hupe1980/lexgo/postings"
)

// Similarity maps a term frequency to its contribution factor in a term
// score. It must satisfy Similarity(1) == 1 so that a single occurrence in
// an unnormalized field scores exactly the term's idf weight.
type Similarity func(termFreq uint32) model.Score

// DefaultSimilarity is sqrt(tf): repeated occurrences raise the score
// sub-linearly, and a single occurrence contributes a factor of exactly 1.
func DefaultSimilarity(termFreq uint32) model.Score {
	return model.Score(math.Sqrt(float64(termFreq)))
}

// IDF returns the inverse-document-frequency weight of a term occurring in
// docFreq out of docCount documents. Rarer terms weigh more.
func IDF(docFreq, docCount uint32) model.Score {
	return model.Score(1.0 + math.Log(float64(docCount)/float64(docFreq+1)))
}

// TermScorer scores the documents of a single term's posting list. It is a
// thin decorator over the postings cursor: all positioning is delegated
// unchanged, and Score combines the precomputed idf weight with the current
// document's term frequency and optional fieldnorm.
type TermScorer struct {
	// Postings is the term's postings cursor.
	Postings postings.Postings
	// Fieldnorms is the per-document length lookup. Nil when the field was
	// not configured to store lengths; scores are then unnormalized.
	Fieldnorms *fastfield.Reader
	// IDF is the term's idf weight, computed once before iteration begins.
	IDF model.Score
	// Similarity is the term-frequency saturation function. Nil means
	// DefaultSimilarity.
	Similarity Similarity
}

// Ensure TermScorer implements Scorer
var _ Scorer = (*TermScorer)(nil)

// NewTermScorer creates a scorer over the given postings with the default
// similarity. fieldnorms may be nil.
func NewTermScorer(p postings.Postings, idf model.Score, fieldnorms *fastfield.Reader) *TermScorer {
	return &TermScorer{
		Postings:   p,
		Fieldnorms: fieldnorms,
		IDF:        idf,
	}
}

// Advance moves to the next posting.
func (s *TermScorer) Advance() bool {
	return s.Postings.Advance()
}

// SkipTo moves to the first posting with a document id >= target.
func (s *TermScorer) SkipTo(target model.DocID) postings.SkipResult {
	return s.Postings.SkipTo(target)
}

// Doc returns the current document id.
func (s *TermScorer) Doc() model.DocID {
	return s.Postings.Doc()
}

// SizeHint returns the postings cursor's estimate.
func (s *TermScorer) SizeHint() uint32 {
	return s.Postings.SizeHint()
}

// TermFreq returns the term frequency in the current document.
func (s *TermScorer) TermFreq() uint32 {
	return s.Postings.TermFreq()
}

// Score returns idf * similarity(tf), divided by the square root of the
// current document's fieldnorm when lengths are stored. Longer documents
// are penalized, shorter ones favored.
func (s *TermScorer) Score() model.Score {
	sim := s.Similarity
	if sim == nil {
		sim = DefaultSimilarity
	}

	score := s.IDF * sim(s.Postings.TermFreq())
	if s.Fieldnorms != nil {
		fieldnorm := s.Fieldnorms.Get(s.Postings.Doc())
		score /= model.Score(math.Sqrt(float64(fieldnorm)))
	}

	return score
}
