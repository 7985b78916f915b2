package postings

import (
	"fmt"
	"sort"

	"github.com/hupe1980/lexgo/model"
)

// SegmentPostings iterates over a single term's posting list held in
// memory: a sorted slice of document ids plus, when the field records them,
// a parallel slice of term frequencies.
type SegmentPostings struct {
	docs   []model.DocID
	freqs  []uint32 // nil when the field omits frequencies
	cursor int
	doc    model.DocID
}

// Ensure SegmentPostings implements Postings
var _ Postings = (*SegmentPostings)(nil)

// NewSegmentPostings creates a cursor over the given posting list. docs
// must be sorted in strictly increasing order. freqs may be nil; when
// non-nil it must be parallel to docs.
func NewSegmentPostings(docs []model.DocID, freqs []uint32) *SegmentPostings {
	if freqs != nil && len(freqs) != len(docs) {
		panic(fmt.Sprintf("postings: %d docs but %d freqs", len(docs), len(freqs)))
	}
	return &SegmentPostings{
		docs:   docs,
		freqs:  freqs,
		cursor: -1,
	}
}

// FromDocs creates a frequency-less cursor over the given document ids.
func FromDocs(docs []model.DocID) *SegmentPostings {
	return NewSegmentPostings(docs, nil)
}

// Advance moves to the next posting.
func (p *SegmentPostings) Advance() bool {
	if p.cursor+1 >= len(p.docs) {
		p.cursor = len(p.docs)
		return false
	}
	p.cursor++
	p.doc = p.docs[p.cursor]
	return true
}

// SkipTo moves to the first posting with a document id >= target.
func (p *SegmentPostings) SkipTo(target model.DocID) SkipResult {
	if !p.Advance() {
		return SkipExhausted
	}
	if p.doc >= target {
		return skipResultFor(p.doc, target)
	}

	// Binary search the remaining tail. Postings are sorted, so this beats
	// stepping when the jump is large.
	tail := p.docs[p.cursor+1:]
	n := sort.Search(len(tail), func(i int) bool { return tail[i] >= target })
	if n == len(tail) {
		p.cursor = len(p.docs)
		return SkipExhausted
	}

	p.cursor += n + 1
	p.doc = p.docs[p.cursor]

	return skipResultFor(p.doc, target)
}

// Doc returns the current document id.
func (p *SegmentPostings) Doc() model.DocID {
	return p.doc
}

// SizeHint returns the length of the posting list.
func (p *SegmentPostings) SizeHint() uint32 {
	return uint32(len(p.docs))
}

// TermFreq returns the term frequency in the current document.
func (p *SegmentPostings) TermFreq() uint32 {
	if p.freqs == nil {
		return 1
	}
	return p.freqs[p.cursor]
}
