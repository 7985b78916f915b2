package postings

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/lexgo/model"
)

// BitmapPostings iterates over a posting list backed by a Roaring bitmap.
// Bitmaps carry no per-document frequencies, so TermFreq always reports 1;
// use this representation for fields indexed with presence only.
type BitmapPostings struct {
	it   roaring.IntPeekable
	size uint32
	doc  model.DocID
}

// Ensure BitmapPostings implements Postings
var _ Postings = (*BitmapPostings)(nil)

// NewBitmapPostings creates a cursor over the given bitmap. The bitmap must
// not be mutated while the cursor is in use.
func NewBitmapPostings(bm *roaring.Bitmap) *BitmapPostings {
	return &BitmapPostings{
		it:   bm.Iterator(),
		size: uint32(bm.GetCardinality()),
	}
}

// Advance moves to the next posting.
func (p *BitmapPostings) Advance() bool {
	if !p.it.HasNext() {
		return false
	}
	p.doc = model.DocID(p.it.Next())
	return true
}

// SkipTo moves to the first posting with a document id >= target.
func (p *BitmapPostings) SkipTo(target model.DocID) SkipResult {
	if !p.Advance() {
		return SkipExhausted
	}
	if p.doc >= target {
		return skipResultFor(p.doc, target)
	}

	p.it.AdvanceIfNeeded(uint32(target))
	if !p.it.HasNext() {
		return SkipExhausted
	}
	p.doc = model.DocID(p.it.Next())

	return skipResultFor(p.doc, target)
}

// Doc returns the current document id.
func (p *BitmapPostings) Doc() model.DocID {
	return p.doc
}

// SizeHint returns the cardinality of the bitmap.
func (p *BitmapPostings) SizeHint() uint32 {
	return p.size
}

// TermFreq returns 1; bitmaps record presence, not frequency.
func (p *BitmapPostings) TermFreq() uint32 {
	return 1
}
