package lexgo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/lexgo/fastfield"
	"github.com/hupe1980/lexgo/model"
	"github.com/hupe1980/lexgo/postings"
	"github.com/hupe1980/lexgo/query"
)

// DefaultMaxSegmentSize is the number of documents a segment holds before
// the index rolls over to a new one.
const DefaultMaxSegmentSize = 1 << 16

// postingList accumulates one term's postings within a segment. Documents
// are appended in increasing DocID order as they are added.
type postingList struct {
	docs  []model.DocID
	freqs []uint32
}

// segment is one immutable-once-full slice of the index. Document ids are
// segment-local; base maps them into the global id space.
type segment struct {
	base       uint64
	inverted   map[string]*postingList
	fieldnorms []uint8
}

func newSegment(base uint64) *segment {
	return &segment{
		base:     base,
		inverted: make(map[string]*postingList),
	}
}

func (s *segment) numDocs() uint32 {
	return uint32(len(s.fieldnorms))
}

// search evaluates a conjunctive query against this segment and returns all
// matching candidates. A query term absent from the segment short-circuits
// to no matches.
func (s *segment) search(terms []string, sim query.Similarity) []model.Candidate {
	docCount := s.numDocs()
	if docCount == 0 {
		return nil
	}

	norms := fastfield.FromValues(s.fieldnorms)

	scorers := make([]*query.TermScorer, 0, len(terms))
	for _, t := range terms {
		pl, ok := s.inverted[t]
		if !ok {
			return nil
		}
		scorers = append(scorers, &query.TermScorer{
			Postings:   postings.NewSegmentPostings(pl.docs, pl.freqs),
			Fieldnorms: norms,
			IDF:        query.IDF(uint32(len(pl.docs)), docCount),
			Similarity: sim,
		})
	}

	var root query.Scorer
	if len(scorers) == 1 {
		root = scorers[0]
	} else {
		root = query.NewScoredIntersection(scorers)
	}

	var candidates []model.Candidate
	for root.Advance() {
		candidates = append(candidates, model.Candidate{
			Doc:   s.base + uint64(root.Doc()),
			Score: root.Score(),
		})
	}

	return candidates
}

// Index is a simple in-memory conjunctive search index.
//
// Documents are tokenized by lowercasing and splitting on whitespace; each
// document's token count is recorded as its fieldnorm. Documents accumulate
// into segments of at most maxSegmentSize; search builds an independent
// iterator tree per segment and fans out across them.
//
// The index is safe for concurrent reads and writes.
type Index struct {
	mu       sync.RWMutex
	opts     options
	segments []*segment
	numDocs  uint64
	closed   bool
}

// New creates a new Index.
func New(optFns ...Option) *Index {
	opts := options{
		logger:         NoopLogger(),
		maxSegmentSize: DefaultMaxSegmentSize,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Index{opts: opts}
}

func tokenize(text string) []string {
	// Very simple tokenizer: lowercase and split by whitespace
	return strings.Fields(strings.ToLower(text))
}

// Add adds a document to the index and returns its global document id.
func (idx *Index) Add(text string) (uint64, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.closed {
		return 0, ErrClosed
	}

	seg := idx.activeSegment()
	doc := model.DocID(seg.numDocs())

	tokens := tokenize(text)

	tf := make(map[string]uint32, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}

	for t, count := range tf {
		pl, ok := seg.inverted[t]
		if !ok {
			pl = &postingList{}
			seg.inverted[t] = pl
		}
		pl.docs = append(pl.docs, doc)
		pl.freqs = append(pl.freqs, count)
	}

	// Fieldnorms are stored in 8 bits; longer documents saturate.
	norm := len(tokens)
	if norm > 255 {
		norm = 255
	}
	seg.fieldnorms = append(seg.fieldnorms, uint8(norm))

	idx.numDocs++

	globalID := seg.base + uint64(doc)
	idx.opts.logger.LogAdd(globalID, len(tokens))

	return globalID, nil
}

func (idx *Index) activeSegment() *segment {
	if n := len(idx.segments); n > 0 {
		seg := idx.segments[n-1]
		if int(seg.numDocs()) < idx.opts.maxSegmentSize {
			return seg
		}
	}

	seg := newSegment(idx.numDocs)
	idx.segments = append(idx.segments, seg)

	return seg
}

// Search evaluates text as a conjunctive query and returns the k highest
// scoring documents, best first. Every query term must occur in a document
// for it to match. An empty query matches nothing.
func (idx *Index) Search(ctx context.Context, text string, k int) ([]model.Candidate, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.closed {
		return nil, ErrClosed
	}

	terms := dedupe(tokenize(text))
	if len(terms) == 0 {
		return nil, nil
	}

	// One independent iterator tree per segment; no state is shared across
	// the goroutines except the read lock held by this call.
	perSegment := make([][]model.Candidate, len(idx.segments))

	g, ctx := errgroup.WithContext(ctx)
	for i, seg := range idx.segments {
		i, seg := i, seg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perSegment[i] = seg.search(terms, idx.opts.similarity)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		idx.opts.logger.LogSearch(ctx, len(terms), k, 0, err)
		return nil, err
	}

	var candidates []model.Candidate
	for _, res := range perSegment {
		candidates = append(candidates, res...)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Doc < candidates[j].Doc
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	idx.opts.logger.LogSearch(ctx, len(terms), k, len(candidates), nil)

	return candidates, nil
}

// NumDocs returns the number of documents in the index.
func (idx *Index) NumDocs() uint64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.numDocs
}

// Close closes the index. Further calls to Add and Search return ErrClosed.
func (idx *Index) Close() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.closed = true

	return nil
}

// dedupe removes duplicate terms, preserving first-seen order. A duplicated
// query term adds nothing to a conjunction.
func dedupe(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := terms[:0]
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
