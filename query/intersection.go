package query

import (
	"sort"

	"github.com/hupe1980/lexgo/model"
	"github.com/hupe1980/lexgo/postings"
)

// Intersection is a DocSet iterating through the ordered intersection of
// its child DocSets.
//
// At construction the children are sorted ascending by SizeHint and never
// reordered afterwards: skipping is driven by the most selective set first,
// which produces the largest forward jumps and minimizes the total number
// of SkipTo calls. The type parameter allows monomorphizing the hot loop
// over a concrete child type; instantiate it with the postings.DocSet
// interface itself for heterogeneous trees.
type Intersection[T postings.DocSet] struct {
	docsets  []T
	finished bool
	doc      model.DocID
}

// Ensure Intersection implements DocSet
var _ postings.DocSet = (*Intersection[postings.DocSet])(nil)

// NewIntersection creates an intersection over the given children. The
// slice is reordered in place by selectivity. It panics when fewer than two
// children are supplied; an intersection of less than two sets is a
// programmer error, not a runtime condition.
func NewIntersection[T postings.DocSet](docsets []T) *Intersection[T] {
	if len(docsets) < 2 {
		panic("query: intersection requires at least two docsets")
	}
	sort.SliceStable(docsets, func(i, j int) bool {
		return docsets[i].SizeHint() < docsets[j].SizeHint()
	})
	return &Intersection[T]{docsets: docsets}
}

// DocSets returns the children in selectivity order. They are parked at the
// same position as the intersection itself, so callers can read their
// per-child state (e.g. term frequencies) for the current document.
func (in *Intersection[T]) DocSets() []T {
	return in.docsets
}

// Advance moves to the next document present in every child.
//
// The loop narrows a candidate id: every child except the one that proposed
// the candidate is skipped to it. A child that oversteps proposes its new
// position as the next candidate and the scan restarts. The proposing child
// is excluded from the scan because it is already parked exactly on the
// candidate; skipping it again would advance it past the document and lose
// it. Each restart strictly increases the candidate, so the loop terminates.
func (in *Intersection[T]) Advance() bool {
	if in.finished {
		return false
	}

	candidate := in.doc
	candidateOrd := len(in.docsets)

outer:
	for {
		for ord := range in.docsets {
			if ord == candidateOrd {
				continue
			}
			switch in.docsets[ord].SkipTo(candidate) {
			case postings.SkipReached:
			case postings.SkipOverStepped:
				candidate = in.docsets[ord].Doc()
				candidateOrd = ord
				continue outer
			case postings.SkipExhausted:
				// One child out of documents means no further
				// intersection is possible, permanently.
				in.finished = true
				return false
			}
		}

		in.doc = candidate
		return true
	}
}

// SkipTo moves to the first document >= target present in every child. It
// runs the same candidate-narrowing loop as Advance, seeded with the target
// instead of the current position.
func (in *Intersection[T]) SkipTo(target model.DocID) postings.SkipResult {
	if in.finished {
		return postings.SkipExhausted
	}

	candidate := target
	candidateOrd := len(in.docsets)

outer:
	for {
		for ord := range in.docsets {
			if ord == candidateOrd {
				continue
			}
			switch in.docsets[ord].SkipTo(candidate) {
			case postings.SkipReached:
			case postings.SkipOverStepped:
				candidate = in.docsets[ord].Doc()
				candidateOrd = ord
				continue outer
			case postings.SkipExhausted:
				in.finished = true
				return postings.SkipExhausted
			}
		}

		in.doc = candidate
		if candidate == target {
			return postings.SkipReached
		}
		return postings.SkipOverStepped
	}
}

// Doc returns the current intersected document id.
func (in *Intersection[T]) Doc() model.DocID {
	return in.doc
}

// SizeHint returns the minimum of the children's estimates; the
// intersection can never exceed its smallest member.
func (in *Intersection[T]) SizeHint() uint32 {
	hint := in.docsets[0].SizeHint()
	for _, d := range in.docsets[1:] {
		if h := d.SizeHint(); h < hint {
			hint = h
		}
	}
	return hint
}

// ScoredIntersection is an Intersection whose children are Scorers.
type ScoredIntersection[T Scorer] struct {
	Intersection[T]
}

// Ensure ScoredIntersection implements Scorer
var _ Scorer = (*ScoredIntersection[Scorer])(nil)

// NewScoredIntersection creates a scoring intersection over the given
// children. Construction rules are those of NewIntersection.
func NewScoredIntersection[T Scorer](scorers []T) *ScoredIntersection[T] {
	return &ScoredIntersection[T]{Intersection: *NewIntersection(scorers)}
}

// Score returns the sum of the children's scores for the current document.
func (in *ScoredIntersection[T]) Score() model.Score {
	var total model.Score
	for i := range in.docsets {
		total += in.docsets[i].Score()
	}
	return total
}
