package query

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lexgo/model"
	"github.com/hupe1980/lexgo/postings"
)

func intersectionOf(docLists ...[]model.DocID) *Intersection[*postings.SegmentPostings] {
	docsets := make([]*postings.SegmentPostings, 0, len(docLists))
	for _, docs := range docLists {
		docsets = append(docsets, postings.FromDocs(docs))
	}
	return NewIntersection(docsets)
}

func TestIntersection(t *testing.T) {
	t.Run("two docsets", func(t *testing.T) {
		in := intersectionOf(
			[]model.DocID{1, 3, 9},
			[]model.DocID{3, 4, 9, 18},
		)
		require.True(t, in.Advance())
		assert.Equal(t, model.DocID(3), in.Doc())
		require.True(t, in.Advance())
		assert.Equal(t, model.DocID(9), in.Doc())
		assert.False(t, in.Advance())
	})

	t.Run("three docsets", func(t *testing.T) {
		in := intersectionOf(
			[]model.DocID{1, 3, 9},
			[]model.DocID{3, 4, 9, 18},
			[]model.DocID{1, 5, 9, 111},
		)
		require.True(t, in.Advance())
		assert.Equal(t, model.DocID(9), in.Doc())
		assert.False(t, in.Advance())
	})
}

func TestIntersection_Zero(t *testing.T) {
	in := intersectionOf(
		[]model.DocID{0},
		[]model.DocID{0},
	)
	require.True(t, in.Advance())
	assert.Equal(t, model.DocID(0), in.Doc())
}

func TestIntersection_Empty(t *testing.T) {
	// Pairwise overlaps exist but the three-way intersection is empty, so
	// the very first Advance must report exhaustion.
	in := intersectionOf(
		[]model.DocID{1, 3},
		[]model.DocID{1, 4},
		[]model.DocID{3, 9},
	)
	assert.False(t, in.Advance())
	assert.False(t, in.Advance())
}

func TestIntersection_ExhaustionIsTerminal(t *testing.T) {
	in := intersectionOf(
		[]model.DocID{1, 3, 9},
		[]model.DocID{3, 4, 9, 18},
	)
	require.True(t, in.Advance())
	require.True(t, in.Advance())
	assert.Equal(t, model.DocID(9), in.Doc())

	assert.False(t, in.Advance())
	assert.False(t, in.Advance())
	assert.Equal(t, model.DocID(9), in.Doc())
	assert.Equal(t, postings.SkipExhausted, in.SkipTo(100))
}

func TestIntersection_SkipTo(t *testing.T) {
	t.Run("reached", func(t *testing.T) {
		in := intersectionOf(
			[]model.DocID{0, 1, 2, 4},
			[]model.DocID{2, 5},
		)
		assert.Equal(t, postings.SkipReached, in.SkipTo(2))
		assert.Equal(t, model.DocID(2), in.Doc())
	})

	t.Run("overstepped", func(t *testing.T) {
		in := intersectionOf(
			[]model.DocID{0, 1, 2, 4, 7},
			[]model.DocID{2, 5, 7},
		)
		assert.Equal(t, postings.SkipOverStepped, in.SkipTo(3))
		assert.Equal(t, model.DocID(7), in.Doc())
	})

	t.Run("exhausted", func(t *testing.T) {
		in := intersectionOf(
			[]model.DocID{0, 1, 2, 4},
			[]model.DocID{2, 5},
		)
		assert.Equal(t, postings.SkipExhausted, in.SkipTo(3))
		assert.False(t, in.Advance())
	})
}

func TestIntersection_PermutationEquivalence(t *testing.T) {
	// Selectivity ordering is an internal concern: the produced sequence
	// must be identical for every permutation of the inputs.
	lists := [][]model.DocID{
		{1, 4, 5, 6},
		{1, 2, 5, 6},
		{1, 5, 6, 9},
	}
	want := []model.DocID{1, 5, 6}

	perms := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	for _, perm := range perms {
		in := intersectionOf(lists[perm[0]], lists[perm[1]], lists[perm[2]])
		var got []model.DocID
		for in.Advance() {
			got = append(got, in.Doc())
		}
		assert.Equal(t, want, got, "permutation %v", perm)
	}
}

func TestIntersection_SizeHint(t *testing.T) {
	in := intersectionOf(
		[]model.DocID{1, 3, 9},
		[]model.DocID{3, 4, 9, 18},
	)
	assert.Equal(t, uint32(3), in.SizeHint())
}

func TestIntersection_TooFewDocSets(t *testing.T) {
	assert.Panics(t, func() {
		NewIntersection([]*postings.SegmentPostings{
			postings.FromDocs([]model.DocID{1}),
		})
	})
}

func TestIntersection_Heterogeneous(t *testing.T) {
	// The interface itself serves as the type argument when children are of
	// different concrete types.
	in := NewIntersection([]postings.DocSet{
		postings.FromDocs([]model.DocID{1, 3, 9}),
		postings.NewBitmapPostings(roaring.BitmapOf(3, 4, 9, 18)),
	})
	require.True(t, in.Advance())
	assert.Equal(t, model.DocID(3), in.Doc())
	require.True(t, in.Advance())
	assert.Equal(t, model.DocID(9), in.Doc())
	assert.False(t, in.Advance())
}

func TestIntersection_DocSetsPositions(t *testing.T) {
	in := intersectionOf(
		[]model.DocID{1, 3, 9},
		[]model.DocID{3, 4, 9, 18},
	)
	require.True(t, in.Advance())

	// Children are parked on the intersected document.
	for _, child := range in.DocSets() {
		assert.Equal(t, in.Doc(), child.Doc())
	}
}
