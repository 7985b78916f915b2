package postings_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/lexgo/model"
	"github.com/hupe1980/lexgo/postings"
	"github.com/hupe1980/lexgo/testutil"
)

func TestSegmentPostings_SkipAgainstStepped(t *testing.T) {
	docs := []model.DocID{1, 2, 3, 10, 11, 30, 50, 90, 91, 120}
	testutil.CheckSkipAgainstStepped(t,
		func() postings.DocSet { return postings.FromDocs(docs) },
		[]model.DocID{0, 1, 2, 4, 10, 12, 50, 89, 90, 91, 119, 120, 121, 500},
	)
}

func TestBitmapPostings_SkipAgainstStepped(t *testing.T) {
	bm := roaring.BitmapOf(1, 2, 3, 10, 11, 30, 50, 90, 91, 120)
	testutil.CheckSkipAgainstStepped(t,
		func() postings.DocSet { return postings.NewBitmapPostings(bm) },
		[]model.DocID{0, 1, 2, 4, 10, 12, 50, 89, 90, 91, 119, 120, 121, 500},
	)
}
