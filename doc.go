// Package lexgo provides an embeddable full-text search core for Go.
//
// Lexgo evaluates conjunctive (boolean AND) queries over inverted-index
// posting lists and ranks the matches with idf weighting and fieldnorm
// length normalization. The iteration layer lives in the postings package,
// the combinators and scoring in the query package; this package ties them
// together behind a small in-memory index.
//
// # Quick Start
//
//	idx := lexgo.New()
//	idx.Add("the quick brown fox")
//	idx.Add("quick brown dogs")
//
//	// AND semantics: only documents containing every term match.
//	results, _ := idx.Search(ctx, "quick brown", 10)
//
// # Building query trees directly
//
// The index is a convenience. The iteration and scoring layers are usable
// on their own: anything implementing postings.DocSet can be a child of
// query.Intersection, and the composite is again a DocSet, so larger
// boolean trees compose transparently.
//
//	left := postings.FromDocs([]model.DocID{1, 3, 9})
//	right := postings.FromDocs([]model.DocID{3, 4, 9, 18})
//	in := query.NewIntersection([]postings.DocSet{left, right})
//	for in.Advance() {
//	    fmt.Println(in.Doc()) // 3, 9
//	}
package lexgo
