// Package query composes postings iterators into boolean query evaluators
// and scores the documents they yield.
//
// The two building blocks are:
//
//   - Intersection: a DocSet over the ordered intersection (boolean AND) of
//     two or more child DocSets, driven by a skip-synchronization protocol
//   - TermScorer: a Scorer decorating one term's postings with an idf
//     weight and optional fieldnorm length normalization
//
// A ScoredIntersection of TermScorers is a complete conjunctive query: the
// caller advances it like any DocSet and reads Score for each match.
package query
