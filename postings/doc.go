// Package postings provides the iteration layer over inverted-index
// posting lists.
//
// A DocSet is a forward-only cursor over a strictly increasing sequence of
// document ids. On top of stepping (Advance), every DocSet can jump
// directly to or past a target id (SkipTo); the tri-state SkipResult tells
// the caller whether the target itself was found. Skipping is what makes
// multi-way boolean evaluation cheap: an intersection drives its children
// with SkipTo instead of stepping each of them one document at a time.
//
// # Implementations
//
//   - SegmentPostings: a posting list held as sorted slices, with optional
//     per-document term frequencies
//   - BitmapPostings: a posting list backed by a Roaring bitmap, for fields
//     indexed without term frequencies
//
// Composed iterators (see the query package) implement the same interface,
// so a whole boolean tree is itself a DocSet.
package postings
