package model

import "fmt"

// DocID is a dense, segment-local document identifier.
// It is strictly 32-bit, allowing for max 4 billion documents per segment,
// and is assigned in increasing order as documents are added.
type DocID uint32

// MaxDocID is the maximum possible value for a DocID.
const MaxDocID = ^DocID(0)

// Score is a relevance score. Higher is more relevant.
type Score float32

// Candidate represents a match found during search.
type Candidate struct {
	// Doc is the global document id (segment base + segment-local DocID).
	Doc uint64
	// Score is the relevance score of the match.
	Score Score
}

// String returns a string representation of the Candidate.
func (c Candidate) String() string {
	return fmt.Sprintf("Candidate(%d: %f)", c.Doc, c.Score)
}
