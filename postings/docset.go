package postings

import "github.com/hupe1980/lexgo/model"

// SkipResult is the outcome of a SkipTo call.
type SkipResult uint8

const (
	// SkipReached means the cursor is parked exactly on the target.
	SkipReached SkipResult = iota
	// SkipOverStepped means the target is absent from the sequence and the
	// cursor is parked on the smallest DocID greater than the target.
	SkipOverStepped
	// SkipExhausted means no DocID >= target exists. The cursor is
	// permanently invalid afterwards.
	SkipExhausted
)

// String returns a string representation of the SkipResult.
func (r SkipResult) String() string {
	switch r {
	case SkipReached:
		return "Reached"
	case SkipOverStepped:
		return "OverStepped"
	case SkipExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// DocSet is a mutable cursor over a monotonically increasing sequence of
// document ids.
//
// A freshly created DocSet is unpositioned: Advance (or SkipTo) must be
// called once before the first read of Doc. Document ids observed across
// successive positioning calls are strictly increasing; no DocSet ever
// repeats or regresses.
//
// DocSets are owned by exactly one evaluating context at a time and are not
// safe for concurrent use.
type DocSet interface {
	// Advance moves the cursor to the next document id in the sequence and
	// reports whether one exists. It returns false once the sequence is
	// exhausted and keeps returning false on further calls, leaving Doc
	// untouched.
	Advance() bool

	// SkipTo moves the cursor forward to the first document id >= target
	// and always makes at least one step of progress. Calling it with a
	// target at or before the current position is undefined; callers must
	// only skip forward.
	SkipTo(target model.DocID) SkipResult

	// Doc returns the document id the cursor is parked on. It is undefined
	// before the first successful Advance or SkipTo.
	Doc() model.DocID

	// SizeHint returns an estimate of the number of documents in the set.
	// It is a heuristic for selectivity ordering and is never assumed exact.
	SizeHint() uint32
}

// Postings is a DocSet leaf over a single term's posting list.
type Postings interface {
	DocSet

	// TermFreq returns the number of occurrences of the term in the current
	// document. Implementations whose underlying representation omits
	// frequencies report 1.
	TermFreq() uint32
}

// skipResultFor classifies a successful landing position against the
// requested target.
func skipResultFor(doc, target model.DocID) SkipResult {
	if doc == target {
		return SkipReached
	}
	return SkipOverStepped
}
