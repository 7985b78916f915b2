package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lexgo/model"
	"github.com/hupe1980/lexgo/postings"
)

// Docs drains ds and returns every document id it yields.
func Docs(ds postings.DocSet) []model.DocID {
	var docs []model.DocID
	for ds.Advance() {
		docs = append(docs, ds.Doc())
	}
	return docs
}

// CheckSkipAgainstStepped verifies that skipping agrees with stepping: for
// every target, a fresh docset positioned with SkipTo must land exactly
// where a fresh docset advanced one document at a time would, and the two
// must yield identical remainders afterwards. makeDocSet must return an
// unpositioned docset over the same sequence on every call.
func CheckSkipAgainstStepped(t *testing.T, makeDocSet func() postings.DocSet, targets []model.DocID) {
	t.Helper()

	for _, target := range targets {
		skipping := makeDocSet()
		stepping := makeDocSet()

		found := false
		for stepping.Advance() {
			if stepping.Doc() >= target {
				found = true
				break
			}
		}

		switch res := skipping.SkipTo(target); res {
		case postings.SkipExhausted:
			require.False(t, found,
				"SkipTo(%d) reported Exhausted but stepping reached doc %d", target, stepping.Doc())
		case postings.SkipReached:
			require.True(t, found, "SkipTo(%d) reported Reached on an exhausted sequence", target)
			require.Equal(t, target, skipping.Doc())
			require.Equal(t, stepping.Doc(), skipping.Doc())
		case postings.SkipOverStepped:
			require.True(t, found, "SkipTo(%d) reported OverStepped on an exhausted sequence", target)
			require.Greater(t, skipping.Doc(), target)
			require.Equal(t, stepping.Doc(), skipping.Doc())
		default:
			t.Fatalf("unknown skip result %v", res)
		}

		if found {
			require.Equal(t, Docs(stepping), Docs(skipping),
				"remainders diverge after SkipTo(%d)", target)
		}
	}
}
