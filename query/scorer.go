package query

import (
	"github.com/hupe1980/lexgo/model"
	"github.com/hupe1980/lexgo/postings"
)

// Scorer is a DocSet that can score the document it is parked on.
type Scorer interface {
	postings.DocSet

	// Score returns the relevance score of the current document. Like Doc,
	// it is undefined before the first successful positioning call.
	Score() model.Score
}
