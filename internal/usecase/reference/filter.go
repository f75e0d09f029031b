package reference

import (
	"sort"

	"github.com/kailas-cloud/pagedex/internal/domain/method"
	"github.com/kailas-cloud/pagedex/internal/domain/search/query"
	"github.com/kailas-cloud/pagedex/internal/domain/search/result"
)

// Filter scores every method against q and returns the matches, best first.
//
// An empty query keeps every method with score 1. Otherwise the score is the number of
// case-insensitive occurrences of q in the signature (formatted for std) plus those in the
// description, and methods scoring 0 are dropped. Equal scores keep list order.
func Filter(methods []method.Method, q query.Query, std method.Standard) []result.Scored {
	scored := make([]result.Scored, 0, len(methods))

	for i := range methods {
		score := 1
		if !q.IsEmpty() {
			score = Score(&methods[i], q, std)
			if score == 0 {
				continue
			}
		}
		scored = append(scored, result.New(i, score))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score() > scored[j].Score()
	})

	return scored
}

// Score counts the occurrences of q across the visible text of m.
func Score(m *method.Method, q query.Query, std method.Standard) int {
	return q.Count(method.FormatSignature(m.Signature, std)) + q.Count(m.Description)
}
