package result

// Scored pairs a record position with its relevance score for one filter pass.
type Scored struct {
	index int
	score int
}

// New creates a scored entry.
func New(index, score int) Scored {
	return Scored{index: index, score: score}
}

// Index returns the position of the record in the source list.
func (s Scored) Index() int { return s.index }

// Score returns the relevance score.
func (s Scored) Score() int { return s.score }
