package peerscore

// Tally holds the summed scores per rated peer.
type Tally struct {
	// Names lists the rated peers in order of first appearance in the
	// header.
	Names []string
	// Questions is the block width shared by all peers.
	Questions int
	// Scores maps every name to its per question totals.
	Scores map[string][]int
	// Raters counts, per name, the respondent rows that contributed to
	// that name.
	Raters map[string]int
	// Respondents counts the non-blank data rows.
	Respondents int
	// NonNumeric counts non-empty score cells that were not integers and
	// therefore contributed zero.
	NonNumeric int
}

func newTally(names []string, questions int) *Tally {
	t := &Tally{
		Names:     names,
		Questions: questions,
		Scores:    make(map[string][]int, len(names)),
		Raters:    make(map[string]int, len(names)),
	}
	for _, name := range names {
		t.Scores[name] = make([]int, questions)
	}
	return t
}

func (t *Tally) add(name string, slot, score int) {
	t.Scores[name][slot] += score
}

// Total returns the sum of all question totals for name.
func (t *Tally) Total(name string) int {
	sum := 0
	for _, v := range t.Scores[name] {
		sum += v
	}
	return sum
}

// cursor tracks, within one respondent row, the next question slot of
// every peer.
type cursor map[string]int

func (c cursor) next(name string) int {
	slot := c[name]
	c[name] = slot + 1
	return slot
}
