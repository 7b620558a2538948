package peerscore

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Column labels of the summary table.
const (
	LabelName         = "姓名"
	LabelTotal        = "总分"
	LabelAverage      = "平均分"
	LabelQuestionMean = "题均分"
)

// QuestionLabel returns the label of the 0-based question i: T1, T2, ...
func QuestionLabel(i int) string {
	return fmt.Sprintf("T%d", i+1)
}

type FormatOptions struct {
	Averages bool
}

// Row is the summary of one rated person.
type Row struct {
	Name   string
	Totals []int

	Total  int
	Raters int
	// Average is Total divided by the number of raters.
	Average float64
	// QuestionMean is the mean score per rater and question.
	QuestionMean float64
}

type Summary struct {
	Questions   int
	Averages    bool
	Respondents int
	NonNumeric  int
	Rows        []Row
}

// Format turns a tally into one summary row per rated person, in order of
// first appearance.
func Format(t *Tally, opts FormatOptions) *Summary {
	s := &Summary{
		Questions:   t.Questions,
		Averages:    opts.Averages,
		Respondents: t.Respondents,
		NonNumeric:  t.NonNumeric,
		Rows:        make([]Row, 0, len(t.Names)),
	}
	for _, name := range t.Names {
		row := Row{
			Name:   name,
			Totals: append([]int(nil), t.Scores[name]...),
			Total:  t.Total(name),
			Raters: t.Raters[name],
		}
		if row.Raters > 0 {
			row.Average = float64(row.Total) / float64(row.Raters)
			row.QuestionMean = questionMean(row.Totals, row.Raters)
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

func questionMean(totals []int, raters int) float64 {
	perQuestion := make(stats.Float64Data, len(totals))
	for i, v := range totals {
		perQuestion[i] = float64(v) / float64(raters)
	}
	mean, err := perQuestion.Mean()
	if err != nil {
		return 0
	}
	return mean
}

// Header returns the column labels.
func (s *Summary) Header() []string {
	hdr := make([]string, 0, s.Questions+4)
	hdr = append(hdr, LabelName)
	for i := 0; i < s.Questions; i++ {
		hdr = append(hdr, QuestionLabel(i))
	}
	if s.Averages {
		hdr = append(hdr, LabelTotal, LabelAverage, LabelQuestionMean)
	}
	return hdr
}

// Values returns the cells of row i, matching Header. Scores are int, the
// averages float64.
func (s *Summary) Values(i int) []any {
	row := s.Rows[i]
	vals := make([]any, 0, s.Questions+4)
	vals = append(vals, row.Name)
	for _, v := range row.Totals {
		vals = append(vals, v)
	}
	if s.Averages {
		vals = append(vals, row.Total, row.Average, row.QuestionMean)
	}
	return vals
}

// Names returns the rated people in summary order.
func (s *Summary) Names() []string {
	names := make([]string, len(s.Rows))
	for i, row := range s.Rows {
		names[i] = row.Name
	}
	return names
}
