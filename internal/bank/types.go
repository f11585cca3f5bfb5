package bank

import "fmt"

// Question is a single multiple-choice assessment item.
type Question struct {
	// Text is the question prompt shown to the candidate.
	Text string `json:"question" yaml:"question"`

	// Options is the ordered list of answer choices. At least 2.
	Options []string `json:"options" yaml:"options"`

	// Answer is the correct choice. It must match exactly one element of
	// Options (case-sensitive).
	Answer string `json:"answer" yaml:"answer"`
}

// Validate checks the question invariant: non-empty text, at least two
// options, and an answer that appears verbatim in the options.
func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("need at least 2 options, got %d", len(q.Options))
	}
	matches := 0
	for _, opt := range q.Options {
		if opt == q.Answer {
			matches++
		}
	}
	if matches != 1 {
		return fmt.Errorf("answer %q must match exactly one option, matches %d", q.Answer, matches)
	}
	return nil
}
