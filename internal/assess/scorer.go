package assess

import "github.com/abhisek/apprise/internal/bank"

// ScoreResult is the outcome of scoring one submission. Immutable once
// computed.
type ScoreResult struct {
	// Role is the role the submission was scored against.
	Role string

	// Score is the number of correct answers.
	Score int

	// TotalQuestions is the number of questions in the submission.
	TotalQuestions int

	// Percentage is 100 * Score / TotalQuestions, unrounded. Presentation
	// rounding is the caller's concern.
	Percentage float64

	// PerQuestionCorrect marks each question's correctness in submission
	// order. Questions without a matching answer count as incorrect.
	PerQuestionCorrect []bool
}

// Score compares submitted answers against the question set's answer key.
//
// Matching is purely positional: answers[i] is checked against
// questions[i].Answer with exact, case-sensitive string equality: no
// trimming, no partial credit. When the slices differ in length the
// shorter governs and unmatched trailing questions are incorrect; a
// partially completed assessment is valid input, never an error.
func Score(role string, questions []bank.Question, answers []string) ScoreResult {
	correct := make([]bool, len(questions))
	score := 0
	for i := range questions {
		if i < len(answers) && answers[i] == questions[i].Answer {
			correct[i] = true
			score++
		}
	}

	var percentage float64
	if len(questions) > 0 {
		percentage = 100 * float64(score) / float64(len(questions))
	}

	return ScoreResult{
		Role:               role,
		Score:              score,
		TotalQuestions:     len(questions),
		Percentage:         percentage,
		PerQuestionCorrect: correct,
	}
}
