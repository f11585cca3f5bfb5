package feedback

import (
	"unicode/utf8"

	"github.com/abhisek/apprise/internal/assess"
	"github.com/abhisek/apprise/internal/bank"
)

// maxMissed bounds how many missed questions are included in a request.
const maxMissed = 20

// maxQuestionTextLen bounds per-question text carried into the request.
const maxQuestionTextLen = 300

// Request is the structured payload handed to the narrative text
// generator. It summarizes one scored submission and nothing else; it
// never carries question data outside the submitted set.
type Request struct {
	Role           string
	Score          int
	TotalQuestions int
	Percentage     float64
	Missed         []MissedQuestion
}

// MissedQuestion is one incorrectly answered (or unanswered) question.
type MissedQuestion struct {
	Question      string
	CorrectAnswer string
	GivenAnswer   string // empty when the question was left unanswered
}

// BuildRequest assembles the feedback payload from a score result and the
// question set it was computed against. Pure and deterministic: no I/O,
// no randomness. The missed list and question texts are bounded so the
// payload stays a fixed-size summary regardless of bank size.
func BuildRequest(result assess.ScoreResult, questions []bank.Question, answers []string) Request {
	req := Request{
		Role:           result.Role,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
	}

	for i, correct := range result.PerQuestionCorrect {
		if correct || i >= len(questions) {
			continue
		}
		if len(req.Missed) >= maxMissed {
			break
		}
		missed := MissedQuestion{
			Question:      truncate(questions[i].Text, maxQuestionTextLen),
			CorrectAnswer: truncate(questions[i].Answer, maxQuestionTextLen),
		}
		if i < len(answers) {
			missed.GivenAnswer = truncate(answers[i], maxQuestionTextLen)
		}
		req.Missed = append(req.Missed, missed)
	}

	return req
}

// truncate caps s at max bytes without splitting a multi-byte rune, so the
// prompt payload stays valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
