package assess

import (
	"testing"

	"github.com/abhisek/apprise/internal/bank"
)

func q(text, answer string) bank.Question {
	return bank.Question{Text: text, Options: []string{answer, "other"}, Answer: answer}
}

func TestScoreAllCorrect(t *testing.T) {
	questions := []bank.Question{q("q1", "a"), q("q2", "b"), q("q3", "c")}
	result := Score("Engineer", questions, []string{"a", "b", "c"})

	if result.Score != 3 {
		t.Errorf("expected score 3, got %d", result.Score)
	}
	if result.Percentage != 100 {
		t.Errorf("expected 100%%, got %f", result.Percentage)
	}
	for i, ok := range result.PerQuestionCorrect {
		if !ok {
			t.Errorf("question %d should be correct", i)
		}
	}
}

func TestScorePartial(t *testing.T) {
	questions := []bank.Question{q("q1", "a"), q("q2", "b")}
	result := Score("Engineer", questions, []string{"a", "wrong"})

	if result.Score != 1 {
		t.Errorf("expected score 1, got %d", result.Score)
	}
	if result.Percentage != 50.0 {
		t.Errorf("expected exactly 50.0, got %f", result.Percentage)
	}
	if !result.PerQuestionCorrect[0] || result.PerQuestionCorrect[1] {
		t.Errorf("per-question marks wrong: %v", result.PerQuestionCorrect)
	}
}

func TestScoreIsPositional(t *testing.T) {
	// Right answers in the wrong positions score zero.
	questions := []bank.Question{q("q1", "a"), q("q2", "b")}
	result := Score("Engineer", questions, []string{"b", "a"})

	if result.Score != 0 {
		t.Errorf("swapped answers should score 0, got %d", result.Score)
	}
}

func TestScoreCaseSensitive(t *testing.T) {
	questions := []bank.Question{q("q1", "Paris")}

	if got := Score("Engineer", questions, []string{"paris"}).Score; got != 0 {
		t.Errorf("case mismatch should not score, got %d", got)
	}
	if got := Score("Engineer", questions, []string{" Paris"}).Score; got != 0 {
		t.Errorf("whitespace mismatch should not score, got %d", got)
	}
	if got := Score("Engineer", questions, []string{"Paris"}).Score; got != 1 {
		t.Errorf("exact match should score, got %d", got)
	}
}

func TestScoreFewerAnswersThanQuestions(t *testing.T) {
	questions := []bank.Question{q("q1", "a"), q("q2", "b"), q("q3", "c")}
	result := Score("Engineer", questions, []string{"a"})

	if result.Score != 1 {
		t.Errorf("expected score 1, got %d", result.Score)
	}
	if result.TotalQuestions != 3 {
		t.Errorf("total should stay 3, got %d", result.TotalQuestions)
	}
	want := 100 * 1.0 / 3.0
	if result.Percentage != want {
		t.Errorf("expected unrounded %v, got %v", want, result.Percentage)
	}
	if len(result.PerQuestionCorrect) != 3 {
		t.Fatalf("per-question marks should cover all questions, got %d", len(result.PerQuestionCorrect))
	}
	if result.PerQuestionCorrect[1] || result.PerQuestionCorrect[2] {
		t.Error("unanswered questions must count as incorrect")
	}
}

func TestScoreMoreAnswersThanQuestions(t *testing.T) {
	questions := []bank.Question{q("q1", "a")}
	result := Score("Engineer", questions, []string{"a", "b", "c"})

	if result.Score != 1 || result.TotalQuestions != 1 {
		t.Errorf("extra answers must be ignored: score=%d total=%d", result.Score, result.TotalQuestions)
	}
}

func TestScoreEmpty(t *testing.T) {
	result := Score("Engineer", nil, nil)
	if result.Score != 0 || result.TotalQuestions != 0 || result.Percentage != 0 {
		t.Errorf("empty submission should be all zeroes: %+v", result)
	}
}
