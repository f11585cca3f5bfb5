package server

import "github.com/abhisek/apprise/internal/bank"

// QuestionPayload is the wire form of one question. The answer key is
// included in start responses: the caller is trusted to hold the key for
// the start → submit round trip.
type QuestionPayload struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// StartRequest asks for a question set for a role.
type StartRequest struct {
	Role         string `json:"role"`
	NumQuestions int    `json:"num_questions"`
}

// StartResponse carries the sampled question set.
type StartResponse struct {
	SessionID      string            `json:"session_id"`
	Role           string            `json:"role"`
	Questions      []QuestionPayload `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// SubmitRequest carries a completed (possibly partial) answer set together
// with the questions it answers, positionally aligned.
type SubmitRequest struct {
	Role      string            `json:"role"`
	Answers   []string          `json:"answers"`
	Questions []QuestionPayload `json:"questions"`
}

// SubmitResponse carries the score and narrative feedback. Score and
// feedback are independently deliverable: when feedback generation fails,
// FeedbackUnavailable is set and Feedback holds a fallback summary.
type SubmitResponse struct {
	Role                string  `json:"role"`
	Score               int     `json:"score"`
	TotalQuestions      int     `json:"total_questions"`
	Percentage          float64 `json:"percentage"`
	PerQuestionCorrect  []bool  `json:"per_question_correct"`
	Feedback            string  `json:"feedback"`
	FeedbackUnavailable bool    `json:"feedback_unavailable,omitempty"`
}

// RoleStatsResponse reports read-only aggregate info for one role.
type RoleStatsResponse struct {
	Role          string `json:"role"`
	QuestionCount int    `json:"question_count"`
	IndexedCount  int    `json:"indexed_count"`
	IndexFresh    bool   `json:"index_fresh"`
}

// SearchMatch is one semantic search hit.
type SearchMatch struct {
	Question string  `json:"question"`
	Ref      int     `json:"ref"`
	Score    float64 `json:"score"`
}

// SearchResponse carries ranked semantic search results for a role.
type SearchResponse struct {
	Role    string        `json:"role"`
	Query   string        `json:"query"`
	Matches []SearchMatch `json:"matches"`
}

// HealthResponse reports service liveness and bank/index summary.
type HealthResponse struct {
	Status         string   `json:"status"`
	AvailableRoles []string `json:"available_roles"`
	TotalQuestions int      `json:"total_questions"`
	IndexedCount   int      `json:"indexed_count"`
}

func toPayload(qs []bank.Question) []QuestionPayload {
	out := make([]QuestionPayload, len(qs))
	for i, q := range qs {
		out[i] = QuestionPayload{Question: q.Text, Options: q.Options, Answer: q.Answer}
	}
	return out
}

func toQuestions(ps []QuestionPayload) []bank.Question {
	out := make([]bank.Question, len(ps))
	for i, p := range ps {
		out[i] = bank.Question{Text: p.Question, Options: p.Options, Answer: p.Answer}
	}
	return out
}
