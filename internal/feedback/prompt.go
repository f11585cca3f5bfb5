package feedback

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert HR manager writing detailed, constructive feedback for an employee's role appraisal test. Your tone is professional, encouraging, and specific.`

// buildUserMessage renders the feedback request as the model prompt.
func buildUserMessage(req Request) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Role assessed: %s\n", req.Role))
	b.WriteString(fmt.Sprintf("Score: %d out of %d (%.1f%%)\n", req.Score, req.TotalQuestions, req.Percentage))

	if len(req.Missed) > 0 {
		b.WriteString("\nQuestions answered incorrectly:\n")
		for _, m := range req.Missed {
			b.WriteString(fmt.Sprintf("- %s\n", m.Question))
			b.WriteString(fmt.Sprintf("  Correct answer: %s\n", m.CorrectAnswer))
			if m.GivenAnswer != "" {
				b.WriteString(fmt.Sprintf("  Given answer: %s\n", m.GivenAnswer))
			} else {
				b.WriteString("  Given answer: (unanswered)\n")
			}
		}
	}

	b.WriteString(`
Write a performance review for this result. Structure it with the following markdown sections:

### Overall Performance Analysis
Summarize and categorize the performance (e.g. Excellent, Very Good, Good, Needs Improvement, Foundational) and explain what this score indicates about current skill level for the role.

### Key Strengths
Describe likely strengths based on the score. For a high score, highlight depth of expertise; for an average score, acknowledge solid core understanding; for a low score, focus on foundational knowledge and willingness to learn.

### Areas for Professional Development
Identify improvement areas constructively. Where incorrect answers are listed above, ground your suggestions in the topics they cover.

### Recommended Next Steps & Resources
A bulleted list of actionable next steps (courses, books, projects) relevant to the role.

### Concluding Remarks
An encouraging closing statement reinforcing the employee's value and your support for their growth.`)

	return b.String()
}
