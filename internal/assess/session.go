package assess

import (
	"github.com/google/uuid"

	"github.com/abhisek/apprise/internal/bank"
)

// Session is one candidate's ephemeral assessment attempt: the questions
// selected for a role, in an order frozen at sampling time. The core does
// not persist sessions; the caller carries them for the start → submit
// round trip.
type Session struct {
	// ID uniquely identifies this attempt.
	ID string

	// Role is the role being assessed.
	Role string

	// Questions is the sampled set in presentation order.
	Questions []bank.Question

	// Requested is the question count the caller asked for, before
	// clamping to the role's pool size.
	Requested int
}

// Total returns the number of questions actually selected.
func (s *Session) Total() int {
	return len(s.Questions)
}

func newSession(role string, questions []bank.Question, requested int) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Role:      role,
		Questions: questions,
		Requested: requested,
	}
}
