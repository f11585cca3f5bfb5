// Package ui is a terminal front end for taking an assessment. It drives
// the sampler, scorer and feedback core; no assessment logic lives here.
package ui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/apprise/internal/assess"
	"github.com/abhisek/apprise/internal/feedback"
)

// state is the screen the model is currently on.
type state int

const (
	stateRoleSelect state = iota
	stateQuestion
	stateGenerating
	stateSummary
	stateFailed
)

// feedbackMsg carries the generated (or fallback) narrative feedback.
type feedbackMsg struct {
	text        string
	unavailable bool
}

// errMsg carries a fatal error into the model.
type errMsg struct{ err error }

// Model is the root Bubble Tea model for the take-assessment flow.
type Model struct {
	sampler  *assess.Sampler
	feedback *feedback.Service
	roles    []string
	count    int

	state   state
	err     error
	spinner spinner.Model

	// role selection
	roleCursor int

	// question loop
	session *assess.Session
	current int
	answers []string
	choice  multiChoice

	// summary
	result       assess.ScoreResult
	feedbackText string
	fbFallback   bool
}

// New creates the take-assessment model.
func New(sampler *assess.Sampler, fb *feedback.Service, roles []string, count int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		sampler:  sampler,
		feedback: fb,
		roles:    roles,
		count:    count,
		state:    stateRoleSelect,
		spinner:  sp,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case errMsg:
		m.err = msg.err
		m.state = stateFailed
		return m, nil
	case feedbackMsg:
		m.feedbackText = msg.text
		m.fbFallback = msg.unavailable
		m.state = stateSummary
		return m, nil
	case spinner.TickMsg:
		if m.state == stateGenerating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.state {
	case stateRoleSelect:
		return m.updateRoleSelect(msg)
	case stateQuestion:
		return m.updateQuestion(msg)
	case stateSummary, stateFailed:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateRoleSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.roleCursor > 0 {
			m.roleCursor--
		}
	case "down", "j":
		if m.roleCursor < len(m.roles)-1 {
			m.roleCursor++
		}
	case "q":
		return m, tea.Quit
	case "enter":
		session, err := m.sampler.Sample(m.roles[m.roleCursor], m.count)
		if err != nil {
			m.err = err
			m.state = stateFailed
			return m, nil
		}
		m.session = session
		m.current = 0
		m.answers = m.answers[:0]
		m.choice = newMultiChoice(session.Questions[0].Text, session.Questions[0].Options)
		m.state = stateQuestion
	}
	return m, nil
}

func (m Model) updateQuestion(msg tea.Msg) (tea.Model, tea.Cmd) {
	var confirmed bool
	m.choice, confirmed = m.choice.Update(msg)
	if !confirmed {
		return m, nil
	}

	m.answers = append(m.answers, m.choice.Answer())
	m.current++

	if m.current < m.session.Total() {
		q := m.session.Questions[m.current]
		m.choice = newMultiChoice(q.Text, q.Options)
		return m, nil
	}

	// All questions answered: score synchronously, generate feedback async.
	m.result = assess.Score(m.session.Role, m.session.Questions, m.answers)
	m.state = stateGenerating

	req := feedback.BuildRequest(m.result, m.session.Questions, m.answers)
	return m, tea.Batch(m.spinner.Tick, generateFeedback(m.feedback, req))
}

func generateFeedback(svc *feedback.Service, req feedback.Request) tea.Cmd {
	return func() tea.Msg {
		text, err := svc.Generate(context.Background(), req)
		return feedbackMsg{text: text, unavailable: err != nil}
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")

	switch m.state {
	case stateRoleSelect:
		v.SetContent(m.viewRoleSelect())
	case stateQuestion:
		v.SetContent(m.viewQuestion())
	case stateGenerating:
		v.SetContent(fmt.Sprintf("\n  %s Generating your feedback...\n", m.spinner.View()))
	case stateSummary:
		v.SetContent(m.viewSummary())
	case stateFailed:
		v.SetContent(styleWrong.Render(fmt.Sprintf("\n  error: %v\n", m.err)) +
			styleHint.Render("\n  q to quit\n"))
	}
	return v
}

func (m Model) viewRoleSelect() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Employee Appraisal Test") + "\n\n")
	b.WriteString(styleBody.Render("Select your role:") + "\n\n")
	for i, role := range m.roles {
		prefix := "  "
		line := prefix + role
		if i == m.roleCursor {
			line = "> " + role
			b.WriteString(styleSelected.Render(line) + "\n")
			continue
		}
		b.WriteString(styleBody.Render(line) + "\n")
	}
	b.WriteString("\n" + styleHint.Render("up/down to move, enter to start, q to quit") + "\n")
	return b.String()
}

func (m Model) viewQuestion() string {
	header := styleTitle.Render(
		fmt.Sprintf("Question %d / %d (%s)", m.current+1, m.session.Total(), m.session.Role))
	bar := progressBar(m.current, m.session.Total(), 40)
	return header + "\n" + bar + "\n\n" + m.choice.View() +
		"\n" + styleHint.Render("up/down to move, enter to answer") + "\n"
}

func (m Model) viewSummary() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Test Completed") + "\n\n")
	b.WriteString(styleBody.Render(fmt.Sprintf("Score: %d / %d (%.1f%%)",
		m.result.Score, m.result.TotalQuestions, m.result.Percentage)) + "\n\n")

	for i, correct := range m.result.PerQuestionCorrect {
		mark := styleWrong.Render("x")
		if correct {
			mark = styleCorrect.Render("+")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", mark, m.session.Questions[i].Text))
	}

	b.WriteString("\n" + styleCard.Render(m.feedbackText) + "\n")
	if m.fbFallback {
		b.WriteString(styleHint.Render("\nDetailed feedback was unavailable; showing summary.") + "\n")
	}
	b.WriteString(styleHint.Render("\nq to quit") + "\n")
	return b.String()
}

// progressBar renders a fixed-width completion bar.
func progressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	filled := done * width / total
	return styleSelected.Render(strings.Repeat("=", filled)) +
		styleHint.Render(strings.Repeat("-", width-filled))
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
