package ui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// optionLabels are the choice prefixes shown next to each option.
var optionLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// multiChoice is a selector over one question's options. Unlike a practice
// drill, an assessment never reveals the correct answer mid-test: the
// component records the choice and nothing more.
type multiChoice struct {
	question string
	options  []string
	selected int
	chosen   int // -1 until confirmed
}

func newMultiChoice(question string, options []string) multiChoice {
	return multiChoice{
		question: question,
		options:  options,
		selected: 0,
		chosen:   -1,
	}
}

// Update handles keyboard navigation. Returns true once a choice is
// confirmed with enter.
func (m multiChoice) Update(msg tea.Msg) (multiChoice, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	switch kmsg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.options)-1 {
			m.selected++
		}
	case "enter":
		m.chosen = m.selected
		return m, true
	}

	return m, false
}

// Answer returns the chosen option text, or "" if nothing was confirmed.
func (m multiChoice) Answer() string {
	if m.chosen < 0 || m.chosen >= len(m.options) {
		return ""
	}
	return m.options[m.chosen]
}

func (m multiChoice) View() string {
	s := styleBody.Bold(true).Render(m.question) + "\n\n"

	for i, opt := range m.options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)
		if i == m.selected {
			s += styleSelected.Render(line) + "\n"
		} else {
			s += styleBody.Render(line) + "\n"
		}
	}

	return s
}
