package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/domino14/wordplay_solver/internal/detect"
	"github.com/domino14/wordplay_solver/internal/ranker"
	"github.com/domino14/wordplay_solver/internal/solver"
)

const detectTimeout = 15 * time.Second

// Commands start with a slash so they never collide with a letter query.
var quitCommands = map[string]bool{"/exit": true, "/quit": true}

type detectedMsg struct {
	letters []rune
	err     error
}

type model struct {
	textInput textinput.Model
	solver    *solver.Solver
	detector  detect.Detector
	topK      int

	result    *ranker.Result
	results   string
	status    string
	detecting bool
	quitting  bool
}

func initialModel(s *solver.Solver, d detect.Detector, topK int) model {
	ti := textinput.New()
	ti.Placeholder = "letters, a1b3c3, or letters s=t1i2"
	ti.Prompt = "Enter letters: "
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 40

	return model{
		textInput: ti,
		solver:    s,
		detector:  d,
		topK:      topK,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.Type {

		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			input := strings.TrimSpace(m.textInput.Value())
			m.textInput.Reset()
			return m.handleInput(input)
		}

	case detectedMsg:
		m.detecting = false
		if msg.err != nil {
			m.status = errorStyle.Render("Detection failed: " + msg.err.Error())
			return m, nil
		}
		letters := string(msg.letters)
		detected := "Detected letters: " + letters
		if m.solve(letters) {
			m.status = detected
		} else {
			m.status = detected + "\n" + m.status
		}
		return m, nil
	}
	m.textInput, cmd = m.textInput.Update(msg)

	return m, cmd
}

func (m model) handleInput(input string) (tea.Model, tea.Cmd) {
	switch {
	case quitCommands[strings.ToLower(input)]:
		m.quitting = true
		return m, tea.Quit

	case input == "":
		if m.detecting {
			return m, nil
		}
		if m.detector == nil {
			m.status = "Type some letters first."
			return m, nil
		}
		m.detecting = true
		m.status = "Detecting letters..."
		return m, detectCmd(m.detector)

	case isSelection(input) && m.result != nil:
		m.status = renderSelection(selectWord(input, m.result))
		return m, nil
	}
	m.solve(input)
	return m, nil
}

// solve runs query and stores the result. On failure the error is left in
// m.status and false is returned.
func (m *model) solve(query string) bool {
	res, err := m.solver.Solve(query)
	if err != nil {
		m.result = nil
		m.results = ""
		m.status = errorStyle.Render("Error: " + err.Error())
		return false
	}
	m.result = res
	m.results = renderResult(res, m.topK)
	m.status = ""
	return true
}

func detectCmd(d detect.Detector) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), detectTimeout)
		defer cancel()
		letters, err := d.DetectLetters(ctx)
		return detectedMsg{letters: letters, err: err}
	}
}

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("=== Wordplay Solver ==="))
	sb.WriteString("\n\n")
	if m.results != "" {
		sb.WriteString(m.results)
		sb.WriteString("\n")
	}
	if m.status != "" {
		sb.WriteString(m.status)
		sb.WriteString("\n\n")
	}
	if m.detecting {
		sb.WriteString(helpStyle.Render("(waiting for the detector)"))
		sb.WriteString("\n")
	}
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render(m.help()))
	return sb.String() + "\n"
}

func (m model) help() string {
	var parts []string
	if m.result != nil && !m.result.Empty() {
		parts = append(parts, fmt.Sprintf("1-%d picks a top word, L.O picks by length", len(m.result.Top)))
	}
	if m.detector != nil {
		parts = append(parts, "enter on an empty line detects letters")
	}
	parts = append(parts, "/exit, /quit or ctrl+c quits")
	return strings.Join(parts, " | ")
}
