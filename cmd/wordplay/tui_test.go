package main

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordplay_solver/internal/detect"
	"github.com/domino14/wordplay_solver/internal/lexicon"
	"github.com/domino14/wordplay_solver/internal/solver"
)

type fakeDetector struct {
	letters []rune
	err     error
}

func (f fakeDetector) DetectLetters(ctx context.Context) ([]rune, error) {
	return f.letters, f.err
}

func testSolver() *solver.Solver {
	return solver.New(lexicon.NewWordSet([]string{
		"letters", "settler", "street", "rest", "test", "tree",
	}))
}

func enter(t *testing.T, m model, input string) (model, tea.Cmd) {
	m.textInput.SetValue(input)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return nm, cmd
}

func TestModelSolve(t *testing.T) {
	is := is.New(t)
	m := initialModel(testSolver(), nil, 5)

	m, cmd := enter(t, m, "letters")
	is.True(cmd == nil)
	is.True(m.result != nil)
	is.Equal(m.result.Top[0].Word, "letters")
	is.Equal(m.textInput.Value(), "")
	assert.Contains(t, m.View(), "=== Top 5 Words ===")

	m, _ = enter(t, m, "2")
	assert.Contains(t, m.status, "Selected word: SETTLER")

	m, _ = enter(t, m, "4.3")
	assert.Contains(t, m.status, "Selected word: TREE")

	m, _ = enter(t, m, "9.1")
	assert.Contains(t, m.status, "Invalid selection.")

	m, _ = enter(t, m, "qqq")
	is.True(m.result.Empty())
	assert.Contains(t, m.View(), noWordsMessage)
}

func TestModelQuit(t *testing.T) {
	for _, word := range []string{"/exit", "/QUIT"} {
		m := initialModel(testSolver(), nil, 5)
		m, cmd := enter(t, m, word)
		assert.True(t, m.quitting)
		assert.NotNil(t, cmd)
		assert.Equal(t, "Goodbye!\n", m.View())
	}

	m := initialModel(testSolver(), nil, 5)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(model).quitting)
	assert.NotNil(t, cmd)
}

func TestModelPlainWordsAreQueries(t *testing.T) {
	lex := lexicon.NewWordSet([]string{"quit", "exit", "tixe"})
	for _, word := range []string{"quit", "exit", "q"} {
		m := initialModel(solver.New(lex, solver.WithMinLength(1)), nil, 5)
		m, cmd := enter(t, m, word)
		assert.False(t, m.quitting, word)
		assert.Nil(t, cmd, word)
		assert.NotNil(t, m.result, word)
	}
	m := initialModel(solver.New(lex), nil, 5)
	m, _ = enter(t, m, "exit")
	assert.Equal(t, []string{"exit", "tixe"}, []string{m.result.Top[0].Word, m.result.Top[1].Word})
	m, _ = enter(t, m, "quit")
	assert.Equal(t, "quit", m.result.Top[0].Word)
}

func TestModelDetect(t *testing.T) {
	is := is.New(t)
	m := initialModel(testSolver(), fakeDetector{letters: []rune("LETTERS")}, 5)

	m, cmd := enter(t, m, "")
	is.True(m.detecting)
	is.True(cmd != nil)

	// a second empty enter while the detector runs does nothing
	m, again := enter(t, m, "")
	is.True(again == nil)
	is.True(m.detecting)
	assert.Contains(t, m.View(), "waiting for the detector")

	next, _ := m.Update(cmd())
	m = next.(model)
	is.True(!m.detecting)
	is.Equal(m.status, "Detected letters: LETTERS")
	is.Equal(m.result.Top[0].Word, "letters")
}

func TestModelDetectFailure(t *testing.T) {
	m := initialModel(testSolver(), fakeDetector{err: detect.ErrNoLetters}, 5)
	m, cmd := enter(t, m, "")
	next, _ := m.Update(cmd())
	m = next.(model)
	assert.Contains(t, m.status, "Detection failed")
	assert.Nil(t, m.result)
}

func TestModelDetectThenSolveFails(t *testing.T) {
	m := initialModel(solver.New(nil), fakeDetector{letters: []rune("ABC")}, 5)
	m, cmd := enter(t, m, "")
	next, _ := m.Update(cmd())
	m = next.(model)
	assert.Contains(t, m.status, "Detected letters: ABC")
	assert.Contains(t, m.status, lexicon.ErrUnavailable.Error())
	assert.Nil(t, m.result)
}

func TestModelNoDetector(t *testing.T) {
	m := initialModel(testSolver(), nil, 5)
	m, cmd := enter(t, m, "")
	assert.Nil(t, cmd)
	assert.Equal(t, "Type some letters first.", m.status)
}

func TestModelNoLexicon(t *testing.T) {
	m := initialModel(solver.New(nil), nil, 5)
	m, _ = enter(t, m, "letters")
	assert.Nil(t, m.result)
	assert.Contains(t, m.status, lexicon.ErrUnavailable.Error())
}
