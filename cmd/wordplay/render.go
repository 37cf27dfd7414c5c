package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/domino14/wordplay_solver/internal/ranker"
)

const noWordsMessage = "No valid words found with the given letters."

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	wordStyle     = lipgloss.NewStyle().Bold(true)
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lengthStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

func renderWord(w ranker.ScoredWord) string {
	return wordStyle.Render(strings.ToUpper(w.Word)) + scoreStyle.Render(fmt.Sprintf("(%d)", w.Score))
}

func renderWords(ws []ranker.ScoredWord) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = renderWord(w)
	}
	return strings.Join(parts, ", ")
}

// renderResult formats both ranked views. topK is only used in the heading.
func renderResult(res *ranker.Result, topK int) string {
	if res == nil || res.Empty() {
		return noWordsMessage + "\n"
	}
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("=== Top %d Words ===", topK)))
	sb.WriteString("\n")
	sb.WriteString(renderWords(res.Top))
	sb.WriteString("\n")
	if len(res.ByLength) > 0 {
		sb.WriteString("\n")
		sb.WriteString(headerStyle.Render("=== Best by Length ==="))
		sb.WriteString("\n")
		for _, g := range res.ByLength {
			sb.WriteString(lengthStyle.Render(fmt.Sprintf("%d:", g.Length)))
			sb.WriteString(" ")
			sb.WriteString(renderWords(g.Words))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func renderSelection(w ranker.ScoredWord, ok bool) string {
	if !ok {
		return errorStyle.Render("Invalid selection.")
	}
	return selectedStyle.Render("Selected word: " + strings.ToUpper(w.Word))
}
