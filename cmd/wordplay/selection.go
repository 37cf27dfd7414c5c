package main

import (
	"strconv"
	"strings"

	"github.com/domino14/wordplay_solver/internal/ranker"
)

// isSelection reports whether input looks like a word pick ("3" or "7.2")
// rather than a letter query. Letter queries always start with a letter.
func isSelection(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	for i := 0; i < len(input); i++ {
		if (input[i] < '0' || input[i] > '9') && input[i] != '.' {
			return false
		}
	}
	return true
}

// selectWord resolves "N" to the N-th top word and "L.O" to the O-th best word
// of length L. Both are 1-based.
func selectWord(input string, res *ranker.Result) (ranker.ScoredWord, bool) {
	if res == nil {
		return ranker.ScoredWord{}, false
	}
	input = strings.TrimSpace(input)
	lenPart, orderPart, dotted := strings.Cut(input, ".")
	if !dotted {
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(res.Top) {
			return ranker.ScoredWord{}, false
		}
		return res.Top[n-1], true
	}
	length, err := strconv.Atoi(lenPart)
	if err != nil {
		return ranker.ScoredWord{}, false
	}
	order, err := strconv.Atoi(orderPart)
	if err != nil || order < 1 {
		return ranker.ScoredWord{}, false
	}
	g, ok := res.Group(length)
	if !ok || order > len(g.Words) {
		return ranker.ScoredWord{}, false
	}
	return g.Words[order-1], true
}
