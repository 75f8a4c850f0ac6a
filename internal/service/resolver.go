package service

import (
	"strings"

	"f1-monk/internal/models"
)

const terminalPunctuation = "?!. \t\r\n"

// Resolve returns the first entry whose question and the input contain one
// another, compared case-insensitively and ignoring trailing punctuation.
// Short stored questions can match long inputs and vice versa; the first
// entry in stored order wins.
func Resolve(input string, entries []models.KnowledgeEntry) (models.KnowledgeEntry, bool) {
	needle := normalizeQuestion(input)
	if needle == "" {
		return models.KnowledgeEntry{}, false
	}

	for _, e := range entries {
		question := normalizeQuestion(e.Question)
		if question == "" {
			continue
		}
		if strings.Contains(question, needle) || strings.Contains(needle, question) {
			return e, true
		}
	}

	return models.KnowledgeEntry{}, false
}

func normalizeQuestion(s string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(s)), terminalPunctuation)
}
