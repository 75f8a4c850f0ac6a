package service

import (
	"strings"

	"f1-monk/internal/models"
)

const genericWelcome = "Hello! I'm your F1 Monk assistant. I can answer questions about F1 visa requirements, OPT, CPT, " +
	"and other student visa topics. How can I help you today?"

// BuildWelcome renders the opening bot message. It is a pure function of its
// inputs; callers rerun it whenever the profile changes.
func BuildWelcome(profile *models.UserProfile, deadlines []models.DeadlineDescriptor) string {
	if profile == nil {
		return genericWelcome
	}

	var b strings.Builder
	b.WriteString("Hello ")
	b.WriteString(profile.FirstName())
	b.WriteString("! I'm your F1 Monk assistant. ")

	if len(deadlines) == 0 {
		b.WriteString("How can I help you with your F1 visa questions today?")
		return b.String()
	}

	b.WriteString("I notice you have some upcoming F1 deadlines:\n\n")
	for _, d := range deadlines {
		b.WriteString("• ")
		b.WriteString(d.Message)
		b.WriteString("\n")
	}
	b.WriteString("\nHow can I help you with these or any other F1 visa questions today?")
	return b.String()
}
