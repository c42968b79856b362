package chat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sreecharan/portfolio-agent/profile"
)

func systemPrompt(name string) string {
	return fmt.Sprintf("You are the portfolio assistant for %s. "+
		"Answer visitor questions about %s using only the supplied context. "+
		"Keep responses clear and to the point, in a friendly first-person-adjacent tone. "+
		"If the context does not cover the question, say so and suggest reaching out through the contact details instead of guessing.",
		name, name)
}

func formatUserPrompt(question, context string) string {
	var sb strings.Builder
	sb.WriteString("Question:\n")
	sb.WriteString(question)
	sb.WriteString("\n\nContext:\n")
	sb.WriteString(context)
	sb.WriteString("\n\nAnswer based only on the context above. Do not invent details that are not present.")
	return sb.String()
}

// summaryContext is the generic fallback when no bucket or chunk matched:
// a short overview so the model can still say something useful.
func summaryContext(p profile.Profile) string {
	lines := []string{
		"Name: " + p.Name,
		"Title: " + p.Title,
	}
	if len(p.Technologies) > 0 {
		lines = append(lines, "Technologies: "+strings.Join(p.Technologies, ", "))
	}
	if len(p.Skills) > 0 {
		categories := make([]string, 0, len(p.Skills))
		for category := range p.Skills {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		lines = append(lines, "Skill areas: "+strings.Join(categories, ", "))
	}
	lines = append(lines,
		fmt.Sprintf("Projects: %d", len(p.Projects)),
		fmt.Sprintf("Hackathons: %d", len(p.Hackathons.Events)),
		fmt.Sprintf("Contact: %s", p.Contact.Email),
	)
	return strings.Join(lines, "\n")
}
