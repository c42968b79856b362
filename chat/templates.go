package chat

import (
	"fmt"
	"strings"

	"github.com/sreecharan/portfolio-agent/profile"
)

// templateAnswer is the canned-response path: used when no LLM credential
// is configured and when the provider reports a quota condition. The
// template is picked by keyword match on the question.
func templateAnswer(question string, p profile.Profile) string {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "experience") || strings.Contains(q, "work") || strings.Contains(q, "job"):
		return experienceTemplate(p)
	case strings.Contains(q, "project"):
		return projectsTemplate(p)
	case strings.Contains(q, "hackathon"):
		return hackathonsTemplate(p)
	case strings.Contains(q, "skill") || strings.Contains(q, "technolog"):
		return skillsTemplate(p)
	default:
		return defaultTemplate(p)
	}
}

func experienceTemplate(p profile.Profile) string {
	if len(p.WorkExperience) == 0 {
		return fmt.Sprintf("%s is early in their professional journey. Reach out at %s to learn more.", p.Name, p.Contact.Email)
	}
	latest := p.WorkExperience[0]
	return fmt.Sprintf("%s has worked as %s at %s (%s), among %d roles overall. Ask about a specific company for details.",
		p.Name, latest.Role, latest.Company, latest.Years, len(p.WorkExperience))
}

func projectsTemplate(p profile.Profile) string {
	if len(p.Projects) == 0 {
		return fmt.Sprintf("%s's project list is being updated right now. Check back soon or reach out at %s.", p.Name, p.Contact.Email)
	}
	names := make([]string, 0, len(p.Projects))
	for _, project := range p.Projects {
		names = append(names, project.Name)
	}
	return fmt.Sprintf("%s has built %d projects, including %s. Ask about any of them by name.",
		p.Name, len(p.Projects), strings.Join(names, ", "))
}

func hackathonsTemplate(p profile.Profile) string {
	if len(p.Hackathons.Events) == 0 {
		return fmt.Sprintf("%s hasn't listed hackathon results yet.", p.Name)
	}
	names := make([]string, 0, len(p.Hackathons.Events))
	for _, event := range p.Hackathons.Events {
		names = append(names, event.Event)
	}
	return fmt.Sprintf("%s has competed in %d hackathons: %s. Ask about one for the full story.",
		p.Name, len(p.Hackathons.Events), strings.Join(names, ", "))
}

func skillsTemplate(p profile.Profile) string {
	if len(p.Technologies) == 0 && len(p.Skills) == 0 {
		return fmt.Sprintf("%s works across the modern web stack. Reach out at %s for specifics.", p.Name, p.Contact.Email)
	}
	return fmt.Sprintf("%s works with %s. Ask about a specific skill area for proficiency details.",
		p.Name, strings.Join(p.Technologies, ", "))
}

func defaultTemplate(p profile.Profile) string {
	return fmt.Sprintf("Hi, I'm the portfolio assistant for %s, %s. You can ask me about skills, experience, education, projects or hackathons.",
		p.Name, p.Title)
}
