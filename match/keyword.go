package match

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sreecharan/portfolio-agent/profile"
)

// Result is what a retrieval pass hands to the chat service: the text block
// for the prompt, image web paths for the response, and the tags of the
// matched sections.
type Result struct {
	Context  string
	Images   []string
	Sections []string
}

// Section tags, in bucket-definition order.
const (
	SectionAbout          = "about"
	SectionContact        = "contact"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionHackathons     = "hackathons"
)

// KeywordExtractor scans a query for bucket keywords and concatenates the
// matching profile subsections. A bucket is fully included or omitted;
// there is no ranking.
type KeywordExtractor struct {
	profile   profile.Profile
	assetsDir string
}

func NewKeywordExtractor(p profile.Profile, assetsDir string) *KeywordExtractor {
	return &KeywordExtractor{profile: p, assetsDir: assetsDir}
}

type bucket struct {
	tag      string
	keywords []string
	render   func(p profile.Profile) []string
	// images resolves the image folders for the matched bucket, keyed by
	// aliases found in the query. Only the project and hackathon buckets
	// carry images.
	images func(e *KeywordExtractor, query string) []string
}

// Shorthand aliases the profile names alone would miss.
var projectAliases = map[string]string{
	"studybuddy": "study-buddy",
	"chat bot":   "portfolio-chatbot",
	"chatbot":    "portfolio-chatbot",
}

var hackathonAliases = map[string]string{
	"sih":          "smart-india-hackathon",
	"smart india":  "smart-india-hackathon",
	"hack the box": "hack-the-box",
}

var buckets = []bucket{
	{
		tag:      SectionAbout,
		keywords: []string{"who", "about", "name", "yourself", "introduce", "introduction", "bio"},
		render:   renderAbout,
	},
	{
		tag:      SectionContact,
		keywords: []string{"contact", "email", "phone", "reach", "linkedin", "github", "location", "hire"},
		render:   renderContact,
	},
	{
		tag:      SectionSkills,
		keywords: []string{"skill", "technolog", "stack", "tool", "language", "framework", "proficien"},
		render:   renderSkills,
	},
	{
		tag:      SectionExperience,
		keywords: []string{"experience", "work", "job", "career", "company", "intern", "role", "employ"},
		render:   renderExperience,
	},
	{
		tag:      SectionEducation,
		keywords: []string{"education", "degree", "college", "university", "school", "study", "studied", "academic", "grade"},
		render:   renderEducation,
	},
	{
		tag:      SectionCertifications,
		keywords: []string{"certification", "certificate", "certified", "course", "credential"},
		render:   renderCertifications,
	},
	{
		tag:      SectionProjects,
		keywords: []string{"project", "built", "build", "portfolio", "application", "app", "develop"},
		render:   renderProjects,
		images:   projectImages,
	},
	{
		tag:      SectionHackathons,
		keywords: []string{"hackathon", "competition", "contest", "won", "winner", "award", "prize"},
		render:   renderHackathons,
		images:   hackathonImages,
	},
}

// Extract runs the keyword path over a raw query. Matched buckets are
// concatenated in definition order; an empty query or zero matches yields
// an empty context, and the caller supplies the generic fallback.
func (e *KeywordExtractor) Extract(query string) Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Result{}
	}

	var lines []string
	var sections []string
	var images []string

	for _, b := range buckets {
		if !containsAnyKeyword(q, b.keywords) {
			continue
		}
		sections = append(sections, b.tag)
		lines = append(lines, b.render(e.profile)...)
		if b.images != nil {
			images = append(images, b.images(e, q)...)
		}
	}

	return Result{
		Context:  strings.Join(lines, "\n"),
		Images:   dedupeImages(images, maxImages),
		Sections: sections,
	}
}

// Retrieve implements the retriever contract used by the chat service.
func (e *KeywordExtractor) Retrieve(_ context.Context, question string) (Result, error) {
	return e.Extract(question), nil
}

func containsAnyKeyword(query string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}

func renderAbout(p profile.Profile) []string {
	return []string{
		"Name: " + p.Name,
		"Title: " + p.Title,
		"Technologies: " + strings.Join(p.Technologies, ", "),
	}
}

func renderContact(p profile.Profile) []string {
	lines := []string{
		"Email: " + p.Contact.Email,
		"Phone: " + p.Contact.Phone,
		"Location: " + p.Contact.Location,
	}
	if p.Contact.LinkedIn != "" {
		lines = append(lines, "LinkedIn: "+p.Contact.LinkedIn)
	}
	if p.Contact.GitHub != "" {
		lines = append(lines, "GitHub: "+p.Contact.GitHub)
	}
	return lines
}

func renderSkills(p profile.Profile) []string {
	categories := make([]string, 0, len(p.Skills))
	for category := range p.Skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var lines []string
	for _, category := range categories {
		lines = append(lines, "Skill Category: "+category)
		names := make([]string, 0, len(p.Skills[category]))
		for name := range p.Skills[category] {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("%s: %s", name, p.Skills[category][name]))
		}
	}
	return lines
}

func renderExperience(p profile.Profile) []string {
	var lines []string
	for _, job := range p.WorkExperience {
		lines = append(lines,
			fmt.Sprintf("Role: %s at %s (%s, %s)", job.Role, job.Company, job.Years, job.Location),
			"Achievements: "+strings.Join(job.Achievements, ", "),
			"Technologies: "+strings.Join(job.Technologies, ", "),
		)
	}
	return lines
}

func renderEducation(p profile.Profile) []string {
	var lines []string
	for _, edu := range p.Education {
		degree := edu.Degree
		if degree == "" {
			degree = edu.Qualification
		}
		lines = append(lines,
			fmt.Sprintf("Degree: %s in %s at %s (%s)", degree, edu.Field, edu.Institution, edu.Years),
			"Grade: "+edu.Grade,
		)
		if len(edu.Achievements) > 0 {
			lines = append(lines, "Achievements: "+strings.Join(edu.Achievements, ", "))
		}
	}
	return lines
}

func renderCertifications(p profile.Profile) []string {
	var lines []string
	for _, cert := range p.Certifications {
		lines = append(lines, fmt.Sprintf("Certification: %s by %s (%s)", cert.Name, cert.Issuer, cert.Year))
	}
	return lines
}

func renderProjects(p profile.Profile) []string {
	var lines []string
	for _, project := range p.Projects {
		lines = append(lines,
			fmt.Sprintf("Project: %s (%s)", project.Name, project.Category),
			"Description: "+project.Description,
			fmt.Sprintf("Duration: %s, Team Size: %s", project.Duration, project.TeamSize),
			"Technologies: "+strings.Join(project.Technologies, ", "),
			"Features: "+strings.Join(project.Features, ", "),
		)
	}
	return lines
}

func renderHackathons(p profile.Profile) []string {
	var lines []string
	if p.Hackathons.Summary != "" {
		lines = append(lines, p.Hackathons.Summary)
	}
	for _, event := range p.Hackathons.Events {
		lines = append(lines,
			fmt.Sprintf("Hackathon: %s, hosted by %s (%s)", event.Event, event.Host, event.MonthYear),
			"Result: "+event.Result,
			"Technologies: "+strings.Join(event.Technologies, ", "),
		)
		if len(event.Awards) > 0 {
			lines = append(lines, "Awards: "+strings.Join(event.Awards, ", "))
		}
	}
	return lines
}

// projectImages resolves image folders under ASSETS_DIR/projects for every
// project whose name or alias appears in the query.
func projectImages(e *KeywordExtractor, query string) []string {
	folders := make([]string, 0, 2)
	for _, project := range e.profile.Projects {
		if name := strings.ToLower(project.Name); name != "" && strings.Contains(query, name) {
			folders = append(folders, slug(project.Name))
		}
	}
	for alias, folder := range projectAliases {
		if strings.Contains(query, alias) {
			folders = append(folders, folder)
		}
	}
	return e.collectImages("projects", folders)
}

func hackathonImages(e *KeywordExtractor, query string) []string {
	folders := make([]string, 0, 2)
	for _, event := range e.profile.Hackathons.Events {
		if name := strings.ToLower(event.Event); name != "" && strings.Contains(query, name) {
			folders = append(folders, slug(event.Event))
		}
	}
	for alias, folder := range hackathonAliases {
		if strings.Contains(query, alias) {
			folders = append(folders, folder)
		}
	}
	return e.collectImages("hackathons", folders)
}

func (e *KeywordExtractor) collectImages(category string, folders []string) []string {
	sort.Strings(folders)
	var images []string
	for _, folder := range folders {
		dir := filepath.Join(e.assetsDir, category, folder)
		images = append(images, listImages(dir, "/"+category+"/"+folder)...)
	}
	return images
}
