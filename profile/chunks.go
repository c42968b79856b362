package profile

import (
	"fmt"
	"sort"
	"strings"
)

// Chunk types, one per profile subsection.
const (
	ChunkPersonalInfo   = "personal_info"
	ChunkWorkExperience = "work_experience"
	ChunkEducation      = "education"
	ChunkProject        = "project"
	ChunkHackathon      = "hackathon"
	ChunkSkills         = "skills"
)

// Chunk is a per-section text summary, the unit of embedding and matching.
// Chunks are recomputed at startup and never persisted.
type Chunk struct {
	Content string `json:"content"`
	Type    string `json:"type"`
	Tag     string `json:"tag"`
}

// Chunks flattens the profile into text chunks in document order: personal
// info first, then one chunk per work experience, education entry, project,
// hackathon event and skill category.
func (s *Store) Chunks() []Chunk {
	return BuildChunks(s.profile)
}

func BuildChunks(p Profile) []Chunk {
	chunks := []Chunk{personalInfoChunk(p)}

	for _, job := range p.WorkExperience {
		chunks = append(chunks, Chunk{
			Content: strings.Join([]string{
				"Role: " + job.Role,
				"Company: " + job.Company,
				"Years: " + job.Years,
				"Location: " + job.Location,
				"Achievements: " + strings.Join(job.Achievements, ", "),
				"Technologies: " + strings.Join(job.Technologies, ", "),
			}, "\n"),
			Type: ChunkWorkExperience,
			Tag:  job.Company,
		})
	}

	for _, edu := range p.Education {
		degree := edu.Degree
		if degree == "" {
			degree = edu.Qualification
		}
		chunks = append(chunks, Chunk{
			Content: strings.Join([]string{
				"Degree: " + degree,
				"Field: " + edu.Field,
				"Institution: " + edu.Institution,
				"Years: " + edu.Years,
				"Grade: " + edu.Grade,
				"Achievements: " + strings.Join(edu.Achievements, ", "),
			}, "\n"),
			Type: ChunkEducation,
			Tag:  edu.Institution,
		})
	}

	for _, project := range p.Projects {
		chunks = append(chunks, Chunk{
			Content: strings.Join([]string{
				"Project: " + project.Name,
				"Category: " + project.Category,
				"Description: " + project.Description,
				"Duration: " + project.Duration,
				"Team Size: " + project.TeamSize,
				"Technologies: " + strings.Join(project.Technologies, ", "),
				"Features: " + strings.Join(project.Features, ", "),
			}, "\n"),
			Type: ChunkProject,
			Tag:  project.Name,
		})
	}

	for _, event := range p.Hackathons.Events {
		chunks = append(chunks, Chunk{
			Content: strings.Join([]string{
				"Hackathon: " + event.Event,
				"Result: " + event.Result,
				"Month/Year: " + event.MonthYear,
				"Host: " + event.Host,
				"Team Size: " + event.TeamSize,
				"Technologies: " + strings.Join(event.Technologies, ", "),
				"Awards: " + strings.Join(event.Awards, ", "),
			}, "\n"),
			Type: ChunkHackathon,
			Tag:  event.Event,
		})
	}

	// Map iteration order is random; sort categories so chunk order is
	// stable across restarts.
	categories := make([]string, 0, len(p.Skills))
	for category := range p.Skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		var sb strings.Builder
		sb.WriteString("Skill Category: " + category)
		names := make([]string, 0, len(p.Skills[category]))
		for name := range p.Skills[category] {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("\n%s: %s", name, p.Skills[category][name]))
		}
		chunks = append(chunks, Chunk{
			Content: sb.String(),
			Type:    ChunkSkills,
			Tag:     category,
		})
	}

	return chunks
}

func personalInfoChunk(p Profile) Chunk {
	return Chunk{
		Content: strings.Join([]string{
			"Name: " + p.Name,
			"Title: " + p.Title,
			"Technologies: " + strings.Join(p.Technologies, ", "),
			fmt.Sprintf("Contact: %s, %s, %s", p.Contact.Email, p.Contact.Phone, p.Contact.Location),
		}, "\n"),
		Type: ChunkPersonalInfo,
		Tag:  p.Name,
	}
}
