package profile

// Profile is the portfolio owner's document, loaded once at startup and
// read-only for the process lifetime.
type Profile struct {
	Name           string           `json:"name"`
	Title          string           `json:"title"`
	Technologies   []string         `json:"technologies"`
	Contact        Contact          `json:"contact"`
	Skills         Skills           `json:"skills"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Certifications []Certification  `json:"certifications"`
	Projects       []Project        `json:"projects"`
	Hackathons     Hackathons       `json:"hackathons"`
}

type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Skills maps a category to skill name -> proficiency.
type Skills map[string]map[string]string

type WorkExperience struct {
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Years        string   `json:"years"`
	Location     string   `json:"location"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

type Education struct {
	Degree        string   `json:"degree"`
	Qualification string   `json:"qualification,omitempty"`
	Field         string   `json:"field"`
	Institution   string   `json:"institution"`
	Years         string   `json:"years"`
	Grade         string   `json:"grade"`
	Achievements  []string `json:"achievements"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

type Project struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	TeamSize     string   `json:"teamSize"`
	Technologies []string `json:"technologies"`
	Features     []string `json:"features"`
}

type Hackathons struct {
	Summary string           `json:"summary,omitempty"`
	Events  []HackathonEvent `json:"events"`
}

type HackathonEvent struct {
	Event        string   `json:"event"`
	Result       string   `json:"result"`
	MonthYear    string   `json:"monthYear"`
	Host         string   `json:"host"`
	TeamSize     string   `json:"teamSize"`
	Technologies []string `json:"technologies"`
	Awards       []string `json:"awards"`
}
