package models

import "time"

// Skill represents one skill extracted from a resume
type Skill struct {
	Name        string   `json:"name"`
	Level       int      `json:"level"`
	Category    string   `json:"category"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// PersonalInfo holds contact details found in a resume
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Experience is a single work history entry
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is a single education entry
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Date        string `json:"date,omitempty"`
}

// ParsedResume is the structured result of resume parsing
type ParsedResume struct {
	FileName     string        `json:"file_name"`
	Skills       []Skill       `json:"skills"`
	PersonalInfo *PersonalInfo `json:"personal_info,omitempty"`
	Experience   []Experience  `json:"experience,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	ParsedAt     time.Time     `json:"parsed_at"`
}

// SkillNames returns the names of all skills in the resume
func (r *ParsedResume) SkillNames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	return names
}
