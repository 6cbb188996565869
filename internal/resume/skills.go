package resume

import (
	"strings"

	"jobright-api/pkg/models"
)

type skillTable struct {
	keywords []string
	skills   []models.Skill
}

var developerSkills = []models.Skill{
	{Name: "JavaScript", Level: 85, Category: "Programming"},
	{Name: "React", Level: 80, Category: "Framework"},
	{Name: "Node.js", Level: 75, Category: "Backend"},
	{Name: "TypeScript", Level: 70, Category: "Programming"},
	{Name: "Git", Level: 90, Category: "Tool"},
	{Name: "REST API", Level: 85, Category: "Web Development"},
	{Name: "Problem Solving", Level: 80, Category: "Soft Skill"},
	{Name: "Team Leadership", Level: 70, Category: "Soft Skill"},
}

var designerSkills = []models.Skill{
	{Name: "Figma", Level: 90, Category: "Tool"},
	{Name: "UI Design", Level: 85, Category: "Design"},
	{Name: "User Research", Level: 80, Category: "UX"},
	{Name: "Wireframing", Level: 90, Category: "Design"},
	{Name: "Adobe XD", Level: 75, Category: "Tool"},
	{Name: "Prototyping", Level: 85, Category: "Design"},
	{Name: "Design Thinking", Level: 90, Category: "Methodology"},
	{Name: "Visual Communication", Level: 85, Category: "Soft Skill"},
}

var managerSkills = []models.Skill{
	{Name: "Project Management", Level: 90, Category: "Management"},
	{Name: "Team Leadership", Level: 85, Category: "Soft Skill"},
	{Name: "Agile/Scrum", Level: 80, Category: "Methodology"},
	{Name: "Stakeholder Management", Level: 85, Category: "Management"},
	{Name: "Strategic Planning", Level: 75, Category: "Management"},
	{Name: "Risk Management", Level: 80, Category: "Management"},
	{Name: "Communication", Level: 90, Category: "Soft Skill"},
	{Name: "Conflict Resolution", Level: 85, Category: "Soft Skill"},
}

var defaultSkills = []models.Skill{
	{Name: "Communication", Level: 80, Category: "Soft Skill"},
	{Name: "Problem Solving", Level: 75, Category: "Soft Skill"},
	{Name: "Microsoft Office", Level: 85, Category: "Tool"},
	{Name: "Time Management", Level: 80, Category: "Soft Skill"},
	{Name: "Teamwork", Level: 90, Category: "Soft Skill"},
	{Name: "Adaptability", Level: 85, Category: "Soft Skill"},
	{Name: "Organization", Level: 80, Category: "Soft Skill"},
}

// checked in order, first match wins
var skillTables = []skillTable{
	{keywords: []string{"developer", "engineer"}, skills: developerSkills},
	{keywords: []string{"design", "ux"}, skills: designerSkills},
	{keywords: []string{"manager", "lead"}, skills: managerSkills},
}

// skillsFor picks a skill table from the file name
func skillsFor(fileName string) []models.Skill {
	name := strings.ToLower(fileName)
	for _, t := range skillTables {
		for _, kw := range t.keywords {
			if strings.Contains(name, kw) {
				return cloneSkills(t.skills)
			}
		}
	}
	return cloneSkills(defaultSkills)
}

func cloneSkills(in []models.Skill) []models.Skill {
	out := make([]models.Skill, len(in))
	copy(out, in)
	return out
}
