package feed

import "jobright-api/pkg/models"

// FallbackJobs is served whenever the remote feed cannot be used
func FallbackJobs() []models.Job {
	return []models.Job{
		{
			ID:          "1",
			Title:       "Senior Frontend Developer",
			Company:     "TechCorp",
			Location:    "Remote",
			Salary:      "$120,000 - $150,000",
			Experience:  "5-7 years",
			Skills:      []string{"React", "TypeScript", "Node.js", "CSS"},
			Description: "We're looking for a skilled frontend developer with experience in modern frameworks...",
			PostedDate:  "2 days ago",
			Source:      "JobRight",
		},
		{
			ID:          "2",
			Title:       "Data Scientist",
			Company:     "Analytics Inc",
			Location:    "New York, NY",
			Salary:      "$110,000 - $140,000",
			Experience:  "3-5 years",
			Skills:      []string{"Python", "SQL", "Machine Learning", "Data Visualization"},
			Description: "Join our data science team to build predictive models and analyze customer behavior...",
			PostedDate:  "1 week ago",
			Source:      "LinkedIn",
		},
	}
}
