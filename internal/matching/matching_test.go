package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobright-api/pkg/models"
)

func job(id string, skills ...string) models.Job {
	return models.Job{ID: id, Title: "Job " + id, Skills: skills}
}

func ids(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		resume []string
		job    []string
		want   int
	}{
		{"all", []string{"Go", "SQL"}, []string{"go", "sql"}, 100},
		{"none", []string{"Go"}, []string{"Rust"}, 0},
		{"rounded third", []string{"React"}, []string{"React", "CSS", "HTML"}, 33},
		{"rounded two thirds", []string{"React", "CSS"}, []string{"React", "CSS", "HTML"}, 67},
		{"no job skills", []string{"Go"}, nil, 0},
		{"no resume skills", nil, []string{"Go"}, 0},
		{"substring is not a match", []string{"Java"}, []string{"JavaScript"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.resume, tt.job))
		})
	}
}

func TestAnnotate_DoesNotMutateInput(t *testing.T) {
	jobs := []models.Job{job("1", "React", "CSS"), job("2", "Python")}
	resume := &models.ParsedResume{Skills: []models.Skill{{Name: "React"}}}

	out := Annotate(jobs, resume)
	require.Len(t, out, 2)
	assert.Equal(t, 50, out[0].Match())
	assert.Equal(t, 0, out[1].Match())
	assert.Nil(t, jobs[0].MatchPercentage)

	out[0].Skills[0] = "changed"
	assert.Equal(t, "React", jobs[0].Skills[0])
}

func TestAnnotate_NilResume(t *testing.T) {
	out := Annotate([]models.Job{job("1", "Go")}, nil)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].MatchPercentage)
	assert.Equal(t, 0, *out[0].MatchPercentage)
}

func TestRank_IsStable(t *testing.T) {
	jobs := []models.Job{
		job("a").WithMatch(50),
		job("b").WithMatch(90),
		job("c").WithMatch(50),
		job("d"),
		job("e").WithMatch(90),
	}
	Rank(jobs)
	assert.Equal(t, []string{"b", "e", "a", "c", "d"}, ids(jobs))
}

func TestMatchJobs(t *testing.T) {
	jobs := []models.Job{
		job("1", "React", "TypeScript", "CSS", "Node.js"),
		job("2", "Python", "SQL"),
		job("3", "react", "CSS"),
	}

	out := MatchJobs([]string{"React", "CSS"}, jobs)
	assert.Equal(t, []string{"3", "1"}, ids(out))
	assert.Equal(t, 100, out[0].Match())
	assert.Equal(t, 50, out[1].Match())

	assert.Empty(t, MatchJobs([]string{"Haskell"}, jobs))
	assert.NotNil(t, MatchJobs(nil, jobs))
}

func TestKeywordMatches(t *testing.T) {
	jobs := []models.Job{
		job("1", "React", "CSS"),
		job("2", "react"),
		job("3", "Python"),
		job("4", "SQL"),
	}
	resume := &models.ParsedResume{Skills: []models.Skill{{Name: "React"}, {Name: "Python"}, {Name: "Go"}}}

	got := KeywordMatches(resume, jobs)
	assert.Equal(t, []KeywordMatch{
		{Keyword: "React", Count: 2, Important: true},
		{Keyword: "Python", Count: 1, Important: false},
		{Keyword: "Go", Count: 0, Important: false},
	}, got)

	assert.Empty(t, KeywordMatches(nil, jobs))
	assert.False(t, KeywordMatches(resume, nil)[0].Important)
}

func TestScoreLabel(t *testing.T) {
	assert.Equal(t, "Excellent", ScoreLabel(100))
	assert.Equal(t, "Excellent", ScoreLabel(80))
	assert.Equal(t, "Good", ScoreLabel(79))
	assert.Equal(t, "Good", ScoreLabel(60))
	assert.Equal(t, "Average", ScoreLabel(40))
	assert.Equal(t, "Needs Improvement", ScoreLabel(39))
	assert.Equal(t, "Needs Improvement", ScoreLabel(0))
}
