package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobright-api/pkg/models"
)

func TestParseSalaryRange(t *testing.T) {
	tests := []struct {
		text     string
		min, max int
		ok       bool
	}{
		{text: "$90k - $130k", min: 90, max: 130, ok: true},
		{text: "$80k-$120k", min: 80, max: 120, ok: true},
		{text: "Base $100k  -  $150k plus equity", min: 100, max: 150, ok: true},
		{text: "Competitive", ok: false},
		{text: "$120,000 - $150,000", ok: false},
		{text: "$90K - $130K", ok: false},
		{text: "", ok: false},
		{text: "$99999999999999999999k - $1k", min: math.MaxInt, max: 1, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			min, max, ok := ParseSalaryRange(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.min, min)
				assert.Equal(t, tt.max, max)
			}
		})
	}
}

func TestApplyFilters_OverflowingSalaryIsExcluded(t *testing.T) {
	jobs := []models.Job{
		{ID: "huge", Salary: "$99999999999999999999k - $99999999999999999999k"},
		{ID: "fits", Salary: "$90k - $130k"},
		{ID: "free-text", Salary: "Competitive"},
	}
	c := DefaultCriteria()
	c.SalaryRange = []int{50, 150}

	assert.Equal(t, []string{"fits", "free-text"}, ids(ApplyFilters(jobs, c)))
}
