package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobright-api/pkg/models"
)

func TestFilterListings(t *testing.T) {
	tests := []struct {
		name   string
		filter models.ListingFilter
		want   []string
	}{
		{name: "empty filter", filter: models.ListingFilter{}, want: []string{"1", "2", "3"}},
		{name: "location", filter: models.ListingFilter{Location: "remote"}, want: []string{"2"}},
		{name: "experience case insensitive", filter: models.ListingFilter{Experience: "ENTRY"}, want: []string{"3"}},
		{name: "salary substring", filter: models.ListingFilter{Salary: "$90k"}, want: []string{"2"}},
		{name: "skills substring", filter: models.ListingFilter{Skills: []string{"react"}}, want: []string{"1", "3"}},
		{name: "combined", filter: models.ListingFilter{Location: "a", Skills: []string{"type"}}, want: []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterListings(sampleJobs(), tt.filter)))
		})
	}
}
