package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobright-api/pkg/models"
)

func TestUserID(t *testing.T) {
	v := New()

	for _, ok := range []string{"alice", "user_42", "a.b-c", "X"} {
		assert.NoError(t, v.Var(ok, "user_id"), ok)
	}
	for _, bad := range []string{"", "-alice", "has space", "semi;colon", "../etc"} {
		assert.Error(t, v.Var(bad, "user_id"), bad)
	}
}

func TestSalaryRange(t *testing.T) {
	v := New()

	type payload struct {
		Range []int `validate:"omitempty,salary_range"`
	}

	assert.NoError(t, v.Struct(payload{}))
	assert.NoError(t, v.Struct(payload{Range: []int{0, 200}}))
	assert.NoError(t, v.Struct(payload{Range: []int{100, 100}}))
	assert.Error(t, v.Struct(payload{Range: []int{100}}))
	assert.Error(t, v.Struct(payload{Range: []int{1, 2, 3}}))
	assert.Error(t, v.Struct(payload{Range: []int{150, 100}}))
	assert.Error(t, v.Struct(payload{Range: []int{-5, 100}}))
	assert.Error(t, v.Struct(payload{Range: []int{0, 250}}))
}

func TestFilterCriteriaTags(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(models.FilterCriteria{SalaryRange: []int{60, 120}}))
	assert.Error(t, v.Struct(models.FilterCriteria{SalaryRange: []int{60}}))
}
