package catalog

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobright-api/pkg/models"
)

func TestNewWithSampleJobs(t *testing.T) {
	c, err := NewWithSampleJobs()
	require.NoError(t, err)

	assert.Equal(t, 7, c.Len())
	job, err := c.Get("4")
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", job.Title)
	assert.Equal(t, "2-4 years", job.Experience)
	assert.Equal(t, 80, job.Match())
	assert.False(t, c.LastRefreshed().IsZero())
}

func TestCatalog_GetMissing(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	_, err = c.Get("nope")
	assert.True(t, errors.Is(err, ErrJobNotFound))
}

func TestCatalog_ListReturnsCopy(t *testing.T) {
	c, err := New([]models.Job{{ID: "a", Title: "A"}})
	require.NoError(t, err)

	jobs := c.List()
	jobs[0].Title = "changed"

	job, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "A", job.Title)
}

func TestCatalog_ReplaceRejectsDuplicates(t *testing.T) {
	c, err := New([]models.Job{{ID: "a"}})
	require.NoError(t, err)

	err = c.Replace([]models.Job{{ID: "x"}, {ID: "x"}})
	assert.True(t, errors.Is(err, ErrDuplicateID))

	assert.Equal(t, 1, c.Len())
	_, err = c.Get("a")
	assert.NoError(t, err)
}

func TestCatalog_Replace(t *testing.T) {
	c, err := New([]models.Job{{ID: "a"}})
	require.NoError(t, err)

	require.NoError(t, c.Replace([]models.Job{{ID: "b"}, {ID: "c"}}))
	assert.Equal(t, 2, c.Len())
	_, err = c.Get("a")
	assert.Error(t, err)
	assert.Equal(t, "c", c.List()[1].ID)
}

func TestCatalog_Merge(t *testing.T) {
	c, err := New([]models.Job{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)

	added := c.Merge([]models.Job{{ID: "b", Title: "dup"}, {ID: "c"}, {ID: "c"}}, false)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"a", "b", "c"}, ids(c.List()))

	job, err := c.Get("b")
	require.NoError(t, err)
	assert.Empty(t, job.Title)

	added = c.Merge([]models.Job{{ID: "z"}, {ID: "z"}}, true)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"z"}, ids(c.List()))
	_, err = c.Get("a")
	assert.True(t, errors.Is(err, ErrJobNotFound))
}

func TestCatalog_MergeConcurrent(t *testing.T) {
	c, err := New([]models.Job{{ID: "seed"}})
	require.NoError(t, err)

	const writers, perWriter = 20, 100
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			batch := make([]models.Job, perWriter)
			for i := range batch {
				batch[i] = models.Job{ID: fmt.Sprintf("w%d-%d", w, i)}
			}
			assert.Equal(t, perWriter, c.Merge(batch, false))
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 1+writers*perWriter, c.Len())
	for w := 0; w < writers; w++ {
		_, err := c.Get(fmt.Sprintf("w%d-%d", w, perWriter-1))
		assert.NoError(t, err)
	}
}

func ids(jobs []models.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}
