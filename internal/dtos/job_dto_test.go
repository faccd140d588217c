package dtos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/justsurfingit/longevity-jobs/internal/listing"
	"github.com/justsurfingit/longevity-jobs/internal/models"
)

func TestJobListRequestState(t *testing.T) {
	s := JobListRequest{
		Search:     "lab",
		Locations:  []string{"Remote", "", "Remote", "Boston"},
		Categories: []string{"Business/Operations"},
		Page:       3,
	}.State()

	assert.Equal(t, "lab", s.Search)
	assert.Equal(t, []string{"Remote", "Boston"}, s.Locations)
	assert.Equal(t, []string{"Business/Operations"}, s.Categories)
	assert.Equal(t, 3, s.Page)
	assert.Equal(t, 1, JobListRequest{}.State().Page)
}

func TestNewJobListResponse(t *testing.T) {
	jobs := []models.Job{{
		ID: "1", Title: "Lead Scientist", Company: "Altos", Location: "Remote",
		Category: models.CategoryResearch, Active: true,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		URL:       "https://jobs.example/1",
	}}
	resp := NewJobListResponse(listing.Evaluate(jobs, listing.NewState()))

	assert.Len(t, resp.Jobs, 1)
	assert.Equal(t, "2024-01-01", resp.Jobs[0].DisplayDate)
	assert.Equal(t, "Research/Development", resp.Jobs[0].Category)
	assert.Equal(t, listing.PageSize, resp.PageSize)
	assert.Equal(t, 1, resp.TotalPages)
	assert.False(t, resp.HasNext)
}
