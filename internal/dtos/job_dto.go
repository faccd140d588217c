package dtos

import (
	"github.com/justsurfingit/longevity-jobs/internal/listing"
	"github.com/justsurfingit/longevity-jobs/internal/models"
)

// JobListRequest is the query string of GET /api/v1/jobs.
type JobListRequest struct {
	Search     string   `form:"q"`
	Locations  []string `form:"location"`
	Categories []string `form:"category"`
	Page       int      `form:"page" binding:"omitempty,min=1"`
}

func (r JobListRequest) State() listing.State {
	s := listing.NewState().WithSearch(r.Search)
	for _, l := range r.Locations {
		if l != "" && !s.LocationSelected(l) {
			s = s.ToggleLocation(l)
		}
	}
	for _, c := range r.Categories {
		if c != "" && !s.CategorySelected(c) {
			s = s.ToggleCategory(c)
		}
	}
	if r.Page > 1 {
		s.Page = r.Page
	}
	return s
}

type JobCard struct {
	ID          models.JobID `json:"id"`
	Title       string       `json:"title"`
	Company     string       `json:"company"`
	Location    string       `json:"location"`
	Category    string       `json:"category"`
	DisplayDate string       `json:"display_date"`
	URL         string       `json:"url"`
}

type JobListResponse struct {
	Jobs       []JobCard       `json:"jobs"`
	Matching   int             `json:"matching"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
	HasPrev    bool            `json:"has_prev"`
	HasNext    bool            `json:"has_next"`
	Options    listing.Options `json:"options"`
}

func NewJobListResponse(v listing.View) JobListResponse {
	cards := make([]JobCard, 0, len(v.Jobs))
	for _, j := range v.Jobs {
		cards = append(cards, JobCard{
			ID:          j.ID,
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.Location,
			Category:    string(j.Category),
			DisplayDate: j.DisplayDate(),
			URL:         j.URL,
		})
	}
	return JobListResponse{
		Jobs:       cards,
		Matching:   v.Matching,
		Total:      v.Total,
		Page:       v.Page,
		PageSize:   listing.PageSize,
		TotalPages: v.TotalPages,
		HasPrev:    v.HasPrev,
		HasNext:    v.HasNext,
		Options:    v.Options,
	}
}
