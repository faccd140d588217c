package supabase

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/justsurfingit/longevity-jobs/internal/models"
)

// jobRow is a jobs row as PostgREST serialises it. Timestamps arrive as
// strings whose shape depends on the column type, so they are parsed by
// hand.
type jobRow struct {
	ID        models.JobID `json:"id"`
	Title     string       `json:"title"`
	Company   string       `json:"company"`
	Location  string       `json:"location"`
	Category  string       `json:"category"`
	PostedAt  *string      `json:"posted_at"`
	CreatedAt string       `json:"created_at"`
	Active    bool         `json:"active"`
	URL       string       `json:"url"`
}

// Layouts for timestamptz, timestamp and date columns.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Newf("unrecognised timestamp %q", s)
}

func (r jobRow) toJob() (models.Job, error) {
	created, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return models.Job{}, errors.Wrap(err, "created_at")
	}

	j := models.Job{
		ID:        r.ID,
		Title:     r.Title,
		Company:   r.Company,
		Location:  r.Location,
		Category:  models.Category(strings.TrimSpace(r.Category)),
		CreatedAt: created,
		Active:    r.Active,
		URL:       r.URL,
	}
	if r.PostedAt != nil && strings.TrimSpace(*r.PostedAt) != "" {
		posted, err := parseTimestamp(*r.PostedAt)
		if err != nil {
			return models.Job{}, errors.Wrap(err, "posted_at")
		}
		j.PostedAt = &posted
	}
	return j, nil
}
