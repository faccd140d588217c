package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DisplayDateLayout is how a job's effective date is shown on its card.
const DisplayDateLayout = "2006-01-02"

type Category string

const (
	CategoryResearch   Category = "Research/Development"
	CategoryBusiness   Category = "Business/Operations"
	CategoryTechnology Category = "Technology/Engineering"
)

// Categories returns the fixed enumeration in display order.
func Categories() []Category {
	return []Category{CategoryResearch, CategoryBusiness, CategoryTechnology}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// JobID is opaque. The backend hands out bigint ids, but nothing here
// depends on that, so it is carried as text.
type JobID string

func (id *JobID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = JobID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("job id: %w", err)
	}
	*id = JobID(n.String())
	return nil
}

// Scan lets GORM read bigint and text id columns alike.
func (id *JobID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ""
	case int64:
		*id = JobID(strconv.FormatInt(v, 10))
	case []byte:
		*id = JobID(v)
	case string:
		*id = JobID(v)
	default:
		return fmt.Errorf("job id: unsupported type %T", src)
	}
	return nil
}

func (id JobID) Value() (driver.Value, error) {
	return string(id), nil
}

// Job mirrors a row of the backend "jobs" table. Rows are created and
// updated by the data service; this code only reads them.
type Job struct {
	ID        JobID      `gorm:"primaryKey" json:"id"`
	Title     string     `json:"title"`
	Company   string     `json:"company"`
	Location  string     `json:"location"`
	Category  Category   `json:"category"`
	PostedAt  *time.Time `json:"posted_at"`
	CreatedAt time.Time  `json:"created_at"`
	Active    bool       `json:"active"`
	URL       string     `gorm:"column:url" json:"url"`
}

func (Job) TableName() string {
	return "jobs"
}

// EffectiveDate is the posted timestamp when present, else the creation
// timestamp. Used both for display and for ordering.
func (j Job) EffectiveDate() time.Time {
	if j.PostedAt != nil && !j.PostedAt.IsZero() {
		return *j.PostedAt
	}
	return j.CreatedAt
}

func (j Job) DisplayDate() string {
	return j.EffectiveDate().Format(DisplayDateLayout)
}
