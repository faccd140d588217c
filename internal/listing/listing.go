package listing

import (
	"slices"
	"sort"
	"strings"

	"github.com/justsurfingit/longevity-jobs/internal/models"
)

// Grid is 3 columns by 7 rows.
const (
	Columns  = 3
	Rows     = 7
	PageSize = Columns * Rows
)

// Options are the selectable filter values.
type Options struct {
	Locations  []string `json:"locations"`
	Categories []string `json:"categories"`
}

// View is the evaluated result of a State over a job list.
type View struct {
	State      State        `json:"-"`
	Jobs       []models.Job `json:"jobs"`
	Matching   int          `json:"matching"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	HasPrev    bool         `json:"has_prev"`
	HasNext    bool         `json:"has_next"`
	Options    Options      `json:"options"`
}

// Matches reports whether j passes search, location and category.
func Matches(j models.Job, s State) bool {
	return matchesSearch(j, s.Search) &&
		matchesSet(j.Location, s.Locations) &&
		matchesSet(string(j.Category), s.Categories)
}

func matchesSearch(j models.Job, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(j.Title), strings.ToLower(q))
}

func matchesSet(v string, selected []string) bool {
	return len(selected) == 0 || slices.Contains(selected, v)
}

// Filter returns the jobs matching s, in input order. The input slice is
// not modified.
func Filter(jobs []models.Job, s State) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if Matches(j, s) {
			out = append(out, j)
		}
	}
	return out
}

// SortByEffectiveDate orders jobs newest first by effective date. Ties
// keep their relative order so repeated evaluations agree.
func SortByEffectiveDate(jobs []models.Job) {
	sort.SliceStable(jobs, func(a, b int) bool {
		return jobs[a].EffectiveDate().After(jobs[b].EffectiveDate())
	})
}

// TotalPages is ceil(n / PageSize); zero for n == 0.
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// Paginate returns the slice of jobs shown on page (1-indexed). A page past
// the end yields an empty slice.
func Paginate(jobs []models.Job, page int) []models.Job {
	if page < 1 {
		page = 1
	}
	// Bound before multiplying; a huge page would overflow the offset.
	if page > TotalPages(len(jobs)) {
		return []models.Job{}
	}
	start := (page - 1) * PageSize
	end := min(start+PageSize, len(jobs))
	return jobs[start:end]
}

// DistinctOptions derives the filter options from the full loaded list, so
// they stay put while the user filters.
func DistinctOptions(jobs []models.Job) Options {
	locSeen := map[string]bool{}
	catSeen := map[models.Category]bool{}
	var opts Options
	for _, j := range jobs {
		if j.Location != "" && !locSeen[j.Location] {
			locSeen[j.Location] = true
			opts.Locations = append(opts.Locations, j.Location)
		}
		if j.Category != "" {
			catSeen[j.Category] = true
		}
	}
	sort.Strings(opts.Locations)

	for _, c := range models.Categories() {
		if catSeen[c] {
			opts.Categories = append(opts.Categories, string(c))
		}
	}
	var unknown []string
	for c := range catSeen {
		if !c.Valid() {
			unknown = append(unknown, string(c))
		}
	}
	sort.Strings(unknown)
	opts.Categories = append(opts.Categories, unknown...)
	return opts
}

// Evaluate applies s to jobs: filter, order, paginate, and derive options.
// The page number is taken as given; see State.GoTo for clamping.
func Evaluate(jobs []models.Job, s State) View {
	if s.Page < 1 {
		s.Page = 1
	}
	matched := Filter(jobs, s)
	SortByEffectiveDate(matched)
	pages := TotalPages(len(matched))

	return View{
		State:      s,
		Jobs:       Paginate(matched, s.Page),
		Matching:   len(matched),
		Total:      len(jobs),
		Page:       s.Page,
		TotalPages: pages,
		HasPrev:    s.Page > 1,
		HasNext:    s.Page < pages,
		Options:    DistinctOptions(jobs),
	}
}

// PrevState and NextState are the states behind the navigation controls.
func (v View) PrevState() State {
	return v.State.PrevPage()
}

func (v View) NextState() State {
	return v.State.NextPage(v.TotalPages)
}

// FirstPageState is the current filters on page 1.
func (v View) FirstPageState() State {
	return v.State.GoTo(1, v.TotalPages)
}
