// Package listing holds the job board's search, filter and pagination
// logic. Everything here is pure: a State plus a job slice in, a View out.
package listing

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Query parameter names used to carry State between requests.
const (
	ParamSearch   = "q"
	ParamLocation = "location"
	ParamCategory = "category"
	ParamPage     = "page"
)

// State is the filter state of one listing view. Values are never mutated
// in place; the reducers below return modified copies.
type State struct {
	Search     string
	Locations  []string
	Categories []string
	Page       int
}

// NewState returns the initial state: no filters, first page.
func NewState() State {
	return State{Page: 1}
}

// ParseState reads a State from query values. Blank selections are
// dropped and a missing or invalid page becomes 1.
func ParseState(v url.Values) State {
	s := State{
		Search:     v.Get(ParamSearch),
		Locations:  compact(v[ParamLocation]),
		Categories: compact(v[ParamCategory]),
		Page:       1,
	}
	if p, err := strconv.Atoi(v.Get(ParamPage)); err == nil && p > 1 {
		s.Page = p
	}
	return s
}

// Values encodes the state back to query values. Defaults are omitted so
// the first unfiltered page is a bare URL.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Search != "" {
		v.Set(ParamSearch, s.Search)
	}
	for _, l := range s.Locations {
		v.Add(ParamLocation, l)
	}
	for _, c := range s.Categories {
		v.Add(ParamCategory, c)
	}
	if s.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(s.Page))
	}
	return v
}

// Encode is Values().Encode(), for templates.
func (s State) Encode() string {
	return s.Values().Encode()
}

func (s State) HasFilters() bool {
	return strings.TrimSpace(s.Search) != "" || len(s.Locations) > 0 || len(s.Categories) > 0
}

func (s State) LocationSelected(l string) bool {
	return slices.Contains(s.Locations, l)
}

func (s State) CategorySelected(c string) bool {
	return slices.Contains(s.Categories, c)
}

// WithSearch replaces the search text. The page number is left alone.
func (s State) WithSearch(q string) State {
	s.Search = q
	return s
}

// ToggleLocation adds l to the selection, or removes it if present.
func (s State) ToggleLocation(l string) State {
	s.Locations = toggle(s.Locations, l)
	return s
}

func (s State) ToggleCategory(c string) State {
	s.Categories = toggle(s.Categories, c)
	return s
}

// ClearFilters empties search and both selections.
func (s State) ClearFilters() State {
	s.Search = ""
	s.Locations = nil
	s.Categories = nil
	return s
}

// GoTo moves to page p clamped to [1, totalPages].
func (s State) GoTo(p, totalPages int) State {
	s.Page = clampPage(p, totalPages)
	return s
}

func (s State) NextPage(totalPages int) State {
	if s.Page >= totalPages {
		return s.GoTo(totalPages, totalPages)
	}
	return s.GoTo(s.Page+1, totalPages)
}

func (s State) PrevPage() State {
	if s.Page <= 1 {
		s.Page = 1
		return s
	}
	s.Page--
	return s
}

func clampPage(p, totalPages int) int {
	if totalPages > 0 && p > totalPages {
		p = totalPages
	}
	if p < 1 {
		p = 1
	}
	return p
}

func toggle(set []string, v string) []string {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return append(slices.Clone(set), v)
}

func compact(in []string) []string {
	var out []string
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}
