// Package query filters and paginates the in-memory job collection.
package query

import (
	"strings"

	"github.com/ruhan312/bangalore-connect/internal/db"
)

// PageSize is the fixed number of postings per listing page.
const PageSize = 10

// sentinel value meaning "filter disabled" for the select filters
const filterAll = "all"

// Filters is one listing request: optional criteria plus a page number.
// Zero values (and the "all" sentinel) disable the matching criterion.
type Filters struct {
	Search     string
	Type       string
	Experience string
	Location   string
	Page       int
}

// Result is the matching subset plus pagination metadata.
type Result struct {
	Jobs       []db.Job
	TotalJobs  int
	TotalPages int
	Page       int
}

// Filter applies the filters to the collection (already in store order,
// newest first) and slices out the requested page. A page beyond the last
// one yields an empty slice, never an error.
func Filter(jobs []db.Job, f Filters) Result {
	matched := make([]db.Job, 0, len(jobs))

	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, job := range jobs {
		if search != "" && !matchesSearch(job, search) {
			continue
		}
		if active(f.Type) && job.Type != f.Type {
			continue
		}
		if active(f.Experience) && job.Experience != f.Experience {
			continue
		}
		if active(f.Location) && !strings.Contains(job.Location, f.Location) {
			continue
		}
		matched = append(matched, job)
	}

	page := f.Page
	if page < 1 {
		page = 1
	}

	totalPages := (len(matched) + PageSize - 1) / PageSize

	start := (page - 1) * PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return Result{
		Jobs:       matched[start:end],
		TotalJobs:  len(matched),
		TotalPages: totalPages,
		Page:       page,
	}
}

// matchesSearch reports whether the lowercased search text occurs in the
// role, the company or the description.
func matchesSearch(job db.Job, search string) bool {
	return strings.Contains(strings.ToLower(job.Role), search) ||
		strings.Contains(strings.ToLower(job.Company), search) ||
		strings.Contains(strings.ToLower(job.Description), search)
}

func active(value string) bool {
	return value != "" && value != filterAll
}
