// Package listing implements the deterministic filter → sort → paginate
// pipeline shared by the order, withdrawal and product tables.
package listing

import (
	"sort"
	"strings"
)

// StatusAll is the distinguished filter value that passes every row,
// including rows whose status degraded to the OTHER bucket.
const StatusAll = "ALL"

// StatusOther mirrors the degradation bucket the decoration step emits for
// unknown raw statuses. It is not a real status: rows carrying it match no
// specific filter value and only surface under StatusAll.
const StatusOther = "OTHER"

// PageSize is fixed for every list screen.
const PageSize = 10

// Row is a decorated record: derived fields are computed once, before
// filtering, so later steps never touch raw wire shapes.
type Row struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Contact     string  `json:"contact,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   int64   `json:"created_at"`
	Total       float64 `json:"total"`
}

// Sort names one of the four supported orderings.
type Sort string

const (
	SortCreatedAtDesc Sort = "created_at_desc" // default
	SortCreatedAtAsc  Sort = "created_at_asc"
	SortTotalDesc     Sort = "total_desc"
	SortTotalAsc      Sort = "total_asc"
)

// ParseSort maps arbitrary input to a supported ordering, defaulting to
// creation time descending. Total; never errors.
func ParseSort(raw string) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(raw))) {
	case SortCreatedAtAsc:
		return SortCreatedAtAsc
	case SortTotalDesc:
		return SortTotalDesc
	case SortTotalAsc:
		return SortTotalAsc
	}
	return SortCreatedAtDesc
}

// Params are the user-controlled inputs of one list screen.
type Params struct {
	Query  string
	Status string // a normalized status value, or StatusAll
	Sort   Sort
	Page   int
}

// Page is the exact slice of rows to render plus its pagination envelope.
type Page struct {
	Data       []Row `json:"data"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	Page       int   `json:"page"`
}

// Order runs steps 2–4 of the pipeline (query filter, status filter, stable
// sort) and returns the full ordered slice. It is independent of Page, so a
// page-only change can reuse its result.
func Order(rows []Row, query, status string, by Sort) []Row {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if q != "" && !matchesQuery(r, q) {
			continue
		}
		if status != StatusAll && (r.Status == StatusOther || r.Status != status) {
			continue
		}
		out = append(out, r)
	}

	// Stable sort: ties keep input order so repeated derivations are
	// byte-identical.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch by {
		case SortCreatedAtAsc:
			return a.CreatedAt < b.CreatedAt
		case SortTotalDesc:
			return a.Total > b.Total
		case SortTotalAsc:
			return a.Total < b.Total
		default:
			return a.CreatedAt > b.CreatedAt
		}
	})
	return out
}

// Paginate runs step 5: clamp the requested page into [1, totalPages] and
// slice. An out-of-range request degrades to the nearest valid page rather
// than an empty result.
func Paginate(ordered []Row, page int) Page {
	total := len(ordered)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Data:       ordered[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
	}
}

// Derive runs the whole pipeline in one call over already-decorated rows.
func Derive(rows []Row, p Params) Page {
	return Paginate(Order(rows, p.Query, p.Status, p.Sort), p.Page)
}

func matchesQuery(r Row, q string) bool {
	return strings.Contains(strings.ToLower(r.ID), q) ||
		strings.Contains(strings.ToLower(r.DisplayName), q) ||
		strings.Contains(strings.ToLower(r.Contact), q)
}

// JoinName trims and concatenates name parts, skipping empties. Used by the
// decoration step to build a row's display name from raw fields.
func JoinName(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
