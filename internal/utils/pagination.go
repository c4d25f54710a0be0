package utils

import (
	"math"    // Page number bound
	"strconv" // Query value parsing
)

// MaxPageSize caps the limit query parameter
const MaxPageSize = 100

// MaxPageNumber keeps Offset from overflowing at any limit up to MaxPageSize
const MaxPageNumber = math.MaxInt / MaxPageSize

// Page is a resolved page/limit pair
type Page struct {
	Number int // 1-based page number
	Limit  int // Items per page
}

// ParsePage reads the page and limit query values. Missing, unparsable or
// non-positive values fall back to page 1 and defaultLimit. Page numbers above
// MaxPageNumber are clamped to it; such a page is past the end of any listing.
func ParsePage(page, limit string, defaultLimit int) Page {
	p := Page{Number: 1, Limit: defaultLimit}
	if v, err := strconv.Atoi(page); err == nil && v > 0 {
		p.Number = min(v, MaxPageNumber) // Set page if valid
	}
	if v, err := strconv.Atoi(limit); err == nil && v > 0 {
		p.Limit = min(v, MaxPageSize) // Set limit within bounds
	}
	return p
}

// Offset is the number of rows to skip
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// TotalPages is ceil(total/limit)
func (p Page) TotalPages(total int64) int {
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
