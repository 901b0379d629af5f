package fop

import (
	"fmt"
	"strconv"
)

// DefaultLimit is the page size used when a request names none.
const DefaultLimit = 100

// Page is an offset/limit window over a sorted result.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPage returns the first page at DefaultLimit.
func DefaultPage() Page {
	return Page{Limit: DefaultLimit}
}

// ParsePage parses limit and offset query values. Empty values take the
// defaults. Limit must be at least 1 and offset at least 0.
func ParsePage(limit string, offset string) (Page, error) {
	page := DefaultPage()

	if limit != "" {
		l, err := strconv.Atoi(limit)
		if err != nil {
			return Page{}, fmt.Errorf("limit conversion: %w", err)
		}
		if l < 1 {
			return Page{}, fmt.Errorf("limit value too small, must be at least 1")
		}
		page.Limit = l
	}

	if offset != "" {
		o, err := strconv.Atoi(offset)
		if err != nil {
			return Page{}, fmt.Errorf("offset conversion: %w", err)
		}
		if o < 0 {
			return Page{}, fmt.Errorf("offset value too small, must be at least 0")
		}
		page.Offset = o
	}

	return page, nil
}
