package store

import "strconv"

// Page is a 1-based pagination window. Absent or non-numeric query values
// fall back to page 1 and the caller's default size.
type Page struct {
	Number int
	Size   int
}

func PageFromQuery(page, limit string, defaultSize int) Page {
	p := Page{Number: 1, Size: defaultSize}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Number = n
	}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Size = n
	}
	return p
}

func (p Page) Skip() int64 {
	return int64(p.Number-1) * int64(p.Size)
}

func (p Page) Limit() int64 {
	return int64(p.Size)
}
