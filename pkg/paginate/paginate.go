package paginate

import (
	"math"
	"net/url"
	"strconv"
)

const (
	DefaultSize = 20
	MaxSize     = 100

	// MaxNumber keeps the item arithmetic of any page within int.
	MaxNumber = math.MaxInt / MaxSize
)

// A Page describes one page of a list with a known total.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"limit"`
	Total  int `json:"total"`
}

// New returns a normalized [Page].
//
// Page numbers start at 1, sizes fall back to [DefaultSize] and are capped by
// [MaxSize], page numbers are capped by [MaxNumber], negative totals become
// zero.
func New(number, size, total int) Page {
	if number < 1 {
		number = 1
	}
	if number > MaxNumber {
		number = MaxNumber
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	if total < 0 {
		total = 0
	}
	return Page{Number: number, Size: size, Total: total}
}

// FromQuery reads "page" and "limit" query parameters.
// Unparsable values are treated as absent.
func FromQuery(q url.Values) Page {
	number, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("limit"))
	return New(number, size, 0)
}

// WithTotal returns a copy of p holding total.
func (p Page) WithTotal(total int) Page {
	return New(p.Number, p.Size, total)
}

func (p Page) TotalPages() int {
	if p.Total == 0 || p.Size == 0 {
		return 0
	}
	return (p.Total + p.Size - 1) / p.Size
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages()
}

// First returns the 1-based number of the first item on the page,
// or 0 when the page is past the end.
func (p Page) First() int {
	if p.Offset() >= p.Total {
		return 0
	}
	return p.Offset() + 1
}

// Last returns the 1-based number of the last item on the page,
// or 0 when the page is past the end.
func (p Page) Last() int {
	if p.First() == 0 {
		return 0
	}
	return min(p.Offset()+p.Size, p.Total)
}

// Meta is the JSON shape of pagination sent to admin clients.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
	First      int  `json:"first"`
	Last       int  `json:"last"`
}

func (p Page) Meta() Meta {
	return Meta{
		Page:       p.Number,
		Limit:      p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages(),
		HasPrev:    p.HasPrev(),
		HasNext:    p.HasNext(),
		First:      p.First(),
		Last:       p.Last(),
	}
}
