package queries

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxListLimit = 100

	// MaxPage keeps (Page-1)*MaxListLimit inside int32 for the OFFSET parameter.
	MaxPage = math.MaxInt32/MaxListLimit + 1
)

type PageRequest struct {
	Page  int
	Limit int
}

// Normalize clamps the page to 1..MaxPage and the limit to 1..MaxListLimit, applying defaults for zero values.
// Pages past the last one stay valid and come back empty.
func (p PageRequest) Normalize() PageRequest {
	switch {
	case p.Page < 1:
		p.Page = DefaultPage
	case p.Page > MaxPage:
		p.Page = MaxPage
	}
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultLimit
	case p.Limit > MaxListLimit:
		p.Limit = MaxListLimit
	}
	return p
}

func (p PageRequest) Offset() int32 {
	// #nosec G115 -- bounded by Normalize
	return int32((p.Page - 1) * p.Limit)
}

func (p PageRequest) Limit32() int32 {
	// #nosec G115 -- bounded by Normalize
	return int32(p.Limit)
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(p PageRequest, total int64) Pagination {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Pagination{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: pages,
	}
}
