package pkg

type PaginationParams struct {
	Page  int
	Limit int
}

func (p *PaginationParams) Offset() int {
	if p == nil {
		return 0
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return (p.Page - 1) * p.Limit
}

func (p *PaginationParams) Normalize() {
	if p == nil {
		return
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

func NormalizePagination(p *PaginationParams) *PaginationParams {
	if p == nil {
		return &PaginationParams{Page: 1, Limit: 10}
	}
	p.Normalize()
	return p
}

type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginatedResponse[T any](data []T, page, limit int, total int64) *PaginatedResponse[T] {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}
	return &PaginatedResponse[T]{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Paginate slices an in-memory collection the way a LIMIT/OFFSET query would.
func Paginate[T any](items []T, pagination *PaginationParams) *PaginatedResponse[T] {
	pagination = NormalizePagination(pagination)

	total := len(items)
	start := pagination.Offset()
	if start > total {
		start = total
	}
	end := start + pagination.Limit
	if end > total {
		end = total
	}

	page := make([]T, end-start)
	copy(page, items[start:end])

	return NewPaginatedResponse(page, pagination.Page, pagination.Limit, int64(total))
}
