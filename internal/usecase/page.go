package usecase

// Page is one page of a listing together with the total number of matches.
type Page[T any] struct {
	Items    []*T
	Total    int64
	Page     int
	PageSize int
}

// HasNext reports whether rows remain after this page.
func (p *Page[T]) HasNext() bool {
	if p.PageSize <= 0 {
		return false
	}

	return int64(p.Page)*int64(p.PageSize) < p.Total
}

// HasPrevious reports whether this page is preceded by another.
func (p *Page[T]) HasPrevious() bool {
	return p.Page > 1
}
