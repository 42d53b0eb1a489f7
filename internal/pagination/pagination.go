package pagination

import (
	"gorm.io/gorm"
)

// MaxLimit caps the page size a caller may request.
const MaxLimit = 100

// PageRequest holds MockAPI-style pagination parameters parsed from query
// strings. A zero Page means the full list is returned.
type PageRequest struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in the page size when only page is provided.
func (p *PageRequest) Defaults() {
	if p.Page > 0 && p.Limit == 0 {
		p.Limit = 10
	}
}

// Enabled reports whether the request asks for a single page.
func (p PageRequest) Enabled() bool {
	return p.Page > 0 || p.Limit > 0
}

// Offset returns the SQL OFFSET for the current page.
func (p PageRequest) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given
// page request. It is a no-op when pagination is not enabled.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !req.Enabled() {
			return db
		}
		return db.Offset(req.Offset()).Limit(req.Limit)
	}
}
