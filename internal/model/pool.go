package model

// Pool holds the classified photo collection, grouped by category. It is
// built once after a scan and read-only afterward.
type Pool struct {
	byCategory map[Category][]PhotoRecord
	total      int
}

// NewPool creates an empty pool
func NewPool() *Pool {
	return &Pool{byCategory: make(map[Category][]PhotoRecord)}
}

// Add appends a classified photo to its category bucket
func (p *Pool) Add(photo PhotoRecord) {
	p.byCategory[photo.Category] = append(p.byCategory[photo.Category], photo)
	p.total++
}

// ByCategory returns the photos classified into the given category. The
// returned slice is shared; callers must not mutate it.
func (p *Pool) ByCategory(c Category) []PhotoRecord {
	return p.byCategory[c]
}

// Len returns the total number of photos in the pool
func (p *Pool) Len() int {
	return p.total
}

// CategoryCount returns the number of photos in a single category
func (p *Pool) CategoryCount(c Category) int {
	return len(p.byCategory[c])
}

// Categories returns the categories that have at least one photo, in
// classification priority order
func (p *Pool) Categories() []Category {
	var out []Category
	for _, c := range AllCategories() {
		if len(p.byCategory[c]) > 0 {
			out = append(out, c)
		}
	}
	return out
}
