package memory

import (
	_ "embed"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/glacefrais/storefront/internal/domain/product"
)

//go:embed products.json
var productsJSON []byte

// CatalogRepo holds the fixed, ordered product catalog. It is loaded once at
// startup and never mutated, so every method is safe for concurrent use
// without locking.
type CatalogRepo struct {
	items []product.Product
}

// NewCatalogRepo loads the embedded catalog dataset.
func NewCatalogRepo() (*CatalogRepo, error) {
	return NewCatalogRepoFromJSON(productsJSON)
}

func NewCatalogRepoFromJSON(data []byte) (*CatalogRepo, error) {
	var items []product.Product

	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	return &CatalogRepo{items: items}, nil
}

// All returns the full catalog in load order. Callers get a copy of the
// slice header chain so they cannot reorder the backing catalog.
func (r *CatalogRepo) All() []product.Product {
	out := make([]product.Product, len(r.items))
	copy(out, r.items)
	return out
}

// GetByID scans for the product whose id renders to the given string. The
// comparison is textual: "01" does not match id 1.
func (r *CatalogRepo) GetByID(id string) (product.Product, error) {
	for _, p := range r.items {
		if strconv.Itoa(p.ID) == id {
			return p, nil
		}
	}

	return product.Product{}, product.ErrNotFound
}

// ByCategory filters by exact, case-sensitive category equality. The
// CategoryAll sentinel bypasses filtering.
func (r *CatalogRepo) ByCategory(category string) []product.Product {
	if category == product.CategoryAll {
		return r.All()
	}

	out := make([]product.Product, 0)

	for _, p := range r.items {
		if p.Category == category {
			out = append(out, p)
		}
	}

	return out
}

// Search returns products whose category matches (or CategoryAll is given)
// and whose name or description contains term, case-insensitively. An empty
// term matches everything. Order is stable relative to All().
func (r *CatalogRepo) Search(term, category string) []product.Product {
	needle := strings.ToLower(term)

	out := make([]product.Product, 0)

	for _, p := range r.items {
		if category != product.CategoryAll && p.Category != category {
			continue
		}

		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}

		out = append(out, p)
	}

	return out
}

// Categories lists the distinct categories in first-appearance order. The
// "all" sentinel is a caller convention and is never part of this list.
func (r *CatalogRepo) Categories() []string {
	seen := make(map[string]struct{}, len(r.items))
	out := make([]string, 0)

	for _, p := range r.items {
		if _, ok := seen[p.Category]; ok {
			continue
		}

		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}

	return out
}

// Featured returns the products flagged featured, in load order.
func (r *CatalogRepo) Featured() []product.Product {
	out := make([]product.Product, 0)

	for _, p := range r.items {
		if p.Featured {
			out = append(out, p)
		}
	}

	return out
}

// NextID is the id the creation handler stamps on a candidate record. It is
// count-based (len+1), the scheme the original API used; it can collide with
// existing ids if the dataset ever has gaps, which is acceptable because
// created records are never persisted.
func (r *CatalogRepo) NextID() int {
	return len(r.items) + 1
}
