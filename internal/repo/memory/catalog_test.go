package memory_test

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/glacefrais/storefront/internal/domain/product"
	"github.com/glacefrais/storefront/internal/repo/memory"
)

const fixtureJSON = `[
  {"id": 1, "name": "Glace Chocolat", "description": "Chocolat noir intense", "price": 4.8, "category": "glaces", "image": "/images/c.jpg", "featured": true},
  {"id": 2, "name": "Sorbet Citron", "description": "Citrons de Menton", "price": 4.2, "category": "sorbets", "image": "/images/s.jpg"},
  {"id": 3, "name": "Milkshake Fraise", "description": "Un nuage de lait au chocolat blanc", "price": 6.5, "category": "boissons", "image": "/images/m.jpg", "featured": true}
]`

func newFixtureRepo(t *testing.T) *memory.CatalogRepo {
	t.Helper()

	repo, err := memory.NewCatalogRepoFromJSON([]byte(fixtureJSON))
	if err != nil {
		t.Fatalf("failed to load fixture catalog: %v", err)
	}

	return repo
}

func TestEmbeddedCatalogLoads(t *testing.T) {
	repo, err := memory.NewCatalogRepo()
	if err != nil {
		t.Fatalf("embedded catalog failed to load: %v", err)
	}

	if len(repo.All()) == 0 {
		t.Fatal("embedded catalog is empty")
	}
}

func TestGetByIDReturnsEachProduct(t *testing.T) {
	repo := newFixtureRepo(t)

	for _, want := range repo.All() {
		got, err := repo.GetByID(strconv.Itoa(want.ID))

		if err != nil {
			t.Fatalf("GetByID(%d) errored: %v", want.ID, err)
		}

		if !reflect.DeepEqual(got, want) {
			t.Fatalf("GetByID(%d) = %+v, want %+v", want.ID, got, want)
		}
	}
}

func TestGetByIDComparesAsText(t *testing.T) {
	repo := newFixtureRepo(t)

	tests := []struct {
		id      string
		wantErr bool
	}{
		{id: "1", wantErr: false},
		{id: "01", wantErr: true}, // textual comparison, no numeric coercion
		{id: "999", wantErr: true},
		{id: "", wantErr: true},
		{id: "abc", wantErr: true},
	}

	for _, tt := range tests {
		_, err := repo.GetByID(tt.id)

		if tt.wantErr && err != product.ErrNotFound {
			t.Fatalf("GetByID(%q) error = %v, want ErrNotFound", tt.id, err)
		}
		if !tt.wantErr && err != nil {
			t.Fatalf("GetByID(%q) unexpected error: %v", tt.id, err)
		}
	}
}

func TestByCategory(t *testing.T) {
	repo := newFixtureRepo(t)

	// the "all" sentinel bypasses filtering entirely
	if got, want := repo.ByCategory(product.CategoryAll), repo.All(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ByCategory(all) = %+v, want All() = %+v", got, want)
	}

	got := repo.ByCategory("glaces")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("ByCategory(glaces) = %+v", got)
	}

	// case-sensitive, exact match
	if got := repo.ByCategory("Glaces"); len(got) != 0 {
		t.Fatalf("ByCategory(Glaces) should be empty, got %+v", got)
	}

	if got := repo.ByCategory("confiseries"); len(got) != 0 {
		t.Fatalf("unknown category should yield an empty sequence, got %+v", got)
	}
}

func TestSearch(t *testing.T) {
	repo := newFixtureRepo(t)

	tests := []struct {
		name     string
		term     string
		category string
		wantIDs  []int
	}{
		{name: "empty_term_all", term: "", category: "all", wantIDs: []int{1, 2, 3}},
		{name: "name_match", term: "fraise", category: "all", wantIDs: []int{3}},
		{name: "description_match", term: "menton", category: "all", wantIDs: []int{2}},
		{name: "case_insensitive_upper", term: "CHOCOLAT", category: "all", wantIDs: []int{1, 3}},
		{name: "case_insensitive_lower", term: "chocolat", category: "all", wantIDs: []int{1, 3}},
		{name: "term_and_category", term: "chocolat", category: "boissons", wantIDs: []int{3}},
		{name: "no_match", term: "pistache", category: "all", wantIDs: []int{}},
		{name: "empty_term_category", term: "", category: "sorbets", wantIDs: []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.Search(tt.term, tt.category)

			ids := make([]int, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}

			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Fatalf("Search(%q, %q) ids = %v, want %v", tt.term, tt.category, ids, tt.wantIDs)
			}
		})
	}
}

func TestSearchIsIdempotentAndNonMutating(t *testing.T) {
	repo := newFixtureRepo(t)

	before := repo.All()

	first := repo.Search("chocolat", product.CategoryAll)
	second := repo.Search("chocolat", product.CategoryAll)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("Search is not idempotent")
	}

	if !reflect.DeepEqual(repo.All(), before) {
		t.Fatal("Search mutated the catalog")
	}
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	repo := newFixtureRepo(t)

	want := []string{"glaces", "sorbets", "boissons"}

	if got := repo.Categories(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
}

func TestFeatured(t *testing.T) {
	repo := newFixtureRepo(t)

	got := repo.Featured()

	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("Featured() = %+v", got)
	}
}

func TestNextID(t *testing.T) {
	repo := newFixtureRepo(t)

	if got := repo.NextID(); got != 4 {
		t.Fatalf("NextID() = %d, want 4", got)
	}
}

func TestEmptyCatalogIsValid(t *testing.T) {
	repo, err := memory.NewCatalogRepoFromJSON([]byte(`[]`))
	if err != nil {
		t.Fatalf("empty catalog should load: %v", err)
	}

	if got := repo.All(); len(got) != 0 {
		t.Fatalf("All() on empty catalog = %+v", got)
	}

	if _, err := repo.GetByID("1"); err != product.ErrNotFound {
		t.Fatalf("GetByID on empty catalog error = %v, want ErrNotFound", err)
	}

	if got := repo.NextID(); got != 1 {
		t.Fatalf("NextID() on empty catalog = %d, want 1", got)
	}
}
