package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"ShopCatalog/internal/catalog"
	"ShopCatalog/internal/docstore"
)

var errStoreDown = errors.New("connection refused")

// failStore simulates a configured store whose every call fails.
type failStore struct{}

func (failStore) List(context.Context, string) ([]docstore.Document, error) {
	return nil, errStoreDown
}
func (failStore) Insert(context.Context, string, []byte) (string, error) {
	return "", errStoreDown
}
func (failStore) Project(context.Context, string, string) ([]string, error) {
	return nil, errStoreDown
}
func (failStore) Collections(context.Context) ([]string, error) { return nil, errStoreDown }
func (failStore) Ping(context.Context) error                    { return errStoreDown }

var sampleCategories = []string{"Electronics", "Fashion", "Furniture", "Home", "Kitchen"}

func mustInsert(t *testing.T, store docstore.Store, p catalog.Product) {
	t.Helper()

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := store.Insert(context.Background(), catalog.Collection, data); err != nil {
		t.Fatalf("insert: %v", err)
	}
}

func TestListProductsWithoutStore(t *testing.T) {
	r := &catalog.Resolver{}

	items, count := r.ListProducts(context.Background(), "", "")
	if count != 6 || len(items) != 6 {
		t.Fatalf("count=%d len=%d, want 6", count, len(items))
	}
	if items[0].Title != "Wireless Noise Cancelling Headphones" {
		t.Fatalf("unexpected first item %q", items[0].Title)
	}
	for _, p := range items {
		if p.ID != "" {
			t.Fatalf("sample product %q has id %q", p.Title, p.ID)
		}
	}
}

func TestListProductsStoreFailureDegrades(t *testing.T) {
	r := &catalog.Resolver{Store: failStore{}}

	items, count := r.ListProducts(context.Background(), "", "")
	if count != 6 || len(items) != 6 {
		t.Fatalf("count=%d len=%d, want sample catalog", count, len(items))
	}
}

func TestListProductsCategoryFilterCaseInsensitive(t *testing.T) {
	r := &catalog.Resolver{}

	items, count := r.ListProducts(context.Background(), "electronics", "")
	if count != 2 {
		t.Fatalf("count=%d, want 2", count)
	}
	for _, p := range items {
		if p.Category != "Electronics" {
			t.Fatalf("category=%q leaked through filter", p.Category)
		}
	}
}

func TestListProductsQueryFilter(t *testing.T) {
	r := &catalog.Resolver{}
	ctx := context.Background()

	items, count := r.ListProducts(ctx, "", "BOTTLE")
	if count != 1 {
		t.Fatalf("q=BOTTLE count=%d, want 1", count)
	}
	if items[0].Title != "Stainless Steel Water Bottle" {
		t.Fatalf("q=BOTTLE matched %q", items[0].Title)
	}

	// Query also matches descriptions.
	items, count = r.ListProducts(ctx, "", "lumbar")
	if count != 1 || items[0].Title != "Ergonomic Office Chair" {
		t.Fatalf("q=lumbar count=%d items=%v", count, items)
	}
}

func TestListProductsFiltersCompose(t *testing.T) {
	r := &catalog.Resolver{}

	items, count := r.ListProducts(context.Background(), "ELECTRONICS", "hdr")
	if count != 1 {
		t.Fatalf("count=%d, want 1", count)
	}
	if items[0].Title != "4K UHD Smart TV 55\"" {
		t.Fatalf("matched %q", items[0].Title)
	}
}

func TestListProductsEmptyFilteredResultIsNotReplaced(t *testing.T) {
	ms := docstore.NewMemoryStore()
	mustInsert(t, ms, catalog.Product{Title: "Gaming Mouse", Price: 39.9, Category: "Gadgets", InStock: true})

	r := &catalog.Resolver{Store: ms}

	// The sample catalog has 2 Electronics entries; a healthy store with
	// none must yield an empty result, not the fallback.
	items, count := r.ListProducts(context.Background(), "Electronics", "")
	if count != 0 || len(items) != 0 {
		t.Fatalf("count=%d len=%d, want empty result", count, len(items))
	}
}

func TestListProductsAnnotatesStoreIDs(t *testing.T) {
	ms := docstore.NewMemoryStore()
	mustInsert(t, ms, catalog.Product{Title: "First", Price: 1, Category: "A", InStock: true})
	mustInsert(t, ms, catalog.Product{Title: "Second", Price: 2, Category: "B", InStock: true})

	r := &catalog.Resolver{Store: ms}

	items, count := r.ListProducts(context.Background(), "", "")
	if count != 2 {
		t.Fatalf("count=%d, want 2", count)
	}
	if items[0].Title != "First" || items[1].Title != "Second" {
		t.Fatalf("insertion order not preserved: %v", items)
	}
	if items[0].ID == "" || items[1].ID == "" || items[0].ID == items[1].ID {
		t.Fatalf("ids not annotated: %q %q", items[0].ID, items[1].ID)
	}
}

func TestListProductsInStockDefaultsTrue(t *testing.T) {
	ms := docstore.NewMemoryStore()
	if _, err := ms.Insert(context.Background(), catalog.Collection,
		[]byte(`{"title":"Bare","price":1,"category":"Misc"}`)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	r := &catalog.Resolver{Store: ms}

	items, _ := r.ListProducts(context.Background(), "", "")
	if len(items) != 1 || !items[0].InStock {
		t.Fatalf("in_stock default not applied: %v", items)
	}
}

func TestListProductsUndecodableDocumentFallsBack(t *testing.T) {
	ms := docstore.NewMemoryStore()
	mustInsert(t, ms, catalog.Product{Title: "Good", Price: 1, Category: "A", InStock: true})
	if _, err := ms.Insert(context.Background(), catalog.Collection, []byte(`{"title":123}`)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	r := &catalog.Resolver{Store: ms}

	// The whole fetch is discarded, including the decodable document.
	items, count := r.ListProducts(context.Background(), "", "")
	if count != 6 {
		t.Fatalf("count=%d, want sample catalog", count)
	}
	for _, p := range items {
		if p.ID != "" {
			t.Fatalf("fallback item %q carries store id %q", p.Title, p.ID)
		}
	}
}

func TestListCategoriesSampleFallback(t *testing.T) {
	r := &catalog.Resolver{}

	got := r.ListCategories(context.Background())
	if !reflect.DeepEqual(got, sampleCategories) {
		t.Fatalf("categories=%v, want %v", got, sampleCategories)
	}
}

func TestListCategoriesEmptyStoreFallsBack(t *testing.T) {
	r := &catalog.Resolver{Store: docstore.NewMemoryStore()}

	got := r.ListCategories(context.Background())
	if !reflect.DeepEqual(got, sampleCategories) {
		t.Fatalf("categories=%v, want sample fallback", got)
	}
}

func TestListCategoriesStoreFailureFallsBack(t *testing.T) {
	r := &catalog.Resolver{Store: failStore{}}

	got := r.ListCategories(context.Background())
	if !reflect.DeepEqual(got, sampleCategories) {
		t.Fatalf("categories=%v, want sample fallback", got)
	}
}

func TestListCategoriesDefaultsMissingToMisc(t *testing.T) {
	ms := docstore.NewMemoryStore()
	mustInsert(t, ms, catalog.Product{Title: "A", Price: 1, Category: "Books", InStock: true})
	mustInsert(t, ms, catalog.Product{Title: "B", Price: 2, InStock: true})

	r := &catalog.Resolver{Store: ms}

	got := r.ListCategories(context.Background())
	want := []string{"Books", "Misc"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("categories=%v, want %v", got, want)
	}
}
