package catalog

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"go.uber.org/zap"

	"ShopCatalog/internal/docstore"
)

// Resolver answers catalog reads. A nil Store is a legitimate state: every
// read serves the sample catalog instead of failing. Store errors on the
// read path are swallowed here and never reach the caller.
type Resolver struct {
	Store docstore.Store
	Log   *zap.Logger
}

// ListProducts returns the catalog filtered by the optional category
// (case-insensitive equality) and free-text query (case-insensitive
// substring over title and description), plus the result count. Both
// filters compose with AND. An empty filtered result is returned as-is;
// fallback substitution happens only when fetching, never after filtering.
func (r *Resolver) ListProducts(ctx context.Context, category, query string) ([]Product, int) {
	items := r.fetch(ctx)

	if category != "" {
		items = filterProducts(items, func(p Product) bool {
			return strings.EqualFold(p.Category, category)
		})
	}
	if query != "" {
		q := strings.ToLower(query)
		items = filterProducts(items, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Title), q) ||
				strings.Contains(strings.ToLower(p.Description), q)
		})
	}

	return items, len(items)
}

// ListCategories returns the distinct category names, sorted ascending.
// A reachable store with zero products counts as "no data yet" and falls
// back to the sample categories, same as a store failure.
func (r *Resolver) ListCategories(ctx context.Context) []string {
	if r.Store == nil {
		return distinctCategories(SampleCatalog())
	}

	docs, err := r.Store.List(ctx, Collection)
	if err == nil {
		var items []Product
		items, err = decodeProducts(docs)
		if err == nil {
			if cats := distinctCategories(items); len(cats) > 0 {
				return cats
			}
		}
	}
	if err != nil && r.Log != nil {
		r.Log.Warn("category listing degraded to sample catalog", zap.Error(err))
	}

	return distinctCategories(SampleCatalog())
}

// fetch loads the product collection. A missing store, a store error, or an
// undecodable document all degrade to a fresh copy of the sample catalog.
func (r *Resolver) fetch(ctx context.Context) []Product {
	if r.Store == nil {
		return SampleCatalog()
	}

	docs, err := r.Store.List(ctx, Collection)
	if err != nil {
		if r.Log != nil {
			r.Log.Warn("product listing degraded to sample catalog", zap.Error(err))
		}
		return SampleCatalog()
	}

	items, err := decodeProducts(docs)
	if err != nil {
		if r.Log != nil {
			r.Log.Warn("undecodable product document, serving sample catalog", zap.Error(err))
		}
		return SampleCatalog()
	}

	return items
}

// decodeProducts unmarshals store documents and annotates each product with
// its store-assigned id. One bad document fails the whole batch; the caller
// discards everything and falls back.
func decodeProducts(docs []docstore.Document) ([]Product, error) {
	items := make([]Product, 0, len(docs))
	for _, d := range docs {
		// in_stock defaults to true when the document omits it.
		p := Product{InStock: true}
		if err := json.Unmarshal(d.Data, &p); err != nil {
			return nil, err
		}
		p.ID = d.ID
		items = append(items, p)
	}
	return items, nil
}

func filterProducts(items []Product, keep func(Product) bool) []Product {
	out := make([]Product, 0, len(items))
	for _, p := range items {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func distinctCategories(items []Product) []string {
	set := make(map[string]struct{}, len(items))
	for _, p := range items {
		set[categoryOrDefault(p)] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
