package catalog

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"ShopCatalog/internal/docstore"
)

// Seeder bulk-inserts the sample catalog into the document store. Unlike
// the read path it never falls back: writes are durable or rejected, and a
// nil Store yields docstore.ErrNotConfigured.
type Seeder struct {
	Store docstore.Store
	Log   *zap.Logger
}

// Seed inserts every sample product whose title is not already present and
// returns the number inserted; re-running against a seeded store inserts 0.
// The existing-title set is snapshotted once up front and rows inserted
// during the pass are not re-checked against it.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	if s.Store == nil {
		return 0, docstore.ErrNotConfigured
	}

	titles, err := s.Store.Project(ctx, Collection, "title")
	if err != nil {
		return 0, err
	}
	existing := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		existing[t] = struct{}{}
	}

	inserted := 0
	for _, p := range SampleCatalog() {
		if _, ok := existing[p.Title]; ok {
			continue
		}

		data, err := json.Marshal(p)
		if err != nil {
			return inserted, err
		}
		if _, err := s.Store.Insert(ctx, Collection, data); err != nil {
			return inserted, err
		}
		inserted++
	}

	if s.Log != nil {
		s.Log.Info("seed completed", zap.Int("inserted", inserted))
	}
	return inserted, nil
}
