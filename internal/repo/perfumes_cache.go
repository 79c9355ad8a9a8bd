package repo

import (
	"context"
	"encoding/json"
	"time"

	"perfume-shop/pkg/models"
)

// StringCache is the slice of the Redis wrapper the decorator needs.
type StringCache interface {
	GetString(ctx context.Context, key string) (string, error)
	SetString(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// PerfumesSource is the lookup side the decorator wraps, normally PerfumesPG.
type PerfumesSource interface {
	Get(ctx context.Context, id string) (models.Perfume, error)
	List(ctx context.Context) ([]models.Perfume, error)
	ListPriceBetween(ctx context.Context, low, high int) ([]models.Perfume, error)
	ListByPerfumerAndGender(ctx context.Context, perfumers, genders []string) ([]models.Perfume, error)
	ListByPerfumerOrGender(ctx context.Context, perfumers, genders []string) ([]models.Perfume, error)
	ListByPerfumer(ctx context.Context, perfumer string) ([]models.Perfume, error)
	ListByGender(ctx context.Context, gender string) ([]models.Perfume, error)
	Save(ctx context.Context, p models.Perfume) (models.Perfume, error)
	UpdateInfo(ctx context.Context, info models.PerfumeInfo, id string) error
}

// PerfumesCached is a read-through cache over lookups by id. List queries
// always pass through to the source.
type PerfumesCached struct {
	PerfumesSource
	Cache StringCache
	TTL   time.Duration
}

func perfumeKey(id string) string { return "perfume:" + id }

func (r *PerfumesCached) Get(ctx context.Context, id string) (models.Perfume, error) {
	// 1) cache
	if s, err := r.Cache.GetString(ctx, perfumeKey(id)); err == nil {
		var p models.Perfume
		if err := json.Unmarshal([]byte(s), &p); err == nil {
			return p, nil
		}
	}

	// 2) source
	p, err := r.PerfumesSource.Get(ctx, id)
	if err != nil {
		return models.Perfume{}, err
	}

	// 3) backfill
	if b, err := json.Marshal(p); err == nil {
		_ = r.Cache.SetString(ctx, perfumeKey(p.ID), string(b), r.TTL)
	}
	return p, nil
}

func (r *PerfumesCached) Save(ctx context.Context, p models.Perfume) (models.Perfume, error) {
	saved, err := r.PerfumesSource.Save(ctx, p)
	if err != nil {
		return models.Perfume{}, err
	}
	_ = r.Cache.Delete(ctx, perfumeKey(saved.ID))
	return saved, nil
}

func (r *PerfumesCached) UpdateInfo(ctx context.Context, info models.PerfumeInfo, id string) error {
	if err := r.PerfumesSource.UpdateInfo(ctx, info, id); err != nil {
		return err
	}
	_ = r.Cache.Delete(ctx, perfumeKey(id))
	return nil
}
