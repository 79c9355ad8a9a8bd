package service

import (
	"context"

	"perfume-shop/pkg/models"
)

type PerfumesRepo interface {
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

type Perfumes struct {
	Repo PerfumesRepo
}

func (s *Perfumes) GetOne(ctx context.Context, id string) (models.Perfume, error) {
	return s.Repo.Get(ctx, id)
}

func (s *Perfumes) FindAll(ctx context.Context) ([]models.Perfume, error) {
	return s.Repo.List(ctx)
}

// Filter selects catalog items by the first matching branch. A price range
// wins and ignores perfumer/gender; both sets present means AND, one set
// present means OR. With every filter empty the full catalog is returned
// in storage order, without the price sort of the other branches.
func (s *Perfumes) Filter(ctx context.Context, f models.SearchFilter) ([]models.Perfume, error) {
	switch {
	case len(f.Prices) == 2:
		return s.Repo.ListPriceBetween(ctx, f.Prices[0], f.Prices[1])
	case len(f.Perfumers) > 0 && len(f.Genders) > 0:
		return s.Repo.ListByPerfumerAndGender(ctx, f.Perfumers, f.Genders)
	case len(f.Perfumers) > 0 || len(f.Genders) > 0:
		return s.Repo.ListByPerfumerOrGender(ctx, f.Perfumers, f.Genders)
	default:
		return s.Repo.List(ctx)
	}
}

func (s *Perfumes) FindByPerfumer(ctx context.Context, perfumer string) ([]models.Perfume, error) {
	return s.Repo.ListByPerfumer(ctx, perfumer)
}

func (s *Perfumes) FindByGender(ctx context.Context, gender string) ([]models.Perfume, error) {
	return s.Repo.ListByGender(ctx, gender)
}

func (s *Perfumes) Save(ctx context.Context, p models.Perfume) (models.Perfume, error) {
	return s.Repo.Save(ctx, p)
}

func (s *Perfumes) UpdateProductInfo(ctx context.Context, info models.PerfumeInfo, id string) error {
	return s.Repo.UpdateInfo(ctx, info, id)
}
