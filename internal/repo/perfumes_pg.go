package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"perfume-shop/pkg/models"
)

const perfumeColumns = `id, title, perfumer, year, country, gender,
	top_notes, middle_notes, base_notes, description, filename,
	price, volume, fragrance_type`

type PerfumesPG struct{ DB *pgxpool.Pool }

func (r *PerfumesPG) Get(ctx context.Context, id string) (models.Perfume, error) {
	row := r.DB.QueryRow(ctx, `select `+perfumeColumns+` from perfumes where id = $1`, id)
	p, err := scanPerfume(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Perfume{}, ErrNotFound
	}
	return p, err
}

func (r *PerfumesPG) List(ctx context.Context) ([]models.Perfume, error) {
	return r.queryPerfumes(ctx, `select `+perfumeColumns+` from perfumes`)
}

func (r *PerfumesPG) ListPriceBetween(ctx context.Context, low, high int) ([]models.Perfume, error) {
	return r.queryPerfumes(ctx, `
		select `+perfumeColumns+` from perfumes
		where price between $1 and $2
		order by price desc
	`, low, high)
}

func (r *PerfumesPG) ListByPerfumerAndGender(ctx context.Context, perfumers, genders []string) ([]models.Perfume, error) {
	return r.queryPerfumes(ctx, `
		select `+perfumeColumns+` from perfumes
		where perfumer = any($1) and gender = any($2)
		order by price desc
	`, perfumers, genders)
}

func (r *PerfumesPG) ListByPerfumerOrGender(ctx context.Context, perfumers, genders []string) ([]models.Perfume, error) {
	return r.queryPerfumes(ctx, `
		select `+perfumeColumns+` from perfumes
		where perfumer = any($1) or gender = any($2)
		order by price desc
	`, perfumers, genders)
}

func (r *PerfumesPG) ListByPerfumer(ctx context.Context, perfumer string) ([]models.Perfume, error) {
	return r.queryPerfumes(ctx, `
		select `+perfumeColumns+` from perfumes
		where perfumer = $1
		order by price desc
	`, perfumer)
}

func (r *PerfumesPG) ListByGender(ctx context.Context, gender string) ([]models.Perfume, error) {
	return r.queryPerfumes(ctx, `
		select `+perfumeColumns+` from perfumes
		where gender = $1
		order by price desc
	`, gender)
}

// Save inserts the perfume, or replaces every field when the id already exists.
func (r *PerfumesPG) Save(ctx context.Context, p models.Perfume) (models.Perfume, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.DB.Exec(ctx, `
		insert into perfumes(`+perfumeColumns+`)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		on conflict (id) do update set
		  title=excluded.title, perfumer=excluded.perfumer, year=excluded.year,
		  country=excluded.country, gender=excluded.gender,
		  top_notes=excluded.top_notes, middle_notes=excluded.middle_notes,
		  base_notes=excluded.base_notes, description=excluded.description,
		  filename=excluded.filename, price=excluded.price,
		  volume=excluded.volume, fragrance_type=excluded.fragrance_type
	`, p.ID, p.Title, p.Perfumer, p.Year, p.Country, p.Gender,
		p.TopNotes, p.MiddleNotes, p.BaseNotes, p.Description, p.Filename,
		p.Price, p.Volume, p.FragranceType)
	if err != nil {
		return models.Perfume{}, err
	}
	return p, nil
}

// UpdateInfo overwrites the editable fields of one catalog row. It reports
// nothing about which fields actually changed.
func (r *PerfumesPG) UpdateInfo(ctx context.Context, info models.PerfumeInfo, id string) error {
	_, err := r.DB.Exec(ctx, `
		update perfumes set
		  title=$1, perfumer=$2, year=$3, country=$4, gender=$5,
		  top_notes=$6, middle_notes=$7, base_notes=$8, description=$9,
		  filename=$10, price=$11, volume=$12, fragrance_type=$13
		where id=$14
	`, info.Title, info.Perfumer, info.Year, info.Country, info.Gender,
		info.TopNotes, info.MiddleNotes, info.BaseNotes, info.Description,
		info.Filename, info.Price, info.Volume, info.FragranceType, id)
	return err
}

func (r *PerfumesPG) queryPerfumes(ctx context.Context, sql string, args ...any) ([]models.Perfume, error) {
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Perfume
	for rows.Next() {
		p, err := scanPerfume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPerfume(row pgx.Row) (models.Perfume, error) {
	var p models.Perfume
	err := row.Scan(&p.ID, &p.Title, &p.Perfumer, &p.Year, &p.Country, &p.Gender,
		&p.TopNotes, &p.MiddleNotes, &p.BaseNotes, &p.Description, &p.Filename,
		&p.Price, &p.Volume, &p.FragranceType)
	return p, err
}
