package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"perfume-shop/pkg/models"
)

type UsersPG struct{ DB *pgxpool.Pool }

// FindByEmail loads the user together with the current cart contents.
func (r *UsersPG) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(ctx, `
		select id, email, first_name, last_name from users where email = $1
	`, email).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}

	rows, err := r.DB.Query(ctx, `
		select `+prefixed("p", perfumeColumns)+`
		from cart_items c
		join perfumes p on p.id = c.perfume_id
		where c.user_id = $1
		order by c.added_at
	`, u.ID)
	if err != nil {
		return models.User{}, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPerfume(rows)
		if err != nil {
			return models.User{}, err
		}
		u.Cart = append(u.Cart, p)
	}
	return u, rows.Err()
}

// ClearCart empties the user's cart inside the caller's transaction.
func (r *UsersPG) ClearCart(ctx context.Context, tx pgx.Tx, userID string) error {
	_, err := tx.Exec(ctx, `delete from cart_items where user_id = $1`, userID)
	return err
}
