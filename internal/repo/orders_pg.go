package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"perfume-shop/pkg/models"
)

type OrdersPG struct {
	DB     *pgxpool.Pool
	Users  *UsersPG
	Outbox *OutboxPG
}

// Create assigns the order id and date, then in one transaction inserts the
// order with its line-item snapshot, clears the owner's cart and enqueues
// the orders.created event.
func (r *OrdersPG) Create(ctx context.Context, o models.Order) (models.Order, error) {
	o.ID = uuid.NewString()
	o.Date = time.Now().UTC()

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return models.Order{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		insert into orders(id, user_id, total_price, first_name, last_name,
			city, address, post_index, email, phone_number, date)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`, o.ID, o.UserID, o.TotalPrice, o.FirstName, o.LastName,
		o.City, o.Address, o.PostIndex, o.Email, o.PhoneNumber, o.Date)
	if err != nil {
		return models.Order{}, err
	}

	// Line items are copied into order_perfumes so later catalog edits or
	// cart changes never touch a placed order.
	for _, p := range o.Perfumes {
		_, err = tx.Exec(ctx, `
			insert into order_perfumes(order_id, perfume_id, perfumer, title, price, filename)
			values ($1,$2,$3,$4,$5,$6)
		`, o.ID, p.ID, p.Perfumer, p.Title, p.Price, p.Filename)
		if err != nil {
			return models.Order{}, err
		}
	}

	if err := r.Users.ClearCart(ctx, tx, o.UserID); err != nil {
		return models.Order{}, err
	}

	if r.Outbox != nil {
		evt := models.NewOrderCreatedEvent(o)
		if err := r.Outbox.Enqueue(ctx, tx, evt.ID, evt.OrderID, evt.Type, evt); err != nil {
			return models.Order{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// Save updates the shipping fields and total of an existing order.
func (r *OrdersPG) Save(ctx context.Context, o models.Order) (models.Order, error) {
	_, err := r.DB.Exec(ctx, `
		update orders set
		  total_price=$1, first_name=$2, last_name=$3, city=$4,
		  address=$5, post_index=$6, email=$7, phone_number=$8
		where id=$9
	`, o.TotalPrice, o.FirstName, o.LastName, o.City,
		o.Address, o.PostIndex, o.Email, o.PhoneNumber, o.ID)
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (r *OrdersPG) List(ctx context.Context) ([]models.Order, error) {
	return r.queryOrders(ctx, `
		select id, user_id, total_price, first_name, last_name,
		       city, address, post_index, email, phone_number, date
		from orders
		order by date desc
	`)
}

func (r *OrdersPG) ListByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	return r.queryOrders(ctx, `
		select id, user_id, total_price, first_name, last_name,
		       city, address, post_index, email, phone_number, date
		from orders
		where user_id = $1
		order by date desc
	`, userID)
}

func (r *OrdersPG) queryOrders(ctx context.Context, sql string, args ...any) ([]models.Order, error) {
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.FirstName, &o.LastName,
			&o.City, &o.Address, &o.PostIndex, &o.Email, &o.PhoneNumber, &o.Date); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.orderItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Perfumes = items
	}
	return out, nil
}

func (r *OrdersPG) orderItems(ctx context.Context, orderID string) ([]models.Perfume, error) {
	rows, err := r.DB.Query(ctx, `
		select perfume_id, perfumer, title, price, filename
		from order_perfumes
		where order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Perfume
	for rows.Next() {
		var p models.Perfume
		if err := rows.Scan(&p.ID, &p.Perfumer, &p.Title, &p.Price, &p.Filename); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
