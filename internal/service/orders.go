package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"perfume-shop/internal/mail"
	"perfume-shop/pkg/metrics"
	"perfume-shop/pkg/models"
)

type OrdersRepo interface {
	Create(ctx context.Context, o models.Order) (models.Order, error)
	Save(ctx context.Context, o models.Order) (models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]models.Order, error)
}

type UsersRepo interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

type Orders struct {
	Repo  OrdersRepo
	Users UsersRepo
	Mail  mail.Sender
	Log   zerolog.Logger
}

func (s *Orders) FindAll(ctx context.Context) ([]models.Order, error) {
	return s.Repo.List(ctx)
}

func (s *Orders) Save(ctx context.Context, o models.Order) (models.Order, error) {
	return s.Repo.Save(ctx, o)
}

func (s *Orders) FindOrderByUser(ctx context.Context, user models.User) ([]models.Order, error) {
	return s.Repo.ListByUserID(ctx, user.ID)
}

// PostOrder converts the session user's cart into a persisted order and
// sends the confirmation mail. Only the session user's email is trusted:
// the cart is always taken from the freshly fetched user record. A failed
// mail send is logged and counted, not returned.
func (s *Orders) PostOrder(ctx context.Context, candidate models.Order, sessionUser models.User) (models.Order, error) {
	user, err := s.Users.FindByEmail(ctx, sessionUser.Email)
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		UserID:      user.ID,
		Perfumes:    append([]models.Perfume(nil), user.Cart...),
		TotalPrice:  candidate.TotalPrice,
		FirstName:   candidate.FirstName,
		LastName:    candidate.LastName,
		City:        candidate.City,
		Address:     candidate.Address,
		PostIndex:   candidate.PostIndex,
		Email:       candidate.Email,
		PhoneNumber: candidate.PhoneNumber,
	}

	// Create clears the cart in the same transaction that persists the order.
	order, err = s.Repo.Create(ctx, order)
	if err != nil {
		return models.Order{}, err
	}
	metrics.CheckoutsTotal.Inc()

	subject, body := orderMessage(order)
	if err := s.Mail.Send(ctx, order.Email, subject, body); err != nil {
		metrics.MailSendFailuresTotal.Inc()
		s.Log.Error().Err(err).
			Str("order_id", order.ID).
			Str("to", order.Email).
			Msg("confirmation mail failed")
	}

	return order, nil
}

// orderMessage builds the plain-text confirmation, one cart line per item.
func orderMessage(o models.Order) (subject, body string) {
	var items strings.Builder
	for _, p := range o.Perfumes {
		fmt.Fprintf(&items, "%s %s — $%d.00\n", p.Perfumer, p.Title, p.Price)
	}

	subject = "Order #" + o.ID
	body = "Hello " + o.FirstName + "!\n" +
		"Thank you for your order in Perfume online store.\n" +
		"Your order number is " + o.ID + "\n" +
		"Date: " + o.Date.Format(time.RFC1123) + "\n" +
		"Name: " + o.FirstName + " " + o.LastName + "\n" +
		"Address: " + o.City + ", " + o.Address + "\n" +
		"Post index: " + o.PostIndex + "\n" +
		"Phone: " + o.PhoneNumber + "\n" +
		"Perfumes: \n" + items.String() + "\n" +
		fmt.Sprintf("Total price: $%d", o.TotalPrice)
	return subject, body
}
