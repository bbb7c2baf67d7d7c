package http

import (
	"context"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
)

// Storefront is the service the handlers drive.
type Storefront interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, productID int64) (domain.Product, error)
	State(ctx context.Context, sessionID string) (*domain.State, error)
	AddToCart(ctx context.Context, sessionID string, productID int64) (*domain.State, error)
	RemoveFromCart(ctx context.Context, sessionID string, productID int64) (*domain.State, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.State, error)
	UpdateForm(ctx context.Context, sessionID string, fields map[string]string) (*domain.State, error)
	SetForm(ctx context.Context, sessionID string, form domain.OrderForm) (*domain.State, error)
	OpenCart(ctx context.Context, sessionID string) (*domain.State, error)
	CloseCart(ctx context.Context, sessionID string) (*domain.State, error)
	OpenCheckout(ctx context.Context, sessionID string) (*domain.State, error)
	CloseCheckout(ctx context.Context, sessionID string) (*domain.State, error)
	SubmitOrder(ctx context.Context, sessionID string, form domain.OrderForm) (*domain.State, *domain.Receipt, error)
	EndSession(ctx context.Context, sessionID string) error
}

type Handler struct {
	svc     Storefront
	timeout time.Duration
}

func NewHandler(svc Storefront, timeout time.Duration) *Handler {
	return &Handler{
		svc:     svc,
		timeout: timeout,
	}
}
