package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/notify"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type StorefrontService struct {
	catalog catalog.Catalog
	store   session.Store
	sink    notify.Sink
	log     *slog.Logger
	locks   *sessionLocks
	sfg     singleflight.Group // collapses concurrent reads of one session

	now     func() time.Time
	orderID func() string
}

func NewStorefrontService(c catalog.Catalog, store session.Store, sink notify.Sink, log *slog.Logger) *StorefrontService {
	return &StorefrontService{
		catalog: c,
		store:   store,
		sink:    sink,
		log:     log,
		locks:   newSessionLocks(),
		now:     time.Now,
		orderID: func() string { return uuid.NewString() },
	}
}

// NewSessionID returns a fresh random session id.
func NewSessionID() string {
	return uuid.NewString()
}

func (s *StorefrontService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.catalog.Products(ctx)
}

func (s *StorefrontService) Product(ctx context.Context, productID int64) (domain.Product, error) {
	return s.catalog.Product(ctx, productID)
}

// State returns the session state, or a fresh empty state for an unknown session.
func (s *StorefrontService) State(ctx context.Context, sessionID string) (*domain.State, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	// Only reads share a load; mutate must see the state saved by the previous holder of the lock.
	v, err, _ := s.sfg.Do(sessionID, func() (interface{}, error) {
		return s.load(ctx, sessionID)
	})
	if err != nil {
		return nil, err
	}
	state := v.(domain.State)
	return &state, nil
}

func (s *StorefrontService) AddToCart(ctx context.Context, sessionID string, productID int64) (*domain.State, error) {
	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	return s.mutate(ctx, sessionID, func(st domain.State) (domain.State, error) {
		cart := st.Cart.AddToCart(product)
		if err := cart.CheckOverflow(); err != nil {
			return st, err
		}
		st.Cart = cart
		return st.Notify(domain.AddedToCart(product)), nil
	})
}

func (s *StorefrontService) RemoveFromCart(ctx context.Context, sessionID string, productID int64) (*domain.State, error) {
	return s.mutate(ctx, sessionID, func(st domain.State) (domain.State, error) {
		st.Cart = st.Cart.RemoveFromCart(productID)
		return st, nil
	})
}

func (s *StorefrontService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.State, error) {
	return s.mutate(ctx, sessionID, func(st domain.State) (domain.State, error) {
		cart := st.Cart.UpdateQuantity(productID, quantity)
		if err := cart.CheckOverflow(); err != nil {
			return st, err
		}
		st.Cart = cart
		return st, nil
	})
}

// UpdateForm sets individual order form fields. Nothing is applied if any field name is unknown.
func (s *StorefrontService) UpdateForm(ctx context.Context, sessionID string, fields map[string]string) (*domain.State, error) {
	return s.mutate(ctx, sessionID, func(st domain.State) (domain.State, error) {
		form := st.Form
		for field, value := range fields {
			var err error
			if form, err = form.Set(field, value); err != nil {
				return st, fmt.Errorf("%w: %q", err, field)
			}
		}
		st.Form = form
		return st, nil
	})
}

// SetForm replaces the whole order form.
func (s *StorefrontService) SetForm(ctx context.Context, sessionID string, form domain.OrderForm) (*domain.State, error) {
	return s.mutate(ctx, sessionID, func(st domain.State) (domain.State, error) {
		st.Form = form
		return st, nil
	})
}

func (s *StorefrontService) OpenCart(ctx context.Context, sessionID string) (*domain.State, error) {
	return s.mutate(ctx, sessionID, func(st domain.State) (domain.State, error) {
		return st.OpenCart(), nil
	})
}

func (s *StorefrontService) CloseCart(ctx context.Context, sessionID string) (*domain.State, error) {
	return s.mutate(ctx, sessionID, func(st domain.State) (domain.State, error) {
		return st.CloseCart(), nil
	})
}

func (s *StorefrontService) OpenCheckout(ctx context.Context, sessionID string) (*domain.State, error) {
	return s.mutate(ctx, sessionID, func(st domain.State) (domain.State, error) {
		return st.OpenCheckout(), nil
	})
}

func (s *StorefrontService) CloseCheckout(ctx context.Context, sessionID string) (*domain.State, error) {
	return s.mutate(ctx, sessionID, func(st domain.State) (domain.State, error) {
		return st.CloseCheckout(), nil
	})
}

// SubmitOrder places a simulated order with the given form. With an empty cart it returns
// domain.ErrEmptyCart together with the state, whose cart and stored form are left as they were.
func (s *StorefrontService) SubmitOrder(ctx context.Context, sessionID string, form domain.OrderForm) (*domain.State, *domain.Receipt, error) {
	var receipt *domain.Receipt
	state, err := s.mutate(ctx, sessionID, func(st domain.State) (domain.State, error) {
		if st.Cart.IsEmpty() {
			return st.SubmitOrder()
		}
		st.Form = form
		receipt = &domain.Receipt{
			OrderID:  s.orderID(),
			Items:    append([]domain.CartItem(nil), st.Cart.Items...),
			Total:    st.Cart.Total(),
			Count:    st.Cart.Count(),
			Form:     form,
			PlacedAt: s.now().UTC(),
		}
		return st.SubmitOrder()
	})
	if err != nil {
		return state, nil, err
	}

	s.log.InfoContext(ctx, "order placed",
		"session_id", sessionID,
		"order_id", receipt.OrderID,
		"total", receipt.Total,
		"count", receipt.Count,
	)
	return state, receipt, nil
}

func (s *StorefrontService) EndSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrMissingSession
	}
	unlock := s.locks.lock(sessionID)
	defer unlock()

	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.log.ErrorContext(ctx, "session delete failed", "session_id", sessionID, "err", err)
		return err
	}
	return nil
}

// mutate runs one transition under the session lock and saves the result. The notifications the
// state carries are delivered with the returned state and are not kept in the store. Sinks are
// called after the lock is released. An empty-cart submit is a handled outcome: its state is saved
// and returned with the error.
func (s *StorefrontService) mutate(ctx context.Context, sessionID string, transition func(domain.State) (domain.State, error)) (*domain.State, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	next, emitted, err := s.apply(ctx, sessionID, transition)
	if next == nil {
		return nil, err
	}

	for _, n := range emitted {
		s.sink.Notify(ctx, sessionID, n)
	}
	return next, err
}

func (s *StorefrontService) apply(ctx context.Context, sessionID string, transition func(domain.State) (domain.State, error)) (*domain.State, []domain.Notification, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	current, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	next, errTransition := transition(current)
	if errTransition != nil && !errors.Is(errTransition, domain.ErrEmptyCart) {
		return nil, nil, errTransition
	}
	emitted := newNotifications(current.Notifications, next.Notifications)
	next = next.TrimNotifications()
	next.UpdatedAt = s.now()

	saved := next
	saved.Notifications = nil
	if err := s.store.Save(ctx, &saved); err != nil {
		s.log.ErrorContext(ctx, "session save failed", "session_id", sessionID, "err", err)
		return nil, nil, fmt.Errorf("save session: %w", err)
	}
	return &next, emitted, errTransition
}

func (s *StorefrontService) load(ctx context.Context, sessionID string) (domain.State, error) {
	state, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, session.ErrSessionNotFound) {
		return domain.NewState(sessionID, s.now()), nil
	}
	if err != nil {
		s.log.ErrorContext(ctx, "session load failed", "session_id", sessionID, "err", err)
		return domain.State{}, fmt.Errorf("load session: %w", err)
	}
	return *state, nil
}

// newNotifications returns the entries a transition appended to the inbox.
// Transitions only append, so anything past prev is new.
func newNotifications(prev, next []domain.Notification) []domain.Notification {
	if len(next) <= len(prev) {
		return nil
	}
	return next[len(prev):]
}
