package domain

import "time"

// State is everything one storefront session owns.
type State struct {
	SessionID     string         `json:"session_id"`
	Cart          Cart           `json:"cart"`
	Form          OrderForm      `json:"form"`
	CartOpen      bool           `json:"cart_open"`
	CheckoutOpen  bool           `json:"checkout_open"`
	Notifications []Notification `json:"notifications,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func NewState(sessionID string, now time.Time) State {
	return State{
		SessionID: sessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MaxPendingNotifications bounds the notifications a state carries to its next delivery.
const MaxPendingNotifications = 20

// Notify queues n for the presentation layer.
func (s State) Notify(n Notification) State {
	s.Notifications = append(append([]Notification(nil), s.Notifications...), n)
	return s
}

// TrimNotifications keeps only the newest MaxPendingNotifications entries.
func (s State) TrimNotifications() State {
	if len(s.Notifications) > MaxPendingNotifications {
		s.Notifications = s.Notifications[len(s.Notifications)-MaxPendingNotifications:]
	}
	return s
}

func (s State) OpenCart() State {
	s.CartOpen = true
	return s
}

func (s State) CloseCart() State {
	s.CartOpen = false
	return s
}

// OpenCheckout shows the checkout surface. The cart panel closes since checkout is started from it.
func (s State) OpenCheckout() State {
	s.CheckoutOpen = true
	s.CartOpen = false
	return s
}

func (s State) CloseCheckout() State {
	s.CheckoutOpen = false
	return s
}

// SubmitOrder validates that the cart is not empty, then clears the cart and form and closes checkout.
// On ErrEmptyCart the returned state carries only the destructive notification.
func (s State) SubmitOrder() (State, error) {
	if s.Cart.IsEmpty() {
		return s.Notify(CartEmpty()), ErrEmptyCart
	}
	s = s.Notify(OrderPlaced())
	s.Cart = Cart{}
	s.Form = OrderForm{}
	s.CheckoutOpen = false
	return s, nil
}
