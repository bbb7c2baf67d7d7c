package http

import (
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/money"
)

type ProductDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	PriceFormatted string `json:"price_formatted"`
	Image          string `json:"image"`
	Description    string `json:"description"`
}

type CartItemDTO struct {
	ProductDTO
	Quantity          int    `json:"quantity"`
	Subtotal          int64  `json:"subtotal"`
	SubtotalFormatted string `json:"subtotal_formatted"`
}

// StateDTO is what the presentation layer renders after every transition.
type StateDTO struct {
	SessionID      string                `json:"session_id"`
	Items          []CartItemDTO         `json:"items"`
	Total          int64                 `json:"total"`
	TotalFormatted string                `json:"total_formatted"`
	Count          int                   `json:"count"`
	Form           domain.OrderForm      `json:"form"`
	CartOpen       bool                  `json:"cart_open"`
	CheckoutOpen   bool                  `json:"checkout_open"`
	Notifications  []domain.Notification `json:"notifications"`
}

type ReceiptDTO struct {
	OrderID        string        `json:"order_id"`
	Items          []CartItemDTO `json:"items"`
	Total          int64         `json:"total"`
	TotalFormatted string        `json:"total_formatted"`
	Count          int           `json:"count"`
	PlacedAt       string        `json:"placed_at"`
}

type OrderResponseDTO struct {
	Order *ReceiptDTO `json:"order,omitempty"`
	State StateDTO    `json:"state"`
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		PriceFormatted: money.Format(p.Price),
		Image:          p.Image,
		Description:    p.Description,
	}
}

func toItemDTOs(items []domain.CartItem) []CartItemDTO {
	out := make([]CartItemDTO, 0, len(items))
	for _, item := range items {
		subtotal := item.Price * int64(item.Quantity)
		out = append(out, CartItemDTO{
			ProductDTO:        toProductDTO(item.Product),
			Quantity:          item.Quantity,
			Subtotal:          subtotal,
			SubtotalFormatted: money.Format(subtotal),
		})
	}
	return out
}

// toStateDTO renders st. Its notifications are the ones raised by the transition that produced it.
func toStateDTO(st *domain.State) StateDTO {
	notifications := st.Notifications
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return StateDTO{
		SessionID:      st.SessionID,
		Items:          toItemDTOs(st.Cart.Items),
		Total:          st.Cart.Total(),
		TotalFormatted: money.Format(st.Cart.Total()),
		Count:          st.Cart.Count(),
		Form:           st.Form,
		CartOpen:       st.CartOpen,
		CheckoutOpen:   st.CheckoutOpen,
		Notifications:  notifications,
	}
}

func toReceiptDTO(r *domain.Receipt) *ReceiptDTO {
	return &ReceiptDTO{
		OrderID:        r.OrderID,
		Items:          toItemDTOs(r.Items),
		Total:          r.Total,
		TotalFormatted: money.Format(r.Total),
		Count:          r.Count,
		PlacedAt:       r.PlacedAt.Format(time.RFC3339),
	}
}
