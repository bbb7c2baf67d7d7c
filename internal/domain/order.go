package domain

import (
	"errors"
	"time"
)

var (
	ErrEmptyCart    = errors.New("cart is empty, nothing to checkout")
	ErrUnknownField = errors.New("unknown order form field")
)

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldAddress = "address"
)

// OrderForm holds the contact and shipping fields entered at checkout.
type OrderForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Set returns a copy of the form with one field replaced.
func (f OrderForm) Set(field, value string) (OrderForm, error) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldAddress:
		f.Address = value
	default:
		return f, ErrUnknownField
	}
	return f, nil
}

func (f OrderForm) IsBlank() bool {
	return f == OrderForm{}
}

// MissingFields lists the required fields left empty, in form order.
func (f OrderForm) MissingFields() []string {
	var missing []string
	if f.Name == "" {
		missing = append(missing, FieldName)
	}
	if f.Email == "" {
		missing = append(missing, FieldEmail)
	}
	if f.Phone == "" {
		missing = append(missing, FieldPhone)
	}
	if f.Address == "" {
		missing = append(missing, FieldAddress)
	}
	return missing
}

// Receipt describes a simulated order. It is returned to the caller and never stored.
type Receipt struct {
	OrderID  string     `json:"order_id"`
	Items    []CartItem `json:"items"`
	Total    int64      `json:"total"`
	Count    int        `json:"count"`
	Form     OrderForm  `json:"form"`
	PlacedAt time.Time  `json:"placed_at"`
}
