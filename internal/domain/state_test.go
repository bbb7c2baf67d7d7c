package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledForm() OrderForm {
	return OrderForm{Name: "Иван", Email: "ivan@example.com", Phone: "+7 900 000-00-00", Address: "Москва"}
}

func TestSubmitOrder_EmptyCart(t *testing.T) {
	state := NewState("s1", time.Now())
	state.Form = filledForm()
	state.CheckoutOpen = true

	next, err := state.SubmitOrder()

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.True(t, next.Cart.IsEmpty())
	assert.Equal(t, filledForm(), next.Form)
	assert.True(t, next.CheckoutOpen)
	require.Len(t, next.Notifications, 1)
	assert.Equal(t, SeverityDestructive, next.Notifications[0].Severity)
	assert.Empty(t, state.Notifications)
}

func TestSubmitOrder_Success(t *testing.T) {
	state := NewState("s1", time.Now())
	state.Cart = Cart{}.AddToCart(Product{ID: 1, Name: "Беспроводные наушники", Price: 12990})
	state.Form = filledForm()
	state = state.OpenCheckout()

	next, err := state.SubmitOrder()

	require.NoError(t, err)
	assert.True(t, next.Cart.IsEmpty())
	assert.True(t, next.Form.IsBlank())
	assert.False(t, next.CheckoutOpen)
	require.Len(t, next.Notifications, 1)
	assert.Equal(t, SeverityNormal, next.Notifications[0].Severity)
	assert.Equal(t, "Заказ оформлен!", next.Notifications[0].Title)
}

func TestCheckoutSurface(t *testing.T) {
	state := NewState("s1", time.Now()).OpenCart()
	assert.True(t, state.CartOpen)

	state = state.OpenCheckout()
	assert.True(t, state.CheckoutOpen)
	assert.False(t, state.CartOpen)

	state = state.CloseCheckout()
	assert.False(t, state.CheckoutOpen)

	state = state.OpenCart().CloseCart()
	assert.False(t, state.CartOpen)
}

func TestOrderForm_Set(t *testing.T) {
	form := OrderForm{}

	form, err := form.Set(FieldEmail, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", form.Email)
	assert.Equal(t, []string{FieldName, FieldPhone, FieldAddress}, form.MissingFields())

	_, err = form.Set("zip", "101000")
	assert.ErrorIs(t, err, ErrUnknownField)

	assert.Empty(t, filledForm().MissingFields())
	assert.False(t, filledForm().IsBlank())
}

func TestNotify_BoundsInbox(t *testing.T) {
	state := NewState("s1", time.Now())
	for i := 0; i < MaxPendingNotifications+5; i++ {
		state = state.Notify(Notification{Title: string(rune('A' + i))})
	}
	require.Len(t, state.Notifications, MaxPendingNotifications+5)

	state = state.TrimNotifications()

	require.Len(t, state.Notifications, MaxPendingNotifications)
	assert.Equal(t, string(rune('A'+5)), state.Notifications[0].Title)
}
