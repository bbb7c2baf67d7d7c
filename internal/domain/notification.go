package domain

type Severity string

const (
	SeverityNormal      Severity = "normal"
	SeverityDestructive Severity = "destructive"
)

// Notification is a transient user-facing message (a toast).
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

func AddedToCart(p Product) Notification {
	return Notification{
		Title:       "Добавлено в корзину",
		Description: p.Name,
		Severity:    SeverityNormal,
	}
}

func CartEmpty() Notification {
	return Notification{
		Title:       "Корзина пуста",
		Description: "Добавьте товары в корзину",
		Severity:    SeverityDestructive,
	}
}

func OrderPlaced() Notification {
	return Notification{
		Title:       "Заказ оформлен!",
		Description: "Мы свяжемся с вами в ближайшее время",
		Severity:    SeverityNormal,
	}
}
