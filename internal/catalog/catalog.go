package catalog

import (
	"context"
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog is the read-only product list. It is enumerated once at startup and never mutated.
type Catalog interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id int64) (domain.Product, error)
}

// Static is an in-memory catalog preserving the order products were given in.
type Static struct {
	products []domain.Product
	byID     map[int64]int
}

func NewStatic(products []domain.Product) *Static {
	c := &Static{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

func (c *Static) Products(context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *Static) Product(_ context.Context, id int64) (domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return c.products[i], nil
}

const imageBase = "https://cdn.poehali.dev/projects/11036952-557e-4312-8248-5f9d3c83d56a/files/"

// Default returns the built-in storefront catalog.
func Default() *Static {
	return NewStatic([]domain.Product{
		{ID: 1, Name: "Беспроводные наушники", Price: 12990, Image: imageBase + "12327bb0-7d6b-4a45-99b0-8033d41f6104.jpg", Description: "Premium качество звука"},
		{ID: 2, Name: "Умные часы", Price: 24990, Image: imageBase + "01eb9d84-c088-4c96-8e2a-ac0c31fe989c.jpg", Description: "Стильный дизайн и функциональность"},
		{ID: 3, Name: "Рюкзак для ноутбука", Price: 8990, Image: imageBase + "c06bbb86-05d2-4d1a-9087-dfc30ca922dd.jpg", Description: "Современный и практичный"},
		{ID: 4, Name: "Портативная колонка", Price: 6990, Image: imageBase + "12327bb0-7d6b-4a45-99b0-8033d41f6104.jpg", Description: "Мощный звук в компактном корпусе"},
		{ID: 5, Name: "Клавиатура механическая", Price: 15990, Image: imageBase + "01eb9d84-c088-4c96-8e2a-ac0c31fe989c.jpg", Description: "Идеальная для работы и игр"},
		{ID: 6, Name: "Мышь беспроводная", Price: 4990, Image: imageBase + "c06bbb86-05d2-4d1a-9087-dfc30ca922dd.jpg", Description: "Эргономичный дизайн"},
	})
}
