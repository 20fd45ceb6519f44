package services

import (
	"errors"

	"github.com/themizzi/shopcheck/internal/models"
)

// ErrProductNotFound is returned for an unknown product ID
var ErrProductNotFound = errors.New("product not found")

// DefaultProducts is the demo catalog
var DefaultProducts = []models.Product{
	{ID: "43", Name: "MacBook", Model: "Product 16", Price: 60200,
		Description: "Intel Core 2 Duo processor, 13.3-inch glossy widescreen display and a built-in iSight camera."},
	{ID: "44", Name: "MacBook Air", Model: "Product 17", Price: 120200,
		Description: "The thinnest notebook in the line, with a 13.3-inch LED-backlit display."},
	{ID: "45", Name: "MacBook Pro", Model: "Product 18", Price: 200000,
		Description: "Latest Intel mobile architecture with a 15-inch display."},
	{ID: "40", Name: "iPhone", Model: "product 11", Price: 12320,
		Description: "A revolutionary phone, a widescreen iPod with touch controls and an internet device."},
	{ID: "30", Name: "Canon EOS 5D", Model: "Product 3", Price: 9800,
		Description: "A 12.8-megapixel full-frame sensor in a compact body."},
}

// Catalog is a fixed, read-only product list
type Catalog struct {
	products []models.Product
}

// NewCatalog creates a catalog over products
func NewCatalog(products []models.Product) *Catalog {
	return &Catalog{products: append([]models.Product(nil), products...)}
}

// Products returns the whole catalog in listing order
func (c *Catalog) Products() []models.Product {
	return append([]models.Product(nil), c.products...)
}

// Search returns products whose name contains term, ignoring case. A blank term matches nothing.
func (c *Catalog) Search(term string) []models.Product {
	var found []models.Product
	for _, p := range c.products {
		if p.Matches(term) {
			found = append(found, p)
		}
	}
	return found
}

// Product looks a product up by ID
func (c *Catalog) Product(id string) (models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}
